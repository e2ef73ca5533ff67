package logic

import (
	"context"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type FinishLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewFinishLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FinishLogic {
	return &FinishLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Finish scores the painting one last time and forgets it.
func (l *FinishLogic) Finish(req *types.PaintingRequest) (resp *types.ValueResponse, err error) {
	err = withPainting(l.ctx, l.svcCtx, req.PaintingUid, false, func(uid message.PaintingUid, s *painting.Surface) error {
		if err := l.svcCtx.Store.Delete(l.ctx, uid); err != nil {
			return err
		}

		l.svcCtx.Recorder.RecordEnd(uid, s)
		resp = valueResponse(s.Breakdown())
		l.Infof("finished painting %s with value %d", uid, resp.Value)
		return nil
	})
	return
}
