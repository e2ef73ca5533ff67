package logic

import (
	"context"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type AtLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAtLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AtLogic {
	return &AtLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *AtLogic) At(req *types.AtRequest) (resp *types.AtResponse, err error) {
	err = withPainting(l.ctx, l.svcCtx, req.PaintingUid, true, func(uid message.PaintingUid, s *painting.Surface) error {
		pending, placing := s.Pending()
		step := s.Len()

		kind, err := s.At(req.X, req.Y)
		if placing {
			l.svcCtx.Recorder.RecordPlacement(uid, step, pending, req.X, req.Y, err)
		}
		if err != nil {
			return err
		}

		resp = &types.AtResponse{
			Kind:    kind.String(),
			Painted: placing,
		}
		return nil
	})
	return
}
