package logic

import (
	"context"

	"github.com/HuXin0817/painting/pkg/assess"
	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type PostHintLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPostHintLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PostHintLogic {
	return &PostHintLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// PostHint queues every free cell of the painting for assessment with kind.
func (l *PostHintLogic) PostHint(req *types.PostHintRequest) (resp *types.PostHintResponse, err error) {
	kind, err := painting.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	err = withPainting(l.ctx, l.svcCtx, req.PaintingUid, false, func(uid message.PaintingUid, s *painting.Surface) error {
		st := s.State()
		points := assess.FreePoints(st)

		if err := l.svcCtx.Hints.Enqueue(l.ctx, message.NewHintMessages(uid, st, kind, points...)...); err != nil {
			return err
		}

		resp = &types.PostHintResponse{
			Step:           len(st.Items),
			TotalCalNumber: len(points),
		}
		return nil
	})
	return
}
