package logic

import (
	"context"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type ValueLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewValueLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ValueLogic {
	return &ValueLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ValueLogic) Value(req *types.PaintingRequest) (resp *types.ValueResponse, err error) {
	err = withPainting(l.ctx, l.svcCtx, req.PaintingUid, false, func(_ message.PaintingUid, s *painting.Surface) error {
		resp = valueResponse(s.Breakdown())
		return nil
	})
	return
}
