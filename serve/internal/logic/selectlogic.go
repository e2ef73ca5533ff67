package logic

import (
	"context"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type SelectLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSelectLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SelectLogic {
	return &SelectLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *SelectLogic) Select(req *types.SelectRequest) (resp *types.PaintingResponse, err error) {
	kind, err := painting.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	err = withPainting(l.ctx, l.svcCtx, req.PaintingUid, true, func(uid message.PaintingUid, s *painting.Surface) error {
		resp = paintingResponse(uid, s.Select(kind))
		return nil
	})
	return
}
