package logic

import (
	"context"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type LocateLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewLocateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LocateLogic {
	return &LocateLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *LocateLogic) Locate(req *types.LocateRequest) (resp *types.LocateResponse, err error) {
	err = withPainting(l.ctx, l.svcCtx, req.PaintingUid, false, func(_ message.PaintingUid, s *painting.Surface) error {
		resp = &types.LocateResponse{Kind: s.Locate(req.X, req.Y).String()}
		return nil
	})
	return
}
