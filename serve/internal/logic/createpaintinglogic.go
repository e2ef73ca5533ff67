package logic

import (
	"context"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type CreatePaintingLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreatePaintingLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreatePaintingLogic {
	return &CreatePaintingLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CreatePaintingLogic) CreatePainting(req *types.CreatePaintingRequest) (*types.PaintingResponse, error) {
	if maxSize := l.svcCtx.Config.MaxSurfaceSize; req.Width > maxSize || req.Height > maxSize {
		return nil, ErrSurfaceTooLarge
	}

	s, err := painting.NewSurface(req.Width, req.Height)
	if err != nil {
		return nil, err
	}

	uid := message.NewPaintingUid()
	if err := l.svcCtx.Store.Save(l.ctx, uid, s); err != nil {
		return nil, err
	}

	l.svcCtx.Recorder.RecordStart(uid, req.Width, req.Height)
	l.Infof("created painting %s, %dx%d", uid, req.Width, req.Height)

	return paintingResponse(uid, s), nil
}
