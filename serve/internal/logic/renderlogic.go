package logic

import (
	"context"
	"strings"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type RenderLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRenderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RenderLogic {
	return &RenderLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *RenderLogic) Render(req *types.PaintingRequest) (resp *types.RenderResponse, err error) {
	err = withPainting(l.ctx, l.svcCtx, req.PaintingUid, false, func(_ message.PaintingUid, s *painting.Surface) error {
		resp = &types.RenderResponse{}
		for _, row := range s.Rows() {
			resp.Rows = append(resp.Rows, strings.Join(row, ""))
		}
		resp.Text = s.Render()
		return nil
	})
	return
}
