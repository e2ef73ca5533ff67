package handler

import (
	"net/http"

	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/paintings",
				Handler: CreatePaintingHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/paintings/:uid/select",
				Handler: SelectHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/paintings/:uid/at",
				Handler: AtHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/paintings/:uid/locate",
				Handler: LocateHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/paintings/:uid/value",
				Handler: ValueHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/paintings/:uid/render",
				Handler: RenderHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/paintings/:uid/finish",
				Handler: FinishHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/paintings/:uid/hints",
				Handler: PostHintHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/paintings/:uid/hints",
				Handler: InquireHintHandler(serverCtx),
			},
		},
	)
}
