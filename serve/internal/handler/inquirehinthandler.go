package handler

import (
	"fmt"
	"net/http"

	"github.com/HuXin0817/painting/serve/internal/logic"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func InquireHintHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.InquireHintRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, fmt.Errorf("%w: %v", ErrBadRequest, err))
			return
		}

		l := logic.NewInquireHintLogic(r.Context(), svcCtx)
		resp, err := l.InquireHint(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
