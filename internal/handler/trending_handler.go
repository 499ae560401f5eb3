package handler

import (
	"errors"
	"net/http"

	"pickleball_trending/internal/logic"
	"pickleball_trending/internal/svc"
	"pickleball_trending/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetTrendingHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetTrendingReq
		if err := httpx.Parse(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "bad_request", err)
			return
		}
		resp, err := svcCtx.TrendingLogic.GetTrending(r.Context(), req.Limit)
		if err != nil {
			writeLogicError(w, r, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}

// RefreshTrendingHandler 互动计数变化后调用，重建排行快照
func RefreshTrendingHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svcCtx.TrendingLogic.Refresh(r.Context())
		if err != nil {
			writeLogicError(w, r, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}

func GetTopCreatorsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetTopCreatorsReq
		if err := httpx.Parse(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "bad_request", err)
			return
		}
		resp, err := svcCtx.TrendingLogic.TopCreators(r.Context(), req.Limit)
		if err != nil {
			writeLogicError(w, r, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}

func writeLogicError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, logic.ErrDataUnavailable) {
		writeError(w, r, http.StatusServiceUnavailable, "data_unavailable", err)
		return
	}
	writeError(w, r, http.StatusInternalServerError, "internal", err)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	if status >= http.StatusInternalServerError {
		logx.WithContext(r.Context()).Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	httpx.WriteJsonCtx(r.Context(), w, status, &types.ErrorResp{Code: code, Msg: err.Error()})
}
