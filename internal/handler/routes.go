package handler

import (
	"net/http"

	"pickleball_trending/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodGet,
			Path:    "/trending",
			Handler: GetTrendingHandler(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/trending/refresh",
			Handler: RefreshTrendingHandler(svcCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/trending/creators",
			Handler: GetTopCreatorsHandler(svcCtx),
		},
	})
}
