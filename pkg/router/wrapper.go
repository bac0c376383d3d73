package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luckydraw-lab/backend/pkg/errorx"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = ginCtx.ShouldBindQuery(&req)
		case http.MethodPost:
			err = ginCtx.ShouldBindJSON(&req)
		}

		if err != nil {
			ginCtx.JSON(http.StatusBadRequest,
				newErrorResponse(errorx.New(errorx.BadRequest, "Cannot bind the request")))
			return
		}

		ctx := router.newRequestContext(ginCtx)
		for _, middleware := range router.middlewares {
			if ctx, err = middleware(ctx); err != nil {
				writeError(ginCtx, err)
				return
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(ginCtx, err)
			return
		}

		ginCtx.JSON(http.StatusOK, newResponse(resp))
	}
}

func (r *Router) newRequestContext(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithDB(ctx, r.db)
	return ctx
}
