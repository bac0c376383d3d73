package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luckydraw-lab/backend/config"
	"github.com/luckydraw-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

type Router struct {
	Inner gin.IRouter

	cfg         config.Configs
	logger      logger.Logger
	db          *gorm.DB
	middlewares []MiddlewareFunc
}

func New(cfg config.Configs, logger logger.Logger, db *gorm.DB) *Router {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Router{
		Inner:  gin.New(),
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Use(middleware MiddlewareFunc) {
	r.middlewares = append(r.middlewares, middleware)
}

func (r *Router) Group(pattern string) *Router {
	return &Router{
		Inner:       r.Inner.Group(pattern),
		cfg:         r.cfg,
		logger:      r.logger,
		db:          r.db,
		middlewares: r.middlewares,
	}
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}
