package router

import (
	"context"
	"net/http"

	"github.com/boostbuddies/backend/config"
	"github.com/boostbuddies/backend/internal/model"
	"github.com/boostbuddies/backend/pkg/authenticator"
	"github.com/boostbuddies/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HandlerFunc is a transport-free endpoint. The wrapper owns binding and the
// response envelope; handlers only see their request model and a seeded
// context.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler and may enrich the context. An error
// short-circuits the request with the error envelope.
type MiddlewareFunc func(ctx context.Context, r *http.Request) (context.Context, error)

// CloserFunc runs after the response has been written.
type CloserFunc func(ctx context.Context, r *http.Request, code int)

type Router struct {
	Inner gin.IRouter

	engine      *gin.Engine
	db          *gorm.DB
	cfg         config.Configs
	logger      logger.Logger
	tokenEngine authenticator.TokenEngine[model.AccessToken]
	befores     []MiddlewareFunc
	closers     []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	engine := gin.New()
	return &Router{
		Inner:       engine,
		engine:      engine,
		db:          db,
		cfg:         cfg,
		logger:      logger,
		tokenEngine: authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken),
	}
}

// Branch returns a router sharing the same gin tree but with its own
// middleware and closer chains, so authenticated routes can hang off a copy
// without leaking their befores into the public ones.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Handler() http.Handler {
	return r.engine
}
