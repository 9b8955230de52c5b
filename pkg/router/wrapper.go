package router

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/boostbuddies/backend/pkg/errorx"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		ctx := seedContext(ginCtx.Request.Context(), router)

		err := func() error {
			for _, before := range router.befores {
				next, err := before(ctx, ginCtx.Request)
				if err != nil {
					return err
				}

				ctx = next
			}

			var req Request
			var err error
			switch method {
			case http.MethodGet:
				err = ginCtx.ShouldBindQuery(&req)
			case http.MethodPost:
				err = ginCtx.ShouldBindJSON(&req)
				// An empty body is a valid zero-value request.
				if errors.Is(err, io.EOF) {
					err = nil
				}
			}
			if err != nil {
				return errorx.New(errorx.BadRequest, "Cannot bind the request")
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				return err
			}

			ginCtx.JSON(http.StatusOK, newResponse(resp))
			return nil
		}()

		if err != nil {
			ginCtx.JSON(http.StatusOK, newErrorResponse(err))
		}

		for _, closer := range router.closers {
			closer(ctx, ginCtx.Request, ginCtx.Writer.Status())
		}
	}
}

func seedContext(ctx context.Context, router *Router) context.Context {
	ctx = xcontext.WithDB(ctx, router.db)
	ctx = xcontext.WithConfigs(ctx, router.cfg)
	ctx = xcontext.WithLogger(ctx, router.logger)
	ctx = xcontext.WithTokenEngine(ctx, router.tokenEngine)
	return ctx
}
