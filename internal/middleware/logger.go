package middleware

import (
	"context"
	"net/http"

	"github.com/boostbuddies/backend/pkg/router"
	"github.com/boostbuddies/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context, r *http.Request, code int) {
		xcontext.Logger(ctx).Infof("%s | %s | %d", r.Method, r.URL.Path, code)
	}
}
