package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/boostbuddies/backend/pkg/errorx"
	"github.com/boostbuddies/backend/pkg/router"
	"github.com/boostbuddies/backend/pkg/xcontext"
)

// Authenticate resolves the bearer token into the requesting user id. Routes
// behind this middleware can rely on a non-empty xcontext.RequestUserID.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		authorization := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authorization, "Bearer ")
		if !found || token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}
