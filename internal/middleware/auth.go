package middleware

import (
	"encoding/json"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifesync/backend/api/transport"
	"github.com/lifesync/backend/domain"
	"github.com/lifesync/backend/internal/token"
)

// UserIDKey is the request-scoped key under which the resolved
// principal's user id is stored.
const UserIDKey = "auth_user_id"

// Principal resolves the bearer credential on every protected route.
// Requests without a valid token never reach the wrapped handler.
func Principal(tokens *token.Service, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			credential := extractBearer(ctx)
			if credential == "" {
				reject(ctx, domain.ErrTokenMissing)
				return
			}

			userID, err := tokens.Resolve(credential)
			if err != nil {
				logger.Warn("credential rejected", zap.Error(err))
				reject(ctx, err)
				return
			}

			ctx.SetUserValue(UserIDKey, userID)
			next(ctx)
		}
	}
}

// ResolvedUserID returns the principal established by the middleware,
// or "" when the request never went through it.
func ResolvedUserID(ctx *fasthttp.RequestCtx) string {
	userID, _ := ctx.UserValue(UserIDKey).(string)
	return userID
}

func reject(ctx *fasthttp.RequestCtx, err error) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	body, _ := json.Marshal(transport.NewError(string(domain.ErrCodeUnauthorized), err.Error(), nil))
	ctx.SetBody(body)
}

func extractBearer(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
