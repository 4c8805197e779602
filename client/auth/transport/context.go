package transport

import "context"

type contextKey string

const (
	contextAuthKey      contextKey = "auth"
	contextAuthTokenKey contextKey = "authToken"
)

// WithAuth marks ctx so that requests carry the stored bearer token.
func WithAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextAuthKey, true)
}

// WithAuthToken marks ctx so that requests carry the supplied token,
// bypassing the store.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextAuthTokenKey, token)
}

func isAuthenticated(ctx context.Context) bool {
	if value := ctx.Value(contextAuthKey); value != nil {
		if flag, ok := value.(bool); ok {
			return flag
		}
	}
	return false
}

func getAuthToken(ctx context.Context) string {
	if value := ctx.Value(contextAuthTokenKey); value != nil {
		if token, ok := value.(string); ok {
			return token
		}
	}
	return ""
}
