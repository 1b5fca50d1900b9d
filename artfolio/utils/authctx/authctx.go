// Package authctx carries the authenticated user id on a request context.
package authctx

import "context"

type contextKey string

const UserIDKey contextKey = "user_id"

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserIDFrom returns the user id, or "" and false when the request is anonymous.
func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}
