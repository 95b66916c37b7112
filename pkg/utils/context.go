package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
	TokenKey     contextKey = "token"
	AdminKey     contextKey = "is_admin"
)

// SetSessionContext records the resolved client session on the request
// context: the session id, the backend bearer token and the admin flag.
// This is the single place the token is made available to gateway calls.
func SetSessionContext(ctx context.Context, sessionID uuid.UUID, token string, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, SessionIDKey, sessionID.String())
	ctx = context.WithValue(ctx, TokenKey, token)
	ctx = context.WithValue(ctx, AdminKey, isAdmin)
	return ctx
}

func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	idVal := ctx.Value(SessionIDKey)
	if idVal == nil {
		return uuid.Nil, false
	}

	idStr, ok := idVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok && token != ""
}

func IsAdminFromContext(ctx context.Context) bool {
	adminVal := ctx.Value(AdminKey)
	if adminVal == nil {
		return false
	}

	isAdmin, ok := adminVal.(bool)
	return ok && isAdmin
}
