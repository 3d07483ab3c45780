package handler

import (
	"context"
	"net/http"
	"strings"
)

type userIDKey struct{}

// authenticate resolves the Bearer token to a user id in the request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "no token provided")
			return
		}

		claims, err := h.authSvc.VerifyToken(token)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFrom(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey{}).(int)
	return id, ok
}
