package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/emrekoca/recipebox/internal/api/httpx"
	"github.com/emrekoca/recipebox/internal/auth"
)

type ctxKey string

const ctxUserIDKey ctxKey = "uid"

// UserID returns the identity resolved by Auth for this request.
func UserID(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(ctxUserIDKey).(int64)
	return v, ok
}

type AuthMiddleware struct {
	TM *auth.TokenManager
}

func NewAuthMiddleware(tm *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{TM: tm}
}

// Auth requires a valid bearer token. Missing, malformed and expired tokens
// all get the same 401; the reason only goes to the log.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			slog.Debug("auth rejected", "reason", "missing bearer token", "path", r.URL.Path)
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		uid, err := m.TM.Parse(token)
		if err != nil {
			slog.Debug("auth rejected", "reason", err, "path", r.URL.Path)
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserIDKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
