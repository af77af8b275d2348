package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoca/recipebox/internal/auth"
)

func TestAuthMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", "recipebox", time.Hour)
	mw := NewAuthMiddleware(tm)

	var gotUID int64
	handler := mw.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserID(r.Context())
		require.True(t, ok)
		gotUID = uid
		w.WriteHeader(http.StatusOK)
	}))

	tok, _, err := tm.Issue(7)
	require.NoError(t, err)

	expired := auth.NewTokenManager("test-secret", "recipebox", -time.Minute)
	expiredTok, _, err := expired.Issue(7)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredTok, http.StatusUnauthorized},
		{"valid token", "Bearer " + tok, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			if tc.status == http.StatusUnauthorized {
				assert.JSONEq(t, `{"message":"Invalid or missing token"}`, rr.Body.String())
			}
		})
	}
	assert.Equal(t, int64(7), gotUID)
}
