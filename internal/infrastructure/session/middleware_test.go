package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kondate-ai/kondate/internal/infrastructure/config"
)

func TestMiddleware(t *testing.T) {
	store := NewStore(config.SessionConfig{
		CookieName: "kondate-session",
		TTL:        time.Hour,
	}, sharedMetrics(), zap.NewNop())
	defer store.Close()

	var seen *Session
	handler := Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		require.True(t, ok)
		seen = sess
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("first request creates a session and sets the cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotNil(t, seen)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, seen.ID, cookies[0].Value)
	})

	t.Run("cookie-bearing request reuses the session", func(t *testing.T) {
		first := seen

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "kondate-session", Value: first.ID})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, first.ID, seen.ID)
		assert.Empty(t, w.Result().Cookies())
		assert.Equal(t, 1, store.Len())
	})
}
