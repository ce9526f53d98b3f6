// Package session provides cookie-based session management. Each
// session owns its own recipe log; no state is shared across sessions.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kondate-ai/kondate/internal/infrastructure/config"
	"github.com/kondate-ai/kondate/internal/infrastructure/monitoring"
	"github.com/kondate-ai/kondate/internal/infrastructure/persistence/memory"
	"github.com/kondate-ai/kondate/internal/ports/outbound"
)

// Session represents one user session and the state it owns
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
	Log       outbound.RecipeLog
}

// Store manages user sessions
type Store struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	cfg      config.SessionConfig
	metrics  *monitoring.Metrics
	logger   *zap.Logger
	done     chan struct{}
}

// NewStore creates a new session store and starts its expiry sweep
func NewStore(cfg config.SessionConfig, metrics *monitoring.Metrics, logger *zap.Logger) *Store {
	store := &Store{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger.Named("session-store"),
		done:     make(chan struct{}),
	}

	go store.cleanupExpired()

	return store
}

// Get retrieves the live session named by the request cookie
func (s *Store) Get(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	session, exists := s.sessions[cookie.Value]
	s.mu.RUnlock()

	if !exists {
		return nil, http.ErrNoCookie
	}

	if time.Now().After(session.ExpiresAt) {
		s.Delete(session.ID)
		return nil, http.ErrNoCookie
	}

	return session, nil
}

// New creates a session with an empty recipe log
func (s *Store) New() *Session {
	session := &Session{
		ID:        generateSessionID(),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(s.cfg.TTL),
		Log:       memory.NewRecipeLog(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(count)
	s.logger.Debug("Session created", zap.String("session_id", session.ID))

	return session
}

// Save sets the session cookie on the response
func (s *Store) Save(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
	})
}

// Delete removes a session and the state it owns
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(count)
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the expiry sweep
func (s *Store) Close() {
	close(s.done)
}

// cleanupExpired removes expired sessions periodically
func (s *Store) cleanupExpired() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()
			for id, session := range s.sessions {
				if now.After(session.ExpiresAt) {
					delete(s.sessions, id)
					s.logger.Debug("Cleaned up expired session", zap.String("session_id", id))
				}
			}
			count := len(s.sessions)
			s.mu.Unlock()

			s.metrics.SetActiveSessions(count)
		}
	}
}

// generateSessionID generates a random session ID
func generateSessionID() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
