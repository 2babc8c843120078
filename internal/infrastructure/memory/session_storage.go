package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/plywood-inventory/internal/domain/repository"
)

var _ repository.SessionStorage = (*SessionStorage)(nil)

type storedToken struct {
	token     string
	expiresAt time.Time // cero = sin expiración
}

// SessionStorage tokens por clave de navegador en memoria, con expiración perezosa.
type SessionStorage struct {
	mu     sync.Mutex
	tokens map[string]storedToken
	now    func() time.Time
}

// NewSessionStorage construye el almacenamiento vacío.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{tokens: make(map[string]storedToken), now: time.Now}
}

func (s *SessionStorage) Save(_ context.Context, key, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := storedToken{token: token}
	if ttl > 0 {
		st.expiresAt = s.now().Add(ttl)
	}
	s.tokens[key] = st
	return nil
}

func (s *SessionStorage) Load(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.tokens[key]
	if !ok {
		return "", false, nil
	}
	if !st.expiresAt.IsZero() && !s.now().Before(st.expiresAt) {
		delete(s.tokens, key)
		return "", false, nil
	}
	return st.token, true, nil
}

func (s *SessionStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, key)
	return nil
}
