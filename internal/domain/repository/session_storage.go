package repository

import (
	"context"
	"time"
)

// SessionStorage guarda el access token del gateway por clave de navegador.
type SessionStorage interface {
	Save(ctx context.Context, key, token string, ttl time.Duration) error
	// Load devuelve ("", false, nil) si no hay token para key.
	Load(ctx context.Context, key string) (string, bool, error)
	Remove(ctx context.Context, key string) error
}
