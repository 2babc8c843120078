// Package redis guarda los access tokens del gateway por navegador en Redis con TTL.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/plywood-inventory/internal/domain/repository"
)

var _ repository.SessionStorage = (*SessionStorage)(nil)

// SessionStorage implementación de repository.SessionStorage sobre Redis.
type SessionStorage struct {
	client *goredis.Client
	prefix string
}

// NewClient construye el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, addr, password string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr, Password: password})
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// NewSessionStorage construye el almacenamiento; las claves quedan como prefix:key.
func NewSessionStorage(client *goredis.Client, prefix string) *SessionStorage {
	return &SessionStorage{client: client, prefix: prefix}
}

func (s *SessionStorage) redisKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Save guarda token bajo key; ttl <= 0 guarda sin expiración.
func (s *SessionStorage) Save(ctx context.Context, key, token string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, s.redisKey(key), token, ttl).Err()
}

// Load devuelve el token de key; ("", false, nil) si no existe o expiró.
func (s *SessionStorage) Load(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Remove borra el token de key. Borrar una clave inexistente no es error.
func (s *SessionStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		return err
	}
	return nil
}
