package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo cuentas del gateway en memoria, indexadas por email.
type CredentialRepo struct {
	mu      sync.RWMutex
	byEmail map[string]entity.Credential
}

// NewCredentialRepository construye el repositorio vacío.
func NewCredentialRepository() *CredentialRepo {
	return &CredentialRepo{byEmail: make(map[string]entity.Credential)}
}

// Create devuelve domain.ErrConflict si el email ya existe.
func (r *CredentialRepo) Create(_ context.Context, c *entity.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[c.Email]; ok {
		return domain.ErrConflict
	}
	r.byEmail[c.Email] = *c
	return nil
}

// GetByEmail devuelve (nil, nil) si no existe.
func (r *CredentialRepo) GetByEmail(_ context.Context, email string) (*entity.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
