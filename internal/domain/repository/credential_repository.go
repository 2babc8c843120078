package repository

import (
	"context"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// CredentialRepository define el puerto de persistencia de cuentas del gateway (DIP).
type CredentialRepository interface {
	// Create devuelve domain.ErrConflict si el email ya existe.
	Create(ctx context.Context, cred *entity.Credential) error
	// GetByEmail devuelve (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
