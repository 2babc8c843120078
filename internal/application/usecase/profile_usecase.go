package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

// ProfileUseCase acceso a la tabla profiles (nombre, rol y empresa por usuario del gateway).
type ProfileUseCase struct {
	tables gateway.TableClient
	log    *logger.Logger
	now    func() time.Time
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(tables gateway.TableClient, log *logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{tables: tables, log: log, now: time.Now}
}

// GetProfile devuelve el perfil del usuario id; (nil, nil) si no existe.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	rows, err := uc.tables.From(gateway.TableProfiles).Select(ctx, gateway.Eq(gateway.IDField, id))
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", id).Msg("Error fetching profile")
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return uc.decodeOne(rows[0], "Error fetching profile")
}

// CreateProfile inserta el perfil con el id del usuario del gateway.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, p entity.Profile) (*entity.Profile, error) {
	row, err := uc.tables.From(gateway.TableProfiles).Insert(ctx, gateway.Row{
		"id":         p.ID,
		"name":       p.Name,
		"email":      p.Email,
		"role":       p.Role,
		"company":    nullableString(p.Company),
		"updated_at": uc.now().UTC(),
	})
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", p.ID).Msg("Error creating profile")
		return nil, err
	}
	return uc.decodeOne(row, "Error creating profile")
}

// ProfilePatch actualización parcial de un perfil.
type ProfilePatch struct {
	Name    *string
	Role    *string
	Company *string
}

// UpdateProfile aplica patch al perfil id y refresca updated_at.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*entity.Profile, error) {
	r := gateway.Row{"updated_at": uc.now().UTC()}
	setIf(r, "name", patch.Name)
	setIf(r, "role", patch.Role)
	if patch.Company != nil {
		r["company"] = nullableString(*patch.Company)
	}
	row, err := uc.tables.From(gateway.TableProfiles).Update(ctx, r, gateway.IDField, id)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", id).Msg("Error updating profile")
		return nil, err
	}
	return uc.decodeOne(row, "Error updating profile")
}

func (uc *ProfileUseCase) decodeOne(row gateway.Row, msg string) (*entity.Profile, error) {
	var p entity.Profile
	if err := decodeRow(row, &p); err != nil {
		uc.log.Error().Err(err).Msg(msg)
		return nil, err
	}
	return &p, nil
}
