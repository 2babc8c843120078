package dto

import "github.com/jhoicas/plywood-inventory/internal/domain/entity"

// CreateTransactionRequest cuerpo de POST /api/transactions. Sin date se usa el instante actual.
type CreateTransactionRequest struct {
	Type      string `json:"type" validate:"required,oneof=addition removal"`
	PlywoodID string `json:"plywoodId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
	Date      string `json:"date"`
	Reason    string `json:"reason" validate:"required"`
	Notes     string `json:"notes"`
}

// ToEntity construye el movimiento; performedBy es el nombre del usuario actual.
func (r CreateTransactionRequest) ToEntity(performedBy string) (entity.Transaction, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return entity.Transaction{}, err
	}
	return entity.Transaction{
		Type:        r.Type,
		PlywoodID:   r.PlywoodID,
		Quantity:    r.Quantity,
		Date:        date,
		PerformedBy: performedBy,
		Reason:      r.Reason,
		Notes:       r.Notes,
	}, nil
}
