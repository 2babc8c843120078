package dto

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// CreatePlywoodSheetRequest cuerpo de POST /inventory y POST /api/plywood.
// Fechas en texto ("2023-09-15" o RFC 3339).
type CreatePlywoodSheetRequest struct {
	Type          string          `json:"type" validate:"required"`
	Grade         string          `json:"grade" validate:"required"`
	Thickness     int             `json:"thickness" validate:"gt=0"`
	Width         int             `json:"width" validate:"gt=0"`
	Length        int             `json:"length" validate:"gt=0"`
	Quantity      int             `json:"quantity" validate:"gte=0"`
	Location      string          `json:"location"`
	PurchaseDate  string          `json:"purchaseDate"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Supplier      string          `json:"supplier"`
	Notes         string          `json:"notes"`
}

// ToEntity construye la lámina a insertar; updatedBy es el nombre del usuario actual.
func (r CreatePlywoodSheetRequest) ToEntity(updatedBy string) (entity.PlywoodSheet, error) {
	if r.PurchasePrice.IsNegative() {
		return entity.PlywoodSheet{}, domain.NewValidationError("purchasePrice", "Purchase price must be at least 0")
	}
	date, err := parseDate("purchaseDate", r.PurchaseDate)
	if err != nil {
		return entity.PlywoodSheet{}, err
	}
	return entity.PlywoodSheet{
		Type:          r.Type,
		Grade:         r.Grade,
		Thickness:     r.Thickness,
		Width:         r.Width,
		Length:        r.Length,
		Quantity:      r.Quantity,
		Location:      r.Location,
		PurchaseDate:  date,
		PurchasePrice: r.PurchasePrice,
		Supplier:      r.Supplier,
		Notes:         r.Notes,
		UpdatedBy:     updatedBy,
	}, nil
}

// UpdatePlywoodSheetRequest cuerpo de PUT /api/plywood/:id; campos ausentes no cambian.
type UpdatePlywoodSheetRequest struct {
	Type          *string          `json:"type" validate:"omitempty,min=1"`
	Grade         *string          `json:"grade" validate:"omitempty,min=1"`
	Thickness     *int             `json:"thickness" validate:"omitempty,gt=0"`
	Width         *int             `json:"width" validate:"omitempty,gt=0"`
	Length        *int             `json:"length" validate:"omitempty,gt=0"`
	Quantity      *int             `json:"quantity" validate:"omitempty,gte=0"`
	Location      *string          `json:"location"`
	PurchaseDate  *string          `json:"purchaseDate"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	Supplier      *string          `json:"supplier"`
	Notes         *string          `json:"notes"`
}

// ToPatch traduce la petición al patch del caso de uso.
func (r UpdatePlywoodSheetRequest) ToPatch(updatedBy string) (usecase.PlywoodSheetPatch, error) {
	p := usecase.PlywoodSheetPatch{
		Type:          r.Type,
		Grade:         r.Grade,
		Thickness:     r.Thickness,
		Width:         r.Width,
		Length:        r.Length,
		Quantity:      r.Quantity,
		Location:      r.Location,
		PurchasePrice: r.PurchasePrice,
		Supplier:      r.Supplier,
		Notes:         r.Notes,
		UpdatedBy:     &updatedBy,
	}
	if r.PurchasePrice != nil && r.PurchasePrice.IsNegative() {
		return p, domain.NewValidationError("purchasePrice", "Purchase price must be at least 0")
	}
	if r.PurchaseDate != nil {
		d, err := parseDate("purchaseDate", *r.PurchaseDate)
		if err != nil {
			return p, err
		}
		p.PurchaseDate = &d
	}
	return p, nil
}

func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "Invalid date")
	}
	return t, nil
}
