package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

// PlywoodUseCase acceso a la tabla plywood_sheets: una operación remota por llamada.
type PlywoodUseCase struct {
	tables gateway.TableClient
	log    *logger.Logger
	now    func() time.Time
}

// NewPlywoodUseCase construye el caso de uso.
func NewPlywoodUseCase(tables gateway.TableClient, log *logger.Logger) *PlywoodUseCase {
	return &PlywoodUseCase{tables: tables, log: log, now: time.Now}
}

// PlywoodSheetPatch actualización parcial; solo se envían los campos no nil.
type PlywoodSheetPatch struct {
	Type          *string
	Grade         *string
	Thickness     *int
	Width         *int
	Length        *int
	Quantity      *int
	Location      *string
	PurchaseDate  *time.Time
	PurchasePrice *decimal.Decimal
	Supplier      *string
	Notes         *string
	UpdatedBy     *string
}

func (p PlywoodSheetPatch) row() gateway.Row {
	r := gateway.Row{}
	setIf(r, "type", p.Type)
	setIf(r, "grade", p.Grade)
	setIf(r, "thickness", p.Thickness)
	setIf(r, "width", p.Width)
	setIf(r, "length", p.Length)
	setIf(r, "quantity", p.Quantity)
	setIf(r, "location", p.Location)
	if p.PurchaseDate != nil {
		r["purchase_date"] = nullableTime(*p.PurchaseDate)
	}
	setIf(r, "purchase_price", p.PurchasePrice)
	setIf(r, "supplier", p.Supplier)
	if p.Notes != nil {
		r["notes"] = nullableString(*p.Notes)
	}
	setIf(r, "updated_by", p.UpdatedBy)
	return r
}

func setIf[T any](r gateway.Row, column string, v *T) {
	if v != nil {
		r[column] = *v
	}
}

func plywoodRow(s entity.PlywoodSheet) gateway.Row {
	return gateway.Row{
		"type":           s.Type,
		"grade":          s.Grade,
		"thickness":      s.Thickness,
		"width":          s.Width,
		"length":         s.Length,
		"quantity":       s.Quantity,
		"location":       s.Location,
		"purchase_date":  nullableTime(s.PurchaseDate),
		"purchase_price": s.PurchasePrice,
		"supplier":       s.Supplier,
		"notes":          nullableString(s.Notes),
		"last_updated":   s.LastUpdated,
		"updated_by":     s.UpdatedBy,
	}
}

// FetchPlywoodInventory devuelve todas las láminas; slice vacío si no hay filas.
func (uc *PlywoodUseCase) FetchPlywoodInventory(ctx context.Context) ([]entity.PlywoodSheet, error) {
	rows, err := uc.tables.From(gateway.TablePlywoodSheets).Select(ctx, gateway.Query{})
	if err != nil {
		uc.log.Error().Err(err).Msg("Error fetching plywood inventory")
		return nil, err
	}
	sheets, err := decodeRows[entity.PlywoodSheet](gateway.TablePlywoodSheets, rows)
	if err != nil {
		uc.log.Error().Err(err).Msg("Error fetching plywood inventory")
		return nil, err
	}
	return sheets, nil
}

// AddPlywoodSheet inserta la lámina (el id lo asigna el gateway) y devuelve la fila insertada.
func (uc *PlywoodUseCase) AddPlywoodSheet(ctx context.Context, sheet entity.PlywoodSheet) (*entity.PlywoodSheet, error) {
	if sheet.LastUpdated.IsZero() {
		sheet.LastUpdated = uc.now().UTC()
	}
	row, err := uc.tables.From(gateway.TablePlywoodSheets).Insert(ctx, plywoodRow(sheet))
	if err != nil {
		uc.log.Error().Err(err).Msg("Error adding plywood sheet")
		return nil, err
	}
	return uc.decodeOne(row, "Error adding plywood sheet")
}

// UpdatePlywoodSheet aplica patch a la lámina id y refresca last_updated.
func (uc *PlywoodUseCase) UpdatePlywoodSheet(ctx context.Context, id string, patch PlywoodSheetPatch) (*entity.PlywoodSheet, error) {
	r := patch.row()
	r["last_updated"] = uc.now().UTC()
	row, err := uc.tables.From(gateway.TablePlywoodSheets).Update(ctx, r, gateway.IDField, id)
	if err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("Error updating plywood sheet")
		return nil, err
	}
	return uc.decodeOne(row, "Error updating plywood sheet")
}

// DeletePlywoodSheet borra la lámina id.
func (uc *PlywoodUseCase) DeletePlywoodSheet(ctx context.Context, id string) error {
	if err := uc.tables.From(gateway.TablePlywoodSheets).Delete(ctx, gateway.IDField, id); err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("Error deleting plywood sheet")
		return err
	}
	return nil
}

func (uc *PlywoodUseCase) decodeOne(row gateway.Row, msg string) (*entity.PlywoodSheet, error) {
	var s entity.PlywoodSheet
	if err := decodeRow(row, &s); err != nil {
		uc.log.Error().Err(err).Msg(msg)
		return nil, err
	}
	return &s, nil
}
