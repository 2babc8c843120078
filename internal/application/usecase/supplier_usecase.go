package usecase

import (
	"context"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

// SupplierUseCase acceso a la tabla suppliers.
type SupplierUseCase struct {
	tables gateway.TableClient
	log    *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(tables gateway.TableClient, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{tables: tables, log: log}
}

// SupplierPatch actualización parcial de un proveedor.
type SupplierPatch struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
}

func (p SupplierPatch) row() gateway.Row {
	r := gateway.Row{}
	setIf(r, "name", p.Name)
	setIf(r, "contact_person", p.ContactPerson)
	setIf(r, "email", p.Email)
	setIf(r, "phone", p.Phone)
	setIf(r, "address", p.Address)
	return r
}

func supplierRow(s entity.Supplier) gateway.Row {
	return gateway.Row{
		"name":           s.Name,
		"contact_person": s.ContactPerson,
		"email":          s.Email,
		"phone":          s.Phone,
		"address":        s.Address,
	}
}

// FetchSuppliers devuelve todos los proveedores.
func (uc *SupplierUseCase) FetchSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	rows, err := uc.tables.From(gateway.TableSuppliers).Select(ctx, gateway.Query{})
	if err == nil {
		var suppliers []entity.Supplier
		if suppliers, err = decodeRows[entity.Supplier](gateway.TableSuppliers, rows); err == nil {
			return suppliers, nil
		}
	}
	uc.log.Error().Err(err).Msg("Error fetching suppliers")
	return nil, err
}

// AddSupplier inserta el proveedor y devuelve la fila con id asignado.
func (uc *SupplierUseCase) AddSupplier(ctx context.Context, s entity.Supplier) (*entity.Supplier, error) {
	row, err := uc.tables.From(gateway.TableSuppliers).Insert(ctx, supplierRow(s))
	if err != nil {
		uc.log.Error().Err(err).Msg("Error adding supplier")
		return nil, err
	}
	return uc.decodeOne(row, "Error adding supplier")
}

// UpdateSupplier aplica patch al proveedor id.
func (uc *SupplierUseCase) UpdateSupplier(ctx context.Context, id string, patch SupplierPatch) (*entity.Supplier, error) {
	row, err := uc.tables.From(gateway.TableSuppliers).Update(ctx, patch.row(), gateway.IDField, id)
	if err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("Error updating supplier")
		return nil, err
	}
	return uc.decodeOne(row, "Error updating supplier")
}

// DeleteSupplier borra el proveedor id. Las láminas que lo nombran no se tocan.
func (uc *SupplierUseCase) DeleteSupplier(ctx context.Context, id string) error {
	if err := uc.tables.From(gateway.TableSuppliers).Delete(ctx, gateway.IDField, id); err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("Error deleting supplier")
		return err
	}
	return nil
}

func (uc *SupplierUseCase) decodeOne(row gateway.Row, msg string) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := decodeRow(row, &s); err != nil {
		uc.log.Error().Err(err).Msg(msg)
		return nil, err
	}
	return &s, nil
}
