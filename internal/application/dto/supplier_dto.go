package dto

import (
	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// CreateSupplierRequest cuerpo de POST /api/suppliers.
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// ToEntity construye el proveedor a insertar.
func (r CreateSupplierRequest) ToEntity() entity.Supplier {
	return entity.Supplier{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
	}
}

// UpdateSupplierRequest cuerpo de PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

// ToPatch traduce la petición al patch del caso de uso.
func (r UpdateSupplierRequest) ToPatch() usecase.SupplierPatch {
	return usecase.SupplierPatch{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
	}
}
