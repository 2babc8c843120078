package dto

import "github.com/jhoicas/plywood-inventory/internal/domain/entity"

// LoginRequest cuerpo de POST /employee-login y /customer-login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// EmployeeRegisterRequest cuerpo de POST /employee-register.
type EmployeeRegisterRequest struct {
	Name            string `json:"name" form:"name" validate:"required,min=2"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"eqfield=Password"`
	EmployeeCode    string `json:"employeeCode" form:"employeeCode" validate:"required,min=4"`
}

// CustomerRegisterRequest cuerpo de POST /customer-register.
type CustomerRegisterRequest struct {
	Name            string `json:"name" form:"name" validate:"required,min=2"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"eqfield=Password"`
	Company         string `json:"company" form:"company"`
}

// SessionResponse usuario actual, estado de carga y notificaciones pendientes.
type SessionResponse struct {
	User     *entity.User `json:"user"`
	Loading  bool         `json:"loading"`
	Redirect string       `json:"redirect,omitempty"`
	Toasts   []Toast      `json:"toasts,omitempty"`
}
