package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/application/session"
	"github.com/jhoicas/plywood-inventory/internal/application/validation"
	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// Destinos tras autenticarse.
const (
	employeeHome = "/dashboard"
	customerHome = "/customer/catalog"
)

// AuthHandler login, registro y logout del navegador actual.
type AuthHandler struct {
	employeeCode string
}

// NewAuthHandler construye el handler. employeeCode es el código exigido en el registro de empleados.
func NewAuthHandler(employeeCode string) *AuthHandler {
	return &AuthHandler{employeeCode: employeeCode}
}

// EmployeeLogin godoc
// @Summary      Iniciar sesión como empleado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /employee-login [post]
func (h *AuthHandler) EmployeeLogin(c *fiber.Ctx) error {
	return h.login(c, entity.RoleEmployee, employeeHome)
}

// CustomerLogin godoc
// @Summary      Iniciar sesión como cliente
// @Tags         auth
// @Router       /customer-login [post]
func (h *AuthHandler) CustomerLogin(c *fiber.Ctx) error {
	return h.login(c, entity.RoleCustomer, customerHome)
}

func (h *AuthHandler) login(c *fiber.Ctx, intendedRole, home string) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	st := GetStore(c)
	user, err := st.Login(c.Context(), in.Email, in.Password, intendedRole)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SessionResponse{User: user, Redirect: home, Toasts: st.DrainToasts()})
}

// EmployeeRegister godoc
// @Summary      Registrar empleado (requiere código de empleado)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRegisterRequest  true  "name, email, password, confirmPassword, employeeCode"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /employee-register [post]
func (h *AuthHandler) EmployeeRegister(c *fiber.Ctx) error {
	var in dto.EmployeeRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return writeError(c, err)
	}
	if in.EmployeeCode != h.employeeCode {
		return writeError(c, domain.NewValidationError("employeeCode", "Invalid employee code"))
	}
	return h.register(c, session.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     entity.RoleEmployee,
	}, employeeHome)
}

// CustomerRegister godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Router       /customer-register [post]
func (h *AuthHandler) CustomerRegister(c *fiber.Ctx) error {
	var in dto.CustomerRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return writeError(c, err)
	}
	return h.register(c, session.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     entity.RoleCustomer,
		Company:  in.Company,
	}, customerHome)
}

func (h *AuthHandler) register(c *fiber.Ctx, in session.RegisterInput, home string) error {
	st := GetStore(c)
	user, err := st.Register(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{User: user, Redirect: home, Toasts: st.DrainToasts()})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	st := GetStore(c)
	if err := st.Logout(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SessionResponse{Redirect: "/", Toasts: st.DrainToasts()})
}

// Session godoc
// @Summary      Usuario actual, estado de carga y notificaciones pendientes
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	st := GetStore(c)
	return c.JSON(dto.SessionResponse{
		User:    st.CurrentUser(),
		Loading: st.IsLoading(),
		Toasts:  st.DrainToasts(),
	})
}
