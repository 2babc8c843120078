// Package gateway define los puertos del backend remoto: autenticación por sesión
// y operaciones genéricas por tabla. Los adaptadores viven en infrastructure.
package gateway

import (
	"context"
	"time"
)

// Tablas del gateway.
const (
	TableProfiles      = "profiles"
	TablePlywoodSheets = "plywood_sheets"
	TableSuppliers     = "suppliers"
	TableTransactions  = "transactions"
)

// IDField columna identificadora de todas las tablas.
const IDField = "id"

// Eventos de cambio de autenticación.
const (
	EventSignedIn  = "SIGNED_IN"
	EventSignedOut = "SIGNED_OUT"
)

// Session noción de conexión autenticada del gateway (independiente del perfil y del rol).
type Session struct {
	AccessToken string
	UserID      string
	Email       string
	ExpiresAt   time.Time
}

// AuthHandler recibe cada cambio de autenticación. session es nil en EventSignedOut.
type AuthHandler func(event string, session *Session)

// Subscription se cancela con Unsubscribe; llamadas repetidas no tienen efecto.
type Subscription interface {
	Unsubscribe()
}

// AuthClient API de autenticación del gateway, atada a un almacenamiento de sesión (un navegador).
type AuthClient interface {
	// GetSession devuelve la sesión almacenada o nil si no hay ninguna vigente.
	GetSession(ctx context.Context) (*Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
	OnAuthStateChange(handler AuthHandler) Subscription
}

// AuthProvider construye el AuthClient de un almacenamiento (clave de sesión del navegador).
type AuthProvider interface {
	Auth(storageKey string) AuthClient
}

// Row fila en la frontera: columnas lower_snake_case.
type Row map[string]any

// Filter igualdad columna = valor.
type Filter struct {
	Column string
	Value  any
}

// Query selección con filtros de igualdad y orden opcional.
type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
}

// Eq atajo para una Query con un único filtro de igualdad.
func Eq(column string, value any) Query {
	return Query{Filters: []Filter{{Column: column, Value: value}}}
}

// Table operaciones genéricas sobre una tabla.
type Table interface {
	// Select devuelve las filas que cumplen q; nunca nil.
	Select(ctx context.Context, q Query) ([]Row, error)
	// Insert inserta una fila y devuelve la fila insertada con el id asignado por el servidor.
	Insert(ctx context.Context, row Row) (Row, error)
	// Update aplica patch a la fila idField = id y la devuelve; error si no existe.
	Update(ctx context.Context, patch Row, idField, id string) (Row, error)
	Delete(ctx context.Context, idField, id string) error
}

// TableClient da acceso a las tablas por nombre.
type TableClient interface {
	From(table string) Table
}
