// Package session mantiene el estado de sesión y rol de un navegador: usuario actual,
// indicador de carga y las operaciones login, register y logout contra el gateway.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/plywood-inventory/internal/application/screens"
	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/application/validation"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

// profileTimeout límite de la consulta de perfil disparada por un cambio de autenticación.
const profileTimeout = 10 * time.Second

// ProfileService operaciones de perfil que usa el Store.
type ProfileService interface {
	GetProfile(ctx context.Context, id string) (*entity.Profile, error)
	CreateProfile(ctx context.Context, p entity.Profile) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, id string, patch usecase.ProfilePatch) (*entity.Profile, error)
}

// Store estado de sesión de un navegador. Se construye con NewStore, se inicializa con
// Start y se desmonta con Close (la suscripción a cambios de auth se cancela una vez).
type Store struct {
	auth     gateway.AuthClient
	profiles ProfileService
	log      *logger.Logger
	views    *screens.Views

	startOnce sync.Once
	closeOnce sync.Once

	mu       sync.Mutex
	user     *entity.User
	starting bool
	inflight int
	toasts   []Toast
	sub      gateway.Subscription
}

// NewStore construye el Store. IsLoading es true hasta que Start termina.
func NewStore(auth gateway.AuthClient, profiles ProfileService, log *logger.Logger) *Store {
	return &Store{auth: auth, profiles: profiles, log: log, views: screens.NewViews(), starting: true}
}

// Start se suscribe a los cambios de autenticación y recupera la sesión existente.
// Un fallo al leer el perfil deja al usuario sin autenticar y solo se registra.
// Llamadas repetidas no tienen efecto.
func (s *Store) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		sub := s.auth.OnAuthStateChange(s.onAuthChange)
		s.mu.Lock()
		s.sub = sub
		s.mu.Unlock()

		var user *entity.User
		sess, err := s.auth.GetSession(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("no se pudo recuperar la sesión del gateway")
		} else if sess != nil {
			user = s.loadUser(ctx, sess)
		}

		s.mu.Lock()
		s.user = user
		s.starting = false
		s.mu.Unlock()
	})
}

// Close cancela la suscripción a cambios de autenticación exactamente una vez.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		sub := s.sub
		s.mu.Unlock()
		if sub != nil {
			sub.Unsubscribe()
		}
	})
}

// CurrentUser copia del usuario actual o nil.
func (s *Store) CurrentUser() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsLoading true durante la inicialización y mientras haya una operación en curso.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starting || s.inflight > 0
}

// Views estado de pantallas del navegador (inventario montado y carrito).
func (s *Store) Views() *screens.Views {
	return s.views
}

// DrainToasts devuelve y vacía las notificaciones pendientes.
func (s *Store) DrainToasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.toasts
	s.toasts = nil
	return out
}

// Login autentica contra el gateway y lee o actualiza el perfil con el rol que
// corresponde a intendedRole (ver AssignRole). Si el perfil falla, la sesión parcial se cierra.
func (s *Store) Login(ctx context.Context, email, password, intendedRole string) (*entity.User, error) {
	s.begin()
	defer s.end()

	user, err := s.login(ctx, email, password, intendedRole)
	if err != nil {
		s.push(failureToast("Login failed", err, "Please check your credentials and try again"))
		return nil, err
	}
	s.setUser(user)
	s.push(successToast("Login successful", "Welcome back, "+user.Name+"!"))
	return user, nil
}

func (s *Store) login(ctx context.Context, email, password, intendedRole string) (*entity.User, error) {
	in := credentialsInput{Email: email, Password: password, Role: intendedRole}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	sess, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	profile, err := s.ensureProfile(ctx, sess, AssignRole(email, intendedRole))
	if err != nil {
		s.discardSession(ctx)
		return nil, err
	}
	return profile.ToUser(), nil
}

// ensureProfile lee el perfil del usuario y lo crea o corrige para que tenga role.
func (s *Store) ensureProfile(ctx context.Context, sess *gateway.Session, role string) (*entity.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return s.profiles.CreateProfile(ctx, entity.Profile{
			ID:    sess.UserID,
			Name:  entity.DisplayNameFromEmail(sess.Email),
			Email: sess.Email,
			Role:  role,
		})
	}
	if profile.Role != role {
		return s.profiles.UpdateProfile(ctx, sess.UserID, usecase.ProfilePatch{Role: &role})
	}
	return profile, nil
}

// RegisterInput datos del alta. Company es opcional.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin employee customer"`
	Company  string `json:"company"`
}

// Register crea la cuenta en el gateway y luego el perfil con rol y empresa.
// Un ValidationError se devuelve antes de cualquier llamada de red y no toca el usuario actual.
func (s *Store) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	s.begin()
	defer s.end()

	user, err := s.register(ctx, in)
	if err != nil {
		s.push(failureToast("Registration failed", err, "Please try again with different credentials"))
		return nil, err
	}
	s.setUser(user)
	s.push(successToast("Registration successful", "Welcome, "+user.Name+"!"))
	return user, nil
}

func (s *Store) register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	sess, err := s.auth.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.CreateProfile(ctx, entity.Profile{
		ID:      sess.UserID,
		Name:    in.Name,
		Email:   sess.Email,
		Role:    in.Role,
		Company: in.Company,
	})
	if err != nil {
		s.discardSession(ctx)
		return nil, err
	}
	return profile.ToUser(), nil
}

// Logout invalida la sesión del gateway y limpia el usuario actual aunque el gateway falle.
func (s *Store) Logout(ctx context.Context) error {
	s.begin()
	defer s.end()

	err := s.auth.SignOut(ctx)
	s.setUser(nil)
	s.views.Reset()
	if err != nil {
		s.log.Warn().Err(err).Msg("sign out del gateway falló; la sesión local se limpió igual")
		s.push(failureToast("Logout failed", err, "The session could not be closed on the server"))
		return err
	}
	s.push(successToast("Logged out", "You have been successfully logged out"))
	return nil
}

// onAuthChange mantiene el usuario al día con los eventos del gateway.
func (s *Store) onAuthChange(event string, sess *gateway.Session) {
	switch event {
	case gateway.EventSignedOut:
		s.setUser(nil)
	case gateway.EventSignedIn:
		if sess == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), profileTimeout)
		defer cancel()
		s.setUser(s.loadUser(ctx, sess))
	}
}

func (s *Store) loadUser(ctx context.Context, sess *gateway.Session) *entity.User {
	profile, err := s.profiles.GetProfile(ctx, sess.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", sess.UserID).Msg("no se pudo leer el perfil; usuario sin autenticar")
		return nil
	}
	if profile == nil {
		s.log.Warn().Str("user_id", sess.UserID).Msg("sesión sin perfil; usuario sin autenticar")
		return nil
	}
	return profile.ToUser()
}

func (s *Store) discardSession(ctx context.Context) {
	if err := s.auth.SignOut(ctx); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo cerrar la sesión parcial")
	}
}

func (s *Store) setUser(u *entity.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *Store) push(t Toast) {
	s.mu.Lock()
	s.toasts = append(s.toasts, t)
	s.mu.Unlock()
}

func (s *Store) begin() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
}

func (s *Store) end() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

// credentialsInput reglas del formulario de login.
type credentialsInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin employee customer"`
}
