package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/application/session"
	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/auth"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

type fixture struct {
	provider *auth.Provider
	tables   *memory.Tables
	profiles *usecase.ProfileUseCase
}

func newFixture(demoPassword string) *fixture {
	tables := memory.NewTables()
	return &fixture{
		provider: auth.NewProvider(
			memory.NewCredentialRepository(),
			memory.NewSessionStorage(),
			auth.Config{Secret: "test-secret", ExpMinutes: 60, Issuer: "test", DemoPassword: demoPassword},
			logger.Nop(),
		),
		tables:   tables,
		profiles: usecase.NewProfileUseCase(tables, logger.Nop()),
	}
}

func (f *fixture) store(t *testing.T, sid string) *session.Store {
	t.Helper()
	st := session.NewStore(f.provider.Auth(sid), f.profiles, logger.Nop())
	st.Start(context.Background())
	t.Cleanup(st.Close)
	return st
}

// ── Regla de rol ──────────────────────────────────────────────────────────────

func TestAssignRole(t *testing.T) {
	cases := []struct {
		email, intended, want string
	}{
		{"boss.admin@plywood.com", entity.RoleEmployee, entity.RoleAdmin},
		{"ADMIN@plywood.com", entity.RoleAdmin, entity.RoleAdmin},
		{"jane@plywood.com", entity.RoleEmployee, entity.RoleEmployee},
		{"admin@acme.com", entity.RoleCustomer, entity.RoleCustomer},
		{"jane@acme.com", entity.RoleCustomer, entity.RoleCustomer},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, session.AssignRole(tc.email, tc.intended), tc.email)
	}
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestLogin_EmailConAdminObtieneRolAdmin(t *testing.T) {
	f := newFixture("password")
	ctx := context.Background()

	admin := f.store(t, "sid-admin")
	u, err := admin.Login(ctx, "boss.admin@plywood.com", "password", entity.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.Equal(t, "boss.admin", u.Name)
	assert.Equal(t, entity.RoleAdmin, admin.CurrentUser().Role)

	emp := f.store(t, "sid-emp")
	u, err = emp.Login(ctx, "jane@plywood.com", "password", entity.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, u.Role)

	var toasts []dto.Toast = emp.DrainToasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Login successful", toasts[0].Title)
	assert.Equal(t, "Welcome back, jane!", toasts[0].Description)
	assert.Empty(t, emp.DrainToasts(), "drenar vacía la cola")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	f := newFixture("password")
	st := f.store(t, "sid-1")

	_, err := st.Login(context.Background(), "jane@plywood.com", "wrong-pass", entity.RoleEmployee)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, st.CurrentUser())

	toasts := st.DrainToasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Login failed", toasts[0].Title)
	assert.Equal(t, session.VariantDestructive, toasts[0].Variant)
}

func TestLogin_ValidaAntesDeLlamarAlGateway(t *testing.T) {
	f := newFixture("password")
	st := f.store(t, "sid-1")

	_, err := st.Login(context.Background(), "no-es-email", "password", entity.RoleEmployee)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = st.Login(context.Background(), "jane@plywood.com", "password", "superuser")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_ActualizaRolDelPerfilExistente(t *testing.T) {
	f := newFixture("")
	ctx := context.Background()
	st := f.store(t, "sid-1")

	_, err := st.Register(ctx, session.RegisterInput{Name: "Jane", Email: "jane@acme.com", Password: "secret1", Role: entity.RoleCustomer, Company: "Acme"})
	require.NoError(t, err)
	require.NoError(t, st.Logout(ctx))

	u, err := st.Login(ctx, "jane@acme.com", "secret1", entity.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, u.Role)
	assert.Equal(t, "Jane", u.Name, "el nombre del perfil se conserva")
	assert.Equal(t, "Acme", u.Company)
}

func TestLogin_FallaDePerfilDescartaSesionParcial(t *testing.T) {
	f := newFixture("password")
	ctx := context.Background()
	st := f.store(t, "sid-1")
	f.tables.Fail(gateway.TableProfiles, errors.New("permission denied for table profiles"))

	_, err := st.Login(ctx, "jane@plywood.com", "password", entity.RoleEmployee)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.Equal(t, "permission denied for table profiles", err.Error())
	assert.Nil(t, st.CurrentUser())

	sess, err := f.provider.Auth("sid-1").GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess, "la sesión del gateway no se conserva")
}

// ── Register ──────────────────────────────────────────────────────────────────

func TestRegister_ClienteConEmpresa(t *testing.T) {
	f := newFixture("")
	st := f.store(t, "sid-1")

	u, err := st.Register(context.Background(), session.RegisterInput{
		Name: "Jane", Email: "jane@acme.com", Password: "secret1", Role: entity.RoleCustomer, Company: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, u.Role)
	assert.Equal(t, "Acme", u.Company)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, u, st.CurrentUser())

	toasts := st.DrainToasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Registration successful", toasts[0].Title)
	assert.Equal(t, "Welcome, Jane!", toasts[0].Description)
}

func TestRegister_PasswordCortaNoCambiaUsuario(t *testing.T) {
	f := newFixture("password")
	ctx := context.Background()
	st := f.store(t, "sid-1")

	_, err := st.Register(ctx, session.RegisterInput{Name: "Jane", Email: "jane@acme.com", Password: "12345", Role: entity.RoleCustomer})
	require.Error(t, err)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
	assert.Nil(t, st.CurrentUser())

	before, err := st.Login(ctx, "jane@plywood.com", "password", entity.RoleEmployee)
	require.NoError(t, err)
	_, err = st.Register(ctx, session.RegisterInput{Name: "Jane", Email: "otra@acme.com", Password: "123", Role: entity.RoleCustomer})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, before, st.CurrentUser())
}

func TestRegister_CuentaDuplicada(t *testing.T) {
	f := newFixture("")
	ctx := context.Background()
	in := session.RegisterInput{Name: "Jane", Email: "jane@acme.com", Password: "secret1", Role: entity.RoleCustomer}

	_, err := f.store(t, "sid-1").Register(ctx, in)
	require.NoError(t, err)

	other := f.store(t, "sid-2")
	_, err = other.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, other.CurrentUser())
}

// ── Logout y cambios de autenticación ─────────────────────────────────────────

func TestLogout(t *testing.T) {
	f := newFixture("password")
	ctx := context.Background()
	st := f.store(t, "sid-1")
	_, err := st.Login(ctx, "jane@plywood.com", "password", entity.RoleEmployee)
	require.NoError(t, err)
	st.DrainToasts()

	require.NoError(t, st.Logout(ctx))
	assert.Nil(t, st.CurrentUser())
	toasts := st.DrainToasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Logged out", toasts[0].Title)
}

func TestSignOutExternoLimpiaUsuario(t *testing.T) {
	f := newFixture("password")
	ctx := context.Background()
	st := f.store(t, "sid-1")
	_, err := st.Login(ctx, "jane@plywood.com", "password", entity.RoleEmployee)
	require.NoError(t, err)

	require.NoError(t, f.provider.Auth("sid-1").SignOut(ctx))
	assert.Nil(t, st.CurrentUser())
}

// ── Inicialización y desmontaje ───────────────────────────────────────────────

func TestStart_RecuperaSesionExistente(t *testing.T) {
	f := newFixture("")
	ctx := context.Background()
	first := session.NewStore(f.provider.Auth("sid-1"), f.profiles, logger.Nop())
	first.Start(ctx)
	_, err := first.Register(ctx, session.RegisterInput{Name: "Jane", Email: "jane@plywood.com", Password: "secret1", Role: entity.RoleEmployee})
	require.NoError(t, err)
	first.Close()

	second := session.NewStore(f.provider.Auth("sid-1"), f.profiles, logger.Nop())
	assert.True(t, second.IsLoading(), "loading hasta que termina Start")
	second.Start(ctx)
	defer second.Close()

	assert.False(t, second.IsLoading())
	require.NotNil(t, second.CurrentUser())
	assert.Equal(t, entity.RoleEmployee, second.CurrentUser().Role)
}

func TestStart_FallaDePerfilQuedaSinAutenticar(t *testing.T) {
	f := newFixture("")
	ctx := context.Background()
	first := f.store(t, "sid-1")
	_, err := first.Register(ctx, session.RegisterInput{Name: "Jane", Email: "jane@plywood.com", Password: "secret1", Role: entity.RoleEmployee})
	require.NoError(t, err)

	f.tables.Fail(gateway.TableProfiles, errors.New("connection refused"))
	second := session.NewStore(f.provider.Auth("sid-1"), f.profiles, logger.Nop())
	second.Start(ctx)
	defer second.Close()

	assert.Nil(t, second.CurrentUser())
	assert.False(t, second.IsLoading())
	assert.Empty(t, second.DrainToasts(), "el fallo no se muestra al usuario")
}

type countingAuth struct {
	gateway.AuthClient
	unsubscribed atomic.Int32
}

type countingSub struct {
	inner gateway.Subscription
	n     *atomic.Int32
}

func (s countingSub) Unsubscribe() {
	s.n.Add(1)
	s.inner.Unsubscribe()
}

func (c *countingAuth) OnAuthStateChange(h gateway.AuthHandler) gateway.Subscription {
	return countingSub{inner: c.AuthClient.OnAuthStateChange(h), n: &c.unsubscribed}
}

func TestClose_CancelaSuscripcionUnaVez(t *testing.T) {
	f := newFixture("password")
	client := &countingAuth{AuthClient: f.provider.Auth("sid-1")}
	st := session.NewStore(client, f.profiles, logger.Nop())
	st.Start(context.Background())

	st.Close()
	st.Close()
	assert.Equal(t, int32(1), client.unsubscribed.Load())

	_, err := f.provider.Auth("sid-1").SignInWithPassword(context.Background(), "jane@plywood.com", "password")
	require.NoError(t, err)
	assert.Nil(t, st.CurrentUser(), "tras Close el Store ya no recibe eventos")
}

// blockingProfiles bloquea GetProfile hasta que se cierre release.
type blockingProfiles struct {
	*usecase.ProfileUseCase
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (b *blockingProfiles) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return b.ProfileUseCase.GetProfile(ctx, id)
}

func TestIsLoading_DuranteOperacion(t *testing.T) {
	f := newFixture("password")
	profiles := &blockingProfiles{ProfileUseCase: f.profiles, entered: make(chan struct{}), release: make(chan struct{})}
	st := session.NewStore(f.provider.Auth("sid-1"), profiles, logger.Nop())

	// Start sin sesión previa no consulta perfiles.
	st.Start(context.Background())
	defer st.Close()
	require.False(t, st.IsLoading())

	done := make(chan error, 1)
	go func() {
		_, err := st.Login(context.Background(), "jane@plywood.com", "password", entity.RoleEmployee)
		done <- err
	}()

	select {
	case <-profiles.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("login no llegó a consultar el perfil")
	}
	assert.True(t, st.IsLoading())

	close(profiles.release)
	require.NoError(t, <-done)
	assert.False(t, st.IsLoading())
	assert.NotNil(t, st.CurrentUser())
}
