// Package auth implementa gateway.AuthProvider: cuentas en un CredentialRepository
// (bcrypt), access tokens JWT guardados por navegador en un SessionStorage y
// notificación de cambios de autenticación sobre un EventBus.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	EventBus "github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/internal/domain/repository"
	"github.com/jhoicas/plywood-inventory/pkg/jwt"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

var _ gateway.AuthProvider = (*Provider)(nil)

const credentialsTable = "auth_users"

// Config parámetros de emisión de tokens.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	// DemoPassword, si no está vacío, acepta cualquier email con esa contraseña
	// creando la cuenta al vuelo (variante sin backend).
	DemoPassword string
}

// Provider fábrica de AuthClient por clave de almacenamiento.
type Provider struct {
	creds   repository.CredentialRepository
	storage repository.SessionStorage
	cfg     Config
	log     *logger.Logger
	bus     EventBus.Bus

	// busMu serializa Subscribe/Unsubscribe del bus; mu protege handlers y nunca
	// se mantiene mientras se llama al bus (Publish invoca dispatch con el bus bloqueado).
	busMu    sync.Mutex
	mu       sync.Mutex
	nextID   uint64
	handlers map[string]map[uint64]gateway.AuthHandler // topic -> handlers
}

// NewProvider construye el proveedor de autenticación.
func NewProvider(creds repository.CredentialRepository, storage repository.SessionStorage, cfg Config, log *logger.Logger) *Provider {
	return &Provider{
		creds:    creds,
		storage:  storage,
		cfg:      cfg,
		log:      log,
		bus:      EventBus.New(),
		handlers: make(map[string]map[uint64]gateway.AuthHandler),
	}
}

// Auth devuelve el cliente atado a storageKey.
func (p *Provider) Auth(storageKey string) gateway.AuthClient {
	return &Client{p: p, key: storageKey}
}

func topicFor(key string) string { return "auth:" + key }

// dispatch es el único handler registrado en el bus por topic; reparte a las suscripciones.
func (p *Provider) dispatch(topic, event string, session *gateway.Session) {
	p.mu.Lock()
	hs := make([]gateway.AuthHandler, 0, len(p.handlers[topic]))
	for _, h := range p.handlers[topic] {
		hs = append(hs, h)
	}
	p.mu.Unlock()
	for _, h := range hs {
		h(event, session)
	}
}

func (p *Provider) publish(key, event string, session *gateway.Session) {
	topic := topicFor(key)
	p.bus.Publish(topic, topic, event, session)
}

func (p *Provider) subscribe(key string, handler gateway.AuthHandler) *subscription {
	topic := topicFor(key)
	p.busMu.Lock()
	defer p.busMu.Unlock()

	p.mu.Lock()
	first := len(p.handlers[topic]) == 0
	if first {
		p.handlers[topic] = make(map[uint64]gateway.AuthHandler)
	}
	p.nextID++
	id := p.nextID
	p.handlers[topic][id] = handler
	p.mu.Unlock()

	if first {
		if err := p.bus.Subscribe(topic, p.dispatch); err != nil {
			p.log.Error().Err(err).Str("topic", topic).Msg("suscripción al bus de auth")
		}
	}
	return &subscription{p: p, topic: topic, id: id}
}

func (p *Provider) unsubscribe(topic string, id uint64) {
	p.busMu.Lock()
	defer p.busMu.Unlock()

	p.mu.Lock()
	hs, ok := p.handlers[topic]
	if !ok {
		p.mu.Unlock()
		return
	}
	delete(hs, id)
	last := len(hs) == 0
	if last {
		delete(p.handlers, topic)
	}
	p.mu.Unlock()

	if last {
		_ = p.bus.Unsubscribe(topic, p.dispatch)
	}
}

type subscription struct {
	p     *Provider
	topic string
	id    uint64
	once  sync.Once
}

// Unsubscribe cancela la suscripción una sola vez.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() { s.p.unsubscribe(s.topic, s.id) })
}

// Client AuthClient de un navegador concreto.
type Client struct {
	p   *Provider
	key string
}

// GetSession devuelve la sesión almacenada; un token inválido o expirado se descarta.
func (c *Client) GetSession(ctx context.Context) (*gateway.Session, error) {
	token, ok, err := c.p.storage.Load(ctx, c.key)
	if err != nil {
		return nil, domain.NewGatewayError("get_session", "sessions", err)
	}
	if !ok {
		return nil, nil
	}
	claims, err := jwt.Parse(c.p.cfg.Secret, token)
	if err != nil {
		_ = c.p.storage.Remove(ctx, c.key)
		return nil, nil
	}
	return &gateway.Session{
		AccessToken: token,
		UserID:      claims.UserID,
		Email:       claims.Email,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// SignInWithPassword verifica la contraseña con bcrypt y abre sesión.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*gateway.Session, error) {
	email = normalizeEmail(email)
	cred, err := c.p.creds.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewGatewayError("sign_in", credentialsTable, err)
	}
	if cred == nil {
		if c.p.cfg.DemoPassword == "" || password != c.p.cfg.DemoPassword {
			return nil, domain.NewAuthError("Invalid login credentials")
		}
		// variante demo: la cuenta se crea en el primer login
		cred, err = c.createCredential(ctx, email, password)
		if err != nil {
			return nil, err
		}
	} else if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, domain.NewAuthError("Invalid login credentials")
	}
	return c.issue(ctx, cred)
}

// SignUp crea la cuenta y abre sesión. Email duplicado → AuthError.
func (c *Client) SignUp(ctx context.Context, email, password string) (*gateway.Session, error) {
	cred, err := c.createCredential(ctx, normalizeEmail(email), password)
	if err != nil {
		return nil, err
	}
	return c.issue(ctx, cred)
}

// SignOut invalida la sesión almacenada y notifica EventSignedOut.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.p.storage.Remove(ctx, c.key); err != nil {
		return domain.NewGatewayError("sign_out", "sessions", err)
	}
	c.p.publish(c.key, gateway.EventSignedOut, nil)
	return nil
}

// OnAuthStateChange registra handler hasta que se llame Unsubscribe.
// El handler corre en la goroutine que publica y no debe cancelar suscripciones.
func (c *Client) OnAuthStateChange(handler gateway.AuthHandler) gateway.Subscription {
	return c.p.subscribe(c.key, handler)
}

func (c *Client) createCredential(ctx context.Context, email, password string) (*entity.Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	cred := &entity.Credential{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := c.p.creds.Create(ctx, cred); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewAuthError("User already registered")
		}
		return nil, domain.NewGatewayError("sign_up", credentialsTable, err)
	}
	return cred, nil
}

func (c *Client) issue(ctx context.Context, cred *entity.Credential) (*gateway.Session, error) {
	token, exp, err := jwt.Generate(c.p.cfg.Secret, cred.ID, cred.Email, c.p.cfg.Issuer, c.p.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := c.p.storage.Save(ctx, c.key, token, time.Until(exp)); err != nil {
		return nil, domain.NewGatewayError("sign_in", "sessions", err)
	}
	session := &gateway.Session{AccessToken: token, UserID: cred.ID, Email: cred.Email, ExpiresAt: exp}
	c.p.publish(c.key, gateway.EventSignedIn, session)
	return session, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
