package session

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

// Registry un Store por id de sesión de navegador. Los Store inactivos se cierran
// con Sweep, que un cron ejecuta periódicamente tras StartSweeper.
type Registry struct {
	provider gateway.AuthProvider
	profiles ProfileService
	log      *logger.Logger
	idle     time.Duration
	now      func() time.Time

	mu     sync.Mutex
	stores map[string]*registryEntry
	cron   *cron.Cron
}

type registryEntry struct {
	store    *Store
	lastSeen time.Time
}

// NewRegistry construye el registro. idle <= 0 desactiva la expiración por inactividad.
func NewRegistry(provider gateway.AuthProvider, profiles ProfileService, idle time.Duration, log *logger.Logger) *Registry {
	return &Registry{
		provider: provider,
		profiles: profiles,
		log:      log,
		idle:     idle,
		now:      time.Now,
		stores:   make(map[string]*registryEntry),
	}
}

// Get devuelve el Store de sid, creándolo e inicializándolo en la primera visita.
// Una petición concurrente para el mismo sid recibe el Store mientras aún carga.
func (r *Registry) Get(ctx context.Context, sid string) *Store {
	r.mu.Lock()
	if e, ok := r.stores[sid]; ok {
		e.lastSeen = r.now()
		r.mu.Unlock()
		return e.store
	}
	st := NewStore(r.provider.Auth(sid), r.profiles, r.log)
	r.stores[sid] = &registryEntry{store: st, lastSeen: r.now()}
	r.mu.Unlock()

	st.Start(ctx)
	return st
}

// Len número de Store vivos.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Sweep cierra los Store sin actividad desde hace más de idle y devuelve cuántos cerró.
// Un Store con una operación en curso se conserva.
func (r *Registry) Sweep() int {
	if r.idle <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idle)
	var expired []*Store

	r.mu.Lock()
	for sid, e := range r.stores {
		if e.lastSeen.Before(cutoff) && !e.store.IsLoading() {
			expired = append(expired, e.store)
			delete(r.stores, sid)
		}
	}
	r.mu.Unlock()

	for _, st := range expired {
		st.Close()
	}
	if len(expired) > 0 {
		r.log.Debug().Int("closed", len(expired)).Msg("sesiones inactivas cerradas")
	}
	return len(expired)
}

// StartSweeper programa Sweep con la expresión cron expr (p. ej. "@every 1m").
func (r *Registry) StartSweeper(expr string) error {
	c := cron.New()
	if _, err := c.AddFunc(expr, func() { r.Sweep() }); err != nil {
		return err
	}
	r.mu.Lock()
	r.cron = c
	r.mu.Unlock()
	c.Start()
	return nil
}

// Close detiene el cron y desmonta todos los Store.
func (r *Registry) Close() {
	r.mu.Lock()
	c := r.cron
	r.cron = nil
	stores := make([]*Store, 0, len(r.stores))
	for _, e := range r.stores {
		stores = append(stores, e.store)
	}
	r.stores = make(map[string]*registryEntry)
	r.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
	for _, st := range stores {
		st.Close()
	}
}
