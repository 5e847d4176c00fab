package wizard

import (
	"sync"
	"time"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DependencyFactory builds the collaborators of a new session. Each session
// gets its own capture session so cameras are never shared.
type DependencyFactory func() Dependencies

// Registry keeps the live wizard sessions of the HTTP surface and expires the
// ones nobody touched within the idle timeout.
type Registry struct {
	log         *zap.Logger
	factory     DependencyFactory
	idleTimeout time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*Controller

	sweeper  *cron.Cron
	stopOnce sync.Once
}

func NewRegistry(logger *zap.Logger, factory DependencyFactory, idleTimeout time.Duration, maxSessions int) *Registry {
	return &Registry{
		log:         logger,
		factory:     factory,
		idleTimeout: idleTimeout,
		maxSessions: maxSessions,
		now:         time.Now,
		sessions:    make(map[string]*Controller),
	}
}

// Create registers a new session. When the registry is full, idle sessions
// are swept first.
func (r *Registry) Create() (*Controller, error) {
	if r.maxSessions > 0 && r.Len() >= r.maxSessions {
		r.Sweep()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		r.log.Warn("Registry.Create error",
			zap.Int(constvars.LoggingSessionCountKey, len(r.sessions)),
		)
		return nil, exceptions.ErrRegistryFull(len(r.sessions))
	}

	id := utils.GenerateWizardID()
	controller := NewController(id, r.factory())
	controller.now = r.now
	controller.lastActivity = r.now()
	r.sessions[id] = controller

	r.log.Info("Registry.Create succeeded",
		zap.String(constvars.LoggingWizardIDKey, id),
		zap.Int(constvars.LoggingSessionCountKey, len(r.sessions)),
	)
	return controller, nil
}

func (r *Registry) Get(id string) (*Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	controller, ok := r.sessions[id]
	if !ok {
		return nil, exceptions.ErrWizardNotFound(id)
	}
	return controller, nil
}

// Remove abandons the session and forgets it.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	controller, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return exceptions.ErrWizardNotFound(id)
	}
	controller.Abandon()
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep abandons sessions idle for longer than the idle timeout and returns
// how many were removed.
func (r *Registry) Sweep() int {
	if r.idleTimeout <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idleTimeout)

	// LastActivity takes the session lock, which a slow capture may hold, so
	// it is read without holding r.mu.
	r.mu.Lock()
	candidates := make(map[string]*Controller, len(r.sessions))
	for id, controller := range r.sessions {
		candidates[id] = controller
	}
	r.mu.Unlock()

	idle := make(map[string]*Controller)
	for id, controller := range candidates {
		if controller.LastActivity().Before(cutoff) {
			idle[id] = controller
		}
	}

	var expired []*Controller
	r.mu.Lock()
	for id, controller := range idle {
		if r.sessions[id] == controller {
			expired = append(expired, controller)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, controller := range expired {
		controller.Abandon()
	}
	if len(expired) > 0 {
		r.log.Info("Registry.Sweep expired sessions",
			zap.Int(constvars.LoggingSessionCountKey, len(expired)),
		)
	}
	return len(expired)
}

// Start sweeps every interval until Stop is called. Intervals below one
// second are rounded up.
func (r *Registry) Start(interval time.Duration) {
	if interval <= 0 {
		return
	}

	sweeper := cron.New()
	sweeper.Schedule(cron.Every(interval), cron.FuncJob(func() { r.Sweep() }))
	sweeper.Start()

	r.mu.Lock()
	r.sweeper = sweeper
	r.mu.Unlock()
}

// Stop ends the sweeper, if running, and abandons every session.
func (r *Registry) Stop() {
	r.mu.Lock()
	sweeper := r.sweeper
	r.mu.Unlock()
	r.stopOnce.Do(func() {
		if sweeper != nil {
			<-sweeper.Stop().Done()
		}
	})

	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Controller)
	r.mu.Unlock()

	for _, controller := range sessions {
		controller.Abandon()
	}
	r.log.Info("Registry.Stop succeeded",
		zap.Int(constvars.LoggingSessionCountKey, len(sessions)),
	)
}
