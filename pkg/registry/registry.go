// Package registry tracks live chart instances so a host can fan out a
// global "re-resolve and reapply" to every chart at once, independent of
// any single instance's lifecycle. Registration and unregistration happen
// from independently-lifecycled instances and are safe for concurrent use.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Refresher is a live chart instance that can rebuild and reapply its
// option document. bridge.Instance satisfies it.
type Refresher interface {
	ID() string
	Refresh(ctx context.Context) error
}

// Registry is the process-wide set of live chart instances.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]Refresher
	log       zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for fan-out failures.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		instances: make(map[string]Refresher),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a live instance. Registering an ID that is already present
// is an error; unregister the old instance first.
func (r *Registry) Register(inst Refresher) error {
	if inst == nil {
		return fmt.Errorf("cannot register nil instance")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := inst.ID()
	if _, exists := r.instances[id]; exists {
		return fmt.Errorf("chart instance %q is already registered", id)
	}
	r.instances[id] = inst
	return nil
}

// Unregister removes an instance. Removing an unknown ID is a no-op; a
// chart disposed mid-refresh is simply absent from the next fan-out.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.instances, id)
}

// Get retrieves a registered instance by ID.
func (r *Registry) Get(id string) (Refresher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[id]
	return inst, ok
}

// Len reports the number of registered instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// Failure records one instance that failed to refresh during a fan-out.
type Failure struct {
	ID  string
	Err error
}

// Report summarizes one RefreshAll fan-out.
type Report struct {
	Total    int
	Failures []Failure
}

// Failed reports how many instances failed to refresh.
func (r Report) Failed() int { return len(r.Failures) }

// RefreshAll issues one independent refresh per registered instance,
// awaiting all of them concurrently. Individual failures are logged and
// collected in the report; they never abort the batch and are not retried.
func (r *Registry) RefreshAll(ctx context.Context) Report {
	r.mu.RLock()
	snapshot := make([]Refresher, 0, len(r.instances))
	for _, inst := range r.instances {
		snapshot = append(snapshot, inst)
	}
	r.mu.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].ID() < snapshot[j].ID()
	})

	report := Report{Total: len(snapshot)}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, inst := range snapshot {
		inst := inst
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := inst.Refresh(ctx); err != nil {
				r.log.Error().Err(err).Str("chart_id", inst.ID()).Msg("refresh fan-out entry failed")
				mu.Lock()
				report.Failures = append(report.Failures, Failure{ID: inst.ID(), Err: err})
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].ID < report.Failures[j].ID
	})
	return report
}
