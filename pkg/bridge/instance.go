package bridge

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jimmyps/shadeui/pkg/charts"
	"github.com/jimmyps/shadeui/pkg/compiler"
	"github.com/jimmyps/shadeui/pkg/echarts"
	shadeuierrors "github.com/jimmyps/shadeui/pkg/errors"
)

// DataSource supplies the current data snapshot for a compile pass. It is
// invoked once per initialize/refresh.
type DataSource func() charts.Rows

type lifecycle int

const (
	stateCreated lifecycle = iota
	stateInitialized
	stateDestroyed
)

// Instance binds one chart root to one renderer-side chart. Lifecycle is
// strictly sequential: Initialize exactly once, then zero or more Refresh
// calls, then Destroy exactly once. The internal mutex makes violations of
// the no-concurrent-calls contract safe rather than undefined.
//
// Every Refresh runs a full composition and compile pass against the
// current data snapshot, resolves theme tokens, and ships the complete
// document; nothing is diffed or merged.
type Instance struct {
	id       string
	chart    *charts.Chart
	data     DataSource
	renderer Renderer
	resolver TokenResolver
	log      zerolog.Logger

	mu     sync.Mutex
	state  lifecycle
	remote RemoteID
}

// InstanceOption configures an Instance.
type InstanceOption func(*Instance)

// WithResolver sets the token resolver consulted before every bridge call.
func WithResolver(r TokenResolver) InstanceOption {
	return func(i *Instance) { i.resolver = r }
}

// WithLogger sets the logger for bridge boundary failures.
func WithLogger(log zerolog.Logger) InstanceOption {
	return func(i *Instance) { i.log = log }
}

// NewInstance creates an instance in the created state. Nothing touches the
// renderer until Initialize.
func NewInstance(id string, chart *charts.Chart, data DataSource, renderer Renderer, opts ...InstanceOption) *Instance {
	inst := &Instance{
		id:       id,
		chart:    chart,
		data:     data,
		renderer: renderer,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// ID returns the host-side instance identifier.
func (i *Instance) ID() string { return i.id }

// Kind reports the chart kind of the bound root.
func (i *Instance) Kind() charts.Kind { return i.chart.Kind() }

func (i *Instance) compile() (*echarts.Option, error) {
	var rows charts.Rows
	if i.data != nil {
		rows = i.data()
	}
	doc, err := compiler.Compile(i.chart, rows)
	if err != nil {
		return nil, err
	}
	ResolveTokens(doc, i.resolver)
	return doc, nil
}

// Initialize compiles the first document and creates the renderer-side
// chart. A renderer failure is logged and returned; the instance stays in
// the created state, non-rendering but otherwise stable.
func (i *Instance) Initialize(ctx context.Context, container string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	switch i.state {
	case stateInitialized:
		return shadeuierrors.NewConfigError(string(i.chart.Kind()), "",
			"chart instance is already initialized")
	case stateDestroyed:
		return shadeuierrors.NewConfigError(string(i.chart.Kind()), "",
			"chart instance is destroyed")
	}

	doc, err := i.compile()
	if err != nil {
		return err
	}

	remote, err := i.renderer.Initialize(ctx, container, i.chart.Kind(), doc)
	if err != nil {
		wrapped := shadeuierrors.NewBridgeError("initialize", i.id, err)
		i.log.Error().Err(err).Str("chart_id", i.id).Msg("renderer initialize failed")
		return wrapped
	}

	i.remote = remote
	i.state = stateInitialized
	i.log.Debug().Str("chart_id", i.id).Str("remote_id", string(remote)).Msg("chart initialized")
	return nil
}

// Refresh re-resolves and reapplies the full option document. Renderer
// failures are logged and returned but never retried.
func (i *Instance) Refresh(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.state != stateInitialized {
		return shadeuierrors.NewConfigError(string(i.chart.Kind()), "",
			"chart instance is not initialized")
	}

	doc, err := i.compile()
	if err != nil {
		return err
	}

	if err := i.renderer.UpdateOptions(ctx, i.remote, doc); err != nil {
		wrapped := shadeuierrors.NewBridgeError("updateOptions", i.id, err)
		i.log.Error().Err(err).Str("chart_id", i.id).Msg("renderer update failed")
		return wrapped
	}
	return nil
}

// Destroy tears down the renderer-side chart. The instance is considered
// destroyed even when the renderer call fails; the failure is logged and
// returned, not retried.
func (i *Instance) Destroy(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	switch i.state {
	case stateCreated:
		return shadeuierrors.NewConfigError(string(i.chart.Kind()), "",
			"chart instance was never initialized")
	case stateDestroyed:
		return shadeuierrors.NewConfigError(string(i.chart.Kind()), "",
			"chart instance is already destroyed")
	}

	remote := i.remote
	i.state = stateDestroyed
	i.remote = ""

	if err := i.renderer.Destroy(ctx, remote); err != nil {
		wrapped := shadeuierrors.NewBridgeError("destroy", i.id, err)
		i.log.Error().Err(err).Str("chart_id", i.id).Msg("renderer destroy failed")
		return wrapped
	}
	return nil
}
