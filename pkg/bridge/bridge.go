// Package bridge defines the contract between the option compiler and the
// external SVG charting engine, plus the chart instance lifecycle built on
// top of it. The bridge side owns runtime concerns the compiler must never
// touch, most importantly resolving theme color tokens against live
// computed styles at the moment a document is applied.
package bridge

import (
	"context"

	"github.com/jimmyps/shadeui/pkg/charts"
	"github.com/jimmyps/shadeui/pkg/echarts"
)

// RemoteID identifies a chart instance inside the rendering engine.
type RemoteID string

// Renderer is the external collaborator owning chart instance lifecycle.
// UpdateOptions always receives the full document; the core assumes no
// partial or merge semantics. Implementations may block; calls against the
// same chart instance are never issued concurrently.
type Renderer interface {
	Initialize(ctx context.Context, container string, kind charts.Kind, doc *echarts.Option) (RemoteID, error)
	UpdateOptions(ctx context.Context, id RemoteID, doc *echarts.Option) error
	Destroy(ctx context.Context, id RemoteID) error
}
