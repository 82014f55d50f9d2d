// Package charts provides the declarative, framework-agnostic chart
// primitives and the registration context they are composed into. A chart
// root records primitive declarations; every compile runs a fresh
// composition pass, so the compiled output is always a full rebuild
// consistent with current state.
package charts

import (
	shadeuierrors "github.com/jimmyps/shadeui/pkg/errors"
)

// Chart is a chart root: a kind plus the ordered primitive declarations
// composed under it. Declaration methods record intent only; validation and
// registration happen during the composition pass run by Compose.
type Chart struct {
	kind         Kind
	padding      Padding
	containLabel bool
	decls        []func(*Context) error
}

// Option configures the chart root itself.
type Option func(*Chart)

// WithPadding overrides the root padding mapped onto the compiled grid.
func WithPadding(p Padding) Option {
	return func(c *Chart) { c.padding = p }
}

// WithContainLabel sets whether axis labels are kept inside the grid area.
func WithContainLabel(contain bool) Option {
	return func(c *Chart) { c.containLabel = contain }
}

// New creates a chart root of the given kind.
func New(kind Kind, opts ...Option) *Chart {
	c := &Chart{
		kind:         kind,
		padding:      DefaultPadding,
		containLabel: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewLine creates a line chart root.
func NewLine(opts ...Option) *Chart { return New(KindLine, opts...) }

// NewArea creates an area chart root.
func NewArea(opts ...Option) *Chart { return New(KindArea, opts...) }

// NewBar creates a bar chart root.
func NewBar(opts ...Option) *Chart { return New(KindBar, opts...) }

// NewPie creates a pie chart root.
func NewPie(opts ...Option) *Chart { return New(KindPie, opts...) }

// NewScatter creates a scatter chart root.
func NewScatter(opts ...Option) *Chart { return New(KindScatter, opts...) }

// NewRadar creates a radar chart root.
func NewRadar(opts ...Option) *Chart { return New(KindRadar, opts...) }

// NewComposed creates a composed chart root accepting line, area and bar
// series together.
func NewComposed(opts ...Option) *Chart { return New(KindComposed, opts...) }

// Kind reports the chart root kind.
func (c *Chart) Kind() Kind { return c.kind }

// Grid declares the grid primitive.
func (c *Chart) Grid(g GridOptions) *Chart {
	c.decls = append(c.decls, func(ctx *Context) error { return ctx.SetGrid(g) })
	return c
}

// XAxis declares the X axis primitive.
func (c *Chart) XAxis(a AxisOptions) *Chart {
	c.decls = append(c.decls, func(ctx *Context) error { return ctx.SetXAxis(a) })
	return c
}

// YAxis declares the Y axis primitive.
func (c *Chart) YAxis(a AxisOptions) *Chart {
	c.decls = append(c.decls, func(ctx *Context) error { return ctx.SetYAxis(a) })
	return c
}

// Tooltip declares the tooltip primitive.
func (c *Chart) Tooltip(t TooltipOptions) *Chart {
	c.decls = append(c.decls, func(ctx *Context) error { return ctx.SetTooltip(t) })
	return c
}

// Legend declares the legend primitive.
func (c *Chart) Legend(l LegendOptions) *Chart {
	c.decls = append(c.decls, func(ctx *Context) error { return ctx.SetLegend(l) })
	return c
}

// AddSeries declares a data-bearing series. Declaration order determines
// the default palette index and z-order.
func (c *Chart) AddSeries(s Series) *Chart {
	c.decls = append(c.decls, func(ctx *Context) error { return ctx.AddSeries(s) })
	return c
}

// Compose runs one composition pass: a fresh context is created, every
// recorded declaration registers into it in order, composition rules are
// enforced, and omitted singletons are filled with defaults. The caller
// owns the returned context for exactly one compile.
func (c *Chart) Compose() (*Context, error) {
	ctx := newContext(c.kind, c.padding, c.containLabel)
	for _, decl := range c.decls {
		if err := decl(ctx); err != nil {
			return nil, err
		}
	}
	if len(ctx.series) == 0 {
		return nil, shadeuierrors.NewConfigError(string(c.kind), "",
			"chart requires at least one series")
	}
	applyDefaults(ctx)
	return ctx, nil
}
