package charts

import (
	"fmt"

	shadeuierrors "github.com/jimmyps/shadeui/pkg/errors"
)

// singleton identifies a singleton primitive slot of the context.
type singleton string

const (
	primGrid    singleton = "grid"
	primXAxis   singleton = "x-axis"
	primYAxis   singleton = "y-axis"
	primTooltip singleton = "tooltip"
	primLegend  singleton = "legend"
)

// cartesianSingletons is the full singleton set accepted by axis-based kinds.
var cartesianSingletons = map[singleton]bool{
	primGrid:    true,
	primXAxis:   true,
	primYAxis:   true,
	primTooltip: true,
	primLegend:  true,
}

// singletonsByKind lists which singleton primitives each chart kind accepts.
// Radar keeps the X axis: its binding supplies the indicator labels.
var singletonsByKind = map[Kind]map[singleton]bool{
	KindLine:     cartesianSingletons,
	KindArea:     cartesianSingletons,
	KindBar:      cartesianSingletons,
	KindScatter:  cartesianSingletons,
	KindComposed: cartesianSingletons,
	KindPie: {
		primTooltip: true,
		primLegend:  true,
	},
	KindRadar: {
		primXAxis:   true,
		primTooltip: true,
		primLegend:  true,
	},
}

// seriesByKind lists which series kinds each chart kind accepts.
var seriesByKind = map[Kind]map[SeriesKind]bool{
	KindLine:    {SeriesLine: true},
	KindArea:    {SeriesArea: true},
	KindBar:     {SeriesBar: true},
	KindPie:     {SeriesPie: true},
	KindScatter: {SeriesScatter: true},
	KindRadar:   {SeriesRadar: true},
	KindComposed: {
		SeriesLine: true,
		SeriesArea: true,
		SeriesBar:  true,
	},
}

// Context accumulates the primitives declared under one chart root during a
// single composition pass. It holds at most one of each singleton primitive
// and an ordered list of series, and is discarded once the option compiler
// has consumed it.
type Context struct {
	kind         Kind
	padding      Padding
	containLabel bool

	grid    *GridOptions
	xAxis   *AxisOptions
	yAxis   *AxisOptions
	tooltip *TooltipOptions
	legend  *LegendOptions

	series []Series
}

func newContext(kind Kind, padding Padding, containLabel bool) *Context {
	return &Context{kind: kind, padding: padding, containLabel: containLabel}
}

func (c *Context) checkSingleton(p singleton) error {
	if !singletonsByKind[c.kind][p] {
		return shadeuierrors.NewConfigError(string(c.kind), string(p),
			fmt.Sprintf("%s is not permitted inside a %s chart", p, c.kind))
	}
	return nil
}

// SetGrid registers the grid primitive. Re-declaration within the same pass
// replaces the previous declaration.
func (c *Context) SetGrid(g GridOptions) error {
	if err := c.checkSingleton(primGrid); err != nil {
		return err
	}
	c.grid = &g
	return nil
}

// SetXAxis registers the X axis primitive.
func (c *Context) SetXAxis(a AxisOptions) error {
	if err := c.checkSingleton(primXAxis); err != nil {
		return err
	}
	c.xAxis = &a
	return nil
}

// SetYAxis registers the Y axis primitive.
func (c *Context) SetYAxis(a AxisOptions) error {
	if err := c.checkSingleton(primYAxis); err != nil {
		return err
	}
	c.yAxis = &a
	return nil
}

// SetTooltip registers the tooltip primitive.
func (c *Context) SetTooltip(t TooltipOptions) error {
	if err := c.checkSingleton(primTooltip); err != nil {
		return err
	}
	c.tooltip = &t
	return nil
}

// SetLegend registers the legend primitive.
func (c *Context) SetLegend(l LegendOptions) error {
	if err := c.checkSingleton(primLegend); err != nil {
		return err
	}
	c.legend = &l
	return nil
}

// AddSeries appends a series in declaration order after validating that the
// series kind is permitted for the chart kind and that required field
// selectors are bound.
func (c *Context) AddSeries(s Series) error {
	kind := s.SeriesKind()
	if !seriesByKind[c.kind][kind] {
		return shadeuierrors.NewConfigError(string(c.kind), string(kind)+" series",
			fmt.Sprintf("%s series is not permitted inside a %s chart", kind, c.kind))
	}
	if err := validateSeriesKeys(c.kind, s); err != nil {
		return err
	}
	c.series = append(c.series, s)
	return nil
}

func validateSeriesKeys(chart Kind, s Series) error {
	missing := func(field string) error {
		return shadeuierrors.NewConfigError(string(chart), string(s.SeriesKind())+" series",
			field+" is required")
	}
	switch v := s.(type) {
	case LineSeries:
		if v.DataKey == "" {
			return missing("DataKey")
		}
	case AreaSeries:
		if v.DataKey == "" {
			return missing("DataKey")
		}
	case BarSeries:
		if v.DataKey == "" {
			return missing("DataKey")
		}
	case RadarSeries:
		if v.DataKey == "" {
			return missing("DataKey")
		}
	case PieSeries:
		if v.DataKey == "" {
			return missing("DataKey")
		}
		if v.NameKey == "" {
			return missing("NameKey")
		}
	case ScatterSeries:
		// Coordinates derive from the axis bindings.
	default:
		return shadeuierrors.NewConfigError(string(chart), "series",
			fmt.Sprintf("unsupported series type %T", s))
	}
	return nil
}

// Kind reports the owning chart root's kind.
func (c *Context) Kind() Kind { return c.kind }

// Padding reports the chart root's outer padding.
func (c *Context) Padding() Padding { return c.padding }

// ContainLabel reports the chart root's containLabel flag.
func (c *Context) ContainLabel() bool { return c.containLabel }

// Grid returns the grid primitive, if registered.
func (c *Context) Grid() (GridOptions, bool) {
	if c.grid == nil {
		return GridOptions{}, false
	}
	return *c.grid, true
}

// XAxis returns the X axis primitive, if registered.
func (c *Context) XAxis() (AxisOptions, bool) {
	if c.xAxis == nil {
		return AxisOptions{}, false
	}
	return *c.xAxis, true
}

// YAxis returns the Y axis primitive, if registered.
func (c *Context) YAxis() (AxisOptions, bool) {
	if c.yAxis == nil {
		return AxisOptions{}, false
	}
	return *c.yAxis, true
}

// Tooltip returns the tooltip primitive, if registered.
func (c *Context) Tooltip() (TooltipOptions, bool) {
	if c.tooltip == nil {
		return TooltipOptions{}, false
	}
	return *c.tooltip, true
}

// Legend returns the legend primitive, if registered.
func (c *Context) Legend() (LegendOptions, bool) {
	if c.legend == nil {
		return LegendOptions{}, false
	}
	return *c.legend, true
}

// Series returns the registered series in declaration order. The returned
// slice is a copy; the context stays immutable to the compiler.
func (c *Context) Series() []Series {
	out := make([]Series, len(c.series))
	copy(out, c.series)
	return out
}
