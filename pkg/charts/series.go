package charts

// SeriesKind identifies a data-bearing primitive flavor.
type SeriesKind string

const (
	SeriesLine    SeriesKind = "line"
	SeriesArea    SeriesKind = "area"
	SeriesBar     SeriesKind = "bar"
	SeriesPie     SeriesKind = "pie"
	SeriesScatter SeriesKind = "scatter"
	SeriesRadar   SeriesKind = "radar"
)

// Series is a data-bearing primitive declared under a chart root. Series
// are unbounded; declaration order determines the default palette index and
// the z-order in the compiled document.
type Series interface {
	// SeriesKind reports the series flavor.
	SeriesKind() SeriesKind
	// Common returns the shared presentation options.
	Common() SeriesCommon
}

// SeriesCommon holds the options shared by every series kind.
type SeriesCommon struct {
	Name string
	// Color is the explicit paint; empty means auto-assign from the theme
	// palette by declaration index.
	Color string
	// Emphasis enables hover highlighting. Disabled unless explicitly
	// enabled.
	Emphasis bool
	Focus    Focus
}

// LineSeries is one stroked trace of a line or composed chart.
type LineSeries struct {
	SeriesCommon
	DataKey   string
	ShowDots  bool
	LineWidth int
	Dashed    bool
}

func (LineSeries) SeriesKind() SeriesKind { return SeriesLine }
func (s LineSeries) Common() SeriesCommon { return s.SeriesCommon }

// AreaSeries is a filled trace. Series sharing a StackID stack additively.
type AreaSeries struct {
	SeriesCommon
	DataKey   string
	ShowDots  bool
	LineWidth int
	StackID   string
	Fill      *FillOptions
}

func (AreaSeries) SeriesKind() SeriesKind { return SeriesArea }
func (s AreaSeries) Common() SeriesCommon { return s.SeriesCommon }

// BarSeries is one bar group. Radius rounds the bar corners.
type BarSeries struct {
	SeriesCommon
	DataKey string
	StackID string
	Radius  int
}

func (BarSeries) SeriesKind() SeriesKind { return SeriesBar }
func (s BarSeries) Common() SeriesCommon { return s.SeriesCommon }

// PieSeries maps rows to slices: DataKey selects the value field, NameKey
// the slice label field.
type PieSeries struct {
	SeriesCommon
	DataKey string
	NameKey string
	// Inner/OuterRadius are passed through to the renderer when set,
	// e.g. "40%" and "70%" for a donut.
	InnerRadius string
	OuterRadius string
}

func (PieSeries) SeriesKind() SeriesKind { return SeriesPie }
func (s PieSeries) Common() SeriesCommon { return s.SeriesCommon }

// ScatterSeries has no field selector of its own; point coordinates derive
// from the X and Y axis bindings.
type ScatterSeries struct {
	SeriesCommon
}

func (ScatterSeries) SeriesKind() SeriesKind { return SeriesScatter }
func (s ScatterSeries) Common() SeriesCommon { return s.SeriesCommon }

// RadarSeries is one polygon of a radar chart. Fill shades its interior.
type RadarSeries struct {
	SeriesCommon
	DataKey string
	Fill    bool
}

func (RadarSeries) SeriesKind() SeriesKind { return SeriesRadar }
func (s RadarSeries) Common() SeriesCommon { return s.SeriesCommon }
