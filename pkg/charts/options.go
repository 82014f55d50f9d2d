package charts

// Kind identifies a chart root flavor. The kind decides which primitives a
// composition pass accepts and the default tooltip trigger mode.
type Kind string

const (
	KindLine     Kind = "line"
	KindArea     Kind = "area"
	KindBar      Kind = "bar"
	KindPie      Kind = "pie"
	KindScatter  Kind = "scatter"
	KindRadar    Kind = "radar"
	KindComposed Kind = "composed"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Scale enumerates axis scale semantics. ScaleAuto resolves contextually at
// compile time: category for the X role, value for the Y role.
type Scale string

const (
	ScaleAuto     Scale = "auto"
	ScaleCategory Scale = "category"
	ScaleValue    Scale = "value"
	ScaleTime     Scale = "time"
	ScaleLog      Scale = "log"
)

// TriggerMode selects how the tooltip is activated.
type TriggerMode string

const (
	TriggerAxis TriggerMode = "axis"
	TriggerItem TriggerMode = "item"
)

// Cursor selects the axis-pointer style shown while hovering in axis mode.
type Cursor string

const (
	CursorNone   Cursor = "none"
	CursorLine   Cursor = "line"
	CursorCross  Cursor = "cross"
	CursorShadow Cursor = "shadow"
)

// Layout orients the legend entries.
type Layout string

const (
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
)

// Align anchors the legend horizontally.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// VerticalAlign anchors the legend vertically. VerticalAlignTop emits the
// legend's MarginTop as a numeric offset; the other values emit keywords.
type VerticalAlign string

const (
	VerticalAlignTop    VerticalAlign = "top"
	VerticalAlignMiddle VerticalAlign = "middle"
	VerticalAlignBottom VerticalAlign = "bottom"
)

// Focus selects what a hovered series highlights when emphasis is enabled.
type Focus string

const (
	FocusNone Focus = ""
	FocusSelf Focus = "self"
)

// Direction orients a linear gradient.
type Direction string

const (
	DirectionVertical   Direction = "vertical"
	DirectionHorizontal Direction = "horizontal"
)

// GridOptions controls grid line visibility only. Chart padding is a
// property of the chart root, never of this primitive.
type GridOptions struct {
	Show       bool
	Horizontal bool
	Vertical   bool
	// Stroke optionally overrides the split line color on both axes.
	// May be a literal color or a theme token.
	Stroke string
}

// AxisOptions declares one axis of a cartesian or radar chart.
type AxisOptions struct {
	Show bool
	// DataKey binds the axis to a field of the data rows. Empty until bound.
	DataKey  string
	Scale    Scale
	AxisLine bool
	TickLine bool
}

// TooltipOptions declares the hover tooltip.
type TooltipOptions struct {
	Show   bool
	Mode   TriggerMode
	Cursor Cursor
}

// LegendOptions declares legend placement.
type LegendOptions struct {
	Show          bool
	Layout        Layout
	Align         Align
	VerticalAlign VerticalAlign
	// MarginTop is only meaningful when VerticalAlign is top.
	MarginTop int
}

// FillOptions expresses a series' fill intent: a solid color, or a linear
// gradient. A series exclusively owns its fill; a fill owns at most one
// gradient.
type FillOptions struct {
	Color string
	// Opacity in (0,1) is blended into the paint value; 0 means unset.
	Opacity  float64
	Gradient *LinearGradientOptions
}

// LinearGradientOptions describes a gradient with ordered stops.
type LinearGradientOptions struct {
	Direction Direction
	Stops     []GradientStop
}

// GradientStop is one color stop of a linear gradient.
type GradientStop struct {
	// Offset in [0,1] along the gradient axis.
	Offset float64
	Color  string
	// Opacity in (0,1) is blended into the stop color; 0 means unset.
	Opacity float64
}

// Padding is the chart root's outer padding, mapped verbatim onto the
// compiled grid component.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// DefaultPadding is applied when the chart root declares none.
var DefaultPadding = Padding{Top: 32, Right: 16, Bottom: 24, Left: 16}
