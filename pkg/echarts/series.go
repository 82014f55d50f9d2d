package echarts

// Series is one compiled visual trace.
type Series struct {
	Type       string      `json:"type"`
	Name       string      `json:"name,omitempty"`
	Data       []any       `json:"data"`
	ItemStyle  *ItemStyle  `json:"itemStyle,omitempty"`
	LineStyle  *LineStyle  `json:"lineStyle,omitempty"`
	AreaStyle  *AreaStyle  `json:"areaStyle,omitempty"`
	Stack      string      `json:"stack,omitempty"`
	Radius     any         `json:"radius,omitempty"`
	ShowSymbol *bool       `json:"showSymbol,omitempty"`
	Emphasis   *Emphasis   `json:"emphasis,omitempty"`

	// Extra is merged into the marshaled series for forward compatibility.
	Extra map[string]any `json:"-"`
}

// MarshalJSON merges Extra into the typed series.
func (s Series) MarshalJSON() ([]byte, error) {
	type plain Series
	return marshalWithExtra(plain(s), s.Extra)
}

// ItemStyle styles series symbols, bars and slices. Color may be a literal,
// a theme token, or a *LinearGradient.
type ItemStyle struct {
	Color        any `json:"color,omitempty"`
	BorderRadius any `json:"borderRadius,omitempty"`
}

// AreaStyle fills the region under a trace. An empty AreaStyle asks the
// renderer for its default fill.
type AreaStyle struct {
	Color any `json:"color,omitempty"`
}

// Emphasis describes hover-state highlighting. Disabled is always emitted:
// hover behavior is off unless a series explicitly enables it.
type Emphasis struct {
	Disabled bool   `json:"disabled"`
	Focus    string `json:"focus,omitempty"`
}

// PieDatum is one slice of a pie series.
type PieDatum struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// RadarDatum is one polygon of a radar series.
type RadarDatum struct {
	Name  string `json:"name,omitempty"`
	Value []any  `json:"value"`
}

// LinearGradient is the renderer's linear gradient paint object. The
// coordinate pairs span the unit square of the painted region.
type LinearGradient struct {
	Type       string         `json:"type"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	X2         float64        `json:"x2"`
	Y2         float64        `json:"y2"`
	ColorStops []GradientStop `json:"colorStops"`
	Global     bool           `json:"global"`
}

// GradientStop is one stop of a LinearGradient.
type GradientStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}
