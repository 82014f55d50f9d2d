// Package echarts mirrors the renderer-native option schema 1:1. The DTOs
// carry permissive passthrough maps so callers can set fields the typed
// schema does not model yet; passthrough keys never override typed fields.
package echarts

// Option is the fully compiled, renderer-native configuration tree handed
// across the bridge. Every field is a pure function of the registration
// context plus the default table.
type Option struct {
	Grid    *Grid     `json:"grid,omitempty"`
	XAxis   *Axis     `json:"xAxis,omitempty"`
	YAxis   *Axis     `json:"yAxis,omitempty"`
	Legend  *Legend   `json:"legend,omitempty"`
	Tooltip *Tooltip  `json:"tooltip,omitempty"`
	Radar   *Radar    `json:"radar,omitempty"`
	Series  []*Series `json:"series"`

	// Extra is merged into the marshaled document for forward
	// compatibility with renderer fields the schema does not model.
	Extra map[string]any `json:"-"`
}

// MarshalJSON merges Extra into the typed document.
func (o Option) MarshalJSON() ([]byte, error) {
	type plain Option
	return marshalWithExtra(plain(o), o.Extra)
}

// Grid is the plot area box. Top/Right/Bottom/Left come verbatim from the
// chart root padding, never from the grid-lines primitive.
type Grid struct {
	Top          int  `json:"top"`
	Right        int  `json:"right"`
	Bottom       int  `json:"bottom"`
	Left         int  `json:"left"`
	ContainLabel bool `json:"containLabel"`
}

// Axis is one cartesian axis.
type Axis struct {
	Type      string     `json:"type"`
	Data      []string   `json:"data,omitempty"`
	AxisLine  *Toggle    `json:"axisLine,omitempty"`
	AxisTick  *Toggle    `json:"axisTick,omitempty"`
	SplitLine *SplitLine `json:"splitLine,omitempty"`
}

// Toggle is the renderer's {show} sub-object.
type Toggle struct {
	Show bool `json:"show"`
}

// SplitLine controls the grid lines drawn perpendicular to an axis.
type SplitLine struct {
	Show      bool       `json:"show"`
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
}

// LineStyle styles a stroked line. Color may be a literal, a theme token,
// or a *LinearGradient.
type LineStyle struct {
	Color any    `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Legend places the series legend.
type Legend struct {
	Show   bool   `json:"show"`
	Orient string `json:"orient,omitempty"`
	Left   string `json:"left,omitempty"`
	Top    string `json:"top,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

// Tooltip configures the hover tooltip.
type Tooltip struct {
	Show        bool         `json:"show"`
	Trigger     string       `json:"trigger,omitempty"`
	AxisPointer *AxisPointer `json:"axisPointer,omitempty"`
}

// AxisPointer is the hover cursor shown in axis trigger mode.
type AxisPointer struct {
	Type string `json:"type"`
}

// Radar is the polar indicator component backing radar series.
type Radar struct {
	Indicator []Indicator `json:"indicator"`
}

// Indicator is one radar spoke.
type Indicator struct {
	Name string `json:"name"`
}
