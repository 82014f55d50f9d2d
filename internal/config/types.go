// Package config parses declarative chart definition files into chart
// roots. A definition is the file-based equivalent of composing primitives
// programmatically: one chart kind, at most one of each singleton
// primitive, any number of series, and an optional inline data snapshot.
package config

// Definition represents one chart definition document.
type Definition struct {
	Kind         string          `yaml:"kind" validate:"required,oneof=line area bar pie scatter radar composed"`
	Padding      *PaddingConfig  `yaml:"padding,omitempty"`
	ContainLabel *bool           `yaml:"contain_label,omitempty"`
	Grid         *GridConfig     `yaml:"grid,omitempty"`
	XAxis        *AxisConfig     `yaml:"x_axis,omitempty"`
	YAxis        *AxisConfig     `yaml:"y_axis,omitempty"`
	Tooltip      *TooltipConfig  `yaml:"tooltip,omitempty"`
	Legend       *LegendConfig   `yaml:"legend,omitempty"`
	Series       []SeriesConfig  `yaml:"series" validate:"required,min=1,dive"`
	Data         []map[string]any `yaml:"data,omitempty"`
}

// PaddingConfig is the chart root padding in CSS box order.
type PaddingConfig struct {
	Top    int `yaml:"top" validate:"min=0"`
	Right  int `yaml:"right" validate:"min=0"`
	Bottom int `yaml:"bottom" validate:"min=0"`
	Left   int `yaml:"left" validate:"min=0"`
}

// GridConfig declares the grid-lines primitive. Unset booleans keep their
// defaults (all true).
type GridConfig struct {
	Show       *bool  `yaml:"show,omitempty"`
	Horizontal *bool  `yaml:"horizontal,omitempty"`
	Vertical   *bool  `yaml:"vertical,omitempty"`
	Stroke     string `yaml:"stroke,omitempty"`
}

// AxisConfig declares one axis primitive.
type AxisConfig struct {
	Show     *bool  `yaml:"show,omitempty"`
	DataKey  string `yaml:"data_key,omitempty" validate:"omitempty,field_key"`
	Scale    string `yaml:"scale,omitempty" validate:"omitempty,oneof=auto category value time log"`
	AxisLine *bool  `yaml:"axis_line,omitempty"`
	TickLine *bool  `yaml:"tick_line,omitempty"`
}

// TooltipConfig declares the tooltip primitive.
type TooltipConfig struct {
	Show   *bool  `yaml:"show,omitempty"`
	Mode   string `yaml:"mode,omitempty" validate:"omitempty,oneof=axis item"`
	Cursor string `yaml:"cursor,omitempty" validate:"omitempty,oneof=none line cross shadow"`
}

// LegendConfig declares the legend primitive.
type LegendConfig struct {
	Show          *bool  `yaml:"show,omitempty"`
	Layout        string `yaml:"layout,omitempty" validate:"omitempty,oneof=horizontal vertical"`
	Align         string `yaml:"align,omitempty" validate:"omitempty,oneof=left center right"`
	VerticalAlign string `yaml:"vertical_align,omitempty" validate:"omitempty,oneof=top middle bottom"`
	MarginTop     *int   `yaml:"margin_top,omitempty" validate:"omitempty,min=0"`
}

// SeriesConfig declares one data-bearing series. Type-specific keys are
// flat; Build maps them onto the matching series struct.
type SeriesConfig struct {
	Type     string `yaml:"type" validate:"required,oneof=line area bar pie scatter radar"`
	DataKey  string `yaml:"data_key,omitempty" validate:"omitempty,field_key"`
	NameKey  string `yaml:"name_key,omitempty" validate:"omitempty,field_key"`
	Name     string `yaml:"name,omitempty"`
	Color    string `yaml:"color,omitempty"`
	Emphasis bool   `yaml:"emphasis,omitempty"`
	Focus    string `yaml:"focus,omitempty" validate:"omitempty,oneof=self"`

	ShowDots  bool   `yaml:"show_dots,omitempty"`
	LineWidth int    `yaml:"line_width,omitempty" validate:"omitempty,min=1"`
	Dashed    bool   `yaml:"dashed,omitempty"`
	StackID   string `yaml:"stack_id,omitempty"`
	Radius    int    `yaml:"radius,omitempty" validate:"omitempty,min=0"`

	InnerRadius string `yaml:"inner_radius,omitempty"`
	OuterRadius string `yaml:"outer_radius,omitempty"`

	FillArea bool        `yaml:"fill_area,omitempty"`
	Fill     *FillConfig `yaml:"fill,omitempty"`
}

// FillConfig declares a series fill: a solid color or a linear gradient.
type FillConfig struct {
	Color    string          `yaml:"color,omitempty"`
	Opacity  float64         `yaml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
	Gradient *GradientConfig `yaml:"gradient,omitempty"`
}

// GradientConfig declares a linear gradient with ordered stops.
type GradientConfig struct {
	Direction string       `yaml:"direction,omitempty" validate:"omitempty,oneof=vertical horizontal"`
	Stops     []StopConfig `yaml:"stops" validate:"required,min=1,dive"`
}

// StopConfig is one gradient stop.
type StopConfig struct {
	Offset  float64 `yaml:"offset" validate:"gte=0,lte=1"`
	Color   string  `yaml:"color" validate:"required"`
	Opacity float64 `yaml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
}
