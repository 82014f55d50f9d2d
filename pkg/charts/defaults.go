package charts

// Default resolution: every singleton primitive the caller omitted is
// constructed lazily before compilation, parameterized only by the chart
// kind's default tooltip trigger mode. Defaults never touch primitives the
// chart kind does not permit.

// DefaultGrid returns the grid used when none is declared: all lines shown.
func DefaultGrid() GridOptions {
	return GridOptions{Show: true, Horizontal: true, Vertical: true}
}

// DefaultAxis returns an unbound axis with auto scale resolution.
func DefaultAxis() AxisOptions {
	return AxisOptions{Show: true, Scale: ScaleAuto, AxisLine: true, TickLine: true}
}

// DefaultTooltip returns the tooltip for the given trigger mode. Axis mode
// gets a line axis pointer.
func DefaultTooltip(mode TriggerMode) TooltipOptions {
	return TooltipOptions{Show: true, Mode: mode, Cursor: CursorLine}
}

// DefaultLegend returns the legend placed top-center with a 4px offset.
func DefaultLegend() LegendOptions {
	return LegendOptions{
		Show:          true,
		Layout:        LayoutHorizontal,
		Align:         AlignCenter,
		VerticalAlign: VerticalAlignTop,
		MarginTop:     4,
	}
}

// DefaultTriggerMode reports the default tooltip trigger for a chart kind:
// item for pie and radar, axis for every axis-based kind.
func DefaultTriggerMode(kind Kind) TriggerMode {
	switch kind {
	case KindPie, KindRadar:
		return TriggerItem
	default:
		return TriggerAxis
	}
}

func applyDefaults(ctx *Context) {
	allowed := singletonsByKind[ctx.kind]

	if ctx.grid == nil && allowed[primGrid] {
		g := DefaultGrid()
		ctx.grid = &g
	}
	if ctx.xAxis == nil && allowed[primXAxis] {
		a := DefaultAxis()
		ctx.xAxis = &a
	}
	if ctx.yAxis == nil && allowed[primYAxis] {
		a := DefaultAxis()
		ctx.yAxis = &a
	}
	if ctx.tooltip == nil && allowed[primTooltip] {
		t := DefaultTooltip(DefaultTriggerMode(ctx.kind))
		ctx.tooltip = &t
	}
	if ctx.legend == nil && allowed[primLegend] {
		l := DefaultLegend()
		ctx.legend = &l
	}
}
