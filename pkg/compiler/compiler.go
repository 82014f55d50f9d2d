// Package compiler synthesizes the renderer-native option document from a
// registration context and a data snapshot. Compilation is a pure function:
// given the same context and data it always produces the same document, so
// refresh can rebuild the full document at any time.
package compiler

import (
	"github.com/jimmyps/shadeui/pkg/charts"
	"github.com/jimmyps/shadeui/pkg/echarts"
)

// Compile runs a fresh composition pass for the chart root and compiles the
// resulting context against the data snapshot.
func Compile(chart *charts.Chart, data charts.Rows) (*echarts.Option, error) {
	ctx, err := chart.Compose()
	if err != nil {
		return nil, err
	}
	return CompileContext(ctx, data), nil
}

// CompileContext compiles an already composed context. The context must
// have defaults applied (Chart.Compose does this); the compiler never
// consults hidden state.
func CompileContext(ctx *charts.Context, data charts.Rows) *echarts.Option {
	opt := &echarts.Option{
		Grid:    compileGrid(ctx),
		Legend:  compileLegend(ctx),
		Tooltip: compileTooltip(ctx),
		Series:  compileSeries(ctx, data),
	}
	if isCartesian(ctx.Kind()) {
		opt.XAxis = compileAxis(ctx, roleX, data)
		opt.YAxis = compileAxis(ctx, roleY, data)
	}
	if ctx.Kind() == charts.KindRadar {
		opt.Radar = compileRadar(ctx, data)
	}
	return opt
}

// isCartesian reports whether the kind renders against an X/Y axis pair.
func isCartesian(kind charts.Kind) bool {
	switch kind {
	case charts.KindLine, charts.KindArea, charts.KindBar, charts.KindScatter, charts.KindComposed:
		return true
	default:
		return false
	}
}

// compileGrid maps the chart root's padding onto the grid component
// verbatim. The grid-lines primitive plays no part here; it only controls
// split line visibility on the axes.
func compileGrid(ctx *charts.Context) *echarts.Grid {
	p := ctx.Padding()
	return &echarts.Grid{
		Top:          p.Top,
		Right:        p.Right,
		Bottom:       p.Bottom,
		Left:         p.Left,
		ContainLabel: ctx.ContainLabel(),
	}
}

func compileAxis(ctx *charts.Context, role axisRole, data charts.Rows) *echarts.Axis {
	var (
		ax charts.AxisOptions
		ok bool
	)
	if role == roleX {
		ax, ok = ctx.XAxis()
	} else {
		ax, ok = ctx.YAxis()
	}
	if !ok {
		return nil
	}

	out := &echarts.Axis{
		Type:      axisTypeFor(ax.Scale, role),
		AxisLine:  &echarts.Toggle{Show: ax.Show && ax.AxisLine},
		AxisTick:  &echarts.Toggle{Show: ax.Show && ax.TickLine},
		SplitLine: compileSplitLine(ctx, role),
	}
	if out.Type == "category" && ax.DataKey != "" {
		out.Data = data.Labels(ax.DataKey)
	}
	return out
}

// compileSplitLine wires axis split lines from the grid-lines primitive:
// vertical grid lines belong to the X axis, horizontal ones to the Y axis.
// An explicit grid stroke overrides the line color on both axes uniformly.
func compileSplitLine(ctx *charts.Context, role axisRole) *echarts.SplitLine {
	grid, ok := ctx.Grid()
	if !ok {
		return nil
	}

	show := grid.Show && grid.Vertical
	if role == roleY {
		show = grid.Show && grid.Horizontal
	}

	line := &echarts.SplitLine{Show: show}
	if grid.Stroke != "" {
		line.LineStyle = &echarts.LineStyle{Color: grid.Stroke}
	}
	return line
}

func compileLegend(ctx *charts.Context) *echarts.Legend {
	l, ok := ctx.Legend()
	if !ok {
		return nil
	}
	return &echarts.Legend{
		Show:   l.Show,
		Orient: orientNames[l.Layout],
		Left:   alignNames[l.Align],
		Top:    legendTop(l),
	}
}

func compileTooltip(ctx *charts.Context) *echarts.Tooltip {
	t, ok := ctx.Tooltip()
	if !ok {
		return nil
	}
	out := &echarts.Tooltip{
		Show:    t.Show,
		Trigger: triggerNames[t.Mode],
	}
	if t.Mode == charts.TriggerAxis {
		out.AxisPointer = &echarts.AxisPointer{Type: cursorNames[t.Cursor]}
	}
	return out
}

// compileRadar synthesizes the radar indicator spokes from the X axis
// binding: one spoke per row label.
func compileRadar(ctx *charts.Context, data charts.Rows) *echarts.Radar {
	radar := &echarts.Radar{}
	ax, ok := ctx.XAxis()
	if !ok || ax.DataKey == "" {
		return radar
	}
	labels := data.Labels(ax.DataKey)
	radar.Indicator = make([]echarts.Indicator, len(labels))
	for i, name := range labels {
		radar.Indicator[i] = echarts.Indicator{Name: name}
	}
	return radar
}
