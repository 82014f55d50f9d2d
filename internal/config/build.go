package config

import (
	"github.com/jimmyps/shadeui/pkg/charts"
)

// Build converts a validated definition into a chart root plus the inline
// data snapshot. Unset fields inherit the same defaults the composition
// pass would apply.
func (d *Definition) Build() (*charts.Chart, charts.Rows, error) {
	var opts []charts.Option
	if d.Padding != nil {
		opts = append(opts, charts.WithPadding(charts.Padding{
			Top:    d.Padding.Top,
			Right:  d.Padding.Right,
			Bottom: d.Padding.Bottom,
			Left:   d.Padding.Left,
		}))
	}
	if d.ContainLabel != nil {
		opts = append(opts, charts.WithContainLabel(*d.ContainLabel))
	}

	chart := charts.New(charts.Kind(d.Kind), opts...)

	if d.Grid != nil {
		chart.Grid(buildGrid(d.Grid))
	}
	if d.XAxis != nil {
		chart.XAxis(buildAxis(d.XAxis))
	}
	if d.YAxis != nil {
		chart.YAxis(buildAxis(d.YAxis))
	}
	if d.Tooltip != nil {
		chart.Tooltip(buildTooltip(d.Tooltip, charts.Kind(d.Kind)))
	}
	if d.Legend != nil {
		chart.Legend(buildLegend(d.Legend))
	}
	for _, s := range d.Series {
		chart.AddSeries(buildSeries(s))
	}

	rows := make(charts.Rows, len(d.Data))
	for i, row := range d.Data {
		rows[i] = charts.Row(row)
	}

	// Run a composition pass now so definition errors surface at load time
	// rather than on first render.
	if _, err := chart.Compose(); err != nil {
		return nil, nil, err
	}

	return chart, rows, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func buildGrid(g *GridConfig) charts.GridOptions {
	out := charts.DefaultGrid()
	out.Show = boolOr(g.Show, out.Show)
	out.Horizontal = boolOr(g.Horizontal, out.Horizontal)
	out.Vertical = boolOr(g.Vertical, out.Vertical)
	out.Stroke = g.Stroke
	return out
}

func buildAxis(a *AxisConfig) charts.AxisOptions {
	out := charts.DefaultAxis()
	out.Show = boolOr(a.Show, out.Show)
	out.DataKey = a.DataKey
	if a.Scale != "" {
		out.Scale = charts.Scale(a.Scale)
	}
	out.AxisLine = boolOr(a.AxisLine, out.AxisLine)
	out.TickLine = boolOr(a.TickLine, out.TickLine)
	return out
}

func buildTooltip(t *TooltipConfig, kind charts.Kind) charts.TooltipOptions {
	out := charts.DefaultTooltip(charts.DefaultTriggerMode(kind))
	out.Show = boolOr(t.Show, out.Show)
	if t.Mode != "" {
		out.Mode = charts.TriggerMode(t.Mode)
	}
	if t.Cursor != "" {
		out.Cursor = charts.Cursor(t.Cursor)
	}
	return out
}

func buildLegend(l *LegendConfig) charts.LegendOptions {
	out := charts.DefaultLegend()
	out.Show = boolOr(l.Show, out.Show)
	if l.Layout != "" {
		out.Layout = charts.Layout(l.Layout)
	}
	if l.Align != "" {
		out.Align = charts.Align(l.Align)
	}
	if l.VerticalAlign != "" {
		out.VerticalAlign = charts.VerticalAlign(l.VerticalAlign)
	}
	if l.MarginTop != nil {
		out.MarginTop = *l.MarginTop
	}
	return out
}

func buildSeries(s SeriesConfig) charts.Series {
	common := charts.SeriesCommon{
		Name:     s.Name,
		Color:    s.Color,
		Emphasis: s.Emphasis,
		Focus:    charts.Focus(s.Focus),
	}

	switch s.Type {
	case "area":
		return charts.AreaSeries{
			SeriesCommon: common,
			DataKey:      s.DataKey,
			ShowDots:     s.ShowDots,
			LineWidth:    s.LineWidth,
			StackID:      s.StackID,
			Fill:         buildFill(s.Fill),
		}
	case "bar":
		return charts.BarSeries{
			SeriesCommon: common,
			DataKey:      s.DataKey,
			StackID:      s.StackID,
			Radius:       s.Radius,
		}
	case "pie":
		return charts.PieSeries{
			SeriesCommon: common,
			DataKey:      s.DataKey,
			NameKey:      s.NameKey,
			InnerRadius:  s.InnerRadius,
			OuterRadius:  s.OuterRadius,
		}
	case "scatter":
		return charts.ScatterSeries{SeriesCommon: common}
	case "radar":
		return charts.RadarSeries{
			SeriesCommon: common,
			DataKey:      s.DataKey,
			Fill:         s.FillArea,
		}
	default:
		return charts.LineSeries{
			SeriesCommon: common,
			DataKey:      s.DataKey,
			ShowDots:     s.ShowDots,
			LineWidth:    s.LineWidth,
			Dashed:       s.Dashed,
		}
	}
}

func buildFill(f *FillConfig) *charts.FillOptions {
	if f == nil {
		return nil
	}

	out := &charts.FillOptions{
		Color:   f.Color,
		Opacity: f.Opacity,
	}
	if f.Gradient != nil {
		direction := charts.DirectionVertical
		if f.Gradient.Direction != "" {
			direction = charts.Direction(f.Gradient.Direction)
		}
		stops := make([]charts.GradientStop, len(f.Gradient.Stops))
		for i, stop := range f.Gradient.Stops {
			stops[i] = charts.GradientStop{
				Offset:  stop.Offset,
				Color:   stop.Color,
				Opacity: stop.Opacity,
			}
		}
		out.Gradient = &charts.LinearGradientOptions{
			Direction: direction,
			Stops:     stops,
		}
	}
	return out
}
