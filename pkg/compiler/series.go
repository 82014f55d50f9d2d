package compiler

import (
	"github.com/jimmyps/shadeui/pkg/charts"
	"github.com/jimmyps/shadeui/pkg/echarts"
	"github.com/jimmyps/shadeui/pkg/paint"
	"github.com/jimmyps/shadeui/pkg/theme"
)

// compileSeries compiles each series entry independently, preserving
// declaration order so z-order and palette assignment stay stable.
func compileSeries(ctx *charts.Context, data charts.Rows) []*echarts.Series {
	list := ctx.Series()
	out := make([]*echarts.Series, len(list))
	for i, s := range list {
		out[i] = compileOneSeries(ctx, data, s, i)
	}
	return out
}

func compileOneSeries(ctx *charts.Context, data charts.Rows, s charts.Series, index int) *echarts.Series {
	color := seriesColor(s.Common(), index)

	switch v := s.(type) {
	case charts.LineSeries:
		show := v.ShowDots
		return &echarts.Series{
			Type:       "line",
			Name:       v.Name,
			Data:       data.Values(v.DataKey),
			ShowSymbol: &show,
			ItemStyle:  &echarts.ItemStyle{Color: color},
			LineStyle:  strokeStyle(color, v.LineWidth, v.Dashed),
			Emphasis:   compileEmphasis(s.Common()),
		}

	case charts.AreaSeries:
		show := v.ShowDots
		return &echarts.Series{
			Type:       "line",
			Name:       v.Name,
			Data:       data.Values(v.DataKey),
			ShowSymbol: &show,
			ItemStyle:  &echarts.ItemStyle{Color: color},
			LineStyle:  strokeStyle(color, v.LineWidth, false),
			AreaStyle:  areaStyle(v.Fill),
			Stack:      v.StackID,
			Emphasis:   compileEmphasis(s.Common()),
		}

	case charts.BarSeries:
		item := &echarts.ItemStyle{Color: color}
		if v.Radius > 0 {
			item.BorderRadius = v.Radius
		}
		return &echarts.Series{
			Type:      "bar",
			Name:      v.Name,
			Data:      data.Values(v.DataKey),
			ItemStyle: item,
			Stack:     v.StackID,
			Emphasis:  compileEmphasis(s.Common()),
		}

	case charts.PieSeries:
		out := &echarts.Series{
			Type:     "pie",
			Name:     v.Name,
			Data:     pieData(data, v),
			Radius:   pieRadius(v),
			Emphasis: compileEmphasis(s.Common()),
		}
		// Slices are colored by the renderer; an explicit color still wins.
		if v.SeriesCommon.Color != "" {
			out.ItemStyle = &echarts.ItemStyle{Color: v.SeriesCommon.Color}
		}
		return out

	case charts.ScatterSeries:
		xKey, yKey := scatterKeys(ctx)
		return &echarts.Series{
			Type:      "scatter",
			Name:      v.Name,
			Data:      data.Pairs(xKey, yKey),
			ItemStyle: &echarts.ItemStyle{Color: color},
			Emphasis:  compileEmphasis(s.Common()),
		}

	case charts.RadarSeries:
		out := &echarts.Series{
			Type:      "radar",
			Name:      v.Name,
			Data:      []any{echarts.RadarDatum{Name: v.Name, Value: data.Values(v.DataKey)}},
			ItemStyle: &echarts.ItemStyle{Color: color},
			LineStyle: strokeStyle(color, 0, false),
			Emphasis:  compileEmphasis(s.Common()),
		}
		if v.Fill {
			out.AreaStyle = &echarts.AreaStyle{}
		}
		return out

	default:
		// Context validation rejects unknown series kinds before compilation.
		return nil
	}
}

// seriesColor applies the color policy: an explicit color wins; otherwise a
// theme palette token is assigned by cycling the declaration index.
func seriesColor(common charts.SeriesCommon, index int) string {
	if common.Color != "" {
		return common.Color
	}
	return string(theme.PaletteColor(index))
}

// compileEmphasis encodes the disabled-unless-enabled hover policy.
func compileEmphasis(common charts.SeriesCommon) *echarts.Emphasis {
	e := &echarts.Emphasis{Disabled: !common.Emphasis}
	if common.Emphasis && common.Focus == charts.FocusSelf {
		e.Focus = "self"
	}
	return e
}

func strokeStyle(color string, width int, dashed bool) *echarts.LineStyle {
	style := &echarts.LineStyle{Color: color}
	if width > 0 {
		style.Width = width
	}
	if dashed {
		style.Type = "dashed"
	}
	return style
}

// areaStyle resolves the fill intent; with no fill declared the renderer
// applies its own default, signalled by an empty areaStyle object.
func areaStyle(fill *charts.FillOptions) *echarts.AreaStyle {
	resolved := paint.Resolve(fill)
	if resolved == nil {
		return &echarts.AreaStyle{}
	}
	return &echarts.AreaStyle{Color: resolved}
}

func pieData(data charts.Rows, s charts.PieSeries) []any {
	names := data.Labels(s.NameKey)
	out := make([]any, len(data))
	for i, row := range data {
		out[i] = echarts.PieDatum{Name: names[i], Value: row[s.DataKey]}
	}
	return out
}

func pieRadius(s charts.PieSeries) any {
	switch {
	case s.InnerRadius != "" && s.OuterRadius != "":
		return []string{s.InnerRadius, s.OuterRadius}
	case s.OuterRadius != "":
		return s.OuterRadius
	default:
		return nil
	}
}

// scatterKeys derives point coordinates from the axis bindings.
func scatterKeys(ctx *charts.Context) (xKey, yKey string) {
	if ax, ok := ctx.XAxis(); ok {
		xKey = ax.DataKey
	}
	if ax, ok := ctx.YAxis(); ok {
		yKey = ax.DataKey
	}
	return xKey, yKey
}
