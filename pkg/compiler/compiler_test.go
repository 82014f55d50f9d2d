package compiler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmyps/shadeui/pkg/charts"
	"github.com/jimmyps/shadeui/pkg/echarts"
)

func monthlyRows() charts.Rows {
	return charts.Rows{
		{"month": "January", "desktop": 186, "mobile": 80},
		{"month": "February", "desktop": 305, "mobile": 200},
		{"month": "March", "desktop": 237, "mobile": 120},
	}
}

func TestCompileLineChart(t *testing.T) {
	chart := charts.NewLine().
		XAxis(charts.AxisOptions{Show: true, DataKey: "month", Scale: charts.ScaleAuto, AxisLine: true, TickLine: true}).
		AddSeries(charts.LineSeries{SeriesCommon: charts.SeriesCommon{Name: "desktop"}, DataKey: "desktop"}).
		AddSeries(charts.LineSeries{SeriesCommon: charts.SeriesCommon{Name: "mobile"}, DataKey: "mobile"})

	doc, err := Compile(chart, monthlyRows())
	require.NoError(t, err)

	require.NotNil(t, doc.XAxis)
	assert.Equal(t, "category", doc.XAxis.Type)
	assert.Equal(t, []string{"January", "February", "March"}, doc.XAxis.Data)

	require.NotNil(t, doc.YAxis)
	assert.Equal(t, "value", doc.YAxis.Type)
	assert.Empty(t, doc.YAxis.Data)

	require.Len(t, doc.Series, 2)
	assert.Equal(t, "chart-1", doc.Series[0].ItemStyle.Color)
	assert.Equal(t, "chart-2", doc.Series[1].ItemStyle.Color)
	assert.True(t, doc.Series[0].Emphasis.Disabled)
	assert.True(t, doc.Series[1].Emphasis.Disabled)
}

func TestCompileGridFromRootPadding(t *testing.T) {
	t.Run("default padding", func(t *testing.T) {
		doc, err := Compile(
			charts.NewLine().AddSeries(charts.LineSeries{DataKey: "desktop"}),
			monthlyRows())
		require.NoError(t, err)

		require.NotNil(t, doc.Grid)
		assert.Equal(t, &echarts.Grid{Top: 32, Right: 16, Bottom: 24, Left: 16, ContainLabel: true}, doc.Grid)
	})

	t.Run("explicit padding maps verbatim", func(t *testing.T) {
		doc, err := Compile(
			charts.NewBar(
				charts.WithPadding(charts.Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}),
				charts.WithContainLabel(false),
			).AddSeries(charts.BarSeries{DataKey: "sales"}),
			nil)
		require.NoError(t, err)

		assert.Equal(t, &echarts.Grid{Top: 1, Right: 2, Bottom: 3, Left: 4, ContainLabel: false}, doc.Grid)
	})
}

func TestCompileAxisScales(t *testing.T) {
	tests := []struct {
		name  string
		scale charts.Scale
		wantX string
		wantY string
	}{
		{"auto resolves by role", charts.ScaleAuto, "category", "value"},
		{"category maps directly", charts.ScaleCategory, "category", "category"},
		{"value maps directly", charts.ScaleValue, "value", "value"},
		{"time maps directly", charts.ScaleTime, "time", "time"},
		{"log maps directly", charts.ScaleLog, "log", "log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := charts.NewLine().
				XAxis(charts.AxisOptions{Show: true, Scale: tt.scale}).
				YAxis(charts.AxisOptions{Show: true, Scale: tt.scale}).
				AddSeries(charts.LineSeries{DataKey: "desktop"})

			doc, err := Compile(chart, monthlyRows())
			require.NoError(t, err)
			assert.Equal(t, tt.wantX, doc.XAxis.Type)
			assert.Equal(t, tt.wantY, doc.YAxis.Type)
		})
	}
}

func TestCompileAxisVisibility(t *testing.T) {
	t.Run("hidden axis suppresses line and ticks", func(t *testing.T) {
		chart := charts.NewLine().
			XAxis(charts.AxisOptions{Show: false, AxisLine: true, TickLine: true}).
			AddSeries(charts.LineSeries{DataKey: "desktop"})

		doc, err := Compile(chart, nil)
		require.NoError(t, err)
		assert.False(t, doc.XAxis.AxisLine.Show)
		assert.False(t, doc.XAxis.AxisTick.Show)
	})

	t.Run("shown axis honors individual toggles", func(t *testing.T) {
		chart := charts.NewLine().
			XAxis(charts.AxisOptions{Show: true, AxisLine: true, TickLine: false}).
			AddSeries(charts.LineSeries{DataKey: "desktop"})

		doc, err := Compile(chart, nil)
		require.NoError(t, err)
		assert.True(t, doc.XAxis.AxisLine.Show)
		assert.False(t, doc.XAxis.AxisTick.Show)
	})
}

func TestCompileSplitLines(t *testing.T) {
	compile := func(t *testing.T, grid charts.GridOptions) *echarts.Option {
		t.Helper()
		doc, err := Compile(
			charts.NewLine().Grid(grid).AddSeries(charts.LineSeries{DataKey: "desktop"}),
			nil)
		require.NoError(t, err)
		return doc
	}

	t.Run("vertical lines attach to the x axis", func(t *testing.T) {
		doc := compile(t, charts.GridOptions{Show: true, Horizontal: false, Vertical: true})
		assert.True(t, doc.XAxis.SplitLine.Show)
		assert.False(t, doc.YAxis.SplitLine.Show)
	})

	t.Run("horizontal lines attach to the y axis", func(t *testing.T) {
		doc := compile(t, charts.GridOptions{Show: true, Horizontal: true, Vertical: false})
		assert.False(t, doc.XAxis.SplitLine.Show)
		assert.True(t, doc.YAxis.SplitLine.Show)
	})

	t.Run("hidden grid suppresses both", func(t *testing.T) {
		doc := compile(t, charts.GridOptions{Show: false, Horizontal: true, Vertical: true})
		assert.False(t, doc.XAxis.SplitLine.Show)
		assert.False(t, doc.YAxis.SplitLine.Show)
	})

	t.Run("stroke overrides the line color on both axes", func(t *testing.T) {
		doc := compile(t, charts.GridOptions{Show: true, Horizontal: true, Vertical: true, Stroke: "chart-5"})
		require.NotNil(t, doc.XAxis.SplitLine.LineStyle)
		require.NotNil(t, doc.YAxis.SplitLine.LineStyle)
		assert.Equal(t, "chart-5", doc.XAxis.SplitLine.LineStyle.Color)
		assert.Equal(t, "chart-5", doc.YAxis.SplitLine.LineStyle.Color)
	})

	t.Run("no stroke leaves the line style to the renderer", func(t *testing.T) {
		doc := compile(t, charts.GridOptions{Show: true, Horizontal: true, Vertical: true})
		assert.Nil(t, doc.XAxis.SplitLine.LineStyle)
	})
}

func TestCompileLegend(t *testing.T) {
	compile := func(t *testing.T, l charts.LegendOptions) *echarts.Legend {
		t.Helper()
		doc, err := Compile(
			charts.NewLine().Legend(l).AddSeries(charts.LineSeries{DataKey: "desktop"}),
			nil)
		require.NoError(t, err)
		return doc.Legend
	}

	t.Run("default placement", func(t *testing.T) {
		doc, err := Compile(
			charts.NewLine().AddSeries(charts.LineSeries{DataKey: "desktop"}),
			nil)
		require.NoError(t, err)

		assert.Equal(t, &echarts.Legend{
			Show:   true,
			Orient: "horizontal",
			Left:   "center",
			Top:    "4",
		}, doc.Legend)
	})

	t.Run("top anchor emits the numeric margin", func(t *testing.T) {
		legend := compile(t, charts.LegendOptions{
			Show: true, Layout: charts.LayoutHorizontal,
			Align: charts.AlignCenter, VerticalAlign: charts.VerticalAlignTop, MarginTop: 12,
		})
		assert.Equal(t, "12", legend.Top)
	})

	t.Run("bottom-right placement emits keywords", func(t *testing.T) {
		legend := compile(t, charts.LegendOptions{
			Show: true, Layout: charts.LayoutVertical,
			Align: charts.AlignRight, VerticalAlign: charts.VerticalAlignBottom,
		})
		assert.Equal(t, "bottom", legend.Top)
		assert.Equal(t, "right", legend.Left)
		assert.Equal(t, "vertical", legend.Orient)
	})

	t.Run("middle anchor emits the keyword", func(t *testing.T) {
		legend := compile(t, charts.LegendOptions{
			Show: true, Layout: charts.LayoutHorizontal,
			Align: charts.AlignLeft, VerticalAlign: charts.VerticalAlignMiddle,
		})
		assert.Equal(t, "middle", legend.Top)
		assert.Equal(t, "left", legend.Left)
	})
}

func TestCompileTooltip(t *testing.T) {
	t.Run("axis mode carries an axis pointer", func(t *testing.T) {
		doc, err := Compile(
			charts.NewLine().
				Tooltip(charts.TooltipOptions{Show: true, Mode: charts.TriggerAxis, Cursor: charts.CursorCross}).
				AddSeries(charts.LineSeries{DataKey: "desktop"}),
			nil)
		require.NoError(t, err)

		assert.Equal(t, "axis", doc.Tooltip.Trigger)
		require.NotNil(t, doc.Tooltip.AxisPointer)
		assert.Equal(t, "cross", doc.Tooltip.AxisPointer.Type)
	})

	t.Run("item mode never carries an axis pointer", func(t *testing.T) {
		doc, err := Compile(
			charts.NewLine().
				Tooltip(charts.TooltipOptions{Show: true, Mode: charts.TriggerItem}).
				AddSeries(charts.LineSeries{DataKey: "desktop"}),
			nil)
		require.NoError(t, err)

		assert.Equal(t, "item", doc.Tooltip.Trigger)
		assert.Nil(t, doc.Tooltip.AxisPointer)
	})

	t.Run("default trigger follows the chart kind", func(t *testing.T) {
		tests := []struct {
			chart   *charts.Chart
			trigger string
		}{
			{charts.NewLine().AddSeries(charts.LineSeries{DataKey: "v"}), "axis"},
			{charts.NewBar().AddSeries(charts.BarSeries{DataKey: "v"}), "axis"},
			{charts.NewScatter().AddSeries(charts.ScatterSeries{}), "axis"},
			{charts.NewPie().AddSeries(charts.PieSeries{DataKey: "v", NameKey: "n"}), "item"},
			{charts.NewRadar().AddSeries(charts.RadarSeries{DataKey: "v"}), "item"},
		}

		for _, tt := range tests {
			doc, err := Compile(tt.chart, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.trigger, doc.Tooltip.Trigger, "kind %s", tt.chart.Kind())
			if tt.trigger == "item" {
				assert.Nil(t, doc.Tooltip.AxisPointer, "kind %s", tt.chart.Kind())
			}
		}
	})
}

func TestCompilePaletteCycling(t *testing.T) {
	chart := charts.NewComposed()
	for _, key := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		chart.AddSeries(charts.LineSeries{SeriesCommon: charts.SeriesCommon{Name: key}, DataKey: key})
	}

	doc, err := Compile(chart, nil)
	require.NoError(t, err)
	require.Len(t, doc.Series, 7)

	want := []string{"chart-1", "chart-2", "chart-3", "chart-4", "chart-5", "chart-1", "chart-2"}
	for i, s := range doc.Series {
		assert.Equal(t, want[i], s.ItemStyle.Color, "series %d", i)
	}
}

func TestCompileExplicitColorWins(t *testing.T) {
	chart := charts.NewLine().
		AddSeries(charts.LineSeries{SeriesCommon: charts.SeriesCommon{Color: "#8884d8"}, DataKey: "a"}).
		AddSeries(charts.LineSeries{DataKey: "b"})

	doc, err := Compile(chart, nil)
	require.NoError(t, err)

	assert.Equal(t, "#8884d8", doc.Series[0].ItemStyle.Color)
	// The palette index counts declaration order, not unassigned series.
	assert.Equal(t, "chart-2", doc.Series[1].ItemStyle.Color)
}

func TestCompileEmphasis(t *testing.T) {
	t.Run("disabled unless enabled", func(t *testing.T) {
		doc, err := Compile(
			charts.NewLine().AddSeries(charts.LineSeries{DataKey: "a"}),
			nil)
		require.NoError(t, err)
		assert.True(t, doc.Series[0].Emphasis.Disabled)
		assert.Empty(t, doc.Series[0].Emphasis.Focus)
	})

	t.Run("enabled with self focus", func(t *testing.T) {
		doc, err := Compile(
			charts.NewLine().AddSeries(charts.LineSeries{
				SeriesCommon: charts.SeriesCommon{Emphasis: true, Focus: charts.FocusSelf},
				DataKey:      "a",
			}),
			nil)
		require.NoError(t, err)
		assert.False(t, doc.Series[0].Emphasis.Disabled)
		assert.Equal(t, "self", doc.Series[0].Emphasis.Focus)
	})

	t.Run("focus is dropped when emphasis stays disabled", func(t *testing.T) {
		doc, err := Compile(
			charts.NewLine().AddSeries(charts.LineSeries{
				SeriesCommon: charts.SeriesCommon{Focus: charts.FocusSelf},
				DataKey:      "a",
			}),
			nil)
		require.NoError(t, err)
		assert.True(t, doc.Series[0].Emphasis.Disabled)
		assert.Empty(t, doc.Series[0].Emphasis.Focus)
	})
}

func TestCompileLineSeries(t *testing.T) {
	chart := charts.NewLine().AddSeries(charts.LineSeries{
		SeriesCommon: charts.SeriesCommon{Name: "desktop"},
		DataKey:      "desktop",
		ShowDots:     false,
		LineWidth:    2,
		Dashed:       true,
	})

	doc, err := Compile(chart, monthlyRows())
	require.NoError(t, err)

	s := doc.Series[0]
	assert.Equal(t, "line", s.Type)
	assert.Equal(t, []any{186, 305, 237}, s.Data)
	require.NotNil(t, s.ShowSymbol)
	assert.False(t, *s.ShowSymbol)
	assert.Equal(t, 2, s.LineStyle.Width)
	assert.Equal(t, "dashed", s.LineStyle.Type)
	assert.Nil(t, s.AreaStyle)
}

func TestCompileAreaSeries(t *testing.T) {
	t.Run("stacked series share a stack id", func(t *testing.T) {
		chart := charts.NewArea().
			AddSeries(charts.AreaSeries{SeriesCommon: charts.SeriesCommon{Name: "desktop"}, DataKey: "desktop", StackID: "1"}).
			AddSeries(charts.AreaSeries{SeriesCommon: charts.SeriesCommon{Name: "mobile"}, DataKey: "mobile", StackID: "1"})

		doc, err := Compile(chart, monthlyRows())
		require.NoError(t, err)

		require.Len(t, doc.Series, 2)
		assert.Equal(t, "1", doc.Series[0].Stack)
		assert.Equal(t, "1", doc.Series[1].Stack)
	})

	t.Run("no fill asks the renderer for its default", func(t *testing.T) {
		doc, err := Compile(
			charts.NewArea().AddSeries(charts.AreaSeries{DataKey: "desktop"}),
			nil)
		require.NoError(t, err)

		require.NotNil(t, doc.Series[0].AreaStyle)
		assert.Nil(t, doc.Series[0].AreaStyle.Color)
	})

	t.Run("gradient fill compiles to a paint object", func(t *testing.T) {
		doc, err := Compile(
			charts.NewArea().AddSeries(charts.AreaSeries{
				DataKey: "desktop",
				Fill: &charts.FillOptions{
					Gradient: &charts.LinearGradientOptions{
						Direction: charts.DirectionVertical,
						Stops: []charts.GradientStop{
							{Offset: 0, Color: "chart-1", Opacity: 0.8},
							{Offset: 1, Color: "chart-1", Opacity: 0.1},
						},
					},
				},
			}),
			nil)
		require.NoError(t, err)

		gradient, ok := doc.Series[0].AreaStyle.Color.(*echarts.LinearGradient)
		require.True(t, ok)
		assert.Equal(t, 1.0, gradient.Y2)
		assert.Len(t, gradient.ColorStops, 2)
	})

	t.Run("area renders as a line series", func(t *testing.T) {
		doc, err := Compile(
			charts.NewArea().AddSeries(charts.AreaSeries{DataKey: "desktop"}),
			nil)
		require.NoError(t, err)
		assert.Equal(t, "line", doc.Series[0].Type)
	})
}

func TestCompileBarSeries(t *testing.T) {
	t.Run("rounded corners only when declared", func(t *testing.T) {
		doc, err := Compile(
			charts.NewBar().
				AddSeries(charts.BarSeries{DataKey: "a", Radius: 4}).
				AddSeries(charts.BarSeries{DataKey: "b"}),
			nil)
		require.NoError(t, err)

		assert.Equal(t, 4, doc.Series[0].ItemStyle.BorderRadius)
		assert.Nil(t, doc.Series[1].ItemStyle.BorderRadius)
	})

	t.Run("stacked bars", func(t *testing.T) {
		doc, err := Compile(
			charts.NewBar().
				AddSeries(charts.BarSeries{DataKey: "a", StackID: "total"}).
				AddSeries(charts.BarSeries{DataKey: "b", StackID: "total"}),
			nil)
		require.NoError(t, err)
		assert.Equal(t, "total", doc.Series[0].Stack)
		assert.Equal(t, "total", doc.Series[1].Stack)
	})
}

func TestCompilePieSeries(t *testing.T) {
	rows := charts.Rows{
		{"browser": "chrome", "visitors": 275},
		{"browser": "safari", "visitors": 200},
	}

	t.Run("slices pair the name and value fields", func(t *testing.T) {
		doc, err := Compile(
			charts.NewPie().AddSeries(charts.PieSeries{DataKey: "visitors", NameKey: "browser"}),
			rows)
		require.NoError(t, err)

		require.Len(t, doc.Series[0].Data, 2)
		assert.Equal(t, echarts.PieDatum{Name: "chrome", Value: 275}, doc.Series[0].Data[0])
		assert.Equal(t, echarts.PieDatum{Name: "safari", Value: 200}, doc.Series[0].Data[1])
	})

	t.Run("donut radius compiles to a pair", func(t *testing.T) {
		doc, err := Compile(
			charts.NewPie().AddSeries(charts.PieSeries{
				DataKey: "visitors", NameKey: "browser",
				InnerRadius: "40%", OuterRadius: "70%",
			}),
			rows)
		require.NoError(t, err)
		assert.Equal(t, []string{"40%", "70%"}, doc.Series[0].Radius)
	})

	t.Run("outer radius alone compiles to a scalar", func(t *testing.T) {
		doc, err := Compile(
			charts.NewPie().AddSeries(charts.PieSeries{
				DataKey: "visitors", NameKey: "browser", OuterRadius: "80%",
			}),
			rows)
		require.NoError(t, err)
		assert.Equal(t, "80%", doc.Series[0].Radius)
	})

	t.Run("slices are colored by the renderer unless explicit", func(t *testing.T) {
		doc, err := Compile(
			charts.NewPie().AddSeries(charts.PieSeries{DataKey: "visitors", NameKey: "browser"}),
			rows)
		require.NoError(t, err)
		assert.Nil(t, doc.Series[0].ItemStyle)

		doc, err = Compile(
			charts.NewPie().AddSeries(charts.PieSeries{
				SeriesCommon: charts.SeriesCommon{Color: "#123456"},
				DataKey:      "visitors", NameKey: "browser",
			}),
			rows)
		require.NoError(t, err)
		require.NotNil(t, doc.Series[0].ItemStyle)
		assert.Equal(t, "#123456", doc.Series[0].ItemStyle.Color)
	})

	t.Run("pie documents carry no cartesian axes", func(t *testing.T) {
		doc, err := Compile(
			charts.NewPie().AddSeries(charts.PieSeries{DataKey: "visitors", NameKey: "browser"}),
			rows)
		require.NoError(t, err)
		assert.Nil(t, doc.XAxis)
		assert.Nil(t, doc.YAxis)
	})
}

func TestCompileScatterSeries(t *testing.T) {
	rows := charts.Rows{
		{"height": 170, "weight": 65},
		{"height": 182, "weight": 80},
	}

	chart := charts.NewScatter().
		XAxis(charts.AxisOptions{Show: true, DataKey: "height", Scale: charts.ScaleValue}).
		YAxis(charts.AxisOptions{Show: true, DataKey: "weight", Scale: charts.ScaleValue}).
		AddSeries(charts.ScatterSeries{SeriesCommon: charts.SeriesCommon{Name: "adults"}})

	doc, err := Compile(chart, rows)
	require.NoError(t, err)

	s := doc.Series[0]
	assert.Equal(t, "scatter", s.Type)
	assert.Equal(t, []any{
		[]any{170, 65},
		[]any{182, 80},
	}, s.Data)
}

func TestCompileRadarChart(t *testing.T) {
	rows := charts.Rows{
		{"month": "January", "desktop": 186},
		{"month": "February", "desktop": 305},
		{"month": "March", "desktop": 237},
	}

	chart := charts.NewRadar().
		XAxis(charts.AxisOptions{Show: true, DataKey: "month", Scale: charts.ScaleAuto}).
		AddSeries(charts.RadarSeries{SeriesCommon: charts.SeriesCommon{Name: "desktop"}, DataKey: "desktop", Fill: true})

	doc, err := Compile(chart, rows)
	require.NoError(t, err)

	require.NotNil(t, doc.Radar)
	require.Len(t, doc.Radar.Indicator, 3)
	assert.Equal(t, "January", doc.Radar.Indicator[0].Name)

	require.Len(t, doc.Series, 1)
	s := doc.Series[0]
	assert.Equal(t, "radar", s.Type)
	require.Len(t, s.Data, 1)
	datum, ok := s.Data[0].(echarts.RadarDatum)
	require.True(t, ok)
	assert.Equal(t, "desktop", datum.Name)
	assert.Equal(t, []any{186, 305, 237}, datum.Value)
	require.NotNil(t, s.AreaStyle)

	assert.Nil(t, doc.XAxis, "radar documents carry no cartesian axes")
	assert.Nil(t, doc.YAxis)
}

func TestCompileIsDeterministic(t *testing.T) {
	chart := charts.NewComposed().
		Grid(charts.GridOptions{Show: true, Horizontal: true, Vertical: false, Stroke: "chart-4"}).
		XAxis(charts.AxisOptions{Show: true, DataKey: "month", Scale: charts.ScaleAuto, AxisLine: true}).
		Legend(charts.LegendOptions{Show: true, Layout: charts.LayoutHorizontal, Align: charts.AlignCenter, VerticalAlign: charts.VerticalAlignBottom}).
		AddSeries(charts.BarSeries{SeriesCommon: charts.SeriesCommon{Name: "desktop"}, DataKey: "desktop", Radius: 4}).
		AddSeries(charts.LineSeries{SeriesCommon: charts.SeriesCommon{Name: "mobile", Emphasis: true, Focus: charts.FocusSelf}, DataKey: "mobile", LineWidth: 2})

	rows := monthlyRows()

	first, err := Compile(chart, rows)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Compile(chart, rows)
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestCompilePropagatesCompositionErrors(t *testing.T) {
	_, err := Compile(charts.NewLine(), nil)
	require.Error(t, err)

	_, err = Compile(charts.NewPie().Grid(charts.DefaultGrid()).
		AddSeries(charts.PieSeries{DataKey: "v", NameKey: "n"}), nil)
	require.Error(t, err)
}
