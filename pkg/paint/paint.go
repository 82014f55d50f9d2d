// Package paint resolves a series' fill intent into the renderer's paint
// object. Resolution produces literal color strings that may still contain
// unresolved theme tokens; token resolution belongs to the bridge.
package paint

import (
	"fmt"

	"github.com/jimmyps/shadeui/pkg/charts"
	"github.com/jimmyps/shadeui/pkg/echarts"
)

// Resolve converts a fill into a paint value: a *echarts.LinearGradient
// when a gradient is declared, a color string for a solid fill, or nil when
// neither is present so the renderer applies its own default.
func Resolve(fill *charts.FillOptions) any {
	if fill == nil {
		return nil
	}
	if fill.Gradient != nil {
		return Gradient(fill.Gradient)
	}
	if fill.Color != "" {
		return Literal(fill.Color, fill.Opacity)
	}
	return nil
}

// Gradient builds the renderer gradient descriptor: direction-derived
// start/end coordinates and ordered {offset, color} stops.
func Gradient(g *charts.LinearGradientOptions) *echarts.LinearGradient {
	x, y, x2, y2 := gradientCoords(g.Direction)
	stops := make([]echarts.GradientStop, len(g.Stops))
	for i, stop := range g.Stops {
		stops[i] = echarts.GradientStop{
			Offset: stop.Offset,
			Color:  Literal(stop.Color, stop.Opacity),
		}
	}
	return &echarts.LinearGradient{
		Type:       "linear",
		X:          x,
		Y:          y,
		X2:         x2,
		Y2:         y2,
		ColorStops: stops,
	}
}

func gradientCoords(d charts.Direction) (x, y, x2, y2 float64) {
	if d == charts.DirectionHorizontal {
		return 0, 0, 1, 0
	}
	// Vertical is the default direction.
	return 0, 0, 0, 1
}

// Literal combines a color with an opacity into a single paint string. An
// opacity of 0 (unset) or >= 1 passes the color through untouched.
//
// TODO: the rgba interpolation below only yields a valid paint value when
// color is already bare R,G,B channel values; a hex string or theme token
// passed through here produces a malformed paint string. Needs a decision
// from the renderer owners: either require pre-decomposed channels or defer
// opacity blending to the bridge.
func Literal(color string, opacity float64) string {
	if opacity <= 0 || opacity >= 1 {
		return color
	}
	return fmt.Sprintf("rgba(%s, %g)", color, opacity)
}
