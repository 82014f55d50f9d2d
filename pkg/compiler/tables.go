package compiler

import (
	"strconv"

	"github.com/jimmyps/shadeui/pkg/charts"
)

// One lookup table per enum keeps every mapping explicit and testable as
// pure data instead of scattering conditional chains through the compiler.

var axisTypeNames = map[charts.Scale]string{
	charts.ScaleCategory: "category",
	charts.ScaleValue:    "value",
	charts.ScaleTime:     "time",
	charts.ScaleLog:      "log",
}

var cursorNames = map[charts.Cursor]string{
	charts.CursorNone:   "none",
	charts.CursorLine:   "line",
	charts.CursorCross:  "cross",
	charts.CursorShadow: "shadow",
}

var triggerNames = map[charts.TriggerMode]string{
	charts.TriggerAxis: "axis",
	charts.TriggerItem: "item",
}

var orientNames = map[charts.Layout]string{
	charts.LayoutHorizontal: "horizontal",
	charts.LayoutVertical:   "vertical",
}

var alignNames = map[charts.Align]string{
	charts.AlignLeft:   "left",
	charts.AlignCenter: "center",
	charts.AlignRight:  "right",
}

type axisRole int

const (
	roleX axisRole = iota
	roleY
)

// axisTypeFor resolves the compiled axis type. Explicit scales map 1:1;
// auto resolves contextually by role: category for X, value for Y.
func axisTypeFor(scale charts.Scale, role axisRole) string {
	if name, ok := axisTypeNames[scale]; ok {
		return name
	}
	if role == roleX {
		return "category"
	}
	return "value"
}

// legendTop maps the vertical anchor: top emits the numeric margin as the
// offset, the other anchors emit renderer keywords.
func legendTop(l charts.LegendOptions) string {
	switch l.VerticalAlign {
	case charts.VerticalAlignMiddle:
		return "middle"
	case charts.VerticalAlignBottom:
		return "bottom"
	default:
		return strconv.Itoa(l.MarginTop)
	}
}
