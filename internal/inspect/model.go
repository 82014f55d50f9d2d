// Package inspect provides an interactive terminal browser for compiled
// chart option documents. One section per top-level option key plus one per
// series, rendered as indented JSON inside a scrollable viewport.
package inspect

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jimmyps/shadeui/pkg/echarts"
)

// Section is a single browsable slice of the option document.
type Section struct {
	Name string
	Body string
}

// Model drives the inspect TUI.
type Model struct {
	title    string
	sections []Section
	cursor   int

	viewport viewport.Model
	ready    bool

	width  int
	height int
}

// NewModel builds the section list from a compiled option document.
func NewModel(title string, doc *echarts.Option) Model {
	m := Model{
		title:    title,
		sections: buildSections(doc),
		width:    80,
		height:   24,
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func buildSections(doc *echarts.Option) []Section {
	var sections []Section

	add := func(name string, v any) {
		if v == nil || isNilPointer(v) {
			return
		}
		sections = append(sections, Section{Name: name, Body: renderJSON(v)})
	}

	add("grid", doc.Grid)
	add("xAxis", doc.XAxis)
	add("yAxis", doc.YAxis)
	add("radar", doc.Radar)
	add("tooltip", doc.Tooltip)
	add("legend", doc.Legend)

	for i, s := range doc.Series {
		name := fmt.Sprintf("series[%d] %s", i, s.Type)
		if s.Name != "" {
			name = fmt.Sprintf("series[%d] %s (%s)", i, s.Name, s.Type)
		}
		sections = append(sections, Section{Name: name, Body: renderJSON(s)})
	}

	return sections
}

func renderJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<unrenderable: %v>", err)
	}
	return string(data)
}

func isNilPointer(v any) bool {
	switch p := v.(type) {
	case *echarts.Grid:
		return p == nil
	case *echarts.Axis:
		return p == nil
	case *echarts.Tooltip:
		return p == nil
	case *echarts.Legend:
		return p == nil
	case *echarts.Radar:
		return p == nil
	default:
		return false
	}
}
