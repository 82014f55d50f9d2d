package inspect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	var list strings.Builder
	for i, s := range m.sections {
		if i == m.cursor {
			list.WriteString(selectedSectionStyle.Render(s.Name))
		} else {
			list.WriteString(sectionStyle.Render(s.Name))
		}
		list.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		list.String(),
		contentStyle.Render(m.viewport.View()),
	)
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ section • scroll: pgup/pgdn • q quit"))

	return b.String()
}
