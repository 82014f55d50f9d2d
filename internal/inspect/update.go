package inspect

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.syncContent()
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.sections)-1 {
				m.cursor++
				m.syncContent()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// layout sizes the viewport for the current terminal dimensions.
func (m *Model) layout() {
	contentWidth := m.width - listWidth(m.sections) - 6
	if contentWidth < 20 {
		contentWidth = 20
	}
	contentHeight := m.height - 6
	if contentHeight < 5 {
		contentHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = contentHeight
	}
	m.syncContent()
}

// syncContent loads the selected section into the viewport and resets scroll.
func (m *Model) syncContent() {
	if !m.ready || len(m.sections) == 0 {
		return
	}
	m.viewport.SetContent(m.sections[m.cursor].Body)
	m.viewport.GotoTop()
}

func listWidth(sections []Section) int {
	w := 12
	for _, s := range sections {
		if len(s.Name) > w {
			w = len(s.Name)
		}
	}
	return w
}
