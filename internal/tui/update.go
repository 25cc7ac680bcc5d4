package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles events.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		_, rightWidth, interiorHeight := m.layout()
		m.DetailsViewport.Width = rightWidth - 2
		m.DetailsViewport.Height = interiorHeight - 2 // title + blank line
		m.refreshDetails()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.refreshDetails()
			}
			return m, nil
		case "down", "j":
			if m.SelectedIdx < len(m.Report.Files)-1 {
				m.SelectedIdx++
				m.refreshDetails()
			}
			return m, nil
		case "home", "g":
			m.SelectedIdx = 0
			m.refreshDetails()
			return m, nil
		case "end", "G":
			if n := len(m.Report.Files); n > 0 {
				m.SelectedIdx = n - 1
				m.refreshDetails()
			}
			return m, nil
		}
	}

	// pgup/pgdown and mouse wheel scroll the details
	m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
	return m, cmd
}

func (m *BrowserModel) refreshDetails() {
	if len(m.Report.Files) == 0 {
		m.DetailsViewport.SetContent("")
		return
	}
	if m.SelectedIdx >= len(m.Report.Files) {
		m.SelectedIdx = len(m.Report.Files) - 1
	}
	m.DetailsViewport.SetContent(renderDetails(m.Report.Files[m.SelectedIdx], m.Report.LabelA, m.Report.LabelB))
	m.DetailsViewport.GotoTop()
}
