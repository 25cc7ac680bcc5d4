package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"srcdiff/internal/model"
)

// BrowserModel shows a finished report: differing files on the left, the
// differences of the selected file on the right.
type BrowserModel struct {
	// Data
	Report     model.Report
	OutputPath string

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Components
	DetailsViewport viewport.Model
}

// NewBrowser returns a browser over r. outputPath is shown in the header.
func NewBrowser(r model.Report, outputPath string) BrowserModel {
	m := BrowserModel{
		Report:          r,
		OutputPath:      outputPath,
		DetailsViewport: viewport.New(40, 10),
	}
	m.refreshDetails()
	return m
}

// Browse runs the browser until the user quits.
func Browse(r model.Report, outputPath string) error {
	m := NewBrowser(r, outputPath)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
