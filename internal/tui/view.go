package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"srcdiff/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	borderColor = lipgloss.Color("63")
)

// layout returns the panel widths and the interior height of both panels.
func (m *BrowserModel) layout() (leftWidth, rightWidth, interiorHeight int) {
	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	netWidth := m.WindowSize.Width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth = netWidth / 3
	rightWidth = netWidth - leftWidth

	// Title line, footer and borders
	boxHeight := m.WindowSize.Height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight = boxHeight - 2
	return leftWidth, rightWidth, interiorHeight
}

func (m *BrowserModel) View() string {
	leftWidth, rightWidth, interiorHeight := m.layout()

	header := titleStyle.Render(fmt.Sprintf("%s vs %s", m.Report.LabelA, m.Report.LabelB)) +
		dimStyle.Render(fmt.Sprintf("  %d differing, %d missing, %d added  → %s",
			len(m.Report.Files), len(m.Report.Missing), len(m.Report.Added), m.OutputPath))

	if len(m.Report.Files) == 0 {
		return header + "\n\n  " + model.IconClean + " No definition or source differences.\n\n" +
			dimStyle.Render("q: Quit")
	}

	// LEFT PANEL: differing files
	var leftView strings.Builder
	leftView.WriteString(headingStyle.Render("Files"))
	leftView.WriteString("\n\n")

	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.Report.Files)
	if len(m.Report.Files) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx+visibleItems > len(m.Report.Files) {
			startIdx = len(m.Report.Files) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		fc := m.Report.Files[i]
		line := fmt.Sprintf("%2d. %s (%d/%d)", i+1, fc.RelPath, len(fc.Defines), len(fc.Lines))
		if len(line) > leftWidth-2 && leftWidth > 5 {
			line = line[:leftWidth-5] + "..."
		}
		style := normalStyle
		if i == m.SelectedIdx {
			style = selectedStyle
		}
		leftView.WriteString(style.Render(line))
		leftView.WriteString("\n")
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: details of the selected file
	selected := m.Report.Files[m.SelectedIdx]
	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("205")).
		Render(headingStyle.Render(selected.RelPath) + "\n\n" + m.DetailsViewport.View())

	help := "↑/↓: Select file • PgUp/PgDn: Scroll details • g/G: First/Last • q: Quit"
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + dimStyle.Render(help)
}

// renderDetails lists the define and line differences of one file.
func renderDetails(fc model.FileComparison, labelA, labelB string) string {
	var b strings.Builder
	if len(fc.Defines) > 0 {
		b.WriteString(headingStyle.Render(model.IconDefines + " #define"))
		b.WriteString("\n")
		for _, d := range fc.Defines {
			fmt.Fprintf(&b, "%s\n  %s %s\n  %s %s\n", d.Name,
				removeStyle.Render("- "+labelA+":"), d.A,
				addStyle.Render("+ "+labelB+":"), d.B)
		}
		b.WriteString("\n")
	}
	if len(fc.Lines) > 0 {
		b.WriteString(headingStyle.Render(model.IconSource + " source"))
		b.WriteString("\n")
		for _, l := range fc.Lines {
			fmt.Fprintf(&b, "%s %s\n%s %s\n",
				dimStyle.Render(fmt.Sprintf("%5d", l.Line)), removeStyle.Render("- "+l.A),
				dimStyle.Render("     "), addStyle.Render("+ "+l.B))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
