package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"srcdiff/internal/model"
)

// ErrAborted is returned when the user leaves the prompts with Esc or Ctrl+C.
var ErrAborted = errors.New("input aborted")

type field int

const (
	fieldRootA field = iota
	fieldRootB
	fieldOutput
)

var promptLabels = map[field]string{
	fieldRootA:  "Enter file 1:",
	fieldRootB:  "Enter file 2:",
	fieldOutput: "Enter output file name:",
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// PromptModel asks, one after another, for the values of a Config that were not
// given on the command line.
type PromptModel struct {
	cfg     model.Config
	fields  []field
	inputs  []textinput.Model
	step    int
	done    bool
	aborted bool
}

// NewPrompt returns a prompt for every empty path field of cfg.
func NewPrompt(cfg model.Config) PromptModel {
	m := PromptModel{cfg: cfg}
	if cfg.RootA == "" {
		m.fields = append(m.fields, fieldRootA)
	}
	if cfg.RootB == "" {
		m.fields = append(m.fields, fieldRootB)
	}
	if cfg.Output == "" {
		m.fields = append(m.fields, fieldOutput)
	}
	for i, f := range m.fields {
		ti := textinput.New()
		ti.Prompt = promptLabels[f] + " "
		ti.CharLimit = 4096
		ti.Width = 60
		if i == 0 {
			ti.Focus()
		}
		m.inputs = append(m.inputs, ti)
	}
	m.done = len(m.fields) == 0
	return m
}

func (m PromptModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done || m.aborted {
		return m, tea.Quit
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.store(m.fields[m.step], m.inputs[m.step].Value())
			m.inputs[m.step].Blur()
			if m.step == len(m.fields)-1 {
				m.done = true
				return m, tea.Quit
			}
			m.step++
			return m, m.inputs[m.step].Focus()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.step], cmd = m.inputs[m.step].Update(msg)
	return m, cmd
}

func (m *PromptModel) store(f field, v string) {
	switch f {
	case fieldRootA:
		m.cfg.RootA = v
	case fieldRootB:
		m.cfg.RootB = v
	case fieldOutput:
		m.cfg.Output = v
	}
}

func (m PromptModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	for i := 0; i < m.step; i++ {
		b.WriteString(promptStyle.Render(promptLabels[m.fields[i]]))
		b.WriteString(" " + answerStyle.Render(m.inputs[i].Value()) + "\n")
	}
	b.WriteString(m.inputs[m.step].View())
	b.WriteString("\n\n" + answerStyle.Render("enter: confirm • esc: quit") + "\n")
	return b.String()
}

// Config returns the completed configuration, or ErrAborted.
func (m PromptModel) Config() (model.Config, error) {
	if m.aborted {
		return m.cfg, ErrAborted
	}
	if !m.done {
		return m.cfg, fmt.Errorf("prompt not finished: %w", ErrAborted)
	}
	return m.cfg, nil
}

// Prompt runs the prompts on the terminal and returns the completed config.
func Prompt(cfg model.Config) (model.Config, error) {
	p := tea.NewProgram(NewPrompt(cfg))
	final, err := p.Run()
	if err != nil {
		return cfg, err
	}
	return final.(PromptModel).Config()
}
