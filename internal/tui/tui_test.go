package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"srcdiff/internal/model"
)

func typeText(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m tea.Model, k tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestPromptAsksForEverything(t *testing.T) {
	var m tea.Model = NewPrompt(model.Config{Lang: "en"})
	if !strings.Contains(m.View(), "Enter file 1:") {
		t.Fatalf("first prompt missing: %q", m.View())
	}

	m = typeText(t, m, "src/v1")
	m, _ = press(m, tea.KeyEnter)
	if !strings.Contains(m.View(), "Enter file 2:") {
		t.Fatalf("second prompt missing: %q", m.View())
	}
	m = typeText(t, m, "src/v2")
	m, _ = press(m, tea.KeyEnter)
	m = typeText(t, m, "out")
	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected quit command after last prompt")
	}

	got, err := m.(PromptModel).Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	want := model.Config{RootA: "src/v1", RootB: "src/v2", Output: "out", Lang: "en"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptSkipsGivenValues(t *testing.T) {
	var m tea.Model = NewPrompt(model.Config{RootA: "a", RootB: "b"})
	if !strings.Contains(m.View(), "Enter output file name:") {
		t.Fatalf("expected only the output prompt: %q", m.View())
	}
	m = typeText(t, m, "report")
	m, _ = press(m, tea.KeyEnter)
	got, err := m.(PromptModel).Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if got.Output != "report" || got.RootA != "a" || got.RootB != "b" {
		t.Errorf("unexpected config %+v", got)
	}
}

func TestPromptNothingToAsk(t *testing.T) {
	m := NewPrompt(model.Config{RootA: "a", RootB: "b", Output: "o"})
	if _, err := m.Config(); err != nil {
		t.Fatalf("config: %v", err)
	}
}

func TestPromptAbort(t *testing.T) {
	var m tea.Model = NewPrompt(model.Config{})
	m = typeText(t, m, "half")
	m, _ = press(m, tea.KeyEsc)
	if _, err := m.(PromptModel).Config(); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func sampleReport() model.Report {
	return model.Report{
		LabelA:  "v1",
		LabelB:  "v2",
		Missing: []string{"gone.h"},
		Files: []model.FileComparison{
			{RelPath: "inc/conf.h", Name: "conf.h", Defines: []model.DefineDiff{{Name: "MAX", A: "10", B: "20"}}},
			{RelPath: "src/util.c", Name: "util.c", Lines: []model.LineDiff{{Line: 7, A: "int x = 1;", B: "int x = 2;"}}},
		},
	}
}

func TestBrowserNavigation(t *testing.T) {
	m := NewBrowser(sampleReport(), "out.html")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if !strings.Contains(m.DetailsViewport.View(), "MAX") {
		t.Errorf("details of first file missing: %q", m.DetailsViewport.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.SelectedIdx != 1 {
		t.Fatalf("SelectedIdx = %d, want 1", m.SelectedIdx)
	}
	if !strings.Contains(m.DetailsViewport.View(), "int x = 2;") {
		t.Errorf("details of second file missing: %q", m.DetailsViewport.View())
	}

	// Already at the last file.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.SelectedIdx != 1 {
		t.Fatalf("SelectedIdx = %d, want 1", m.SelectedIdx)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if m.SelectedIdx != 0 {
		t.Fatalf("SelectedIdx = %d, want 0", m.SelectedIdx)
	}

	view := m.View()
	for _, s := range []string{"v1 vs v2", "inc/conf.h", "src/util.c", "1 missing"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("expected quit command")
	}
}

func TestBrowserEmptyReport(t *testing.T) {
	m := NewBrowser(model.Report{LabelA: "a", LabelB: "b"}, "out.html")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !strings.Contains(m.View(), "No definition or source differences") {
		t.Errorf("unexpected view %q", m.View())
	}
}
