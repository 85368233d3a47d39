package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/annogen/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func waitOrFail(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}, tea.WithInput(nil)); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	tui.send(concurrencyMsg{threads: 1, count: 2})

	waitOrFail(t, "Wait()", tui.Wait)
	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_Start_Twice(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithDiffMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if err := tui.Start(WithDiffMode()); err == nil {
		t.Fatalf("second Start expected error")
	}
}

func TestTUI_DiffMode_StartsNoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithDiffMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if tui.program != nil {
		t.Fatalf("diff mode started a program")
	}

	if err := tui.DisplayDiff("test_a.h", "@@ 4 unchanged lines @@\n+ //!\n- old\n  same\n"); err != nil {
		t.Fatalf("DisplayDiff error = %v", err)
	}

	for _, want := range []string{"--- test_a.h", "+ //!", "- old", "  same", "4 unchanged lines"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\n%s", want, buf.String())
		}
	}

	waitOrFail(t, "Wait()", tui.Wait)
	tui.Close()
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close()

	tui2 := NewTUI(&buf)
	tui2.Wait()
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayEstimation(nil, nil); err != nil {
		t.Fatalf("DisplayEstimation unexpected error = %v", err)
	}

	if err := tui.DisplayEstimation(nil, errSentinel); !errors.Is(err, errSentinel) {
		t.Fatalf("DisplayEstimation error = %v, want sentinel", err)
	}

	results := []m.FileResult{{Path: "a.h", Status: m.StatusAnnotated, MethodBlocks: 2}}
	if err := tui.DisplayEstimation(results, nil); err != nil {
		t.Fatalf("DisplayEstimation with results error = %v", err)
	}

	tui.DisplayConcurrencyInfo(2, 3)
	tui.DisplayFileResult(results[0])

	if err := tui.DisplaySummary(m.Report{Files: results}); err != nil {
		t.Fatalf("DisplaySummary error = %v", err)
	}
}

var errSentinel = errors.New("boom")
