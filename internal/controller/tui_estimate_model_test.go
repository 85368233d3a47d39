package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	model "github.com/mouse-blink/annogen/internal/model"
)

func TestEstimateModel_HandleEstimationMsgAndView(t *testing.T) {
	m := newEstimateModel()
	if got := m.View(); got != "Scanning source files…\n" {
		t.Fatalf("View() before estimation = %q", got)
	}

	msg := estimationMsg{
		total: 3,
		files: []fileItem{
			{path: "b.h", count: 1, status: model.StatusAnnotated},
			{path: "a.h", count: 2, status: model.StatusAnnotated},
		},
	}

	m = m.handleEstimationMsg(msg)
	if !m.received || m.blocks != 3 || m.count != 2 {
		t.Fatalf("handleEstimationMsg: received=%v blocks=%d count=%d", m.received, m.blocks, m.count)
	}

	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0", m.selected)
	}

	if first := m.files.Items()[0].(fileItem); first.path != "a.h" {
		t.Fatalf("items not sorted by path: %+v", m.files.Items())
	}

	if msg.files[0].path != "b.h" {
		t.Fatalf("handleEstimationMsg reordered the message slice")
	}

	m.width, m.height = 80, 25

	view := m.View()
	for _, want := range []string{"annotation estimate", "Blocks to add", "a.h", "b.h"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	table := m.renderTable()
	if !strings.Contains(table, "Blocks") || !strings.Contains(table, "File Path") {
		t.Fatalf("renderTable missing headers\n%s", table)
	}

	m.width, m.height = 20, 0
	_ = m.renderTable()
}

func TestEstimateModel_ErrorView(t *testing.T) {
	m := newEstimateModel()
	m = m.handleEstimationMsg(estimationMsg{err: errors.New("header template missing")})

	if view := m.View(); !strings.Contains(view, "error: header template missing") {
		t.Fatalf("View() missing error\n%s", view)
	}
}

func TestEstimateModel_TickBeforeEstimationStops(t *testing.T) {
	m := newEstimateModel()

	if _, cmd := m.Update(tickMsg(time.Now())); cmd != nil {
		t.Fatalf("tick before estimation should not reschedule")
	}
}

func TestEstimateModel_UpdateBranches(t *testing.T) {
	m := newEstimateModel()
	m = m.handleEstimationMsg(estimationMsg{files: []fileItem{{path: "a", count: 1}, {path: "b", count: 2}}})

	updatedModel, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected tick cmd")
	}

	updated := updatedModel.(estimateModel)
	if updated.delegate.step != 1 {
		t.Fatalf("step = %d, want 1", updated.delegate.step)
	}

	updatedModel, _ = updated.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated = updatedModel.(estimateModel)

	if updated.width != 100 || updated.height != 40 {
		t.Fatalf("window size not applied")
	}

	if _, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Fatalf("expected quit cmd")
	}

	updatedModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyDown})
	moved := updatedModel.(estimateModel)

	if moved.selected != 1 || moved.delegate.step != 0 {
		t.Fatalf("selection change: selected=%d step=%d", moved.selected, moved.delegate.step)
	}
}

func TestEstimateDelegate_Render(t *testing.T) {
	delegate := estimateDelegate{}
	items := []list.Item{
		fileItem{path: "path/to/file.h", count: 2},
		fileItem{path: "path/to/broken.h", status: model.StatusFailed},
		fileItem{path: "path/to/done.h"},
	}
	l := list.New(items, delegate, 30, 5)

	var buf bytes.Buffer

	delegate.Render(&buf, l, 0, items[0])
	if !strings.Contains(buf.String(), "path") || !strings.Contains(buf.String(), "2") {
		t.Fatalf("render output = %q", buf.String())
	}

	buf.Reset()
	delegate.Render(&buf, l, 1, items[1])

	if !strings.Contains(buf.String(), "err") {
		t.Fatalf("render output missing failure marker: %q", buf.String())
	}

	buf.Reset()
	delegate.Render(&buf, l, 2, items[2])

	if !strings.Contains(buf.String(), "0") {
		t.Fatalf("render output missing zero count: %q", buf.String())
	}

	buf.Reset()
	delegate.Render(&buf, l, 0, struct{ list.Item }{})

	if buf.Len() != 0 {
		t.Fatalf("render of foreign item wrote output")
	}

	if delegate.Height() != 1 || delegate.Spacing() != 0 {
		t.Fatalf("unexpected delegate dimensions")
	}

	if cmd := delegate.Update(nil, &l); cmd != nil {
		t.Fatalf("Update() returned cmd")
	}
}
