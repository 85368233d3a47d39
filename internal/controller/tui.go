package controller

import (
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/annogen/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	started bool
	mode    StartMode
	once    sync.Once
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the selected mode. Diff mode
// prints styled output directly and starts no program.
func (t *TUI) Start(options ...StartOption) error {
	if t.started {
		return fmt.Errorf("ui already started")
	}

	cfg := &StartConfig{mode: ModeRun}
	for _, opt := range options {
		opt(cfg)
	}

	t.mode = cfg.mode
	t.started = true

	var model tea.Model

	switch cfg.mode {
	case ModeEstimate:
		model = newEstimateModel()
	case ModeRun, ModeView:
		model = newRunModel()
	case ModeDiff:
		return nil
	}

	return t.startWithModel(model, tea.WithAltScreen())
}

func (t *TUI) startWithModel(model tea.Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithOutput(t.output)}, opts...)

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops a running program and waits for the terminal to be restored.
func (t *TUI) Close() {
	t.once.Do(func() {
		if t.program == nil {
			return
		}

		t.program.Quit()
		<-t.done
	})
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	if t.done == nil {
		return
	}

	<-t.done
}

// DisplayEstimation sends the per-file estimate to the program.
func (t *TUI) DisplayEstimation(results []m.FileResult, err error) error {
	msg := estimationMsg{err: err}

	for _, r := range results {
		item := newFileItem(r)
		msg.total += item.count
		msg.files = append(msg.files, item)
	}

	t.send(msg)

	return err
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, count int) {
	t.send(concurrencyMsg{threads: threads, count: count})
}

// DisplayFileResult advances the progress view.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.send(fileDoneMsg{result: result})
}

// DisplaySummary switches the program to the results view.
func (t *TUI) DisplaySummary(report m.Report) error {
	t.send(summaryMsg{report: report})

	return nil
}

// DisplayDiff prints a colored diff of one file.
func (t *TUI) DisplayDiff(path m.Path, diff string) error {
	header := lipgloss.NewStyle().Foreground(colorTitle).Bold(true).Render("--- " + string(path))

	if _, err := fmt.Fprintln(t.output, header); err != nil {
		return err
	}

	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		if _, err := fmt.Fprintln(t.output, renderDiffLine(line)); err != nil {
			return err
		}
	}

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}
