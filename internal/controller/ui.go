// Package controller provides output adapters for displaying annotation results.
package controller

import (
	m "github.com/mouse-blink/annogen/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeRun
	ModeDiff
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithRunMode sets the UI to batch run mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithDiffMode sets the UI to diff preview mode.
func WithDiffMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeDiff
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI defines the interface for displaying batch progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayEstimation(results []m.FileResult, err error) error
	DisplayConcurrencyInfo(threads int, count int)
	DisplayFileResult(result m.FileResult)
	DisplaySummary(report m.Report) error
	DisplayDiff(path m.Path, diff string) error
}

// blocksAdded counts the header, file block and method blocks a result adds.
func blocksAdded(r m.FileResult) int {
	n := r.MethodBlocks

	if r.HeaderPrepended {
		n++
	}

	if r.FileBlockAdded {
		n++
	}

	return n
}

type statusCounts struct {
	annotated int
	unchanged int
	ignored   int
	failed    int
}

func countStatuses(files []m.FileResult) statusCounts {
	var c statusCounts

	for _, f := range files {
		switch f.Status {
		case m.StatusAnnotated:
			c.annotated++
		case m.StatusUnchanged:
			c.unchanged++
		case m.StatusIgnored:
			c.ignored++
		case m.StatusFailed:
			c.failed++
		}
	}

	return c
}
