package domain

import (
	"fmt"
	"path/filepath"

	"github.com/mouse-blink/annogen/internal/adapter"
	"github.com/mouse-blink/annogen/internal/domain/annotation"
	m "github.com/mouse-blink/annogen/internal/model"
)

// Plan describes how one file is processed and where its output goes.
type Plan struct {
	// Header is where the header template was loaded from; empty when the
	// header check is disabled.
	Header       m.Path
	Options      annotation.Options
	OutputPrefix string
	InPlace      bool
	DryRun       bool
}

// OutputPath returns the path a processed file is written to.
func (p Plan) OutputPath(source m.Path) m.Path {
	if p.InPlace || p.OutputPrefix == "" {
		return source
	}

	dir, base := filepath.Split(string(source))

	return m.Path(filepath.Join(dir, p.OutputPrefix+base))
}

// Orchestrator coordinates reading a source file, running the annotator over
// it and writing the augmented file back.
type Orchestrator interface {
	Process(path m.Path, plan Plan) (m.FileResult, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	annotator Annotator
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter and annotator.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, annotator Annotator) Orchestrator {
	return &orchestrator{
		fsAdapter: fsAdapter,
		annotator: annotator,
	}
}

// Process never writes a file whose transform failed. The returned result
// always carries the path and status, also on error.
func (o *orchestrator) Process(path m.Path, plan Plan) (m.FileResult, error) {
	result := m.FileResult{Path: path, Status: m.StatusFailed}

	lines, err := o.fsAdapter.ReadLines(path)
	if err != nil {
		return o.fail(result, fmt.Errorf("failed to read %s: %w", path, err))
	}

	res, err := o.annotator.Annotate(m.SourceFile{Path: path, Lines: lines}, plan.Options)
	if err != nil {
		return o.fail(result, err)
	}

	result.HeaderPrepended = res.HeaderPrepended
	result.FileBlockAdded = res.FileBlockAdded
	result.MethodBlocks = res.MethodBlocks
	result.Declarations = len(res.Signatures)
	result.Lines = res.Lines

	switch {
	case res.Ignored:
		result.Status = m.StatusIgnored

		return result, nil
	case res.Changed():
		result.Status = m.StatusAnnotated
	default:
		result.Status = m.StatusUnchanged
	}

	if plan.DryRun || (plan.InPlace && !res.Changed()) {
		return result, nil
	}

	output := plan.OutputPath(path)
	if err := o.fsAdapter.WriteLines(output, res.Lines); err != nil {
		result.Lines = nil

		return o.fail(result, fmt.Errorf("failed to write %s: %w", output, err))
	}

	result.Output = output

	return result, nil
}

func (o *orchestrator) fail(result m.FileResult, err error) (m.FileResult, error) {
	result.Status = m.StatusFailed
	result.Error = err.Error()

	return result, err
}
