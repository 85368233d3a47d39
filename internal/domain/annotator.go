// Package domain contains the batch annotation workflow built around the
// line-based annotation engine.
package domain

import (
	"fmt"
	"path/filepath"

	"github.com/mouse-blink/annogen/internal/domain/annotation"
	m "github.com/mouse-blink/annogen/internal/model"
)

// Annotator defines the interface for the pure per-file transform.
type Annotator interface {
	Annotate(source m.SourceFile, opts annotation.Options) (annotation.Result, error)
}

// annotator handles the pure annotation logic.
type annotator struct{}

// NewAnnotator creates a new Annotator instance.
func NewAnnotator() Annotator {
	return &annotator{}
}

func (a *annotator) Annotate(source m.SourceFile, opts annotation.Options) (annotation.Result, error) {
	if source.Path == "" {
		return annotation.Result{}, fmt.Errorf("missing source path")
	}

	if opts.Vocabulary.Marker == "" {
		opts.Vocabulary = annotation.DefaultVocabulary()
	}

	if opts.ImplExtensions == nil {
		opts.ImplExtensions = annotation.DefaultImplExtensions()
	}

	return annotation.Annotate(source.Lines, filepath.Base(string(source.Path)), opts)
}
