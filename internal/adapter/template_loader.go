package adapter

import (
	"os"

	"github.com/mouse-blink/annogen/internal/domain/annotation"
	m "github.com/mouse-blink/annogen/internal/model"
)

// TemplateLoader loads the reference header template.
type TemplateLoader interface {
	Load(path m.Path) (m.HeaderTemplate, error)
}

type templateLoader struct{}

// NewTemplateLoader constructs a TemplateLoader reading from the local disk.
func NewTemplateLoader() TemplateLoader {
	return &templateLoader{}
}

// Load reads the template at path. An empty path yields an empty template,
// which disables the header check. Any read failure is reported as a
// *annotation.HeaderTemplateMissingError.
func (l *templateLoader) Load(path m.Path) (m.HeaderTemplate, error) {
	if path == "" {
		return m.HeaderTemplate{}, nil
	}

	// #nosec G304 - the template path is user configuration
	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.HeaderTemplate{}, &annotation.HeaderTemplateMissingError{Path: string(path), Err: err}
	}

	return m.HeaderTemplate{Origin: path, Lines: SplitLines(content)}, nil
}
