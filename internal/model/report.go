package model

import "time"

// FileStatus is the outcome of processing a single file.
type FileStatus string

const (
	// StatusAnnotated means at least one header, file block or method block was added.
	StatusAnnotated FileStatus = "annotated"
	// StatusUnchanged means the file already conformed.
	StatusUnchanged FileStatus = "unchanged"
	// StatusIgnored means the file carries an ignore directive.
	StatusIgnored FileStatus = "ignored"
	// StatusFailed means the transform or the write failed; nothing was written.
	StatusFailed FileStatus = "failed"
)

// FileResult holds the annotation result for a single source file.
type FileResult struct {
	Path            Path       `yaml:"path"`
	Output          Path       `yaml:"output,omitempty"`
	Status          FileStatus `yaml:"status"`
	HeaderPrepended bool       `yaml:"header_prepended"`
	FileBlockAdded  bool       `yaml:"file_block_added"`
	MethodBlocks    int        `yaml:"method_blocks"`
	Declarations    int        `yaml:"declarations"`
	Error           string     `yaml:"error,omitempty"`

	// Lines is the transformed content; it is not persisted.
	Lines []string `yaml:"-"`
}

// Changed reports whether the transform added anything to the file.
func (r FileResult) Changed() bool {
	return r.HeaderPrepended || r.FileBlockAdded || r.MethodBlocks > 0
}

// Report is the persisted summary of one batch run.
type Report struct {
	GeneratedAt time.Time    `yaml:"generated_at"`
	Header      Path         `yaml:"header"`
	Files       []FileResult `yaml:"files"`
}

// Failed counts the files whose processing failed.
func (r Report) Failed() int {
	n := 0

	for _, f := range r.Files {
		if f.Status == StatusFailed {
			n++
		}
	}

	return n
}
