// Package model defines the data structures shared by the annotation engine,
// the batch workflow and the UI.
package model

// Path represents a file system path.
type Path string

// SourceFile is one file's content split into lines, without line terminators.
type SourceFile struct {
	Path  Path
	Lines []string
}

// HeaderTemplate holds the reference banner every processed file must start
// with. It is loaded once per batch and never mutated afterwards.
type HeaderTemplate struct {
	Origin Path
	Lines  []string
}
