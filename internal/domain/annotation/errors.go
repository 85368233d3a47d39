package annotation

import "fmt"

// MalformedDeclarationError reports a declaration the line parser cannot
// accept: an unterminated statement, a missing closing parenthesis or a
// broken parameter list.
type MalformedDeclarationError struct {
	File   string
	Line   int // 1-based
	Reason string
}

func (e *MalformedDeclarationError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("malformed declaration at line %d: %s", e.Line, e.Reason)
	}

	return fmt.Sprintf("%s:%d: malformed declaration: %s", e.File, e.Line, e.Reason)
}

// AnnotationScanUnderflowError reports a backward annotation scan requested
// for an index outside the file.
type AnnotationScanUnderflowError struct {
	File string
	Line int // 1-based
}

func (e *AnnotationScanUnderflowError) Error() string {
	return fmt.Sprintf("%s:%d: annotation scan out of file bounds", e.File, e.Line)
}

// HeaderTemplateMissingError reports that the reference header template could
// not be loaded. It is fatal for a whole batch.
type HeaderTemplateMissingError struct {
	Path string
	Err  error
}

func (e *HeaderTemplateMissingError) Error() string {
	return fmt.Sprintf("header template %q unavailable: %v", e.Path, e.Err)
}

func (e *HeaderTemplateMissingError) Unwrap() error {
	return e.Err
}
