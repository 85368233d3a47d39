package annotation

import "strings"

// LineKind is the classification of one physical line.
type LineKind int

// Line kinds, checked in declaration order.
const (
	LineCode LineKind = iota
	LineBlank
	LineBlockComment
	LineAnnotation
	LineCandidate
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineBlockComment:
		return "block-comment"
	case LineAnnotation:
		return "annotation"
	case LineCandidate:
		return "candidate"
	default:
		return "code"
	}
}

// Classify decides what a physical line is. Candidates are lines whose code
// part, after MaskComment, contains an opening parenthesis.
func (v Vocabulary) Classify(line string) LineKind {
	s := strings.TrimSpace(line)

	switch {
	case s == "":
		return LineBlank
	case strings.HasPrefix(s, "/*") || strings.HasPrefix(s, "*"):
		return LineBlockComment
	case v.IsMarker(s):
		return LineAnnotation
	case strings.Contains(v.MaskComment(s), "("):
		return LineCandidate
	default:
		return LineCode
	}
}

// MaskComment drops a trailing `//` comment from a trimmed line. Lines that
// carry the annotation marker anywhere are returned unchanged.
func (v Vocabulary) MaskComment(trimmed string) string {
	if strings.Contains(trimmed, v.Marker) {
		return trimmed
	}

	if idx := strings.Index(trimmed, "//"); idx != -1 {
		return strings.TrimSpace(trimmed[:idx])
	}

	return trimmed
}

// Indentation returns the leading whitespace of a line.
func Indentation(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
