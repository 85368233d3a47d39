// Package annotation recognizes and synthesizes Doxygen-style `//!` annotation
// blocks in C/C++ sources using a line-based read of declarations.
package annotation

import "strings"

// Vocabulary is the single definition of the marker, the tag set and the
// canonical status type special case.
type Vocabulary struct {
	Marker         string
	FileTag        string
	BriefTag       string
	ParamTag       string
	ParamDirection string
	ReturnTag      string

	// StatusType is the return type that receives StatusDescription as its
	// return note.
	StatusType        string
	StatusDescription string

	// Qualifiers are leading declaration specifiers removed before the
	// return type is read. `virtual` is handled separately.
	Qualifiers []string
}

const (
	virtualKeyword = "virtual"
	ignoreKeyword  = "annogen:ignore"
	tagColumn      = 8
)

// DefaultVocabulary returns the fixed tag set with the MOS_STATUS convention.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Marker:            "//!",
		FileTag:           `\file`,
		BriefTag:          `\brief`,
		ParamTag:          `\param`,
		ParamDirection:    "[in]",
		ReturnTag:         `\return`,
		StatusType:        "MOS_STATUS",
		StatusDescription: "MOS_STATUS_SUCCESS if success, else fail reason",
		Qualifiers:        []string{"static", "inline", "explicit"},
	}
}

// IsMarker reports whether the trimmed line starts with the annotation marker.
func (v Vocabulary) IsMarker(trimmed string) bool {
	return strings.HasPrefix(trimmed, v.Marker)
}

// HasTag reports whether a marker line carries the given tag.
func (v Vocabulary) HasTag(trimmed, tag string) bool {
	if !v.IsMarker(trimmed) {
		return false
	}

	body := strings.TrimSpace(strings.TrimPrefix(trimmed, v.Marker))

	return strings.HasPrefix(body, tag)
}

// blank renders an empty marker line.
func (v Vocabulary) blank(indent string) string {
	return indent + v.Marker
}

// tagLine renders `marker tag text` with the text aligned on the tag column.
func (v Vocabulary) tagLine(indent, tag, text string) string {
	if text == "" {
		return indent + v.Marker + " " + tag
	}

	pad := tagColumn - len(tag)
	if pad < 1 {
		pad = 1
	}

	return indent + v.Marker + " " + tag + strings.Repeat(" ", pad) + text
}

// noteLine renders a continuation line aligned with tag text.
func (v Vocabulary) noteLine(indent, text string) string {
	return indent + v.Marker + strings.Repeat(" ", tagColumn+1) + text
}
