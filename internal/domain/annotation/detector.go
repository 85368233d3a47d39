package annotation

import "strings"

// FileAnnotation is what the forward scan saw in a file-level block.
type FileAnnotation struct {
	File  bool
	Brief bool
	End   int // index of the first line after the block
}

// Conforms reports whether both the file and brief tags are present.
func (a FileAnnotation) Conforms() bool {
	return a.File && a.Brief
}

// DetectFileAnnotation scans forward from start while lines are marker lines.
func (v Vocabulary) DetectFileAnnotation(lines []string, start int) FileAnnotation {
	a := FileAnnotation{End: start}

	for ; a.End < len(lines); a.End++ {
		s := strings.TrimSpace(lines[a.End])
		if !v.IsMarker(s) {
			break
		}

		a.File = a.File || v.HasTag(s, v.FileTag)
		a.Brief = a.Brief || v.HasTag(s, v.BriefTag)
	}

	return a
}

// HasMethodAnnotation scans backward from the line above declIdx across blank
// and marker lines. Any brief, param or return tag counts as an existing
// annotation. The scan stops at index 0.
func (v Vocabulary) HasMethodAnnotation(lines []string, declIdx int) (bool, error) {
	if declIdx < 0 || declIdx >= len(lines) {
		return false, &AnnotationScanUnderflowError{Line: declIdx + 1}
	}

	for idx := declIdx - 1; idx >= 0; idx-- {
		s := strings.TrimSpace(lines[idx])
		if s != "" && !v.IsMarker(s) {
			break
		}

		if v.HasTag(s, v.BriefTag) || v.HasTag(s, v.ParamTag) || v.HasTag(s, v.ReturnTag) {
			return true, nil
		}
	}

	return false, nil
}
