package annotation

import "strings"

// Declaration is one logical declaration built from one or more physical lines.
type Declaration struct {
	Text  string
	Start int // index of the first physical line
	End   int // index of the line holding the terminator
}

// AssembleDeclaration joins the masked text of lines[start:] until the
// accumulated text contains `;`.
func (v Vocabulary) AssembleDeclaration(lines []string, start int) (Declaration, error) {
	if start < 0 || start >= len(lines) {
		return Declaration{}, &MalformedDeclarationError{Line: start + 1, Reason: "declaration start out of range"}
	}

	var parts []string

	for idx := start; idx < len(lines); idx++ {
		part := v.MaskComment(strings.TrimSpace(lines[idx]))
		if part != "" {
			parts = append(parts, part)
		}

		if strings.Contains(part, ";") {
			return Declaration{Text: strings.Join(parts, " "), Start: start, End: idx}, nil
		}
	}

	return Declaration{}, &MalformedDeclarationError{
		Line:   start + 1,
		Reason: "no `;` terminator before end of file",
	}
}
