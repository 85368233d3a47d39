package annotation

import "strings"

// isIgnoreDirective recognizes `// annogen:ignore` and `/* annogen:ignore */`.
func isIgnoreDirective(line string) bool {
	s := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(s, "//"):
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	case strings.HasPrefix(s, "/*"):
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	default:
		return false
	}

	return s == ignoreKeyword
}

// fileIgnored looks for a directive in the leading comment region, before the
// first line of code.
func (v Vocabulary) fileIgnored(lines []string) bool {
	for _, line := range lines {
		if isIgnoreDirective(line) {
			return true
		}

		s := strings.TrimSpace(line)

		switch v.Classify(line) {
		case LineBlank, LineBlockComment, LineAnnotation:
			continue
		}

		if !strings.HasPrefix(s, "//") {
			return false
		}
	}

	return false
}

// declarationIgnored reports whether the line right above idx is a directive.
func declarationIgnored(lines []string, idx int) bool {
	return idx > 0 && isIgnoreDirective(lines[idx-1])
}
