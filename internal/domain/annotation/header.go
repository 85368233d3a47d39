package annotation

// EnsureHeader prepends the whole template unless lines already start with it
// verbatim. There is no partial merge.
func EnsureHeader(lines, template []string) ([]string, bool) {
	if StartsWith(lines, template) {
		return lines, false
	}

	out := make([]string, 0, len(template)+len(lines))
	out = append(out, template...)

	return append(out, lines...), true
}

// StartsWith reports whether lines begin with prefix line by line.
func StartsWith(lines, prefix []string) bool {
	if len(prefix) > len(lines) {
		return false
	}

	for i := range prefix {
		if lines[i] != prefix[i] {
			return false
		}
	}

	return true
}
