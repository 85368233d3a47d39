package domain

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp classifies one line of a line diff.
type DiffOp int

// Available DiffOp values.
const (
	DiffEqual DiffOp = iota
	DiffInsert
	DiffDelete
)

// DiffLine is one line of a line diff.
type DiffLine struct {
	Op   DiffOp
	Text string
}

// LineDiff computes a line-granular diff between before and after.
func LineDiff(before, after []string) []DiffLine {
	dmp := diffmatchpatch.New()

	a, b, lineArray := dmp.DiffLinesToChars(joinForDiff(before), joinForDiff(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var out []DiffLine

	for _, d := range diffs {
		op := DiffEqual

		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		case diffmatchpatch.DiffEqual:
		}

		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out = append(out, DiffLine{Op: op, Text: line})
		}
	}

	return out
}

// FormatDiff renders a diff with `+`/`-` prefixes, keeping at most context
// unchanged lines around each change and collapsing the rest.
func FormatDiff(lines []DiffLine, context int) string {
	keep := make([]bool, len(lines))

	for i, line := range lines {
		if line.Op == DiffEqual {
			continue
		}

		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}

	var sb strings.Builder

	skipped := 0

	for i, line := range lines {
		if !keep[i] {
			skipped++

			continue
		}

		if skipped > 0 {
			fmt.Fprintf(&sb, "@@ %d unchanged lines @@\n", skipped)

			skipped = 0
		}

		switch line.Op {
		case DiffInsert:
			sb.WriteString("+ ")
		case DiffDelete:
			sb.WriteString("- ")
		case DiffEqual:
			sb.WriteString("  ")
		}

		sb.WriteString(line.Text)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func joinForDiff(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}
