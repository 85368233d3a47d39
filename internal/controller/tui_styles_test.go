package controller

import (
	"strings"
	"testing"

	model "github.com/mouse-blink/annogen/internal/model"
)

func TestMarquee(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		step  int
		want  string
	}{
		{name: "no room", text: "hello", width: 0, want: ""},
		{name: "fits", text: "hi", width: 5, want: "hi"},
		{name: "paused", text: "abcdef", width: 3, step: 0, want: "ab…"},
		{name: "first scroll step", text: "abcdef", width: 3, step: marqueePause, want: "abc"},
		{name: "wraps through the gap", text: "abcdef", width: 3, step: marqueePause + 5, want: "f  "},
		{name: "back to start", text: "abcdef", width: 3, step: marqueePause + 9, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := marquee(tt.text, tt.width, tt.step); got != tt.want {
				t.Fatalf("marquee(%q, %d, %d) = %q, want %q", tt.text, tt.width, tt.step, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "hello", width: 0, want: ""},
		{text: "hello", width: 10, want: "hello"},
		{text: "hello", width: 1, want: "…"},
		{text: "hello", width: 2, want: "h…"},
		{text: "include/widget.h", width: 8, want: "include…"},
	}

	for _, tt := range tests {
		if got := truncate(tt.text, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestAccentKeepsOrder(t *testing.T) {
	got := accent(3, 14)
	if len(got) != 2 {
		t.Fatalf("accent returned %d values", len(got))
	}

	if !strings.Contains(got[0].(string), "3") || !strings.Contains(got[1].(string), "14") {
		t.Fatalf("accent values = %v", got)
	}
}

func TestStatusColor(t *testing.T) {
	if statusColor(model.StatusAnnotated) != colorAdded || statusColor(model.StatusFailed) != colorRemoved {
		t.Fatalf("annotated/failed colors swapped")
	}

	if statusColor("other") != colorText {
		t.Fatalf("unknown status should use the text color")
	}
}

func TestRenderDiffLine(t *testing.T) {
	for _, line := range []string{"+ added", "- removed", "@@ 3 unchanged lines @@", "  same"} {
		if got := renderDiffLine(line); !strings.Contains(got, strings.TrimSpace(line)) {
			t.Errorf("renderDiffLine(%q) = %q", line, got)
		}
	}

	if got := renderDiffLine("  same"); got != "  same" {
		t.Errorf("context lines must not be styled: %q", got)
	}
}
