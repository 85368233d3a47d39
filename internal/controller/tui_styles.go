package controller

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	model "github.com/mouse-blink/annogen/internal/model"
)

const (
	colorTitle   = lipgloss.Color("205")
	colorText    = lipgloss.Color("252")
	colorAccent  = lipgloss.Color("6")
	colorPath    = lipgloss.Color("14")
	colorCount   = lipgloss.Color("11")
	colorMuted   = lipgloss.Color("8")
	colorAdded   = lipgloss.Color("10")
	colorRemoved = lipgloss.Color("9")
	colorInverse = lipgloss.Color("0")

	ellipsis = "…"
	// marqueePause is the number of ticks a selected path stays still
	// before it starts to scroll.
	marqueePause = 5
	marqueeGap   = "   "

	navigationHelp = "↑/k up • ↓/j down • g/G top/bottom • / filter • q quit"
)

type tickMsg time.Time

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorTitle).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle  = lipgloss.NewStyle().Foreground(colorText).Padding(0, 0, 1, 2)
	accentStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	selectedStyle = lipgloss.NewStyle().Foreground(colorInverse).Background(colorAccent).Bold(true)
	countStyle    = lipgloss.NewStyle().Foreground(colorCount).Width(6).Align(lipgloss.Right)
	pathStyle     = lipgloss.NewStyle().Foreground(colorPath)
)

func tickAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// accent renders each value with the accent color for use in summary lines.
func accent(values ...int) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = accentStyle.Render(fmt.Sprintf("%d", v))
	}

	return out
}

func footerView(width int, text string) string {
	return lipgloss.NewStyle().Foreground(colorMuted).Align(lipgloss.Center).Width(width).Render(text)
}

// columnHeader renders a muted header row underlined across width.
func columnHeader(width int, text string) string {
	return lipgloss.NewStyle().
		Foreground(colorMuted).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorMuted).
		Width(width).
		Render(text)
}

func tableBox(content ...string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}

// truncate shortens text to width cells, ending with an ellipsis when cut.
func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	return ansi.Truncate(text, width, ellipsis)
}

// marquee scrolls text that does not fit width, one rune per step, after an
// initial pause. Text that fits is returned as is.
func marquee(text string, width, step int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	if step < marqueePause {
		return truncate(text, width)
	}

	loop := []rune(text + marqueeGap)
	start := (step - marqueePause) % len(loop)

	var sb strings.Builder
	for i := range width {
		sb.WriteRune(loop[(start+i)%len(loop)])
	}

	return sb.String()
}

func statusColor(status model.FileStatus) lipgloss.Color {
	switch status {
	case model.StatusAnnotated:
		return colorAdded
	case model.StatusFailed:
		return colorRemoved
	case model.StatusIgnored:
		return colorMuted
	case model.StatusUnchanged:
		return colorText
	}

	return colorText
}

func renderDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+"):
		return lipgloss.NewStyle().Foreground(colorAdded).Render(line)
	case strings.HasPrefix(line, "-"):
		return lipgloss.NewStyle().Foreground(colorRemoved).Render(line)
	case strings.HasPrefix(line, "@@"):
		return lipgloss.NewStyle().Foreground(colorAccent).Faint(true).Render(line)
	default:
		return line
	}
}
