package controller

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	model "github.com/mouse-blink/annogen/internal/model"
)

// estimateChrome is the number of rows taken by everything but the list.
const estimateChrome = 9

// estimateDelegate renders one file per line: block count, then path.
type estimateDelegate struct {
	step int
}

func (d estimateDelegate) Height() int                             { return 1 }
func (d estimateDelegate) Spacing() int                            { return 0 }
func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d estimateDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	width := l.Width() - 8

	count := fmt.Sprintf("%d", file.count)
	if file.status == model.StatusFailed {
		count = "err"
	}

	counts, paths := countStyle.Bold(true), pathStyle
	shown := truncate(file.path, width)

	switch {
	case index == l.Index():
		counts = selectedStyle.Width(6).Align(lipgloss.Right)
		paths = selectedStyle
		shown = marquee(file.path, width, d.step)
	case file.count == 0:
		paths = paths.Faint(true)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", counts.Render(count), paths.Render(shown))
}

// estimateModel lists, per file, the blocks a run would add.
type estimateModel struct {
	width, height int

	files    list.Model
	delegate estimateDelegate
	selected int

	blocks   int
	count    int
	err      error
	received bool
}

func newEstimateModel() estimateModel {
	files := list.New(nil, estimateDelegate{}, 80, 20)
	files.SetShowTitle(false)
	files.SetShowStatusBar(false)
	files.SetShowPagination(false)
	files.SetShowHelp(false)
	files.FilterInput.Placeholder = "Filter by path…"

	return estimateModel{files: files, selected: -1}
}

func (m estimateModel) Init() tea.Cmd {
	return tickAfter(time.Second / 2)
}

func (m estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.files.SetWidth(msg.Width)

	case tickMsg:
		if !m.received || m.files.FilterState() == list.Filtering {
			return m, nil
		}

		m.delegate.step++
		m.files.SetDelegate(m.delegate)

		return m, tickAfter(150 * time.Millisecond)

	case tea.KeyMsg:
		if k := msg.String(); k == "q" || k == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd

		m.files, cmd = m.files.Update(msg)
		m = m.syncSelection()

		return m, cmd

	case estimationMsg:
		m = m.handleEstimationMsg(msg)
	}

	return m, nil
}

// syncSelection restarts the marquee when the cursor moved.
func (m estimateModel) syncSelection() estimateModel {
	if idx := m.files.Index(); idx != m.selected {
		m.selected = idx
		m.delegate.step = 0
		m.files.SetDelegate(m.delegate)
	}

	return m
}

func (m estimateModel) handleEstimationMsg(msg estimationMsg) estimateModel {
	m.err = msg.err
	m.blocks = msg.total
	m.count = len(msg.files)
	m.received = true

	sorted := slices.SortedStableFunc(slices.Values(msg.files), func(a, b fileItem) int {
		return strings.Compare(a.path, b.path)
	})

	items := make([]list.Item, len(sorted))
	for i, f := range sorted {
		items[i] = f
	}

	m.files.SetItems(items)

	if len(items) > 0 && m.selected == -1 {
		m.selected = 0
	}

	return m
}

func (m estimateModel) View() string {
	if !m.received {
		return "Scanning source files…\n"
	}

	title := titleStyle.Render("annogen · annotation estimate")

	if m.err != nil {
		problem := lipgloss.NewStyle().Foreground(colorRemoved).Padding(0, 0, 1, 2)

		return lipgloss.JoinVertical(lipgloss.Left, title, problem.Render("error: "+m.err.Error()))
	}

	summary := summaryStyle.Render(fmt.Sprintf("Blocks to add: %s   Files: %s", accent(m.blocks, m.count)...))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		footerView(m.width, navigationHelp),
	)
}

func (m estimateModel) renderTable() string {
	width := m.width - 6

	m.files.SetHeight(max(m.height-estimateChrome, 5))
	m.files.SetWidth(width)

	return tableBox(
		columnHeader(width, fmt.Sprintf("%6s  %s", "Blocks", "File Path")),
		m.files.View(),
	)
}
