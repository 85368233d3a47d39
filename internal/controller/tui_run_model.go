package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// resultDelegate renders one processed file per line.
type resultDelegate struct {
	step int
}

func (d resultDelegate) Height() int                             { return 1 }
func (d resultDelegate) Spacing() int                            { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d resultDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	width := l.Width() - 20

	statuses := lipgloss.NewStyle().Foreground(statusColor(file.status)).Bold(true).Width(10)
	counts, paths := countStyle, pathStyle
	shown := truncate(file.path, width)

	if index == l.Index() {
		statuses = selectedStyle.Width(10)
		counts = selectedStyle.Width(6).Align(lipgloss.Right)
		paths = selectedStyle
		shown = marquee(file.path, width, d.step)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		statuses.Render(string(file.status)),
		counts.Render(fmt.Sprintf("+%d", file.count)),
		paths.Render(shown),
	)
}

// runModel shows batch progress and, once the batch is done, the per-file results.
type runModel struct {
	width           int
	height          int
	progressBar     progress.Model
	threads         int
	total           int
	completed       int
	currentFile     string
	finished        bool
	results         []fileItem
	resultsList     list.Model
	delegate        resultDelegate
	counts          statusCounts
	lastSelected    int
	progressPercent float64
}

func newRunModel() runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return runModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m runModel) Init() tea.Cmd {
	return tickAfter(100 * time.Millisecond)
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = max(msg.Width-8, 10)
		m.resultsList.SetWidth(msg.Width)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case concurrencyMsg:
		m.threads = msg.threads
		m.total = msg.count
		m.completed = 0
		m.progressPercent = 0

	case fileDoneMsg:
		m = m.handleFileDone(msg)

	case summaryMsg:
		m = m.handleSummary(msg)
	}

	return m, cmd
}

func (m runModel) handleFileDone(msg fileDoneMsg) runModel {
	m.completed++
	m.currentFile = string(msg.result.Path)
	m.results = append(m.results, newFileItem(msg.result))

	if m.total > 0 {
		m.progressPercent = float64(m.completed) / float64(m.total)
	}

	return m
}

// handleSummary replaces the streamed results with the report, which is in
// input order, and switches to the results view.
func (m runModel) handleSummary(msg summaryMsg) runModel {
	m.results = make([]fileItem, 0, len(msg.report.Files))
	for _, r := range msg.report.Files {
		m.results = append(m.results, newFileItem(r))
	}

	items := make([]list.Item, 0, len(m.results))
	for _, r := range m.results {
		items = append(items, r)
	}

	m.resultsList.SetItems(items)
	m.counts = countStatuses(msg.report.Files)
	m.finished = true
	m.progressPercent = 1

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m runModel) handleKeyMsg(msg tea.KeyMsg) (runModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if !m.finished {
		return m, nil
	}

	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)

	if m.resultsList.Index() != m.lastSelected {
		m.lastSelected = m.resultsList.Index()
		m.delegate.step = 0
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, cmd
}

func (m runModel) handleTickMsg(_ tickMsg) (runModel, tea.Cmd) {
	if m.finished && m.resultsList.FilterState() != list.Filtering {
		m.delegate.step++
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tickAfter(150 * time.Millisecond)
}

func (m runModel) View() string {
	if m.finished {
		return m.viewResults()
	}

	if m.total == 0 {
		return "Initializing annotation run…\n"
	}

	return m.viewProgress()
}

func (m runModel) viewProgress() string {
	summary := summaryStyle.Render(fmt.Sprintf("Progress: %s / %s  •  Workers: %s",
		accent(m.completed, m.total, m.threads)...))

	bar := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progressPercent))
	current := pathStyle.Padding(1, 2).Render(truncate(m.currentFile, max(m.width-4, 10)))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("annogen · annotating"),
		summary,
		bar,
		current,
		footerView(m.width, "Press q to quit"),
	)
}

func (m runModel) viewResults() string {
	c := m.counts
	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s  •  Annotated: %s  •  Unchanged: %s  •  Ignored: %s  •  Failed: %s",
		accent(len(m.results), c.annotated, c.unchanged, c.ignored, c.failed)...,
	))

	width := max(m.width-4, 20)

	m.resultsList.SetHeight(max(m.height-11, 5))
	m.resultsList.SetWidth(width)

	box := tableBox(
		columnHeader(width, fmt.Sprintf("%-10s  %6s  %s", "Status", "Added", "File")),
		m.resultsList.View(),
	)

	detail := ""
	if item, ok := m.resultsList.SelectedItem().(fileItem); ok && item.detail != "" {
		detail = lipgloss.NewStyle().
			Foreground(statusColor(item.status)).
			Padding(0, 2).
			Render(truncate(item.detail, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("annogen · results"),
		summary,
		box,
		detail,
		footerView(m.width, navigationHelp),
	)
}
