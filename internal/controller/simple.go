package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/annogen/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayEstimation prints, per file, the blocks a run would add.
func (s *SimpleUI) DisplayEstimation(results []m.FileResult, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Header", "File Block", "Methods"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var headers, fileBlocks, methods int

	for _, r := range results {
		if r.Status == m.StatusFailed {
			table.Append([]string{string(r.Path), "-", "-", "error"})
			continue
		}

		table.Append([]string{string(r.Path), yesNo(r.HeaderPrepended), yesNo(r.FileBlockAdded), fmt.Sprintf("%d", r.MethodBlocks)})

		if r.HeaderPrepended {
			headers++
		}

		if r.FileBlockAdded {
			fileBlocks++
		}

		methods += r.MethodBlocks
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", headers),
		fmt.Sprintf("%d", fileBlocks),
		fmt.Sprintf("%d", methods),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, count int) {
	s.printf("Annotating %d file(s) with %d worker(s)\n", count, threads)
}

// DisplayFileResult prints one line per processed file.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	switch result.Status {
	case m.StatusFailed:
		s.printf("[%s] %s: %s\n", result.Status, result.Path, result.Error)
	case m.StatusAnnotated:
		s.printf("[%s] %s -> %s (+%d)\n", result.Status, result.Path, result.Output, blocksAdded(result))
	case m.StatusUnchanged, m.StatusIgnored:
		s.printf("[%s] %s\n", result.Status, result.Path)
	}
}

// DisplaySummary prints the batch report as a table.
func (s *SimpleUI) DisplaySummary(report m.Report) error {
	if len(report.Files) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Status", "Added", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, r := range report.Files {
		detail := string(r.Output)
		if r.Status == m.StatusFailed {
			detail = r.Error
		}

		table.Append([]string{string(r.Path), string(r.Status), fmt.Sprintf("%d", blocksAdded(r)), detail})
	}

	counts := countStatuses(report.Files)
	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Files)),
		fmt.Sprintf("%d failed", counts.failed),
		fmt.Sprintf("%d annotated", counts.annotated),
		fmt.Sprintf("%d unchanged, %d ignored", counts.unchanged, counts.ignored),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayDiff prints the diff of one file under a path banner.
func (s *SimpleUI) DisplayDiff(path m.Path, diff string) error {
	s.printf("--- %s\n%s", path, diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
