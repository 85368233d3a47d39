package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/annogen/internal/adapter"
	"github.com/mouse-blink/annogen/internal/controller"
	"github.com/mouse-blink/annogen/internal/domain/annotation"
	m "github.com/mouse-blink/annogen/internal/model"
)

// diffContext is the number of unchanged lines shown around each change.
const diffContext = 3

// ErrFilesFailed is returned by Run when at least one file could not be processed.
var ErrFilesFailed = errors.New("some files failed")

// EstimateArgs selects the files of a batch and how they are annotated.
type EstimateArgs struct {
	Paths          []m.Path
	FileList       m.Path
	Exclude        []string
	Extensions     []string
	Header         m.Path
	Vocabulary     annotation.Vocabulary
	ImplExtensions []string
	OutputPrefix   string
	InPlace        bool
}

// RunArgs configures a writing batch run.
type RunArgs struct {
	EstimateArgs
	Threads int
	Reports m.Path
}

// ViewArgs locates a persisted report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the batch operations of the CLI.
type Workflow interface {
	Estimate(args EstimateArgs) error
	Run(args RunArgs) error
	Diff(args EstimateArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	templates   adapter.TemplateLoader
	reportStore adapter.ReportStore
	ui          controller.UI
	orch        Orchestrator

	now func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	templates adapter.TemplateLoader,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		templates:   templates,
		reportStore: reportStore,
		ui:          ui,
		orch:        orchestrator,
		now:         time.Now,
	}
}

// Estimate reports, per file, what a run would add without writing anything.
func (w *workflow) Estimate(args EstimateArgs) error {
	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return err
	}

	defer w.ui.Close()

	plan, sources, err := w.prepare(args)
	if err != nil {
		_ = w.ui.DisplayEstimation(nil, err)

		return err
	}

	plan.DryRun = true
	results := w.process(sources, plan, 1, nil)

	if err := w.ui.DisplayEstimation(results, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Run annotates every selected file, persists the batch report and fails when
// any file failed.
func (w *workflow) Run(args RunArgs) error {
	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return err
	}

	defer w.ui.Close()

	plan, sources, err := w.prepare(args.EstimateArgs)
	if err != nil {
		return err
	}

	threads := max(args.Threads, 1)
	w.ui.DisplayConcurrencyInfo(threads, len(sources))

	var mu sync.Mutex

	results := w.process(sources, plan, threads, func(result m.FileResult) {
		mu.Lock()
		defer mu.Unlock()

		w.ui.DisplayFileResult(result)
	})

	report := m.Report{
		GeneratedAt: w.now().UTC(),
		Header:      plan.Header,
		Files:       results,
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReport(args.Reports, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	if err := w.ui.DisplaySummary(report); err != nil {
		return err
	}

	w.ui.Wait()

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(results))
	}

	return nil
}

// Diff shows what a run would change, file by file.
func (w *workflow) Diff(args EstimateArgs) error {
	if err := w.ui.Start(controller.WithDiffMode()); err != nil {
		return err
	}

	defer w.ui.Close()

	plan, sources, err := w.prepare(args)
	if err != nil {
		return err
	}

	plan.DryRun = true

	for _, result := range w.process(sources, plan, 1, nil) {
		if result.Status != m.StatusAnnotated {
			continue
		}

		before, err := w.fsAdapter.ReadLines(result.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", result.Path, err)
		}

		diff := FormatDiff(LineDiff(before, result.Lines), diffContext)
		if err := w.ui.DisplayDiff(plan.OutputPath(result.Path), diff); err != nil {
			return err
		}
	}

	w.ui.Wait()

	return nil
}

// View displays the last persisted report.
func (w *workflow) View(args ViewArgs) error {
	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return err
	}

	defer w.ui.Close()

	report, err := w.reportStore.LoadReport(args.Reports)
	if err != nil {
		return err
	}

	if err := w.ui.DisplaySummary(report); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// prepare loads the header template once and resolves the source set. A
// missing template is fatal before any file is touched.
func (w *workflow) prepare(args EstimateArgs) (Plan, []m.Path, error) {
	tmpl, err := w.templates.Load(args.Header)
	if err != nil {
		return Plan{}, nil, err
	}

	sources, err := w.sources(args)
	if err != nil {
		return Plan{}, nil, err
	}

	vocab := args.Vocabulary
	if vocab.Marker == "" {
		vocab = annotation.DefaultVocabulary()
	}

	if tmpl.Origin != "" {
		slog.Default().Debug("header template loaded",
			slog.String("path", string(tmpl.Origin)), slog.Int("lines", len(tmpl.Lines)))
	}

	plan := Plan{
		Options: annotation.Options{
			Vocabulary:     vocab,
			Header:         tmpl.Lines,
			ImplExtensions: args.ImplExtensions,
		},
		OutputPrefix: args.OutputPrefix,
		InPlace:      args.InPlace,
		Header:       tmpl.Origin,
	}

	return plan, sources, nil
}

func (w *workflow) sources(args EstimateArgs) ([]m.Path, error) {
	roots := append([]m.Path{}, args.Paths...)

	if args.FileList != "" {
		listed, err := w.fsAdapter.ReadFileList(args.FileList)
		if err != nil {
			return nil, fmt.Errorf("failed to read file list: %w", err)
		}

		roots = append(roots, listed...)
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	all, err := w.fsAdapter.Get(roots, args.Extensions)
	if err != nil {
		return nil, err
	}

	sources := make([]m.Path, 0, len(all))

	for _, path := range all {
		if excluded(path, excludes) {
			continue
		}

		if isGeneratedOutput(path, args) {
			slog.Default().Debug("skipping prefixed output of an earlier run",
				slog.String("file", string(path)), slog.String("prefix", args.OutputPrefix))

			continue
		}

		sources = append(sources, path)
	}

	return sources, nil
}

// process runs the orchestrator over sources with at most threads files in
// flight. Results keep the input order; a failing file never stops the batch.
func (w *workflow) process(sources []m.Path, plan Plan, threads int, done func(m.FileResult)) []m.FileResult {
	results := make([]m.FileResult, len(sources))

	var g errgroup.Group

	g.SetLimit(max(threads, 1))

	for i, path := range sources {
		g.Go(func() error {
			result, err := w.orch.Process(path, plan)
			if err != nil {
				logFailure(path, err)
			}

			results[i] = result

			if done != nil {
				done(result)
			}

			return nil
		})
	}

	_ = g.Wait()

	return results
}

func logFailure(path m.Path, err error) {
	attrs := []any{slog.String("file", string(path)), slog.Any("error", err)}

	var malformed *annotation.MalformedDeclarationError
	if errors.As(err, &malformed) {
		attrs = append(attrs, slog.Int("line", malformed.Line))
	}

	var underflow *annotation.AnnotationScanUnderflowError
	if errors.As(err, &underflow) {
		attrs = append(attrs, slog.Int("line", underflow.Line))
	}

	slog.Default().Error("failed to annotate file", attrs...)
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func excluded(path m.Path, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(string(path)) {
			return true
		}
	}

	return false
}

// isGeneratedOutput skips files a previous prefixed run produced.
func isGeneratedOutput(path m.Path, args EstimateArgs) bool {
	if args.InPlace || args.OutputPrefix == "" {
		return false
	}

	return strings.HasPrefix(filepath.Base(string(path)), args.OutputPrefix)
}
