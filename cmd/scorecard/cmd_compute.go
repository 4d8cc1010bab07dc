package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spboyer/scorecard/internal/cache"
	"github.com/spboyer/scorecard/internal/cohort"
	"github.com/spboyer/scorecard/internal/models"
	"github.com/spboyer/scorecard/internal/projectconfig"
	"github.com/spboyer/scorecard/internal/report"
	"github.com/spboyer/scorecard/internal/reporting"
	"github.com/spboyer/scorecard/internal/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var outputFormats = []string{"table", "json", "yaml", "markdown", "html", "csv"}

var formatExtensions = map[string]string{
	"table":    ".txt",
	"json":     ".json",
	"yaml":     ".yaml",
	"markdown": ".md",
	"html":     ".html",
	"csv":      ".csv",
}

type computeOptions struct {
	studentsCSV string
	format      string
	output      string
	outputIsDir bool
	scienceBase int
	interpret   bool
	cache       bool
	cacheDir    string
	workers     int
}

func newComputeCommand() *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute [snapshot.yaml ...]",
		Short: "Grade one or more class snapshots",
		Long: `Grade one or more class snapshots and print the resulting reports.

Each snapshot is graded on its own: statistics, grades, best-six aggregates,
ranks and facilitator performance are all derived from that snapshot alone.
Settings missing from a snapshot are taken from .scorecard.yaml.

With --students-csv the students are imported from a master-sheet CSV instead,
optionally combined with a single snapshot that supplies subjects and settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return computeCommandE(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.studentsCSV, "students-csv", "", "Master-sheet CSV to import students from")
	f.StringVarP(&opts.format, "format", "f", projectconfig.DefaultOutputFormat, "Output format: "+strings.Join(outputFormats, ", "))
	f.StringVarP(&opts.output, "output", "o", "", "Write to this file (a directory when several snapshots are graded)")
	f.IntVar(&opts.scienceBase, "science-base", 0, "Override the Science base score (100 or 140)")
	f.BoolVar(&opts.interpret, "interpret", false, "Append a plain-language interpretation")
	f.BoolVar(&opts.cache, "cache", false, "Reuse graded results for unchanged snapshots (each run still gets a new report id)")
	f.StringVar(&opts.cacheDir, "cache-dir", projectconfig.DefaultCacheDir, "Cache directory")
	f.IntVar(&opts.workers, "workers", projectconfig.DefaultWorkers, "Number of snapshots graded concurrently")

	return cmd
}

func computeCommandE(cmd *cobra.Command, args []string, opts *computeOptions) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	resolveComputeOptions(cmd, opts, cfg)

	if !slices.Contains(outputFormats, opts.format) {
		return fmt.Errorf("unsupported format %q: must be one of %s", opts.format, strings.Join(outputFormats, ", "))
	}
	if opts.scienceBase != 0 && opts.scienceBase != models.ScienceBase100 && opts.scienceBase != models.ScienceBase140 {
		return fmt.Errorf("--science-base must be %d or %d, got %d", models.ScienceBase100, models.ScienceBase140, opts.scienceBase)
	}

	sources, err := buildSources(args, opts, cfg)
	if err != nil {
		return err
	}

	runnerOpts := []report.RunnerOption{report.WithWorkers(opts.workers)}
	if opts.cache {
		absDir, err := filepath.Abs(opts.cacheDir)
		if err != nil {
			return fmt.Errorf("resolving cache directory: %w", err)
		}
		slog.Debug("report cache enabled", "dir", absDir)
		runnerOpts = append(runnerOpts, report.WithCache(cache.New(absDir)))
	}

	stopSpinner := func() {}
	if isTerminal(cmd.ErrOrStderr()) {
		spin := spinner.Start(cmd.ErrOrStderr(), fmt.Sprintf("Grading 0/%d", len(sources)))
		stopSpinner = spin.Stop
		runnerOpts = append(runnerOpts, report.WithProgress(func(_ string, done, total int) {
			spin.SetMessage(fmt.Sprintf("Grading %d/%d", done, total))
		}))
	}

	reports, err := report.NewRunner(runnerOpts...).Run(cmd.Context(), sources...)
	stopSpinner()
	if err != nil {
		return err
	}

	if opts.output == "" {
		return renderReports(cmd.OutOrStdout(), reports, opts)
	}
	if len(reports) == 1 && !opts.outputIsDir && !isDir(opts.output) {
		return writeReportFile(opts.output, reports, opts)
	}
	for _, rep := range reports {
		path := filepath.Join(opts.output, slug(rep.Cohort)+formatExtensions[opts.format])
		if err := writeReportFile(path, []*models.Report{rep}, opts); err != nil {
			return err
		}
	}
	return nil
}

// resolveComputeOptions fills options the user did not set from project
// config. A table is only the default on a terminal; piped output gets JSON.
func resolveComputeOptions(cmd *cobra.Command, opts *computeOptions, cfg *projectconfig.ProjectConfig) {
	flags := cmd.Flags()
	if !flags.Changed("output") && cfg.Output.Dir != "" {
		opts.output = cfg.Output.Dir
		opts.outputIsDir = true
	}
	if !flags.Changed("format") {
		opts.format = cfg.Output.Format
		if opts.format == "table" && opts.output == "" && !isTerminal(cmd.OutOrStdout()) {
			opts.format = "json"
		}
	}
	if !flags.Changed("cache") {
		opts.cache = cfg.CacheEnabled()
	}
	if !flags.Changed("cache-dir") {
		opts.cacheDir = cfg.Cache.Dir
	}
	if !flags.Changed("workers") {
		opts.workers = cfg.Runner.Workers
	}
}

func buildSources(args []string, opts *computeOptions, cfg *projectconfig.ProjectConfig) ([]report.Source, error) {
	if len(args) == 0 && opts.studentsCSV == "" {
		return nil, fmt.Errorf("nothing to grade: pass a snapshot file or --students-csv")
	}
	if len(args) > 1 && opts.studentsCSV != "" {
		return nil, fmt.Errorf("--students-csv can only be combined with a single snapshot")
	}

	if len(args) == 0 {
		return []report.Source{&cohort.FileSource{
			StudentsCSV:      opts.studentsCSV,
			Config:           cfg,
			ScienceBaseScore: opts.scienceBase,
		}}, nil
	}

	sources := make([]report.Source, 0, len(args))
	for _, path := range args {
		sources = append(sources, &cohort.FileSource{
			Path:             path,
			StudentsCSV:      opts.studentsCSV,
			Config:           cfg,
			ScienceBaseScore: opts.scienceBase,
		})
	}
	return sources, nil
}

func renderReports(w io.Writer, reports []*models.Report, opts *computeOptions) error {
	switch opts.format {
	case "json":
		var v any = reports
		if len(reports) == 1 {
			v = reports[0]
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, rep := range reports {
			if err := enc.Encode(rep); err != nil {
				return fmt.Errorf("encoding yaml: %w", err)
			}
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	default:
		for i, rep := range reports {
			if i > 0 {
				fmt.Fprintln(w) //nolint:errcheck
			}
			if err := renderText(w, rep, opts.format); err != nil {
				return err
			}
		}
	}

	if opts.interpret {
		return writeInterpretations(w, reports, opts.format)
	}
	return nil
}

func renderText(w io.Writer, rep *models.Report, format string) error {
	switch format {
	case "table":
		return reporting.WriteTable(w, rep)
	case "markdown":
		_, err := io.WriteString(w, reporting.FormatMarkdown(rep))
		return err
	case "html":
		page, err := reporting.RenderHTML(rep)
		if err != nil {
			return err
		}
		_, err = w.Write(page)
		return err
	case "csv":
		return reporting.WriteMasterSheetCSV(w, rep)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// writeInterpretations only mixes into human-readable formats. Structured
// formats are left parseable, and the interpretation is logged instead.
func writeInterpretations(w io.Writer, reports []*models.Report, format string) error {
	for _, rep := range reports {
		text := reporting.Interpret(rep)
		switch format {
		case "table", "markdown":
			if _, err := fmt.Fprintf(w, "\n%s", text); err != nil {
				return err
			}
		default:
			slog.Info("interpretation", "cohort", rep.Cohort, "text", text)
		}
	}
	return nil
}

func writeReportFile(path string, reports []*models.Report, opts *computeOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := renderReports(f, reports, opts); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Debug("report written", "path", path)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// slug turns a cohort name into a file name.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "report"
	}
	return s
}
