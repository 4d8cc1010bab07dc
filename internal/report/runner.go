package report

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spboyer/scorecard/internal/cache"
	"github.com/spboyer/scorecard/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:generate go tool mockgen -destination=mock_source_test.go -package=report . Source

// Source supplies one cohort snapshot.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	Load(ctx context.Context) (*models.Snapshot, error)
}

// DefaultWorkers bounds how many sources are loaded and graded at once.
const DefaultWorkers = 4

// ProgressFunc is told each time a source's report is ready. Calls are
// serialized.
type ProgressFunc func(source string, done, total int)

// Runner generates reports for several sources concurrently.
type Runner struct {
	workers  int
	cache    *cache.Cache
	logger   *slog.Logger
	progress ProgressFunc
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWorkers sets the number of concurrent workers. Values below 1 are ignored.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithCache enables report caching
func WithCache(c *cache.Cache) RunnerOption {
	return func(r *Runner) {
		r.cache = c
	}
}

func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithProgress registers a progress callback
func WithProgress(fn ProgressFunc) RunnerOption {
	return func(r *Runner) {
		r.progress = fn
	}
}

// NewRunner creates a new runner
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		workers: DefaultWorkers,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run loads every source and generates its report. Reports come back in the
// same order as sources. The first load error cancels the remaining loads;
// a report whose snapshot was already loaded is always generated in full.
func (r *Runner) Run(ctx context.Context, sources ...Source) ([]*models.Report, error) {
	reports := make([]*models.Report, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	var progressMu sync.Mutex
	done := 0

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			snap, err := src.Load(ctx)
			if err != nil {
				return fmt.Errorf("loading %s: %w", src.Name(), err)
			}
			r.logger.Debug("snapshot loaded", "source", src.Name(), "students", len(snap.Students), "subjects", len(snap.Subjects))

			rep, err := r.generate(src.Name(), snap)
			if err != nil {
				return err
			}
			reports[i] = rep

			if r.progress != nil {
				progressMu.Lock()
				done++
				r.progress(src.Name(), done, len(sources))
				progressMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *Runner) generate(name string, snap *models.Snapshot) (*models.Report, error) {
	if r.cache == nil {
		rep := Generate(snap)
		r.logger.Debug("report generated", "source", name, "report_id", rep.ID)
		return rep, nil
	}

	key, err := cache.Key(snap)
	if err != nil {
		return nil, fmt.Errorf("computing cache key for %s: %w", name, err)
	}
	if rep, ok := r.cache.Get(key); ok {
		// Cached content is reused; the run identity is not.
		rep = stamp(rep)
		r.logger.Debug("cache hit", "source", name, "key", key, "report_id", rep.ID)
		return rep, nil
	}
	r.logger.Debug("cache miss", "source", name, "key", key)

	rep := Generate(snap)
	r.logger.Debug("report generated", "source", name, "report_id", rep.ID)
	if err := r.cache.Put(key, rep); err != nil {
		// A cache write failure does not invalidate the report.
		r.logger.Warn("failed to cache report", "source", name, "error", err)
	}
	return rep, nil
}
