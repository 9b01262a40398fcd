// Package batch orchestrates a conversion run: it discovers work under
// the source directory, fans file conversions out over a bounded worker
// pool, and folds failures into an ErrorTracker for the final summary.
package batch

import (
	"context"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"shiroink/internal/archive"
	"shiroink/internal/config"
	"shiroink/internal/pipeline"
	"shiroink/internal/report"
	"shiroink/internal/retry"
)

const (
	stepImageProcessing     = "image_processing"
	stepBundleCreation      = "cbz_creation"
	stepBundleExtraction    = "cbz_extraction"
	stepDirectoryProcessing = "directory_processing"
)

// Optional reporter capabilities; the terminal UI backend implements
// them, plain backends don't.
type spreadCounter interface{ CountSpread() }
type bundleCounter interface{ CountBundle() }

// Runner executes one conversion run. Construct with NewRunner, which
// validates the configuration and resolves the pipeline; both are then
// shared read-only across workers.
type Runner struct {
	cfg      config.Config
	pipe     *pipeline.Pipeline
	reporter report.Reporter
	tracker  *ErrorTracker
	level    png.CompressionLevel

	processed atomic.Int64
	spreads   atomic.Int64
	bundles   atomic.Int64
}

// Stats are the success-side counters of a finished run.
type Stats struct {
	Processed int
	Spreads   int
	Bundles   int
}

func NewRunner(cfg config.Config, reporter report.Reporter) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pipe, err := cfg.Pipeline()
	if err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = report.Discard{}
	}
	return &Runner{
		cfg:      cfg,
		pipe:     pipe,
		reporter: reporter,
		tracker:  NewErrorTracker(),
		level:    cfg.Compression(),
	}, nil
}

func (r *Runner) Tracker() *ErrorTracker { return r.tracker }

func (r *Runner) Stats() Stats {
	return Stats{
		Processed: int(r.processed.Load()),
		Spreads:   int(r.spreads.Load()),
		Bundles:   int(r.bundles.Load()),
	}
}

// Run processes every work item under the source directory and returns
// the result code: 0 clean, 1 recoverable errors, 2 critical failure.
// Work items (top-level directories and bundles) run sequentially; files
// within a directory run on the worker pool.
func (r *Runner) Run(ctx context.Context) int {
	info, err := os.Stat(r.cfg.SourceDir)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("%s is not a directory", r.cfg.SourceDir)
		}
		r.tracker.Add(Record{
			Path:     r.cfg.SourceDir,
			Err:      err,
			Severity: SeverityCritical,
			Step:     stepDirectoryProcessing,
		})
		r.reporter.Log(report.LevelError, "invalid source directory: %v", err)
		return 2
	}

	if !r.cfg.DryRun {
		if err := os.MkdirAll(r.cfg.DestDir, 0o755); err != nil {
			r.tracker.Add(Record{
				Path:     r.cfg.DestDir,
				Err:      err,
				Severity: SeverityCritical,
				Step:     stepDirectoryProcessing,
			})
			return 2
		}
	}

	entries, err := os.ReadDir(r.cfg.SourceDir)
	if err != nil {
		r.tracker.Add(Record{
			Path:     r.cfg.SourceDir,
			Err:      err,
			Severity: SeverityCritical,
			Step:     stepDirectoryProcessing,
		})
		return 2
	}

	for _, entry := range entries {
		path := filepath.Join(r.cfg.SourceDir, entry.Name())

		var itemErr error
		switch {
		case entry.IsDir():
			itemErr = r.processDirectory(ctx, path)
		case archive.IsBundle(path):
			itemErr = r.processBundle(ctx, path)
		default:
			r.reporter.Log(report.LevelDebug, "skipping %s", path)
			continue
		}

		if itemErr != nil {
			r.tracker.Add(Record{
				Path:     path,
				Err:      itemErr,
				Severity: SeverityCritical,
				Step:     stepDirectoryProcessing,
			})
			r.reporter.Log(report.LevelError, "aborting: %v", itemErr)
			break
		}
	}

	return r.tracker.ResultCode()
}

// processDirectory converts every image under dir on the worker pool,
// then bundles the mirrored destination tree. A non-nil return means
// the run should abort (continue-on-error is off).
func (r *Runner) processDirectory(ctx context.Context, dir string) error {
	files, err := collectImages(dir)
	if err != nil {
		return &DirectoryError{Path: dir, Err: err}
	}

	if r.cfg.Debug || r.cfg.DryRun {
		verb := "Processing"
		if r.cfg.DryRun {
			verb = "Would process"
		}
		r.reporter.Log(report.LevelInfo, "%s directory %s (%d images)", verb, dir, len(files))
	}

	task := r.reporter.AddTask(fmt.Sprintf("Converting %s", filepath.Base(dir)), len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for _, file := range files {
		file := file
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			err := r.processFile(file)
			r.reporter.Advance(task, 1)
			if err != nil && !r.cfg.ContinueOnError {
				return err
			}
			return nil
		})
	}
	poolErr := g.Wait()
	r.reporter.RemoveTask(task)
	if poolErr != nil {
		return &DirectoryError{Path: dir, Err: poolErr}
	}

	return r.createBundle(dir)
}

// processFile converts a single source image, retrying the whole
// operation up to MaxRetries times with no delay. The final failure is
// recorded; the returned error is non-nil only on final failure.
func (r *Runner) processFile(srcPath string) error {
	rel, err := filepath.Rel(r.cfg.SourceDir, srcPath)
	if err != nil {
		rel = filepath.Base(srcPath)
	}
	destPath := filepath.Join(r.cfg.DestDir, withExt(rel, ".png"))

	if r.cfg.Debug || r.cfg.DryRun {
		verb := "Processing"
		if r.cfg.DryRun {
			verb = "Would process"
		}
		r.reporter.Log(report.LevelDebug, "%s %s -> %s", verb, srcPath, destPath)
	}
	if r.cfg.DryRun {
		return nil
	}

	// Workers race to create shared parents, so creation must be
	// idempotent.
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return r.recordFileError(srcPath, err, 0)
	}

	var lastErr error
	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 && r.cfg.Debug {
			r.reporter.Log(report.LevelWarning, "retry %d/%d for %s",
				attempt, r.cfg.MaxRetries, srcPath)
		}

		pages, err := convertFile(srcPath, destPath, r.pipe, r.cfg.RightToLeft, r.level)
		if err == nil {
			r.processed.Add(1)
			if pages > 1 {
				r.spreads.Add(1)
				if sc, ok := r.reporter.(spreadCounter); ok {
					sc.CountSpread()
				}
			}
			return nil
		}
		lastErr = err
	}

	return r.recordFileError(srcPath, lastErr, r.cfg.MaxRetries)
}

func (r *Runner) recordFileError(path string, err error, retries int) error {
	perr := &ProcessError{Path: path, Retries: retries, Err: err}
	r.tracker.Add(Record{
		Path:       path,
		Err:        perr,
		Severity:   SeverityError,
		Step:       stepImageProcessing,
		RetryCount: retries,
	})
	r.reporter.Log(report.LevelError, "failed to process %s: %v", path, err)
	return perr
}

// createBundle packs the destination tree mirroring dir into a .cbz
// next to it and removes the now-redundant tree. On bundling failure
// the tree is kept so nothing converted is lost.
func (r *Runner) createBundle(dir string) error {
	rel, err := filepath.Rel(r.cfg.SourceDir, dir)
	if err != nil {
		rel = filepath.Base(dir)
	}
	destTree := filepath.Join(r.cfg.DestDir, rel)
	bundlePath := filepath.Join(r.cfg.DestDir, filepath.Base(dir)+".cbz")

	if r.cfg.DryRun {
		r.reporter.Log(report.LevelInfo, "Would create bundle %s", bundlePath)
		return nil
	}
	if r.cfg.Debug {
		r.reporter.Log(report.LevelDebug, "creating bundle %s", bundlePath)
	}

	total := countFiles(destTree)
	task := r.reporter.AddTask(fmt.Sprintf("Bundling %s", filepath.Base(bundlePath)), total)
	err = archive.Create(bundlePath, destTree, func(string) {
		r.reporter.Advance(task, 1)
	})
	r.reporter.RemoveTask(task)

	if err != nil {
		r.tracker.Add(Record{
			Path:     bundlePath,
			Err:      err,
			Severity: SeverityError,
			Step:     stepBundleCreation,
		})
		r.reporter.Log(report.LevelError, "failed to create bundle %s: %v", bundlePath, err)
		if !r.cfg.ContinueOnError {
			return err
		}
		return nil
	}

	if err := os.RemoveAll(destTree); err != nil {
		r.reporter.Log(report.LevelWarning, "could not remove %s: %v", destTree, err)
	}
	r.bundles.Add(1)
	if bc, ok := r.reporter.(bundleCounter); ok {
		bc.CountBundle()
	}
	return nil
}

// processBundle extracts an existing bundle next to itself, runs the
// directory path over the extracted tree, and always removes the
// temporary tree afterwards, even on partial failure.
func (r *Runner) processBundle(ctx context.Context, path string) error {
	if r.cfg.DryRun {
		r.reporter.Log(report.LevelInfo, "Would extract bundle %s", path)
		return nil
	}
	if r.cfg.Debug {
		r.reporter.Log(report.LevelDebug, "extracting bundle %s", path)
	}

	extractDir := strings.TrimSuffix(path, filepath.Ext(path))
	err := retry.Do(ctx, 2, 200*time.Millisecond, func() error {
		return archive.Extract(path, extractDir)
	})
	if err != nil {
		r.tracker.Add(Record{
			Path:     path,
			Err:      err,
			Severity: SeverityError,
			Step:     stepBundleExtraction,
		})
		r.reporter.Log(report.LevelError, "failed to extract %s: %v", path, err)
		if !r.cfg.ContinueOnError {
			return err
		}
		return nil
	}
	defer os.RemoveAll(extractDir)

	return r.processDirectory(ctx, extractDir)
}

func collectImages(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && isImageFile(p) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func countFiles(dir string) int {
	n := 0
	filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr == nil && !d.IsDir() {
			n++
		}
		return nil
	})
	return n
}

func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
