// Package id3mend detects a vendor double-encoding defect in MP3 ID3 text
// frames and reports corrected values. It never modifies the scanned files.
//
// Example usage:
//
//	cfg := id3mend.DefaultConfig()
//	cfg.Log = zerolog.Nop()
//	if err := id3mend.Run(context.Background(), cfg, "/music"); err != nil {
//	    log.Fatal(err)
//	}
package id3mend

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/id3mend/internal/adapters/id3"
	adapterlog "github.com/bft-labs/id3mend/internal/adapters/log"
	"github.com/bft-labs/id3mend/internal/adapters/report"
	"github.com/bft-labs/id3mend/internal/scanner"
)

// Config holds the configuration for a scan run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Fields is the ordered list of ID3 frame identifiers to inspect.
	// Empty means the vendor's known text frames.
	Fields []string

	// Extensions is the file extension allow-list, matched case
	// insensitively. Empty means .mp3 only.
	Extensions []string

	// Watch keeps watching directory arguments for new files after the
	// initial scan, until the context is canceled.
	Watch bool

	// Summary prints the per-run counter table after the initial scan.
	Summary bool

	// Output receives candidate reports and the summary.
	// Defaults to os.Stdout.
	Output io.Writer

	// Log receives diagnostics. Defaults to a disabled logger.
	Log zerolog.Logger
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Summary: true,
		Log:     zerolog.Nop(),
	}
}

// Run scans the given paths and reports correction candidates.
// Invalid paths are collected rather than aborting the run; the joined
// error is returned after all arguments were processed. With cfg.Watch set,
// Run blocks watching the directory arguments until ctx is canceled.
func Run(ctx context.Context, cfg Config, paths ...string) error {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	logger := adapterlog.NewZerologAdapter(cfg.Log)

	s := scanner.New(scanner.Config{
		Fields:     cfg.Fields,
		Extensions: cfg.Extensions,
	}, id3.NewReader(), report.NewConsole(out, cfg.Summary), logger)

	var errs []error
	var watchDirs []string
	for _, p := range paths {
		if err := s.ScanPath(p); err != nil {
			errs = append(errs, err)
			continue
		}
		if cfg.Watch {
			if fi, err := os.Stat(p); err == nil && fi.IsDir() {
				watchDirs = append(watchDirs, p)
			}
		}
	}
	s.Report()

	if cfg.Watch && len(watchDirs) > 0 {
		w := scanner.NewWatcher(s, logger)
		if err := w.Run(ctx, watchDirs); err != nil && !errors.Is(err, context.Canceled) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
