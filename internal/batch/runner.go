package batch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/backmassage/assetnamer/internal/display"
	"github.com/backmassage/assetnamer/internal/logging"
)

// Execute processes planned items sequentially and returns aggregate stats.
// Files are renamed only with opts.Apply. Cancellation is checked between
// items so an interrupt never leaves a half-processed entry.
func Execute(ctx context.Context, items []Item, opts Options, log *logging.Logger) RunStats {
	stats := RunStats{RunID: uuid.NewString(), Total: len(items)}

	log.Info("Run %s: found %d entries", stats.RunID, stats.Total)
	if !opts.Apply {
		log.Warn("DRY RUN: no files will be renamed (use --apply)")
	}

	for i := range items {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		stats.Current = i + 1
		processItem(log, &items[i], opts, &stats)
	}

	logSummary(log, opts, &stats)
	return stats
}

// processItem handles one entry: report → validate → skip checks → rename.
func processItem(log *logging.Logger, it *Item, opts Options, stats *RunStats) {
	log.Info("[%d/%d] %s: %s", stats.Current, stats.Total, it.Category, it.Name)
	for _, d := range it.Diagnostics {
		log.Warn("  %s", display.FormatDiagnostic(d))
	}

	if it.Err != nil {
		log.Error("  %v", it.Err)
		stats.Failed++
		return
	}

	if it.Entry.Source == "" {
		stats.Planned++
		return
	}

	if _, err := os.Stat(it.Entry.Source); err != nil {
		log.Error("  Source not found: %s", it.Entry.Source)
		stats.Failed++
		return
	}

	if filepath.Clean(it.Entry.Source) == filepath.Clean(it.Target) {
		log.Info("  Already named")
		stats.Skipped++
		return
	}

	if opts.SkipExisting {
		if _, err := os.Stat(it.Target); err == nil {
			log.Warn("  Skip (exists): %s", filepath.Base(it.Target))
			stats.Skipped++
			return
		}
	}

	log.Info("  %s -> %s", filepath.Base(it.Entry.Source), it.Target)

	if !opts.Apply {
		log.Success("  [DRY] Would rename")
		stats.Planned++
		return
	}

	if err := os.MkdirAll(filepath.Dir(it.Target), 0o755); err != nil {
		log.Error("  Cannot create target directory: %v", err)
		stats.Failed++
		return
	}
	if err := os.Rename(it.Entry.Source, it.Target); err != nil {
		log.Error("  Rename failed: %v", err)
		stats.Failed++
		return
	}
	log.Success("  Renamed")
	stats.Renamed++
}

func logSummary(log *logging.Logger, opts Options, stats *RunStats) {
	log.Info("==============================")
	log.Debug("Run %s finished", stats.RunID)
	if opts.Apply {
		log.Info("Done: %d renamed, %d named only, %d skipped, %d failed",
			stats.Renamed, stats.Planned, stats.Skipped, stats.Failed)
	} else {
		log.Info("Done (dry run): %d planned, %d skipped, %d failed",
			stats.Planned, stats.Skipped, stats.Failed)
	}
	if stats.Current < stats.Total {
		log.Warn("Stopped after %d of %d entries", stats.Current, stats.Total)
	}
}
