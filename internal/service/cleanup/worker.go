package cleanup

import (
	"context"
	"log"
	"time"
)

// AnalysisPruner deletes stale analyses, implemented by postgres.AnalysisRepo.
type AnalysisPruner interface {
	DeleteOlderThan(ctx context.Context, olderThanDays int) (int64, error)
}

const (
	DefaultRetentionDays = 30
	DefaultInterval      = time.Hour
)

type Worker struct {
	Repository    AnalysisPruner
	RetentionDays int
	Interval      time.Duration
}

// NewWorker replaces a non-positive retention or interval with its default:
// a zero retention would delete every analysis and a zero interval cannot tick.
func NewWorker(repo AnalysisPruner, retentionDays int, interval time.Duration) *Worker {
	if retentionDays <= 0 {
		log.Printf("[CLEANUP] Warning: Invalid retention of %d days, using %d", retentionDays, DefaultRetentionDays)
		retentionDays = DefaultRetentionDays
	}
	if interval <= 0 {
		log.Printf("[CLEANUP] Warning: Invalid interval %s, using %s", interval, DefaultInterval)
		interval = DefaultInterval
	}
	return &Worker{Repository: repo, RetentionDays: retentionDays, Interval: interval}
}

// Start runs one cleanup right away and then one per interval until ctx is
// done. It does not block.
func (w *Worker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		w.runCleanup(ctx)

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[CLEANUP] Background worker stopped")
				return
			case <-ticker.C:
				w.runCleanup(ctx)
			}
		}
	}()

	log.Println("[CLEANUP] Background worker started")
	return done
}

func (w *Worker) runCleanup(ctx context.Context) {
	log.Println("[CLEANUP] Starting scheduled cleanup task...")

	deletedCount, err := w.Repository.DeleteOlderThan(ctx, w.RetentionDays)
	if err != nil {
		log.Printf("[CLEANUP] Error cleaning up analyses: %v", err)
		return
	}
	if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d stale analyses from database", deletedCount)
	}
}
