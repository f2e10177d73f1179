package services

import (
	"sync"

	"github.com/Tanmandal/Short-URL/internal/database"
	"github.com/Tanmandal/Short-URL/internal/models"
	"github.com/Tanmandal/Short-URL/pkg/logger"
	"gorm.io/gorm"
)

// HitCounter persists redirect hit counts off the request path. Redirects
// enqueue a code and move on; a fixed set of workers drains the queue. The
// queue is bounded and enqueue never blocks: under a redirect storm excess
// increments are dropped rather than buffered without limit.
type HitCounter struct {
	queue chan string
	wg    sync.WaitGroup
}

func NewHitCounter(workers, buffer int) *HitCounter {
	h := &HitCounter{
		queue: make(chan string, buffer),
	}
	for i := 0; i < workers; i++ {
		h.wg.Add(1)
		go h.worker()
	}
	return h
}

func (h *HitCounter) worker() {
	defer h.wg.Done()
	for code := range h.queue {
		err := database.DB.Model(&models.LinkStats{}).
			Where("code = ?", code).
			UpdateColumn("hits", gorm.Expr("hits + 1")).Error
		if err != nil {
			// Best-effort: increment failures are never surfaced or retried.
			logger.Debug().Err(err).Str("code", code).Msg("hit increment failed")
		}
	}
}

// Record enqueues an increment for code without blocking. Returns false if
// the queue was full and the increment was dropped.
func (h *HitCounter) Record(code string) bool {
	select {
	case h.queue <- code:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits for in-flight increments to persist.
func (h *HitCounter) Stop() {
	close(h.queue)
	h.wg.Wait()
}

var hits *HitCounter

// InitHitCounter starts the process-wide hit counter pool.
func InitHitCounter(workers, buffer int) {
	hits = NewHitCounter(workers, buffer)
}

// RecordHit is the fire-and-forget entry point used by the redirect handler.
// Safe to call when the pool was never started (tests).
func RecordHit(code string) {
	if hits != nil {
		hits.Record(code)
	}
}

// StopHitCounter drains and stops the process-wide pool.
func StopHitCounter() {
	if hits != nil {
		hits.Stop()
		hits = nil
	}
}
