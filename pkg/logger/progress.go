package logger

import (
	"fmt"
	"sync"
	"time"
)

// ProgressReporter provides simple progress reporting for long-running batch work
type ProgressReporter struct {
	mu          sync.RWMutex
	total       int
	current     int
	description string
	startTime   time.Time
	lastUpdate  time.Time
	logger      *Logger
}

// NewProgressReporter creates a new progress reporter
func NewProgressReporter(total int, description string) *ProgressReporter {
	return &ProgressReporter{
		total:       total,
		current:     0,
		description: description,
		startTime:   time.Now(),
		lastUpdate:  time.Now(),
		logger:      GetLogger().WithField("component", "progress"),
	}
}

// Update increments the progress counter and optionally reports progress
func (pr *ProgressReporter) Update(increment int) {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	pr.current += increment
	now := time.Now()

	// Report every 5 seconds or when complete
	if now.Sub(pr.lastUpdate) >= 5*time.Second || pr.current >= pr.total {
		pr.reportProgress()
		pr.lastUpdate = now
	}
}

// Complete marks the progress as complete and reports final status
func (pr *ProgressReporter) Complete() {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	pr.current = pr.total
	pr.reportProgress()
}

// reportProgress logs the current progress (must be called with lock held)
func (pr *ProgressReporter) reportProgress() {
	if pr.total == 0 {
		return
	}
	percentage := float64(pr.current) / float64(pr.total) * 100
	elapsed := time.Since(pr.startTime)

	pr.logger.WithFields(map[string]interface{}{
		"current":     pr.current,
		"total":       pr.total,
		"elapsed":     elapsed.Round(time.Second).String(),
		"description": pr.description,
	}).Info(fmt.Sprintf("%s: %d/%d (%.1f%%)", pr.description, pr.current, pr.total, percentage))
}

// GetProgress returns current progress information
func (pr *ProgressReporter) GetProgress() (current, total int, percentage float64) {
	pr.mu.RLock()
	defer pr.mu.RUnlock()

	if pr.total == 0 {
		return pr.current, pr.total, 0
	}
	return pr.current, pr.total, float64(pr.current) / float64(pr.total) * 100
}
