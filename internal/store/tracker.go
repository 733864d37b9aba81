package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type visitJob struct {
	ip        string
	userAgent string
	path      string
}

// Tracker records page views off the request path. A single worker drains a
// bounded queue; when the queue is full new views are dropped.
type Tracker struct {
	store *Store
	log   *zap.Logger

	mu     sync.RWMutex
	closed bool
	jobs   chan visitJob
	done   chan struct{}
}

// NewTracker starts the worker.
func NewTracker(s *Store, log *zap.Logger, queueSize int) *Tracker {
	if queueSize <= 0 {
		queueSize = 256
	}
	t := &Tracker{
		store: s,
		log:   log,
		jobs:  make(chan visitJob, queueSize),
		done:  make(chan struct{}),
	}
	go t.run()
	return t
}

// Track queues a page view. It never blocks and reports whether the view was
// accepted.
func (t *Tracker) Track(ip, userAgent, path string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return false
	}

	select {
	case t.jobs <- visitJob{ip: ip, userAgent: userAgent, path: path}:
		return true
	default:
		t.log.Debug("visit queue full, dropping", zap.String("path", path))
		return false
	}
}

// Close stops accepting views and waits until queued ones are written.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		<-t.done
		return
	}
	t.closed = true
	close(t.jobs)
	t.mu.Unlock()

	<-t.done
}

func (t *Tracker) run() {
	defer close(t.done)
	for job := range t.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := t.store.TrackVisit(ctx, job.ip, job.userAgent, job.path); err != nil {
			t.log.Warn("recording visitor", zap.Error(err))
		}
		cancel()
	}
}
