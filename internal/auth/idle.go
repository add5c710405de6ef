package auth

import (
	"sync"
	"time"
)

// IdleWatcher fires a callback once when no activity has been recorded for
// longer than the timeout. It runs a single cooperative ticker goroutine;
// Start and Stop pair on every session entry and exit.
type IdleWatcher struct {
	timeout   time.Duration
	interval  time.Duration
	now       func() time.Time
	onTimeout func()

	mu   sync.Mutex
	last time.Time

	done     chan struct{}
	stopOnce sync.Once
}

func NewIdleWatcher(timeout, interval time.Duration, now func() time.Time, onTimeout func()) *IdleWatcher {
	if now == nil {
		now = time.Now
	}
	w := &IdleWatcher{
		timeout:   timeout,
		interval:  interval,
		now:       now,
		onTimeout: onTimeout,
		done:      make(chan struct{}),
	}
	w.last = now()
	return w
}

func (w *IdleWatcher) Start() {
	go w.run()
}

func (w *IdleWatcher) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			select {
			case <-w.done:
				return
			default:
			}
			if w.Expired() {
				w.onTimeout()
				return
			}
		}
	}
}

// Touch records user activity, resetting the idle clock.
func (w *IdleWatcher) Touch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = w.now()
}

// Expired reports whether the idle timeout has elapsed since the last
// recorded activity.
func (w *IdleWatcher) Expired() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.now().Sub(w.last) > w.timeout
}

// Stop halts the watcher. Safe to call more than once, and from the
// timeout callback itself.
func (w *IdleWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
}
