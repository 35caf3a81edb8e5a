package log

import (
	"sync"
	"time"
)

// A Timer records the wall-clock time between a named Start and the
// matching Stop call.
type Timer interface {
	// Start timing the given name. Starting a name that is already
	// running restarts it.
	Start(name string)

	// Stop timing the given name and return the elapsed time. Stopping
	// a name that was never started returns 0.
	Stop(name string) time.Duration
}

type loggingTimer struct {
	sync.Mutex

	logger  Logger
	now     func() time.Time
	started map[string]time.Time
}

// Create a timer that logs each measured interval at Info level.
func NewTimer(logger Logger) Timer {
	return &loggingTimer{
		logger:  logger,
		now:     time.Now,
		started: make(map[string]time.Time),
	}
}

func (t *loggingTimer) Start(name string) {
	t.Lock()
	t.started[name] = t.now()
	t.Unlock()
}

func (t *loggingTimer) Stop(name string) time.Duration {
	t.Lock()
	start, ok := t.started[name]
	delete(t.started, name)
	t.Unlock()

	if !ok {
		t.logger.Warningf("timer %q stopped without being started", name)
		return 0
	}

	elapsed := t.now().Sub(start)
	t.logger.Infof("%s: %s", name, elapsed)
	return elapsed
}
