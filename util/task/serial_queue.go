package task

import (
	"sync"

	"github.com/prebid/prebid-mediation/logger"
)

type Runner interface {
	Run() error
}

// Executor accepts work to be run later on a thread of its choosing.
type Executor interface {
	Post(fn func()) bool
}

// SerialQueue runs posted tasks one at a time, in post order, on a single
// goroutine. It stands in for the host UI thread: every task observes the
// effects of the tasks posted before it and no two tasks overlap.
//
// Post never blocks, so tasks may post further tasks.
type SerialQueue struct {
	mu      sync.Mutex
	pending []Runner
	stopped bool

	wake     chan struct{}
	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
}

// NewSerialQueue creates a started queue. capacity presizes the pending task
// buffer, which grows as needed.
func NewSerialQueue(capacity int) *SerialQueue {
	if capacity < 0 {
		capacity = 0
	}
	q := &SerialQueue{
		pending:  make([]Runner, 0, capacity),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	go q.loop()
	return q
}

// Post schedules fn. It returns false if the queue was stopped.
func (q *SerialQueue) Post(fn func()) bool {
	return q.enqueue(RunnerFunc(fn))
}

func (q *SerialQueue) enqueue(r Runner) bool {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, r)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Sync blocks until every task posted before the call has run. It must not be
// called from a task.
func (q *SerialQueue) Sync() {
	barrier := make(chan struct{})
	if !q.Post(func() { close(barrier) }) {
		return
	}
	select {
	case <-barrier:
	case <-q.finished:
	}
}

// Stop ends the queue. Tasks still pending are discarded.
func (q *SerialQueue) Stop() {
	q.stopOnce.Do(func() {
		q.mu.Lock()
		q.stopped = true
		q.pending = nil
		q.mu.Unlock()
		close(q.done)
	})
	<-q.finished
}

func (q *SerialQueue) loop() {
	defer close(q.finished)

	for {
		select {
		case <-q.done:
			return
		case <-q.wake:
		}
		for {
			r, ok := q.next()
			if !ok {
				break
			}
			q.run(r)
		}
	}
}

func (q *SerialQueue) next() (Runner, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped || len(q.pending) == 0 {
		return nil, false
	}
	r := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return r, true
}

func (q *SerialQueue) run(r Runner) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Errorf("serial queue task panicked: %v", rec)
		}
	}()

	if err := r.Run(); err != nil {
		logger.Errorf("serial queue task failed: %v", err)
	}
}
