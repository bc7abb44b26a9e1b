package fs

import (
	"sync"
	"time"

	"github.com/aretw0/notoo/pkg/core"
)

// debouncer holds back events per key until the key has been quiet for delay.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	wg      sync.WaitGroup
	pending map[string]*pendingEvent
	stopped bool
}

type pendingEvent struct {
	event core.Event
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		pending: make(map[string]*pendingEvent),
	}
}

// add schedules emit for e, replacing a pending event of the same key.
// A CREATE followed by writes is still reported as a CREATE.
func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if prev, ok := d.pending[e.Key]; ok && prev.timer.Stop() {
		d.wg.Done()
		if prev.event.Type == core.EventCreate && e.Type == core.EventModify {
			e.Type = core.EventCreate
		}
	}

	p := &pendingEvent{event: e}
	d.wg.Add(1)
	p.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.pending[e.Key] == p {
			delete(d.pending, e.Key)
		}
		d.mu.Unlock()
		emit(p.event)
	})
	d.pending[e.Key] = p
}

// stopAndWait drops pending events and waits for emits already running.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, p := range d.pending {
		if p.timer.Stop() {
			d.wg.Done()
		}
		delete(d.pending, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
