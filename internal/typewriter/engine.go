package typewriter

import (
	"slices"
	"sync"

	"github.com/Zachkp/folio/internal/clock"
)

// Engine owns one State and drives it with a single pending timer.
// Every rendered banner gets its own Engine; nothing is shared between
// instances.
type Engine struct {
	clock    clock.Clock
	observer func(Snapshot)

	// emitMu orders observer calls. It is taken before mu.
	emitMu sync.Mutex

	mu       sync.Mutex
	cfg      Config
	state    State
	timer    *clock.Timer
	gen      uint64
	started  bool
	stopped  bool
	finished bool
	done     chan struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source. The default is clock.Real().
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithObserver registers fn to receive a Snapshot after Start and after
// every transition. Calls are sequential. fn may call Snapshot or Stop
// but must not call Start or Reconfigure.
func WithObserver(fn func(Snapshot)) Option {
	return func(e *Engine) { e.observer = fn }
}

// New returns an idle engine at word 0 with empty text.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		clock: clock.Real(),
		cfg:   cfg.normalized(),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start emits the initial snapshot and schedules the first tick.
// Calling Start more than once, or after Stop, does nothing.
func (e *Engine) Start() {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	if e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.started = true
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.emit(snap)

	e.mu.Lock()
	e.scheduleLocked()
	e.mu.Unlock()
}

// Stop cancels the pending tick and closes Done. The engine cannot be
// restarted.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.stopped = true
	e.gen++
	e.cancelLocked()
	e.closeDoneLocked()
}

// Done is closed once the engine will never tick again: after Stop, or
// when a non-looping list has typed its last word.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Snapshot returns the current view.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	cfg := e.cfg
	cfg.Words = slices.Clone(cfg.Words)
	return cfg
}

// Reconfigure cancels the pending tick and applies cfg. The state is
// kept when the word list is unchanged and reset to word 0 otherwise.
// A started engine emits the resulting snapshot and reschedules. It is
// a no-op once Done is closed.
func (e *Engine) Reconfigure(cfg Config) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	if e.stopped || e.finished {
		e.mu.Unlock()
		return
	}
	e.gen++
	e.cancelLocked()

	cfg = cfg.normalized()
	if !slices.Equal(cfg.Words, e.cfg.Words) {
		e.state = State{}
	}
	e.cfg = cfg
	if !e.started {
		e.mu.Unlock()
		return
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.emit(snap)

	e.mu.Lock()
	e.scheduleLocked()
	e.mu.Unlock()
}

func (e *Engine) tick(gen uint64) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	if gen != e.gen || e.stopped {
		e.mu.Unlock()
		return
	}
	e.timer = nil
	next, ok := Next(e.cfg.Words, e.state, e.cfg.Loop)
	if !ok {
		e.finishLocked()
		e.mu.Unlock()
		return
	}
	e.state = next
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.emit(snap)

	e.mu.Lock()
	if gen == e.gen && !e.stopped {
		e.scheduleLocked()
	}
	e.mu.Unlock()
}

// scheduleLocked replaces any pending tick with one for the current
// phase. An empty list schedules nothing; a terminal non-looping state
// finishes the engine.
func (e *Engine) scheduleLocked() {
	e.cancelLocked()
	if len(e.cfg.Words) == 0 {
		return
	}
	if Terminal(e.cfg.Words, e.state, e.cfg.Loop) {
		e.finishLocked()
		return
	}
	e.gen++
	gen := e.gen
	d := e.cfg.Timeout(e.state.Phase(e.cfg.Words))
	e.timer = e.clock.AfterFunc(d, func() { e.tick(gen) })
}

func (e *Engine) cancelLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) finishLocked() {
	e.cancelLocked()
	e.finished = true
	e.closeDoneLocked()
}

func (e *Engine) closeDoneLocked() {
	select {
	case <-e.done:
	default:
		close(e.done)
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	return SnapshotOf(e.cfg.Words, e.state)
}

func (e *Engine) emit(s Snapshot) {
	if e.observer != nil {
		e.observer(s)
	}
}
