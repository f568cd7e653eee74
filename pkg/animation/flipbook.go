package animation

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/go-drift/flipbook/internal/debug"
	"github.com/go-drift/flipbook/pkg/errors"
	"github.com/go-drift/flipbook/pkg/geometry"
)

// BoundsReader reads the on-screen bounding box of a mounted element.
type BoundsReader interface {
	ReadBounds(ctx context.Context) (geometry.Rect, error)
}

// BoundsReaderFunc adapts a function to BoundsReader.
type BoundsReaderFunc func(ctx context.Context) (geometry.Rect, error)

// ReadBounds calls f(ctx).
func (f BoundsReaderFunc) ReadBounds(ctx context.Context) (geometry.Rect, error) {
	return f(ctx)
}

// Option configures a Flipbook.
type Option func(*Flipbook)

// WithInitialRect seeds the current rectangle.
func WithInitialRect(r geometry.Rect) Option {
	return func(f *Flipbook) {
		f.rect = NewCell(optionalRect{rect: r, ok: true})
	}
}

// WithLogger routes diagnostic events to l. A nil logger discards them.
func WithLogger(l *log.Logger) Option {
	return func(f *Flipbook) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		f.logger = l
	}
}

type optionalRect struct {
	rect geometry.Rect
	ok   bool
}

type taskKind int

const (
	taskDelay taskKind = iota
	taskTransition
)

// Flipbook animates one element's rectangle through a queue of transitions.
//
// All mutation goes through the command methods (Queue, PlayNow, Pause,
// Resume, DropAll, SetRect). Commands never block: they are appended to a
// mailbox and applied in issue order by a single driver goroutine, which is
// the only owner of the queue and the active task. The committed rectangle
// and status are observable through accessors and listeners.
//
// Listeners run on the driver or stepping goroutine. They may issue
// commands but must not call Flush or Idle.
//
// Always call Close when done to stop the driver goroutine.
type Flipbook struct {
	rect   *Cell[optionalRect]
	status *Cell[Status]
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	pending []message
	closed  bool
	idle    chan struct{}
	queued  int
	wake    chan struct{}

	// commitMu serializes rectangle commits against task generation changes
	// so a cancelled task can never overwrite a newer commit.
	commitMu sync.Mutex
	gen      uint64

	// Owned by the driver goroutine.
	queue     *Queue
	task      *Task
	kind      taskKind
	stopwatch Stopwatch
}

// New creates a resting flipbook and starts its driver goroutine.
func New(opts ...Option) *Flipbook {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Flipbook{
		rect:   NewCell(optionalRect{}),
		status: NewCell(Resting),
		logger: debug.Logger(),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
		idle:   make(chan struct{}),
		wake:   make(chan struct{}, 1),
		queue:  NewQueue(),
	}
	close(f.idle)
	for _, opt := range opts {
		opt(f)
	}
	go f.loop()
	return f
}

// Queue appends b to the backlog. It starts immediately if nothing is
// running.
func (f *Flipbook) Queue(b Builder) {
	f.post(queueCmd{builder: b})
}

// PlayNow cancels the running task, discards the backlog and starts b.
func (f *Flipbook) PlayNow(b Builder) {
	f.post(playNowCmd{builder: b})
}

// Pause suspends the running transition without losing its progress.
// Delays are not pausable.
func (f *Flipbook) Pause() {
	f.post(pauseCmd{})
}

// Resume continues a paused transition. It does nothing otherwise.
func (f *Flipbook) Resume() {
	f.post(resumeCmd{})
}

// DropAll cancels the running task and clears the backlog. The rectangle
// stays where the last frame left it.
func (f *Flipbook) DropAll() {
	f.post(dropAllCmd{})
}

// SetRect overwrites the current rectangle. It is ignored while a task is
// running.
func (f *Flipbook) SetRect(r geometry.Rect) {
	f.post(setRectCmd{rect: r})
}

// Mount seeds the rectangle from the host layout. A failed read is
// reported and leaves the rectangle unchanged. It reports whether the read
// succeeded.
func (f *Flipbook) Mount(ctx context.Context, r BoundsReader) bool {
	rect, err := r.ReadBounds(ctx)
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "animation.Flipbook.Mount",
			Kind: errors.KindLayout,
			Err:  err,
		})
		return false
	}
	f.logf("[flipbook] setting rect from mounted data: %v", rect)
	f.SetRect(rect)
	return true
}

// CurrentRect returns the last committed rectangle, if any.
func (f *Flipbook) CurrentRect() (geometry.Rect, bool) {
	v := f.rect.Get()
	return v.rect, v.ok
}

// Status returns whether the flipbook is busy or resting.
func (f *Flipbook) Status() Status {
	return f.status.Get()
}

// IsResting reports whether no task is active and the queue is empty.
func (f *Flipbook) IsResting() bool {
	return f.status.Get() == Resting
}

// QueueLen returns the number of entries waiting behind the active task,
// as of the last processed command.
func (f *Flipbook) QueueLen() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queued
}

// AddRectListener adds a callback fired for every committed rectangle
// change. Returns an unsubscribe function.
func (f *Flipbook) AddRectListener(fn func(geometry.Rect)) func() {
	return f.rect.AddListener(func(v optionalRect) {
		if v.ok {
			fn(v.rect)
		}
	})
}

// AddStatusListener adds a callback fired whenever the status changes.
// Returns an unsubscribe function.
func (f *Flipbook) AddStatusListener(fn func(Status)) func() {
	return f.status.AddListener(fn)
}

// Flush waits until every command issued before the call has been applied.
func (f *Flipbook) Flush(ctx context.Context) error {
	ack := make(chan struct{})
	f.post(flushCmd{ack: ack})
	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-f.done:
		return errors.ErrClosed
	}
}

// Idle waits until the flipbook is resting with an empty queue.
func (f *Flipbook) Idle(ctx context.Context) error {
	if err := f.Flush(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	idle := f.idle
	f.mu.Unlock()
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-f.done:
		return errors.ErrClosed
	}
}

// Close cancels any running task and stops the driver goroutine.
func (f *Flipbook) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.cancel()
	<-f.done
}

func (f *Flipbook) post(m message) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.pending = append(f.pending, m)
	f.mu.Unlock()

	select {
	case f.wake <- struct{}{}:
	default:
	}
}

func (f *Flipbook) next() (message, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pending) == 0 {
		return nil, false
	}
	m := f.pending[0]
	f.pending[0] = nil
	f.pending = f.pending[1:]
	return m, true
}

func (f *Flipbook) loop() {
	defer close(f.done)
	defer f.shutdown()
	defer errors.Recover("animation.Flipbook.loop")

	for {
		select {
		case <-f.ctx.Done():
			return
		case <-f.wake:
		}
		for {
			m, ok := f.next()
			if !ok {
				break
			}
			f.handle(m)
		}
	}
}

func (f *Flipbook) shutdown() {
	if t := f.task; t != nil {
		f.clearTask()
		<-t.Done()
	}
}

func (f *Flipbook) handle(m message) {
	if _, ok := m.(taskDone); !ok {
		f.logf("[flipbook] processing command %s", m.name())
	}

	switch m := m.(type) {
	case queueCmd:
		f.queue.Push(m.builder)
		f.evaluateQueue()

	case playNowCmd:
		f.clearTask()
		f.setStatus(Busy)
		f.queue.PlayNow(m.builder)
		f.logf("[flipbook] play now: %v", m.builder)
		f.evaluateQueue()

	case pauseCmd:
		if f.task != nil && f.kind == taskTransition {
			f.stopwatch.Stop()
			f.task.Pause()
		}

	case resumeCmd:
		if f.task != nil && f.task.Paused() {
			f.stopwatch.Start()
			f.task.Resume()
		}

	case dropAllCmd:
		f.clearTask()
		f.queue.DropAll()
		f.setStatus(Resting)

	case setRectCmd:
		if f.task != nil {
			f.logf("[flipbook] set rect ignored while a task is running")
			break
		}
		f.commitMu.Lock()
		f.rect.Set(optionalRect{rect: m.rect, ok: true})
		f.commitMu.Unlock()

	case flushCmd:
		close(m.ack)

	case taskDone:
		if f.task == nil || m.gen != f.gen {
			return
		}
		if m.err != nil {
			f.logf("[flipbook] task ended with error: %v", m.err)
		}
		if f.kind == taskTransition {
			f.stopwatch.Clear()
		}
		f.task = nil
		f.evaluateQueue()
	}

	f.mu.Lock()
	f.queued = f.queue.Size()
	f.mu.Unlock()
}

// evaluateQueue starts queue entries until one produces a task or the queue
// runs dry.
func (f *Flipbook) evaluateQueue() {
	for f.task == nil {
		b, ok := f.queue.PopFront()
		if !ok {
			f.setStatus(Resting)
			return
		}
		f.logf("[flipbook] evaluating queue: %v (%d pending)", b, f.queue.Size())
		f.start(b)
	}
}

func (f *Flipbook) start(b Builder) {
	switch {
	case b.To == nil:
		f.spawnDelay(b)

	case b.From == nil:
		from, ok := f.CurrentRect()
		if !ok {
			errors.Report(&errors.Error{
				Op:   "animation.Flipbook.evaluateQueue",
				Kind: errors.KindLayout,
				Err:  errors.ErrNoRect,
			})
			return
		}
		if from == *b.To {
			errors.Report(&errors.Error{
				Op:   "animation.Flipbook.evaluateQueue",
				Kind: errors.KindTransition,
				Err:  errors.ErrDegenerate,
			})
			f.logf("[flipbook] requested animation has same origin and destination: %v %v", from, *b.To)
			return
		}
		f.spawnTransition(NewTransition(b, from, *b.To))

	default:
		f.spawnTransition(NewTransition(b, *b.From, *b.To))
	}
}

func (f *Flipbook) spawnDelay(b Builder) {
	gen := f.nextGen()
	f.setStatus(Busy)
	f.kind = taskDelay
	f.task = Spawn(f.ctx, "animation.delay", func(t *Task) (err error) {
		defer func() { f.post(taskDone{gen: gen, err: err}) }()
		return Sleep(t.Context(), b.Duration)
	})
}

func (f *Flipbook) spawnTransition(tr *Transition) {
	gen := f.nextGen()
	f.setStatus(Busy)
	f.stopwatch.Clear()
	f.stopwatch.Start()
	f.commit(gen, tr.From())
	f.kind = taskTransition
	f.task = Spawn(f.ctx, "animation.transition", func(t *Task) (err error) {
		defer func() { f.post(taskDone{gen: gen, err: err}) }()
		return f.runTransition(t, gen, tr)
	})
}

func (f *Flipbook) runTransition(t *Task, gen uint64, tr *Transition) error {
	ctx := t.Context()
	for !tr.IsFinished() {
		if err := t.Checkpoint(); err != nil {
			return err
		}
		r, err := tr.Step(ctx, f.stopwatch.Elapsed())
		if err != nil {
			return err
		}
		f.commit(gen, r)
	}
	f.commit(gen, tr.To())
	return nil
}

// commit stores r unless the task that produced it has been superseded.
func (f *Flipbook) commit(gen uint64, r geometry.Rect) {
	f.commitMu.Lock()
	defer f.commitMu.Unlock()
	if gen != f.gen {
		return
	}
	f.rect.Set(optionalRect{rect: r, ok: true})
}

func (f *Flipbook) nextGen() uint64 {
	f.commitMu.Lock()
	defer f.commitMu.Unlock()
	f.gen++
	return f.gen
}

func (f *Flipbook) clearTask() {
	if f.task != nil {
		f.nextGen()
		f.task.Cancel()
		f.task = nil
	}
	f.stopwatch.Clear()
}

func (f *Flipbook) setStatus(s Status) {
	f.status.Set(s)

	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.idle:
		if s == Busy {
			f.idle = make(chan struct{})
		}
	default:
		if s == Resting {
			close(f.idle)
		}
	}
}

func (f *Flipbook) logf(format string, args ...any) {
	f.logger.Printf(format, args...)
}
