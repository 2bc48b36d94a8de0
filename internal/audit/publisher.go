package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Publisher fans screening events into a store, synchronously by default or
// through a buffered worker when WithAsyncBuffer is set. Close drains the
// buffer before returning.
type Publisher struct {
	store  Store
	logger *slog.Logger

	ch   chan Event
	wg   sync.WaitGroup
	once sync.Once
}

type Option func(*Publisher)

// WithAsyncBuffer moves store writes off the check path. A full buffer drops
// the event rather than blocking a caller.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.ch = make(chan Event, size)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.ch != nil {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for event := range p.ch {
		if err := p.store.Append(context.Background(), event); err != nil {
			p.logger.Error("audit append failed", "event_id", event.ID, "error", err)
		}
	}
}

// Emit records one event, assigning an ID and timestamp when the caller left
// them empty.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if p.ch == nil {
		return p.store.Append(ctx, event)
	}
	select {
	case p.ch <- event:
	default:
		p.logger.Warn("audit buffer full, dropping event", "event_id", event.ID)
	}
	return nil
}

// List exposes the recorded trail for tests and future ops surfaces.
func (p *Publisher) List(ctx context.Context) ([]Event, error) {
	return p.store.List(ctx)
}

// Close stops the async worker after the buffer drains. Safe to call more
// than once and in sync mode.
func (p *Publisher) Close() {
	p.once.Do(func() {
		if p.ch != nil {
			close(p.ch)
			p.wg.Wait()
		}
	})
}
