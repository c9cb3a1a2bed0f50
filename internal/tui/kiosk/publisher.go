package kiosk

import (
	"context"
	"sync"

	"github.com/mark3labs/remitkiosk/internal/journal"
	"github.com/mark3labs/remitkiosk/internal/logger"
	"github.com/mark3labs/remitkiosk/internal/wizard"
)

const publishQueueSize = 256

// publisher forwards controller events to the journal on its own goroutine
// so the Update loop never waits on NATS. Events keep their order.
type publisher struct {
	rec   journal.Recorder
	queue chan wizard.Event
	done  chan struct{}
	once  sync.Once

	closed bool
}

func newPublisher(ctx context.Context, rec journal.Recorder) *publisher {
	p := &publisher{
		rec:   rec,
		queue: make(chan wizard.Event, publishQueueSize),
		done:  make(chan struct{}),
	}
	go p.run(ctx)
	return p
}

func (p *publisher) run(ctx context.Context) {
	defer close(p.done)
	for e := range p.queue {
		pubCtx, cancel := context.WithTimeout(ctx, journal.PublishTimeout)
		if err := p.rec.Record(pubCtx, e); err != nil {
			logger.Warn("Journal publish failed for %s event: %v", e.Kind, err)
		}
		cancel()
	}
}

// enqueue hands events to the publishing goroutine. Events are dropped with
// a warning when the queue is full.
func (p *publisher) enqueue(events []wizard.Event) {
	if p.closed {
		return
	}
	for _, e := range events {
		select {
		case p.queue <- e:
		default:
			logger.Warn("Journal queue full, dropping %s event", e.Kind)
		}
	}
}

// close stops accepting events and waits for the queue to drain.
func (p *publisher) close() {
	p.once.Do(func() {
		p.closed = true
		close(p.queue)
		<-p.done
	})
}
