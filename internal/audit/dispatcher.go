package audit

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
)

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher hands audit events to a sink on a background worker so that a
// slow or failing sink never delays a request.
type Dispatcher struct {
	sink  Sink
	log   *slog.Logger
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error("audit write failed", "error", err, "action", ev.Action, "entity", ev.Entity)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue: drop rather than block the request
		d.log.Warn("audit queue full, dropping event", "action", ev.Action, "entity", ev.Entity)
	}
}

// Close drains pending events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Observe records an inventory mutation.
func (d *Dispatcher) Observe(_ context.Context, ev inventory.Event) {
	out := Event{
		Actor:    ev.Actor,
		Action:   strings.ToLower(ev.Kind) + "_" + ev.Action,
		Entity:   strings.ToLower(ev.Kind),
		EntityID: ev.ID,
	}
	if ev.Status != "" {
		out.Metadata = map[string]string{"status": ev.Status}
	}
	d.Dispatch(out)
}

var _ inventory.Observer = (*Dispatcher)(nil)
