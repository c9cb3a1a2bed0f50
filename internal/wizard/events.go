package wizard

import "time"

// EventKind classifies controller events.
type EventKind string

const (
	EventStep     EventKind = "step"
	EventTransfer EventKind = "transfer"
	EventReset    EventKind = "reset"
	EventFault    EventKind = "fault"
)

// Event is emitted by the controller for every applied transition, sent
// transfer, reset and fault. Events queue inside the controller until the
// presentation layer drains them, so the controller itself never blocks on
// the journal.
type Event struct {
	Kind      EventKind
	From      Step
	To        Step
	SessionID string
	Receipt   *Receipt
	Detail    string
	At        time.Time
}

func (c *Controller) record(e Event) {
	if e.SessionID == "" {
		e.SessionID = c.sessionID
	}
	if e.At.IsZero() {
		e.At = c.opts.Now()
	}
	c.events = append(c.events, e)
}

// DrainEvents returns and clears the queued events.
func (c *Controller) DrainEvents() []Event {
	if len(c.events) == 0 {
		return nil
	}
	out := c.events
	c.events = nil
	return out
}
