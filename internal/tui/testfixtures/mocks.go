package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/remitkiosk/internal/wizard"
)

// MockRecorder is a thread-safe journal.Recorder that keeps every event.
type MockRecorder struct {
	mu sync.Mutex

	events []wizard.Event
	// Err is returned from Record when set.
	Err error
}

// NewMockRecorder creates an empty MockRecorder.
func NewMockRecorder() *MockRecorder {
	return &MockRecorder{}
}

// Record implements journal.Recorder.
func (m *MockRecorder) Record(_ context.Context, e wizard.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return m.Err
}

// Events returns a copy of the recorded events.
func (m *MockRecorder) Events() []wizard.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]wizard.Event, len(m.events))
	copy(out, m.events)
	return out
}

// Kinds returns the kinds of the recorded events in order.
func (m *MockRecorder) Kinds() []wizard.EventKind {
	events := m.Events()
	kinds := make([]wizard.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}
