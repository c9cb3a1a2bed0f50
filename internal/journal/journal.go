// Package journal records kiosk activity (step transitions, sent transfers,
// resets and faults) on an embedded NATS JetStream stream. The stream uses
// memory storage: nothing is kept once the process exits.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/remitkiosk/internal/logger"
	"github.com/mark3labs/remitkiosk/internal/wizard"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName    = "remitkiosk_events"
	subjectPrefix = "kiosk"

	// PublishTimeout bounds a single publish issued from the UI.
	PublishTimeout = 2 * time.Second
)

// Recorder accepts wizard events. Implementations must be safe to call from
// multiple goroutines.
type Recorder interface {
	Record(ctx context.Context, e wizard.Event) error
}

// Nop is a Recorder that discards every event. Used when the journal is
// disabled.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(context.Context, wizard.Event) error { return nil }

// Entry is the JSON document stored for each event.
type Entry struct {
	Seq            uint64    `json:"-"`
	Kiosk          string    `json:"kiosk"`
	Type           string    `json:"type"`
	Session        string    `json:"session,omitempty"`
	From           string    `json:"from,omitempty"`
	To             string    `json:"to,omitempty"`
	Detail         string    `json:"detail,omitempty"`
	Reference      string    `json:"reference,omitempty"`
	BeneficiaryID  string    `json:"beneficiary_id,omitempty"`
	Amount         string    `json:"amount,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	ReceiverGets   string    `json:"receiver_gets,omitempty"`
	TargetCurrency string    `json:"target_currency,omitempty"`
	At             time.Time `json:"at"`
}

// SubjectToken turns a kiosk id into a NATS subject token.
// Example: "MUSCAT-772" -> "muscat-772".
func SubjectToken(kioskID string) string {
	token := slug.Make(kioskID)
	if token == "" {
		return "unknown"
	}
	return token
}

// SubjectForEvent returns the subject for an event type on a kiosk.
// Example: "kiosk.muscat-772.transfer"
func SubjectForEvent(kioskID, eventType string) string {
	return fmt.Sprintf("%s.%s.%s", subjectPrefix, SubjectToken(kioskID), eventType)
}

// SubjectForKiosk returns the wildcard subject for all events of a kiosk.
func SubjectForKiosk(kioskID string) string {
	return fmt.Sprintf("%s.%s.>", subjectPrefix, SubjectToken(kioskID))
}

// NewEntry converts a wizard event into its journal form.
func NewEntry(kioskID string, e wizard.Event) Entry {
	entry := Entry{
		Kiosk:   kioskID,
		Type:    string(e.Kind),
		Session: e.SessionID,
		From:    e.From.String(),
		To:      e.To.String(),
		Detail:  e.Detail,
		At:      e.At,
	}
	if r := e.Receipt; r != nil {
		s := r.Summary
		entry.Reference = r.Reference
		entry.BeneficiaryID = s.Beneficiary.ID
		entry.Amount = s.Amount.StringFixed(3)
		entry.Currency = s.BaseCurrency
		entry.ReceiverGets = s.ReceiverGets.StringFixed(2)
		entry.TargetCurrency = s.Beneficiary.Currency
	}
	if entry.At.IsZero() {
		entry.At = time.Now()
	}
	return entry
}

// Options configures Open.
type Options struct {
	KioskID string
	// StoreDir is handed to the embedded server. Streams use memory storage
	// so only server metadata lands here.
	StoreDir string
}

// Journal is an embedded NATS server plus the stream kiosk events go to.
type Journal struct {
	kioskID string
	ns      *server.Server
	nc      *nats.Conn
	js      jetstream.JetStream
	stream  jetstream.Stream
}

// Open starts the embedded server and creates the event stream.
func Open(ctx context.Context, opts Options) (*Journal, error) {
	ns, err := startServer(opts.KioskID, opts.StoreDir)
	if err != nil {
		return nil, fmt.Errorf("starting journal server: %w", err)
	}

	nc, js, err := dial(ns)
	if err != nil {
		_ = shutdown(nil, ns)
		return nil, fmt.Errorf("connecting to journal server: %w", err)
	}

	stream, err := setupStream(ctx, js)
	if err != nil {
		_ = shutdown(nc, ns)
		return nil, fmt.Errorf("creating journal stream: %w", err)
	}

	logger.Info("Journal ready: stream=%s subjects=%s", streamName, SubjectForKiosk(opts.KioskID))
	return &Journal{
		kioskID: opts.KioskID,
		ns:      ns,
		nc:      nc,
		js:      js,
		stream:  stream,
	}, nil
}

func setupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{subjectPrefix + ".>"},
		Storage:  jetstream.MemoryStorage,
		MaxMsgs:  10000,
	})
}

// Record publishes one wizard event.
func (j *Journal) Record(ctx context.Context, e wizard.Event) error {
	_, err := j.Publish(ctx, NewEntry(j.kioskID, e))
	return err
}

// Publish appends an entry to the stream.
func (j *Journal) Publish(ctx context.Context, entry Entry) (*jetstream.PubAck, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal journal entry: %w", err)
	}

	subject := SubjectForEvent(entry.Kiosk, entry.Type)
	ack, err := j.js.Publish(ctx, subject, data)
	if err != nil {
		logger.Error("Failed to publish journal entry to %s: %v", subject, err)
		return nil, fmt.Errorf("failed to publish journal entry: %w", err)
	}

	logger.Debug("Journal entry published: subject=%s seq=%d", subject, ack.Sequence)
	return ack, nil
}

// Load replays every entry recorded for a kiosk, oldest first. Malformed
// entries are skipped with a warning.
func (j *Journal) Load(ctx context.Context, kioskID string) ([]Entry, error) {
	consumer, err := j.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: SubjectForKiosk(kioskID),
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}
	name := consumer.CachedInfo().Name
	defer func() {
		if err := j.stream.DeleteConsumer(context.WithoutCancel(ctx), name); err != nil {
			logger.Warn("Failed to delete journal replay consumer %s: %v", name, err)
		}
	}()

	const batchSize = 500
	var entries []Entry
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		count := 0
		for msg := range msgs.Messages() {
			count++
			var entry Entry
			meta, _ := msg.Metadata()
			if err := json.Unmarshal(msg.Data(), &entry); err != nil {
				if meta != nil {
					logger.Warn("Skipping malformed journal entry (seq=%d): %v", meta.Sequence.Stream, err)
				}
				_ = msg.Ack()
				continue
			}
			if meta != nil {
				entry.Seq = meta.Sequence.Stream
			}
			entries = append(entries, entry)
			_ = msg.Ack()
		}

		if count < batchSize {
			break
		}
	}

	logger.Debug("Journal loaded: kiosk=%s entries=%d", kioskID, len(entries))
	return entries, nil
}

// Close drains the connection and stops the embedded server.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return shutdown(j.nc, j.ns)
}
