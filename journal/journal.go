// Package journal persists ledger announcements as an append-only,
// compressed record stream. It implements the ledger's announcement sink;
// records are written by a background goroutine so that announcing never
// blocks an operation on storage.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0xsoniclabs/tracy"
	"github.com/golang/snappy"

	"github.com/tokenlabs/multitoken/common/future"
	"github.com/tokenlabs/multitoken/ledger"
)

// Journal is an append-only event journal backed by a Store. It is an
// asynchronous sink: Announce enqueues, a background writer appends.
// Write errors are collected and surfaced on the next Flush or Close.
type Journal struct {
	commands chan<- command
	done     <-chan struct{}
	store    Store
}

type command struct {
	record []byte                 // < record to append
	flush  *future.Promise[error] // < flush request to acknowledge
}

// Open starts a journal on the given store, continuing after the highest
// sequence number already present.
func Open(store Store) (*Journal, error) {
	seq, err := store.NextSeq()
	if err != nil {
		return nil, fmt.Errorf("failed to determine journal position: %w", err)
	}

	commands := make(chan command, 1024)
	done := make(chan struct{})

	go func() {
		defer close(done)
		var issues []error
		extraIssues := 0
		for command := range commands {
			if command.record != nil {
				zone := tracy.ZoneBegin("journal::append")
				err := store.Append(seq, command.record)
				zone.End()
				if err != nil {
					if len(issues) < 10 {
						issues = append(issues, fmt.Errorf("record %d: %w", seq, err))
					} else {
						extraIssues++
					}
				}
				seq++
			} else if command.flush != nil {
				if extraIssues > 0 {
					issues = append(issues, fmt.Errorf("%d additional errors truncated", extraIssues))
					extraIssues = 0
				}
				command.flush.Fulfill(errors.Join(issues...))
				issues = issues[:0]
			}
		}
	}()

	return &Journal{
		commands: commands,
		done:     done,
		store:    store,
	}, nil
}

// Announce implements ledger.Announcer. The record is enqueued for the
// background writer; an event that cannot be encoded is dropped, since
// sink failures are not modeled as operation failures.
func (j *Journal) Announce(event ledger.Event) {
	record, err := encode(event)
	if err != nil {
		return
	}
	j.commands <- command{record: record}
}

// Flush waits until all previously announced events are written and
// returns any write errors collected since the last flush.
func (j *Journal) Flush() error {
	promise, fut := future.Create[error]()
	j.commands <- command{flush: &promise}
	return fut.Await()
}

// Close flushes, stops the background writer, and closes the store.
func (j *Journal) Close() error {
	flushErr := j.Flush()
	close(j.commands)
	<-j.done
	return errors.Join(flushErr, j.store.Close())
}

// envelope is the persisted record layout: a kind discriminator and the
// JSON payload of the corresponding event type.
type envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

const (
	kindTransferSingle = "TransferSingle"
	kindTransferBatch  = "TransferBatch"
	kindApprovalForAll = "ApprovalForAll"
	kindURI            = "URI"
)

func encode(event ledger.Event) ([]byte, error) {
	var kind string
	switch event.(type) {
	case ledger.TransferSingle:
		kind = kindTransferSingle
	case ledger.TransferBatch:
		kind = kindTransferBatch
	case ledger.ApprovalForAll:
		kind = kindApprovalForAll
	case ledger.URI:
		kind = kindURI
	default:
		return nil, fmt.Errorf("unsupported event type %T", event)
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(envelope{Kind: kind, Payload: payload})
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, raw), nil
}

func decode(record []byte) (ledger.Event, error) {
	raw, err := snappy.Decode(nil, record)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress record: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode record envelope: %w", err)
	}
	switch env.Kind {
	case kindTransferSingle:
		var event ledger.TransferSingle
		err = json.Unmarshal(env.Payload, &event)
		return event, err
	case kindTransferBatch:
		var event ledger.TransferBatch
		err = json.Unmarshal(env.Payload, &event)
		return event, err
	case kindApprovalForAll:
		var event ledger.ApprovalForAll
		err = json.Unmarshal(env.Payload, &event)
		return event, err
	case kindURI:
		var event ledger.URI
		err = json.Unmarshal(env.Payload, &event)
		return event, err
	default:
		return nil, fmt.Errorf("unknown record kind %q", env.Kind)
	}
}

// Events reads all records of a store in sequence order.
func Events(store Store) ([]ledger.Event, error) {
	var events []ledger.Event
	err := store.ForEach(func(seq uint64, record []byte) error {
		event, err := decode(record)
		if err != nil {
			return fmt.Errorf("record %d: %w", seq, err)
		}
		events = append(events, event)
		return nil
	})
	return events, err
}
