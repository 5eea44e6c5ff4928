package domain

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Event interface {
	EventName() string
	OccurredAt() time.Time
	EventID() uuid.UUID
}

var (
	ErrInvalidEvent         = errors.New("invalid event")
	ErrInvalidEventName     = errors.New("invalid event name")
	ErrInvalidEventProducer = errors.New("invalid event producer")
)

// BaseEvent carries the metadata shared by card events. Meta must not hold
// personal data; card ids and owner references only.
type BaseEvent struct {
	Name     string
	At       time.Time
	ID       uuid.UUID
	Producer string
	Meta     map[string]string
}

var _ Event = BaseEvent{}

// NewBaseEvent stamps the event with a UTC time and a random id.
func NewBaseEvent(name, producer string, at time.Time) (BaseEvent, error) {
	name = strings.TrimSpace(name)
	producer = strings.TrimSpace(producer)

	if name == "" {
		return BaseEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventName)
	}
	if producer == "" {
		return BaseEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventProducer)
	}

	return BaseEvent{
		Name:     name,
		At:       at.UTC(),
		ID:       uuid.New(),
		Producer: producer,
	}, nil
}

// WithMeta copies the map so events derived from each other never share it.
func (e BaseEvent) WithMeta(k, v string) BaseEvent {
	k = strings.TrimSpace(k)
	if k == "" {
		return e
	}
	m := make(map[string]string, len(e.Meta)+1)
	maps.Copy(m, e.Meta)
	m[k] = strings.TrimSpace(v)
	e.Meta = m
	return e
}

func (e BaseEvent) EventName() string     { return e.Name }
func (e BaseEvent) OccurredAt() time.Time { return e.At }
func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
