package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// QueueName is the Redis list key for movement events
	QueueName = "bankify:movements"
)

// EventKind describes what produced a movement event
type EventKind string

const (
	EventKindTransferOut EventKind = "transfer_out"
	EventKindTransferIn  EventKind = "transfer_in"
	EventKindLoan        EventKind = "loan"
	EventKindClosure     EventKind = "closure"
)

// MovementEvent is the message published to the queue
type MovementEvent struct {
	ID       uuid.UUID       `json:"id"`
	Kind     EventKind       `json:"kind"`
	Username string          `json:"username"`
	Amount   decimal.Decimal `json:"amount"`
	At       time.Time       `json:"at"`
}

// NewMovementEvent creates an event with a fresh ID
func NewMovementEvent(kind EventKind, username string, amount decimal.Decimal, at time.Time) MovementEvent {
	return MovementEvent{
		ID:       uuid.New(),
		Kind:     kind,
		Username: username,
		Amount:   amount,
		At:       at,
	}
}

// ListClient is the part of *redis.Client the feed uses
type ListClient interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LLen(ctx context.Context, key string) *redis.IntCmd
	LPop(ctx context.Context, key string) *redis.StringCmd
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// Publisher handles publishing events to Redis
type Publisher struct {
	client ListClient
}

// NewPublisher creates a new Publisher
func NewPublisher(client ListClient) *Publisher {
	return &Publisher{client: client}
}

// PublishMovement publishes an event to the feed
func (p *Publisher) PublishMovement(ctx context.Context, event MovementEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	// RPUSH keeps the list FIFO for BLPOP consumers
	if err := p.client.RPush(ctx, QueueName, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to queue: %w", err)
	}

	return nil
}

// QueueLength returns the current number of events in the queue
func (p *Publisher) QueueLength(ctx context.Context) (int64, error) {
	return p.client.LLen(ctx, QueueName).Result()
}

func encodeEvent(event MovementEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, nil
}

func decodeEvent(data string) (MovementEvent, error) {
	var event MovementEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return MovementEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return event, nil
}
