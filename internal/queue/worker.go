package queue

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Handler is called for every event the worker pops
type Handler func(ctx context.Context, event MovementEvent)

// LogHandler writes each event to the standard logger
func LogHandler(_ context.Context, event MovementEvent) {
	log.Printf("Movement %s: %s %s %s at %s",
		event.ID, event.Kind, event.Username, event.Amount, event.At.Format(time.RFC3339))
}

// Worker consumes events from the queue
type Worker struct {
	client  ListClient
	handler Handler
	stopCh  chan struct{}
}

// NewWorker creates a new Worker
func NewWorker(client ListClient, handler Handler) *Worker {
	return &Worker{
		client:  client,
		handler: handler,
		stopCh:  make(chan struct{}),
	}
}

// Start begins consuming events from the queue
// This runs in a loop until Stop() is called or ctx is cancelled
func (w *Worker) Start(ctx context.Context) {
	log.Println("Worker started, listening for movements...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Worker stopping due to context cancellation")
			return
		case <-w.stopCh:
			log.Println("Worker stopping due to stop signal")
			return
		default:
			// Block up to 5 seconds, then loop to check for stop signal
			result, err := w.client.BLPop(ctx, 5*time.Second, QueueName).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}
				if ctx.Err() != nil {
					return
				}
				log.Printf("Error reading from queue: %v", err)
				time.Sleep(1 * time.Second)
				continue
			}

			// result[0] is the queue name, result[1] is the message
			if len(result) < 2 {
				continue
			}

			w.processMessage(ctx, result[1])
		}
	}
}

// Stop signals the worker to stop processing
func (w *Worker) Stop() {
	close(w.stopCh)
}

func (w *Worker) processMessage(ctx context.Context, data string) {
	event, err := decodeEvent(data)
	if err != nil {
		log.Printf("Dropping message: %v", err)
		return
	}

	w.handler(ctx, event)
}

// ProcessOne processes a single event without blocking.
// It reports false when the queue was empty.
func (w *Worker) ProcessOne(ctx context.Context) (bool, error) {
	result, err := w.client.LPop(ctx, QueueName).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	w.processMessage(ctx, result)
	return true, nil
}

// Drain processes queued events until the queue is empty and returns how
// many it popped
func (w *Worker) Drain(ctx context.Context) (int, error) {
	n := 0
	for {
		ok, err := w.ProcessOne(ctx)
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}
