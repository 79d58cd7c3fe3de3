package pipeline

import (
	"context"
	"sync"

	"github.com/apache/arrow/go/v12/arrow"
)

// BatchStream is a bounded hand-off of record batches between two stages.
// Sending transfers ownership: the sender must not touch the batch after a
// successful Send, the receiver releases it when done. The channel bound is
// the back-pressure window.
type BatchStream struct {
	ch chan arrow.Record

	mu     sync.Mutex
	closed bool
}

// NewBatchStream creates a stream holding at most capacity batches in
// flight.
func NewBatchStream(capacity int) *BatchStream {
	if capacity < 1 {
		capacity = 1
	}
	return &BatchStream{ch: make(chan arrow.Record, capacity)}
}

// Send hands one batch downstream, blocking while the window is full. On
// cancellation the batch is released so no buffer leaks on teardown.
func (s *BatchStream) Send(ctx context.Context, batch arrow.Record) error {
	select {
	case s.ch <- batch:
		return nil
	case <-ctx.Done():
		batch.Release()
		return ErrCancelled.Wrap(ctx.Err())
	}
}

// Close signals end of stream. Safe to call once per producer.
func (s *BatchStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Recv takes the next batch. ok is false at end of stream. The caller owns
// the returned batch and must release it.
func (s *BatchStream) Recv(ctx context.Context) (batch arrow.Record, ok bool, err error) {
	select {
	case batch, ok = <-s.ch:
		return batch, ok, nil
	case <-ctx.Done():
		return nil, false, ErrCancelled.Wrap(ctx.Err())
	}
}

// Chan exposes the receive side for range loops in combinators.
func (s *BatchStream) Chan() <-chan arrow.Record { return s.ch }

// Drain releases every batch still queued. Producers call it after an
// error so that buffered batches do not leak.
func (s *BatchStream) Drain() {
	for {
		select {
		case batch, ok := <-s.ch:
			if !ok {
				return
			}
			batch.Release()
		default:
			return
		}
	}
}
