package pipeline

import (
	"context"

	"github.com/apache/arrow/go/v12/arrow"
)

// Hub multiplexes one batch producer to several subscribers. Every
// subscriber sees every batch; each delivery carries its own retain, so
// subscribers release independently. The hub advances at the pace of the
// slowest subscriber, which preserves back-pressure end to end.
//
// The read path uses a hub to run schema extraction and the fold over row
// counts off the same decoded stream.
type Hub struct {
	in   *BatchStream
	subs []*BatchStream
}

// NewHub creates a hub over an input stream. Subscribers must be added
// before Run starts.
func NewHub(in *BatchStream) *Hub {
	return &Hub{in: in}
}

// Subscribe adds one subscriber with its own back-pressure window.
func (hub *Hub) Subscribe(capacity int) *BatchStream {
	sub := NewBatchStream(capacity)
	hub.subs = append(hub.subs, sub)
	return sub
}

// Run pumps the input to every subscriber until end of stream or
// cancellation. It always closes the subscribers, and on an exit with
// batches still in flight everything is released.
func (hub *Hub) Run(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	defer func() {
		for _, sub := range hub.subs {
			sub.Close()
		}
		if err != nil {
			hub.in.Drain()
			for _, sub := range hub.subs {
				sub.Drain()
			}
		}
	}()

	if len(hub.subs) == 0 {
		return Error.New("hub has no subscribers")
	}

	for {
		batch, ok, err := hub.in.Recv(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		for _, sub := range hub.subs {
			batch.Retain()
			if err := sub.Send(ctx, batch); err != nil {
				batch.Release()
				return err
			}
		}
		batch.Release()
	}
}

// First consumes a stream and returns its first batch, releasing the rest.
// The caller owns the returned batch. ok is false for an empty stream.
func First(ctx context.Context, in *BatchStream) (first arrow.Record, ok bool, err error) {
	for {
		batch, open, err := in.Recv(ctx)
		if err != nil {
			if first != nil {
				first.Release()
			}
			return nil, false, err
		}
		if !open {
			return first, first != nil, nil
		}
		if first == nil {
			first = batch
			continue
		}
		batch.Release()
	}
}

// Fold reduces a stream batch by batch. The fold function borrows each
// batch for the duration of the call, Fold releases it afterwards.
func Fold[A any](ctx context.Context, in *BatchStream, acc A, fn func(A, arrow.Record) (A, error)) (A, error) {
	for {
		batch, ok, err := in.Recv(ctx)
		if err != nil {
			return acc, err
		}
		if !ok {
			return acc, nil
		}
		acc, err = fn(acc, batch)
		batch.Release()
		if err != nil {
			return acc, err
		}
	}
}

// Map transforms a stream batch by batch into an output stream. The map
// function takes ownership of its input and returns a batch the stage then
// owns. Map closes out on completion.
func Map(ctx context.Context, in, out *BatchStream, fn func(arrow.Record) (arrow.Record, error)) error {
	defer out.Close()
	for {
		batch, ok, err := in.Recv(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		mapped, err := fn(batch)
		if err != nil {
			return err
		}
		if err := out.Send(ctx, mapped); err != nil {
			return err
		}
	}
}
