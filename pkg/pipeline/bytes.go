package pipeline

import (
	"context"
	"io"
	"sync"
)

// ByteStream is a bounded hand-off of opaque byte chunks, the second wire
// interface at stage boundaries next to record batches. The receive side
// doubles as an io.Reader so a codec can decode straight off the stream.
type ByteStream struct {
	ch  chan []byte
	ctx context.Context

	mu     sync.Mutex
	closed bool

	leftover []byte
}

// NewByteStream creates a byte stream bound to a run context holding at
// most capacity chunks in flight.
func NewByteStream(ctx context.Context, capacity int) *ByteStream {
	if capacity < 1 {
		capacity = 1
	}
	return &ByteStream{ch: make(chan []byte, capacity), ctx: ctx}
}

// Send hands one chunk downstream. The chunk must not be reused by the
// sender afterwards.
func (s *ByteStream) Send(ctx context.Context, chunk []byte) error {
	if len(chunk) == 0 {
		return nil
	}
	select {
	case s.ch <- chunk:
		return nil
	case <-ctx.Done():
		return ErrCancelled.Wrap(ctx.Err())
	}
}

// Close signals end of stream.
func (s *ByteStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Read implements io.Reader over the chunk sequence. It returns io.EOF
// after Close once all chunks are consumed, and the run context's error if
// the pipeline is torn down mid-read.
func (s *ByteStream) Read(p []byte) (int, error) {
	if len(s.leftover) == 0 {
		select {
		case chunk, ok := <-s.ch:
			if !ok {
				return 0, io.EOF
			}
			s.leftover = chunk
		case <-s.ctx.Done():
			return 0, ErrCancelled.Wrap(s.ctx.Err())
		}
	}
	n := copy(p, s.leftover)
	s.leftover = s.leftover[n:]
	return n, nil
}

var _ io.Reader = (*ByteStream)(nil)

// WriteTo drains the stream into w, chunk by chunk.
func (s *ByteStream) WriteTo(w io.Writer) (total int64, err error) {
	for {
		select {
		case chunk, ok := <-s.ch:
			if !ok {
				return total, nil
			}
			n, err := w.Write(chunk)
			total += int64(n)
			if err != nil {
				return total, err
			}
		case <-s.ctx.Done():
			return total, ErrCancelled.Wrap(s.ctx.Err())
		}
	}
}
