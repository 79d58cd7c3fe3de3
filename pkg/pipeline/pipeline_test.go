package pipeline_test

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"tracd.io/tracd/pkg/pipeline"
)

var testSchema = arrow.NewSchema([]arrow.Field{
	{Name: "n", Type: arrow.PrimitiveTypes.Int64},
}, nil)

func makeBatch(t *testing.T, alloc memory.Allocator, values ...int64) arrow.Record {
	builder := array.NewRecordBuilder(alloc, testSchema)
	defer builder.Release()
	builder.Field(0).(*array.Int64Builder).AppendValues(values, nil)
	return builder.NewRecord()
}

func TestBackPressureOrdering(t *testing.T) {
	alloc := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer alloc.AssertSize(t, 0)

	ec := pipeline.NewExecutionContext(context.Background(), alloc)
	stream := pipeline.NewBatchStream(1)

	const batches = 20
	ec.Go(func(ctx context.Context) error {
		defer stream.Close()
		for i := 0; i < batches; i++ {
			if err := stream.Send(ctx, makeBatch(t, alloc, int64(i))); err != nil {
				return err
			}
		}
		return nil
	})

	var got []int64
	ec.Go(func(ctx context.Context) error {
		for {
			batch, ok, err := stream.Recv(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			col := batch.Column(0).(*array.Int64)
			got = append(got, col.Value(0))
			batch.Release()
		}
	})

	require.NoError(t, ec.Wait())
	require.Len(t, got, batches)
	for i, v := range got {
		assert.Equal(t, int64(i), v)
	}
}

func TestSingleTerminalError(t *testing.T) {
	alloc := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer alloc.AssertSize(t, 0)

	ec := pipeline.NewExecutionContext(context.Background(), alloc)
	stream := pipeline.NewBatchStream(1)
	boom := errs.New("decoder blew up")

	ec.Go(func(ctx context.Context) error {
		defer stream.Close()
		for i := 0; ; i++ {
			if err := stream.Send(ctx, makeBatch(t, alloc, int64(i))); err != nil {
				stream.Drain()
				return err
			}
		}
	})
	ec.Go(func(ctx context.Context) error {
		batch, ok, err := stream.Recv(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		batch.Release()
		return boom
	})

	err := ec.Wait()
	require.Error(t, err)
	// the consumer error wins, the producer's cancellation is not reported
	assert.ErrorIs(t, err, boom)
	stream.Drain()
}

func TestCancellationReleasesBuffers(t *testing.T) {
	alloc := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer alloc.AssertSize(t, 0)

	ec := pipeline.NewExecutionContext(context.Background(), alloc)
	stream := pipeline.NewBatchStream(2)

	started := make(chan struct{})
	ec.Go(func(ctx context.Context) error {
		defer stream.Close()
		defer stream.Drain()
		close(started)
		for i := 0; ; i++ {
			if err := stream.Send(ctx, makeBatch(t, alloc, int64(i))); err != nil {
				return err
			}
		}
	})

	<-started
	time.Sleep(10 * time.Millisecond)
	ec.Cancel()

	err := ec.Wait()
	require.Error(t, err)
	assert.True(t, pipeline.ErrCancelled.Has(err))
	stream.Drain()
}

func TestHubFanOutWithFirstAndFold(t *testing.T) {
	alloc := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer alloc.AssertSize(t, 0)

	ec := pipeline.NewExecutionContext(context.Background(), alloc)
	in := pipeline.NewBatchStream(1)
	hub := pipeline.NewHub(in)
	firstSub := hub.Subscribe(1)
	foldSub := hub.Subscribe(1)

	ec.Go(func(ctx context.Context) error {
		defer in.Close()
		for i := 0; i < 5; i++ {
			if err := in.Send(ctx, makeBatch(t, alloc, int64(i), int64(i))); err != nil {
				return err
			}
		}
		return nil
	})
	ec.Go(hub.Run)

	var firstValue atomic.Int64
	ec.Go(func(ctx context.Context) error {
		first, ok, err := pipeline.First(ctx, firstSub)
		if err != nil {
			return err
		}
		if !ok {
			return errs.New("empty stream")
		}
		defer first.Release()
		firstValue.Store(first.Column(0).(*array.Int64).Value(0))
		return nil
	})

	var rows atomic.Int64
	ec.Go(func(ctx context.Context) error {
		total, err := pipeline.Fold(ctx, foldSub, int64(0),
			func(acc int64, batch arrow.Record) (int64, error) {
				return acc + batch.NumRows(), nil
			})
		rows.Store(total)
		return err
	})

	require.NoError(t, ec.Wait())
	assert.Equal(t, int64(0), firstValue.Load())
	assert.Equal(t, int64(10), rows.Load())
}

func TestMap(t *testing.T) {
	alloc := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer alloc.AssertSize(t, 0)

	ec := pipeline.NewExecutionContext(context.Background(), alloc)
	in := pipeline.NewBatchStream(1)
	out := pipeline.NewBatchStream(1)

	ec.Go(func(ctx context.Context) error {
		defer in.Close()
		return in.Send(ctx, makeBatch(t, alloc, 1, 2, 3))
	})
	ec.Go(func(ctx context.Context) error {
		return pipeline.Map(ctx, in, out, func(batch arrow.Record) (arrow.Record, error) {
			defer batch.Release()
			// keep only the first row
			return batch.NewSlice(0, 1), nil
		})
	})

	var rows int64
	ec.Go(func(ctx context.Context) error {
		total, err := pipeline.Fold(ctx, out, int64(0),
			func(acc int64, batch arrow.Record) (int64, error) {
				return acc + batch.NumRows(), nil
			})
		rows = total
		return err
	})

	require.NoError(t, ec.Wait())
	assert.Equal(t, int64(1), rows)
}

func TestByteStreamReader(t *testing.T) {
	ctx := context.Background()
	stream := pipeline.NewByteStream(ctx, 4)

	go func() {
		_ = stream.Send(ctx, []byte("hello "))
		_ = stream.Send(ctx, []byte("world"))
		stream.Close()
	}()

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestByteStreamCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stream := pipeline.NewByteStream(ctx, 1)
	cancel()

	buf := make([]byte, 8)
	_, err := stream.Read(buf)
	require.Error(t, err)
	assert.True(t, pipeline.ErrCancelled.Has(err))
}
