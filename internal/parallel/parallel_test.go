package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Run(t *testing.T) {
	p := NewPool(DefaultConfig())
	defer p.Close()

	var counter int64
	n := 1000
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = func() error {
			atomic.AddInt64(&counter, 1)
			return nil
		}
	}

	require.NoError(t, p.Run(context.Background(), tasks))

	// Run is a barrier: every task has finished when it returns.
	assert.Equal(t, int64(n), atomic.LoadInt64(&counter))
}

func TestPool_RunError(t *testing.T) {
	p := NewPool(Config{Workers: 2})
	defer p.Close()

	boom := errors.New("boom")
	var finished int64
	tasks := []Task{
		func() error { atomic.AddInt64(&finished, 1); return nil },
		func() error { atomic.AddInt64(&finished, 1); return boom },
		func() error { atomic.AddInt64(&finished, 1); return nil },
	}

	err := p.Run(context.Background(), tasks)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(3), atomic.LoadInt64(&finished))
}

func TestPool_RunCancelled(t *testing.T) {
	p := NewPool(Config{Workers: 1})
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int64
	err := p.Run(ctx, []Task{func() error { atomic.AddInt64(&ran, 1); return nil }})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt64(&ran))
}

func TestPool_Submit(t *testing.T) {
	p := NewPool(Config{Workers: 4})
	defer p.Close()
	assert.Equal(t, 4, p.Workers())

	results := make([]int, 16)
	futures := make([]*Future, len(results))
	for i := range results {
		futures[i] = p.Submit(func() error {
			results[i] = i * i
			return nil
		})
	}
	for _, f := range futures {
		require.NoError(t, f.Wait())
	}
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
}

func TestPool_Close(t *testing.T) {
	p := NewPool(Config{})
	assert.Equal(t, DefaultConfig().Workers, p.Workers())

	p.Close()
	p.Close()

	err := p.Submit(func() error { return nil }).Wait()
	assert.ErrorIs(t, err, ErrClosed)
}

func BenchmarkPool_Run(b *testing.B) {
	p := NewPool(DefaultConfig())
	defer p.Close()

	tasks := make([]Task, 8)
	for i := range tasks {
		tasks[i] = func() error { return nil }
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Run(context.Background(), tasks)
	}
}
