package pool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"randkey/internal/pool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PreservesOrder(t *testing.T) {
	got, err := pool.Map(context.Background(), 4, 100, func(_ context.Context, i int) (int, error) {
		return i * i, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 100)

	for i, v := range got {
		assert.Equal(t, i*i, v)
	}
}

func TestMap_Empty(t *testing.T) {
	got, err := pool.Map(context.Background(), 2, 0, func(context.Context, int) (string, error) {
		t.Fatal("fn must not be called")
		return "", nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMap_RespectsLimit(t *testing.T) {
	const limit = 3
	var inFlight, peak atomic.Int32

	_, err := pool.Map(context.Background(), limit, 50, func(context.Context, int) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		inFlight.Add(-1)
		return struct{}{}, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(limit))
}

func TestMap_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")

	got, err := pool.Map(context.Background(), 2, 10, func(_ context.Context, i int) (int, error) {
		if i == 5 {
			return 0, boom
		}
		return i, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestMap_CancelledParent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.Map(ctx, 2, 10, func(context.Context, int) (int, error) {
		return 1, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMap_DefaultLimit(t *testing.T) {
	got, err := pool.Map(context.Background(), 0, 3, func(_ context.Context, i int) (int, error) {
		return i, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Positive(t, pool.DefaultWorkers())
}

func TestEach_VisitsEveryIndex(t *testing.T) {
	seen := make([]atomic.Bool, 64)

	err := pool.Each(context.Background(), 4, len(seen), func(_ context.Context, i int) error {
		seen[i].Store(true)
		return nil
	})
	require.NoError(t, err)

	for i := range seen {
		assert.True(t, seen[i].Load(), "index %d", i)
	}
}

func TestEach_ReturnsError(t *testing.T) {
	boom := errors.New("boom")

	err := pool.Each(context.Background(), 2, 10, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}
