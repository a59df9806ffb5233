package closer_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ranjan7481/Ecommerce/pkg/closer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseLIFOOrder(t *testing.T) {
	t.Parallel()

	c := closer.NewCloser(0)

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		c.Add(name, func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestCloseAggregatesErrors(t *testing.T) {
	t.Parallel()

	c := closer.NewCloser(0)
	c.Add("postgres", func(ctx context.Context) error {
		return errors.New("connection busy")
	})
	c.Add("redis", func(ctx context.Context) error {
		return nil
	})
	c.Add("kafka", func(ctx context.Context) error {
		return errors.New("flush failed")
	})

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka: flush failed")
	assert.Contains(t, err.Error(), "postgres: connection busy")
	assert.NotContains(t, err.Error(), "redis")
}

func TestCloseOnlyOnce(t *testing.T) {
	t.Parallel()

	c := closer.NewCloser(0)

	calls := 0
	c.Add("db", func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloseForcedOnCancelledContext(t *testing.T) {
	t.Parallel()

	c := closer.NewCloser(time.Second)

	var calls atomic.Int32
	for _, name := range []string{"slow", "slower"} {
		c.Add(name, func(ctx context.Context) error {
			time.Sleep(50 * time.Millisecond)
			calls.Add(1)
			return nil
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted")
	// forcedClose дожидается завершения оставшихся ресурсов
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}
