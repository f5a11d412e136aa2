package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dartsops/darts_management_app/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result, err := retry.Do(context.Background(), retry.Policy{Attempts: 3}, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	result, err := retry.Do(context.Background(), retry.Policy{Attempts: 3}, func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	sentinel := errors.New("still down")
	_, err := retry.Do(context.Background(), retry.Policy{Attempts: 4}, func(ctx context.Context) (int, error) {
		calls++
		return 0, sentinel
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 4, calls)
}

func TestDo_AtLeastOneAttempt(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), retry.Policy{Attempts: 0}, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("nope")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := retry.Do(ctx, retry.Policy{Attempts: 5, Backoff: time.Second}, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("transient")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
