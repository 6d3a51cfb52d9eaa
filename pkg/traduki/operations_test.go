package traduki_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduki-io/traduki/pkg/traduki"
)

func TestPollOperation_FinishesAfterProgress(t *testing.T) {
	statuses := []traduki.OperationStatus{
		traduki.OperationCreated,
		traduki.OperationInProgress,
		traduki.OperationFinished,
	}
	calls := 0

	fetch := func(ctx context.Context) (*traduki.Operation, error) {
		status := statuses[calls]
		calls++

		return &traduki.Operation{Identifier: "build-7", Status: status}, nil
	}

	op, err := traduki.PollOperation(context.Background(), fetch, &traduki.PollOptions{
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, traduki.OperationFinished, op.Status)
	assert.Equal(t, 3, calls)
}

func TestPollOperation_FailedStatus(t *testing.T) {
	fetch := func(ctx context.Context) (*traduki.Operation, error) {
		return &traduki.Operation{Identifier: "export-1", Status: traduki.OperationFailed}, nil
	}

	op, err := traduki.PollOperation(context.Background(), fetch, &traduki.PollOptions{
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, traduki.ErrOperationFailed)
	assert.Contains(t, err.Error(), "export-1")
	assert.NotNil(t, op)
}

func TestPollOperation_Timeout(t *testing.T) {
	fetch := func(ctx context.Context) (*traduki.Operation, error) {
		return &traduki.Operation{Identifier: "stuck", Status: traduki.OperationInProgress}, nil
	}

	_, err := traduki.PollOperation(context.Background(), fetch, &traduki.PollOptions{
		Interval: 5 * time.Millisecond,
		Timeout:  20 * time.Millisecond,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, traduki.ErrOperationPollTimedOut)
}

func TestPollOperation_FetchError(t *testing.T) {
	fetch := func(ctx context.Context) (*traduki.Operation, error) {
		return nil, traduki.NewTransportError("connection refused")
	}

	_, err := traduki.PollOperation(context.Background(), fetch, &traduki.PollOptions{
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking operation status")
}

func TestOperationStatus_Terminal(t *testing.T) {
	assert.False(t, traduki.OperationCreated.Terminal())
	assert.False(t, traduki.OperationInProgress.Terminal())
	assert.True(t, traduki.OperationFinished.Terminal())
	assert.True(t, traduki.OperationFailed.Terminal())
	assert.True(t, traduki.OperationCanceled.Terminal())
}
