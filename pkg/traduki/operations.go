package traduki

import (
	"context"
	"fmt"
	"time"

	"github.com/traduki-io/traduki/internal/constants"
)

// PollOptions tunes PollOperation.
type PollOptions struct {
	// Interval between status checks. Defaults to DefaultPollInterval.
	Interval time.Duration

	// Timeout bounds the total wait. Defaults to DefaultPollTimeout.
	Timeout time.Duration
}

// PollOperation polls fetch until the operation reaches a terminal status.
// It returns the final operation on success, ErrOperationFailed when the
// server reports failure or cancellation, and ErrOperationPollTimedOut when
// the deadline passes first.
func PollOperation(ctx context.Context, fetch func(ctx context.Context) (*Operation, error), opts *PollOptions) (*Operation, error) {
	interval := constants.DefaultPollInterval
	timeout := constants.DefaultPollTimeout

	if opts != nil {
		if opts.Interval > 0 {
			interval = opts.Interval
		}

		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		op, err := fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("checking operation status: %w", err)
		}

		if op.Status.Terminal() {
			if op.Status != OperationFinished {
				return op, fmt.Errorf("%w: %s is %s", ErrOperationFailed, op.Identifier, op.Status)
			}

			return op, nil
		}

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return op, fmt.Errorf("%w: %s", ErrOperationPollTimedOut, op.Identifier)
			}

			return op, ctx.Err()
		case <-ticker.C:
		}
	}
}
