// Package sweeper runs background checks over the ledger between user requests.
package sweeper

import (
	"context"
)

// Sweeper is a long-running background task that repeats a check until it is stopped
type Sweeper interface {
	// Start runs sweep cycles until ctx is canceled or Stop is called. It blocks.
	Start(ctx context.Context) error

	// Stop asks the loop to exit and waits for the cycle in progress to finish,
	// or for ctx to expire
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
