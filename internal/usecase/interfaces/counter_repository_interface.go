package interfaces

import "context"

// ICounterRepository abstracts the shared counter store.
//
// Next must be a single atomic increment-and-return on the store (upsert on
// first use, starting at 1) — never a read-modify-write pair. Sync forces a
// counter to at least min; it is the repair half of the optimistic
// create-retry loop and must be a no-op when the counter is already ahead.

type ICounterRepository interface {
	Next(ctx context.Context, key string) (int64, error)
	Sync(ctx context.Context, key string, min int64) error
}
