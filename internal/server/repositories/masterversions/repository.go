// Package masterversions stores the per sharing group master version: the
// counter every mutating request must assert.
package masterversions

import "context"

type Repository interface {
	// Create inserts the counter for a new sharing group at value 0.
	Create(ctx context.Context, sharingGroupID string) error
	// Current is a plain point read. Unknown or deleted groups are not found.
	Current(ctx context.Context, sharingGroupID string) (int64, error)
	// CurrentForUpdate reads the value and row-locks it for the rest of the transaction.
	CurrentForUpdate(ctx context.Context, sharingGroupID string) (int64, error)
	// Advance moves the counter from expected to expected+1 and returns the new
	// value. A mismatch yields *common.VersionStaleError.
	Advance(ctx context.Context, sharingGroupID string, expected int64) (int64, error)
}
