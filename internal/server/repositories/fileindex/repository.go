// Package fileindex stores the committed state of every file in a sharing
// group. Rows are soft-deleted only.
package fileindex

import (
	"context"

	"github.com/dmitrijs2005/syncserver/internal/server/models"
)

type Repository interface {
	Lookup(ctx context.Context, sharingGroupID, fileID string) (*models.FileIndex, error)
	ListForSharingGroup(ctx context.Context, sharingGroupID string) ([]*models.FileIndex, error)
	Insert(ctx context.Context, f *models.FileIndex) error
	// Update overwrites the mutable columns of f's row, provided the stored
	// file version still equals expectedVersion.
	Update(ctx context.Context, f *models.FileIndex, expectedVersion int64) error
}
