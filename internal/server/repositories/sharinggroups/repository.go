// Package sharinggroups persists sharing groups, the namespaces that own a
// master version and a commit lock.
package sharinggroups

import (
	"context"

	"github.com/dmitrijs2005/syncserver/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, name string) (*models.SharingGroup, error)
	Get(ctx context.Context, id string) (*models.SharingGroup, error)
	MarkDeleted(ctx context.Context, id string) error
}
