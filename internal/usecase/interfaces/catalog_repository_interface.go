package interfaces

import (
	"context"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
)

// ICatalogRepository serves read-only parts and services reference data.
// GetPartByID returns a zero-value Part (ID == "") when the id is unknown.
type ICatalogRepository interface {
	GetPartByID(ctx context.Context, id string) (entities.Part, error)
	ListParts(ctx context.Context) ([]entities.Part, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
}
