package interfaces

import (
	"context"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
)

// IHotspotRepository stores diagram hotspots in creation order.
type IHotspotRepository interface {
	Create(ctx context.Context, h entities.Hotspot) (entities.Hotspot, error)
	List(ctx context.Context) ([]entities.Hotspot, error)
}

// IDiagramRepository keeps the public path of the current diagram image.
// GetImagePath returns "" when no image was uploaded yet.
type IDiagramRepository interface {
	GetImagePath(ctx context.Context) (string, error)
	SetImagePath(ctx context.Context, path string) error
}
