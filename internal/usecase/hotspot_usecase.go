package usecase

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"
	"github.com/kuntarvishnuprasad41/sparelab-epc/pkg/logger"

	"github.com/google/uuid"
)

// CreateHotspotInput is a hotspot as submitted by the admin screen. Bounds
// are nil when the client did not send a number.
type CreateHotspotInput struct {
	Label  string
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
	PartID string
}

// IHotspotUseCase manages the diagram image and the part hotspots drawn on it.
type IHotspotUseCase interface {
	ListHotspots(ctx context.Context) ([]entities.Hotspot, error)
	CreateHotspot(ctx context.Context, in CreateHotspotInput) (entities.Hotspot, error)
	GetDiagramImagePath(ctx context.Context) (*string, error)
	UploadDiagramImage(ctx context.Context, originalName string, content io.Reader) (string, error)
}

type HotspotUseCase struct {
	hotspots interfaces.IHotspotRepository
	diagram  interfaces.IDiagramRepository
	catalog  interfaces.ICatalogRepository
	uploads  interfaces.IUploadStore
	newID    func() string
}

var _ IHotspotUseCase = (*HotspotUseCase)(nil)

func NewHotspotUseCase(
	hotspots interfaces.IHotspotRepository,
	diagram interfaces.IDiagramRepository,
	catalog interfaces.ICatalogRepository,
	uploads interfaces.IUploadStore,
) *HotspotUseCase {
	return &HotspotUseCase{
		hotspots: hotspots,
		diagram:  diagram,
		catalog:  catalog,
		uploads:  uploads,
		newID:    func() string { return "hotspot-" + uuid.NewString() },
	}
}

func (u *HotspotUseCase) ListHotspots(ctx context.Context) ([]entities.Hotspot, error) {
	return u.hotspots.List(ctx)
}

func (u *HotspotUseCase) CreateHotspot(ctx context.Context, in CreateHotspotInput) (entities.Hotspot, error) {
	bounds := []struct {
		field string
		value *float64
	}{
		{"x", in.X},
		{"y", in.Y},
		{"width", in.Width},
		{"height", in.Height},
	}
	for _, b := range bounds {
		if b.value == nil || math.IsNaN(*b.value) || *b.value < 0 || *b.value > 1 {
			return entities.Hotspot{}, NewValidationError(b.field, "must be a number between 0 and 1")
		}
	}
	if *in.Width == 0 || *in.Height == 0 {
		return entities.Hotspot{}, NewValidationError("", "width and height must be greater than 0")
	}

	label := strings.TrimSpace(in.Label)
	if label == "" {
		return entities.Hotspot{}, NewValidationError("label", "is required")
	}

	partID := strings.TrimSpace(in.PartID)
	if partID == "" {
		return entities.Hotspot{}, NewValidationError("partId", "must reference an existing part")
	}
	part, err := u.catalog.GetPartByID(ctx, partID)
	if err != nil {
		return entities.Hotspot{}, fmt.Errorf("resolve part %q: %w", partID, err)
	}
	if part.ID == "" {
		return entities.Hotspot{}, NewValidationError("partId", "must reference an existing part")
	}

	created, err := u.hotspots.Create(ctx, entities.Hotspot{
		ID:     u.newID(),
		Label:  label,
		X:      *in.X,
		Y:      *in.Y,
		Width:  *in.Width,
		Height: *in.Height,
		PartID: part.ID,
	})
	if err != nil {
		return entities.Hotspot{}, err
	}

	log := logger.WithComponent(ctx, "hotspots")
	log.Info().Str("hotspot_id", created.ID).Str("part_id", created.PartID).Msg("hotspot created")
	return created, nil
}

// GetDiagramImagePath returns nil until an image has been uploaded.
func (u *HotspotUseCase) GetDiagramImagePath(ctx context.Context) (*string, error) {
	path, err := u.diagram.GetImagePath(ctx)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	return &path, nil
}

// UploadDiagramImage stores the image and makes it the current diagram.
func (u *HotspotUseCase) UploadDiagramImage(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if content == nil {
		return "", ErrMissingUpload
	}

	path, err := u.uploads.Save(ctx, originalName, content)
	if err != nil {
		return "", err
	}
	if err := u.diagram.SetImagePath(ctx, path); err != nil {
		return "", err
	}

	log := logger.WithComponent(ctx, "hotspots")
	log.Info().Str("image_path", path).Msg("diagram image replaced")
	return path, nil
}
