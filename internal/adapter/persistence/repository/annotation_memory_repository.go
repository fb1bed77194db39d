package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"
)

// AnnotationMemoryRepository keeps hotspots and the diagram image path in
// process memory. It is the default annotation store.
type AnnotationMemoryRepository struct {
	mu        sync.RWMutex
	hotspots  []entities.Hotspot
	imagePath string
}

var (
	_ interfaces.IHotspotRepository = (*AnnotationMemoryRepository)(nil)
	_ interfaces.IDiagramRepository = (*AnnotationMemoryRepository)(nil)
)

func NewAnnotationMemoryRepository() *AnnotationMemoryRepository {
	return &AnnotationMemoryRepository{}
}

func (r *AnnotationMemoryRepository) Create(_ context.Context, h entities.Hotspot) (entities.Hotspot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hotspots = append(r.hotspots, h)
	return h, nil
}

func (r *AnnotationMemoryRepository) List(_ context.Context) ([]entities.Hotspot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := slices.Clone(r.hotspots)
	if out == nil {
		out = []entities.Hotspot{}
	}
	return out, nil
}

func (r *AnnotationMemoryRepository) GetImagePath(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.imagePath, nil
}

func (r *AnnotationMemoryRepository) SetImagePath(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imagePath = path
	return nil
}
