package usecase

import (
	"context"
	"strings"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"
)

// ICatalogUseCase is the read-only lookup over parts and services.
type ICatalogUseCase interface {
	GetPartByID(ctx context.Context, id string) (entities.Part, error)
	SearchParts(ctx context.Context, query string) ([]entities.Part, error)
	GetPartAlternatives(ctx context.Context, id string) (entities.PartAlternatives, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetPartByID(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	p, err := u.repo.GetPartByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if p.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}

// SearchParts matches query case-insensitively against part number and
// description. An empty query returns the whole catalog.
func (u *CatalogUseCase) SearchParts(ctx context.Context, query string) ([]entities.Part, error) {
	parts, err := u.repo.ListParts(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return parts, nil
	}

	matches := make([]entities.Part, 0, len(parts))
	for _, p := range parts {
		if strings.Contains(strings.ToLower(p.PartNumber), q) || strings.Contains(strings.ToLower(p.Description), q) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// GetPartAlternatives resolves the part's alternative ids in order. Ids that
// no longer resolve are skipped.
func (u *CatalogUseCase) GetPartAlternatives(ctx context.Context, id string) (entities.PartAlternatives, error) {
	part, err := u.GetPartByID(ctx, id)
	if err != nil {
		return entities.PartAlternatives{}, err
	}

	alternatives := make([]entities.Part, 0, len(part.AlternativePartIDs))
	for _, altID := range part.AlternativePartIDs {
		alt, err := u.repo.GetPartByID(ctx, altID)
		if err != nil {
			return entities.PartAlternatives{}, err
		}
		if alt.ID == "" {
			continue
		}
		alternatives = append(alternatives, alt)
	}

	return entities.PartAlternatives{
		PartID:       part.ID,
		SupersededBy: part.SupersededBy,
		Alternatives: alternatives,
	}, nil
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.repo.ListServices(ctx)
}
