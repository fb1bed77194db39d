package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var embeddedCatalog []byte

type catalogDocument struct {
	Parts    []entities.Part    `yaml:"parts"`
	Services []entities.Service `yaml:"services"`
}

// StaticCatalogRepository serves reference data loaded once at startup. It is
// never written after construction, so reads need no locking.
type StaticCatalogRepository struct {
	parts    []entities.Part
	byID     map[string]int
	services []entities.Service
}

var _ interfaces.ICatalogRepository = (*StaticCatalogRepository)(nil)

// NewStaticCatalogRepository loads the catalog from path, or from the
// embedded seed when path is empty.
func NewStaticCatalogRepository(path string) (*StaticCatalogRepository, error) {
	data := embeddedCatalog
	if path = strings.TrimSpace(path); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = b
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (*StaticCatalogRepository, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	r := &StaticCatalogRepository{
		parts:    make([]entities.Part, 0, len(doc.Parts)),
		byID:     make(map[string]int, len(doc.Parts)),
		services: make([]entities.Service, 0, len(doc.Services)),
	}
	for i, p := range doc.Parts {
		p.ID = strings.TrimSpace(p.ID)
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("catalog part #%d: id is required", i)
		case strings.TrimSpace(p.PartNumber) == "":
			return nil, fmt.Errorf("catalog part %s: partNumber is required", p.ID)
		case p.UnitPrice < 0:
			return nil, fmt.Errorf("catalog part %s: unitPrice must not be negative", p.ID)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog part %s: duplicate id", p.ID)
		}
		r.byID[p.ID] = len(r.parts)
		r.parts = append(r.parts, p.Clone())
	}

	seen := make(map[string]struct{}, len(doc.Services))
	for i, s := range doc.Services {
		switch {
		case strings.TrimSpace(s.ID) == "" || strings.TrimSpace(s.Name) == "":
			return nil, fmt.Errorf("catalog service #%d: id and name are required", i)
		case s.Cost < 0:
			return nil, fmt.Errorf("catalog service %s: cost must not be negative", s.ID)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("catalog service %s: duplicate id", s.ID)
		}
		seen[s.ID] = struct{}{}
		r.services = append(r.services, s)
	}
	return r, nil
}

func (r *StaticCatalogRepository) GetPartByID(_ context.Context, id string) (entities.Part, error) {
	pos, ok := r.byID[id]
	if !ok {
		return entities.Part{}, nil
	}
	return r.parts[pos].Clone(), nil
}

func (r *StaticCatalogRepository) ListParts(_ context.Context) ([]entities.Part, error) {
	return entities.CloneParts(r.parts), nil
}

func (r *StaticCatalogRepository) ListServices(_ context.Context) ([]entities.Service, error) {
	return entities.CloneServices(r.services), nil
}
