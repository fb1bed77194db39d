package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/pricing"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"
	"github.com/kuntarvishnuprasad41/sparelab-epc/pkg/logger"
)

// maxLineQuantity bounds coerced quantities so int conversion cannot overflow.
const maxLineQuantity = math.MaxInt32

// RawServiceItem is a service line as submitted by a client. Cost is nil
// when the client sent nothing usable.
type RawServiceItem struct {
	Name string
	Cost *float64
}

// RawPartItem is a part line as submitted by a client. Quantity and
// UnitPrice are nil when absent or not numeric.
type RawPartItem struct {
	PartID    string
	Quantity  *float64
	UnitPrice *float64
}

// NormalizedItems is the canonical line-item set of a job card.
type NormalizedItems struct {
	Services []entities.ServiceLineItem
	Parts    []entities.PartLineItem
	// UnresolvedPartIDs lists part references that were dropped, in input order.
	UnresolvedPartIDs []string
}

// LineItemNormalizer prices raw line items against the current catalog.
//
// With the lenient policy, part lines that do not resolve are dropped and
// reported in NormalizedItems. With the strict policy the first one fails the
// whole request.
type LineItemNormalizer struct {
	catalog interfaces.ICatalogRepository
	strict  bool
}

func NewLineItemNormalizer(catalog interfaces.ICatalogRepository, strictParts bool) *LineItemNormalizer {
	return &LineItemNormalizer{catalog: catalog, strict: strictParts}
}

func (n *LineItemNormalizer) Normalize(ctx context.Context, rawServices []RawServiceItem, rawParts []RawPartItem) (NormalizedItems, error) {
	out := NormalizedItems{
		Services: normalizeServiceItems(rawServices),
		Parts:    make([]entities.PartLineItem, 0, len(rawParts)),
	}

	for i, raw := range rawParts {
		partID := strings.TrimSpace(raw.PartID)
		var part entities.Part
		if partID != "" {
			p, err := n.catalog.GetPartByID(ctx, partID)
			if err != nil {
				return NormalizedItems{}, fmt.Errorf("resolve part %q: %w", partID, err)
			}
			part = p
		}
		if part.ID == "" {
			if n.strict {
				return NormalizedItems{}, NewValidationError(fmt.Sprintf("partItems[%d].partId", i), "must reference an existing part")
			}
			out.UnresolvedPartIDs = append(out.UnresolvedPartIDs, raw.PartID)
			continue
		}
		out.Parts = append(out.Parts, snapshotPart(part, raw))
	}

	if len(out.UnresolvedPartIDs) > 0 {
		log := logger.WithComponent(ctx, "lineitem_normalizer")
		log.Warn().Strs("part_ids", out.UnresolvedPartIDs).Msg("dropped unresolved part line items")
	}
	return out, nil
}

func normalizeServiceItems(raw []RawServiceItem) []entities.ServiceLineItem {
	items := make([]entities.ServiceLineItem, 0, len(raw))
	for _, r := range raw {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		items = append(items, entities.ServiceLineItem{Name: name, Cost: positiveOr(r.Cost, 0)})
	}
	return items
}

func snapshotPart(part entities.Part, raw RawPartItem) entities.PartLineItem {
	quantity := coerceQuantity(raw.Quantity)
	unitPrice := positiveOr(raw.UnitPrice, part.UnitPrice)
	return entities.PartLineItem{
		PartID:         part.ID,
		PartNumber:     part.PartNumber,
		Description:    part.Description,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		LineTotal:      pricing.LineTotal(quantity, unitPrice),
		Available:      part.Available,
		TurnaroundDays: part.TurnaroundDays,
	}
}

// coerceQuantity floors usable input to an integer of at least 1.
func coerceQuantity(v *float64) int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 1 {
		return 1
	}
	if *v > maxLineQuantity {
		return maxLineQuantity
	}
	return int(math.Floor(*v))
}

func positiveOr(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		return fallback
	}
	return *v
}
