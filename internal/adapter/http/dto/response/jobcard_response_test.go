package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
)

func TestFromJobCard(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	card := entities.JobCard{
		ID:          "JC-000001",
		CreatedAt:   now,
		UpdatedAt:   now,
		Status:      entities.JobCardStatusCreated,
		Customer:    entities.Customer{Name: "Ravi", Phone: "1"},
		PartItems:   []entities.PartLineItem{{PartID: "part-103", Quantity: 2, UnitPrice: 1450, LineTotal: 2900}},
		TaxPercent:  18,
		TotalAmount: 3422,
	}

	res := FromJobCard(card)
	if res.ID != "JC-000001" || res.Status != "CREATED" || res.TotalAmount != 3422 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.ServiceItems == nil {
		t.Fatalf("expected empty service items, got nil")
	}

	res.PartItems[0].Quantity = 99
	if card.PartItems[0].Quantity != 2 {
		t.Fatalf("response shares part items with the card")
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	for _, key := range []string{"id", "createdAt", "customerApproval", "serviceItems", "partItems", "grossTotal", "totalAmount"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing %q in %s", key, raw)
		}
	}
	approval := body["customerApproval"].(map[string]any)
	if approval["approvedAt"] != nil || approval["channel"] != nil {
		t.Fatalf("expected null approval fields, got %v", approval)
	}
}

func TestFromJobCardMetrics(t *testing.T) {
	res := FromJobCardMetrics(entities.JobCardMetrics{
		TotalJobCards: 1,
		TotalRevenue:  6372,
		ByStatus:      map[entities.JobCardStatus]int{entities.JobCardStatusCreated: 1, entities.JobCardStatusReady: 0},
	})
	if res.ByStatus["CREATED"] != 1 || len(res.ByStatus) != 2 || res.TotalRevenue != 6372 {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromStatuses(t *testing.T) {
	got := FromStatuses(entities.JobCardStatuses())
	if len(got) != 8 || got[0] != "CREATED" || got[7] != "DELIVERED" {
		t.Fatalf("unexpected statuses: %v", got)
	}
}
