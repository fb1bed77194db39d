package response

import (
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
)

type JobCardResponse struct {
	ID                 string                     `json:"id"`
	CreatedAt          time.Time                  `json:"createdAt"`
	UpdatedAt          time.Time                  `json:"updatedAt"`
	Status             string                     `json:"status"`
	Customer           entities.Customer          `json:"customer"`
	Vehicle            entities.Vehicle           `json:"vehicle"`
	Technician         string                     `json:"technician"`
	Bay                string                     `json:"bay"`
	WarrantyApplicable bool                       `json:"warrantyApplicable"`
	CustomerApproval   entities.CustomerApproval  `json:"customerApproval"`
	ServiceItems       []entities.ServiceLineItem `json:"serviceItems"`
	PartItems          []entities.PartLineItem    `json:"partItems"`
	DiscountPercent    float64                    `json:"discountPercent"`
	TaxPercent         float64                    `json:"taxPercent"`
	ServiceSubtotal    float64                    `json:"serviceSubtotal"`
	PartsSubtotal      float64                    `json:"partsSubtotal"`
	GrossTotal         float64                    `json:"grossTotal"`
	DiscountAmount     float64                    `json:"discountAmount"`
	TaxAmount          float64                    `json:"taxAmount"`
	TotalAmount        float64                    `json:"totalAmount"`
	Notes              string                     `json:"notes"`
}

func FromJobCard(j entities.JobCard) JobCardResponse {
	j = j.Clone()
	return JobCardResponse{
		ID:                 j.ID,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
		Status:             string(j.Status),
		Customer:           j.Customer,
		Vehicle:            j.Vehicle,
		Technician:         j.Technician,
		Bay:                j.Bay,
		WarrantyApplicable: j.WarrantyApplicable,
		CustomerApproval:   j.CustomerApproval,
		ServiceItems:       j.ServiceItems,
		PartItems:          j.PartItems,
		DiscountPercent:    j.DiscountPercent,
		TaxPercent:         j.TaxPercent,
		ServiceSubtotal:    j.ServiceSubtotal,
		PartsSubtotal:      j.PartsSubtotal,
		GrossTotal:         j.GrossTotal,
		DiscountAmount:     j.DiscountAmount,
		TaxAmount:          j.TaxAmount,
		TotalAmount:        j.TotalAmount,
		Notes:              j.Notes,
	}
}

func FromJobCards(cards []entities.JobCard) []JobCardResponse {
	out := make([]JobCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, FromJobCard(c))
	}
	return out
}

type JobCardMetricsResponse struct {
	TotalJobCards int            `json:"totalJobCards"`
	TotalRevenue  float64        `json:"totalRevenue"`
	ByStatus      map[string]int `json:"byStatus"`
}

func FromJobCardMetrics(m entities.JobCardMetrics) JobCardMetricsResponse {
	byStatus := make(map[string]int, len(m.ByStatus))
	for s, n := range m.ByStatus {
		byStatus[string(s)] = n
	}
	return JobCardMetricsResponse{
		TotalJobCards: m.TotalJobCards,
		TotalRevenue:  m.TotalRevenue,
		ByStatus:      byStatus,
	}
}

func FromStatuses(statuses []entities.JobCardStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
