package request

import (
	"math"
	"strings"
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase"
)

type CustomerRequest struct {
	Name  LooseString `json:"name" binding:"notblank" swaggertype:"string" example:"Ravi Kumar"`
	Phone LooseString `json:"phone" binding:"required" swaggertype:"string" example:"+91 98450 12345"`
	Email LooseString `json:"email" swaggertype:"string"`
}

type VehicleRequest struct {
	ChassisNumber      LooseString `json:"chassisNumber" binding:"notblank" swaggertype:"string" example:"MALNISSANTERR123456"`
	RegistrationNumber LooseString `json:"registrationNumber" swaggertype:"string" example:"MH12TR3456"`
	Make               LooseString `json:"make" swaggertype:"string" example:"Nissan"`
	Model              LooseString `json:"model" swaggertype:"string" example:"Terrano"`
	Variant            LooseString `json:"variant" swaggertype:"string"`
	FuelType           LooseString `json:"fuelType" swaggertype:"string" example:"Diesel"`
	Year               LooseNumber `json:"year" swaggertype:"integer" example:"2018"`
}

type ApprovalRequest struct {
	Approved   bool        `json:"approved"`
	ApprovedAt LooseString `json:"approvedAt" swaggertype:"string" format:"date-time"`
	Channel    LooseString `json:"channel" swaggertype:"string" enums:"IN_PERSON,PHONE,WHATSAPP,SMS,EMAIL"`
}

type ServiceItemRequest struct {
	Name LooseString `json:"name" swaggertype:"string" example:"Engine Oil Change"`
	Cost LooseNumber `json:"cost" swaggertype:"number" example:"1850"`
}

type PartItemRequest struct {
	PartID    LooseString `json:"partId" swaggertype:"string" example:"part-103"`
	Quantity  LooseNumber `json:"quantity" swaggertype:"number" example:"2"`
	UnitPrice LooseNumber `json:"unitPrice" swaggertype:"number"`
}

// CreateJobCardRequest is the body of POST /api/job-cards. Pricing fields
// sent by clients are ignored; only the percentages are read.
type CreateJobCardRequest struct {
	Customer           CustomerRequest      `json:"customer"`
	Vehicle            VehicleRequest       `json:"vehicle"`
	Technician         LooseString          `json:"technician" swaggertype:"string"`
	Bay                LooseString          `json:"bay" swaggertype:"string"`
	WarrantyApplicable bool                 `json:"warrantyApplicable"`
	CustomerApproval   ApprovalRequest      `json:"customerApproval"`
	Status             LooseString          `json:"status" swaggertype:"string"`
	ServiceItems       []ServiceItemRequest `json:"serviceItems"`
	PartItems          []PartItemRequest    `json:"partItems"`
	DiscountPercent    LooseNumber          `json:"discountPercent" swaggertype:"number" example:"0"`
	TaxPercent         LooseNumber          `json:"taxPercent" swaggertype:"number" example:"18"`
	Notes              LooseString          `json:"notes" swaggertype:"string"`
}

func (r CreateJobCardRequest) ToInput() usecase.CreateJobCardInput {
	in := usecase.CreateJobCardInput{
		Customer: entities.Customer{
			Name:  r.Customer.Name.String(),
			Phone: r.Customer.Phone.String(),
			Email: r.Customer.Email.String(),
		},
		Vehicle: entities.Vehicle{
			ChassisNumber:      r.Vehicle.ChassisNumber.String(),
			RegistrationNumber: r.Vehicle.RegistrationNumber.String(),
			Make:               r.Vehicle.Make.String(),
			Model:              r.Vehicle.Model.String(),
			Variant:            r.Vehicle.Variant.String(),
			FuelType:           r.Vehicle.FuelType.String(),
			Year:               toYear(r.Vehicle.Year.Float()),
		},
		Technician:         r.Technician.String(),
		Bay:                r.Bay.String(),
		WarrantyApplicable: r.WarrantyApplicable,
		Approval: usecase.ApprovalInput{
			Approved:   r.CustomerApproval.Approved,
			ApprovedAt: parseTimestamp(r.CustomerApproval.ApprovedAt.String()),
			Channel:    r.CustomerApproval.Channel.String(),
		},
		Status:          r.Status.String(),
		ServiceItems:    make([]usecase.RawServiceItem, 0, len(r.ServiceItems)),
		PartItems:       make([]usecase.RawPartItem, 0, len(r.PartItems)),
		DiscountPercent: r.DiscountPercent.Float(),
		TaxPercent:      r.TaxPercent.Float(),
		Notes:           r.Notes.String(),
	}
	for _, s := range r.ServiceItems {
		in.ServiceItems = append(in.ServiceItems, usecase.RawServiceItem{Name: s.Name.String(), Cost: s.Cost.Float()})
	}
	for _, p := range r.PartItems {
		in.PartItems = append(in.PartItems, usecase.RawPartItem{
			PartID:    p.PartID.String(),
			Quantity:  p.Quantity.Float(),
			UnitPrice: p.UnitPrice.Float(),
		})
	}
	return in
}

// StatusUpdateRequest is the body of PATCH /api/job-cards/:jobCardId/status.
type StatusUpdateRequest struct {
	Status LooseString `json:"status" swaggertype:"string" example:"INSPECTION"`
}

func toYear(v *float64) *int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 || *v > 9999 {
		return nil
	}
	year := int(math.Floor(*v))
	return &year
}

func parseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
