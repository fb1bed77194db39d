package entities

import (
	"fmt"
	"slices"
	"time"
)

// JobCardStatus is the workshop progress label of a job card.
//
// The declaration order below is display order only. Any member may be set
// on a card unless a stricter transition policy is configured.
type JobCardStatus string

const (
	JobCardStatusCreated        JobCardStatus = "CREATED"
	JobCardStatusInspection     JobCardStatus = "INSPECTION"
	JobCardStatusEstimateSent   JobCardStatus = "ESTIMATE_SENT"
	JobCardStatusApproved       JobCardStatus = "APPROVED"
	JobCardStatusPartsOrdered   JobCardStatus = "PARTS_ORDERED"
	JobCardStatusWorkInProgress JobCardStatus = "WORK_IN_PROGRESS"
	JobCardStatusReady          JobCardStatus = "READY"
	JobCardStatusDelivered      JobCardStatus = "DELIVERED"
)

var jobCardStatuses = []JobCardStatus{
	JobCardStatusCreated,
	JobCardStatusInspection,
	JobCardStatusEstimateSent,
	JobCardStatusApproved,
	JobCardStatusPartsOrdered,
	JobCardStatusWorkInProgress,
	JobCardStatusReady,
	JobCardStatusDelivered,
}

// JobCardStatuses returns every status in display order.
func JobCardStatuses() []JobCardStatus {
	return slices.Clone(jobCardStatuses)
}

func (s JobCardStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known JobCardStatus.
func (s JobCardStatus) IsValid() bool {
	return slices.Contains(jobCardStatuses, s)
}

// ParseJobCardStatus converts raw input into a JobCardStatus.
func ParseJobCardStatus(value string) (JobCardStatus, error) {
	s := JobCardStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid job card status %q", value)
	}
	return s, nil
}

// ApprovalChannel is how the customer communicated an estimate approval.
type ApprovalChannel string

const (
	ApprovalChannelInPerson ApprovalChannel = "IN_PERSON"
	ApprovalChannelPhone    ApprovalChannel = "PHONE"
	ApprovalChannelWhatsApp ApprovalChannel = "WHATSAPP"
	ApprovalChannelSMS      ApprovalChannel = "SMS"
	ApprovalChannelEmail    ApprovalChannel = "EMAIL"
)

// DefaultApprovalChannel is recorded when an approval arrives without a channel.
const DefaultApprovalChannel = ApprovalChannelInPerson

var approvalChannels = []ApprovalChannel{
	ApprovalChannelInPerson,
	ApprovalChannelPhone,
	ApprovalChannelWhatsApp,
	ApprovalChannelSMS,
	ApprovalChannelEmail,
}

func (c ApprovalChannel) IsValid() bool {
	return slices.Contains(approvalChannels, c)
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Vehicle struct {
	ChassisNumber      string `json:"chassisNumber"`
	RegistrationNumber string `json:"registrationNumber"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Variant            string `json:"variant"`
	FuelType           string `json:"fuelType"`
	Year               *int   `json:"year"`
}

// CustomerApproval records the customer's go-ahead on the estimate.
// ApprovedAt and Channel are non-nil if and only if Approved is true.
type CustomerApproval struct {
	Approved   bool             `json:"approved"`
	ApprovedAt *time.Time       `json:"approvedAt"`
	Channel    *ApprovalChannel `json:"channel"`
}

type ServiceLineItem struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// PartLineItem is a priced snapshot of a catalog part taken when the job card
// was created. Later catalog edits never reach it.
type PartLineItem struct {
	PartID         string  `json:"partId"`
	PartNumber     string  `json:"partNumber"`
	Description    string  `json:"description"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	LineTotal      float64 `json:"lineTotal"`
	Available      bool    `json:"available"`
	TurnaroundDays int     `json:"turnaroundDays"`
}

// JobCard is the work order for one service visit.
//
// Pricing fields are derived by the pricing engine and never set by callers.
type JobCard struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Status    JobCardStatus `json:"status"`

	Customer           Customer         `json:"customer"`
	Vehicle            Vehicle          `json:"vehicle"`
	Technician         string           `json:"technician"`
	Bay                string           `json:"bay"`
	WarrantyApplicable bool             `json:"warrantyApplicable"`
	CustomerApproval   CustomerApproval `json:"customerApproval"`

	ServiceItems []ServiceLineItem `json:"serviceItems"`
	PartItems    []PartLineItem    `json:"partItems"`

	DiscountPercent float64 `json:"discountPercent"`
	TaxPercent      float64 `json:"taxPercent"`
	ServiceSubtotal float64 `json:"serviceSubtotal"`
	PartsSubtotal   float64 `json:"partsSubtotal"`
	GrossTotal      float64 `json:"grossTotal"`
	DiscountAmount  float64 `json:"discountAmount"`
	TaxAmount       float64 `json:"taxAmount"`
	TotalAmount     float64 `json:"totalAmount"`

	Notes string `json:"notes"`
}

// Clone returns a deep copy so stored cards never share slices or pointers
// with callers.
func (j JobCard) Clone() JobCard {
	out := j
	out.ServiceItems = cloneOrEmpty(j.ServiceItems)
	out.PartItems = cloneOrEmpty(j.PartItems)
	if j.Vehicle.Year != nil {
		year := *j.Vehicle.Year
		out.Vehicle.Year = &year
	}
	if j.CustomerApproval.ApprovedAt != nil {
		at := *j.CustomerApproval.ApprovedAt
		out.CustomerApproval.ApprovedAt = &at
	}
	if j.CustomerApproval.Channel != nil {
		ch := *j.CustomerApproval.Channel
		out.CustomerApproval.Channel = &ch
	}
	return out
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

// JobCardMetrics is the fleet-wide view over every live job card.
type JobCardMetrics struct {
	TotalJobCards int                   `json:"totalJobCards"`
	TotalRevenue  float64               `json:"totalRevenue"`
	ByStatus      map[JobCardStatus]int `json:"byStatus"`
}
