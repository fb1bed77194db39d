package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/pricing"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"
	"github.com/kuntarvishnuprasad41/sparelab-epc/pkg/logger"
)

const DefaultJobCardIDPrefix = "JC"

// ApprovalInput is the approval state submitted with a new job card.
type ApprovalInput struct {
	Approved   bool
	ApprovedAt *time.Time
	Channel    string
}

// CreateJobCardInput carries everything a client may set on a new job card.
// Pricing fields are absent on purpose: they are always derived.
type CreateJobCardInput struct {
	Customer           entities.Customer
	Vehicle            entities.Vehicle
	Technician         string
	Bay                string
	WarrantyApplicable bool
	Approval           ApprovalInput
	Status             string
	ServiceItems       []RawServiceItem
	PartItems          []RawPartItem
	DiscountPercent    *float64
	TaxPercent         *float64
	Notes              string
}

// IJobCardUseCase exposes the job-card lifecycle and fleet metrics.
type IJobCardUseCase interface {
	Create(ctx context.Context, in CreateJobCardInput) (entities.JobCard, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.JobCard, error)
	GetByID(ctx context.Context, id string) (entities.JobCard, error)
	List(ctx context.Context, customerPhone string) ([]entities.JobCard, error)
	Metrics(ctx context.Context) (entities.JobCardMetrics, error)
	Statuses() []entities.JobCardStatus
}

// JobCardOptions tunes the lifecycle. The zero value gives the permissive
// defaults.
type JobCardOptions struct {
	IDPrefix          string
	StrictTransitions bool
	Events            interfaces.IJobCardEvents
	Clock             func() time.Time
}

type JobCardUseCase struct {
	repo              interfaces.IJobCardRepository
	normalizer        *LineItemNormalizer
	events            interfaces.IJobCardEvents
	seq               atomic.Uint64
	idPrefix          string
	strictTransitions bool
	now               func() time.Time
}

var _ IJobCardUseCase = (*JobCardUseCase)(nil)

func NewJobCardUseCase(repo interfaces.IJobCardRepository, normalizer *LineItemNormalizer, opts JobCardOptions) *JobCardUseCase {
	u := &JobCardUseCase{
		repo:              repo,
		normalizer:        normalizer,
		events:            opts.Events,
		idPrefix:          strings.TrimSpace(opts.IDPrefix),
		strictTransitions: opts.StrictTransitions,
		now:               opts.Clock,
	}
	if u.idPrefix == "" {
		u.idPrefix = DefaultJobCardIDPrefix
	}
	if u.events == nil {
		u.events = noopJobCardEvents{}
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u
}

func (u *JobCardUseCase) Create(ctx context.Context, in CreateJobCardInput) (entities.JobCard, error) {
	if err := validateCreateInput(in); err != nil {
		return entities.JobCard{}, err
	}

	items, err := u.normalizer.Normalize(ctx, in.ServiceItems, in.PartItems)
	if err != nil {
		return entities.JobCard{}, err
	}
	totals := pricing.ComputeTotals(items.Services, items.Parts, in.DiscountPercent, in.TaxPercent)

	now := u.now().UTC()
	card := entities.JobCard{
		ID:                 u.nextID(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Status:             initialStatus(in.Status),
		Customer:           trimCustomer(in.Customer),
		Vehicle:            trimVehicle(in.Vehicle),
		Technician:         strings.TrimSpace(in.Technician),
		Bay:                strings.TrimSpace(in.Bay),
		WarrantyApplicable: in.WarrantyApplicable,
		CustomerApproval:   normalizeApproval(in.Approval, now),
		ServiceItems:       items.Services,
		PartItems:          items.Parts,
		Notes:              in.Notes,
	}
	totals.ApplyTo(&card)

	created, err := u.repo.Create(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}

	u.events.JobCardCreated(created)
	if len(items.UnresolvedPartIDs) > 0 {
		u.events.PartItemsDropped(len(items.UnresolvedPartIDs))
	}
	log := logger.WithComponent(ctx, "jobcards")
	log.Info().
		Str("job_card_id", created.ID).
		Str("status", created.Status.String()).
		Float64("total_amount", created.TotalAmount).
		Msg("job card created")
	return created, nil
}

// UpdateStatus sets a new status on an existing card. The status must match a
// member exactly and is checked before the card is looked up.
func (u *JobCardUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.JobCard, error) {
	next, err := entities.ParseJobCardStatus(status)
	if err != nil {
		return entities.JobCard{}, NewValidationError("status", "is invalid").Because(ErrInvalidStatus)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}

	var previous entities.JobCardStatus
	updated, err := u.repo.Update(ctx, id, func(card *entities.JobCard) error {
		if u.strictTransitions && !card.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, card.Status, next)
		}
		previous = card.Status
		card.Status = next
		card.UpdatedAt = u.now().UTC()
		return nil
	})
	if err != nil {
		return entities.JobCard{}, err
	}
	if updated.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}

	u.events.StatusUpdated(previous, next)
	log := logger.WithComponent(ctx, "jobcards")
	log.Info().
		Str("job_card_id", updated.ID).
		Str("from", previous.String()).
		Str("to", next.String()).
		Msg("job card status updated")
	return updated, nil
}

func (u *JobCardUseCase) GetByID(ctx context.Context, id string) (entities.JobCard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}

	card, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	if card.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	return card, nil
}

// List returns cards newest first, optionally narrowed to phones containing
// customerPhone, ignoring case. The filter is used verbatim.
func (u *JobCardUseCase) List(ctx context.Context, customerPhone string) ([]entities.JobCard, error) {
	return u.repo.List(ctx, interfaces.JobCardFilter{CustomerPhone: customerPhone})
}

// Metrics aggregates the live collection in a single pass. Every status is
// reported, including those with no cards.
func (u *JobCardUseCase) Metrics(ctx context.Context) (entities.JobCardMetrics, error) {
	cards, err := u.repo.List(ctx, interfaces.JobCardFilter{})
	if err != nil {
		return entities.JobCardMetrics{}, err
	}

	byStatus := make(map[entities.JobCardStatus]int, len(entities.JobCardStatuses()))
	for _, s := range entities.JobCardStatuses() {
		byStatus[s] = 0
	}
	amounts := make([]float64, 0, len(cards))
	for _, c := range cards {
		if _, ok := byStatus[c.Status]; ok {
			byStatus[c.Status]++
		}
		amounts = append(amounts, c.TotalAmount)
	}

	return entities.JobCardMetrics{
		TotalJobCards: len(cards),
		TotalRevenue:  pricing.Sum(amounts...),
		ByStatus:      byStatus,
	}, nil
}

func (u *JobCardUseCase) Statuses() []entities.JobCardStatus {
	return entities.JobCardStatuses()
}

func (u *JobCardUseCase) nextID() string {
	return fmt.Sprintf("%s-%06d", u.idPrefix, u.seq.Add(1))
}

func validateCreateInput(in CreateJobCardInput) error {
	switch {
	case strings.TrimSpace(in.Customer.Name) == "":
		return NewValidationError("customer.name", "is required")
	case strings.TrimSpace(in.Customer.Phone) == "":
		return NewValidationError("customer.phone", "is required")
	case strings.TrimSpace(in.Vehicle.ChassisNumber) == "":
		return NewValidationError("vehicle.chassisNumber", "is required")
	}
	return nil
}

func initialStatus(raw string) entities.JobCardStatus {
	if s := entities.JobCardStatus(strings.TrimSpace(raw)); s.IsValid() {
		return s
	}
	return entities.JobCardStatusCreated
}

// normalizeApproval keeps approvedAt and channel only on approved cards.
func normalizeApproval(in ApprovalInput, now time.Time) entities.CustomerApproval {
	if !in.Approved {
		return entities.CustomerApproval{}
	}

	channel := entities.ApprovalChannel(strings.ToUpper(strings.TrimSpace(in.Channel)))
	if !channel.IsValid() {
		channel = entities.DefaultApprovalChannel
	}
	approvedAt := now
	if in.ApprovedAt != nil && !in.ApprovedAt.IsZero() {
		approvedAt = in.ApprovedAt.UTC()
	}
	return entities.CustomerApproval{Approved: true, ApprovedAt: &approvedAt, Channel: &channel}
}

func trimCustomer(c entities.Customer) entities.Customer {
	return entities.Customer{
		Name:  strings.TrimSpace(c.Name),
		Phone: strings.TrimSpace(c.Phone),
		Email: strings.TrimSpace(c.Email),
	}
}

func trimVehicle(v entities.Vehicle) entities.Vehicle {
	out := entities.Vehicle{
		ChassisNumber:      strings.TrimSpace(v.ChassisNumber),
		RegistrationNumber: strings.TrimSpace(v.RegistrationNumber),
		Make:               strings.TrimSpace(v.Make),
		Model:              strings.TrimSpace(v.Model),
		Variant:            strings.TrimSpace(v.Variant),
		FuelType:           strings.TrimSpace(v.FuelType),
	}
	if v.Year != nil {
		year := *v.Year
		out.Year = &year
	}
	return out
}

type noopJobCardEvents struct{}

func (noopJobCardEvents) JobCardCreated(entities.JobCard)              {}
func (noopJobCardEvents) StatusUpdated(from, to entities.JobCardStatus) {}
func (noopJobCardEvents) PartItemsDropped(int)                          {}
