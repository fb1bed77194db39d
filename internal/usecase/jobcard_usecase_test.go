package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/adapter/persistence/repository"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	mock_interfaces "github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func newJobCardUseCase(t *testing.T, opts JobCardOptions) *JobCardUseCase {
	t.Helper()
	if opts.Clock == nil {
		clock := &stepClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
		opts.Clock = clock.Now
	}
	return NewJobCardUseCase(repository.NewJobCardMemoryRepository(), NewLineItemNormalizer(seedCatalog(t), false), opts)
}

func validInput() CreateJobCardInput {
	return CreateJobCardInput{
		Customer: entities.Customer{Name: "Ravi Kumar", Phone: "98450 12345"},
		Vehicle:  entities.Vehicle{ChassisNumber: "MALNISSANTERR123456"},
	}
}

func TestJobCardUseCase_Create(t *testing.T) {
	t.Run("reference totals", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		in := validInput()
		in.ServiceItems = []RawServiceItem{{Name: "Engine Oil Change", Cost: f64(1850)}, {Name: "General Inspection", Cost: f64(650)}}
		in.PartItems = []RawPartItem{{PartID: "part-103", Quantity: f64(2)}}

		card, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.ServiceSubtotal != 2500 || card.PartsSubtotal != 2900 || card.GrossTotal != 5400 {
			t.Fatalf("unexpected subtotals: %+v", card)
		}
		if card.DiscountPercent != 0 || card.DiscountAmount != 0 || card.TaxPercent != 18 || card.TaxAmount != 972 || card.TotalAmount != 6372 {
			t.Fatalf("unexpected totals: %+v", card)
		}
	})

	t.Run("discount and tax applied", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		in := validInput()
		in.ServiceItems = []RawServiceItem{{Name: "Brake Service", Cost: f64(1000)}}
		in.DiscountPercent = f64(10)
		in.TaxPercent = f64(5)

		card, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.DiscountAmount != 100 || card.TaxAmount != 45 || card.TotalAmount != 945 {
			t.Fatalf("unexpected totals: %+v", card)
		}
	})

	t.Run("empty card", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		card, err := uc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.TotalAmount != 0 || card.ServiceItems == nil || card.PartItems == nil {
			t.Fatalf("unexpected card: %+v", card)
		}
	})

	t.Run("identity and timestamps", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		first, _ := uc.Create(context.Background(), validInput())
		second, _ := uc.Create(context.Background(), validInput())

		if first.ID != "JC-000001" || second.ID != "JC-000002" {
			t.Fatalf("unexpected ids: %s, %s", first.ID, second.ID)
		}
		if first.CreatedAt.IsZero() || !first.CreatedAt.Equal(first.UpdatedAt) {
			t.Fatalf("expected equal timestamps, got %v / %v", first.CreatedAt, first.UpdatedAt)
		}
	})

	t.Run("custom id prefix", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{IDPrefix: "WS"})
		card, _ := uc.Create(context.Background(), validInput())
		if card.ID != "WS-000001" {
			t.Fatalf("unexpected id %s", card.ID)
		}
	})

	t.Run("initial status", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		cases := map[string]entities.JobCardStatus{
			"":           entities.JobCardStatusCreated,
			"INSPECTION": entities.JobCardStatusInspection,
			"inspection": entities.JobCardStatusCreated,
			"FINISHED":   entities.JobCardStatusCreated,
		}
		for raw, want := range cases {
			in := validInput()
			in.Status = raw
			card, err := uc.Create(context.Background(), in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if card.Status != want {
				t.Fatalf("status %q: expected %s, got %s", raw, want, card.Status)
			}
		}
	})

	t.Run("required fields in order", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		cases := []struct {
			name  string
			edit  func(*CreateJobCardInput)
			field string
		}{
			{"all missing", func(in *CreateJobCardInput) { *in = CreateJobCardInput{} }, "customer.name"},
			{"blank name", func(in *CreateJobCardInput) { in.Customer.Name = "   " }, "customer.name"},
			{"missing phone", func(in *CreateJobCardInput) { in.Customer.Phone = ""; in.Vehicle.ChassisNumber = "" }, "customer.phone"},
			{"blank chassis", func(in *CreateJobCardInput) { in.Vehicle.ChassisNumber = " " }, "vehicle.chassisNumber"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validInput()
				tc.edit(&in)
				_, err := uc.Create(context.Background(), in)
				var vErr *ValidationError
				if !errors.As(err, &vErr) || !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if vErr.Field != tc.field {
					t.Fatalf("expected field %s, got %s", tc.field, vErr.Field)
				}
			})
		}
		cards, _ := uc.List(context.Background(), "")
		if len(cards) != 0 {
			t.Fatalf("expected no stored cards, got %d", len(cards))
		}
	})

	t.Run("approval invariant", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		at := time.Date(2026, 2, 28, 18, 30, 0, 0, time.UTC)

		in := validInput()
		in.Approval = ApprovalInput{Approved: false, ApprovedAt: &at, Channel: "PHONE"}
		card, _ := uc.Create(context.Background(), in)
		if card.CustomerApproval.Approved || card.CustomerApproval.ApprovedAt != nil || card.CustomerApproval.Channel != nil {
			t.Fatalf("expected empty approval, got %+v", card.CustomerApproval)
		}

		in.Approval = ApprovalInput{Approved: true}
		card, _ = uc.Create(context.Background(), in)
		if card.CustomerApproval.ApprovedAt == nil || card.CustomerApproval.Channel == nil {
			t.Fatalf("expected defaults, got %+v", card.CustomerApproval)
		}
		if *card.CustomerApproval.Channel != entities.ApprovalChannelInPerson || !card.CustomerApproval.ApprovedAt.Equal(card.CreatedAt) {
			t.Fatalf("unexpected defaults: %+v", card.CustomerApproval)
		}

		in.Approval = ApprovalInput{Approved: true, ApprovedAt: &at, Channel: "whatsapp"}
		card, _ = uc.Create(context.Background(), in)
		if *card.CustomerApproval.Channel != entities.ApprovalChannelWhatsApp || !card.CustomerApproval.ApprovedAt.Equal(at) {
			t.Fatalf("unexpected approval: %+v", card.CustomerApproval)
		}

		in.Approval = ApprovalInput{Approved: true, Channel: "CARRIER_PIGEON"}
		card, _ = uc.Create(context.Background(), in)
		if *card.CustomerApproval.Channel != entities.ApprovalChannelInPerson {
			t.Fatalf("expected fallback channel, got %s", *card.CustomerApproval.Channel)
		}
	})

	t.Run("unique ids under concurrency", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		const n = 50
		var wg sync.WaitGroup
		ids := make(chan string, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				card, err := uc.Create(context.Background(), validInput())
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				ids <- card.ID
			}()
		}
		wg.Wait()
		close(ids)

		seen := map[string]bool{}
		for id := range ids {
			if seen[id] {
				t.Fatalf("duplicate id %s", id)
			}
			seen[id] = true
		}
		if len(seen) != n {
			t.Fatalf("expected %d ids, got %d", n, len(seen))
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewJobCardUseCase(repo, NewLineItemNormalizer(seedCatalog(t), false), JobCardOptions{})

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.JobCard{})).Return(entities.JobCard{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mock_interfaces.NewMockIJobCardEvents(ctrl)
		uc := newJobCardUseCase(t, JobCardOptions{Events: events})

		events.EXPECT().JobCardCreated(gomock.AssignableToTypeOf(entities.JobCard{}))
		events.EXPECT().PartItemsDropped(2)

		in := validInput()
		in.PartItems = []RawPartItem{{PartID: "nope"}, {PartID: "part-103"}, {PartID: "gone"}}
		card, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(card.PartItems) != 1 {
			t.Fatalf("expected 1 part item, got %+v", card.PartItems)
		}
	})
}

func TestJobCardUseCase_UpdateStatus(t *testing.T) {
	t.Run("success refreshes updatedAt", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		card, _ := uc.Create(context.Background(), validInput())

		updated, err := uc.UpdateStatus(context.Background(), card.ID, "READY")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.JobCardStatusReady || !updated.UpdatedAt.After(card.UpdatedAt) || !updated.CreatedAt.Equal(card.CreatedAt) {
			t.Fatalf("unexpected card: %+v", updated)
		}
		if updated.TotalAmount != card.TotalAmount {
			t.Fatalf("pricing changed on status update")
		}

		got, _ := uc.GetByID(context.Background(), card.ID)
		if got.Status != entities.JobCardStatusReady {
			t.Fatalf("status not persisted")
		}
	})

	t.Run("padded status is rejected", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		card, _ := uc.Create(context.Background(), validInput())

		_, err := uc.UpdateStatus(context.Background(), card.ID, " READY ")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected invalid status, got %v", err)
		}
	})

	t.Run("invalid status leaves card untouched", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		card, _ := uc.Create(context.Background(), validInput())

		_, err := uc.UpdateStatus(context.Background(), card.ID, "FINISHED")
		if !errors.Is(err, ErrValidation) || !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected invalid status, got %v", err)
		}
		got, _ := uc.GetByID(context.Background(), card.ID)
		if got.Status != card.Status || !got.UpdatedAt.Equal(card.UpdatedAt) {
			t.Fatalf("card mutated: %+v", got)
		}
	})

	t.Run("invalid status checked before lookup", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		_, err := uc.UpdateStatus(context.Background(), "JC-404404", "")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		_, err := uc.UpdateStatus(context.Background(), "JC-404404", "READY")
		if !errors.Is(err, ErrJobCardNotFound) {
			t.Fatalf("expected ErrJobCardNotFound, got %v", err)
		}
		_, err = uc.UpdateStatus(context.Background(), " ", "READY")
		if !errors.Is(err, ErrInvalidJobCardID) {
			t.Fatalf("expected ErrInvalidJobCardID, got %v", err)
		}
	})

	t.Run("permissive allows any move", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		card, _ := uc.Create(context.Background(), validInput())
		for _, s := range []string{"DELIVERED", "CREATED", "WORK_IN_PROGRESS"} {
			if _, err := uc.UpdateStatus(context.Background(), card.ID, s); err != nil {
				t.Fatalf("move to %s: %v", s, err)
			}
		}
	})

	t.Run("strict enforces transition table", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{StrictTransitions: true})
		card, _ := uc.Create(context.Background(), validInput())

		_, err := uc.UpdateStatus(context.Background(), card.ID, "DELIVERED")
		if !errors.Is(err, ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
		got, _ := uc.GetByID(context.Background(), card.ID)
		if got.Status != entities.JobCardStatusCreated {
			t.Fatalf("card mutated: %+v", got)
		}

		for _, s := range []string{"CREATED", "INSPECTION", "ESTIMATE_SENT", "INSPECTION", "ESTIMATE_SENT", "APPROVED"} {
			if _, err := uc.UpdateStatus(context.Background(), card.ID, s); err != nil {
				t.Fatalf("move to %s: %v", s, err)
			}
		}
	})

	t.Run("events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mock_interfaces.NewMockIJobCardEvents(ctrl)
		uc := newJobCardUseCase(t, JobCardOptions{Events: events})

		events.EXPECT().JobCardCreated(gomock.Any())
		events.EXPECT().StatusUpdated(entities.JobCardStatusCreated, entities.JobCardStatusInspection)

		card, _ := uc.Create(context.Background(), validInput())
		if _, err := uc.UpdateStatus(context.Background(), card.ID, "INSPECTION"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewJobCardUseCase(repo, nil, JobCardOptions{})

		repo.EXPECT().Update(gomock.Any(), "JC-000001", gomock.Any()).Return(entities.JobCard{}, errors.New("db"))

		_, err := uc.UpdateStatus(context.Background(), "JC-000001", "READY")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestJobCardUseCase_GetAndList(t *testing.T) {
	uc := newJobCardUseCase(t, JobCardOptions{})
	phones := []string{"98450-11111", "98450-22222", "+91 70000 11111"}
	for _, p := range phones {
		in := validInput()
		in.Customer.Phone = p
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("get", func(t *testing.T) {
		card, err := uc.GetByID(context.Background(), "JC-000002")
		if err != nil || card.Customer.Phone != "98450-22222" {
			t.Fatalf("unexpected result: %+v, %v", card, err)
		}
		_, err = uc.GetByID(context.Background(), "JC-999999")
		if !errors.Is(err, ErrJobCardNotFound) {
			t.Fatalf("expected ErrJobCardNotFound, got %v", err)
		}
		_, err = uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidJobCardID) {
			t.Fatalf("expected ErrInvalidJobCardID, got %v", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		cards, err := uc.List(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cards) != 3 || cards[0].ID != "JC-000003" || cards[2].ID != "JC-000001" {
			t.Fatalf("unexpected order: %v", cardIDs(cards))
		}
	})

	t.Run("list by phone", func(t *testing.T) {
		cards, _ := uc.List(context.Background(), "11111")
		if len(cards) != 2 || cards[0].ID != "JC-000003" || cards[1].ID != "JC-000001" {
			t.Fatalf("unexpected result: %v", cardIDs(cards))
		}
	})

	t.Run("phone filter is not trimmed", func(t *testing.T) {
		cards, err := uc.List(context.Background(), " 11111 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cards) != 0 {
			t.Fatalf("expected no match, got %v", cardIDs(cards))
		}
	})
}

func TestJobCardUseCase_ListPhoneIgnoresCase(t *testing.T) {
	uc := newJobCardUseCase(t, JobCardOptions{})
	for _, p := range []string{"ABC-xyz", "98450-11111"} {
		in := validInput()
		in.Customer.Phone = p
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for _, filter := range []string{"abc", "XYZ", "c-X"} {
		t.Run(filter, func(t *testing.T) {
			cards, err := uc.List(context.Background(), filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cards) != 1 || cards[0].ID != "JC-000001" {
				t.Fatalf("unexpected result: %v", cardIDs(cards))
			}
		})
	}

	cards, _ := uc.List(context.Background(), "nomatch")
	if len(cards) != 0 {
		t.Fatalf("expected no match, got %v", cardIDs(cards))
	}
}

func TestJobCardUseCase_Metrics(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		m, err := uc.Metrics(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.TotalJobCards != 0 || m.TotalRevenue != 0 || len(m.ByStatus) != len(entities.JobCardStatuses()) {
			t.Fatalf("unexpected metrics: %+v", m)
		}
		for s, n := range m.ByStatus {
			if n != 0 {
				t.Fatalf("expected 0 for %s, got %d", s, n)
			}
		}
	})

	t.Run("aggregates", func(t *testing.T) {
		uc := newJobCardUseCase(t, JobCardOptions{})
		in := validInput()
		in.ServiceItems = []RawServiceItem{{Name: "Wheel Alignment", Cost: f64(100.1)}}
		for i := 0; i < 3; i++ {
			if _, err := uc.Create(context.Background(), in); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if _, err := uc.UpdateStatus(context.Background(), "JC-000001", "READY"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m, _ := uc.Metrics(context.Background())
		if m.TotalJobCards != 3 {
			t.Fatalf("expected 3 cards, got %d", m.TotalJobCards)
		}
		// 100.10 + 18% = 118.118 -> 118.12 per card
		if m.TotalRevenue != 354.36 {
			t.Fatalf("unexpected revenue %v", m.TotalRevenue)
		}
		if m.ByStatus[entities.JobCardStatusCreated] != 2 || m.ByStatus[entities.JobCardStatusReady] != 1 {
			t.Fatalf("unexpected byStatus: %+v", m.ByStatus)
		}
		sum := 0
		for _, n := range m.ByStatus {
			sum += n
		}
		if sum != m.TotalJobCards {
			t.Fatalf("byStatus sums to %d, want %d", sum, m.TotalJobCards)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewJobCardUseCase(repo, nil, JobCardOptions{})
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Metrics(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestJobCardUseCase_Statuses(t *testing.T) {
	uc := newJobCardUseCase(t, JobCardOptions{})
	got := uc.Statuses()
	want := []string{"CREATED", "INSPECTION", "ESTIMATE_SENT", "APPROVED", "PARTS_ORDERED", "WORK_IN_PROGRESS", "READY", "DELIVERED"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("unexpected statuses: %v", got)
	}
}

func cardIDs(cards []entities.JobCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}
