package interfaces

import (
	"context"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
)

// JobCardFilter narrows List. Empty fields match everything.
type JobCardFilter struct {
	// CustomerPhone is a case-insensitive substring of the stored phone.
	CustomerPhone string
}

// IJobCardRepository owns the live job-card collection.
//
// Lookups return a zero-value JobCard (ID == "") when nothing matches.
// List returns most recently created cards first.
type IJobCardRepository interface {
	Create(ctx context.Context, card entities.JobCard) (entities.JobCard, error)
	GetByID(ctx context.Context, id string) (entities.JobCard, error)
	List(ctx context.Context, filter JobCardFilter) ([]entities.JobCard, error)
	// Update runs mutate on the stored card while holding the collection
	// exclusively. An error from mutate leaves the card untouched.
	Update(ctx context.Context, id string, mutate func(card *entities.JobCard) error) (entities.JobCard, error)
}
