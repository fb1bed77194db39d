package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"
)

// JobCardMemoryRepository keeps job cards for the lifetime of the process.
//
// Cards are appended in creation order and read back newest first. A single
// RWMutex guards the collection; Update holds the write lock across the whole
// read-modify-write. Cards are deep-copied on the way in and out.
type JobCardMemoryRepository struct {
	mu    sync.RWMutex
	cards []entities.JobCard
	index map[string]int
}

var _ interfaces.IJobCardRepository = (*JobCardMemoryRepository)(nil)

func NewJobCardMemoryRepository() *JobCardMemoryRepository {
	return &JobCardMemoryRepository{index: make(map[string]int)}
}

func (r *JobCardMemoryRepository) Create(_ context.Context, card entities.JobCard) (entities.JobCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if card.ID == "" {
		return entities.JobCard{}, fmt.Errorf("job card id is required")
	}
	if _, exists := r.index[card.ID]; exists {
		return entities.JobCard{}, fmt.Errorf("job card %s already exists", card.ID)
	}

	r.index[card.ID] = len(r.cards)
	r.cards = append(r.cards, card.Clone())
	return card.Clone(), nil
}

func (r *JobCardMemoryRepository) GetByID(_ context.Context, id string) (entities.JobCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return entities.JobCard{}, nil
	}
	return r.cards[pos].Clone(), nil
}

func (r *JobCardMemoryRepository) List(_ context.Context, filter interfaces.JobCardFilter) ([]entities.JobCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	phone := strings.ToLower(filter.CustomerPhone)
	out := make([]entities.JobCard, 0, len(r.cards))
	for i := len(r.cards) - 1; i >= 0; i-- {
		c := r.cards[i]
		if phone != "" && !strings.Contains(strings.ToLower(c.Customer.Phone), phone) {
			continue
		}
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *JobCardMemoryRepository) Update(_ context.Context, id string, mutate func(card *entities.JobCard) error) (entities.JobCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return entities.JobCard{}, nil
	}

	draft := r.cards[pos].Clone()
	if err := mutate(&draft); err != nil {
		return entities.JobCard{}, err
	}
	draft.ID = id
	r.cards[pos] = draft
	return draft.Clone(), nil
}
