package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCard(id, phone string) entities.JobCard {
	return entities.JobCard{
		ID:       id,
		Status:   entities.JobCardStatusCreated,
		Customer: entities.Customer{Name: "Asha", Phone: phone},
		ServiceItems: []entities.ServiceLineItem{
			{Name: "General Inspection", Cost: 650},
		},
	}
}

func TestJobCardMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewJobCardMemoryRepository()

	created, err := repo.Create(ctx, newCard("JC-000001", "9876543210"))
	require.NoError(t, err)
	assert.Equal(t, "JC-000001", created.ID)

	got, err := repo.GetByID(ctx, "JC-000001")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	missing, err := repo.GetByID(ctx, "JC-999999")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	_, err = repo.Create(ctx, newCard("JC-000001", "1"))
	assert.Error(t, err)

	_, err = repo.Create(ctx, newCard("", "1"))
	assert.Error(t, err)
}

func TestJobCardMemoryRepository_ListNewestFirstWithPhoneFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewJobCardMemoryRepository()

	for i, phone := range []string{"98765-11111", "98765-22222", "+91 70000 11111"} {
		_, err := repo.Create(ctx, newCard(fmt.Sprintf("JC-%06d", i+1), phone))
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, interfaces.JobCardFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"JC-000003", "JC-000002", "JC-000001"}, ids(all))

	filtered, err := repo.List(ctx, interfaces.JobCardFilter{CustomerPhone: "11111"})
	require.NoError(t, err)
	assert.Equal(t, []string{"JC-000003", "JC-000001"}, ids(filtered))

	none, err := repo.List(ctx, interfaces.JobCardFilter{CustomerPhone: "00000000"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestJobCardMemoryRepository_PhoneFilterIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewJobCardMemoryRepository()
	_, err := repo.Create(ctx, newCard("JC-000001", "ABC-xyz"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newCard("JC-000002", "98765-11111"))
	require.NoError(t, err)

	for _, filter := range []string{"abc", "XYZ", "bC-X"} {
		got, err := repo.List(ctx, interfaces.JobCardFilter{CustomerPhone: filter})
		require.NoError(t, err)
		assert.Equal(t, []string{"JC-000001"}, ids(got), filter)
	}

	none, err := repo.List(ctx, interfaces.JobCardFilter{CustomerPhone: "nomatch"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestJobCardMemoryRepository_CopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewJobCardMemoryRepository()

	card := newCard("JC-000001", "1")
	_, err := repo.Create(ctx, card)
	require.NoError(t, err)

	card.ServiceItems[0].Cost = 1
	got, err := repo.GetByID(ctx, "JC-000001")
	require.NoError(t, err)
	assert.Equal(t, 650.0, got.ServiceItems[0].Cost)

	got.ServiceItems[0].Name = "tampered"
	again, err := repo.GetByID(ctx, "JC-000001")
	require.NoError(t, err)
	assert.Equal(t, "General Inspection", again.ServiceItems[0].Name)
}

func TestJobCardMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewJobCardMemoryRepository()
	_, err := repo.Create(ctx, newCard("JC-000001", "1"))
	require.NoError(t, err)

	t.Run("mutates stored card", func(t *testing.T) {
		updated, err := repo.Update(ctx, "JC-000001", func(c *entities.JobCard) error {
			c.Status = entities.JobCardStatusReady
			c.ID = "ignored"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "JC-000001", updated.ID)
		assert.Equal(t, entities.JobCardStatusReady, updated.Status)

		got, _ := repo.GetByID(ctx, "JC-000001")
		assert.Equal(t, entities.JobCardStatusReady, got.Status)
	})

	t.Run("mutate error leaves card untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repo.Update(ctx, "JC-000001", func(c *entities.JobCard) error {
			c.Status = entities.JobCardStatusDelivered
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, _ := repo.GetByID(ctx, "JC-000001")
		assert.Equal(t, entities.JobCardStatusReady, got.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		called := false
		got, err := repo.Update(ctx, "JC-404", func(*entities.JobCard) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.Empty(t, got.ID)
		assert.False(t, called)
	})
}

func TestJobCardMemoryRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewJobCardMemoryRepository()

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, newCard(fmt.Sprintf("JC-%06d", i+1), "1"))
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			_, err := repo.List(ctx, interfaces.JobCardFilter{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx, interfaces.JobCardFilter{})
	require.NoError(t, err)
	assert.Len(t, all, writers)
}

func ids(cards []entities.JobCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}
