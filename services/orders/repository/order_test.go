package repository

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkananta/rantai/internal/pkg/models"
)

func TestMemoryOrderRepo_CreateOrdersAssignsIncreasingIDs(t *testing.T) {
	// Arrange
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	orders := []models.ManufacturerOrder{
		{ManufacturerID: "M1", Status: models.OrderStatusPending},
		{ManufacturerID: "M2", Status: models.OrderStatusPending},
	}

	// Act
	first, err := repo.CreateOrders(ctx, orders)
	second, secondErr := repo.CreateOrders(ctx, orders[:1])

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, first)
	assert.NoError(t, secondErr)
	assert.Equal(t, []int64{3}, second)
}

func TestMemoryOrderRepo_ConcurrentCreateOrdersUniqueIDs(t *testing.T) {
	// Arrange
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	const workers = 20
	const perWorker = 5

	var wg sync.WaitGroup
	idCh := make(chan int64, workers*perWorker)

	// Act
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			orders := make([]models.ManufacturerOrder, perWorker)
			for j := range orders {
				orders[j] = models.ManufacturerOrder{ManufacturerID: "M1"}
			}
			ids, err := repo.CreateOrders(ctx, orders)
			assert.NoError(t, err)
			for _, id := range ids {
				idCh <- id
			}
		}()
	}
	wg.Wait()
	close(idCh)

	// Assert: every id unique, forming the exact range [1, workers*perWorker]
	ids := make([]int64, 0, workers*perWorker)
	for id := range idCh {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	assert.Len(t, ids, workers*perWorker)
	for i, id := range ids {
		assert.Equal(t, int64(i+1), id)
	}
}

func TestMemoryOrderRepo_ListByManufacturer(t *testing.T) {
	// Arrange
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	_, err := repo.CreateOrders(ctx, []models.ManufacturerOrder{
		{ManufacturerID: "M1"},
		{ManufacturerID: "M2"},
		{ManufacturerID: "M1"},
	})
	assert.NoError(t, err)

	// Act
	matched, listErr := repo.ListByManufacturer(ctx, "M1")

	// Assert: insertion order preserved
	assert.NoError(t, listErr)
	assert.Len(t, matched, 2)
	assert.Equal(t, int64(1), matched[0].OrderID)
	assert.Equal(t, int64(3), matched[1].OrderID)
}

func TestMemoryOrderRepo_ListByManufacturerUnknown(t *testing.T) {
	// Arrange
	repo := NewMemoryOrderRepo()

	// Act
	matched, err := repo.ListByManufacturer(context.Background(), "M9")

	// Assert: empty slice, not an error
	assert.NoError(t, err)
	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestMemoryOrderRepo_ListAll(t *testing.T) {
	// Arrange
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	_, err := repo.CreateOrders(ctx, []models.ManufacturerOrder{
		{ManufacturerID: "M1"},
		{ManufacturerID: "M2"},
	})
	assert.NoError(t, err)

	// Act
	all, listErr := repo.ListAll(ctx)

	// Assert
	assert.NoError(t, listErr)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].OrderID)
	assert.Equal(t, int64(2), all[1].OrderID)
}

func TestMemoryOrderRepo_ListAllReturnsCopy(t *testing.T) {
	// Arrange
	repo := NewMemoryOrderRepo()
	ctx := context.Background()
	_, err := repo.CreateOrders(ctx, []models.ManufacturerOrder{{ManufacturerID: "M1"}})
	assert.NoError(t, err)

	// Act: mutating the returned slice must not touch the log
	all, _ := repo.ListAll(ctx)
	all[0].ManufacturerID = "tampered"
	again, _ := repo.ListAll(ctx)

	// Assert
	assert.Equal(t, "M1", again[0].ManufacturerID)
}

func TestMemoryOrderRepo_CreateOrdersEmptyBatch(t *testing.T) {
	// Arrange
	repo := NewMemoryOrderRepo()

	// Act
	ids, err := repo.CreateOrders(context.Background(), nil)

	// Assert: no ids consumed
	assert.NoError(t, err)
	assert.Empty(t, ids)

	next, err := repo.CreateOrders(context.Background(), []models.ManufacturerOrder{{ManufacturerID: "M1"}})
	assert.NoError(t, err)
	assert.Equal(t, []int64{1}, next)
}
