package catalog

import (
	"context"
	"testing"

	"hrp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo serves SeedEntries from memory.
type stubRepo struct{}

func (stubRepo) ListByType(ctx context.Context, itemType models.ItemType) ([]models.CatalogEntry, error) {
	var out []models.CatalogEntry
	for _, e := range SeedEntries {
		if e.Type == itemType {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r stubRepo) ListByTypeAndLocation(ctx context.Context, itemType models.ItemType, location string) ([]models.CatalogEntry, error) {
	all, _ := r.ListByType(ctx, itemType)
	var out []models.CatalogEntry
	for _, e := range all {
		if e.Location == location {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r stubRepo) GetByID(ctx context.Context, itemType models.ItemType, id string) (*models.CatalogEntry, error) {
	all, _ := r.ListByType(ctx, itemType)
	for _, e := range all {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (stubRepo) SeedIfEmpty(ctx context.Context, entries []models.CatalogEntry) error {
	return nil
}

func TestCatalogService_List(t *testing.T) {
	svc := &DefaultCatalogService{Repo: stubRepo{}}
	ctx := context.Background()

	entries, err := svc.List(ctx, models.ItemTypePhotographer, "")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	jakarta, err := svc.List(ctx, models.ItemTypePhotographer, "Jakarta")
	require.NoError(t, err)
	for _, e := range jakarta {
		assert.Equal(t, "Jakarta", e.Location)
	}

	_, err = svc.List(ctx, "catering", "")
	assert.ErrorIs(t, err, ErrUnknownVertical)
}

func TestCatalogService_Resolve(t *testing.T) {
	svc := &DefaultCatalogService{Repo: stubRepo{}}
	ctx := context.Background()

	item, err := svc.Resolve(ctx, models.ItemTypeEquipment, "e1", 3)
	require.NoError(t, err)
	assert.Equal(t, "e1", item.ID)
	assert.Equal(t, models.ItemTypeEquipment, item.Type)
	assert.Equal(t, 3, item.Quantity)
	assert.EqualValues(t, 250000, item.DailyRate)

	// Quantity below one resolves to the single-unit default.
	single, err := svc.Resolve(ctx, models.ItemTypeEquipment, "e1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, single.Quantity)

	_, err = svc.Resolve(ctx, models.ItemTypeEquipment, "missing", 1)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = svc.Resolve(ctx, "catering", "e1", 1)
	assert.ErrorIs(t, err, ErrUnknownVertical)
}

func TestSeedEntries_Shape(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range SeedEntries {
		assert.True(t, e.Type.Valid(), "seed entry %s has invalid type", e.ID)
		assert.GreaterOrEqual(t, e.DailyRate, int64(0))
		key := string(e.Type) + "/" + e.ID
		assert.False(t, seen[key], "duplicate seed entry %s", key)
		seen[key] = true
	}
}
