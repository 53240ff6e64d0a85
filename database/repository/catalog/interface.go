package catalogRepo

import (
	"context"

	"hrp/database"
	"hrp/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository serves the per-vertical listings rendered by the landing
// pages and resolves individual entries for add-to-cart calls.
type CatalogRepository interface {
	ListByType(ctx context.Context, itemType models.ItemType) ([]models.CatalogEntry, error)
	ListByTypeAndLocation(ctx context.Context, itemType models.ItemType, location string) ([]models.CatalogEntry, error)
	GetByID(ctx context.Context, itemType models.ItemType, id string) (*models.CatalogEntry, error)
	SeedIfEmpty(ctx context.Context, entries []models.CatalogEntry) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	return &mongoCatalogRepo{
		coll: database.DB().Collection("catalog"),
	}
}
