package catalogRepo

import (
	"context"
	"errors"

	"hrp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByType returns every catalog entry of one vertical, sorted by name.
func (r *mongoCatalogRepo) ListByType(ctx context.Context, itemType models.ItemType) ([]models.CatalogEntry, error) {
	return r.list(ctx, bson.M{"type": itemType})
}

// ListByTypeAndLocation narrows a vertical's listings to one service area.
func (r *mongoCatalogRepo) ListByTypeAndLocation(ctx context.Context, itemType models.ItemType, location string) ([]models.CatalogEntry, error) {
	return r.list(ctx, bson.M{"type": itemType, "location": location})
}

func (r *mongoCatalogRepo) list(ctx context.Context, filter bson.M) ([]models.CatalogEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.CatalogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID returns one catalog entry, or nil when no entry matches.
func (r *mongoCatalogRepo) GetByID(ctx context.Context, itemType models.ItemType, id string) (*models.CatalogEntry, error) {
	var entry models.CatalogEntry
	err := r.coll.FindOne(ctx, bson.M{"type": itemType, "id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// SeedIfEmpty loads the bundled listings into an empty collection so a fresh
// deployment has something to render.
func (r *mongoCatalogRepo) SeedIfEmpty(ctx context.Context, entries []models.CatalogEntry) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	docs := make([]interface{}, len(entries))
	for i, e := range entries {
		docs[i] = e
	}
	_, err = r.coll.InsertMany(ctx, docs)
	return err
}
