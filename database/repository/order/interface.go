package orderRepo

import (
	"context"

	"hrp/database"
	"hrp/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRecordRepository keeps the durable order history read by the
// dashboards, alongside the key-value archive the confirmation page uses.
type OrderRecordRepository interface {
	Create(ctx context.Context, order models.Order) error
	GetByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Order, error)
	ListByGuestEmail(ctx context.Context, email string) ([]models.Order, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns an OrderRecordRepository backed by MongoDB.
func NewMongoOrderRepo() OrderRecordRepository {
	return &mongoOrderRepo{
		coll: database.DB().Collection("orders"),
	}
}
