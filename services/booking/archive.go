package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"hrp/models"

	"github.com/go-redis/redis/v8"
)

// Key layout of the archive. The confirmation page reads latestOrderId and
// then order_<id>, so these names are part of the external contract.
const latestOrderKey = "latestOrderId"

func orderKey(orderID string) string {
	return "order_" + orderID
}

// OrderArchive is the key-value blob store orders are exported to at
// checkout. Writes are one-way: an archived order is never edited.
type OrderArchive interface {
	Put(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	Latest(ctx context.Context) (*models.Order, error)
}

// RedisOrderArchive stores each order as a JSON blob under order_<id> and
// keeps a latestOrderId pointer to the most recent one.
type RedisOrderArchive struct {
	Client *redis.Client
}

// NewRedisOrderArchive returns an order archive backed by Redis.
func NewRedisOrderArchive(client *redis.Client) *RedisOrderArchive {
	return &RedisOrderArchive{Client: client}
}

func (a *RedisOrderArchive) Put(ctx context.Context, order *models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	if err := a.Client.Set(ctx, orderKey(order.OrderID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to archive order: %w", err)
	}
	if err := a.Client.Set(ctx, latestOrderKey, order.OrderID, 0).Err(); err != nil {
		return fmt.Errorf("failed to update latest order pointer: %w", err)
	}
	return nil
}

func (a *RedisOrderArchive) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	data, err := a.Client.Get(ctx, orderKey(orderID)).Result()
	if err == redis.Nil {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	var order models.Order
	if err := json.Unmarshal([]byte(data), &order); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}
	return &order, nil
}

func (a *RedisOrderArchive) Latest(ctx context.Context) (*models.Order, error) {
	orderID, err := a.Client.Get(ctx, latestOrderKey).Result()
	if err == redis.Nil {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest order pointer: %w", err)
	}
	return a.GetByID(ctx, orderID)
}

// MemoryOrderArchive is a map-backed OrderArchive for tests.
type MemoryOrderArchive struct {
	mu       sync.Mutex
	orders   map[string]models.Order
	latestID string
}

// NewMemoryOrderArchive returns an empty in-memory order archive.
func NewMemoryOrderArchive() *MemoryOrderArchive {
	return &MemoryOrderArchive{orders: make(map[string]models.Order)}
}

func (a *MemoryOrderArchive) Put(ctx context.Context, order *models.Order) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.orders[order.OrderID] = *order
	a.latestID = order.OrderID
	return nil
}

func (a *MemoryOrderArchive) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	order, ok := a.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

func (a *MemoryOrderArchive) Latest(ctx context.Context) (*models.Order, error) {
	a.mu.Lock()
	latestID := a.latestID
	a.mu.Unlock()
	if latestID == "" {
		return nil, ErrOrderNotFound
	}
	return a.GetByID(ctx, latestID)
}
