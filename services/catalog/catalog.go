package catalog

import (
	"context"

	catalogRepo "hrp/database/repository/catalog"
	"hrp/models"

	"go.uber.org/zap"
)

// Service serves the per-vertical listings and resolves entries into cart
// line items.
type Service interface {
	List(ctx context.Context, itemType models.ItemType, location string) ([]models.CatalogEntry, error)
	Resolve(ctx context.Context, itemType models.ItemType, id string, quantity int) (*models.BookingItem, error)
}

// CatalogError is a typed service error with a stable code.
type CatalogError struct {
	Code    string
	Message string
}

func (e *CatalogError) Error() string {
	return e.Code + ": " + e.Message
}

var (
	// ErrUnknownVertical is returned for item types outside the closed set.
	ErrUnknownVertical = &CatalogError{Code: "unknownVertical", Message: "unknown catalog vertical"}
	// ErrEntryNotFound is returned when no listing matches the requested ID.
	ErrEntryNotFound = &CatalogError{Code: "entryNotFound", Message: "catalog entry not found"}
)

// DefaultCatalogService implements Service over the catalog repository.
type DefaultCatalogService struct {
	Repo   catalogRepo.CatalogRepository
	Logger *zap.Logger
}

// List returns a vertical's listings, optionally narrowed to a location.
func (s *DefaultCatalogService) List(ctx context.Context, itemType models.ItemType, location string) ([]models.CatalogEntry, error) {
	if !itemType.Valid() {
		return nil, ErrUnknownVertical
	}
	if location != "" {
		return s.Repo.ListByTypeAndLocation(ctx, itemType, location)
	}
	return s.Repo.ListByType(ctx, itemType)
}

// Resolve looks up one catalog entry and converts it into a booking line
// item with the requested quantity.
func (s *DefaultCatalogService) Resolve(ctx context.Context, itemType models.ItemType, id string, quantity int) (*models.BookingItem, error) {
	if !itemType.Valid() {
		return nil, ErrUnknownVertical
	}
	entry, err := s.Repo.GetByID(ctx, itemType, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	item := entry.ToBookingItem(quantity)
	return &item, nil
}
