package handlers

import (
	"net/http"

	"hrp/models"
	"hrp/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the per-vertical listings.
type CatalogHandler struct {
	Service catalog.Service
}

// NewCatalogHandler returns a CatalogHandler over the given service.
func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// List returns one vertical's catalog, optionally filtered by ?location=.
func (h *CatalogHandler) List(c *gin.Context) {
	itemType := models.ItemType(c.Param("type"))
	entries, err := h.Service.List(c.Request.Context(), itemType, c.Query("location"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
