package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kozlekmarchewkowy/magazyn/internal/apperror"
	"github.com/kozlekmarchewkowy/magazyn/internal/dto"
	"github.com/kozlekmarchewkowy/magazyn/internal/service"
)

type BrowseHandler struct {
	svc          service.Browse
	defaultLimit int
}

func NewBrowseHandler(svc service.Browse, defaultLimit int) *BrowseHandler {
	if defaultLimit <= 0 {
		defaultLimit = service.DefaultRecentLimit
	}
	return &BrowseHandler{svc: svc, defaultLimit: defaultLimit}
}

// isEmptyResult reports whether err is the informational no-rows state.
func isEmptyResult(err error) bool {
	var e *apperror.Error
	return errors.As(err, &e) && e.Kind == apperror.KindEmptyResult
}

// Recent GET /v1/products/recent?limit=N
//
// An empty catalog answers 200 with an empty row set and an informational
// detail — it is not a failure.
func (h *BrowseHandler) Recent(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	rows, err := h.svc.FetchRecent(c.Request.Context(), limit)
	if err != nil {
		if isEmptyResult(err) {
			c.JSON(http.StatusOK, gin.H{"rows": []dto.ProductRow{}, "detail": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// Stats GET /v1/stats
func (h *BrowseHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		if isEmptyResult(err) {
			c.JSON(http.StatusOK, gin.H{"detail": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ResetProducts DELETE /v1/admin/products?confirm=true
//
// Irreversible: wipes the products table, categories stay. Refused without
// the explicit confirm flag.
func (h *BrowseHandler) ResetProducts(c *gin.Context) {
	confirm := c.Query("confirm") == "true"
	if err := h.svc.ResetProducts(c.Request.Context(), confirm); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "all products deleted"})
}
