package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kozlekmarchewkowy/magazyn/internal/dto"
	"github.com/kozlekmarchewkowy/magazyn/internal/service"
)

type CategoriesHandler struct {
	svc       service.CategoryEntry
	directory *service.Directory
}

func NewCategoriesHandler(svc service.CategoryEntry, directory *service.Directory) *CategoriesHandler {
	return &CategoriesHandler{svc: svc, directory: directory}
}

// Create POST /v1/categories
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.NewCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/categories
func (h *CategoriesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Lookup GET /v1/categories/lookup
//
// Returns the version-tagged name→id mapping product entry selects from. An
// empty directory is a 409: an expected first-run state that blocks product
// entry, carrying a warning rather than a fault.
func (h *CategoriesHandler) Lookup(c *gin.Context) {
	lookup, err := h.directory.BuildLookup(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lookup)
}
