package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kozlekmarchewkowy/magazyn/internal/dto"
	"github.com/kozlekmarchewkowy/magazyn/internal/service"
)

type ProductsHandler struct {
	entry     service.ProductEntry
	directory *service.Directory
}

func NewProductsHandler(entry service.ProductEntry, directory *service.Directory) *ProductsHandler {
	return &ProductsHandler{entry: entry, directory: directory}
}

// Create POST /v1/products
//
// The current lookup is rebuilt per request; the client's lookup_version
// (from GET /v1/categories/lookup) guards against submitting a selection made
// from a list that has since changed.
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.NewProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	lookup, err := h.directory.BuildLookup(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.entry.Create(c.Request.Context(), req, lookup)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"detail":  "product added: " + resp.Name,
		"product": resp,
	})
}
