package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jiyoon/drambook/internal/analysis"
	"github.com/jiyoon/drambook/internal/domain"
	"github.com/jiyoon/drambook/internal/repository"
)

const productCachePrefix = "products:"

// ProductHandler serves the venue menu lists used for whiskey-name
// autocompletion. Menus change rarely, so lists are memoized with the
// same TTL cache the analysis engine uses.
type ProductHandler struct {
	products *repository.ProductRepository
	cache    *analysis.ResultCache
}

// NewProductHandler creates a product handler.
func NewProductHandler(products *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{
		products: products,
		cache:    analysis.NewResultCache(0),
	}
}

// List handles GET /api/v1/products?venue=.
func (h *ProductHandler) List(c *gin.Context) {
	venue := c.DefaultQuery("venue", domain.VenueHannam)
	if venue != domain.VenueHannam && venue != domain.VenueChungmuro {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown venue: " + venue})
		return
	}

	names, ok := h.cachedNames(venue)
	if !ok {
		var err error
		names, err = h.products.ListNamesByVenue(c.Request.Context(), venue)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
			return
		}
		if names == nil {
			names = []string{}
		}
		h.cache.Set(productCachePrefix+venue, names)
	}

	c.JSON(http.StatusOK, gin.H{
		"venue":    venue,
		"products": names,
	})
}

func (h *ProductHandler) cachedNames(venue string) ([]string, bool) {
	cached, ok := h.cache.Get(productCachePrefix + venue)
	if !ok {
		return nil, false
	}
	names, ok := cached.([]string)
	return names, ok
}
