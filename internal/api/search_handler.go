package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/core"
	"github.com/saathiconnect/saathi-backend/internal/geocode"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// SearchHandler handles worker search and location suggestions.
type SearchHandler struct {
	searchService core.SearchService
	reviewService core.ReviewService
	geocoder      *geocode.Client
	logger        *zap.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(ss core.SearchService, rs core.ReviewService, geocoder *geocode.Client, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{searchService: ss, reviewService: rs, geocoder: geocoder, logger: logger}
}

// SearchWorkers handles GET /search/workers?pincode=&category=
// An unfilterable or failing query yields an empty list, never an error.
func (h *SearchHandler) SearchWorkers(c *gin.Context) {
	pincode := c.Query("pincode")
	category := c.Query("category")

	workers := h.searchService.SearchWorkers(c.Request.Context(), pincode, category)
	if workers == nil {
		workers = []*models.Profile{}
	}
	c.JSON(http.StatusOK, gin.H{"workers": workers})
}

// Categories handles GET /search/categories
func (h *SearchHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.WorkerCategories})
}

// Geocode handles GET /search/locations?q=
func (h *SearchHandler) Geocode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter q is required"})
		return
	}

	suggestions := h.geocoder.Search(c.Request.Context(), query)
	if suggestions == nil {
		suggestions = []geocode.Suggestion{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// WorkerReviews handles GET /workers/:workerId/reviews
func (h *SearchHandler) WorkerReviews(c *gin.Context) {
	workerID := c.Param("workerId")
	if workerID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "worker ID is required"})
		return
	}

	reviews, err := h.reviewService.ListForWorker(c.Request.Context(), workerID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	if reviews == nil {
		reviews = []*models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
