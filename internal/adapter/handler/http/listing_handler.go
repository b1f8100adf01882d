package http

import (
	"net/http"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingService ports.ListingService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type CreateListingRequest struct {
	SellerEmail   string  `json:"sellerEmail" binding:"required,email" example:"seller@x.com"`
	SellerName    string  `json:"sellerName,omitempty"`
	Name          string  `json:"name,omitempty" example:"Suzuki Gixxer"`
	CategoryID    string  `json:"categoryId,omitempty"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	ResalePrice   float64 `json:"resalePrice,omitempty"`
	YearsOfUse    int     `json:"yearsOfUse,omitempty"`
	Condition     string  `json:"condition,omitempty"`
	Location      string  `json:"location,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Image         string  `json:"image,omitempty"`
	Description   string  `json:"description,omitempty"`
}

func NewListingHandler(
	listingService ports.ListingService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Add listing
// @Tags addedbikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateListingRequest true "Listing"
// @Success 200 {object} domain.InsertResult
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /addedbikes [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create listing", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.listingService.CreateListing(c.Request.Context(), &domain.AddedBike{
		SellerEmail:   req.SellerEmail,
		SellerName:    req.SellerName,
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		OriginalPrice: req.OriginalPrice,
		ResalePrice:   req.ResalePrice,
		YearsOfUse:    req.YearsOfUse,
		Condition:     req.Condition,
		Location:      req.Location,
		Phone:         req.Phone,
		Image:         req.Image,
		Description:   req.Description,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Seller listings
// @Tags addedbikes
// @Security BearerAuth
// @Produce json
// @Param email query string true "Seller email"
// @Success 200 {array} domain.AddedBike
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /addedbikes [get]
func (h *ListingHandler) GetSellerListings(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.listingService.GetListingsBySeller(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bikes)
}

// @Summary All listings
// @Tags addedbikes
// @Produce json
// @Success 200 {array} domain.AddedBike
// @Router /addedbikesss [get]
func (h *ListingHandler) ListListings(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.listingService.ListListings(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bikes)
}

// @Summary Delete listing
// @Tags addedbikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} domain.DeleteResult
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /addedbikes/{id} [delete]
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	result, err := h.listingService.DeleteListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Advertise listing
// @Description Sets isAdvertise to "advertise", creating the document if needed
// @Tags addedbikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} domain.UpdateResult
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /addedbikes/{id} [put]
func (h *ListingHandler) AdvertiseListing(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	result, err := h.listingService.AdvertiseListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
