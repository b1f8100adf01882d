package http

import (
	"net/http"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService ports.OrderService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

type CreateOrderRequest struct {
	BikeID    string   `json:"bikeId,omitempty"`
	BikeName  string   `json:"bikeName,omitempty" example:"Yamaha R15"`
	Email     string   `json:"email" binding:"required,email" example:"a@x.com"`
	BuyerName string   `json:"buyerName,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Location  string   `json:"location,omitempty"`
	Price     *float64 `json:"price" binding:"required" example:"500"`
	Image     string   `json:"image,omitempty"`
}

func NewOrderHandler(
	orderService ports.OrderService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary Place order
// @Tags bikeorders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order"
// @Success 200 {object} domain.InsertResult
// @Failure 400 {object} errorResponse
// @Router /bikeorders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create order", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.orderService.CreateOrder(c.Request.Context(), &domain.BikeOrder{
		BikeID:    req.BikeID,
		BikeName:  req.BikeName,
		Email:     req.Email,
		BuyerName: req.BuyerName,
		Phone:     req.Phone,
		Location:  req.Location,
		Price:     *req.Price,
		Image:     req.Image,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get order
// @Description Returns null when no order has the id
// @Tags bikeorders
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} domain.BikeOrder
// @Failure 400 {object} errorResponse
// @Router /bikeorders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary My orders
// @Description Lists the orders placed with the caller's email
// @Tags bikeorders
// @Security BearerAuth
// @Produce json
// @Param email query string false "Buyer email, must match the token"
// @Success 200 {array} domain.BikeOrder
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /bikeorders [get]
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	orders, err := h.orderService.GetOrdersByEmail(c.Request.Context(), payload.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
