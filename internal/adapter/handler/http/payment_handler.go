package http

import (
	"net/http"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService ports.PaymentService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type PaymentIntentRequest struct {
	Price *float64 `json:"price" binding:"required" example:"500"`
}

type PaymentRequest struct {
	OrderedBikeID string  `json:"orderedbikeId" binding:"required" example:"6390b0b4b5b0f3c1d2e4a111"`
	TransactionID string  `json:"transactionId" binding:"required" example:"pi_3MtwBwLkdIwHu7ix28a3tqPa"`
	Price         float64 `json:"price,omitempty" example:"500"`
	Email         string  `json:"email,omitempty" binding:"omitempty,email"`
}

func NewPaymentHandler(
	paymentService ports.PaymentService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Create payment intent
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PaymentIntentRequest true "Price in dollars"
// @Success 200 {object} clientSecretResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create payment intent", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	secret, err := h.paymentService.CreatePaymentIntent(c.Request.Context(), *req.Price)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, clientSecretResponse{ClientSecret: secret})
}

// @Summary Record payment
// @Description Stores the payment and marks the order paid
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Payment"
// @Success 200 {object} domain.InsertResult
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in record payment", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.paymentService.RecordPayment(c.Request.Context(), &domain.Payment{
		OrderedBikeID: req.OrderedBikeID,
		TransactionID: req.TransactionID,
		Price:         req.Price,
		Email:         req.Email,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
