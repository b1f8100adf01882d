package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService ports.UserService
	authService ports.AuthService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type CreateUserRequest struct {
	Name        string `json:"name" example:"Rahim"`
	Email       string `json:"email" binding:"required,email" example:"a@x.com"`
	AccountType string `json:"accountType" binding:"omitempty,oneof=Buyer Seller" example:"Seller"`
	Image       string `json:"image,omitempty"`
}

func NewUserHandler(
	userService ports.UserService,
	authService ports.AuthService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Sign up
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User"
// @Success 200 {object} domain.InsertResult
// @Failure 400 {object} errorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create user", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.userService.CreateUser(c.Request.Context(), &domain.User{
		Name:        req.Name,
		Email:       req.Email,
		AccountType: domain.AccountType(req.AccountType),
		Image:       req.Image,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Issue access token
// @Description Signs an 8 hour token for a registered email
// @Tags users
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} tokenResponse
// @Failure 403 {object} tokenResponse
// @Router /jwt [get]
func (h *UserHandler) IssueToken(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	token, err := h.authService.IssueToken(c.Request.Context(), c.Query("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusForbidden, tokenResponse{AccessToken: ""})
			return
		}
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} domain.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Delete user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} domain.DeleteResult
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	result, err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if payload, ok := getAuthPayload(c, authorizationPayloadKey); ok {
		h.logger.Info("User deleted by request", map[string]interface{}{
			"user_id":    c.Param("id"),
			"deleted_by": payload.Email,
		})
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Is admin
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} isAdminResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) IsAdmin(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	isAdmin, err := h.userService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, isAdminResponse{IsAdmin: isAdmin})
}

// @Summary Is buyer
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} isBuyerResponse
// @Router /users/buyer/{email} [get]
func (h *UserHandler) IsBuyer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	isBuyer, err := h.userService.IsBuyer(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, isBuyerResponse{IsBuyer: isBuyer})
}

// @Summary Is seller
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} isSellerResponse
// @Router /users/seller/{email} [get]
func (h *UserHandler) IsSeller(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	isSeller, err := h.userService.IsSeller(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, isSellerResponse{IsSeller: isSeller})
}
