package http

import (
	"errors"
	"net/http"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"

	"github.com/gin-gonic/gin"
)

const (
	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden access"
	msgInternal     = "internal server error"
)

type errorResponse struct {
	Message string `json:"message" example:"forbidden access"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type clientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type isAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type isBuyerResponse struct {
	IsBuyer bool `json:"isBuyer"`
}

type isSellerResponse struct {
	IsSeller bool `json:"isSeller"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

// writeServiceError maps service errors: bad input is a 400, anything from
// the database or the payment processor is a bare 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		newErrorResponse(c, http.StatusBadRequest, domain.ErrInvalidID.Error())
	case errors.Is(err, domain.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		newErrorResponse(c, http.StatusInternalServerError, msgInternal)
	}
}
