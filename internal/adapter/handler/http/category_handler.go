package http

import (
	"net/http"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

func NewCategoryHandler(
	categoryService ports.CategoryService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
		metrics:         metrics,
	}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary Get category
// @Description Returns null when no category has the id
// @Tags categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} domain.Category
// @Failure 400 {object} errorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	category, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}
