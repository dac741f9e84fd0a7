package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	analyticsService service.AnalyticsService
}

func NewAdminHandler(analyticsService service.AnalyticsService) *AdminHandler {
	return &AdminHandler{analyticsService: analyticsService}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/api/admin", middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("/cache/invalidate", h.InvalidateCache)
	}
}

// InvalidateCache drops every cached analytics view. Run it after the import
// CLI swaps in a new order set so views never mix two snapshots.
// @Summary      Invalidate analytics cache
// @Description  Drops all cached analytics views so the next request recomputes from the current order set
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response
// @Failure      403 {object} response.Response
// @Router       /api/admin/cache/invalidate [post]
func (h *AdminHandler) InvalidateCache(c *gin.Context) {
	h.analyticsService.InvalidateCache()
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Analytics cache invalidated"))
}
