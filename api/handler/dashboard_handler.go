package handler

import (
	"net/http"

	"vidstream/internal/dto"
	"vidstream/internal/service"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	Service *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	stats, err := h.Service.Stats(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DashboardStatsResponse{
		TotalVideos:    stats.TotalVideos,
		TotalViews:     stats.TotalViews,
		TotalFollowers: stats.TotalFollowers,
		TotalLikes:     stats.TotalLikes,
	})
}
