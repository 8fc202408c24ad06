package handler

import (
	"net/http"
	"time"

	"vidstream/internal/dto"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{DB: db}
}

func (h *HealthHandler) Health(c echo.Context) error {
	response := dto.HealthResponse{Status: "ok", Time: time.Now().UTC()}
	if h.DB != nil {
		sqlDB, err := h.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			response.Status = "degraded"
			return c.JSON(http.StatusServiceUnavailable, response)
		}
	}
	return c.JSON(http.StatusOK, response)
}
