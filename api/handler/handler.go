package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"vidstream/api/middleware"
	"vidstream/internal/dto"
	"vidstream/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrCodeExpired),
		errors.Is(err, service.ErrVideoAlreadyInList),
		errors.Is(err, service.ErrVideoNotInList):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnverifiedOrNotFound),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidRefreshToken),
		errors.Is(err, service.ErrInvalidCode):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrSelfFollow):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUserExists), errors.Is(err, service.ErrAlreadyVerified):
		status = http.StatusConflict
	case errors.Is(err, service.ErrMediaTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrUnsupportedMediaType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, service.ErrEmailSendFailed):
		status = http.StatusBadGateway
	}
	return writeError(c, status, err)
}

func parsePage(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func pageMeta(page, limit int, total int64) dto.PageMeta {
	return dto.PageMeta{Page: page, Limit: limit, Total: total}
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.New("invalid " + name)
	}
	return id, nil
}

func requireUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return uuid.Nil, errors.New("unauthorized")
	}
	return userID, nil
}

// viewerID returns the authenticated user when present, nil otherwise.
func viewerID(c echo.Context) *uuid.UUID {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return nil
	}
	return &userID
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
