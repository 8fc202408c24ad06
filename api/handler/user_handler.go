package handler

import (
	"net/http"

	"vidstream/internal/dto"
	"vidstream/internal/service"
	"vidstream/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Service  *service.UserService
	Validate *validator.Validate
}

func NewUserHandler(svc *service.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{Service: svc, Validate: validate}
}

func (h *UserHandler) CheckUsername(c echo.Context) error {
	username := utils.NormalizeUsername(c.Param("username"))
	available, err := h.Service.CheckUsername(c.Request().Context(), username)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CheckUsernameResponse{
		Username:  username,
		Available: available,
	})
}

func (h *UserHandler) ChannelProfile(c echo.Context) error {
	profile, err := h.Service.GetChannelProfile(c.Request().Context(), c.Param("username"), viewerID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ChannelProfileResponseFromService(profile))
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.UpdateProfileRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	user, err := h.Service.UpdateProfile(c.Request().Context(), userID, req.Name, req.Bio)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *UserHandler) UpdateEmail(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.UpdateEmailRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	user, err := h.Service.UpdateEmail(c.Request().Context(), userID, req.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *UserHandler) UpdateProfileImage(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	header, err := c.FormFile("image")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	file, err := header.Open()
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	defer file.Close()
	user, err := h.Service.UpdateProfileImage(
		c.Request().Context(), userID, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *UserHandler) WatchHistory(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	page, limit := parsePage(c)
	entries, total, err := h.Service.WatchHistory(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.WatchHistoryResponseFromEntities(entries, pageMeta(page, limit, total)))
}
