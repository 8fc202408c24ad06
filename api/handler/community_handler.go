package handler

import (
	"net/http"

	"vidstream/internal/dto"
	"vidstream/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CommunityHandler struct {
	Service  *service.CommunityService
	Validate *validator.Validate
}

func NewCommunityHandler(svc *service.CommunityService, validate *validator.Validate) *CommunityHandler {
	return &CommunityHandler{Service: svc, Validate: validate}
}

func (h *CommunityHandler) Create(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CommunityPostRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	post, err := h.Service.Create(c.Request().Context(), userID, req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CommunityPostResponseFromEntity(post))
}

func (h *CommunityHandler) ListByUser(c echo.Context) error {
	ownerID, err := parseIDParam(c, "userId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	page, limit := parsePage(c)
	posts, total, err := h.Service.ListByUser(c.Request().Context(), ownerID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CommunityPostListResponseFromEntities(posts, pageMeta(page, limit, total)))
}

func (h *CommunityHandler) Update(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.CommunityPostRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	post, err := h.Service.Update(c.Request().Context(), userID, postID, req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CommunityPostResponseFromEntity(post))
}

func (h *CommunityHandler) Delete(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.Delete(c.Request().Context(), userID, postID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
