package handler

import (
	"net/http"

	"vidstream/internal/dto"
	"vidstream/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PlaylistHandler struct {
	Service  *service.PlaylistService
	Validate *validator.Validate
}

func NewPlaylistHandler(svc *service.PlaylistService, validate *validator.Validate) *PlaylistHandler {
	return &PlaylistHandler{Service: svc, Validate: validate}
}

func (h *PlaylistHandler) Create(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreatePlaylistRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	playlist, err := h.Service.Create(c.Request().Context(), userID, req.Name, req.Description, isPublished)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.PlaylistResponseFromEntity(playlist))
}

func (h *PlaylistHandler) MyPlaylists(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	page, limit := parsePage(c)
	playlists, total, err := h.Service.MyPlaylists(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PlaylistListResponseFromEntities(playlists, pageMeta(page, limit, total)))
}

func (h *PlaylistHandler) UserPlaylists(c echo.Context) error {
	ownerID, err := parseIDParam(c, "userId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	page, limit := parsePage(c)
	playlists, total, err := h.Service.UserPlaylists(c.Request().Context(), ownerID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PlaylistListResponseFromEntities(playlists, pageMeta(page, limit, total)))
}

func (h *PlaylistHandler) Search(c echo.Context) error {
	page, limit := parsePage(c)
	playlists, total, err := h.Service.Search(c.Request().Context(), c.QueryParam("q"), page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PlaylistListResponseFromEntities(playlists, pageMeta(page, limit, total)))
}

func (h *PlaylistHandler) Get(c echo.Context) error {
	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	playlist, err := h.Service.Get(c.Request().Context(), playlistID, viewerID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PlaylistDetailResponseFromEntity(playlist))
}

func (h *PlaylistHandler) Update(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdatePlaylistRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	playlist, err := h.Service.Update(c.Request().Context(), userID, playlistID, req.Name, req.Description, req.IsPublished)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PlaylistResponseFromEntity(playlist))
}

func (h *PlaylistHandler) Delete(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.Delete(c.Request().Context(), userID, playlistID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	playlist, err := h.Service.AddVideo(c.Request().Context(), userID, playlistID, videoID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PlaylistDetailResponseFromEntity(playlist))
}

func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	playlistID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	playlist, err := h.Service.RemoveVideo(c.Request().Context(), userID, playlistID, videoID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PlaylistDetailResponseFromEntity(playlist))
}
