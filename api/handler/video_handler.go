package handler

import (
	"mime/multipart"
	"net/http"

	"vidstream/internal/dto"
	"vidstream/internal/repository"
	"vidstream/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type VideoHandler struct {
	Service  *service.VideoService
	Validate *validator.Validate
}

func NewVideoHandler(svc *service.VideoService, validate *validator.Validate) *VideoHandler {
	return &VideoHandler{Service: svc, Validate: validate}
}

func (h *VideoHandler) Upload(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.UploadVideoRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}

	videoHeader, err := c.FormFile("video")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	videoFile, err := videoHeader.Open()
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	defer videoFile.Close()

	input := service.UploadVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Video:       fileUpload(videoHeader, videoFile),
	}

	if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
		thumbFile, err := thumbHeader.Open()
		if err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
		defer thumbFile.Close()
		thumb := fileUpload(thumbHeader, thumbFile)
		input.Thumbnail = &thumb
	}

	video, err := h.Service.Upload(c.Request().Context(), userID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.VideoResponseFromEntity(video))
}

func (h *VideoHandler) List(c echo.Context) error {
	page, limit := parsePage(c)
	filter := repository.VideoFilter{
		Query:  c.QueryParam("q"),
		Page:   page,
		Limit:  limit,
		SortBy: c.QueryParam("sort_by"),
		Asc:    c.QueryParam("order") == "asc",
	}
	videos, total, err := h.Service.List(c.Request().Context(), filter)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VideoListResponseFromEntities(videos, pageMeta(page, limit, total)))
}

func (h *VideoHandler) MyVideos(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	page, limit := parsePage(c)
	videos, total, err := h.Service.MyVideos(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VideoListResponseFromEntities(videos, pageMeta(page, limit, total)))
}

func (h *VideoHandler) Get(c echo.Context) error {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	detail, err := h.Service.Get(c.Request().Context(), videoID, viewerID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VideoDetailResponseFromService(detail))
}

func (h *VideoHandler) Update(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateVideoRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	video, err := h.Service.UpdateDetails(c.Request().Context(), userID, videoID, req.Title, req.Description)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VideoResponseFromEntity(video))
}

func (h *VideoHandler) UpdateThumbnail(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	header, err := c.FormFile("thumbnail")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	file, err := header.Open()
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	defer file.Close()
	video, err := h.Service.UpdateThumbnail(c.Request().Context(), userID, videoID, fileUpload(header, file))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VideoResponseFromEntity(video))
}

func (h *VideoHandler) TogglePublish(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	video, err := h.Service.TogglePublish(c.Request().Context(), userID, videoID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VideoResponseFromEntity(video))
}

func (h *VideoHandler) Delete(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.Delete(c.Request().Context(), userID, videoID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func fileUpload(header *multipart.FileHeader, file multipart.File) service.FileUpload {
	return service.FileUpload{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}
}
