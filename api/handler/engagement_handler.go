package handler

import (
	"net/http"

	"vidstream/internal/dto"
	"vidstream/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type EngagementHandler struct {
	Service  *service.EngagementService
	Validate *validator.Validate
}

func NewEngagementHandler(svc *service.EngagementService, validate *validator.Validate) *EngagementHandler {
	return &EngagementHandler{Service: svc, Validate: validate}
}

func (h *EngagementHandler) ToggleFollow(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	followeeID, err := parseIDParam(c, "userId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	following, err := h.Service.ToggleFollow(c.Request().Context(), userID, followeeID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToggleResponse{Active: following})
}

func (h *EngagementHandler) ListFollowers(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	page, limit := parsePage(c)
	users, total, err := h.Service.ListFollowers(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserListResponseFromEntities(users, pageMeta(page, limit, total)))
}

func (h *EngagementHandler) ListFollowing(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	page, limit := parsePage(c)
	users, total, err := h.Service.ListFollowing(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserListResponseFromEntities(users, pageMeta(page, limit, total)))
}

func (h *EngagementHandler) ToggleVideoLike(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	liked, err := h.Service.ToggleVideoLike(c.Request().Context(), userID, videoID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToggleResponse{Active: liked})
}

func (h *EngagementHandler) ToggleCommentLike(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	liked, err := h.Service.ToggleCommentLike(c.Request().Context(), userID, commentID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToggleResponse{Active: liked})
}

func (h *EngagementHandler) TogglePostLike(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	liked, err := h.Service.TogglePostLike(c.Request().Context(), userID, postID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToggleResponse{Active: liked})
}

func (h *EngagementHandler) LikedVideos(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	page, limit := parsePage(c)
	videos, total, err := h.Service.LikedVideos(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VideoListResponseFromEntities(videos, pageMeta(page, limit, total)))
}

func (h *EngagementHandler) AddComment(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.CommentRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	comment, err := h.Service.AddComment(c.Request().Context(), userID, videoID, req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CommentResponseFromEntity(comment))
}

func (h *EngagementHandler) ListComments(c echo.Context) error {
	videoID, err := parseIDParam(c, "videoId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	page, limit := parsePage(c)
	comments, total, err := h.Service.ListComments(c.Request().Context(), videoID, page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CommentListResponseFromEntities(comments, pageMeta(page, limit, total)))
}

func (h *EngagementHandler) UpdateComment(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.CommentRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	comment, err := h.Service.UpdateComment(c.Request().Context(), userID, commentID, req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CommentResponseFromEntity(comment))
}

func (h *EngagementHandler) DeleteComment(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.DeleteComment(c.Request().Context(), userID, commentID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
