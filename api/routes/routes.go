package routes

import (
	"time"

	"vidstream/api/handler"
	"vidstream/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Users          *handler.UserHandler
	Videos         *handler.VideoHandler
	Playlists      *handler.PlaylistHandler
	Engagement     *handler.EngagementHandler
	Community      *handler.CommunityHandler
	Dashboard      *handler.DashboardHandler
	Health         *handler.HealthHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	videos *handler.VideoHandler,
	playlists *handler.PlaylistHandler,
	engagement *handler.EngagementHandler,
	community *handler.CommunityHandler,
	dashboard *handler.DashboardHandler,
	health *handler.HealthHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Users:          users,
		Videos:         videos,
		Playlists:      playlists,
		Engagement:     engagement,
		Community:      community,
		Dashboard:      dashboard,
		Health:         health,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	auth := r.AuthMiddleware

	e.GET("/healthz", r.Health.Health)

	e.POST("/auth/signup", r.Auth.Signup, r.AuthRate.Middleware(), auth.RequireGuest)
	e.POST("/auth/verify", r.Auth.VerifyAccount, r.AuthRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware(), auth.RequireGuest)
	e.POST("/auth/refresh", r.Auth.Refresh, r.AuthRate.Middleware())
	e.POST("/auth/logout", r.Auth.Logout, auth.RequireAuth)
	e.POST("/auth/password/forgot", r.Auth.ForgotPassword, r.LoginRate.Middleware())
	e.POST("/auth/password/reset", r.Auth.ResetPassword, r.AuthRate.Middleware())
	e.POST("/auth/password/change", r.Auth.ChangePassword, auth.RequireAuth)
	e.GET("/me", r.Auth.Me, auth.RequireAuth)

	e.GET("/users/check/:username", r.Users.CheckUsername)
	e.GET("/users/:username", r.Users.ChannelProfile, auth.OptionalAuth)
	e.PATCH("/me/profile", r.Users.UpdateProfile, auth.RequireAuth)
	e.PATCH("/me/email", r.Users.UpdateEmail, auth.RequireAuth)
	e.PATCH("/me/profile-image", r.Users.UpdateProfileImage, auth.RequireAuth)
	e.GET("/me/history", r.Users.WatchHistory, auth.RequireAuth)

	e.POST("/videos", r.Videos.Upload, auth.RequireAuth)
	e.GET("/videos", r.Videos.List)
	e.GET("/me/videos", r.Videos.MyVideos, auth.RequireAuth)
	e.GET("/videos/:id", r.Videos.Get, auth.OptionalAuth)
	e.PATCH("/videos/:id", r.Videos.Update, auth.RequireAuth)
	e.PATCH("/videos/:id/thumbnail", r.Videos.UpdateThumbnail, auth.RequireAuth)
	e.PATCH("/videos/:id/publish", r.Videos.TogglePublish, auth.RequireAuth)
	e.DELETE("/videos/:id", r.Videos.Delete, auth.RequireAuth)

	e.POST("/playlists", r.Playlists.Create, auth.RequireAuth)
	e.GET("/me/playlists", r.Playlists.MyPlaylists, auth.RequireAuth)
	e.GET("/users/:userId/playlists", r.Playlists.UserPlaylists)
	e.GET("/playlists/search", r.Playlists.Search)
	e.GET("/playlists/:id", r.Playlists.Get, auth.OptionalAuth)
	e.PATCH("/playlists/:id", r.Playlists.Update, auth.RequireAuth)
	e.DELETE("/playlists/:id", r.Playlists.Delete, auth.RequireAuth)
	e.POST("/playlists/:id/videos/:videoId", r.Playlists.AddVideo, auth.RequireAuth)
	e.DELETE("/playlists/:id/videos/:videoId", r.Playlists.RemoveVideo, auth.RequireAuth)

	e.POST("/follows/:userId", r.Engagement.ToggleFollow, auth.RequireAuth)
	e.GET("/users/:userId/followers", r.Engagement.ListFollowers)
	e.GET("/users/:userId/following", r.Engagement.ListFollowing)

	e.POST("/likes/videos/:videoId", r.Engagement.ToggleVideoLike, auth.RequireAuth)
	e.POST("/likes/comments/:commentId", r.Engagement.ToggleCommentLike, auth.RequireAuth)
	e.POST("/likes/posts/:postId", r.Engagement.TogglePostLike, auth.RequireAuth)
	e.GET("/me/likes/videos", r.Engagement.LikedVideos, auth.RequireAuth)

	e.POST("/videos/:videoId/comments", r.Engagement.AddComment, auth.RequireAuth)
	e.GET("/videos/:videoId/comments", r.Engagement.ListComments)
	e.PATCH("/comments/:commentId", r.Engagement.UpdateComment, auth.RequireAuth)
	e.DELETE("/comments/:commentId", r.Engagement.DeleteComment, auth.RequireAuth)

	e.POST("/posts", r.Community.Create, auth.RequireAuth)
	e.GET("/users/:userId/posts", r.Community.ListByUser)
	e.PATCH("/posts/:id", r.Community.Update, auth.RequireAuth)
	e.DELETE("/posts/:id", r.Community.Delete, auth.RequireAuth)

	e.GET("/dashboard/stats", r.Dashboard.Stats, auth.RequireAuth)
}
