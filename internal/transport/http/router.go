package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"soundspace/internal/handler"
	"soundspace/internal/httputil"
	authmw "soundspace/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler            *handler.AuthHandler
	UserHandler            *handler.UserHandler
	SoundHandler           *handler.SoundHandler
	AlbumHandler           *handler.AlbumHandler
	ArtistHandler          *handler.ArtistHandler
	StyleHandler           *handler.StyleHandler
	PlaylistHandler        *handler.PlaylistHandler
	FollowHandler          *handler.FollowHandler
	LikeHandler            *handler.LikeHandler
	SoundCommentHandler    *handler.CommentHandler
	PlaylistCommentHandler *handler.CommentHandler
	DeviceHandler          *handler.DeviceHandler
	TokenParser            authmw.TokenParser
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	// Public reads
	r.Group(func(r chi.Router) {
		r.Use(authmw.OptionalAuthMiddleware(cfg.TokenParser))

		r.Get("/users", cfg.UserHandler.List)
		r.Get("/users/{id}", cfg.UserHandler.Get)

		r.Get("/sounds", cfg.SoundHandler.List)
		r.Get("/sounds/{id}", cfg.SoundHandler.Get)
		r.Get("/sounds/{id}/comments", cfg.SoundCommentHandler.ListByTarget)

		r.Get("/albums", cfg.AlbumHandler.List)
		r.Get("/albums/{id}", cfg.AlbumHandler.Get)

		r.Get("/artists", cfg.ArtistHandler.List)
		r.Get("/artists/{id}", cfg.ArtistHandler.Get)

		r.Get("/styles", cfg.StyleHandler.List)
		r.Get("/styles/{id}", cfg.StyleHandler.Get)

		r.Get("/playlists", cfg.PlaylistHandler.List)
		r.Get("/playlists/{id}", cfg.PlaylistHandler.Get)
		r.Get("/playlists/{id}/comments", cfg.PlaylistCommentHandler.ListByTarget)
	})

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.TokenParser))

		// Current user
		r.Get("/me", cfg.AuthHandler.Me)

		// Account management
		r.Patch("/users/{id}", cfg.UserHandler.Update)
		r.Delete("/users/{id}", cfg.UserHandler.Delete)
		r.Put("/users/{id}/picture", cfg.UserHandler.SetProfilePicture)

		// User follows
		r.Post("/users/{id}/follow", cfg.FollowHandler.FollowUser)
		r.Delete("/users/{id}/follow", cfg.FollowHandler.UnfollowUser)
		r.Get("/users/{id}/follow", cfg.FollowHandler.FollowUserStatus)

		// Sounds
		r.Post("/sounds", cfg.SoundHandler.Upload)
		r.Patch("/sounds/{id}", cfg.SoundHandler.Update)
		r.Delete("/sounds/{id}", cfg.SoundHandler.Delete)
		r.Post("/sounds/{id}/like", cfg.LikeHandler.LikeSound)
		r.Delete("/sounds/{id}/like", cfg.LikeHandler.UnlikeSound)
		r.Get("/sounds/{id}/like", cfg.LikeHandler.SoundLikeStatus)
		r.Post("/sounds/{id}/comments", cfg.SoundCommentHandler.Create)
		r.Patch("/sounds/comments/{commentID}", cfg.SoundCommentHandler.Update)
		r.Delete("/sounds/comments/{commentID}", cfg.SoundCommentHandler.Delete)

		// Albums
		r.Post("/albums", cfg.AlbumHandler.Create)
		r.Patch("/albums/{id}", cfg.AlbumHandler.Update)
		r.Delete("/albums/{id}", cfg.AlbumHandler.Delete)
		r.Put("/albums/{id}/picture", cfg.AlbumHandler.SetCover)

		// Artists
		r.Post("/artists", cfg.ArtistHandler.Create)
		r.Patch("/artists/{id}", cfg.ArtistHandler.Update)
		r.Delete("/artists/{id}", cfg.ArtistHandler.Delete)

		// Styles (admin only, enforced in the service)
		r.Post("/styles", cfg.StyleHandler.Create)
		r.Patch("/styles/{id}", cfg.StyleHandler.Update)
		r.Delete("/styles/{id}", cfg.StyleHandler.Delete)

		// Playlists
		r.Post("/playlists", cfg.PlaylistHandler.Create)
		r.Patch("/playlists/{id}", cfg.PlaylistHandler.Update)
		r.Delete("/playlists/{id}", cfg.PlaylistHandler.Delete)
		r.Put("/playlists/{id}/sounds/{soundID}", cfg.PlaylistHandler.AddSound)
		r.Delete("/playlists/{id}/sounds/{soundID}", cfg.PlaylistHandler.RemoveSound)
		r.Post("/playlists/{id}/like", cfg.LikeHandler.LikePlaylist)
		r.Delete("/playlists/{id}/like", cfg.LikeHandler.UnlikePlaylist)
		r.Get("/playlists/{id}/like", cfg.LikeHandler.PlaylistLikeStatus)
		r.Post("/playlists/{id}/follow", cfg.FollowHandler.FollowPlaylist)
		r.Delete("/playlists/{id}/follow", cfg.FollowHandler.UnfollowPlaylist)
		r.Post("/playlists/{id}/comments", cfg.PlaylistCommentHandler.Create)
		r.Patch("/playlists/comments/{commentID}", cfg.PlaylistCommentHandler.Update)
		r.Delete("/playlists/comments/{commentID}", cfg.PlaylistCommentHandler.Delete)

		// Push subscription
		r.Put("/devices", cfg.DeviceHandler.Register)
		r.Delete("/devices", cfg.DeviceHandler.Remove)
	})

	return r
}
