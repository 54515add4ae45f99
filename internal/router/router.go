package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bulletin-dev/bulletin/internal/middleware/metrics"
	"github.com/bulletin-dev/bulletin/internal/setup"
)

// New builds the chi router with all routes mounted.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.Public.CorsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		// Public routes
		r.Post("/users/signup", h.Signup)
		r.Post("/users/login", h.Login)
		r.Get("/users/avatar/{userId}/{size}", h.GetAvatar)

		r.Get("/boards", h.GetBoards)
		r.Get("/boards/{boardId}", h.GetBoard)
		r.Get("/boards/{boardId}/posts", h.GetBoardPosts)
		r.Get("/posts/{postId}", h.GetPost)
		r.Get("/posts/{postId}/threads", h.GetPostThreads)
		r.Get("/threads/{threadId}", h.GetThread)

		// Routes requiring a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(needAuth)

			r.Patch("/users/set_role", h.SetRole)

			r.Post("/boards", h.CreateBoard)
			r.Patch("/boards/{boardId}", h.UpdateBoard)
			r.Delete("/boards/{boardId}", h.DeleteBoard)

			r.Post("/posts", h.CreatePost)
			r.Patch("/posts/{postId}", h.UpdatePost)
			r.Delete("/posts/{postId}", h.DeletePost)

			r.Post("/threads", h.CreateThread)
			r.Patch("/threads/{threadId}", h.UpdateThread)
			r.Delete("/threads/{threadId}", h.DeleteThread)

			r.Post("/moderation/invite", h.InviteModeration)
			r.Patch("/moderation/accept", h.AcceptModeration)
			r.Delete("/moderation/revoke", h.RevokeModeration)
			r.Get("/moderation", h.ListModeration)
			r.Get("/moderation/user/{userId}", h.ListUserModeration)
		})
	})

	return r
}
