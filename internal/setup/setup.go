package setup

import (
	"github.com/bulletin-dev/bulletin/internal/config"
	"github.com/bulletin-dev/bulletin/internal/handler"
	"github.com/bulletin-dev/bulletin/internal/jwt"
	"github.com/bulletin-dev/bulletin/internal/middleware"
	"github.com/bulletin-dev/bulletin/internal/service"
	"github.com/bulletin-dev/bulletin/internal/storage/pg"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
}

// SetupDependencies wires storage, services, handlers and middleware.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	user := service.NewUser(storage)
	board := service.NewBoard(storage, &utils.BoardNameValidator{})
	post := service.NewPost(storage, &utils.PostTitleValidator{})
	thread := service.NewThread(storage, &utils.ThreadContentValidator{}, utils.NewTextRenderer())
	moderation := service.NewModeration(storage)

	h := handler.New(auth, user, board, post, thread, moderation)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            jwtService,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}
