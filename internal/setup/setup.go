package setup

import (
	"github.com/memory-page/memoboard/internal/config"
	"github.com/memory-page/memoboard/internal/handler"
	"github.com/memory-page/memoboard/internal/jwt"
	"github.com/memory-page/memoboard/internal/middleware"
	"github.com/memory-page/memoboard/internal/profanity"
	"github.com/memory-page/memoboard/internal/service"
	"github.com/memory-page/memoboard/internal/storage/pg"
	"github.com/memory-page/memoboard/internal/validation"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Auth    *middleware.Auth
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := jwt.New(cfg.JwtKey(), cfg.Public.JwtAlgorithm, cfg.JwtTTL())
	if err != nil {
		return nil, err
	}

	detector := profanity.New()
	board := service.NewBoard(storage, tokens,
		&validation.BoardNameValidator{Profanity: detector},
		&validation.PasswordValidator{})
	memo := service.NewMemo(storage, board, &validation.MemoValidator{Profanity: detector})

	return &Dependencies{
		Storage: storage,
		Handler: handler.New(board, memo),
		Auth:    middleware.NewAuth(tokens),
	}, nil
}
