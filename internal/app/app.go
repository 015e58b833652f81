package app

import (
	"errors"
	"net/http"

	"game-night-go/internal/auth"
	"game-night-go/internal/catalog/bgg"
	"game-night-go/internal/config"
	"game-night-go/internal/db"
	collectiondomain "game-night-go/internal/domain/collection"
	householddomain "game-night-go/internal/domain/household"
	playsdomain "game-night-go/internal/domain/plays"
	recommenddomain "game-night-go/internal/domain/recommend"
	statsdomain "game-night-go/internal/domain/stats"
	userdomain "game-night-go/internal/domain/user"
	collectionpg "game-night-go/internal/repository/postgres/collection"
	householdpg "game-night-go/internal/repository/postgres/household"
	playspg "game-night-go/internal/repository/postgres/plays"
	recommendpg "game-night-go/internal/repository/postgres/recommend"
	statspg "game-night-go/internal/repository/postgres/stats"
	userpg "game-night-go/internal/repository/postgres/user"
	"game-night-go/internal/transport/httpserver"
	"game-night-go/internal/transport/httpserver/handler"
	authmw "game-night-go/internal/transport/httpserver/middleware"
	"game-night-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" && !cfg.Auth.SkipAuth {
		return nil, errors.New("AUTH_JWT_SECRET is required unless AUTH_SKIP is set")
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	users := userdomain.NewService(userpg.NewPostgres(dbConn))
	households := householddomain.NewService(householdpg.NewPostgres(dbConn))
	collection := collectiondomain.NewService(collectionpg.NewPostgres(dbConn), cfg.Games.DefaultCondition)
	plays := playsdomain.NewService(playspg.NewPostgres(dbConn))
	recommend := recommenddomain.NewService(recommendpg.NewPostgres(dbConn), cfg.Games.RecencyWindow, nil, nil)
	stats := statsdomain.NewService(statspg.NewPostgres(dbConn), cfg.Games.RecentPlaysLimit)
	catalog := bgg.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, cfg.Catalog.MaxResults)
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	handlers := handler.New(users, households, collection, plays, recommend, stats, catalog, tokens, log)

	log.Info("app: initializing router")
	authMiddleware := authmw.NewAuth(cfg.Auth, tokens, users, log)
	router := httpserver.NewRouter(cfg, handlers, authMiddleware)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
