package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/openpitch/pitchside/internal/config"
	"github.com/openpitch/pitchside/internal/infrastructure/account/passport"
	"github.com/openpitch/pitchside/internal/infrastructure/repository/postgres"
	"github.com/openpitch/pitchside/internal/interfaces/httpapi"
	idgen "github.com/openpitch/pitchside/internal/platform/id"
	"github.com/openpitch/pitchside/internal/platform/resilience"
	"github.com/openpitch/pitchside/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
)

// NewHTTPServer wires config through repositories, services and the
// router into a ready-to-run server. The returned cleanup closes the
// database pool.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := connectDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	leagueRepo := postgres.NewLeagueRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	postRepo := postgres.NewPostRepository(db)
	inviteRepo := postgres.NewInviteRepository(db)

	gen := idgen.NewRandomGenerator()

	feedSvc := usecase.NewFeedService(postRepo, teamRepo, leagueRepo)
	postSvc := usecase.NewPostService(postRepo, teamRepo, gameRepo, gen)
	teamSvc := usecase.NewTeamService(teamRepo, userRepo, gen)
	leagueSvc := usecase.NewLeagueService(leagueRepo, teamRepo, gen)
	gameSvc := usecase.NewGameService(gameRepo, teamRepo, leagueRepo, gen)
	inviteSvc := usecase.NewInviteService(inviteRepo, teamRepo, userRepo, gen)
	userSvc := usecase.NewUserService(userRepo)

	passportClient := passport.NewClient(passport.ClientConfig{
		BaseURL:        cfg.PassportBaseURL,
		IntrospectPath: cfg.PassportIntrospectPath,
		Timeout:        cfg.PassportTimeout,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.PassportCircuitEnabled,
			FailureThreshold: cfg.PassportCircuitFailureCount,
			OpenTimeout:      cfg.PassportCircuitOpenTimeout,
			HalfOpenLimit:    cfg.PassportCircuitHalfOpenMaxReq,
		},
	}, logger)

	handler := httpapi.NewHandler(feedSvc, postSvc, teamSvc, leagueSvc, gameSvc, inviteSvc, userSvc, logger)
	router := httpapi.NewRouter(handler, passportClient, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func(context.Context) error {
		return db.Close()
	}

	return server, cleanup, nil
}

func connectDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	}
	if name := dbNameFromURL(dbURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", dbURL, opts...)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
