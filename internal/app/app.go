package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tournament-ops/internal/config"
	"github.com/riskibarqy/tournament-ops/internal/domain/bracket"
	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/membership"
	"github.com/riskibarqy/tournament-ops/internal/domain/player"
	"github.com/riskibarqy/tournament-ops/internal/domain/playerstats"
	"github.com/riskibarqy/tournament-ops/internal/domain/schedule"
	"github.com/riskibarqy/tournament-ops/internal/domain/standing"
	"github.com/riskibarqy/tournament-ops/internal/domain/team"
	"github.com/riskibarqy/tournament-ops/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/tournament-ops/internal/infrastructure/notification"
	cacherepo "github.com/riskibarqy/tournament-ops/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/tournament-ops/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/tournament-ops/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/tournament-ops/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/tournament-ops/internal/platform/cache"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"github.com/riskibarqy/tournament-ops/internal/platform/resilience"
	"github.com/riskibarqy/tournament-ops/internal/usecase"
)

type repositories struct {
	teams       team.Repository
	brackets    bracket.Repository
	matches     match.Repository
	players     player.Repository
	memberships membership.Repository
	schedules   schedule.Repository
	standings   standing.Repository
	playerStats playerstats.Repository
}

func sqlRepositories(conn *sqlx.DB) repositories {
	return repositories{
		teams:       sqlstore.NewTeamRepository(conn),
		brackets:    sqlstore.NewBracketRepository(conn),
		matches:     sqlstore.NewMatchRepository(conn),
		players:     sqlstore.NewPlayerRepository(conn),
		memberships: sqlstore.NewMembershipRepository(conn),
		schedules:   sqlstore.NewScheduleRepository(conn),
		standings:   sqlstore.NewStandingRepository(conn),
		playerStats: sqlstore.NewPlayerStatsRepository(conn),
	}
}

func memoryRepositories(store *memory.Store) repositories {
	return repositories{
		teams:       store.Teams(),
		brackets:    store.Brackets(),
		matches:     store.Matches(),
		players:     store.Players(),
		memberships: store.Memberships(),
		schedules:   store.Schedules(),
		standings:   store.Standings(),
		playerStats: store.PlayerStats(),
	}
}

// NewHTTPServer wires storage, services and the router. The returned cleanup
// drains pending notifications and closes the database.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var (
		repos  repositories
		health httpapi.HealthChecker
		conn   *sqlx.DB
	)
	switch cfg.DBDriver {
	case config.DBDriverMemory:
		logger.Warn("using in-memory store with demo data", "db_driver", cfg.DBDriver)
		repos = memoryRepositories(memory.NewStore(memory.DemoSeed()))
	default:
		var err error
		conn, err = openDB(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		repos = sqlRepositories(conn)
		health = conn
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.standings = cacherepo.NewStandingRepository(repos.standings, store)
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	var (
		notifier usecase.ScheduleNotifier
		mailer   *notification.MailNotifier
	)
	if cfg.MailEnabled() {
		var err error
		mailer, err = notification.NewMailNotifier(notification.Config{
			APIKey:  cfg.ResendAPIKey,
			From:    cfg.MailFrom,
			To:      cfg.MailTo,
			Workers: cfg.NotifyWorkers,
			Timeout: cfg.NotifyTimeout,
			Circuit: resilience.CircuitBreakerConfig{
				Enabled:          cfg.MailCircuitEnabled,
				FailureThreshold: cfg.MailCircuitFailureCount,
				OpenTimeout:      cfg.MailCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.MailCircuitHalfOpenMax,
			},
		}, logger)
		if err != nil {
			closeDB(conn, logger)
			return nil, nil, fmt.Errorf("build mail notifier: %w", err)
		}
		notifier = mailer
	}

	var verifier httpapi.TokenVerifier
	if cfg.AuthEnabled {
		v, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
		if err != nil {
			closeDB(conn, logger)
			return nil, nil, fmt.Errorf("build token verifier: %w", err)
		}
		verifier = v
	} else {
		logger.Warn("authentication disabled, mutating routes are open")
	}

	bracketSvc := usecase.NewBracketService(repos.brackets, repos.memberships, logger)
	scheduleSvc := usecase.NewScheduleService(repos.schedules, repos.matches, notifier, logger)
	statsSvc := usecase.NewStatisticsService(
		repos.teams,
		repos.players,
		repos.matches,
		repos.standings,
		repos.playerStats,
		logger,
	)

	handler := httpapi.NewHandler(bracketSvc, scheduleSvc, statsSvc, health, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	cleanup := func(ctx context.Context) error {
		var errs error
		if mailer != nil {
			if err := mailer.Close(ctx); err != nil {
				errs = errors.CombineErrors(errs, errors.Wrap(err, "drain notifications"))
			}
		}
		if conn != nil {
			if err := conn.Close(); err != nil {
				errs = errors.CombineErrors(errs, errors.Wrap(err, "close database"))
			}
		}
		return errs
	}

	return server, cleanup, nil
}

func closeDB(conn *sqlx.DB, logger *logging.Logger) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		logger.Warn("close database failed", "error", err)
	}
}
