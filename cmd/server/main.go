// Command server runs the mini-app backend: schema migrations, then the
// HTTP API and page shell.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/migrate"

	authgin "github.com/balansai/miniapp-backend/adapters/gin"
	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/config"
	"github.com/balansai/miniapp-backend/core"
	"github.com/balansai/miniapp-backend/entitlements"
	"github.com/balansai/miniapp-backend/identity"
	"github.com/balansai/miniapp-backend/ledger"
	pgmigrations "github.com/balansai/miniapp-backend/migrations/postgres"
	memorylimiter "github.com/balansai/miniapp-backend/ratelimit/memory"
	redislimiter "github.com/balansai/miniapp-backend/ratelimit/redis"
	"github.com/balansai/miniapp-backend/staff"
	"github.com/balansai/miniapp-backend/storage/postgres"
	redisstore "github.com/balansai/miniapp-backend/storage/redis"
	"github.com/balansai/miniapp-backend/warehouse"
)

func main() {
	envPath := flag.String("env", ".env", "path to optional .env file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(*envPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	mode := entitlements.Production
	if cfg.Development() {
		mode = entitlements.Development
		log.Warn("running in development mode: authentication fallback enabled")
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := migrateSchema(ctx, pool, log); err != nil {
		return err
	}

	limits := map[string]struct {
		n int
		w time.Duration
	}{
		ginutil.RLAuthSession: {n: 10, w: time.Minute},
		ginutil.RLAIChat:      {n: 20, w: time.Minute},
		ginutil.RLDefault:     {n: 120, w: time.Minute},
	}

	var limiter ginutil.RateLimiter
	if cfg.RedisAddr != "" {
		rdb, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		rl := map[string]redislimiter.Limit{}
		for k, v := range limits {
			rl[k] = redislimiter.Limit{Limit: v.n, Window: v.w}
		}
		limiter = redislimiter.New(rdb, rl)
		log.WithField("addr", cfg.RedisAddr).Info("rate limiting over redis")
	} else {
		ml := map[string]memorylimiter.Limit{}
		for k, v := range limits {
			ml[k] = memorylimiter.Limit{Limit: v.n, Window: v.w}
		}
		limiter = memorylimiter.New(ml)
		log.Info("rate limiting in memory")
	}

	users := identity.NewStore(pool)
	events := identity.NewAuthEventStore(pool)

	gate := entitlements.NewGate(users, mode, log)
	svc := core.NewService(core.Config{
		BotToken:      cfg.BotToken,
		Mode:          mode,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		UpgradeURL:    cfg.UpgradeURL,
	}, users, gate, events, log)

	router := authgin.NewRouter(authgin.RouterDeps{
		Service:   svc,
		Warehouse: warehouse.NewStore(pool),
		Ledger:    ledger.NewStore(pool),
		Staff:     staff.NewStore(pool),
		Limiter:   limiter,
		Log:       log,
		StaticDir: cfg.StaticDir,
		Debug:     cfg.Debug,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// migrateSchema applies pending SQL migrations through bun, bridged onto
// the shared pgx pool so the process holds a single set of connections.
func migrateSchema(ctx context.Context, pool *pgxpool.Pool, log *logrus.Logger) error {
	db := bun.NewDB(stdlib.OpenDBFromPool(pool), pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	group, err := migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if group.IsZero() {
		log.Info("schema up to date")
	} else {
		log.WithField("group", group.String()).Info("migrations applied")
	}
	return nil
}
