package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordersvc/cmd"
	"ordersvc/internal/adapters/out/postgres/migrations"
	"ordersvc/internal/pkg/logger"
	"ordersvc/internal/pkg/tracing"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "ordersvc",
		Usage: "treatment order service",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file loaded before the environment"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API, the bus server and the scheduled jobs",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply or revert the database schema",
				Subcommands: []*cli.Command{
					{Name: "up", Usage: "apply pending migrations", Action: migrateUp},
					{Name: "down", Usage: "revert every migration", Action: migrateDown},
				},
			},
			{
				Name:  "orphans",
				Usage: "list orders of every tenant that have no detail",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "grace", Usage: "override ORPHAN_GRACE_PERIOD"},
				},
				Action: listOrphans,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("ordersvc: %v", err)
	}
}

type runtimeDeps struct {
	cfg    cmd.Config
	logger *zap.Logger
	db     *gorm.DB
	rdb    *redis.Client
}

func (d runtimeDeps) close() {
	if d.rdb != nil {
		_ = d.rdb.Close()
	}
	if d.db != nil {
		if sqlDB, err := d.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = d.logger.Sync()
}

func loadDeps(c *cli.Context) (runtimeDeps, error) {
	cfg, err := cmd.LoadConfig(c.String("env-file"))
	if err != nil {
		return runtimeDeps{}, err
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
	if err != nil {
		return runtimeDeps{}, fmt.Errorf("build logger: %w", err)
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return runtimeDeps{}, err
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return runtimeDeps{}, fmt.Errorf("connect to database: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return runtimeDeps{cfg: cfg, logger: zl, db: db, rdb: rdb}, nil
}

func serve(c *cli.Context) error {
	deps, err := loadDeps(c)
	if err != nil {
		return err
	}
	defer deps.close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, deps.logger, tracing.Config{
		Enabled:     deps.cfg.OtelEnabled,
		ServiceName: deps.cfg.ServiceName,
		SampleRatio: deps.cfg.OtelSampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	if err = deps.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	root := cmd.NewCompositionRoot(deps.cfg, deps.db, deps.rdb, deps.logger)

	if err = root.BusClient().Start(ctx, cmd.OutboundTopics...); err != nil {
		return err
	}
	defer func() { _ = root.BusClient().Close() }()

	busErr := make(chan error, 1)
	go func() {
		busErr <- root.BusServer().Serve(ctx, nil)
	}()

	jobManager := root.JobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := root.HTTPServer().NewEcho()
	if err != nil {
		return err
	}
	httpErr := make(chan error, 1)
	go func() {
		httpErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", deps.cfg.HTTPPort))
	}()
	deps.logger.Info("service started", zap.String("http_port", deps.cfg.HTTPPort))

	select {
	case <-ctx.Done():
	case err = <-busErr:
		deps.logger.Error("bus server stopped", zap.Error(err))
	case err = <-httpErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		deps.logger.Error("http server stopped", zap.Error(err))
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		deps.logger.Warn("http shutdown", zap.Error(shutdownErr))
	}
	deps.logger.Info("service stopped")
	return err
}

func migrator(c *cli.Context) (*migrations.Migrator, error) {
	cfg, err := cmd.LoadConfig(c.String("env-file"))
	if err != nil {
		return nil, err
	}
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}
	return migrations.NewMigrator(dsn)
}

func migrateUp(c *cli.Context) error {
	m, err := migrator(c)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	if err = m.Up(); err != nil {
		return err
	}
	version, _, err := m.Version()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "schema at version %d\n", version)
	return err
}

func migrateDown(c *cli.Context) error {
	m, err := migrator(c)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	if err = m.Down(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, "schema reverted")
	return err
}

func listOrphans(c *cli.Context) error {
	deps, err := loadDeps(c)
	if err != nil {
		return err
	}
	defer deps.close()

	if grace := c.Duration("grace"); grace > 0 {
		deps.cfg.OrphanGracePeriod = grace
	}

	root := cmd.NewCompositionRoot(deps.cfg, deps.db, deps.rdb, deps.logger)
	orphans, err := root.OrphanedOrderJob().Sweep(c.Context)
	if err != nil {
		return err
	}

	w := c.App.Writer
	for _, o := range orphans {
		if _, err = fmt.Fprintf(w, "%d\tclient=%d\tcreated_at=%s\n",
			o.OrderID, o.ClientID, o.CreatedAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%d orphaned order(s) older than %s\n", len(orphans), deps.cfg.OrphanGracePeriod)
	return err
}
