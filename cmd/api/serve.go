package main

import (
	"context"
	"errors"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gauzy/docs"
	"gauzy/internal/config"
	"gauzy/internal/database"
	"gauzy/internal/database/migration"
	handlers "gauzy/internal/http/handler"
	"gauzy/internal/http/middleware"
	"gauzy/internal/i18n"
	"gauzy/internal/logging"
	"gauzy/internal/otel"
	"gauzy/internal/repository/postgres"
	"gauzy/internal/service"
	"gauzy/internal/storage"
	"gauzy/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and seed roles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logging.New(cfg.Log.Level, cfg.Log.Location(), nil)
			db, err := database.NewPostgres(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			return migration.EnsureMigrated(cmd.Context(), db, log, cfg.Database.Host)
		},
	}
}

func serve(ctx context.Context, cfg *config.AppConfig) error {
	log := logging.New(cfg.Log.Level, cfg.Log.Location(), nil)

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.WithError(err).Warn("tracing shutdown")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			return err
		}
	}

	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
	} else {
		log.Warn("object storage disabled, image uploads will fail")
	}

	tr, err := i18n.New(cfg.I18n.DefaultLanguage, cfg.I18n.SupportedLanguages)
	if err != nil {
		return err
	}

	orgRepo := postgres.NewOrganizationPostgres(db)
	employeeRepo := postgres.NewEmployeePostgres(db)
	deps := handlers.Deps{
		DB:            db,
		Organizations: service.NewOrganizationService(orgRepo, objStore),
		Users: service.NewUserService(service.UserRepositories{
			Organizations:     orgRepo,
			Users:             postgres.NewUserPostgres(db),
			Roles:             postgres.NewRolePostgres(db),
			UserOrganizations: postgres.NewUserOrganizationPostgres(db),
			Invites:           postgres.NewInvitePostgres(db),
			Tx:                postgres.NewTxRunner(db),
		}, tr),
		TimeOff:    service.NewTimeOffService(postgres.NewTimeOffPostgres(db), employeeRepo, orgRepo),
		Selection:  service.NewSelectionService(orgRepo, employeeRepo),
		Sessions:   store.NewRegistry(cfg.Selection.IdleTTL),
		Translator: tr,
		Log:        log,
	}
	go deps.Sessions.Run(ctx, cfg.Selection.SweepInterval, log)

	app, err := newApp(deps, tr, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("listening")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func newApp(deps handlers.Deps, langs middleware.LanguageMatcher, log logrus.FieldLogger) (*fiber.App, error) {
	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      "gauzy",
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())
	app.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, Accept-Language, " + middleware.RequestIDHeader + ", " + handlers.SessionHeader,
		ExposeHeaders: middleware.RequestIDHeader + ", Content-Language, Content-Disposition",
	}))
	app.Use(middleware.Localizer(langs))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}
		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}
		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, deps)
	return app, nil
}
