package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/clubhub/club-service/internal/api/http"
	"github.com/clubhub/club-service/internal/api/http/handlers"
	"github.com/clubhub/club-service/internal/auth"
	"github.com/clubhub/club-service/internal/config"
	"github.com/clubhub/club-service/internal/events"
	"github.com/clubhub/club-service/internal/observability"
	"github.com/clubhub/club-service/internal/persistence"
	"github.com/clubhub/club-service/internal/repository"
	"github.com/clubhub/club-service/internal/service"
	"github.com/clubhub/club-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	clubRepo := repository.NewClubRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	permissionRepo := repository.NewPermissionRepository(pool)
	membershipRepo := repository.NewMembershipRepository(pool)
	memberRepo := repository.NewMemberRepository(pool)
	sponsorRepo := repository.NewSponsorRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	propertyRepo := repository.NewPropertyRepository(pool)
	bootstrapRepo := repository.NewBootstrapRepository(pool)
	refreshStore := repository.NewRefreshTokenStore(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	tokens := auth.NewTokenIssuer(cfg.Auth)
	gate := auth.NewGate(tokens)
	resolver := service.NewPermissionResolver(membershipRepo, roleRepo)

	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:       userRepo,
		MembershipRepo: membershipRepo,
		BootstrapRepo:  bootstrapRepo,
		RefreshStore:   refreshStore,
		Resolver:       resolver,
		Tokens:         tokens,
		Dispatcher:     dispatcher,
		BcryptCost:     cfg.Auth.BcryptCost,
	})
	memberService := service.NewMemberService(memberRepo, dispatcher)
	paymentService := service.NewPaymentService(paymentRepo, dispatcher)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(pg, redis),
		Auth:        handlers.NewAuthHandler(authService),
		Users:       handlers.NewUsersHandler(userRepo, cfg.Auth.BcryptCost),
		Clubs:       handlers.NewClubsHandler(clubRepo),
		Roles:       handlers.NewRolesHandler(roleRepo),
		Permissions: handlers.NewPermissionsHandler(permissionRepo),
		Members:     handlers.NewMembersHandler(memberService),
		Sponsors:    handlers.NewSponsorsHandler(sponsorRepo),
		Payments:    handlers.NewPaymentsHandler(paymentService),
		Activities:  handlers.NewActivitiesHandler(activityRepo),
		Properties:  handlers.NewPropertiesHandler(propertyRepo),
		Gate:        gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
