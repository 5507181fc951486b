package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"parking_service/internal/adapter/http/handlers"
	"parking_service/internal/adapter/http/middleware"
	"parking_service/internal/adapter/http/routes"
	"parking_service/internal/adapter/persistence/boltstore"
	"parking_service/internal/adapter/persistence/repository"
	"parking_service/internal/domain/entities"
	"parking_service/internal/domain/tariff"
	"parking_service/internal/infrastructure/clock"
	"parking_service/internal/infrastructure/config"
	"parking_service/internal/infrastructure/database"
	"parking_service/internal/infrastructure/logging"
	"parking_service/internal/infrastructure/metrics"
	"parking_service/internal/infrastructure/payments"
	"parking_service/internal/usecase"
	"parking_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           Parking Service API
// @version         1.0
// @description     Parking lot backend: spaces, vehicle sessions, customers and reports.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

type repositories struct {
	spaces    interfaces.ISpaceRepository
	sessions  interfaces.ISessionRepository
	customers interfaces.ICustomerRepository
	users     interfaces.IUserRepository
	close     func() error
}

func main() {
	cfg := config.Load()
	logging.Configure(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logging.Fatalf(ctx, "[main] failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer func() {
		if err := repos.close(); err != nil {
			logging.Errorf(context.Background(), "[main] closing store: %v", err)
		}
	}()

	sysClock := clock.System{}
	rec := metrics.NewRecorder()
	calc := tariff.NewCalculator(tariff.Policy{
		Rates: tariff.Rates{
			entities.CategoryCar:        cfg.TariffCar,
			entities.CategoryMotorcycle: cfg.TariffMotorcycle,
			entities.CategoryBicycle:    cfg.TariffBicycle,
		},
		MinimumBilledHours: cfg.TariffMinimumHours,
	})
	prices := usecase.SubscriptionPrices{Daily: cfg.SubscriptionPriceDaily, Monthly: cfg.SubscriptionPriceMonthly}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		logging.Warnf(ctx, "[main] Mercado Pago gateway not configured, renewals are not charged: %v", err)
	} else {
		gateway = mp
	}

	spaceUC := usecase.NewSpaceUseCase(repos.spaces, sysClock, rec)
	customerUC := usecase.NewCustomerUseCase(repos.customers, repos.sessions, gateway, prices, sysClock)
	sessionUC := usecase.NewSessionUseCase(spaceUC, repos.sessions, repos.customers, customerUC, calc, sysClock, rec)
	authUC := usecase.NewAuthUseCase(repos.users, cfg.JWTSecret, cfg.JWTExpiration, sysClock)
	reportUC := usecase.NewReportUseCase(repos.spaces, repos.sessions, repos.customers, prices, sysClock)

	if err := authUC.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logging.Fatalf(ctx, "[main] bootstrap admin: %v", err)
	}

	router := routes.NewRouter(routes.Dependencies{
		Auth:     middleware.NewAuthMiddleware(authUC),
		Metrics:  rec,
		Spaces:   handlers.NewSpaceHandler(spaceUC),
		Sessions: handlers.NewSessionHandler(sessionUC),
		Customer: handlers.NewCustomerHandler(customerUC, sysClock),
		Users:    handlers.NewAuthHandler(authUC),
		Reports:  handlers.NewReportHandler(reportUC),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.Infof(ctx, "[main] listening on :%s store=%s", cfg.Port, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatalf(ctx, "[main] failed to startup the application: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Errorf(shutdownCtx, "[main] shutdown: %v", err)
	}
}

func openRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	if cfg.StoreDriver == config.StoreBolt {
		db, err := boltstore.Open(cfg.BoltPath)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			spaces:    boltstore.NewSpaceStore(db),
			sessions:  boltstore.NewSessionStore(db),
			customers: boltstore.NewCustomerStore(db),
			users:     boltstore.NewUserStore(db),
			close:     db.Close,
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	return repositories{
		spaces:    repository.NewSpaceDynamoRepository(ddb, cfg.SpacesTable),
		sessions:  repository.NewSessionDynamoRepository(ddb, cfg.SessionsTable, cfg.ActivePlateTable),
		customers: repository.NewCustomerDynamoRepository(ddb, cfg.CustomersTable),
		users:     repository.NewUserDynamoRepository(ddb, cfg.UsersTable),
		close:     func() error { return nil },
	}, nil
}
