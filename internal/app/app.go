package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch"
	"github.com/go-co-op/gocron/v2"
	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/internal/controller"
	circuitbreaker "github.com/grazeweb/my-eshop-app/internal/infrastructure/circuit-breaker"
	"github.com/grazeweb/my-eshop-app/internal/infrastructure/mail"
	kafkainfra "github.com/grazeweb/my-eshop-app/internal/infrastructure/message-queue/kafka"
	"github.com/grazeweb/my-eshop-app/internal/infrastructure/tracing"
	"github.com/grazeweb/my-eshop-app/internal/repository"
	"github.com/grazeweb/my-eshop-app/internal/service"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/grazeweb/my-eshop-app/pkg/response"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	segmentiokafka "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	Config      *config.Config
	DB          *sqlx.DB
	MongoDB     *mongo.Database
	EsClient    *elasticsearch.Client
	KafkaReader *segmentiokafka.Reader
	KafkaConn   *segmentiokafka.Conn
	Server      *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("eshop-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")

	g.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Int64("latency", v.Latency.Microseconds()).
				Str("remote IP", v.RemoteIP).
				Msg("Request")

			return nil
		},
	}))

	isLoggedIn := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(app.Config.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
		},
	})

	cb := circuitbreaker.CreateCircuitBreaker("eshop-service")
	publisher := kafkainfra.CreatePublisher(app.KafkaConn)
	mailer := mail.CreateSMTPMailer(app.Config.SMTPConfig)

	productRepo := repository.CreateProductRepository(app.MongoDB)
	orderRepo := repository.CreateOrderRepository(app.MongoDB)
	reviewRepo := repository.CreateReviewRepository(app.MongoDB)
	wishlistRepo := repository.CreateWishlistRepository(app.MongoDB)
	userRepo := repository.CreateUserRepository(app.DB)
	searchRepo := repository.CreateProductSearchRepository(app.EsClient)

	productSvc := service.CreateProductService(productRepo, searchRepo, *app.Config, app.KafkaReader, publisher)
	orderSvc := service.CreateOrderService(orderRepo, productRepo, *app.Config, publisher, mailer)
	cartSvc := service.CreateCartService(productRepo, *app.Config)
	reviewSvc := service.CreateReviewService(reviewRepo, orderRepo, productRepo, publisher)
	wishlistSvc := service.CreateWishlistService(wishlistRepo, productRepo)
	userSvc := service.CreateUserService(userRepo, *app.Config)
	mediaSvc := service.CreateMediaService(*app.Config, cb)
	policySvc := service.CreatePolicyService(*app.Config, cb)

	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateOrderController(g, orderSvc, cartSvc, userSvc, isLoggedIn)
	controller.CreateCartController(g, cartSvc, isLoggedIn)
	controller.CreateReviewController(g, reviewSvc, isLoggedIn)
	controller.CreateWishlistController(g, wishlistSvc, isLoggedIn)
	controller.CreateUserController(g, userSvc, orderSvc, isLoggedIn)
	controller.CreateAdminController(g, mediaSvc, policySvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	// add a job to the scheduler
	_, err = s.NewJob(
		gocron.DurationJob(
			10*time.Minute,
		),
		gocron.NewTask(
			reviewSvc.RefreshProductRatings,
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	go productSvc.ConsumeEvents()

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))

	app.Server = e
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
