package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Badmus2018/gogdripsv1/config"
	"github.com/Badmus2018/gogdripsv1/internal/controller"
	"github.com/Badmus2018/gogdripsv1/internal/infrastructure/imagestore"
	kafkamq "github.com/Badmus2018/gogdripsv1/internal/infrastructure/message-queue/kafka"
	"github.com/Badmus2018/gogdripsv1/internal/infrastructure/tracing"
	custommiddleware "github.com/Badmus2018/gogdripsv1/internal/middleware"
	"github.com/Badmus2018/gogdripsv1/internal/repository"
	"github.com/Badmus2018/gogdripsv1/internal/service"
	"github.com/Badmus2018/gogdripsv1/pkg/response"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if traceProvider == nil {
			return
		}
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	if traceProvider != nil {
		tracer := traceProvider.Tracer("catalog-admin-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/api/v1")
	g.Use(custommiddleware.Logger)

	isLoggedIn := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(app.Config.JWTSecret),
		ErrorHandler: func(c echo.Context, err error) error {
			errorResponse := response.ErrorResponse{
				Status:  "error",
				Message: "Invalid or expired JWT",
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})

	var kafkaProducer *kafka.Conn
	var kafkaReader *kafka.Reader
	if app.Config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer = kafkamq.CreateKafkaProducer(app.Config)
		kafkaReader = kafkamq.CreateKafkaReader(app.Config)
	}

	var imageStore imagestore.Client
	if app.Config.ImageStoreHost != "" {
		imageStore = imagestore.CreateNewClient(app.Config.ImageStoreHost)
	}

	productRepo := repository.CreateNewProductRepository(app.DB)
	categoryRepo := repository.CreateNewCategoryRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)

	productSvc := service.CreateNewProductService(productRepo, *app.Config, kafkaProducer, kafkaReader, imageStore)
	categorySvc := service.CreateNewCategoryService(categoryRepo)
	userSvc := service.CreateNewUserService(userRepo, *app.Config)

	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateCategoryController(g, categorySvc)
	controller.CreateUserController(g, userSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	if kafkaReader != nil {
		go productSvc.ConsumeEvent()
	}

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
