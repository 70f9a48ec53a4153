package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/aleguimas/promotores/config"
	"github.com/aleguimas/promotores/internal/module/customerapp/booking"
	"github.com/aleguimas/promotores/internal/module/customerapp/client"
	"github.com/aleguimas/promotores/internal/module/customerapp/order"
	"github.com/aleguimas/promotores/internal/module/customerapp/period"
	"github.com/aleguimas/promotores/internal/module/customerapp/promoter"
	"github.com/aleguimas/promotores/internal/pkg/jwt"
	internalMiddleware "github.com/aleguimas/promotores/internal/pkg/middleware"
	"github.com/aleguimas/promotores/internal/pkg/session"
	"github.com/aleguimas/promotores/pkg/applogger"
	"github.com/aleguimas/promotores/pkg/gctasks"
	"github.com/aleguimas/promotores/pkg/kafka"
	"github.com/aleguimas/promotores/pkg/middleware"
	"github.com/aleguimas/promotores/pkg/monitoring"
	"github.com/aleguimas/promotores/pkg/postgresql"
	"github.com/aleguimas/promotores/pkg/pubsub"
	"github.com/aleguimas/promotores/pkg/redis"
	"github.com/aleguimas/promotores/pkg/server"
	"github.com/aleguimas/promotores/pkg/validator"
)

var c *config.Config

func init() {
	c = config.Get()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := applogger.GetLogrus()

	mon := monitoring.NewOpenTelemetry(
		c.Application.Name,
		c.Application.Environment,
		c.GCP.ProjectID,
	)

	mon.Start(ctx)

	validate := validator.Get()

	jsonWebToken := jwt.NewJSONWebToken(c.JWT.PrivateKey, c.JWT.PublicKey)

	psqldb := postgresql.GetDatabase()
	if err := psqldb.Ping(); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	publisher := pubsub.PublisherFromConfluentKafkaProducer(logger, kafka.NewProducer())

	rc := redis.GetClient()
	if err := rc.Ping(context.Background()).Err(); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	cloudTask := gctasks.NewGCTasks(logger, c.GCP.ProjectID, c.GCP.Location, c.GCP.ServiceAccount)

	sessionStore := session.NewRedisSessionStore(logger, rc)

	customerSessionMiddleware := internalMiddleware.NewCustomerSessionMiddleware(jsonWebToken, sessionStore)

	fallbackRate, err := decimal.NewFromString(c.Order.FallbackHourlyRate)
	if err != nil {
		logger.WithError(err).Fatal("invalid fallback hourly rate")
	}

	router := mux.NewRouter()
	router.Use(
		otelmux.Middleware(c.Application.Name),
		middleware.HTTPResponseTraceInjection,
		middleware.NewHTTPRequestLogger(logger, c.Application.Debug, http.StatusInternalServerError).Middleware,
	)

	// customer's app
	promoterRepo := promoter.NewPromoterRepository(logger, psqldb)
	periodRepo := period.NewPeriodRepository(logger, psqldb)
	clientRepo := client.NewClientRepository(logger, psqldb)
	rateRepo := booking.NewRateRepository(logger, psqldb)
	orderRepo := order.NewOrderRepository(logger, psqldb)
	lineItemRepo := order.NewLineItemRepository(logger, psqldb)

	orderUseCase := order.NewOrderUseCase(order.OrderUseCaseProperty{
		Logger:              logger,
		Timeout:             c.Application.Timeout,
		BaseURL:             c.Application.BaseURL,
		OrderExpireDuration: c.Order.Expiration,
		FallbackHourlyRate:  fallbackRate,
		PromoterRepository:  promoterRepo,
		PeriodRepository:    periodRepo,
		ClientRepository:    clientRepo,
		RateRepository:      rateRepo,
		OrderRepository:     orderRepo,
		LineItemRepository:  lineItemRepo,
		Publisher:           publisher,
		CloudTask:           cloudTask,
	})

	promoter.InitHTTPHandler(router, validate, promoterRepo)
	period.InitHTTPHandler(router, periodRepo)
	order.InitHTTPHandler(router, customerSessionMiddleware, validate, orderUseCase)

	handler := middleware.SetChain(
		router,
		cors.New(cors.Options{
			AllowedOrigins:   c.CORS.AllowedOrigins,
			AllowedMethods:   c.CORS.AllowedMethods,
			AllowedHeaders:   c.CORS.AllowedHeaders,
			ExposedHeaders:   c.CORS.ExposedHeaders,
			MaxAge:           c.CORS.MaxAge,
			AllowCredentials: c.CORS.AllowCredentials,
		}).Handler,
	)

	srv := &server.Server{
		Server: http.Server{
			Addr:    fmt.Sprintf(":%d", c.Application.Port),
			Handler: handler,
		},
		Logger: logger,
	}

	go func() {
		srv.ListenAndServe()
	}()

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	srv.Shutdown(ctx)
	publisher.Close()
	psqldb.Close()
	rc.Close()
	mon.Stop(ctx)
}
