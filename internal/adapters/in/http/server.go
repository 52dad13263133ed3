// Package http serves the use cases as a REST API described by the embedded
// OpenAPI document.
package http

import (
	"net/http"
	"time"

	"ordersvc/internal/core/application/usecases"
	"ordersvc/internal/pkg/tracing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Server holds the use cases behind the REST endpoints.
type Server struct {
	uc     usecases.UseCases
	logger *zap.Logger
	tracer trace.Tracer
}

// NewServer creates the REST server over the use cases.
func NewServer(uc usecases.UseCases, logger *zap.Logger) *Server {
	return &Server{
		uc:     uc,
		logger: logger.With(zap.String("component", "http")),
		tracer: tracing.Tracer("http"),
	}
}

// NewEcho builds the echo instance with middleware, validation and routes.
func (s *Server) NewEcho() (*echo.Echo, error) {
	doc, err := LoadDocument()
	if err != nil {
		return nil, err
	}
	if err = registerSwagger(doc); err != nil {
		return nil, err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = errorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())
	e.Use(s.traceRequests)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.RegisterRoutes(e.Group("/api/v1", validate))
	return e, nil
}

// RegisterRoutes binds every endpoint under g.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders", s.FindOrders)
	g.GET("/orders/orphaned", s.FindOrphanedOrders)
	g.GET("/orders/:orderId", s.FindOrder)
	g.PATCH("/orders/:orderId", s.UpdateOrder)
	g.DELETE("/orders/:orderId", s.DeleteOrder)

	g.POST("/order-details", s.CreateOrderDetail)
	g.GET("/order-details", s.FindOrderDetails)
	g.GET("/order-details/:detailId", s.FindOrderDetail)
	g.PATCH("/order-details/:detailId", s.UpdateOrderDetail)
	g.POST("/order-details/:detailId/finalize", s.FinalizeOrderDetail)
	g.POST("/order-details/:detailId/accept", s.AcceptOrderDetail)
	g.POST("/order-details/:detailId/sessions", s.AddSession)
	g.GET("/companies/:companyId/order-details/count", s.CountDetailsByCompany)
	g.GET("/professionals/:professionalId/order-details", s.GetProfessionalDetails)
	g.GET("/professionals/:professionalId/order-details/:detailId", s.GetProfessionalDetail)
	g.GET("/professionals/:professionalId/pending-order-details", s.FindPendingOrderDetails)

	g.POST("/claims", s.CreateClaim)
	g.GET("/claims", s.FindClaims)
	g.GET("/claims/:claimId", s.FindClaim)
	g.PATCH("/claims/:claimId", s.UpdateClaim)
	g.DELETE("/claims/:claimId", s.DeleteClaim)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Debug("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	})
}

func (s *Server) traceRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx, span := s.tracer.Start(req.Context(), req.Method+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("http.route", c.Path())))
		defer span.End()

		c.SetRequest(req.WithContext(ctx))
		started := time.Now()
		err := next(c)
		span.SetAttributes(attribute.Int64("http.duration_ms", time.Since(started).Milliseconds()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}
}
