package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the HTTP application: the API under /api/v1 validated
// against the embedded OpenAPI document and rate limited per session, plus
// health, API description and Swagger UI routes.
func NewEcho(ctx context.Context, s *Server, limiter *RateLimiter, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/openapi.yaml", serveOpenAPI)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/openapi.yaml")))

	api := e.Group("/api/v1", limiter.Middleware(), validator)
	api.GET("/menus", s.GetMenus)
	api.GET("/order", s.GetOrder)
	api.POST("/order/lines", s.AddMenu)
	api.POST("/order/lines/:lineId/quantity", s.AdjustQuantity)
	api.PUT("/order/lines/:lineId/combo", s.ChangeComboType)
	api.DELETE("/order/lines/:lineId", s.CancelLine)
	api.GET("/order/events", s.StreamOrderEvents)

	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.DebugContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	}
}
