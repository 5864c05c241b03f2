package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho builds the HTTP engine: request logging, panic recovery, schema
// validation with merchant authentication, the API routes, swagger UI and
// the health probe.
func NewEcho(server ServerInterface, doc *openapi3.T, auth Authenticator, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := RequestValidator(doc, auth)
	if err != nil {
		return nil, err
	}
	if err = registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", swaggerHandler())

	RegisterHandlersWithBaseURL(e, server, BasePath)
	return e, nil
}
