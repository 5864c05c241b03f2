package http

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"kitchen/internal/core/application/usecases/queries"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// MerchantContextKey holds the authenticated merchant username on the echo context.
const MerchantContextKey = "merchant"

// Authenticator resolves a merchant session token into a username.
type Authenticator interface {
	Handle(ctx context.Context, query queries.AuthenticateMerchantQuery) (string, error)
}

// RequestValidator checks every request under the API base path against doc.
// Operations marked with the merchantToken security scheme are authenticated
// through auth; requests that match no operation fall through to the router.
func RequestValidator(doc *openapi3.T, auth Authenticator) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, BasePath+"/") {
				return next(c)
			}

			route, pathParams, err := router.FindRoute(req)
			var routeErr *routers.RouteError
			if errors.As(err, &routeErr) {
				return next(c)
			}
			if err != nil {
				return err
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: merchantAuthentication(c, auth),
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return err
			}

			return next(c)
		}
	}, nil
}

func merchantAuthentication(c echo.Context, auth Authenticator) openapi3filter.AuthenticationFunc {
	return func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
		token := input.RequestValidationInput.Request.Header.Get(MerchantTokenHeader)

		query, err := queries.NewAuthenticateMerchantQuery(token)
		if err != nil {
			return err
		}
		username, err := auth.Handle(ctx, query)
		if err != nil {
			return err
		}

		c.Set(MerchantContextKey, username)
		return nil
	}
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogRoutePath: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.String("route", v.RoutePath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if merchant, ok := c.Get(MerchantContextKey).(string); ok {
				attrs = append(attrs, slog.String("merchant", merchant))
			}

			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "HTTP request", attrs...)
			return nil
		},
	})
}
