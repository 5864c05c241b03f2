package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// SwaggerInstance is the swag registry name of the API document.
const SwaggerInstance = "kitchen"

var registerOnce sync.Once

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// registerSwagger publishes doc to the swag registry. The registry is process
// global and panics on duplicates, so only the first document is kept.
func registerSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(SwaggerInstance, swaggerDoc{json: string(raw)})
	})
	return nil
}

func swaggerHandler() echo.HandlerFunc {
	return echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(SwaggerInstance))
}
