// Package api holds the wire contract of the HTTP server: the embedded
// OpenAPI document, request and response bodies, and the echo bindings that
// decode path and query parameters before calling a ServerInterface.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BasePath prefixes every operation of the document.
const BasePath = "/api/v1"

//go:embed openapi.yml
var document []byte

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewCity struct {
	Name string `json:"name"`
}

type City struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

type NewDriver struct {
	Name   string             `json:"name"`
	CityId openapi_types.UUID `json:"cityId"`
}

type Driver struct {
	Id     openapi_types.UUID `json:"id"`
	Name   string             `json:"name"`
	CityId openapi_types.UUID `json:"cityId"`
}

type NewCustomer struct {
	Name    string             `json:"name"`
	CityId  openapi_types.UUID `json:"cityId"`
	Address string             `json:"address,omitempty"`
}

type Customer struct {
	Id      openapi_types.UUID `json:"id"`
	Name    string             `json:"name"`
	CityId  openapi_types.UUID `json:"cityId"`
	Address string             `json:"address,omitempty"`
}

type NewRestaurant struct {
	Name        string             `json:"name"`
	CityId      openapi_types.UUID `json:"cityId"`
	Description string             `json:"description,omitempty"`
}

type Restaurant struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	CityId      openapi_types.UUID `json:"cityId"`
	Description string             `json:"description,omitempty"`
}

type NewDelivery struct {
	CustomerId   openapi_types.UUID `json:"customerId"`
	RestaurantId openapi_types.UUID `json:"restaurantId"`
	DeliveryTime time.Time          `json:"deliveryTime"`
}

type Delivery struct {
	Id           openapi_types.UUID `json:"id"`
	DriverId     openapi_types.UUID `json:"driverId"`
	RestaurantId openapi_types.UUID `json:"restaurantId"`
	CustomerId   openapi_types.UUID `json:"customerId"`
	DeliveryTime time.Time          `json:"deliveryTime"`
	DistanceKm   float64            `json:"distanceKm"`
}

type DeliveryDetails struct {
	Id             openapi_types.UUID `json:"id"`
	DriverId       openapi_types.UUID `json:"driverId"`
	DriverName     string             `json:"driverName"`
	RestaurantId   openapi_types.UUID `json:"restaurantId"`
	RestaurantName string             `json:"restaurantName"`
	CustomerId     openapi_types.UUID `json:"customerId"`
	CustomerName   string             `json:"customerName"`
	CityId         openapi_types.UUID `json:"cityId"`
	DeliveryTime   time.Time          `json:"deliveryTime"`
	DistanceKm     float64            `json:"distanceKm"`
}

type DriverRank struct {
	DriverId      openapi_types.UUID `json:"driverId"`
	DriverName    string             `json:"driverName"`
	CityId        openapi_types.UUID `json:"cityId"`
	TotalDistance int64              `json:"totalDistance"`
}

type GetDriverRankReportParams struct {
	CityId *openapi_types.UUID
}

// ServerInterface is implemented by the HTTP server.
type ServerInterface interface {
	CreateCity(ctx echo.Context) error
	CreateDriver(ctx echo.Context) error
	CreateCustomer(ctx echo.Context) error
	CreateRestaurant(ctx echo.Context) error
	CreateDelivery(ctx echo.Context) error
	GetDelivery(ctx echo.Context, deliveryID openapi_types.UUID) error
	GetDriverRankReport(ctx echo.Context, params GetDriverRankReportParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetDelivery(ctx echo.Context) error {
	var deliveryID openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	return w.Handler.GetDelivery(ctx, deliveryID)
}

func (w *ServerInterfaceWrapper) GetDriverRankReport(ctx echo.Context) error {
	var params GetDriverRankReportParams

	err := runtime.BindQueryParameter("form", true, false, "cityId", ctx.QueryParams(), &params.CityId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cityId: %s", err))
	}

	return w.Handler.GetDriverRankReport(ctx, params)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL adds every operation of the document to router.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/cities", si.CreateCity)
	router.POST(baseURL+"/drivers", si.CreateDriver)
	router.POST(baseURL+"/customers", si.CreateCustomer)
	router.POST(baseURL+"/restaurants", si.CreateRestaurant)
	router.POST(baseURL+"/deliveries", si.CreateDelivery)
	router.GET(baseURL+"/deliveries/:deliveryId", wrapper.GetDelivery)
	router.GET(baseURL+"/reports/driver-rank", wrapper.GetDriverRankReport)
}

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. Callers get a
// shared instance and must not modify it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(document)
		if err != nil {
			swaggerErr = fmt.Errorf("load openapi document: %w", err)
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			swaggerErr = fmt.Errorf("validate openapi document: %w", err)
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, swaggerErr
}
