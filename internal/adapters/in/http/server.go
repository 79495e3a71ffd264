package http

import (
	"log/slog"
	"net/http"

	"dispatch/internal/adapters/in/http/api"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements api.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCityHandler     commands.CreateCityCommandHandler
	registerHandler       commands.RegisterCommandHandler
	createDeliveryHandler commands.CreateDeliveryCommandHandler

	// Query handlers
	getOrderPartiesHandler     queries.GetOrderPartiesQueryHandler
	getDeliveryHandler         queries.GetDeliveryQueryHandler
	getDriverRankReportHandler queries.GetDriverRankReportQueryHandler

	logger *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCityHandler commands.CreateCityCommandHandler,
	registerHandler commands.RegisterCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	getOrderPartiesHandler queries.GetOrderPartiesQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getDriverRankReportHandler queries.GetDriverRankReportQueryHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		createCityHandler:          createCityHandler,
		registerHandler:            registerHandler,
		createDeliveryHandler:      createDeliveryHandler,
		getOrderPartiesHandler:     getOrderPartiesHandler,
		getDeliveryHandler:         getDeliveryHandler,
		getDriverRankReportHandler: getDriverRankReportHandler,
		logger:                     logger.With("component", "http"),
	}
}

// CreateCity handles POST /api/v1/cities.
func (s *Server) CreateCity(ctx echo.Context) error {
	var body api.NewCity
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	cmd, err := commands.NewCreateCityCommand(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.createCityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, api.City{Id: c.ID().Bytes(), Name: c.Name()})
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body api.NewDriver
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	cmd, err := commands.NewCreateDriverCommand(body.Name, toKernel(body.CityId))
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.registerHandler.HandleCreateDriver(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, api.Driver{
		Id:     d.ID().Bytes(),
		Name:   d.Name(),
		CityId: d.CityID().Bytes(),
	})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body api.NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, toKernel(body.CityId), body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.registerHandler.HandleCreateCustomer(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, api.Customer{
		Id:      c.ID().Bytes(),
		Name:    c.Name(),
		CityId:  c.CityID().Bytes(),
		Address: c.Address(),
	})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body api.NewRestaurant
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	cmd, err := commands.NewCreateRestaurantCommand(body.Name, toKernel(body.CityId), body.Description)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.registerHandler.HandleCreateRestaurant(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, api.Restaurant{
		Id:          r.ID().Bytes(),
		Name:        r.Name(),
		CityId:      r.CityID().Bytes(),
		Description: r.Description(),
	})
}

// CreateDelivery handles POST /api/v1/deliveries: it resolves the customer and
// the restaurant, then creates the order and assigns a driver to it. Invalid
// arguments are reported before unknown parties.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body api.NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	if err := commands.ValidateDeliveryTime(body.DeliveryTime); err != nil {
		return s.fail(ctx, err)
	}

	reqCtx := ctx.Request().Context()

	partiesQuery, err := queries.NewGetOrderPartiesQuery(toKernel(body.CustomerId), toKernel(body.RestaurantId))
	if err != nil {
		return s.fail(ctx, err)
	}

	parties, err := s.getOrderPartiesHandler.Handle(reqCtx, partiesQuery)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(parties.Customer, parties.Restaurant, body.DeliveryTime)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.createDeliveryHandler.Handle(reqCtx, cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logger.InfoContext(reqCtx, "delivery assigned",
		"delivery_id", d.ID().String(),
		"driver_id", d.DriverID().String(),
		"delivery_time", d.DeliveryTime(),
	)

	return ctx.JSON(http.StatusCreated, api.Delivery{
		Id:           d.ID().Bytes(),
		DriverId:     d.DriverID().Bytes(),
		RestaurantId: d.RestaurantID().Bytes(),
		CustomerId:   d.CustomerID().Bytes(),
		DeliveryTime: d.DeliveryTime(),
		DistanceKm:   d.Distance().Kilometers(),
	})
}

// GetDelivery handles GET /api/v1/deliveries/{deliveryId}.
func (s *Server) GetDelivery(ctx echo.Context, deliveryID openapi_types.UUID) error {
	query, err := queries.NewGetDeliveryQuery(toKernel(deliveryID))
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.DeliveryDetails{
		Id:             d.ID.Bytes(),
		DriverId:       d.DriverID.Bytes(),
		DriverName:     d.DriverName,
		RestaurantId:   d.RestaurantID.Bytes(),
		RestaurantName: d.RestaurantName,
		CustomerId:     d.CustomerID.Bytes(),
		CustomerName:   d.CustomerName,
		CityId:         d.CityID.Bytes(),
		DeliveryTime:   d.DeliveryTime,
		DistanceKm:     d.DistanceKm,
	})
}

// GetDriverRankReport handles GET /api/v1/reports/driver-rank.
func (s *Server) GetDriverRankReport(ctx echo.Context, params api.GetDriverRankReportParams) error {
	query := queries.NewGetDriverRankReportQuery()
	if params.CityId != nil {
		var err error
		if query, err = queries.NewGetCityDriverRankReportQuery(toKernel(*params.CityId)); err != nil {
			return s.fail(ctx, err)
		}
	}

	report, err := s.getDriverRankReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.DriverRank, len(report))
	for i, line := range report {
		response[i] = api.DriverRank{
			DriverId:      line.DriverID.Bytes(),
			DriverName:    line.DriverName,
			CityId:        line.CityID.Bytes(),
			TotalDistance: line.TotalDistance,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// toKernel converts a decoded identifier. The nil UUID maps to the zero
// kernel.UUID, which the command constructors reject as missing.
func toKernel(id openapi_types.UUID) kernel.UUID {
	u, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}
	}
	return u
}
