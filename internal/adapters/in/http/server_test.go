package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/in/http/api"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factory[T any] func() T

func (f factory[T]) Create() T { return f() }

type testAPI struct {
	t       *testing.T
	e       *echo.Echo
	metrics *metrics.HTTP
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	uows := memory.NewUnitOfWorkFactory(memory.NewStore())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := httpin.NewServer(
		commands.NewCreateCityCommandHandler(factory[commands.CityUoW](func() commands.CityUoW { return uows.Create() })),
		commands.NewRegisterCommandHandler(factory[commands.RegistryUoW](func() commands.RegistryUoW { return uows.Create() })),
		commands.NewCreateDeliveryCommandHandler(
			factory[commands.DeliveryUoW](func() commands.DeliveryUoW { return uows.Create() }),
			services.FixedDistanceSampler{Km: 4.5},
		),
		queries.NewGetOrderPartiesQueryHandler(factory[queries.ReadUoW](func() queries.ReadUoW { return uows.Create() })),
		queries.NewGetDeliveryQueryHandler(factory[queries.ReadUoW](func() queries.ReadUoW { return uows.Create() })),
		queries.NewGetDriverRankReportQueryHandler(factory[queries.ReadUoW](func() queries.ReadUoW { return uows.Create() }), nil),
		logger,
	)

	reg := prometheus.NewRegistry()
	httpMetrics, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	e, err := httpin.NewRouter(server, httpin.RouterConfig{Logger: logger, Metrics: httpMetrics, Gatherer: reg})
	require.NoError(t, err)

	return &testAPI{t: t, e: e, metrics: httpMetrics}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *testAPI) createCity(name string) api.City {
	rec := a.do(http.MethodPost, "/api/v1/cities", `{"name":"`+name+`"}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.City](a.t, rec)
}

func (a *testAPI) createDriver(name string, cityID uuid.UUID) api.Driver {
	rec := a.do(http.MethodPost, "/api/v1/drivers", `{"name":"`+name+`","cityId":"`+cityID.String()+`"}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.Driver](a.t, rec)
}

func (a *testAPI) createCustomer(name string, cityID uuid.UUID) api.Customer {
	rec := a.do(http.MethodPost, "/api/v1/customers",
		`{"name":"`+name+`","cityId":"`+cityID.String()+`","address":"somewhere"}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.Customer](a.t, rec)
}

func (a *testAPI) createRestaurant(name string, cityID uuid.UUID) api.Restaurant {
	rec := a.do(http.MethodPost, "/api/v1/restaurants",
		`{"name":"`+name+`","cityId":"`+cityID.String()+`","description":"food"}`)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.Restaurant](a.t, rec)
}

func (a *testAPI) order(customerID, restaurantID uuid.UUID, at time.Time) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, "/api/v1/deliveries",
		`{"customerId":"`+customerID.String()+`","restaurantId":"`+restaurantID.String()+
			`","deliveryTime":"`+at.Format(time.RFC3339Nano)+`"}`)
}

func TestServer_Health(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_CreateCity(t *testing.T) {
	a := newTestAPI(t)

	tlv := a.createCity("Tel Aviv")
	assert.Equal(t, "Tel Aviv", tlv.Name)
	assert.NotEqual(t, uuid.Nil, tlv.Id)

	rec := a.do(http.MethodPost, "/api/v1/cities", `{"name":"Tel Aviv"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, http.StatusConflict, decode[api.Error](t, rec).Code)
}

func TestServer_RequestValidation(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"missing name", "/api/v1/cities", `{}`},
		{"empty name", "/api/v1/cities", `{"name":""}`},
		{"blank name", "/api/v1/cities", `{"name":"   "}`},
		{"missing city", "/api/v1/drivers", `{"name":"Mary"}`},
		{"malformed city id", "/api/v1/drivers", `{"name":"Mary","cityId":"not-a-uuid"}`},
		{"nil city id", "/api/v1/drivers", `{"name":"Mary","cityId":"00000000-0000-0000-0000-000000000000"}`},
		{"missing delivery time", "/api/v1/deliveries", `{"customerId":"` + uuid.NewString() + `","restaurantId":"` + uuid.NewString() + `"}`},
		{"malformed body", "/api/v1/cities", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, http.StatusBadRequest, decode[api.Error](t, rec).Code)
		})
	}
}

func TestServer_CreateDriver_UnknownCity(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodPost, "/api/v1/drivers", `{"name":"Mary","cityId":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestServer_CreateDelivery(t *testing.T) {
	a := newTestAPI(t)
	at := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	tlv := a.createCity("Tel Aviv")
	mary := a.createDriver("Mary", tlv.Id)
	john := a.createDriver("John", tlv.Id)
	nir := a.createCustomer("Nir", tlv.Id)
	taizu := a.createRestaurant("Taizu", tlv.Id)

	assigned := make(map[uuid.UUID]bool)
	for range 2 {
		rec := a.order(nir.Id, taizu.Id, at)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		d := decode[api.Delivery](t, rec)
		assert.True(t, d.DeliveryTime.Equal(at))
		assert.InDelta(t, 4.5, d.DistanceKm, 1e-9)
		assigned[d.DriverId] = true
	}
	assert.Equal(t, map[uuid.UUID]bool{mary.Id: true, john.Id: true}, assigned)

	rec := a.order(nir.Id, taizu.Id, at)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = a.order(nir.Id, taizu.Id, at.Add(time.Hour))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	d := decode[api.Delivery](t, rec)

	rec = a.do(http.MethodGet, "/api/v1/deliveries/"+d.Id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	details := decode[api.DeliveryDetails](t, rec)
	assert.Equal(t, "Nir", details.CustomerName)
	assert.Equal(t, "Taizu", details.RestaurantName)
	assert.Equal(t, tlv.Id, details.CityId)
}

func TestServer_CreateDelivery_CityMismatch(t *testing.T) {
	a := newTestAPI(t)
	at := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	tlv := a.createCity("Tel Aviv")
	hfa := a.createCity("Haifa")
	a.createDriver("Mary", tlv.Id)
	nir := a.createCustomer("Nir", tlv.Id)
	hanoi := a.createRestaurant("Hanoi", hfa.Id)

	rec := a.order(nir.Id, hanoi.Id, at)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func TestServer_CreateDelivery_UnknownParties(t *testing.T) {
	a := newTestAPI(t)

	rec := a.order(uuid.New(), uuid.New(), time.Now())
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = a.order(uuid.New(), uuid.New(), time.Time{})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestServer_GetDelivery(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodGet, "/api/v1/deliveries/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodGet, "/api/v1/deliveries/42", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetDriverRankReport(t *testing.T) {
	a := newTestAPI(t)
	at := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	tlv := a.createCity("Tel Aviv")
	hfa := a.createCity("Haifa")
	mary := a.createDriver("Mary", tlv.Id)
	dana := a.createDriver("Dana", hfa.Id)
	nir := a.createCustomer("Nir", tlv.Id)
	taizu := a.createRestaurant("Taizu", tlv.Id)

	for i := range 3 {
		rec := a.order(nir.Id, taizu.Id, at.Add(time.Duration(i)*time.Hour))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := a.do(http.MethodGet, "/api/v1/reports/driver-rank", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decode[[]api.DriverRank](t, rec)
	require.Len(t, report, 2)
	assert.Equal(t, mary.Id, report[0].DriverId)
	assert.Equal(t, int64(12), report[0].TotalDistance)
	assert.Equal(t, dana.Id, report[1].DriverId)
	assert.Zero(t, report[1].TotalDistance)

	rec = a.do(http.MethodGet, "/api/v1/reports/driver-rank?cityId="+hfa.Id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report = decode[[]api.DriverRank](t, rec)
	require.Len(t, report, 1)
	assert.Equal(t, "Dana", report[0].DriverName)

	rec = a.do(http.MethodGet, "/api/v1/reports/driver-rank?cityId="+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodGet, "/api/v1/reports/driver-rank?cityId=oops", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_MetricsAndDocs(t *testing.T) {
	a := newTestAPI(t)

	a.createCity("Tel Aviv")
	assert.InDelta(t, 1, testutil.ToFloat64(a.metrics.Requests(http.MethodPost, "/api/v1/cities", http.StatusCreated)), 0)

	rec := a.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")

	rec = a.do(http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/reports/driver-rank")

	rec = a.do(http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decode[api.Error](t, rec).Code)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, httpin.StatusOf(commands.ErrInvalidArgument))
	assert.Equal(t, http.StatusUnprocessableEntity, httpin.StatusOf(services.ErrCityMismatch))
	assert.Equal(t, http.StatusConflict, httpin.StatusOf(services.ErrNoAvailableDriver))
	assert.Equal(t, http.StatusInternalServerError, httpin.StatusOf(io.ErrUnexpectedEOF))
}
