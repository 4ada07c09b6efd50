package router

import (
	"net/http"

	"tainan-restaurant/internal/handler"
	"tainan-restaurant/internal/metadata"
	"tainan-restaurant/internal/middleware"
	"tainan-restaurant/internal/openapi"
	"tainan-restaurant/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Config carries the HTTP-level settings of the router.
type Config struct {
	BaseURL        string
	AllowedOrigins []string
	RateLimit      float64
	RateLimitBurst int
}

// Route is one declared endpoint. Routes with a nil Doc are served but left
// out of the OpenAPI document.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
	Doc     *openapi.Operation
}

// Pattern returns the ServeMux pattern of the route.
func (r Route) Pattern() string {
	return r.Method + " " + r.Path
}

type routeTable struct {
	routes []Route
}

// operations returns the documented routes in declaration order.
func (t *routeTable) operations() []openapi.Operation {
	ops := make([]openapi.Operation, 0, len(t.routes))
	for _, route := range t.routes {
		if route.Doc == nil {
			continue
		}
		op := *route.Doc
		op.Method = route.Method
		op.Path = route.Path
		ops = append(ops, op)
	}
	return ops
}

// New creates a new HTTP router with all routes and middleware configured.
// records reports the size of the loaded table for the health check.
func New(
	restaurantService service.RestaurantService,
	records func() int,
	cfg Config,
	logger zerolog.Logger,
) http.Handler {
	table := &routeTable{}

	publisher := metadata.NewPublisher(metadata.Config{
		BaseURL: cfg.BaseURL,
		Info: openapi.Info{
			Title:   apiTitle,
			Version: apiVersion,
		},
	}, table.operations, componentSchemas(), logger)

	restaurantHandler := handler.NewRestaurantHandler(restaurantService, logger)
	metadataHandler := handler.NewMetadataHandler(publisher, logger)
	healthHandler := handler.NewHealthHandler(records)

	table.routes = []Route{
		{
			Method:  http.MethodGet,
			Path:    "/.well-known/ai-plugin.json",
			Handler: metadataHandler.PluginManifest,
		},
		{
			Method:  http.MethodGet,
			Path:    metadata.OpenAPIPath,
			Handler: metadataHandler.OpenAPIYAML,
		},
		{
			Method:  http.MethodGet,
			Path:    "/openapi.json",
			Handler: metadataHandler.OpenAPIJSON,
		},
		{
			Method:  http.MethodGet,
			Path:    "/random_restaurant/{district}",
			Handler: restaurantHandler.RandomByDistrict,
			Doc:     randomByDistrictDoc(),
		},
		{
			Method:  http.MethodGet,
			Path:    "/restaurant/{name}",
			Handler: restaurantHandler.GetByName,
			Doc:     getByNameDoc(),
		},
		{
			Method:  http.MethodGet,
			Path:    "/districts",
			Handler: restaurantHandler.Districts,
			Doc:     districtsDoc(),
		},
		{
			Method:  http.MethodGet,
			Path:    "/health",
			Handler: healthHandler.Health,
		},
		{
			Method:  http.MethodGet,
			Path:    "/metrics",
			Handler: promhttp.Handler().ServeHTTP,
		},
	}

	mux := http.NewServeMux()
	for _, route := range table.routes {
		mux.HandleFunc(route.Pattern(), route.Handler)
	}

	// Apply middleware in order: Recovery -> RequestID -> Metrics -> Logging -> CORS -> RateLimit
	var h http.Handler = mux
	h = middleware.RateLimit(cfg.RateLimit, cfg.RateLimitBurst, logger)(h)
	h = middleware.CORS(cfg.AllowedOrigins)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Metrics(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	logger.Debug().Int("routes", len(table.routes)).Msg("router configured")

	return h
}
