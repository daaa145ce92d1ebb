package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"USERTODO_BACK-END/internal/config"
	"USERTODO_BACK-END/internal/handlers"
	"USERTODO_BACK-END/internal/metrics"
	"USERTODO_BACK-END/internal/middleware"
	"USERTODO_BACK-END/internal/store"
)

// Dependencies are the collaborators the router wires into handlers.
// Metrics may be nil to disable instrumentation and the /metrics endpoint.
type Dependencies struct {
	Config  *config.Config
	Store   store.Store
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewRouter configures all application routes behind the CORS layer
func NewRouter(deps Dependencies) http.Handler {
	usersHandler := handlers.NewUsersHandler(deps.Store, &deps.Config.Server)
	todosHandler := handlers.NewTodosHandler(deps.Store, &deps.Config.Server)
	probes := handlers.NewProbeHandler(deps.Store)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.Recover(deps.Logger))

	// Anything unmatched, including a wrong method on a known path, is a 404
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	// Root route
	r.Get("/", handlers.Root)

	// Health check routes
	r.Get("/healthz", probes.Health)
	r.Get("/livez", probes.Live)
	r.Get("/readyz", probes.Ready)

	// User routes
	r.Post("/users", usersHandler.Create)
	r.Get("/users", usersHandler.List)
	r.Get("/users/{id}", usersHandler.Get)
	r.Put("/users/{id}", usersHandler.Update)
	r.Delete("/users/{id}", usersHandler.Delete)

	// Todo routes
	r.Post("/todos", todosHandler.Create)
	r.Get("/todos", todosHandler.List)

	// Operational routes
	if deps.Metrics != nil && deps.Config.Metrics.Enabled {
		r.Method(http.MethodGet, deps.Config.Metrics.Path, deps.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	c := cors.New(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   deps.Config.CORS.AllowedMethods,
		AllowedHeaders:   deps.Config.CORS.AllowedHeaders,
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: deps.Config.CORS.AllowCredentials,
	})

	return c.Handler(r)
}
