package http

//go:generate swag init --dir ../../.. --generalInfo internal/admin/http/router.go --output ../../../api/admin --outputTypes go

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/httpx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/jwtx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/metrics"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"

	_ "github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/api/admin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metrics.Metrics

	registry    *store.Registry
	collections store.CollectionNames

	AuthService      *service.AuthService
	RecordService    *service.RecordService
	DashboardService *service.DashboardService

	// AdminRoles restricts writes to the users and roles collections to
	// tokens carrying one of these roles. Empty disables the check.
	AdminRoles []string
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	reg *store.Registry,
	collections store.CollectionNames,
	m *metrics.Metrics,
	corsOrigins []string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		metrics:      m,
		registry:     reg,
		collections:  collections,
	}

	// Metrics wraps the mux itself (see ServeHTTP) so it can read the
	// matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerDashboard()
	r.registerCollections()
	r.registerSystem()

	r.Mux.Handle("GET /metrics", r.metrics.Handler())
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Business Operations Admin API
//	@version		1.0.0
//	@description	REST API behind the operations admin panel. Generic CRUD over the business
//	@description	collections plus the dashboard aggregate. All data endpoints need a bearer token
//	@description	obtained from /api/auth/login (HS256, 7 day expiry).
//
//	@host						localhost:4000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.metrics.Middleware(r.Mux), r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authenticated(h http.Handler, mws ...httpx.Middleware) http.Handler {
	chain := append([]httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	}, mws...)
	return httpx.Chain(h, chain...)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{AuthService: r.AuthService}

	// POST /login - strict rate limit by IP + email to slow password guessing
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(login,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("GET /api/auth/me", r.authenticated(http.HandlerFunc(MeHandler)))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}
	r.Mux.Handle("GET /api/dashboard", r.authenticated(h))
}

func (r *Router) registerCollections() {
	for _, b := range r.collections.Bindings() {
		h := &CollectionHandler{Service: r.RecordService, Collection: b.Collection}

		var guard httpx.Middleware
		if b.Collection == r.collections.Users || b.Collection == r.collections.Roles {
			guard = httpx.RequireRole(r.AdminRoles...)
		}

		base := "/api/" + b.Endpoint
		r.Mux.Handle("GET "+base, r.authenticated(http.HandlerFunc(h.List)))
		r.Mux.Handle("POST "+base, r.authenticated(http.HandlerFunc(h.Create), guard))
		r.Mux.Handle("PUT "+base+"/{id}", r.authenticated(http.HandlerFunc(h.Update), guard))
		r.Mux.Handle("DELETE "+base+"/{id}", r.authenticated(http.HandlerFunc(h.Delete), guard))
	}
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /api/health", HealthHandler)

	// Probes - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.registry, r.metrics),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
