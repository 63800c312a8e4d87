package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"homecare-scheduler/internal/http/handlers"
	mw "homecare-scheduler/internal/http/middleware"
	"homecare-scheduler/internal/http/middleware/auth"
	"homecare-scheduler/internal/http/middleware/ratelimit"
	"homecare-scheduler/internal/logx"
	"homecare-scheduler/internal/metrics"
)

const requestTimeout = 10 * time.Second

// Params are the router's collaborators. Gatherer, Metrics, RateLimit and Auth are optional.
type Params struct {
	dig.In

	Logger       logx.Logger
	Base         *handlers.Handlers
	Patients     *handlers.PatientHandler
	Professional *handlers.ProfessionalHandler
	Assignments  *handlers.AssignmentHandler
	Planning     *handlers.PlanningHandler

	Gatherer  prometheus.Gatherer   `optional:"true"`
	Metrics   *metrics.Set          `optional:"true"`
	RateLimit *ratelimit.Middleware `optional:"true"`
	Auth      *auth.Middleware      `optional:"true"`
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(p Params) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(p.Logger, p.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", p.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(p.Base.HealthcheckHead))
	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}
	r.NotFound(http.HandlerFunc(p.Base.NotFound))

	r.Group(func(r chi.Router) {
		if p.RateLimit != nil {
			r.Use(p.RateLimit.Handler())
		}
		authn := p.Auth
		if authn == nil {
			authn = auth.New("", "", p.Logger)
		}
		r.Use(authn.Handler())

		r.Route("/patients", func(r chi.Router) {
			r.Get("/", p.Patients.List)
			r.Post("/", p.Patients.Create)
			r.Get("/{id}", p.Patients.GetByID)
			r.Put("/{id}/address", p.Patients.UpdateAddress)
			r.Get("/{id}/candidates", p.Planning.Candidates)
		})

		r.Route("/professionals", func(r chi.Router) {
			r.Get("/", p.Professional.List)
			r.Post("/", p.Professional.Create)
			r.Get("/{id}", p.Professional.GetByID)
			r.Put("/{id}/working-hours", p.Professional.ReplaceWorkingHours)
			r.Get("/{id}/slot", p.Planning.Slot)
			r.Get("/{id}/route", p.Planning.Route)
			r.Get("/{id}/schedule", p.Planning.Schedule)
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleCoordinator, auth.RoleAdmin))
			r.Post("/", p.Assignments.Assign)
			r.Post("/bulk", p.Assignments.AssignBulk)
			r.Post("/{id}/reassign", p.Assignments.Reassign)
			r.Post("/{id}/complete", p.Assignments.Complete)
			r.Post("/{id}/cancel", p.Assignments.Cancel)
		})
	})

	return r
}
