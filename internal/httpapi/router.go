package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CaptainChua/Staycation/internal/analytics"
	"github.com/CaptainChua/Staycation/internal/api"
	"github.com/CaptainChua/Staycation/internal/booking"
	"github.com/CaptainChua/Staycation/internal/haven"
	"github.com/CaptainChua/Staycation/internal/inventory"
	"github.com/CaptainChua/Staycation/internal/notify"
	"github.com/CaptainChua/Staycation/internal/operator"
	"github.com/CaptainChua/Staycation/pkg/config"
)

type Dependencies struct {
	Cfg      config.Config
	DB       *pgxpool.Pool
	Notifier notify.Notifier
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	operatorsRepo := operator.NewRepository(deps.DB)
	bookingHandlers := booking.Handlers{
		Cfg:      deps.Cfg,
		DB:       deps.DB,
		Bookings: booking.NewRepository(deps.DB),
		Notifier: deps.Notifier,
	}
	inventoryHandlers := inventory.Handlers{
		Cfg:   deps.Cfg,
		DB:    deps.DB,
		Items: inventory.NewRepository(deps.DB),
	}
	havenHandlers := haven.Handlers{
		Cfg:    deps.Cfg,
		DB:     deps.DB,
		Havens: haven.NewRepository(deps.DB),
	}
	analyticsHandlers := analytics.Handlers{
		Cfg:  deps.Cfg,
		Repo: analytics.NewRepository(deps.DB),
	}

	// v1
	r.Route("/v1", func(r chi.Router) {
		// The admin frontend runs on a separate origin.
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AdminAllowedOrigins,
		}))

		// Operator-facing admin APIs.
		r.Group(func(r chi.Router) {
			// Production: session token auth.
			// Dev: falls back to X-Operator-Email if Authorization is missing.
			r.Use(api.OperatorSessionAuth(deps.Cfg, operatorsRepo))

			// Reservations lifecycle
			r.Get("/bookings", bookingHandlers.List)
			r.Get("/bookings/{id}", bookingHandlers.Get)
			r.Put("/bookings/{id}", bookingHandlers.Transition)
			r.Delete("/bookings/{id}", bookingHandlers.Delete)
			r.Get("/bookings/{id}/events", bookingHandlers.Events)

			// Supply inventory
			r.Get("/inventory", inventoryHandlers.List)
			r.Post("/inventory", inventoryHandlers.Create)

			// Havens (rooms)
			r.Get("/havens", havenHandlers.List)
			r.Post("/havens", havenHandlers.Create)
			r.Get("/havens/{id}", havenHandlers.Get)
			r.Put("/havens/{id}", havenHandlers.Update)
			r.Delete("/havens/{id}", havenHandlers.Delete)

			// Dashboards
			r.Get("/analytics/summary", analyticsHandlers.Summary)
		})
	})

	return r
}
