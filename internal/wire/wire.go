package wire

import (
	"net/http"

	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/notifier"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/database"
	"salon-booking/pkg/middleware"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App bundles the wired dependencies the server needs.
type App struct {
	Router   *chi.Mux
	Service  *usecase.Service
	Listener *notifier.Listener
}

// Wiring initializes services, the realtime feed and the router.
func Wiring(repo *repository.Repository, db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	hub := notifier.NewHub(logger)
	queue := notifier.NewQueue()
	listener := notifier.NewListener(db, hub, queue, logger)

	service := usecase.NewService(repo, db, config, logger)
	handler := adaptor.NewHandler(service, hub, queue, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router:   router,
		Service:  service,
		Listener: listener,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wirePublic(r, handler, repo, logger)
	wireAdmin(r, handler, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// wirePublic mounts the booking-page surface: no authentication.
func wirePublic(r chi.Router, handler *adaptor.Handler, repo *repository.Repository, log *zap.Logger) {
	r.Post("/api/login", handler.Auth.Login)
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).Post("/api/logout", handler.Auth.Logout)

	// Booking page data plus the booking request itself.
	r.Get("/api/services", handler.Catalog.GetAll)
	r.Get("/api/collaborators", handler.Collaborator.GetPublic)
	r.Post("/api/booking", handler.Appointment.CreatePublicBooking)
}

// wireAdmin mounts the dashboard surface behind session auth plus the
// admin role.
func wireAdmin(r chi.Router, handler *adaptor.Handler, repo *repository.Repository, log *zap.Logger) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", handler.Appointment.GetAll)
			r.Post("/", handler.Appointment.Create)
			r.Get("/{id}", handler.Appointment.GetByID)
			r.Patch("/{id}/status", handler.Appointment.UpdateStatus)
			r.Post("/{id}/whatsapp", handler.Appointment.WhatsAppConfirmation)
			r.Delete("/{id}", handler.Appointment.Delete)
		})
		r.Get("/schedule", handler.Appointment.GetSchedule)

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/open", handler.Checkout.ListOpen)
			r.Post("/preview", handler.Checkout.Preview)
			r.Post("/", handler.Checkout.Finalize)
		})
		r.Delete("/sales/{id}", handler.Checkout.Reverse)
		r.Get("/reports/sales", handler.Report.Sales)

		r.Route("/services", func(r chi.Router) {
			r.Get("/", handler.Catalog.GetAll)
			r.Post("/", handler.Catalog.Create)
			r.Put("/{id}", handler.Catalog.Update)
			r.Delete("/{id}", handler.Catalog.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", handler.Product.GetAll)
			r.Post("/", handler.Product.Create)
			r.Put("/{id}", handler.Product.Update)
			r.Delete("/{id}", handler.Product.Delete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", handler.Customer.GetAll)
			r.Post("/", handler.Customer.Create)
			r.Put("/{id}", handler.Customer.Update)
			r.Delete("/{id}", handler.Customer.Delete)
		})

		r.Route("/collaborators", func(r chi.Router) {
			r.Get("/", handler.Collaborator.GetAll)
			r.Post("/", handler.Collaborator.Create)
			r.Put("/{id}", handler.Collaborator.Update)
			r.Delete("/{id}", handler.Collaborator.Delete)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", handler.Notification.GetRecent)
			r.Get("/unread", handler.Notification.UnreadCount)
			r.Post("/read", handler.Notification.MarkAllRead)
			r.Get("/toasts", handler.Notification.GetToasts)
			r.Delete("/toasts/{id}", handler.Notification.DismissToast)
			r.Get("/ws", handler.Notification.Stream)
		})
	})
}
