package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/internal/data/repository"
	"bus-booking/pkg/middleware"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBus(
	r chi.Router,
	busHandler *adaptor.BusHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /buses - list the catalog
	r.Get("/buses", busHandler.GetBuses)

	// GET /buses/{id} - single bus details
	r.Get("/buses/{id}", busHandler.GetBusByID)

	// GET /buses/{id}/seats?date=YYYY-MM-DD - seat availability
	r.Get("/buses/{id}/seats", busHandler.GetSeatAvailability)

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/buses", func(r chi.Router) {
		// Auth then admin-role check
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", busHandler.CreateBus)
		r.Post("/seed", busHandler.SeedBuses)
		r.Put("/{id}", busHandler.UpdateBus)
		r.Delete("/{id}", busHandler.DeleteBus)
	})
}
