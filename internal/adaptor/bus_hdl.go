package adaptor

import (
	"encoding/json"
	"net/http"

	"bus-booking/internal/dto/request"
	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BusHandler struct {
	service     usecase.BusService
	seatService usecase.SeatService
	log         *zap.Logger
}

func NewBusHandler(service usecase.BusService, seatService usecase.SeatService, log *zap.Logger) *BusHandler {
	return &BusHandler{
		service:     service,
		seatService: seatService,
		log:         log.With(zap.String("handler", "bus")),
	}
}

// GetBuses handles GET /buses (public)
func (h *BusHandler) GetBuses(w http.ResponseWriter, r *http.Request) {
	buses, err := h.service.GetBuses(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get buses")
		return
	}

	utils.ResponseSuccess(w, "success", buses)
}

// GetBusByID handles GET /buses/{id} (public)
func (h *BusHandler) GetBusByID(w http.ResponseWriter, r *http.Request) {
	busID := chi.URLParam(r, "id")
	if busID == "" {
		utils.ResponseBadRequest(w, "Bus ID is required", nil)
		return
	}

	bus, err := h.service.GetBusByID(r.Context(), busID)
	if err != nil {
		handleServiceError(w, h.log, err, "get bus")
		return
	}

	utils.ResponseSuccess(w, "success", bus)
}

// GetSeatAvailability handles GET /buses/{id}/seats?date=YYYY-MM-DD (public)
func (h *BusHandler) GetSeatAvailability(w http.ResponseWriter, r *http.Request) {
	busID := chi.URLParam(r, "id")
	if busID == "" {
		utils.ResponseBadRequest(w, "Bus ID is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	seatAvailability, err := h.seatService.GetSeatAvailability(r.Context(), busID, date)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat availability")
		return
	}

	utils.ResponseSuccess(w, "success", seatAvailability)
}

// CreateBus handles POST /admin/buses
func (h *BusHandler) CreateBus(w http.ResponseWriter, r *http.Request) {
	var req request.BusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	bus, err := h.service.CreateBus(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create bus")
		return
	}

	utils.ResponseCreated(w, "success", bus)
}

// UpdateBus handles PUT /admin/buses/{id}
func (h *BusHandler) UpdateBus(w http.ResponseWriter, r *http.Request) {
	busID := chi.URLParam(r, "id")
	if busID == "" {
		utils.ResponseBadRequest(w, "Bus ID is required", nil)
		return
	}

	var req request.BusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	bus, err := h.service.UpdateBus(r.Context(), busID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update bus")
		return
	}

	utils.ResponseSuccess(w, "success", bus)
}

// DeleteBus handles DELETE /admin/buses/{id}
func (h *BusHandler) DeleteBus(w http.ResponseWriter, r *http.Request) {
	busID := chi.URLParam(r, "id")
	if busID == "" {
		utils.ResponseBadRequest(w, "Bus ID is required", nil)
		return
	}

	if err := h.service.DeleteBus(r.Context(), busID); err != nil {
		handleServiceError(w, h.log, err, "delete bus")
		return
	}

	utils.ResponseSuccess(w, "Bus deleted", nil)
}

// SeedBuses handles POST /admin/buses/seed
func (h *BusHandler) SeedBuses(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	count, err := h.service.Seed(r.Context(), force)
	if err != nil {
		handleServiceError(w, h.log, err, "seed buses")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]int{"count": count})
}
