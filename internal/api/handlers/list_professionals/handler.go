package list_professionals

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListProfessionals(r.Context())
	if err != nil {
		h.logger.Error("GET /professionals - Failed to list professionals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals - Professionals retrieved successfully: count=%d", len(result.Professionals))
	handlers.RespondJSON(w, http.StatusOK, result.Professionals)
}
