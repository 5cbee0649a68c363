package search_fields

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields"
	"github.com/m04kA/SMC-FieldBooking/internal/service/fields/models"
)

const (
	msgMissingCity = "introduceți orașul"
)

type Handler struct {
	service FieldService
	logger  Logger
}

func NewHandler(service FieldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields?city=&sport=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	city := handlers.QueryString(r, "city")
	if city == nil {
		handlers.RespondBadRequest(w, msgMissingCity)
		return
	}

	result, err := h.service.Search(r.Context(), &models.SearchRequest{
		City:  *city,
		Sport: handlers.QueryString(r, "sport"),
	})
	if err != nil {
		if errors.Is(err, fields.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingCity)
			return
		}
		h.logger.Error("GET /fields - Failed to search fields: city=%s, error=%v", *city, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fields - Fields found: city=%s, count=%d", *city, len(result.Fields))
	handlers.RespondJSON(w, http.StatusOK, result)
}
