package create_property

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/service/properties"
	"github.com/m04kA/SMC-RealEstateService/internal/service/properties/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "название и расположение обязательны"
	msgInvalidInput       = "некорректные данные объекта"
)

type Handler struct {
	service PropertyService
	logger  Logger
}

func NewHandler(service PropertyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/properties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PropertyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/properties - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Title == "" || req.Location == "" {
		h.logger.Warn("POST /admin/properties - Missing required fields")
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	property, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, properties.ErrInvalidInput) {
			h.logger.Warn("POST /admin/properties - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/properties - Failed to create property: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/properties - Property created: property_id=%d", property.ID)
	handlers.RespondJSON(w, http.StatusCreated, property)
}
