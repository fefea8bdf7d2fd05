package update_property

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/service/properties"
	"github.com/m04kA/SMC-RealEstateService/internal/service/properties/models"
)

const (
	msgInvalidPropertyID  = "некорректный ID объекта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "название и расположение обязательны"
	msgInvalidInput       = "некорректные данные объекта"
	msgNotFound           = "объект не найден"
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

// Handle PUT /api/v1/admin/properties/{propertyId}
// Полная замена полей объекта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/properties/{id} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	var req models.PropertyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/properties/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Title == "" || req.Location == "" {
		h.logger.Warn("PUT /admin/properties/{id} - Missing required fields: property_id=%d", propertyID)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	property, err := h.service.Update(r.Context(), propertyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrPropertyNotFound):
			h.logger.Warn("PUT /admin/properties/{id} - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, properties.ErrInvalidInput):
			h.logger.Warn("PUT /admin/properties/{id} - Invalid input: property_id=%d, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/properties/{id} - Failed to update property: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/properties/{id} - Property updated: property_id=%d", propertyID)
	handlers.RespondJSON(w, http.StatusOK, property)
}
