package delete_property

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/service/properties"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgNotFound          = "объект не найден"
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

// Handle DELETE /api/v1/admin/properties/{propertyId}
// Бронирования и избранное удаляются каскадно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/properties/{id} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	if err := h.service.Delete(r.Context(), propertyID); err != nil {
		if errors.Is(err, properties.ErrPropertyNotFound) {
			h.logger.Warn("DELETE /admin/properties/{id} - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/properties/{id} - Failed to delete property: property_id=%d, error=%v", propertyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/properties/{id} - Property deleted: property_id=%d", propertyID)
	w.WriteHeader(http.StatusNoContent)
}
