package remove_from_wishlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
	"github.com/m04kA/SMC-RealEstateService/internal/service/wishlist"
)

const (
	msgMissingIdentity   = "требуется авторизация"
	msgInvalidPropertyID = "некорректный ID объекта"
	msgNotFound          = "объекта нет в избранном"
)

type Handler struct {
	service WishlistService
	logger  Logger
}

func NewHandler(service WishlistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/wishlist/{propertyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("DELETE /wishlist/{id} - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /wishlist/{id} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	if err := h.service.Remove(r.Context(), identity, propertyID); err != nil {
		switch {
		case errors.Is(err, wishlist.ErrNotFound):
			h.logger.Warn("DELETE /wishlist/{id} - Entry not found: user_id=%d, property_id=%d", identity.UserID, propertyID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wishlist.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPropertyID)

		default:
			h.logger.Error("DELETE /wishlist/{id} - Failed to remove: user_id=%d, property_id=%d, error=%v",
				identity.UserID, propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /wishlist/{id} - Removed from wishlist: user_id=%d, property_id=%d", identity.UserID, propertyID)
	w.WriteHeader(http.StatusNoContent)
}
