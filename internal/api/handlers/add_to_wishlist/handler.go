package add_to_wishlist

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
	"github.com/m04kA/SMC-RealEstateService/internal/service/wishlist"
	"github.com/m04kA/SMC-RealEstateService/internal/service/wishlist/models"
)

const (
	msgMissingIdentity    = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingProperty    = "не указан объект"
	msgPropertyNotFound   = "объект не найден"
	msgAlreadyInWishlist  = "объект уже в избранном"
	msgUserNotFound       = "пользователь не найден"
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

// Handle POST /api/v1/wishlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /wishlist - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req models.AddRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wishlist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.PropertyID <= 0 {
		h.logger.Warn("POST /wishlist - Missing property: user_id=%d", identity.UserID)
		handlers.RespondBadRequest(w, msgMissingProperty)
		return
	}

	entry, err := h.service.Add(r.Context(), identity, &req)
	if err != nil {
		switch {
		case errors.Is(err, wishlist.ErrPropertyNotFound):
			h.logger.Warn("POST /wishlist - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, wishlist.ErrUserNotFound):
			h.logger.Warn("POST /wishlist - User not found: user_id=%d", identity.UserID)
			handlers.RespondUnauthorized(w, msgUserNotFound)

		case errors.Is(err, wishlist.ErrAlreadyInWishlist):
			h.logger.Warn("POST /wishlist - Already in wishlist: user_id=%d, property_id=%d", identity.UserID, req.PropertyID)
			handlers.RespondConflict(w, msgAlreadyInWishlist)

		case errors.Is(err, wishlist.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingProperty)

		default:
			h.logger.Error("POST /wishlist - Failed to add to wishlist: user_id=%d, property_id=%d, error=%v",
				identity.UserID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wishlist - Added to wishlist: user_id=%d, property_id=%d", identity.UserID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, entry)
}
