package get_wishlist

import (
	"net/http"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
)

const msgMissingIdentity = "требуется авторизация"

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

// Handle GET /api/v1/wishlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /wishlist - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	list, err := h.service.List(r.Context(), identity)
	if err != nil {
		h.logger.Error("GET /wishlist - Failed to list wishlist: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
