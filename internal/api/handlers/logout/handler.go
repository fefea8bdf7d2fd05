package logout

import (
	"net/http"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
)

const (
	msgMissingIdentity = "требуется авторизация"
	msgLoggedOut       = "выход выполнен"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/logout - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	if err := h.service.Logout(r.Context(), identity); err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - User logged out: user_id=%d", identity.UserID)
	handlers.RespondMessage(w, http.StatusOK, msgLoggedOut)
}
