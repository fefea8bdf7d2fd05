package get_me

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
	"github.com/m04kA/SMC-RealEstateService/internal/service/users"
)

const (
	msgMissingIdentity = "требуется авторизация"
	msgNotFound        = "пользователь не найден"
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

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/me - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	user, err := h.service.Me(r.Context(), identity)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Warn("GET /auth/me - User not found: user_id=%d", identity.UserID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /auth/me - Failed to get user: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
