package list_properties

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

const (
	msgInvalidFilter = "некорректный параметр фильтра"
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

// Handle GET /api/v1/properties и GET /api/v1/admin/properties
// Фильтры: ?featured=true|false, ?available=true|false, ?location=<подстрока>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /properties - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	properties, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /properties - Failed to list properties: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /properties - Properties listed: count=%d", len(properties.Properties))
	handlers.RespondJSON(w, http.StatusOK, properties)
}

func parseFilter(r *http.Request) (domain.PropertyFilter, error) {
	q := r.URL.Query()
	var filter domain.PropertyFilter

	featured, err := parseBool(q.Get("featured"))
	if err != nil {
		return filter, fmt.Errorf("featured: %w", err)
	}
	filter.Featured = featured

	available, err := parseBool(q.Get("available"))
	if err != nil {
		return filter, fmt.Errorf("available: %w", err)
	}
	filter.Available = available

	if loc := strings.TrimSpace(q.Get("location")); loc != "" {
		filter.Location = &loc
	}

	return filter, nil
}

func parseBool(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
