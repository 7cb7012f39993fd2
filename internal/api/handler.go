package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"cv-intake/internal/match"
	"cv-intake/internal/profile"
	"cv-intake/internal/storage"
)

const maxUploadSize = 10 << 20

type API struct {
	db           *storage.DB
	profiles     *profile.Service
	matcher      *match.Service
	validate     *validator.Validate
	reparseQueue chan ReparseJob // Background queue for async re-parses
	logger       *slog.Logger
}

func NewAPI(db *storage.DB, profiles *profile.Service, matcher *match.Service) *API {
	return &API{
		db:           db,
		profiles:     profiles,
		matcher:      matcher,
		validate:     validator.New(),
		reparseQueue: make(chan ReparseJob, 50),
		logger:       slog.Default().With("component", "api"),
	}
}

// HealthHandler reports liveness.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	if err := a.db.GetConnection().PingContext(r.Context()); err != nil {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	RespondWithJSON(w, code, map[string]string{"status": status})
}

// parseID reads a positive integer from a query or form value.
func parseID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return 0, ErrBadRequest(key + " is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadRequest(key + " must be a positive integer")
	}
	return id, nil
}

// requireCandidate fails with 404 unless the candidate account exists.
func (a *API) requireCandidate(ctx context.Context, id int64) error {
	_, err := a.db.GetCandidate(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound("candidate not found")
	}
	return err
}
