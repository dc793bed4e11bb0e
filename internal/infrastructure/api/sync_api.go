package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"pos-sync-gateway/internal/application"
	"pos-sync-gateway/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var syncUpserts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sync_upserts_total",
		Help: "Resource upserts, by resource family and outcome.",
	},
	[]string{"resource", "outcome"},
)

// SyncAPI exposes the registration and resource sync endpoints. Every
// resource route is one instantiation of the same generic handler over a
// family manifest.
type SyncAPI struct {
	accounts *application.AccountService
	sync     *application.SyncService
	logger   zerolog.Logger
}

// NewSyncAPI creates a new sync API.
func NewSyncAPI(
	accounts *application.AccountService,
	sync *application.SyncService,
	logger zerolog.Logger,
) *SyncAPI {
	return &SyncAPI{
		accounts: accounts,
		sync:     sync,
		logger:   logger,
	}
}

// Routes registers the gated endpoints on the router.
func (a *SyncAPI) Routes(r chi.Router) {
	r.Get("/", a.handleHealth)
	r.Post("/api/user", a.handleRegister)
	for _, family := range domain.Families {
		r.Post("/api/"+family.Name, a.handleSync(family))
	}
}

func (a *SyncAPI) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "API User Sync running"})
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Phone    string `json:"no_telepon"`
}

func (a *SyncAPI) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email wajib"})
		return
	}

	status, err := a.accounts.Register(r.Context(), application.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Phone:    req.Phone,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email wajib"})
			return
		}
		a.logger.Error().Err(err).Str("email", req.Email).Msg("Account registration failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

// handleSync returns the handler for one resource family. Payloads are
// decoded with UseNumber so external ids and numeric fields keep their exact
// textual form until the engine coerces them.
func (a *SyncAPI) handleSync(family domain.Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid payload"})
			return
		}

		outcome, err := a.sync.Sync(r.Context(), family, body)
		if err != nil {
			var verr *domain.ValidationError
			switch {
			case errors.As(err, &verr):
				writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid payload"})
			case errors.Is(err, domain.ErrAccountNotFound):
				writeJSON(w, http.StatusNotFound, map[string]string{"message": "user not found"})
			default:
				a.logger.Error().Err(err).Str("resource", family.Name).Msg("Resource sync failed")
				writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "server error"})
			}
			return
		}

		syncUpserts.WithLabelValues(family.Name, string(outcome)).Inc()
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
