package server

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/models"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.statusPayload())
}

func (h *Handler) statusPayload() models.StatusResponse {
	return models.StatusResponse{
		AppVersion:     h.appVersion,
		State:          h.manager.State().String(),
		Version:        h.manager.Version(),
		InitialState:   h.manager.InitialState().String(),
		InitialVersion: h.manager.InitialVersion(),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger.FromRequest(r).Err(err).Str("func", op).Msg("admin API operation failed")
	writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
}
