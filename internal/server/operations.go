package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/models"
)

func (h *Handler) upgrade(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// an empty body means "upgrade to the newest supported version"
	var req models.UpgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.upgrade").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	target := req.TargetVersion
	if target == 0 && h.upgrader != nil {
		target = h.upgrader.MaxVersion(h.manager)
	}

	if err := h.manager.Upgrade(r.Context(), target); err != nil {
		h.writeError(w, r, "*Handler.upgrade", err)
		return
	}

	writeJSON(w, http.StatusOK, h.statusPayload())
}

func (h *Handler) cleanup(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Cleanup(r.Context()); err != nil {
		h.writeError(w, r, "*Handler.cleanup", err)
		return
	}

	writeJSON(w, http.StatusOK, h.statusPayload())
}

func (h *Handler) backup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BackupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Target == "" {
		log.Err(err).Str("func", "*Handler.backup").Msg("backup target is required")
		http.Error(w, "backup target is required", http.StatusBadRequest)
		return
	}

	if err := h.manager.Backup(r.Context(), req.Target); err != nil {
		h.writeError(w, r, "*Handler.backup", err)
		return
	}

	writeJSON(w, http.StatusOK, h.statusPayload())
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Source == "" {
		log.Err(err).Str("func", "*Handler.restore").Msg("restore source is required")
		http.Error(w, "restore source is required", http.StatusBadRequest)
		return
	}

	if err := h.manager.Restore(r.Context(), req.Source); err != nil {
		h.writeError(w, r, "*Handler.restore", err)
		return
	}

	writeJSON(w, http.StatusOK, h.statusPayload())
}
