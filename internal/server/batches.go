package server

import (
	"net/http"

	"github.com/MKhiriev/go-db-warden/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.BatchListResponse{
		Batches: h.manager.GetBatchNames(),
	})
}

func (h *Handler) getBatch(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	b, err := h.manager.GetBatch(name, h.separator)
	if err != nil {
		h.writeError(w, r, "*Handler.getBatch", err)
		return
	}

	resp := models.BatchResponse{
		Name:     name,
		Commands: make([]models.BatchCommand, 0, b.Len()),
	}
	for _, cmd := range b.Commands() {
		command := models.BatchCommand{
			IsScript:               cmd.IsScript(),
			TransactionRequirement: cmd.TransactionRequirement().String(),
			ExecutionType:          cmd.ExecutionType().String(),
		}
		if cmd.IsScript() {
			command.Script = cmd.Script()
		}
		if level, ok := cmd.IsolationLevel(); ok {
			command.IsolationLevel = level.String()
		}
		resp.Commands = append(resp.Commands, command)
	}

	writeJSON(w, http.StatusOK, resp)
}
