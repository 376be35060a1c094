package handlers

import (
	"net/http"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteInternalError(w, "Database is not available", err)
		return
	}

	if err := h.Storage.HealthCheck(r.Context()); err != nil {
		WriteInternalError(w, "Object storage is not available", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"message": "OK",
	}, http.StatusOK)
}
