package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/andrewpaige1/nodecanvas-api/store"
)

// Handler bundles the dependencies every endpoint needs: one injected
// receiver, no globals.
type Handler struct {
	Store  *store.GormStore
	Logger *zap.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are gone at this point; nothing useful left to send.
		return
	}
}
