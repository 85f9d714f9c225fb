package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/andrewpaige1/nodecanvas-api/utils"
	"github.com/andrewpaige1/nodecanvas-api/workspace"
)

// GET /workspace?id=...
//
// Renders the project's graph as SVG. A missing or unresolvable id renders
// the placeholder seed; the surface is always available.
func (h *Handler) Workspace(w http.ResponseWriter, r *http.Request) {
	owner := utils.SessionSubject(r)
	projectID := r.URL.Query().Get("id")

	session := workspace.NewSession(h.Store, h.Logger, owner, projectID)
	session.Open(r.Context())

	w.Header().Set("Content-Type", "image/svg+xml")
	io.WriteString(w, session.Render())
}

// POST /api/workspace/{projectID}/nodes/{nodeID}/body
//
// The body-edit commit. Always 204: a stale node id is a silent no-op and a
// failed autosave is logged server-side, never surfaced to the editor.
func (h *Handler) CommitNodeBody(w http.ResponseWriter, r *http.Request) {
	owner := utils.SessionSubject(r)
	projectID := r.PathValue("projectID")
	nodeID := r.PathValue("nodeID")
	if projectID == "" || nodeID == "" {
		http.Error(w, "Project ID and node ID are required", http.StatusBadRequest)
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session := workspace.NewSession(h.Store, h.Logger, owner, projectID)
	session.Open(r.Context())
	session.Editor().CommitBody(r.Context(), nodeID, req.Body)

	w.WriteHeader(http.StatusNoContent)
}
