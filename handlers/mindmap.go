package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/andrewpaige1/nodecanvas-api/graph"
	"github.com/andrewpaige1/nodecanvas-api/store"
	"github.com/andrewpaige1/nodecanvas-api/utils"
)

// GET /api/mindmap/{projectID}
//
// Compatibility endpoint for the canvas frontend: the node array alone, no
// project envelope.
func (h *Handler) GetMindMap(w http.ResponseWriter, r *http.Request) {
	owner := utils.SessionSubject(r)
	projectID := r.PathValue("projectID")
	if projectID == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	m, ok := h.Store.Load(r.Context(), owner, projectID)
	if !ok {
		http.Error(w, "Mind map not found", http.StatusNotFound)
		return
	}

	nodes := m.Nodes()
	if nodes == nil {
		nodes = []*graph.Node{}
	}
	writeJSON(w, http.StatusOK, nodes)
}

// PUT /api/mindmap/{projectID}
//
// Replaces the whole node array; the stored links ride along untouched.
func (h *Handler) UpdateMindMap(w http.ResponseWriter, r *http.Request) {
	owner := utils.SessionSubject(r)
	projectID := r.PathValue("projectID")
	if projectID == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	var nodes []*graph.Node
	if err := json.NewDecoder(r.Body).Decode(&nodes); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if nodes == nil {
		nodes = []*graph.Node{}
	}

	m, ok := h.Store.Load(r.Context(), owner, projectID)
	if !ok {
		http.Error(w, "Mind map not found", http.StatusNotFound)
		return
	}

	if err := h.Store.Save(r.Context(), owner, projectID, nodes, m.Links()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Mind map not found", http.StatusNotFound)
			return
		}
		h.Logger.Error("mind map save failed",
			zap.String("project", projectID), zap.Error(err))
		http.Error(w, "Failed to save mind map", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, nodes)
}
