package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/andrewpaige1/nodecanvas-api/store"
	"github.com/andrewpaige1/nodecanvas-api/utils"
)

// GET /api/projects
func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	owner := utils.SessionSubject(r)

	list := h.Store.ListProjects(r.Context(), owner)
	if list == nil {
		list = []store.Summary{}
	}
	writeJSON(w, http.StatusOK, list)
}

// POST /api/projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	owner := utils.SessionSubject(r)
	if owner == "" {
		http.Error(w, "No session", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Project name is required", http.StatusBadRequest)
		return
	}

	project, err := h.Store.CreateProject(r.Context(), owner, req.Name)
	if err != nil {
		h.Logger.Error("project creation failed", zap.Error(err))
		http.Error(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// GET /api/projects/{projectID}
func (h *Handler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	owner := utils.SessionSubject(r)
	projectID := r.PathValue("projectID")
	if projectID == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	project, ok := h.Store.GetProject(r.Context(), owner, projectID)
	if !ok {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, project)
}
