// Package workspace orchestrates one editing session: load a project's graph,
// render it, and route committed edits back into the model and the store.
package workspace

import (
	"context"

	"go.uber.org/zap"

	"github.com/andrewpaige1/nodecanvas-api/graph"
	"github.com/andrewpaige1/nodecanvas-api/render"
	"github.com/andrewpaige1/nodecanvas-api/store"
)

// State tracks the session lifecycle. There is no path back to Loading; a
// session is opened once and then only edited.
type State int

const (
	Uninitialized State = iota
	Loading
	Rendered
)

// Session holds everything one editor needs for one project: the graph model,
// the renderer, the edit controller, and the gateway they share. Nothing here
// is a package-level singleton; a session is constructed per editing context
// and discarded with it.
type Session struct {
	owner     string
	projectID string

	model    *graph.Model
	state    State
	gateway  store.Gateway
	renderer *render.Renderer
	editor   *EditController
	logger   *zap.Logger
}

// NewSession prepares a session for the given owner and project. An empty
// projectID is a valid state: the session will render the placeholder seed
// and never contact the gateway.
func NewSession(gateway store.Gateway, logger *zap.Logger, owner, projectID string) *Session {
	return &Session{
		owner:     owner,
		projectID: projectID,
		state:     Uninitialized,
		gateway:   gateway,
		renderer:  render.New(),
		logger:    logger,
	}
}

// Open loads the project graph, falling back to the placeholder seed when no
// project resolves. It always ends in Rendered; a failed load is not an error
// state, just a session editing the seed.
func (s *Session) Open(ctx context.Context) {
	if s.state != Uninitialized {
		return
	}
	s.state = Loading

	if s.projectID == "" {
		s.model = graph.Placeholder()
	} else if m, ok := s.gateway.Load(ctx, s.owner, s.projectID); ok {
		s.model = m
	} else {
		s.logger.Info("project did not resolve, rendering placeholder",
			zap.String("project", s.projectID))
		s.model = graph.Placeholder()
	}

	s.editor = &EditController{
		owner:     s.owner,
		projectID: s.projectID,
		model:     s.model,
		gateway:   s.gateway,
		logger:    s.logger,
	}
	s.state = Rendered
}

// Render projects the current model onto the visual surface. The output is a
// pure function of the model, so re-rendering an unchanged session yields an
// identical document.
func (s *Session) Render() string {
	return s.renderer.Draw(s.model)
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Model() *graph.Model {
	return s.model
}

func (s *Session) Editor() *EditController {
	return s.editor
}

// EditController turns committed body edits into model mutations and
// autosaves. It is the single place that decides what to do with a failed
// save: log it and drop it. No retry, no queue, no surfacing to the editor.
type EditController struct {
	owner     string
	projectID string
	model     *graph.Model
	gateway   store.Gateway
	logger    *zap.Logger
}

// CommitBody applies a committed text edit to the node with the given id and
// persists the whole current model. An unknown node id is a stale edit
// surface and is silently ignored. Sessions editing the placeholder seed
// (no project id) mutate locally without persisting.
func (e *EditController) CommitBody(ctx context.Context, nodeID, body string) {
	if !e.model.UpdateNodeBody(nodeID, body) {
		return
	}
	if e.projectID == "" {
		return
	}
	if err := e.gateway.Save(ctx, e.owner, e.projectID, e.model.Nodes(), e.model.Links()); err != nil {
		e.logger.Warn("autosave failed",
			zap.String("project", e.projectID),
			zap.String("node", nodeID),
			zap.Error(err))
	}
}
