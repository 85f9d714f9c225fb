// Package store is the persistence boundary for workspace graphs. It is the
// only package aware of the backing database; the workspace core sees the
// Gateway interface and nothing else.
package store

import (
	"context"
	"errors"

	"github.com/andrewpaige1/nodecanvas-api/graph"
	"github.com/andrewpaige1/nodecanvas-api/models"
)

// ErrNotFound reports a save against a project that does not exist or is not
// owned by the caller.
var ErrNotFound = errors.New("project not found")

// Summary is the dashboard view of a project, without its graph payload.
type Summary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Gateway loads and saves a project's graph against the document store.
//
// Load and ListProjects fail softly: an unknown id, a foreign owner, or an
// absent owner yields an absent/empty result, never an error. Save replaces
// the whole persisted payload and stamps the last-modified marker; there is
// no version check, the last writer wins.
type Gateway interface {
	Load(ctx context.Context, owner, projectID string) (*graph.Model, bool)
	Save(ctx context.Context, owner, projectID string, nodes []*graph.Node, links []graph.Link) error
	ListProjects(ctx context.Context, owner string) []Summary
	CreateProject(ctx context.Context, owner, name string) (*models.Project, error)
}
