package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andrewpaige1/nodecanvas-api/graph"
	"github.com/andrewpaige1/nodecanvas-api/models"
	"github.com/andrewpaige1/nodecanvas-api/store"
)

type savedCall struct {
	projectID string
	nodes     []*graph.Node
	links     []graph.Link
}

// fakeGateway records every call so tests can assert on the exact autosave
// traffic a session produces.
type fakeGateway struct {
	loadModel *graph.Model
	loadCalls int
	saves     []savedCall
	saveErr   error
}

func (f *fakeGateway) Load(_ context.Context, _, _ string) (*graph.Model, bool) {
	f.loadCalls++
	if f.loadModel == nil {
		return nil, false
	}
	return f.loadModel, true
}

func (f *fakeGateway) Save(_ context.Context, _, projectID string, nodes []*graph.Node, links []graph.Link) error {
	f.saves = append(f.saves, savedCall{projectID: projectID, nodes: nodes, links: links})
	return f.saveErr
}

func (f *fakeGateway) ListProjects(context.Context, string) []store.Summary {
	return nil
}

func (f *fakeGateway) CreateProject(context.Context, string, string) (*models.Project, error) {
	return nil, errors.New("not implemented")
}

func openSession(t *testing.T, gw *fakeGateway, projectID string) *Session {
	t.Helper()
	s := NewSession(gw, zap.NewNop(), "owner1", projectID)
	assert.Equal(t, Uninitialized, s.State())
	s.Open(context.Background())
	require.Equal(t, Rendered, s.State())
	return s
}

func TestOpenWithoutProjectUsesPlaceholder(t *testing.T) {
	gw := &fakeGateway{}

	s := openSession(t, gw, "")

	assert.Zero(t, gw.loadCalls, "no project id means the gateway is never contacted")
	require.Len(t, s.Model().Nodes(), 2)
	require.Len(t, s.Model().Links(), 1)
	_, ok := s.Model().FindNode("n1")
	assert.True(t, ok)
}

func TestOpenLoadsProject(t *testing.T) {
	gw := &fakeGateway{loadModel: graph.NewModel([]*graph.Node{{ID: "x", Title: "X"}}, nil)}

	s := openSession(t, gw, "p1")

	assert.Equal(t, 1, gw.loadCalls)
	_, ok := s.Model().FindNode("x")
	assert.True(t, ok)
}

func TestOpenFallsBackWhenLoadMisses(t *testing.T) {
	gw := &fakeGateway{}

	s := openSession(t, gw, "p1")

	assert.Equal(t, 1, gw.loadCalls)
	_, ok := s.Model().FindNode("n1")
	assert.True(t, ok, "load miss routes to the placeholder, not an error state")
}

func TestCommitBodyMutatesAndSavesOnce(t *testing.T) {
	gw := &fakeGateway{loadModel: graph.NewModel(
		[]*graph.Node{{ID: "n1", Body: ""}, {ID: "n2"}},
		[]graph.Link{{From: "n1", To: "n2"}},
	)}
	s := openSession(t, gw, "p1")

	s.Editor().CommitBody(context.Background(), "n1", "Task A")

	n, _ := s.Model().FindNode("n1")
	assert.Equal(t, "Task A", n.Body)
	require.Len(t, gw.saves, 1, "exactly one save per committed edit")
	assert.Equal(t, "p1", gw.saves[0].projectID)
	assert.Len(t, gw.saves[0].nodes, 2, "save carries the full node array")
	assert.Len(t, gw.saves[0].links, 1, "save carries the full link array")
}

func TestCommitBodyUnknownNodeIsNoOp(t *testing.T) {
	gw := &fakeGateway{loadModel: graph.NewModel([]*graph.Node{{ID: "n1"}}, nil)}
	s := openSession(t, gw, "p1")

	s.Editor().CommitBody(context.Background(), "gone", "ignored")

	assert.Empty(t, gw.saves, "a stale node id neither mutates nor saves")
}

func TestCommitBodySwallowsSaveFailure(t *testing.T) {
	gw := &fakeGateway{
		loadModel: graph.NewModel([]*graph.Node{{ID: "n1"}}, nil),
		saveErr:   errors.New("store unavailable"),
	}
	s := openSession(t, gw, "p1")

	s.Editor().CommitBody(context.Background(), "n1", "still applied")

	n, _ := s.Model().FindNode("n1")
	assert.Equal(t, "still applied", n.Body, "local mutation survives a failed save")
	assert.Len(t, gw.saves, 1, "no retry after a failure")
}

func TestCommitBodyOnPlaceholderDoesNotSave(t *testing.T) {
	gw := &fakeGateway{}
	s := openSession(t, gw, "")

	s.Editor().CommitBody(context.Background(), "n1", "local only")

	n, _ := s.Model().FindNode("n1")
	assert.Equal(t, "local only", n.Body)
	assert.Empty(t, gw.saves)
}

func TestOpenIsOneWay(t *testing.T) {
	gw := &fakeGateway{loadModel: graph.NewModel([]*graph.Node{{ID: "x"}}, nil)}
	s := openSession(t, gw, "p1")

	s.Open(context.Background())

	assert.Equal(t, 1, gw.loadCalls, "a rendered session never re-enters Loading")
}

func TestRenderIsStable(t *testing.T) {
	gw := &fakeGateway{}
	s := openSession(t, gw, "")

	assert.Equal(t, s.Render(), s.Render())
}
