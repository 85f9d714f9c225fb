package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/nodecanvas-api/graph"
)

func TestDrawIsIdempotent(t *testing.T) {
	m := graph.Placeholder()
	r := New()

	first := r.Draw(m)
	second := r.Draw(m)

	assert.Equal(t, first, second)
}

func TestDrawSkipsDanglingLinks(t *testing.T) {
	m := graph.NewModel(
		[]*graph.Node{{ID: "n1", Title: "Only"}},
		[]graph.Link{{From: "n1", To: "n2"}},
	)

	out := New().Draw(m)

	assert.NotContains(t, out, "<line", "a link with a missing endpoint renders no connector")
	assert.Contains(t, out, `id="node-n1"`)
}

func TestDrawEscapesText(t *testing.T) {
	m := graph.NewModel([]*graph.Node{
		{ID: "n1", Title: `a "quoted" & <b>title</b>`, Body: "<script>alert(1)</script>"},
	}, nil)

	out := New().Draw(m)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, out, "&lt;b&gt;title&lt;/b&gt;")
	assert.NotContains(t, out, `"quoted"`)
}

func TestDrawAddressesNodes(t *testing.T) {
	m := graph.NewModel([]*graph.Node{{ID: "abc", Title: "T", Body: "B"}}, nil)

	out := New().Draw(m)

	assert.Contains(t, out, NodeIDPrefix+"abc")
	assert.Contains(t, out, `data-node-id="abc"`)
}

func TestDrawAppliesDefaultSize(t *testing.T) {
	m := graph.NewModel([]*graph.Node{{ID: "n1", X: 0, Y: 0}}, nil)

	out := New().Draw(m)

	assert.Contains(t, out, `width="220"`)
	assert.Contains(t, out, `height="100"`)
}

func TestDrawConnectorGeometry(t *testing.T) {
	// from right-center of n1 (220, 50) to left-center of n2 (400, 350).
	m := graph.NewModel(
		[]*graph.Node{
			{ID: "n1", X: 0, Y: 0},
			{ID: "n2", X: 400, Y: 300},
		},
		[]graph.Link{{From: "n1", To: "n2"}},
	)

	out := New().Draw(m)

	line := ""
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "<line") {
			line = l
		}
	}
	require.NotEmpty(t, line)
	assert.Contains(t, line, `x1="220"`)
	assert.Contains(t, line, `y1="50"`)
	assert.Contains(t, line, `x2="400"`)
	assert.Contains(t, line, `y2="350"`)
}
