package graph

// Default box size applied when a node carries no explicit dimensions.
const (
	DefaultWidth  = 220.0
	DefaultHeight = 100.0
)

// Node is one positioned, editable box in a project's graph. The ID is stable
// across saves and is the only handle the edit surface holds.
type Node struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	Style  string  `json:"style,omitempty"`
}

// Size resolves the node's dimensions, substituting the defaults when either
// is absent.
func (n *Node) Size() (w, h float64) {
	w, h = n.Width, n.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// Link is a directed reference between two node identifiers. It is rendered
// as an undirected connector.
type Link struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Model holds the node/link graph for one project. Node order is insertion
// order and carries no semantics beyond determinism. A Model belongs to
// exactly one session and is mutated from a single goroutine.
type Model struct {
	nodes []*Node
	links []Link
}

// NewModel builds a model from the given nodes and links. Nodes with a
// duplicate identifier are dropped, keeping the first occurrence.
func NewModel(nodes []*Node, links []Link) *Model {
	m := &Model{}
	m.ReplaceAll(nodes, links)
	return m
}

// ReplaceAll swaps in a whole new node/link set, as happens on load.
func (m *Model) ReplaceAll(nodes []*Node, links []Link) {
	m.nodes = m.nodes[:0]
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n == nil || seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		m.nodes = append(m.nodes, n)
	}
	m.links = append(m.links[:0], links...)
}

// FindNode scans for the first node with the given identifier.
func (m *Model) FindNode(id string) (*Node, bool) {
	for _, n := range m.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// UpdateNodeBody is the single mutation entry point for committed text edits.
// It reports whether a node with the given identifier existed; an unknown
// identifier is a no-op.
func (m *Model) UpdateNodeBody(id, body string) bool {
	n, ok := m.FindNode(id)
	if !ok {
		return false
	}
	n.Body = body
	return true
}

// Nodes returns the live node sequence in insertion order.
func (m *Model) Nodes() []*Node {
	return m.nodes
}

// Links returns the live link sequence.
func (m *Model) Links() []Link {
	return m.links
}

// Placeholder is the fixed two-node seed graph used when no project can be
// resolved, so the editor always has something to draw.
func Placeholder() *Model {
	return NewModel(
		[]*Node{
			{ID: "n1", X: 80, Y: 80, Title: "Welcome", Body: "This is a scratch workspace."},
			{ID: "n2", X: 420, Y: 220, Title: "Get started", Body: "Open a project to persist your edits."},
		},
		[]Link{{From: "n1", To: "n2"}},
	)
}
