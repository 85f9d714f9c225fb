// Package render projects a workspace graph onto an SVG surface. Every call
// regenerates the full document from the model; there is no incremental
// diffing, which keeps the renderer a pure function of its input.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/andrewpaige1/nodecanvas-api/graph"
)

// NodeIDPrefix is prepended to a node's identifier to form its element id,
// so rendered boxes stay addressable from the outside.
const NodeIDPrefix = "node-"

const canvasPadding = 40.0

type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

// Draw renders the model as a standalone SVG document. Links whose endpoints
// do not both resolve are skipped rather than reported; a dangling reference
// is a normal state of the model, not an error.
func (r *Renderer) Draw(m *graph.Model) string {
	var b strings.Builder

	width, height := canvasExtent(m)
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">`, num(width), num(height))
	b.WriteString("\n")

	for _, l := range m.Links() {
		from, ok := m.FindNode(l.From)
		if !ok {
			continue
		}
		to, ok := m.FindNode(l.To)
		if !ok {
			continue
		}
		r.drawLink(&b, from, to)
	}

	for _, n := range m.Nodes() {
		r.drawNode(&b, n)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func (r *Renderer) drawNode(b *strings.Builder, n *graph.Node) {
	w, h := n.Size()
	fmt.Fprintf(b, `<g id="%s%s">`, NodeIDPrefix, html.EscapeString(n.ID))
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="6" class="node-box"/>`,
		num(n.X), num(n.Y), num(w), num(h))
	fmt.Fprintf(b, `<text x="%s" y="%s" class="node-title">%s</text>`,
		num(n.X+10), num(n.Y+22), html.EscapeString(n.Title))
	fmt.Fprintf(b, `<text x="%s" y="%s" class="node-body" data-node-id="%s">%s</text>`,
		num(n.X+10), num(n.Y+46), html.EscapeString(n.ID), html.EscapeString(n.Body))
	b.WriteString("</g>\n")
}

// drawLink draws a straight connector from the right-center edge of the from
// box to the left-center edge of the to box.
func (r *Renderer) drawLink(b *strings.Builder, from, to *graph.Node) {
	fw, fh := from.Size()
	_, th := to.Size()
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" class="link"/>`,
		num(from.X+fw), num(from.Y+fh/2), num(to.X), num(to.Y+th/2))
	b.WriteString("\n")
}

func canvasExtent(m *graph.Model) (width, height float64) {
	for _, n := range m.Nodes() {
		w, h := n.Size()
		if n.X+w > width {
			width = n.X + w
		}
		if n.Y+h > height {
			height = n.Y + h
		}
	}
	return width + canvasPadding, height + canvasPadding
}

func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
