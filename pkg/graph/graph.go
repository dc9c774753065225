package graph

import (
	"github.com/samber/lo"
)

// Point is a position in Graphviz layout space (points, origin bottom-left).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Attrs holds the attributes declared on a node or edge.
type Attrs map[string]string

// Lookup returns the value of key and whether it is present.
// Graphviz drops attributes set to "", so those are reported absent. The
// one exception is a node label, which stays present with an empty value.
func (a Attrs) Lookup(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}

// Has reports whether key is present.
func (a Attrs) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Node is a laid-out graph node.
type Node struct {
	ID    string `json:"id"`
	Pos   Point  `json:"pos"`
	Attrs Attrs  `json:"attrs,omitempty"`
}

// Edge connects two nodes by ID.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Attrs Attrs  `json:"attrs,omitempty"`
}

// Graph is a laid-out graph. Nodes keep the order in which Graphviz
// declares them, which is the order of first appearance in the DOT source.
type Graph struct {
	Name     string `json:"name"`
	Directed bool   `json:"directed"`
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
}

// Extent returns the largest X and the largest Y over all node positions.
// The two maxima may come from different nodes. An empty graph has a zero extent.
func (g *Graph) Extent() Point {
	if len(g.Nodes) == 0 {
		return Point{}
	}
	return Point{
		X: lo.Max(lo.Map(g.Nodes, func(n Node, _ int) float64 { return n.Pos.X })),
		Y: lo.Max(lo.Map(g.Nodes, func(n Node, _ int) float64 { return n.Pos.Y })),
	}
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	return lo.Find(g.Nodes, func(n Node) bool { return n.ID == id })
}
