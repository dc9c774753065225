package graph

import "testing"

func TestAttrsLookup(t *testing.T) {
	a := Attrs{"label": "", "hostname": "web01"}

	if v, ok := a.Lookup("hostname"); !ok || v != "web01" {
		t.Errorf("Lookup(hostname) = %q, %v; want web01, true", v, ok)
	}
	if v, ok := a.Lookup("label"); !ok || v != "" {
		t.Errorf("Lookup(label) = %q, %v; want empty, true", v, ok)
	}
	if _, ok := a.Lookup("zbximage"); ok {
		t.Error("Lookup(zbximage) should be absent")
	}

	var nilAttrs Attrs
	if nilAttrs.Has("anything") {
		t.Error("nil Attrs should report nothing present")
	}
}

func TestExtent(t *testing.T) {
	g := &Graph{Nodes: []Node{
		{ID: "a", Pos: Point{X: 10, Y: 300}},
		{ID: "b", Pos: Point{X: 250, Y: 40}},
		{ID: "c", Pos: Point{X: 90, Y: 90}},
	}}

	if got, want := g.Extent(), (Point{X: 250, Y: 300}); got != want {
		t.Errorf("Extent() = %+v, want %+v", got, want)
	}

	empty := &Graph{}
	if got := empty.Extent(); got != (Point{}) {
		t.Errorf("empty Extent() = %+v, want zero", got)
	}
}

func TestNodeLookup(t *testing.T) {
	g := &Graph{Nodes: []Node{{ID: "a"}, {ID: "b"}}}
	if n, ok := g.Node("b"); !ok || n.ID != "b" {
		t.Errorf("Node(b) = %+v, %v", n, ok)
	}
	if _, ok := g.Node("z"); ok {
		t.Error("Node(z) should not be found")
	}
}
