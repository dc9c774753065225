package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/samber/lo"

	zerr "github.com/matzehuels/zbxmap/pkg/errors"
)

// Engine names a Graphviz layout engine.
type Engine string

// Supported layout engines.
const (
	EngineDot       Engine = "dot"
	EngineNeato     Engine = "neato"
	EngineFdp       Engine = "fdp"
	EngineSfdp      Engine = "sfdp"
	EngineCirco     Engine = "circo"
	EngineTwopi     Engine = "twopi"
	EngineOsage     Engine = "osage"
	EnginePatchwork Engine = "patchwork"
)

// Engines lists every engine accepted by [ValidateEngine].
var Engines = []Engine{
	EngineDot, EngineNeato, EngineFdp, EngineSfdp,
	EngineCirco, EngineTwopi, EngineOsage, EnginePatchwork,
}

// DefaultEngine is the spring model engine, which suits network maps better
// than the hierarchical dot engine.
const DefaultEngine = EngineNeato

// implicitLabel is the label Graphviz assigns to nodes that declare none.
const implicitLabel = `\N`

// formatJSON is the Graphviz JSON renderer, which emits the laid-out graph
// with every declared attribute.
const formatJSON graphviz.Format = "json"

// ValidateEngine reports an error for unknown engine names.
func ValidateEngine(e Engine) error {
	if !lo.Contains(Engines, e) {
		return zerr.New(zerr.ErrCodeInvalidInput, "unknown layout engine %q (want one of %s)",
			e, strings.Join(lo.Map(Engines, func(e Engine, _ int) string { return string(e) }), ", "))
	}
	return nil
}

// ReadFile reads the DOT file at path and lays it out with engine.
// The file is read wholesale before Graphviz sees it.
func ReadFile(ctx context.Context, path string, engine Engine) (*Graph, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(zerr.ErrCodeInvalidPath, err, "read %s", path)
	}
	return Layout(ctx, src, engine)
}

// Layout parses DOT source and computes node positions with engine.
func Layout(ctx context.Context, src []byte, engine Engine) (*Graph, error) {
	out, err := render(ctx, src, engine, formatJSON)
	if err != nil {
		return nil, err
	}
	return decode(out)
}

// RenderSVG renders DOT source to SVG using engine.
func RenderSVG(ctx context.Context, src []byte, engine Engine) ([]byte, error) {
	return render(ctx, src, engine, graphviz.SVG)
}

func render(ctx context.Context, src []byte, engine Engine, format graphviz.Format) ([]byte, error) {
	if err := ValidateEngine(engine); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, zerr.Wrap(zerr.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, zerr.Wrap(zerr.ErrCodeInvalidGraph, err, "parse DOT")
	}
	defer g.Close()

	gv.SetLayout(graphviz.Layout(engine))

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, zerr.Wrap(zerr.ErrCodeInvalidGraph, err, "%s layout", engine)
	}
	return buf.Bytes(), nil
}

// jsonGraph mirrors the parts of Graphviz' JSON output that zbxmap reads.
// Objects lists the SubgraphCnt subgraphs first, then the nodes. Empty
// subgraphs carry no "nodes" member, so only the count tells them apart.
type jsonGraph struct {
	Name        string                       `json:"name"`
	Directed    bool                         `json:"directed"`
	SubgraphCnt int                          `json:"_subgraph_cnt"`
	Objects     []map[string]json.RawMessage `json:"objects"`
	Edges       []map[string]json.RawMessage `json:"edges"`
}

func decode(data []byte) (*Graph, error) {
	var raw jsonGraph
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(zerr.ErrCodeInternal, err, "decode graphviz output")
	}

	g := &Graph{Name: raw.Name, Directed: raw.Directed}
	byGVID := make(map[int]string)

	if raw.SubgraphCnt < 0 || raw.SubgraphCnt > len(raw.Objects) {
		return nil, zerr.New(zerr.ErrCodeInternal, "graphviz reported %d subgraphs in %d objects",
			raw.SubgraphCnt, len(raw.Objects))
	}

	for _, obj := range raw.Objects[raw.SubgraphCnt:] {
		var gvid int
		if err := json.Unmarshal(obj["_gvid"], &gvid); err != nil {
			return nil, zerr.Wrap(zerr.ErrCodeInternal, err, "node without _gvid")
		}
		attrs := stringAttrs(obj)
		name := attrs["name"]
		delete(attrs, "name")
		if attrs["label"] == implicitLabel {
			delete(attrs, "label")
		}

		pos, err := parsePos(attrs["pos"])
		if err != nil {
			return nil, zerr.Wrap(zerr.ErrCodeInvalidGraph, err, "node %s", name)
		}

		byGVID[gvid] = name
		g.Nodes = append(g.Nodes, Node{ID: name, Pos: pos, Attrs: attrs})
	}

	for i, e := range raw.Edges {
		var tail, head int
		if err := json.Unmarshal(e["tail"], &tail); err != nil {
			return nil, zerr.Wrap(zerr.ErrCodeInternal, err, "edge %d tail", i)
		}
		if err := json.Unmarshal(e["head"], &head); err != nil {
			return nil, zerr.Wrap(zerr.ErrCodeInternal, err, "edge %d head", i)
		}
		from, ok := byGVID[tail]
		if !ok {
			return nil, zerr.New(zerr.ErrCodeInternal, "edge %d references unknown node %d", i, tail)
		}
		to, ok := byGVID[head]
		if !ok {
			return nil, zerr.New(zerr.ErrCodeInternal, "edge %d references unknown node %d", i, head)
		}
		attrs := stringAttrs(e)
		// Graphviz always writes "label", even when only other edges declare one.
		if attrs["label"] == "" {
			delete(attrs, "label")
		}
		g.Edges = append(g.Edges, Edge{From: from, To: to, Attrs: attrs})
	}

	return g, nil
}

// stringAttrs keeps the string-valued members of a Graphviz JSON object.
// Members starting with '_' are renderer bookkeeping (_gvid, _draw_, ...).
// Graphviz omits attributes whose value is empty, except "label".
func stringAttrs(obj map[string]json.RawMessage) Attrs {
	attrs := make(Attrs, len(obj))
	for k, v := range obj {
		if strings.HasPrefix(k, "_") {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			continue
		}
		attrs[k] = s
	}
	return attrs
}

// parsePos parses a Graphviz "x,y" position. A trailing '!' marks a pinned
// node in neato and is ignored, as is a third coordinate.
func parsePos(s string) (Point, error) {
	if s == "" {
		return Point{}, fmt.Errorf("missing position")
	}
	parts := strings.Split(strings.TrimSuffix(s, "!"), ",")
	if len(parts) < 2 {
		return Point{}, fmt.Errorf("malformed position %q", s)
	}
	xs, ys := parts[0], parts[1]
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, fmt.Errorf("malformed position %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, fmt.Errorf("malformed position %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}
