// Package graph reads Graphviz DOT files and lays them out in two dimensions.
//
// # Overview
//
// zbxmap does not implement a DOT parser or a layout algorithm of its own.
// Both are delegated to Graphviz, embedded in-process through
// [github.com/goccy/go-graphviz]. This package runs a layout engine over the
// DOT source and decodes Graphviz' JSON output into the small [Graph] model
// that the map builder consumes.
//
// # Usage
//
//	g, err := graph.ReadFile(ctx, "network.dot", graph.EngineNeato)
//	if err != nil {
//	    return err
//	}
//	for _, n := range g.Nodes {
//	    host, ok := n.Attrs.Lookup("hostname")
//	    // ...
//	}
//
// # Coordinates
//
// Positions are reported exactly as Graphviz computes them: in points, with
// the origin at the bottom-left corner. Rescaling to a target canvas is the
// caller's job.
//
// # Attributes
//
// [Attrs] preserves the difference between an attribute that is absent and
// one that is present with an empty value. Graphviz' implicit node label
// "\N" is reported as absent.
//
// # Preview
//
// [RenderSVG] renders the same DOT source with the same engine, which lets
// an operator look at the layout before pushing it to a server.
package graph
