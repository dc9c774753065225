package sysmap

import (
	"context"
	"strings"

	zerr "github.com/matzehuels/zbxmap/pkg/errors"
	"github.com/matzehuels/zbxmap/pkg/graph"
)

// Node and edge attributes read by the builder.
const (
	AttrHostname = "hostname"
	AttrImage    = "zbximage"
	AttrLabel    = "label"
	AttrColor    = "color"
)

// HostResolver resolves a Zabbix host name to its host ID.
type HostResolver interface {
	HostID(ctx context.Context, name string) (string, error)
}

// HostResolverFunc adapts a function to [HostResolver].
type HostResolverFunc func(ctx context.Context, name string) (string, error)

// HostID calls f.
func (f HostResolverFunc) HostID(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

// Options configures a [Builder].
type Options struct {
	Canvas Canvas
	Icons  IconTable
	Colors ColorTable
	// Defaults names the icons used for hosts, and for images without zbximage.
	Defaults DefaultIcons
	Hosts    HostResolver
}

// Builder converts laid-out graphs to maps. Lookup tables are fixed at
// construction; a Builder holds no other state.
type Builder struct {
	canvas   Canvas
	icons    IconTable
	colors   ColorTable
	defaults DefaultIcons
	hosts    HostResolver
}

// NewBuilder returns a builder for opts. A zero Canvas means [DefaultCanvas]
// and zero Defaults mean [StockIcons].
func NewBuilder(opts Options) *Builder {
	b := &Builder{
		canvas:   opts.Canvas,
		icons:    opts.Icons,
		colors:   opts.Colors,
		defaults: opts.Defaults,
		hosts:    opts.Hosts,
	}
	if b.canvas == (Canvas{}) {
		b.canvas = DefaultCanvas
	}
	if b.defaults == (DefaultIcons{}) {
		b.defaults = StockIcons()
	}
	if b.colors.codes == nil {
		b.colors = DefaultColors()
	}
	return b
}

// Build assembles the map called name from g. Host lookups run one at a
// time in node order; the first failure aborts the build.
func (b *Builder) Build(ctx context.Context, name string, g *graph.Graph) (*Map, error) {
	ids := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[n.ID] = i + 1
	}
	extent := g.Extent()

	m := &Map{
		Name:           name,
		Width:          b.canvas.Width,
		Height:         b.canvas.Height,
		LabelFormat:    LabelFormatAdvanced,
		LabelTypeImage: LabelTypeLabel,
		Elements:       make([]Element, 0, len(g.Nodes)),
		Links:          make([]Link, 0, len(g.Edges)),
	}

	for _, n := range g.Nodes {
		el, err := b.Element(ctx, n, ids[n.ID], extent)
		if err != nil {
			return nil, err
		}
		m.Elements = append(m.Elements, el)
	}

	for _, e := range g.Edges {
		l, err := b.Link(e, ids)
		if err != nil {
			return nil, err
		}
		m.Links = append(m.Links, l)
	}

	return m, nil
}

// Element derives the map element for node n, which gets selement ID id.
func (b *Builder) Element(ctx context.Context, n graph.Node, id int, extent graph.Point) (Element, error) {
	x, y := b.canvas.Transform(n.Pos, extent)
	el := Element{SelementID: id, NodeID: n.ID, X: x, Y: y}

	if hostname, ok := attr(n.Attrs, AttrHostname); ok {
		hostID, err := b.hosts.HostID(ctx, hostname)
		if err != nil {
			return Element{}, err
		}
		icon, err := b.icons.Lookup(b.defaults.Host)
		if err != nil {
			return Element{}, err
		}
		el.Type = ElementTypeHost
		el.ElementID = &hostID
		el.IconOff = icon
	} else {
		el.Type = ElementTypeImage
	}

	if image, ok := attr(n.Attrs, AttrImage); ok {
		icon, err := b.icons.Lookup(image)
		if err != nil {
			return Element{}, err
		}
		el.IconOff = icon
	} else if el.Type == ElementTypeImage {
		icon, err := b.icons.Lookup(b.defaults.Image)
		if err != nil {
			return Element{}, err
		}
		el.IconOff = icon
	}

	if label, ok := attr(n.Attrs, AttrLabel); ok {
		el.Label = &label
	}

	return el, nil
}

// Link derives the map link for edge e. ids maps node IDs to selement IDs.
func (b *Builder) Link(e graph.Edge, ids map[string]int) (Link, error) {
	from, ok := ids[e.From]
	if !ok {
		return Link{}, zerr.New(zerr.ErrCodeInvalidGraph, "edge %s->%s: unknown node %q", e.From, e.To, e.From)
	}
	to, ok := ids[e.To]
	if !ok {
		return Link{}, zerr.New(zerr.ErrCodeInvalidGraph, "edge %s->%s: unknown node %q", e.From, e.To, e.To)
	}

	l := Link{SelementID1: from, SelementID2: to, Color: b.colors.Default()}

	if name, ok := attr(e.Attrs, AttrColor); ok {
		code, err := b.colors.Lookup(name)
		if err != nil {
			return Link{}, err
		}
		l.Color = code
	}

	if label, ok := attr(e.Attrs, AttrLabel); ok {
		l.Label = &label
	}

	return l, nil
}

// attr looks up key with surrounding double quotes removed.
func attr(a graph.Attrs, key string) (string, bool) {
	v, ok := a.Lookup(key)
	if !ok {
		return "", false
	}
	return strings.Trim(v, `"`), true
}
