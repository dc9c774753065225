// Package sysmap turns a laid-out graph into a Zabbix network map.
//
// # Overview
//
// A Zabbix network map ("sysmap") is a canvas holding elements and the links
// between them. This package maps graph nodes to elements and graph edges to
// links:
//
//   - A node with a "hostname" attribute becomes a host element bound to the
//     Zabbix host of that name.
//   - Any other node becomes an image element. Its icon comes from the
//     "zbximage" attribute, or the default image icon.
//   - An edge becomes a link. Its color comes from the "color" attribute
//     through a [ColorTable], or the table default.
//   - A "label" attribute on a node or an edge is copied onto the element or link.
//
// Every node yields exactly one element and every edge exactly one link.
// Element IDs are assigned 1..N in node order and reused as link endpoints.
//
// # Collaborators
//
// The package never talks to Zabbix directly. Host lookups go through a
// [HostResolver] and map replacement through a [Publisher], both of which
// are implemented by pkg/zabbix.Client and by in-memory fakes in tests.
//
// # Coordinates
//
// [Canvas.Transform] rescales Graphviz coordinates (points, origin
// bottom-left) to canvas pixels (origin top-left).
package sysmap
