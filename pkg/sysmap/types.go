package sysmap

// ElementType is the Zabbix selement type.
type ElementType int

// Element types understood by Zabbix. zbxmap only produces hosts and images.
const (
	ElementTypeHost      ElementType = 0
	ElementTypeMap       ElementType = 1
	ElementTypeTrigger   ElementType = 2
	ElementTypeHostGroup ElementType = 3
	ElementTypeImage     ElementType = 4
)

// String returns the lower-case type name.
func (t ElementType) String() string {
	switch t {
	case ElementTypeHost:
		return "host"
	case ElementTypeMap:
		return "map"
	case ElementTypeTrigger:
		return "trigger"
	case ElementTypeHostGroup:
		return "hostgroup"
	case ElementTypeImage:
		return "image"
	default:
		return "unknown"
	}
}

// Map label settings.
const (
	// LabelFormatAdvanced lets each element type carry its own label type.
	LabelFormatAdvanced = 1
	// LabelTypeLabel shows an element's own label text.
	LabelTypeLabel = 0
)

// Element is a map element derived from one graph node.
type Element struct {
	SelementID int         `json:"selementid"`
	NodeID     string      `json:"node"`
	X          int         `json:"x"`
	Y          int         `json:"y"`
	Type       ElementType `json:"elementtype"`
	// ElementID is the bound Zabbix object; nil for images.
	ElementID *string `json:"elementid"`
	IconOff   string  `json:"iconid_off"`
	Label     *string `json:"label,omitempty"`
}

// IsHost reports whether the element is bound to a Zabbix host.
func (e Element) IsHost() bool { return e.Type == ElementTypeHost }

// Link is a map link derived from one graph edge.
type Link struct {
	SelementID1 int     `json:"selementid1"`
	SelementID2 int     `json:"selementid2"`
	Color       string  `json:"color"`
	Label       *string `json:"label,omitempty"`
}

// Map is a complete network map, ready to be created on a Zabbix server.
type Map struct {
	Name           string    `json:"name"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	LabelFormat    int       `json:"label_format"`
	LabelTypeImage int       `json:"label_type_image"`
	Elements       []Element `json:"selements"`
	Links          []Link    `json:"links"`
}

// Hosts returns the number of host elements.
func (m *Map) Hosts() int {
	n := 0
	for _, e := range m.Elements {
		if e.IsHost() {
			n++
		}
	}
	return n
}
