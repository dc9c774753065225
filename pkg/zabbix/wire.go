package zabbix

import (
	"strconv"

	"github.com/matzehuels/zbxmap/pkg/sysmap"
)

// Wire shapes for map.create. Zabbix IDs travel as strings.

type wireMap struct {
	Name           string         `json:"name"`
	Width          int            `json:"width"`
	Height         int            `json:"height"`
	LabelFormat    int            `json:"label_format"`
	LabelTypeImage int            `json:"label_type_image"`
	Selements      []wireSelement `json:"selements"`
	Links          []wireLink     `json:"links"`
}

type wireSelement struct {
	SelementID  string        `json:"selementid"`
	ElementType int           `json:"elementtype"`
	Elements    []wireHostRef `json:"elements,omitempty"`
	ElementID   string        `json:"elementid,omitempty"`
	IconIDOff   string        `json:"iconid_off"`
	Label       *string       `json:"label,omitempty"`
	X           int           `json:"x"`
	Y           int           `json:"y"`
	UseIconMap  int           `json:"use_iconmap"`
}

type wireHostRef struct {
	HostID string `json:"hostid"`
}

type wireLink struct {
	SelementID1 string  `json:"selementid1"`
	SelementID2 string  `json:"selementid2"`
	Color       string  `json:"color"`
	Label       *string `json:"label,omitempty"`
}

// encodeMap converts m to the map.create shape understood by server.
// Servers before 3.4 take a flat "elementid", which must be "0" for images.
func encodeMap(m *sysmap.Map, server *serverVersion) wireMap {
	out := wireMap{
		Name:           m.Name,
		Width:          m.Width,
		Height:         m.Height,
		LabelFormat:    m.LabelFormat,
		LabelTypeImage: m.LabelTypeImage,
		Selements:      make([]wireSelement, 0, len(m.Elements)),
		Links:          make([]wireLink, 0, len(m.Links)),
	}

	for _, e := range m.Elements {
		se := wireSelement{
			SelementID:  strconv.Itoa(e.SelementID),
			ElementType: int(e.Type),
			IconIDOff:   e.IconOff,
			Label:       e.Label,
			X:           e.X,
			Y:           e.Y,
		}
		switch {
		case server.elementsArray() && e.ElementID != nil:
			se.Elements = []wireHostRef{{HostID: *e.ElementID}}
		case !server.elementsArray() && e.ElementID != nil:
			se.ElementID = *e.ElementID
		case !server.elementsArray():
			se.ElementID = "0"
		}
		out.Selements = append(out.Selements, se)
	}

	for _, l := range m.Links {
		out.Links = append(out.Links, wireLink{
			SelementID1: strconv.Itoa(l.SelementID1),
			SelementID2: strconv.Itoa(l.SelementID2),
			Color:       l.Color,
			Label:       l.Label,
		})
	}

	return out
}
