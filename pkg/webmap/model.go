// Package webmap builds the interactive asset map and renders it to a
// self-contained HTML page backed by Leaflet.
package webmap

import (
	"encoding/json"

	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// Map is everything the page needs, in draw order.
type Map struct {
	Title      string              `json:"title"`
	Center     [2]float64          `json:"center"` // lat, lon
	Zoom       int                 `json:"zoom"`
	BaseLayers []spec.TileLayerDef `json:"base_layers"`
	Overlays   []Overlay           `json:"overlays"`
	Labels     []LabelGroup        `json:"labels"`
	Legend     []spec.LegendDef    `json:"-"`
	Measure    spec.MeasureDef     `json:"measure"`
}

// Overlay is one asset layer as GeoJSON plus its fixed style.
type Overlay struct {
	Name   string        `json:"name"`
	Style  spec.StyleDef `json:"style"`
	Fields []string      `json:"fields"`
	// Data is a GeoJSON FeatureCollection of the non-empty features.
	Data  json.RawMessage `json:"data"`
	Count int             `json:"count"`
}

// LabelGroup is a toggleable set of floating labels.
type LabelGroup struct {
	Name   string  `json:"name"`
	Labels []Label `json:"labels"`
}

// Label is one floating text label. ShiftY is a percentage of the label's
// own height; the label is always centred horizontally on its anchor.
type Label struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Text     string  `json:"text"`
	Color    string  `json:"color"`
	FontSize int     `json:"font_size"`
	ShiftY   int     `json:"shift_y"`
}

// FeatureCount is the number of features drawn across all overlays.
func (m *Map) FeatureCount() int {
	n := 0
	for _, o := range m.Overlays {
		n += o.Count
	}
	return n
}

// LabelCount is the number of labels across all groups.
func (m *Map) LabelCount() int {
	n := 0
	for _, g := range m.Labels {
		n += len(g.Labels)
	}
	return n
}
