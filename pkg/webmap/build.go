package webmap

import (
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/RoyCoates/EGM722Project/pkg/layer"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// LabelGroupSuffix is appended to a layer name to name its label overlay.
const LabelGroupSuffix = " Labels"

// New assembles the map from the project and its loaded layers. Overlays
// follow the project's layer order; every project layer must be loaded.
func New(p *spec.Project, set *layer.Set) (*Map, error) {
	m := &Map{
		Title:      p.Map.Title,
		Center:     [2]float64{p.Map.Center.Lat, p.Map.Center.Lon},
		Zoom:       p.Map.Zoom,
		BaseLayers: p.Map.BaseLayers,
		Legend:     p.Map.Legend,
		Measure:    p.Map.Measure,
	}

	for _, def := range p.Layers {
		lyr := set.Get(def.Name)
		if lyr == nil {
			return nil, fmt.Errorf("layer %q is not loaded", def.Name)
		}
		o, err := NewOverlay(lyr, def.Style, pinField(def))
		if err != nil {
			return nil, err
		}
		m.Overlays = append(m.Overlays, o)

		if def.Label != nil {
			m.Labels = append(m.Labels, LabelGroup{
				Name:   def.Name + LabelGroupSuffix,
				Labels: BuildLabels(lyr, RuleFromDef(*def.Label)),
			})
		}
	}
	return m, nil
}

// pinField is the label field a pin layer needs before a pin is drawn.
func pinField(def spec.LayerDef) string {
	if def.Style.Kind != spec.StylePin || def.Label == nil {
		return ""
	}
	return def.Label.Field
}

// NewOverlay encodes the non-empty features of lyr, with all their
// attributes, as a GeoJSON FeatureCollection. When required is set,
// features with a null value in that field are left out.
func NewOverlay(lyr *layer.Layer, style spec.StyleDef, required string) (Overlay, error) {
	fc := geojson.NewFeatureCollection()
	for _, f := range lyr.NonEmpty() {
		if required != "" {
			if _, ok := f.Value(required); !ok {
				continue
			}
		}
		feat := geojson.NewFeature(f.Geometry)
		for _, name := range lyr.Fields {
			feat.Properties[name] = f.Properties[name]
		}
		fc.Append(feat)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return Overlay{}, fmt.Errorf("encoding layer %q: %w", lyr.Name, err)
	}
	fields := lyr.Fields
	if fields == nil {
		fields = []string{}
	}
	return Overlay{
		Name:   lyr.Name,
		Style:  style,
		Fields: fields,
		Data:   data,
		Count:  len(fc.Features),
	}, nil
}
