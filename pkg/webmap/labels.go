package webmap

import (
	"github.com/RoyCoates/EGM722Project/pkg/geo"
	"github.com/RoyCoates/EGM722Project/pkg/layer"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// LabelRule says how to label the features of a layer: which attribute to
// print, its colour (fixed, or looked up by another attribute), its size and
// shift, and where on the geometry to anchor it.
type LabelRule struct {
	Field    string
	Color    string
	FontSize int
	ShiftY   int
	Anchor   spec.AnchorRule

	// ColorField selects a colour from Colors by attribute value; values not
	// in Colors use Color.
	ColorField string
	Colors     map[string]string
}

// RuleFromDef converts a project label definition.
func RuleFromDef(d spec.LabelDef) LabelRule {
	return LabelRule{
		Field:      d.Field,
		Color:      d.Color,
		FontSize:   d.FontSize,
		ShiftY:     d.ShiftY,
		Anchor:     d.Anchor,
		ColorField: d.ColorField,
		Colors:     d.Colors,
	}
}

func (r LabelRule) colorFor(f layer.Feature) string {
	if r.ColorField == "" {
		return r.Color
	}
	if v, ok := f.Value(r.ColorField); ok {
		if c, found := r.Colors[v]; found {
			return c
		}
	}
	return r.Color
}

// BuildLabels returns one label per feature of lyr, in file order. Features
// with no geometry or a null label attribute are skipped.
func BuildLabels(lyr *layer.Layer, rule LabelRule) []Label {
	labels := make([]Label, 0, len(lyr.Features))
	for _, f := range lyr.Features {
		text, ok := f.Value(rule.Field)
		if !ok {
			continue
		}
		at, ok := geo.AnchorOf(f.Geometry, rule.Anchor)
		if !ok {
			continue
		}
		labels = append(labels, Label{
			Lat:      at.Lat(),
			Lon:      at.Lon(),
			Text:     text,
			Color:    rule.colorFor(f),
			FontSize: rule.FontSize,
			ShiftY:   rule.ShiftY,
		})
	}
	return labels
}
