package validation

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/RoyCoates/EGM722Project/pkg/layer"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

func lamp(i int, junction, asset, scheduled string) layer.Feature {
	return layer.Feature{
		Index:    i,
		Geometry: orb.Point{-8.72 + float64(i)*0.001, 52.58},
		Properties: map[string]string{
			"Junction":   junction,
			"Unique_Ass": asset,
			"ScheduledF": scheduled,
		},
	}
}

func lightingLayer(features ...layer.Feature) *layer.Layer {
	return &layer.Layer{
		Name:     spec.LayerLighting,
		Path:     "LP_Lighting_Point.shp",
		Fields:   []string{"Junction", "Unique_Ass", "ScheduledF"},
		Features: features,
	}
}

func TestValidateLayersClean(t *testing.T) {
	set := &layer.Set{Layers: []*layer.Layer{lightingLayer(
		lamp(0, "J5", "LP001", "Yes"),
		lamp(1, "J6", "LP002", "No"),
	)}}
	r := ValidateLayers(spec.Default(), set)
	if !r.Valid {
		t.Errorf("expected valid report, got %v", r.Errors)
	}
	if len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Errorf("expected a clean report, got %s", r.Summary)
	}
}

func TestValidateLayersOutOfRange(t *testing.T) {
	lyr := lightingLayer(lamp(0, "J5", "LP001", "Yes"))
	lyr.Features = append(lyr.Features, layer.Feature{
		Index:      1,
		Geometry:   orb.Point{557000, 660000},
		Properties: map[string]string{"Junction": "J5", "Unique_Ass": "LP002", "ScheduledF": "No"},
	})
	r := ValidateLayers(spec.Default(), &layer.Set{Layers: []*layer.Layer{lyr}})
	if r.Valid {
		t.Fatal("grid coordinates should fail validation")
	}
	if r.Errors[0].Level != LevelGeometry || !strings.Contains(r.Errors[0].Message, "record 1, Point") {
		t.Errorf("unexpected error %+v", r.Errors[0])
	}
}

func TestValidateLayersMissingLightingField(t *testing.T) {
	lyr := lightingLayer(lamp(0, "J5", "LP001", "Yes"))
	lyr.Fields = []string{"Junction", "Unique_Ass"}
	r := ValidateLayers(spec.Default(), &layer.Set{Layers: []*layer.Layer{lyr}})
	if len(r.Errors) != 1 || r.Errors[0].Path != "ScheduledF" {
		t.Errorf("expected one ScheduledF error, got %v", r.Errors)
	}
}

func TestValidateLayersLightingNotLoaded(t *testing.T) {
	r := ValidateLayers(spec.Default(), &layer.Set{})
	if r.Valid || r.Errors[0].Path != "lighting.layer" {
		t.Errorf("expected lighting.layer error, got %v", r.Errors)
	}
}

func TestValidateLayersNullJunctionAndOddFlags(t *testing.T) {
	set := &layer.Set{Layers: []*layer.Layer{lightingLayer(
		lamp(0, "J5", "LP001", "Yes"),
		lamp(1, "", "LP002", "No"),
		lamp(2, "J5", "LP003", "Maybe"),
		lamp(3, "J6", "LP004", ""),
	)}}
	r := ValidateLayers(spec.Default(), set)
	if !r.Valid {
		t.Fatalf("data warnings should not invalidate: %v", r.Errors)
	}
	if len(r.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", r.Warnings)
	}
	if r.Warnings[0].ActualValue != 1 {
		t.Errorf("null junctions = %v, want 1", r.Warnings[0].ActualValue)
	}
	if !strings.Contains(r.Warnings[1].Message, "(null) x1, Maybe x1") {
		t.Errorf("flag warning = %q", r.Warnings[1].Message)
	}
}

func TestValidateLayersLabelSkips(t *testing.T) {
	lyr := lightingLayer(
		lamp(0, "J5", "LP001", "Yes"),
		lamp(1, "J5", "", "No"),
	)
	lyr.Features = append(lyr.Features, layer.Feature{
		Index:      2,
		Properties: map[string]string{"Junction": "J5", "Unique_Ass": "LP003", "ScheduledF": "No"},
	})
	r := ValidateLayers(spec.Default(), &layer.Set{Layers: []*layer.Layer{lyr}})
	if len(r.Info) != 1 {
		t.Fatalf("expected 1 info, got %v", r.Info)
	}
	if r.Info[0].ActualValue != 2 {
		t.Errorf("skipped = %v, want 2", r.Info[0].ActualValue)
	}
}

func TestValidateLayersEmptyLayer(t *testing.T) {
	set := &layer.Set{Layers: []*layer.Layer{
		lightingLayer(lamp(0, "J5", "LP001", "Yes")),
		{Name: spec.LayerBoundary, Fields: []string{"NAME"}},
	}}
	r := ValidateLayers(spec.Default(), set)
	if len(r.Warnings) != 1 || r.Warnings[0].Layer != spec.LayerBoundary {
		t.Errorf("expected empty-layer warning, got %v", r.Warnings)
	}
}
