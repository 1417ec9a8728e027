package webmap

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"

	"github.com/RoyCoates/EGM722Project/pkg/layer"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

func feature(i int, g orb.Geometry, props map[string]string) layer.Feature {
	return layer.Feature{Index: i, Geometry: g, Properties: props}
}

// testSet returns one small layer for each default project layer.
func testSet() *layer.Set {
	return &layer.Set{Layers: []*layer.Layer{
		{
			Name:   spec.LayerBoundary,
			Fields: []string{"NAME"},
			Features: []layer.Feature{feature(0,
				orb.Polygon{{{-8.73, 52.58}, {-8.71, 52.58}, {-8.71, 52.59}, {-8.73, 52.59}, {-8.73, 52.58}}},
				map[string]string{"NAME": "M20"})},
		},
		{
			Name:   spec.LayerGully,
			Fields: []string{"Unique_Ass"},
			Features: []layer.Feature{
				feature(0, orb.Point{-8.721, 52.585}, map[string]string{"Unique_Ass": "GY001"}),
				feature(1, nil, map[string]string{"Unique_Ass": "GY002"}),
			},
		},
		{
			Name:   spec.LayerFilterDrains,
			Fields: []string{"Unique_Ass"},
			Features: []layer.Feature{
				feature(0, orb.LineString{{-8.72, 52.585}, {-8.70, 52.585}}, map[string]string{"Unique_Ass": "FD001"}),
			},
		},
		{
			Name:   spec.LayerJunctions,
			Fields: []string{"Junction_N"},
			Features: []layer.Feature{
				feature(0, orb.Point{-8.7211, 52.5856}, map[string]string{"Junction_N": "J5"}),
				feature(1, orb.Point{-8.70, 52.59}, map[string]string{"Junction_N": ""}),
			},
		},
		{
			Name:   spec.LayerLighting,
			Fields: []string{"Junction", "Unique_Ass", "ScheduledF"},
			Features: []layer.Feature{
				feature(0, orb.Point{-8.722, 52.586}, map[string]string{"Junction": "J5", "Unique_Ass": "LP001", "ScheduledF": "Yes"}),
				feature(1, orb.Point{-8.723, 52.586}, map[string]string{"Junction": "J5", "Unique_Ass": "LP002", "ScheduledF": "No"}),
			},
		},
		{
			Name:   spec.LayerMarkerPosts,
			Fields: []string{"mVal"},
			Features: []layer.Feature{
				feature(0, orb.Point{-8.724, 52.587}, map[string]string{"mVal": "12.3"}),
			},
		},
	}}
}

func TestBuildLabelsPointLayer(t *testing.T) {
	lyr := testSet().Get(spec.LayerJunctions)
	got := BuildLabels(lyr, LabelRule{Field: "Junction_N", Color: "#ff8e7f", FontSize: 20, ShiftY: -125, Anchor: spec.AnchorPoint})
	want := []Label{{Lat: 52.5856, Lon: -8.7211, Text: "J5", Color: "#ff8e7f", FontSize: 20, ShiftY: -125}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLabelsSkipsEmptyGeometry(t *testing.T) {
	lyr := testSet().Get(spec.LayerGully)
	got := BuildLabels(lyr, LabelRule{Field: "Unique_Ass", Color: "black", Anchor: spec.AnchorPoint})
	if len(got) != 1 || got[0].Text != "GY001" {
		t.Errorf("labels = %v, want only GY001", got)
	}
}

func TestBuildLabelsCentroid(t *testing.T) {
	lyr := testSet().Get(spec.LayerFilterDrains)
	got := BuildLabels(lyr, LabelRule{Field: "Unique_Ass", Color: "blue", Anchor: spec.AnchorCentroid})
	if len(got) != 1 {
		t.Fatalf("labels = %d, want 1", len(got))
	}
	if math.Abs(got[0].Lon+8.71) > 1e-9 || math.Abs(got[0].Lat-52.585) > 1e-9 {
		t.Errorf("centroid label at (%f, %f), want (-8.71, 52.585)", got[0].Lon, got[0].Lat)
	}
}

func TestBuildLabelsCategoricalColour(t *testing.T) {
	lyr := testSet().Get(spec.LayerLighting)
	rule := RuleFromDef(*spec.Default().LayerByName(spec.LayerLighting).Label)
	got := BuildLabels(lyr, rule)
	if len(got) != 2 {
		t.Fatalf("labels = %d, want 2", len(got))
	}
	if got[0].Color != "green" || got[1].Color != "orange" {
		t.Errorf("colours = %s, %s, want green, orange", got[0].Color, got[1].Color)
	}
}

func TestNewMap(t *testing.T) {
	p := spec.Default()
	m, err := New(p, testSet())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(m.Overlays) != 6 {
		t.Fatalf("overlays = %d, want 6", len(m.Overlays))
	}
	for i, def := range p.Layers {
		if m.Overlays[i].Name != def.Name {
			t.Errorf("overlay %d = %q, want %q", i, m.Overlays[i].Name, def.Name)
		}
	}
	// One gully has no geometry and one junction has no number.
	if got := m.FeatureCount(); got != 7 {
		t.Errorf("FeatureCount = %d, want 7", got)
	}
	if len(m.Labels) != 5 {
		t.Errorf("label groups = %d, want 5", len(m.Labels))
	}
	// Null junction and empty gully are not labelled.
	if got := m.LabelCount(); got != 6 {
		t.Errorf("LabelCount = %d, want 6", got)
	}
	if m.Labels[0].Name != spec.LayerGully+LabelGroupSuffix {
		t.Errorf("first label group = %q", m.Labels[0].Name)
	}
}

func TestNewMapMissingLayer(t *testing.T) {
	set := testSet()
	set.Layers = set.Layers[1:]
	if _, err := New(spec.Default(), set); err == nil {
		t.Error("expected error for a project layer that was not loaded")
	}
}

func TestNewOverlayGeoJSON(t *testing.T) {
	o, err := NewOverlay(testSet().Get(spec.LayerLighting), spec.StyleDef{Kind: spec.StyleCircle}, "")
	if err != nil {
		t.Fatal(err)
	}
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]string `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(o.Data, &fc); err != nil {
		t.Fatalf("overlay data is not JSON: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 2 {
		t.Fatalf("collection = %s with %d features", fc.Type, len(fc.Features))
	}
	f := fc.Features[0]
	if f.Geometry.Type != "Point" || f.Geometry.Coordinates[0] != -8.722 {
		t.Errorf("geometry = %+v", f.Geometry)
	}
	if f.Properties["ScheduledF"] != "Yes" || len(f.Properties) != 3 {
		t.Errorf("properties = %v", f.Properties)
	}
}

func TestNewMapPinsNeedJunctionNumber(t *testing.T) {
	m, err := New(spec.Default(), testSet())
	if err != nil {
		t.Fatal(err)
	}
	var junctions *Overlay
	for i := range m.Overlays {
		if m.Overlays[i].Name == spec.LayerJunctions {
			junctions = &m.Overlays[i]
		}
	}
	if junctions == nil {
		t.Fatal("no junctions overlay")
	}
	if junctions.Count != 1 {
		t.Errorf("junction pins = %d, want 1", junctions.Count)
	}
	if strings.Contains(string(junctions.Data), "-8.7,52.59") {
		t.Error("junction without a number was drawn")
	}

	// Non-pin layers keep features with a null label value.
	o, err := NewOverlay(testSet().Get(spec.LayerJunctions), spec.StyleDef{Kind: spec.StyleCircle}, "")
	if err != nil {
		t.Fatal(err)
	}
	if o.Count != 2 {
		t.Errorf("circle overlay count = %d, want 2", o.Count)
	}
}

func TestRenderDeterministic(t *testing.T) {
	p := spec.Default()
	var a, b bytes.Buffer
	for _, buf := range []*bytes.Buffer{&a, &b} {
		m, err := New(p, testSet())
		if err != nil {
			t.Fatal(err)
		}
		if err := Render(buf, m); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("rendering identical input produced different output")
	}
}

func TestRenderContents(t *testing.T) {
	m, err := New(spec.Default(), testSet())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, m); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	for _, want := range []string{
		"<title>M20 Lighting Columns and Drainage Assets</title>",
		"leaflet-measure",
		"L.control.layers",
		"Lighting Columns To Be Upgraded",
		"LP001",
		"World_Imagery",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
}

func TestRenderEscapesAttributes(t *testing.T) {
	set := testSet()
	set.Get(spec.LayerMarkerPosts).Features[0].Properties["mVal"] = "</script><b>x</b>"
	m, err := New(spec.Default(), set)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, m); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "</script><b>") {
		t.Error("attribute value was not escaped")
	}
}

func TestWriteFile(t *testing.T) {
	m, err := New(spec.Default(), testSet())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out", "map.html")
	if err := WriteFile(path, m); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("map file is empty")
	}

	// Writing again overwrites with the same bytes.
	first, _ := os.ReadFile(path)
	if err := WriteFile(path, m); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(path)
	if !bytes.Equal(first, second) {
		t.Error("rewriting the map changed its contents")
	}
}
