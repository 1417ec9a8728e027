package validation

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// ValidateProject performs the project-level checks on a parsed project
// definition. It runs before any shapefile is opened.
func ValidateProject(p *spec.Project) *Report {
	r := NewReport()

	validateLayers(p, r)
	validateLighting(p, r)
	validateSavings(p, r)
	validateChart(p, r)
	validateMap(p, r)
	validateOutputs(p, r)

	return r
}

var (
	knownStyles  = map[spec.StyleKind]bool{spec.StylePolygon: true, spec.StyleLine: true, spec.StyleCircle: true, spec.StylePin: true}
	knownAnchors = map[spec.AnchorRule]bool{spec.AnchorPoint: true, spec.AnchorCentroid: true}
)

func validateLayers(p *spec.Project, r *Report) {
	if len(p.Layers) == 0 {
		r.AddError(Result{
			Level:    LevelProject,
			Message:  "layers must contain at least one layer",
			Path:     "layers",
			Expected: "at least 1 layer",
		})
		return
	}

	seen := make(map[string]int, len(p.Layers))
	for i, l := range p.Layers {
		path := fmt.Sprintf("layers[%d]", i)
		if strings.TrimSpace(l.Name) == "" {
			r.AddError(Result{Level: LevelProject, Message: fmt.Sprintf("%s: name is required", path), Path: path + ".name"})
		} else if j, dup := seen[l.Name]; dup {
			r.AddError(Result{
				Level:       LevelProject,
				Message:     fmt.Sprintf("duplicate layer name %q (also layers[%d])", l.Name, j),
				Path:        path + ".name",
				Layer:       l.Name,
				Suggestions: []string{"Give every layer a unique name"},
			})
		} else {
			seen[l.Name] = i
		}

		if l.File == "" {
			r.AddError(Result{Level: LevelProject, Message: fmt.Sprintf("layer %q has no file", l.Name), Path: path + ".file", Layer: l.Name})
		} else if !strings.EqualFold(filepath.Ext(l.File), ".shp") {
			r.AddError(Result{
				Level:       LevelProject,
				Message:     fmt.Sprintf("layer %q file %q is not a shapefile", l.Name, l.File),
				Path:        path + ".file",
				Layer:       l.Name,
				ActualValue: l.File,
				Expected:    "*.shp",
			})
		}

		if !knownStyles[l.Style.Kind] {
			r.AddError(Result{
				Level:       LevelProject,
				Message:     fmt.Sprintf("layer %q has unknown style kind %q", l.Name, l.Style.Kind),
				Path:        path + ".style.kind",
				Layer:       l.Name,
				ActualValue: string(l.Style.Kind),
				Expected:    "polygon, line, circle or pin",
			})
		}
		if l.Style.FillOpacity < 0 || l.Style.FillOpacity > 1 {
			r.AddError(Result{
				Level:       LevelProject,
				Message:     fmt.Sprintf("layer %q fill_opacity %.2f must be within 0-1", l.Name, l.Style.FillOpacity),
				Path:        path + ".style.fill_opacity",
				Layer:       l.Name,
				ActualValue: l.Style.FillOpacity,
				Expected:    "0-1",
			})
		}

		if l.Label != nil {
			if l.Label.Field == "" {
				r.AddError(Result{Level: LevelProject, Message: fmt.Sprintf("layer %q label has no field", l.Name), Path: path + ".label.field", Layer: l.Name})
			}
			if !knownAnchors[l.Label.Anchor] {
				r.AddError(Result{
					Level:       LevelProject,
					Message:     fmt.Sprintf("layer %q label has unknown anchor %q", l.Name, l.Label.Anchor),
					Path:        path + ".label.anchor",
					Layer:       l.Name,
					ActualValue: string(l.Label.Anchor),
					Expected:    "point or centroid",
				})
			}
			if l.Label.FontSize <= 0 {
				r.AddWarning(Result{
					Level:       LevelProject,
					Message:     fmt.Sprintf("layer %q label font_size %d is not positive", l.Name, l.Label.FontSize),
					Path:        path + ".label.font_size",
					Layer:       l.Name,
					ActualValue: l.Label.FontSize,
					Expected:    "> 0",
				})
			}
		}
	}
}

func validateLighting(p *spec.Project, r *Report) {
	lt := p.Lighting
	if p.LayerByName(lt.Layer) == nil {
		r.AddError(Result{
			Level:       LevelProject,
			Message:     fmt.Sprintf("lighting layer %q is not defined in layers", lt.Layer),
			Path:        "lighting.layer",
			ActualValue: lt.Layer,
		})
	}
	for _, f := range []struct{ path, value string }{
		{"lighting.junction_field", lt.JunctionField},
		{"lighting.asset_field", lt.AssetField},
		{"lighting.scheduled_field", lt.ScheduledField},
		{"lighting.scheduled_value", lt.ScheduledValue},
	} {
		if f.value == "" {
			r.AddError(Result{Level: LevelProject, Message: f.path + " is required", Path: f.path})
		}
	}
}

func validateSavings(p *spec.Project, r *Report) {
	s := p.Savings
	for _, c := range []struct {
		path  string
		value float64
	}{
		{"savings.per_lamp_per_hour", s.PerLampPerHour},
		{"savings.hours_per_day", s.HoursPerDay},
		{"savings.days_per_year", s.DaysPerYear},
	} {
		if c.value < 0 {
			r.AddError(Result{
				Level:       LevelProject,
				Message:     fmt.Sprintf("%s must be non-negative", c.path),
				Path:        c.path,
				ActualValue: c.value,
				Expected:    ">= 0",
			})
		}
	}
	if s.HoursPerDay > 24 {
		r.AddError(Result{
			Level:       LevelProject,
			Message:     fmt.Sprintf("savings.hours_per_day %.1f exceeds 24", s.HoursPerDay),
			Path:        "savings.hours_per_day",
			ActualValue: s.HoursPerDay,
			Expected:    "0-24",
		})
	}
}

func validateChart(p *spec.Project, r *Report) {
	if p.Chart.TopN <= 0 {
		r.AddError(Result{
			Level:       LevelProject,
			Message:     "chart.top_n must be > 0",
			Path:        "chart.top_n",
			ActualValue: p.Chart.TopN,
			Expected:    "> 0",
		})
	}
}

func validateMap(p *spec.Project, r *Report) {
	m := p.Map
	if m.Zoom < 0 || m.Zoom > 22 {
		r.AddError(Result{
			Level:       LevelProject,
			Message:     fmt.Sprintf("map.zoom %d is outside valid range (0-22)", m.Zoom),
			Path:        "map.zoom",
			ActualValue: m.Zoom,
			Expected:    "0-22",
		})
	}
	if m.Center.Lat < -90 || m.Center.Lat > 90 || m.Center.Lon < -180 || m.Center.Lon > 180 {
		r.AddError(Result{
			Level:       LevelProject,
			Message:     fmt.Sprintf("map.center (%.4f, %.4f) is not a valid latitude/longitude", m.Center.Lat, m.Center.Lon),
			Path:        "map.center",
			ActualValue: fmt.Sprintf("%.4f, %.4f", m.Center.Lat, m.Center.Lon),
			Expected:    "lat -90..90, lon -180..180",
		})
	}
	if len(m.BaseLayers) == 0 {
		r.AddWarning(Result{
			Level:       LevelProject,
			Message:     "map has no base layers; overlays will be drawn on a blank background",
			Path:        "map.base_layers",
			Suggestions: []string{"Run `roadassets init` to see the default base layers"},
		})
	}
	for i, b := range m.BaseLayers {
		u, err := url.Parse(strings.NewReplacer("{", "", "}", "").Replace(b.URL))
		if err != nil || u.Scheme == "" || u.Host == "" {
			r.AddError(Result{
				Level:       LevelProject,
				Message:     fmt.Sprintf("base layer %q has an invalid tile URL", b.Name),
				Path:        fmt.Sprintf("map.base_layers[%d].url", i),
				ActualValue: b.URL,
			})
		}
	}
}

func validateOutputs(p *spec.Project, r *Report) {
	o := p.Outputs
	for _, f := range []struct{ path, value, ext string }{
		{"outputs.map", o.Map, ".html"},
		{"outputs.chart", o.Chart, ".png"},
		{"outputs.workbook", o.Workbook, ".xlsx"},
		{"outputs.csv", o.CSV, ".csv"},
	} {
		if f.value == "" {
			r.AddError(Result{Level: LevelProject, Message: f.path + " is required", Path: f.path, Expected: "*" + f.ext})
			continue
		}
		if !strings.EqualFold(filepath.Ext(f.value), f.ext) {
			r.AddWarning(Result{
				Level:       LevelProject,
				Message:     fmt.Sprintf("%s %q does not end in %s", f.path, f.value, f.ext),
				Path:        f.path,
				ActualValue: f.value,
				Expected:    "*" + f.ext,
			})
		}
	}
}
