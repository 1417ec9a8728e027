package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RoyCoates/EGM722Project/pkg/geo"
	"github.com/RoyCoates/EGM722Project/pkg/layer"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// ValidateLayers checks loaded, reprojected layers against the project:
// coordinate ranges, the lighting attributes the summary depends on, and
// features that will not receive a map label.
func ValidateLayers(p *spec.Project, set *layer.Set) *Report {
	r := NewReport()

	for _, lyr := range set.Layers {
		validateCoordinates(lyr, r)
		if len(lyr.Features) == 0 {
			r.AddWarning(Result{
				Level:   LevelGeometry,
				Message: fmt.Sprintf("layer %q has no features", lyr.Name),
				Layer:   lyr.Name,
				Path:    lyr.Path,
			})
		}
		if def := p.LayerByName(lyr.Name); def != nil && def.Label != nil {
			validateLabels(lyr, def.Label, r)
		}
	}

	validateLightingData(p.Lighting, set, r)
	return r
}

func validateCoordinates(lyr *layer.Layer, r *Report) {
	bad := 0
	first := -1
	firstType := ""
	for _, f := range lyr.Features {
		if !geo.InLonLatBounds(f.Geometry) {
			if first < 0 {
				first = f.Index
				firstType = geo.Describe(f.Geometry)
			}
			bad++
		}
	}
	if bad == 0 {
		return
	}
	r.AddError(Result{
		Level:       LevelGeometry,
		Message:     fmt.Sprintf("layer %q: %d features outside longitude/latitude range after reprojection (first: record %d, %s)", lyr.Name, bad, first, firstType),
		Layer:       lyr.Name,
		Path:        lyr.Path,
		ActualValue: bad,
		Expected:    "lon -180..180, lat -90..90",
		Suggestions: []string{"Check the layer's .prj file or set its crs explicitly"},
	})
}

func validateLabels(lyr *layer.Layer, label *spec.LabelDef, r *Report) {
	if !lyr.HasField(label.Field) {
		r.AddWarning(Result{
			Level:   LevelAttribute,
			Message: fmt.Sprintf("layer %q has no field %q to label by", lyr.Name, label.Field),
			Layer:   lyr.Name,
			Path:    label.Field,
		})
		return
	}
	skipped := 0
	for _, f := range lyr.Features {
		if _, ok := f.Value(label.Field); !ok || f.IsEmpty() {
			skipped++
		}
	}
	if skipped > 0 {
		r.AddInfo(Result{
			Level:       LevelAttribute,
			Message:     fmt.Sprintf("layer %q: %d of %d features have no %s or no geometry and are not labelled", lyr.Name, skipped, len(lyr.Features), label.Field),
			Layer:       lyr.Name,
			Path:        label.Field,
			ActualValue: skipped,
		})
	}
}

func validateLightingData(lt spec.LightingDef, set *layer.Set, r *Report) {
	lyr := set.Get(lt.Layer)
	if lyr == nil {
		r.AddError(Result{
			Level:   LevelAttribute,
			Message: fmt.Sprintf("lighting layer %q was not loaded", lt.Layer),
			Layer:   lt.Layer,
			Path:    "lighting.layer",
		})
		return
	}

	missing := false
	for _, field := range []string{lt.JunctionField, lt.AssetField, lt.ScheduledField} {
		if !lyr.HasField(field) {
			missing = true
			r.AddError(Result{
				Level:       LevelAttribute,
				Message:     fmt.Sprintf("lighting layer %q is missing field %q", lyr.Name, field),
				Layer:       lyr.Name,
				Path:        field,
				ActualValue: strings.Join(lyr.Fields, ", "),
			})
		}
	}
	if missing {
		return
	}

	nullJunctions := 0
	unexpected := map[string]int{}
	for _, f := range lyr.Features {
		if _, ok := f.Value(lt.JunctionField); !ok {
			nullJunctions++
		}
		v, _ := f.Value(lt.ScheduledField)
		if v != lt.ScheduledValue && v != lt.RetainedValue {
			unexpected[v]++
		}
	}

	if nullJunctions > 0 {
		r.AddWarning(Result{
			Level:       LevelAttribute,
			Message:     fmt.Sprintf("%d lighting columns have no %s; they are counted in their own group but not labelled", nullJunctions, lt.JunctionField),
			Layer:       lyr.Name,
			Path:        lt.JunctionField,
			ActualValue: nullJunctions,
		})
	}
	if len(unexpected) > 0 {
		values := make([]string, 0, len(unexpected))
		for v, n := range unexpected {
			if v == "" {
				v = "(null)"
			}
			values = append(values, fmt.Sprintf("%s x%d", v, n))
		}
		sort.Strings(values)
		r.AddWarning(Result{
			Level:       LevelAttribute,
			Message:     fmt.Sprintf("unexpected %s values are counted as not scheduled: %s", lt.ScheduledField, strings.Join(values, ", ")),
			Layer:       lyr.Name,
			Path:        lt.ScheduledField,
			ActualValue: len(values),
			Expected:    fmt.Sprintf("%s or %s", lt.ScheduledValue, lt.RetainedValue),
		})
	}
}
