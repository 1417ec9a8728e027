package layer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/RoyCoates/EGM722Project/pkg/crs"
	"github.com/RoyCoates/EGM722Project/pkg/geo"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// Loader reads the layers of a project.
type Loader struct {
	Log logrus.FieldLogger
	// Progress, when set, receives a progress bar advanced once per layer.
	Progress io.Writer
}

// NewLoader returns a loader that logs to log.
func NewLoader(log logrus.FieldLogger) *Loader {
	return &Loader{Log: log}
}

func (l *Loader) log() logrus.FieldLogger {
	if l.Log == nil {
		return logrus.StandardLogger()
	}
	return l.Log
}

// LoadAll reads every layer of the project, in draw order. The first failure
// aborts the load.
func (l *Loader) LoadAll(p *spec.Project, projectDir string) (*Set, error) {
	var bar *pb.ProgressBar
	if l.Progress != nil {
		bar = pb.New(len(p.Layers))
		bar.Output = l.Progress
		bar.ShowTimeLeft = false
		bar.Start()
	}

	set := &Set{Layers: make([]*Layer, 0, len(p.Layers))}
	for _, def := range p.Layers {
		lyr, err := l.Load(def, p.LayerPath(projectDir, def), p.SourceCRS)
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			return nil, err
		}
		set.Layers = append(set.Layers, lyr)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.FinishPrint(fmt.Sprintf("Loaded %d layers", len(set.Layers)))
	}
	return set, nil
}

// Load reads one shapefile and reprojects its features to WGS84 lon/lat.
// fallbackCRS is used when neither the layer nor a .prj sidecar names one.
func (l *Loader) Load(def spec.LayerDef, path, fallbackCRS string) (*Layer, error) {
	src, err := ResolveCRS(def, path, fallbackCRS)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", def.Name, err)
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layer %q: opening %s: %w", def.Name, path, err)
	}
	defer r.Close()

	dbf := strings.TrimSuffix(path, ".shp") + ".dbf"
	if err := checkDBF(dbf); err != nil {
		return nil, fmt.Errorf("layer %q: %s: %w", def.Name, dbf, err)
	}

	fields := r.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = strings.TrimRight(f.String(), "\x00")
	}

	lyr := &Layer{Name: def.Name, Path: path, CRS: src.Name, Fields: names}
	project := src.Transform()
	for r.Next() {
		n, s := r.Shape()
		g, err := toOrb(s)
		if err != nil {
			return nil, fmt.Errorf("layer %q: record %d: %w", def.Name, n, err)
		}
		if g != nil {
			g = geo.Reproject(g, project)
		}

		props := make(map[string]string, len(names))
		for i, name := range names {
			props[name] = strings.TrimSpace(strings.Trim(r.ReadAttribute(n, i), "\x00"))
		}
		lyr.Features = append(lyr.Features, Feature{Index: n, Geometry: g, Properties: props})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("layer %q: reading %s: %w", def.Name, path, err)
	}

	lyr.Bound = bound(lyr.Features)
	l.log().WithFields(logrus.Fields{
		"layer":    def.Name,
		"features": len(lyr.Features),
		"crs":      src.Name,
	}).Info("layer loaded")
	return lyr, nil
}

// ResolveCRS picks the source CRS of a layer: the layer's own crs setting,
// then the .prj sidecar next to the shapefile, then the project fallback.
func ResolveCRS(def spec.LayerDef, path, fallback string) (*crs.CRS, error) {
	if def.CRS != "" {
		return crs.Parse(def.CRS)
	}
	prj := strings.TrimSuffix(path, ".shp") + ".prj"
	c, err := crs.ReadPrj(prj)
	switch {
	case err == nil:
		return c, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}
	if fallback == "" {
		return nil, fmt.Errorf("%w: no crs set and no %s", crs.ErrUnknownCRS, prj)
	}
	return crs.Parse(fallback)
}

// dbfMinHeader is the fixed header plus the field terminator.
const dbfMinHeader = 33

// ErrBadDBF is returned for an attribute table too short to hold its header.
var ErrBadDBF = errors.New("truncated or malformed attribute table")

// checkDBF fails when the attribute table is missing or shorter than the
// header it declares.
func checkDBF(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	var head [32]byte
	if _, err := io.ReadFull(f, head[:]); err != nil {
		return fmt.Errorf("%w: %d bytes", ErrBadDBF, info.Size())
	}
	headerLen := int64(binary.LittleEndian.Uint16(head[8:10]))
	if headerLen < dbfMinHeader || headerLen > info.Size() {
		return fmt.Errorf("%w: header of %d bytes in a %d byte file", ErrBadDBF, headerLen, info.Size())
	}
	return nil
}
