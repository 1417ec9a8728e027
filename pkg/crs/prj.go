package crs

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	wktHead      = regexp.MustCompile(`^\s*(PROJCS|GEOGCS|PROJCRS|GEOGCRS)\s*\[\s*"([^"]*)"`)
	wktAuthority = regexp.MustCompile(`(?i)(?:AUTHORITY|ID)\s*\[\s*"EPSG"\s*,\s*"?(\d+)"?\s*\]`)
	utmZone      = regexp.MustCompile(`UTM_ZONE_(\d{1,2})([NS])`)
)

// ReadPrj reads a shapefile .prj sidecar and resolves it to an EPSG code.
func ReadPrj(path string) (*CRS, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading projection file: %w", err)
	}
	c, err := FromWKT(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// FromWKT resolves a WKT definition to a supported CRS. An EPSG authority
// on the outermost object wins; otherwise the ESRI-style name is matched.
func FromWKT(wkt string) (*CRS, error) {
	head := wktHead.FindStringSubmatch(wkt)
	if head == nil {
		return nil, fmt.Errorf("%w: not a WKT definition", ErrUnknownCRS)
	}

	// In WKT1 the outermost AUTHORITY is the last one.
	if ids := wktAuthority.FindAllStringSubmatch(wkt, -1); len(ids) > 0 {
		n, err := strconv.Atoi(ids[len(ids)-1][1])
		if err == nil && Supported(n) {
			c := newCRS(n)
			c.Name = head[2]
			return c, nil
		}
	}

	code, ok := codeFromName(strings.HasPrefix(strings.ToUpper(head[1]), "GEOG"), head[2])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCRS, head[2])
	}
	c := newCRS(code)
	c.Name = head[2]
	return c, nil
}

func codeFromName(geographic bool, name string) (int, bool) {
	n := strings.ToUpper(strings.NewReplacer(" ", "_", "/", "_", "-", "_").Replace(name))
	if geographic {
		switch {
		case strings.Contains(n, "WGS_1984"), strings.Contains(n, "WGS84"):
			return CodeWGS84, true
		case strings.Contains(n, "ETRS"), strings.Contains(n, "IRENET95"):
			return CodeETRS89, true
		}
		return 0, false
	}

	if m := utmZone.FindStringSubmatch(n); m != nil {
		zone, _ := strconv.Atoi(m[1])
		base := 32600
		switch {
		case strings.Contains(n, "ETRS"):
			base = 25800
		case m[2] == "S":
			base = 32700
		}
		return base + zone, Supported(base + zone)
	}

	switch {
	case strings.Contains(n, "IRISH_TRANSVERSE_MERCATOR"), strings.Contains(n, "IRENET95"):
		return CodeITM, true
	case strings.Contains(n, "IRISH_GRID"):
		return CodeIrishGrid, true
	case strings.Contains(n, "BRITISH_NATIONAL_GRID"):
		return CodeBNG, true
	}
	return 0, false
}
