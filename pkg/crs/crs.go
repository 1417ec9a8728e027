// Package crs resolves the coordinate reference system of a layer and
// converts its coordinates to WGS84 longitude/latitude degrees.
package crs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/wroge/wgs84"
)

// EPSG codes with their own constructors.
const (
	CodeWGS84     = 4326
	CodeETRS89    = 4258
	CodeITM       = 2157
	CodeIrishGrid = 29903
	CodeBNG       = 27700
)

// ErrUnknownCRS is returned when a code or WKT definition is not supported.
var ErrUnknownCRS = errors.New("unknown coordinate reference system")

var epsg = wgs84.EPSG()

// CRS is a source coordinate reference system identified by its EPSG code.
type CRS struct {
	Name string
	Code int

	toWGS84 func(x, y, z float64) (lon, lat, h float64)
}

func newCRS(code int) *CRS {
	c := &CRS{Name: fmt.Sprintf("EPSG:%d", code), Code: code}
	if !c.IsGeographic() {
		c.toWGS84 = wgs84.Transform(epsg.Code(code), epsg.Code(CodeWGS84))
	}
	return c
}

// IsGeographic reports whether coordinates are longitude/latitude degrees.
func (c *CRS) IsGeographic() bool {
	return c.Code == CodeWGS84 || c.Code == CodeETRS89
}

// ToLonLat converts one coordinate pair to WGS84 longitude/latitude degrees.
func (c *CRS) ToLonLat(x, y float64) (lon, lat float64) {
	if c.toWGS84 == nil {
		return x, y
	}
	lon, lat, _ = c.toWGS84(x, y, 0)
	return lon, lat
}

// Transform returns ToLonLat as an orb projection.
func (c *CRS) Transform() orb.Projection {
	return func(p orb.Point) orb.Point {
		lon, lat := c.ToLonLat(p[0], p[1])
		return orb.Point{lon, lat}
	}
}

// Geographic is WGS84 longitude/latitude.
func Geographic() *CRS { return newCRS(CodeWGS84) }

// ITM is Irish Transverse Mercator on IRENET95.
func ITM() *CRS { return newCRS(CodeITM) }

// IrishGrid is TM75 / Irish Grid.
func IrishGrid() *CRS { return newCRS(CodeIrishGrid) }

// BritishNationalGrid is OSGB36 / British National Grid.
func BritishNationalGrid() *CRS { return newCRS(CodeBNG) }

// Supported reports whether code can be converted to WGS84.
func Supported(code int) bool {
	switch {
	case code == CodeWGS84, code == CodeETRS89, code == CodeITM,
		code == CodeIrishGrid, code == CodeBNG:
		return true
	case code >= 32601 && code <= 32660, code >= 32701 && code <= 32760:
		return true
	case code >= 25828 && code <= 25838:
		return true
	}
	return false
}

// FromCode returns the CRS for a supported EPSG code.
func FromCode(code int) (*CRS, error) {
	if !Supported(code) {
		return nil, fmt.Errorf("%w: EPSG:%d", ErrUnknownCRS, code)
	}
	return newCRS(code), nil
}

// Parse resolves an "EPSG:<code>" string (or a bare code).
func Parse(code string) (*CRS, error) {
	s := strings.TrimSpace(strings.ToUpper(code))
	s = strings.TrimPrefix(s, "EPSG:")
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCRS, code)
	}
	return FromCode(n)
}
