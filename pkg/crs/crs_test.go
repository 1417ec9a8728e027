package crs

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
)

const itmPrj = `PROJCS["IRENET95_Irish_Transverse_Mercator",GEOGCS["GCS_IRENET95",DATUM["D_IRENET95",SPHEROID["GRS_1980",6378137.0,298.257222101]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]],PROJECTION["Transverse_Mercator"],PARAMETER["False_Easting",600000.0],PARAMETER["False_Northing",750000.0],PARAMETER["Central_Meridian",-8.0],PARAMETER["Scale_Factor",0.99982],PARAMETER["Latitude_Of_Origin",53.5],UNIT["Meter",1.0]]`

const wgs84Prj = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestITMFalseOrigin(t *testing.T) {
	lon, lat := ITM().ToLonLat(600000, 750000)
	if !approxEqual(lon, -8, 1e-5) || !approxEqual(lat, 53.5, 1e-5) {
		t.Errorf("origin = (%f, %f), want (-8, 53.5)", lon, lat)
	}
}

func TestITMNorthOfOrigin(t *testing.T) {
	// One degree of latitude is roughly 111.2 km of grid northing.
	lon, lat := ITM().ToLonLat(600000, 861200)
	if !approxEqual(lon, -8, 1e-5) || !approxEqual(lat, 54.5, 0.01) {
		t.Errorf("point = (%f, %f), want near (-8, 54.5)", lon, lat)
	}
}

func TestIrishGridOriginNearITMOrigin(t *testing.T) {
	lon, lat := IrishGrid().ToLonLat(200000, 250000)
	// TM75 and WGS84 differ by tens of metres in Ireland.
	if !approxEqual(lon, -8, 0.005) || !approxEqual(lat, 53.5, 0.005) {
		t.Errorf("irish grid origin = (%f, %f), want near (-8, 53.5)", lon, lat)
	}
}

func TestBritishNationalGridSample(t *testing.T) {
	// Near Greenwich: BNG ~ (538900, 177300).
	lon, lat := BritishNationalGrid().ToLonLat(538900, 177300)
	if !approxEqual(lon, 0.0, 0.02) || !approxEqual(lat, 51.48, 0.02) {
		t.Errorf("greenwich = (%f, %f), want near (0, 51.48)", lon, lat)
	}
}

func TestGeographicIsIdentity(t *testing.T) {
	lon, lat := Geographic().ToLonLat(-8.5, 52.6)
	if lon != -8.5 || lat != 52.6 {
		t.Errorf("identity = (%f, %f), want (-8.5, 52.6)", lon, lat)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		code       string
		name       string
		geographic bool
	}{
		{"EPSG:4326", "EPSG:4326", true},
		{"EPSG:4258", "EPSG:4258", true},
		{"epsg:2157", "EPSG:2157", false},
		{"29903", "EPSG:29903", false},
		{"EPSG:27700", "EPSG:27700", false},
		{"EPSG:32629", "EPSG:32629", false},
		{"EPSG:25829", "EPSG:25829", false},
	}
	for _, c := range cases {
		got, err := Parse(c.code)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", c.code, err)
			continue
		}
		if got.Name != c.name {
			t.Errorf("Parse(%q).Name = %q, want %q", c.code, got.Name, c.name)
		}
		if got.IsGeographic() != c.geographic {
			t.Errorf("Parse(%q).IsGeographic = %v, want %v", c.code, got.IsGeographic(), c.geographic)
		}
	}
}

func TestParseUTM(t *testing.T) {
	c, err := Parse("EPSG:32629")
	if err != nil {
		t.Fatal(err)
	}
	// The zone 29 central meridian is -9.
	lon, lat := c.ToLonLat(500000, 5800000)
	if !approxEqual(lon, -9, 1e-5) || lat < 52 || lat > 53 {
		t.Errorf("zone 29 point = (%f, %f), want lon -9, lat ~52.3", lon, lat)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, code := range []string{"EPSG:3857", "ITM", ""} {
		if _, err := Parse(code); !errors.Is(err, ErrUnknownCRS) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownCRS", code, err)
		}
	}
}

func TestFromWKTITM(t *testing.T) {
	c, err := FromWKT(itmPrj)
	if err != nil {
		t.Fatalf("FromWKT failed: %v", err)
	}
	if c.Code != CodeITM {
		t.Errorf("code = %d, want %d", c.Code, CodeITM)
	}
	lon, lat := c.ToLonLat(557000, 660000)
	lon2, lat2 := ITM().ToLonLat(557000, 660000)
	if lon != lon2 || lat != lat2 {
		t.Errorf("wkt ITM = (%f, %f), epsg ITM = (%f, %f)", lon, lat, lon2, lat2)
	}
}

func TestFromWKTGeographic(t *testing.T) {
	c, err := FromWKT(wgs84Prj)
	if err != nil {
		t.Fatalf("FromWKT failed: %v", err)
	}
	if !c.IsGeographic() {
		t.Fatal("expected geographic CRS")
	}
}

func TestFromWKTNames(t *testing.T) {
	cases := []struct {
		wkt  string
		code int
	}{
		{`PROJCS["TM75_Irish_Grid",GEOGCS["GCS_TM75"]]`, CodeIrishGrid},
		{`PROJCS["British_National_Grid",GEOGCS["GCS_OSGB_1936"]]`, CodeBNG},
		{`PROJCS["WGS_1984_UTM_Zone_29N",GEOGCS["GCS_WGS_1984"]]`, 32629},
		{`PROJCS["ETRS_1989_UTM_Zone_30N",GEOGCS["GCS_ETRS_1989"]]`, 25830},
		{`GEOGCS["GCS_ETRS_1989",DATUM["D_ETRS_1989"]]`, CodeETRS89},
	}
	for _, c := range cases {
		got, err := FromWKT(c.wkt)
		if err != nil {
			t.Errorf("FromWKT(%s) failed: %v", c.wkt, err)
			continue
		}
		if got.Code != c.code {
			t.Errorf("FromWKT(%s).Code = %d, want %d", c.wkt, got.Code, c.code)
		}
	}
}

func TestFromWKTAuthority(t *testing.T) {
	wkt := `PROJCS["TM75 / Irish Grid",GEOGCS["TM75",AUTHORITY["EPSG","4300"]],PROJECTION["Transverse_Mercator"],AUTHORITY["EPSG","29903"]]`
	c, err := FromWKT(wkt)
	if err != nil {
		t.Fatalf("FromWKT failed: %v", err)
	}
	if c.Code != CodeIrishGrid || c.Name != "TM75 / Irish Grid" {
		t.Errorf("crs = %s (%d), want TM75 / Irish Grid (29903)", c.Name, c.Code)
	}
}

func TestFromWKTUnsupported(t *testing.T) {
	wkt := `PROJCS["WGS_1984_Web_Mercator",GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]]],PROJECTION["Mercator_Auxiliary_Sphere"],UNIT["Meter",1.0]]`
	if _, err := FromWKT(wkt); !errors.Is(err, ErrUnknownCRS) {
		t.Errorf("error = %v, want ErrUnknownCRS", err)
	}
	if _, err := FromWKT("garbage"); !errors.Is(err, ErrUnknownCRS) {
		t.Errorf("error = %v, want ErrUnknownCRS", err)
	}
}

func TestReadPrj(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layer.prj")
	if err := os.WriteFile(path, []byte(itmPrj), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := ReadPrj(path)
	if err != nil {
		t.Fatalf("ReadPrj failed: %v", err)
	}
	if c.Name != "IRENET95_Irish_Transverse_Mercator" {
		t.Errorf("name = %q", c.Name)
	}

	if _, err := ReadPrj(filepath.Join(t.TempDir(), "missing.prj")); err == nil {
		t.Error("expected error for missing .prj")
	}
}

func TestTransformProjection(t *testing.T) {
	p := ITM().Transform()(orb.Point{600000, 750000})
	if !approxEqual(p.X(), -8, 1e-5) || !approxEqual(p.Y(), 53.5, 1e-5) {
		t.Errorf("transform = %v, want [-8 53.5]", p)
	}
}
