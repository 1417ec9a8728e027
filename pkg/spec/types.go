package spec

// Project is the top-level definition of an asset reporting run.
type Project struct {
	Name      string      `yaml:"name" json:"name"`
	DataDir   string      `yaml:"data_dir" json:"data_dir"`
	SourceCRS string      `yaml:"source_crs,omitempty" json:"source_crs,omitempty"`
	Layers    []LayerDef  `yaml:"layers" json:"layers"`
	Lighting  LightingDef `yaml:"lighting" json:"lighting"`
	Savings   SavingsDef  `yaml:"savings" json:"savings"`
	Chart     ChartDef    `yaml:"chart" json:"chart"`
	Map       MapDef      `yaml:"map" json:"map"`
	Outputs   OutputsDef  `yaml:"outputs" json:"outputs"`
}

// LayerByName returns the layer definition with the given name, or nil if not found.
func (p *Project) LayerByName(name string) *LayerDef {
	for i := range p.Layers {
		if p.Layers[i].Name == name {
			return &p.Layers[i]
		}
	}
	return nil
}

// StyleKind selects how a layer's geometries are drawn on the map.
type StyleKind string

const (
	StylePolygon StyleKind = "polygon"
	StyleLine    StyleKind = "line"
	StyleCircle  StyleKind = "circle"
	StylePin     StyleKind = "pin"
)

// AnchorRule selects where a label is placed on a feature.
type AnchorRule string

const (
	AnchorPoint    AnchorRule = "point"
	AnchorCentroid AnchorRule = "centroid"
)

// LayerDef is one shapefile layer and how to present it.
type LayerDef struct {
	Name  string    `yaml:"name" json:"name"`
	File  string    `yaml:"file" json:"file"`
	CRS   string    `yaml:"crs,omitempty" json:"crs,omitempty"`
	Style StyleDef  `yaml:"style" json:"style"`
	Label *LabelDef `yaml:"label,omitempty" json:"label,omitempty"`
}

// StyleDef is the fixed map styling of a layer.
type StyleDef struct {
	Kind        StyleKind `yaml:"kind" json:"kind"`
	Color       string    `yaml:"color" json:"color"`
	Weight      float64   `yaml:"weight,omitempty" json:"weight,omitempty"`
	Fill        bool      `yaml:"fill,omitempty" json:"fill,omitempty"`
	FillColor   string    `yaml:"fill_color,omitempty" json:"fill_color,omitempty"`
	FillOpacity float64   `yaml:"fill_opacity,omitempty" json:"fill_opacity,omitempty"`
	Radius      float64   `yaml:"radius,omitempty" json:"radius,omitempty"`
	Icon        string    `yaml:"icon,omitempty" json:"icon,omitempty"`

	// CategoryField colours features by the value of an attribute.
	// Values missing from Categories fall back to Color.
	CategoryField string            `yaml:"category_field,omitempty" json:"category_field,omitempty"`
	Categories    map[string]string `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// LabelDef describes the floating text label drawn for each feature.
type LabelDef struct {
	Field    string     `yaml:"field" json:"field"`
	Color    string     `yaml:"color" json:"color"`
	FontSize int        `yaml:"font_size" json:"font_size"`
	ShiftY   int        `yaml:"shift_y" json:"shift_y"` // percent of label height
	Anchor   AnchorRule `yaml:"anchor" json:"anchor"`

	ColorField string            `yaml:"color_field,omitempty" json:"color_field,omitempty"`
	Colors     map[string]string `yaml:"colors,omitempty" json:"colors,omitempty"`
}

// LightingDef names the lighting-column layer and its attribute columns.
type LightingDef struct {
	Layer          string `yaml:"layer" json:"layer"`
	JunctionField  string `yaml:"junction_field" json:"junction_field"`
	AssetField     string `yaml:"asset_field" json:"asset_field"`
	ScheduledField string `yaml:"scheduled_field" json:"scheduled_field"`
	ScheduledValue string `yaml:"scheduled_value" json:"scheduled_value"`
	RetainedValue  string `yaml:"retained_value" json:"retained_value"`
}

// SavingsDef holds the constants of the annual savings projection.
type SavingsDef struct {
	PerLampPerHour float64 `yaml:"per_lamp_per_hour" json:"per_lamp_per_hour"`
	HoursPerDay    float64 `yaml:"hours_per_day" json:"hours_per_day"`
	DaysPerYear    float64 `yaml:"days_per_year" json:"days_per_year"`
	CurrencySymbol string  `yaml:"currency_symbol" json:"currency_symbol"`
}

type ChartDef struct {
	TopN            int    `yaml:"top_n" json:"top_n"`
	Title           string `yaml:"title" json:"title"`
	XLabel          string `yaml:"x_label" json:"x_label"`
	YLabel          string `yaml:"y_label" json:"y_label"`
	TotalColor      string `yaml:"total_color" json:"total_color"`
	ScheduledColor  string `yaml:"scheduled_color" json:"scheduled_color"`
	TotalLegend     string `yaml:"total_legend" json:"total_legend"`
	ScheduledLegend string `yaml:"scheduled_legend" json:"scheduled_legend"`
}

type MapDef struct {
	Title      string         `yaml:"title" json:"title"`
	Center     LatLon         `yaml:"center" json:"center"`
	Zoom       int            `yaml:"zoom" json:"zoom"`
	BaseLayers []TileLayerDef `yaml:"base_layers" json:"base_layers"`
	Legend     []LegendDef    `yaml:"legend" json:"legend"`
	Measure    MeasureDef     `yaml:"measure" json:"measure"`
}

type LatLon struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
}

type TileLayerDef struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	Attribution string `yaml:"attribution" json:"attribution"`
	MaxZoom     int    `yaml:"max_zoom" json:"max_zoom"`
}

// LegendDef is one row of the static map legend.
type LegendDef struct {
	Label  string `yaml:"label" json:"label"`
	Symbol string `yaml:"symbol" json:"symbol"` // circle, line, outline, pin
	Color  string `yaml:"color" json:"color"`
}

type MeasureDef struct {
	Position          string `yaml:"position" json:"position"`
	PrimaryLengthUnit string `yaml:"primary_length_unit" json:"primary_length_unit"`
}

// OutputsDef lists output file names, relative to the output directory.
type OutputsDef struct {
	Map      string `yaml:"map" json:"map"`
	Chart    string `yaml:"chart" json:"chart"`
	Workbook string `yaml:"workbook" json:"workbook"`
	CSV      string `yaml:"csv" json:"csv"`
}
