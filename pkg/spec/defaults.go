package spec

// Layer names used by the default M20 project.
const (
	LayerMarkerPosts  = "Marker Posts"
	LayerFilterDrains = "Filter Drains"
	LayerGully        = "Gully"
	LayerJunctions    = "Junctions"
	LayerLighting     = "Lighting Columns"
	LayerBoundary     = "MMaRC_B_Boundary"
)

// Savings projection baseline: a separate analysis measured a 15 cent saving
// per upgraded lamp per hour; lamps run 8 hours a day.
const (
	DefaultSavingsPerLampPerHour = 0.15
	DefaultHoursPerDay           = 8
	DefaultDaysPerYear           = 365
	DefaultTopN                  = 10
)

// Default returns the M20 asset inventory project: six shapefiles under
// data_files/ in Irish Transverse Mercator, drawn over satellite imagery
// centred on Junction 5.
func Default() *Project {
	return &Project{
		Name:      "M20 Lighting Columns and Drainage Assets",
		DataDir:   "data_files",
		SourceCRS: "EPSG:2157",
		Layers: []LayerDef{
			{
				Name:  LayerBoundary,
				File:  "MMaRC_B_Boundary.shp",
				Style: StyleDef{Kind: StylePolygon, Color: "red", Weight: 2},
			},
			{
				Name: LayerGully,
				File: "GY_Gully.shp",
				Style: StyleDef{
					Kind: StyleCircle, Color: "black", Weight: 1.5, Radius: 5,
					Fill: true, FillColor: "yellow", FillOpacity: 1,
				},
				Label: &LabelDef{Field: "Unique_Ass", Color: "black", FontSize: 10, ShiftY: -100, Anchor: AnchorPoint},
			},
			{
				Name:  LayerFilterDrains,
				File:  "FD_Filter_Drain.shp",
				Style: StyleDef{Kind: StyleLine, Color: "blue", Weight: 1.5},
				Label: &LabelDef{Field: "Unique_Ass", Color: "blue", FontSize: 12, ShiftY: -100, Anchor: AnchorCentroid},
			},
			{
				Name:  LayerJunctions,
				File:  "Junctions.shp",
				Style: StyleDef{Kind: StylePin, Color: "lightred", Icon: "map-pin"},
				Label: &LabelDef{Field: "Junction_N", Color: "#ff8e7f", FontSize: 20, ShiftY: -125, Anchor: AnchorPoint},
			},
			{
				Name: LayerLighting,
				File: "LP_Lighting_Point.shp",
				Style: StyleDef{
					Kind: StyleCircle, Color: "orange", Weight: 1, Radius: 7,
					Fill: true, FillOpacity: 0.5,
					CategoryField: "ScheduledF",
					Categories:    map[string]string{"Yes": "green", "No": "orange"},
				},
				Label: &LabelDef{
					Field: "Unique_Ass", Color: "orange", FontSize: 12, ShiftY: -100, Anchor: AnchorPoint,
					ColorField: "ScheduledF",
					Colors:     map[string]string{"Yes": "green"},
				},
			},
			{
				Name:  LayerMarkerPosts,
				File:  "MarkerPost_100M.shp",
				Style: StyleDef{Kind: StyleCircle, Color: "red", Weight: 1, Radius: 5, Fill: true, FillOpacity: 0.5},
				Label: &LabelDef{Field: "mVal", Color: "white", FontSize: 12, ShiftY: -100, Anchor: AnchorPoint},
			},
		},
		Lighting: LightingDef{
			Layer:          LayerLighting,
			JunctionField:  "Junction",
			AssetField:     "Unique_Ass",
			ScheduledField: "ScheduledF",
			ScheduledValue: "Yes",
			RetainedValue:  "No",
		},
		Savings: SavingsDef{
			PerLampPerHour: DefaultSavingsPerLampPerHour,
			HoursPerDay:    DefaultHoursPerDay,
			DaysPerYear:    DefaultDaysPerYear,
			CurrencySymbol: "€",
		},
		Chart: ChartDef{
			TopN:            DefaultTopN,
			Title:           "No. of Lighting Columns Scheduled for Change at Each Junction",
			XLabel:          "Junction ID",
			YLabel:          "Number of Lighting Columns",
			TotalColor:      "#ff7f0e",
			ScheduledColor:  "#2ca02c",
			TotalLegend:     "Total Lighting Columns",
			ScheduledLegend: "Scheduled for Upgrade",
		},
		Map: MapDef{
			Title:  "M20 Lighting Columns and Drainage Assets",
			Center: LatLon{Lat: 52.5856, Lon: -8.7211},
			Zoom:   18,
			BaseLayers: []TileLayerDef{
				{
					Name:        "Esri.WorldImagery",
					URL:         "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
					Attribution: "Tiles &copy; Esri &mdash; Source: Esri, i-cubed, USDA, USGS, AEX, GeoEye, Getmapping, Aerogrid, IGN, IGP, UPR-EGP, and the GIS User Community",
					MaxZoom:     19,
				},
				{
					Name:        "OpenStreetMap",
					URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
					Attribution: "&copy; <a href=\"https://www.openstreetmap.org/copyright\">OpenStreetMap</a> contributors",
					MaxZoom:     19,
				},
			},
			Legend: []LegendDef{
				{Label: "Junctions", Symbol: "pin", Color: "#ff8e7f"},
				{Label: "Boundary", Symbol: "outline", Color: "red"},
				{Label: "Gully", Symbol: "circle", Color: "yellow"},
				{Label: "Filter Drains", Symbol: "line", Color: "blue"},
				{Label: "Lighting Columns To Be Upgraded", Symbol: "circle", Color: "green"},
				{Label: "Lighting Columns to Remain As Is", Symbol: "circle", Color: "orange"},
				{Label: "Marker Posts - M20", Symbol: "circle", Color: "red"},
			},
			Measure: MeasureDef{Position: "bottomleft", PrimaryLengthUnit: "meters"},
		},
		Outputs: OutputsDef{
			Map:      "M20_Lighting_Columns_and_Drainage_Assets.html",
			Chart:    "lighting_columns_by_junction.png",
			Workbook: "lighting_column_savings.xlsx",
			CSV:      "lighting_column_data.csv",
		},
	}
}
