package models

// ChartSlot configures one of the dashboard's fixed chart positions.
type ChartSlot struct {
	// ID is the slot identifier (fig1..fig5).
	ID string `yaml:"id" json:"id"`
	// Title is the chart title.
	Title string `yaml:"title" json:"title"`
	// X is the category column name.
	X string `yaml:"x,omitempty" json:"x,omitempty"`
	// Y is the value column name.
	Y string `yaml:"y,omitempty" json:"y,omitempty"`
	// Table is the chunked table index; zero means the whole sheet.
	Table int `yaml:"table,omitempty" json:"table,omitempty"`
	// Color is the bar color; empty means the default.
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// ChartSpec describes a single bar chart over a data source.
type ChartSpec struct {
	// ID is the chart slot the spec was built for.
	ID string `json:"id,omitempty"`
	// Title is the centered chart title.
	Title string `json:"title"`
	// X is the category column name.
	X string `json:"x"`
	// Y is the value column name.
	Y string `json:"y"`
	// Color is the bar color (CSS name or #RRGGBB).
	Color string `json:"color"`
	// Source is the table the chart reads from.
	Source Source `json:"-"`
}

// Figure is a plotly-compatible figure description.
type Figure struct {
	Data   []BarTrace `json:"data"`
	Layout Layout     `json:"layout"`
}

// BarTrace is a single bar series.
type BarTrace struct {
	Type         string        `json:"type"`
	Name         string        `json:"name,omitempty"`
	X            []interface{} `json:"x"`
	Y            []interface{} `json:"y"`
	Marker       Marker        `json:"marker"`
	TextTemplate string        `json:"texttemplate"`
	TextPosition string        `json:"textposition"`
}

// Marker styles the bars of a trace.
type Marker struct {
	Color string `json:"color"`
}

// Layout holds figure-level presentation settings.
type Layout struct {
	Title       Title       `json:"title"`
	BarMode     string      `json:"barmode"`
	XAxis       Axis        `json:"xaxis"`
	YAxis       Axis        `json:"yaxis"`
	Margin      Margin      `json:"margin"`
	UniformText UniformText `json:"uniformtext"`
}

// Title is the figure title and its placement.
type Title struct {
	Text    string  `json:"text"`
	Font    Font    `json:"font"`
	X       float64 `json:"x"`
	XAnchor string  `json:"xanchor"`
}

// Font is a font size setting.
type Font struct {
	Size int `json:"size"`
}

// Axis configures one axis. A nil Title renders as no axis title.
type Axis struct {
	Title     *string `json:"title"`
	TickAngle int     `json:"tickangle,omitempty"`
}

// Margin is the figure margin in pixels.
type Margin struct {
	T int `json:"t"`
}

// UniformText hides text labels that would render below MinSize.
type UniformText struct {
	MinSize int    `json:"minsize"`
	Mode    string `json:"mode"`
}
