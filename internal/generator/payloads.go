package generator

import "encoding/json"

// Structured payloads embedded inside fenced code blocks. The fence label
// (plotly, datatables, mermaid) tells the client which renderer to hand the
// block to, so the shapes below are part of the wire contract.

type plotlyChart struct {
	Data   []plotlyTrace `json:"data"`
	Layout plotlyLayout  `json:"layout"`
}

type plotlyTrace struct {
	Type   string        `json:"type"`
	Mode   string        `json:"mode,omitempty"`
	Name   string        `json:"name,omitempty"`
	X      []any         `json:"x"`
	Y      []int         `json:"y"`
	Line   *plotlyLine   `json:"line,omitempty"`
	Marker *plotlyMarker `json:"marker,omitempty"`
}

type plotlyLine struct {
	Color string `json:"color"`
}

type plotlyMarker struct {
	Color []string `json:"color"`
}

type plotlyLayout struct {
	Title  string      `json:"title"`
	XAxis  *plotlyAxis `json:"xaxis,omitempty"`
	YAxis  *plotlyAxis `json:"yaxis,omitempty"`
	Height int         `json:"height"`
}

type plotlyAxis struct {
	Title string `json:"title"`
}

type tableConfig struct {
	Data       []tableRow    `json:"data"`
	Columns    []tableColumn `json:"columns"`
	Paging     bool          `json:"paging"`
	Searching  bool          `json:"searching"`
	Ordering   bool          `json:"ordering"`
	Info       bool          `json:"info"`
	PageLength int           `json:"pageLength"`
}

type tableRow struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	City     string `json:"city"`
	Progress int    `json:"progress"`
	Gender   string `json:"gender"`
}

type tableColumn struct {
	Title string `json:"title"`
	Data  string `json:"data"`
}

func simpleLineChart() plotlyChart {
	return plotlyChart{
		Data: []plotlyTrace{
			{
				Type: "scatter", Mode: "lines", Name: "Series A",
				X:    []any{1, 2, 3, 4, 5},
				Y:    []int{10, 15, 13, 17, 15},
				Line: &plotlyLine{Color: "rgb(75, 192, 192)"},
			},
		},
		Layout: plotlyLayout{Title: "Simple Line Chart", Height: 300},
	}
}

func trafficLineChart() plotlyChart {
	months := []any{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}
	return plotlyChart{
		Data: []plotlyTrace{
			{
				Type: "scatter", Mode: "lines", Name: "Website Traffic",
				X:    months,
				Y:    []int{65, 59, 80, 81, 56, 55, 40},
				Line: &plotlyLine{Color: "rgb(75, 192, 192)"},
			},
			{
				Type: "scatter", Mode: "lines", Name: "Conversion Rate",
				X:    months,
				Y:    []int{28, 48, 40, 19, 86, 27, 90},
				Line: &plotlyLine{Color: "rgb(255, 99, 132)"},
			},
		},
		Layout: plotlyLayout{
			Title:  "Monthly Website Performance",
			XAxis:  &plotlyAxis{Title: "Month"},
			YAxis:  &plotlyAxis{Title: "Value"},
			Height: 400,
		},
	}
}

func surveyBarChart() plotlyChart {
	return plotlyChart{
		Data: []plotlyTrace{
			{
				Type: "bar",
				X:    []any{"Red", "Blue", "Yellow", "Green", "Purple", "Orange"},
				Y:    []int{12, 19, 3, 5, 2, 3},
				Marker: &plotlyMarker{Color: []string{
					"rgba(255, 99, 132, 0.8)",
					"rgba(54, 162, 235, 0.8)",
					"rgba(255, 206, 86, 0.8)",
					"rgba(75, 192, 192, 0.8)",
					"rgba(153, 102, 255, 0.8)",
					"rgba(255, 159, 64, 0.8)",
				}},
			},
		},
		Layout: plotlyLayout{
			Title:  "Survey Results",
			XAxis:  &plotlyAxis{Title: "Color"},
			YAxis:  &plotlyAxis{Title: "Votes"},
			Height: 400,
		},
	}
}

func demoTableConfig() tableConfig {
	return tableConfig{
		Data: []tableRow{
			{Name: "Oli Bob", Age: "12", City: "London", Progress: 50, Gender: "male"},
			{Name: "Mary May", Age: "1", City: "Madrid", Progress: 90, Gender: "female"},
			{Name: "Christine Lobowski", Age: "42", City: "Paris", Progress: 42, Gender: "female"},
			{Name: "Brendon Philips", Age: "125", City: "Dublin", Progress: 100, Gender: "male"},
			{Name: "Margret Marmajuke", Age: "16", City: "Canada", Progress: 12, Gender: "female"},
			{Name: "Frankie Peters", Age: "30", City: "Manchester", Progress: 50, Gender: "male"},
			{Name: "Lane McMasters", Age: "20", City: "Birmingham", Progress: 60, Gender: "female"},
			{Name: "Jenson Brown", Age: "40", City: "London", Progress: 30, Gender: "male"},
			{Name: "Jamie John", Age: "25", City: "Madrid", Progress: 70, Gender: "male"},
			{Name: "Cathy James", Age: "17", City: "Edinburgh", Progress: 10, Gender: "female"},
		},
		Columns: []tableColumn{
			{Title: "Name", Data: "name"},
			{Title: "Age", Data: "age"},
			{Title: "City", Data: "city"},
			{Title: "Progress", Data: "progress"},
			{Title: "Gender", Data: "gender"},
		},
		Paging:     true,
		Searching:  true,
		Ordering:   true,
		Info:       true,
		PageLength: 5,
	}
}

// fence wraps a serialized payload in a labeled code fence. Marshal cannot
// fail on the static payloads above.
func fence(label string, payload any) string {
	data, _ := json.Marshal(payload)
	return "```" + label + "\n" + string(data) + "\n```\n\n"
}
