package models

type EndpointStats struct {
	Count           int     `json:"count"`
	TotalTime       float64 `json:"total_time"`
	AvgResponseTime float64 `json:"avg_response_time"`
}

type ReportEntry struct {
	Count           int     `json:"count" yaml:"count"`
	AvgResponseTime float64 `json:"avg_response_time" yaml:"avg_response_time"`
}

// Report maps an endpoint to its persisted summary.
type Report map[string]ReportEntry

// Row is one line of the console table.
type Row struct {
	Handler         string
	Total           int
	AvgResponseTime float64
}
