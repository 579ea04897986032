package models

import (
	"net/url"
	"time"
)

// ReportFilters holds the report console filter selection. Status and
// Constituency use the sentinel "all" to mean "no filter".
type ReportFilters struct {
	StartDate    string
	EndDate      string
	Status       string
	Period       string
	ReportType   string
	Constituency string
}

// DefaultReportFilters returns the initial filter selection: the last 7 days,
// all statuses and constituencies, weekly applications report.
func DefaultReportFilters(now time.Time) ReportFilters {
	return ReportFilters{
		StartDate:    now.AddDate(0, 0, -7).Format("2006-01-02"),
		EndDate:      now.Format("2006-01-02"),
		Status:       "all",
		Period:       "weekly",
		ReportType:   "applications",
		Constituency: "all",
	}
}

// Query returns the backend query parameters for this filter set. Export
// requests add "format" on top of the exact same parameters.
func (f ReportFilters) Query() url.Values {
	return url.Values{
		"start_date":   {f.StartDate},
		"end_date":     {f.EndDate},
		"status":       {f.Status},
		"report_type":  {f.ReportType},
		"constituency": {f.Constituency},
	}
}

// ExportFilename returns the deterministic download name for a server-side
// export of this filter set.
func (f ReportFilters) ExportFilename(format string) string {
	return f.ReportType + "_report_" + f.StartDate + "_to_" + f.EndDate + "." + format
}

// ReportApplication is a read-only projection of a backend application record.
type ReportApplication struct {
	ID                int    `json:"id"`
	ApplicationNumber string `json:"application_number"`
	FullNames         string `json:"full_names"`
	Status            string `json:"status"`
	ApplicationType   string `json:"application_type"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
	OfficerName       string `json:"officer_name"`
	GeneratedIDNumber string `json:"generated_id_number,omitempty"`
}

// ReportStats holds the aggregate counts computed by the backend.
type ReportStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
	Dispatched int `json:"dispatched"`
	Collected  int `json:"collected"`
}

// ReportResult is the reports endpoint response: record set and stats arrive
// together and replace the displayed state atomically.
type ReportResult struct {
	Applications []ReportApplication `json:"applications"`
	Stats        ReportStats         `json:"stats"`
}

// Constituency is a reference list entry used as a report filter dimension.
type Constituency struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
