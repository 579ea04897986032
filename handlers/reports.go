package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"id_console_app_go/models"
	"id_console_app_go/services"
	"id_console_app_go/view"

	"github.com/labstack/echo/v4"
)

// filtersFromValues builds a filter set from request values, falling back to
// the defaults for anything absent. A quick-period shortcut overrides the
// date range.
func filtersFromValues(v url.Values, now time.Time) models.ReportFilters {
	filters := models.DefaultReportFilters(now)
	if s := v.Get("start_date"); s != "" {
		filters.StartDate = s
	}
	if s := v.Get("end_date"); s != "" {
		filters.EndDate = s
	}
	if s := v.Get("status"); s != "" {
		filters.Status = s
	}
	if s := v.Get("report_type"); s != "" {
		filters.ReportType = s
	}
	if s := v.Get("constituency"); s != "" {
		filters.Constituency = s
	}
	if period := v.Get("period"); period != "" {
		filters.Period = period
		filters.StartDate, filters.EndDate = services.QuickPeriod(period, now)
	}
	return filters
}

// ReportsPage renders the report console. The constituency list is reference
// data; if it cannot be fetched the filter stays usable with only "all".
func (h *Handler) ReportsPage(c echo.Context) error {
	filters := filtersFromValues(c.QueryParams(), time.Now())

	constituencies, err := h.api.Constituencies(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to fetch constituencies: %v", err)
		constituencies = nil
	}

	return c.Render(http.StatusOK, "reports", view.TemplateData{
		Title: "Reports & Analytics | ID Registry Console",
		Data: struct {
			Filters        models.ReportFilters
			Constituencies []models.Constituency
		}{filters, constituencies},
	})
}

// GenerateReport fetches the filtered report and returns the results partial.
// On failure the partial is not swapped in, so the prior result stays on
// screen.
func (h *Handler) GenerateReport(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return c.HTML(http.StatusBadRequest, `<div class="error-message">Invalid report request</div>`)
	}
	filters := filtersFromValues(form, time.Now())

	// Validate date fields before calling the backend
	if _, err := services.ParseDate(filters.StartDate); err != nil {
		return c.HTML(http.StatusBadRequest, `<div class="error-message">Invalid start date</div>`)
	}
	if _, err := services.ParseDate(filters.EndDate); err != nil {
		return c.HTML(http.StatusBadRequest, `<div class="error-message">Invalid end date</div>`)
	}

	result, err := h.api.AdminReport(c.Request().Context(), filters)
	if err != nil {
		return c.HTML(http.StatusBadGateway, reportErrorPartial(err, "Failed to generate report"))
	}

	return c.Render(http.StatusOK, "report_results", view.TemplateData{
		Data: struct {
			Result  *models.ReportResult
			Filters models.ReportFilters
		}{result, filters},
	})
}

// ExportReport proxies a server-side export and streams it as a download with
// the deterministic filename pattern. Displayed state is not touched.
func (h *Handler) ExportReport(c echo.Context) error {
	filters := filtersFromValues(c.QueryParams(), time.Now())

	format := c.QueryParam("format")
	if format != "csv" && format != "pdf" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid export format")
	}

	export, err := h.api.ExportReport(c.Request().Context(), filters, format)
	if err != nil {
		return c.HTML(http.StatusBadGateway, reportErrorPartial(err, "Failed to export report"))
	}

	contentType := export.ContentType
	if contentType == "" {
		if format == "csv" {
			contentType = "text/csv"
		} else {
			contentType = "application/pdf"
		}
	}

	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", filters.ExportFilename(format)))
	return c.Blob(http.StatusOK, contentType, export.Data)
}

// ExportReportXLSX builds a spreadsheet from a fresh report fetch and streams
// it as a download. Console-side counterpart to the backend csv/pdf exports.
func (h *Handler) ExportReportXLSX(c echo.Context) error {
	filters := filtersFromValues(c.QueryParams(), time.Now())

	result, err := h.api.AdminReport(c.Request().Context(), filters)
	if err != nil {
		return c.HTML(http.StatusBadGateway, reportErrorPartial(err, "Failed to export report"))
	}

	c.Response().Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", filters.ExportFilename("xlsx")))
	c.Response().WriteHeader(http.StatusOK)
	return services.WriteReportXLSX(c.Response().Writer, result, filters)
}

// reportErrorPartial surfaces a structured backend error verbatim and
// substitutes a generic connectivity message otherwise.
func reportErrorPartial(err error, fallback string) string {
	if apiErr, ok := err.(*services.APIError); ok && apiErr.Message != "" {
		return `<div class="error-message">` + template.HTMLEscapeString(apiErr.Message) + `</div>`
	}
	return `<div class="error-message">Failed to connect to server. ` + fallback + `.</div>`
}
