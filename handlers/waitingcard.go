package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"id_console_app_go/models"
	"id_console_app_go/services"

	"github.com/labstack/echo/v4"
)

// DownloadWaitingCard generates the acknowledgement card PDF and streams it
// as a download. Archival and email are best effort and never block or fail
// the download.
func (h *Handler) DownloadWaitingCard(c echo.Context) error {
	data := models.WaitingCardData{
		ApplicationNumber: c.QueryParam("application_number"),
		FullName:          c.QueryParam("full_name"),
		District:          c.QueryParam("district"),
		ApplicationType:   c.QueryParam("application_type"),
		OfficerName:       c.QueryParam("officer_name"),
		Date:              c.QueryParam("date"),
	}
	if data.Date == "" {
		data.Date = time.Now().Format("2006-01-02")
	}

	filename, pdf, err := services.GenerateWaitingCard(c.Request().Context(), data)
	if err != nil {
		c.Logger().Errorf("Failed to generate waiting card for %s: %v", data.ApplicationNumber, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate acknowledgement card")
	}

	// Fire-and-forget side effects; the request does not wait on them
	email := c.QueryParam("email")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := h.archive.Store(ctx, filename, pdf); err != nil {
			log.Printf("[WARNING] Failed to archive waiting card %s: %v", filename, err)
		}
		if email != "" {
			if err := services.SendWaitingCardEmail(h.cfg, email, data.FullName, filename, pdf); err != nil {
				log.Printf("[WARNING] Failed to email waiting card %s: %v", filename, err)
			}
		}
	}()

	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
