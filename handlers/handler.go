package handlers

import (
	"id_console_app_go/config"
	"id_console_app_go/services"
)

// Handler carries the console's injected capabilities. The registry client is
// an interface so tests run against a fake backend.
type Handler struct {
	cfg     *config.Config
	api     services.RegistryClient
	archive services.CardArchive
}

func New(cfg *config.Config, api services.RegistryClient, archive services.CardArchive) *Handler {
	return &Handler{cfg: cfg, api: api, archive: archive}
}
