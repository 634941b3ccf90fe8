package server

import (
	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/manager"
)

// Handler serves the admin API endpoints for one managed database.
type Handler struct {
	manager  *manager.Manager
	upgrader manager.Upgrader

	// separator splits script batches into commands when the API resolves
	// them; it matches the one the locator was configured with.
	separator  string
	appVersion string

	logger *logger.Logger
}

// NewHandler creates the admin API handler. The upgrader may be nil when the
// manager has no upgrade support; POST /api/upgrade then reports not
// supported.
func NewHandler(m *manager.Manager, upgrader manager.Upgrader, separator, appVersion string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		manager:    m,
		upgrader:   upgrader,
		separator:  separator,
		appVersion: appVersion,
		logger:     logger,
	}
}
