package server

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-db-warden/batch"
	"github.com/MKhiriev/go-db-warden/locator"
	"github.com/MKhiriev/go-db-warden/manager"
)

var errorStatusMap = map[error]int{
	manager.ErrWrongState:        http.StatusConflict,
	manager.ErrNotSupported:      http.StatusNotImplemented,
	manager.ErrVersionOutOfRange: http.StatusBadRequest,

	manager.ErrUpgradeFailed:  http.StatusInternalServerError,
	manager.ErrUpgradeStalled: http.StatusInternalServerError,
	manager.ErrBackupFailed:   http.StatusInternalServerError,
	manager.ErrRestoreFailed:  http.StatusInternalServerError,
	manager.ErrCleanupFailed:  http.StatusInternalServerError,

	batch.ErrConflictingTransactionRequirement: http.StatusBadRequest,
	batch.ErrConflictingIsolationLevel:         http.StatusBadRequest,

	locator.ErrNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
