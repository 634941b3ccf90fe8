// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-db-warden/batch"
	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/locator"
	"github.com/MKhiriev/go-db-warden/manager"
	"github.com/MKhiriev/go-db-warden/models"
)

// CleanupBatch is the locator name of the batch that removes all managed
// objects from the database.
const CleanupBatch = "cleanup"

// ScriptCleanup removes every managed object by executing the locator batch
// named "cleanup" and then dropping the version table, which returns the
// database to the not-created state. A missing cleanup batch is fine: only
// the version table is dropped then.
type ScriptCleanup struct {
	separator string
	log       *logger.Logger
}

// NewScriptCleanup constructs a ScriptCleanup resolving the cleanup batch
// with the given separator.
func NewScriptCleanup(separator string, log *logger.Logger) *ScriptCleanup {
	log.Debug().Msg("creating script cleanup processor")
	return &ScriptCleanup{
		separator: separator,
		log:       log,
	}
}

// Cleanup implements [manager.CleanupProcessor].
func (c *ScriptCleanup) Cleanup(ctx context.Context, mgr *manager.Manager) bool {
	b, err := mgr.GetBatch(CleanupBatch, c.separator)
	switch {
	case errors.Is(err, locator.ErrNotFound):
		c.log.Debug().Msg("no cleanup batch configured, dropping version tracking only")
		b = batchWithDropOnly()
	case err != nil:
		c.log.Err(err).Msg("cleanup batch not resolvable")
		return false
	default:
		b.AddCallback(dropVersionTracking(), models.TxDontCare)
	}

	if err := mgr.ExecuteBatch(ctx, b, false, false); err != nil {
		c.log.Err(err).Msg("cleanup batch failed")
		return false
	}

	c.log.Info().Msg("cleanup applied")
	return true
}

func batchWithDropOnly() *batch.Batch {
	b := batch.New()
	b.AddCallback(dropVersionTracking(), models.TxDontCare)
	return b
}
