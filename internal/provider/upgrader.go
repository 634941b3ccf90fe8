// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/manager"
	"github.com/MKhiriev/go-db-warden/models"
)

// upgradeBatchName matches batch names of the form upgrade_<from>_to_<to>.
// Names are matched case-insensitively like every other batch name.
var upgradeBatchName = regexp.MustCompile(`(?i)^upgrade_(\d+)_to_(\d+)$`)

// ScriptUpgrader advances the database one version at a time by executing
// the locator batch named upgrade_<from>_to_<from+1>. After the batch it
// records the new version in the version table, inside the same run, so a
// transactional upgrade step either moves both schema and version or
// neither.
//
// The supported version range is read off the batch names the manager's
// locator exposes.
type ScriptUpgrader struct {
	separator   string
	placeholder sq.PlaceholderFormat
	log         *logger.Logger
}

// NewScriptUpgrader constructs a ScriptUpgrader. The separator is passed to
// the locator when resolving upgrade batches; the placeholder format must
// match the driver the manager connects with (sq.Dollar for PostgreSQL,
// sq.Question for SQLite).
func NewScriptUpgrader(separator string, placeholder sq.PlaceholderFormat, log *logger.Logger) *ScriptUpgrader {
	log.Debug().Msg("creating script upgrader")
	return &ScriptUpgrader{
		separator:   separator,
		placeholder: placeholder,
		log:         log,
	}
}

// MinVersion implements [manager.Upgrader]. It returns the smallest version
// any upgrade batch starts from, or 0 when no upgrade batches exist.
func (u *ScriptUpgrader) MinVersion(mgr *manager.Manager) int {
	minFrom, _, found := u.scanRange(mgr)
	if !found {
		return 0
	}
	return minFrom
}

// MaxVersion implements [manager.Upgrader]. It returns the largest version
// any upgrade batch produces, or 0 when no upgrade batches exist.
func (u *ScriptUpgrader) MaxVersion(mgr *manager.Manager) int {
	_, maxTo, found := u.scanRange(mgr)
	if !found {
		return 0
	}
	return maxTo
}

func (u *ScriptUpgrader) scanRange(mgr *manager.Manager) (minFrom, maxTo int, found bool) {
	for _, name := range mgr.GetBatchNames() {
		match := upgradeBatchName.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		from, _ := strconv.Atoi(match[1])
		to, _ := strconv.Atoi(match[2])
		if to != from+1 {
			u.log.Warn().Str("batch", name).Msg("ignoring upgrade batch that is not a single step")
			continue
		}

		if !found || from < minFrom {
			minFrom = from
		}
		if !found || to > maxTo {
			maxTo = to
		}
		found = true
	}
	return minFrom, maxTo, found
}

// Upgrade implements [manager.Upgrader].
func (u *ScriptUpgrader) Upgrade(ctx context.Context, mgr *manager.Manager, from int) bool {
	name := fmt.Sprintf("upgrade_%d_to_%d", from, from+1)

	b, err := mgr.GetBatch(name, u.separator)
	if err != nil {
		u.log.Err(err).Str("batch", name).Msg("upgrade batch not resolvable")
		return false
	}

	b.AddCallback(recordVersion(from+1, u.placeholder), models.TxDontCare)

	if err := mgr.ExecuteBatch(ctx, b, false, false); err != nil {
		u.log.Err(err).Str("batch", name).Msg("upgrade batch failed")
		return false
	}

	u.log.Info().Str("batch", name).Int("version", from+1).Msg("upgrade step applied")
	return true
}
