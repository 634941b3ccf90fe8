// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manager

import "github.com/MKhiriev/go-db-warden/models"

// DeriveState maps a raw detection result and the configured version range
// into the canonical lifecycle state. It is a pure, total function: every
// input combination yields exactly one of the nine states.
//
// Rules, in order:
//  1. Failed detection, a negative raw version, or an explicit
//     DamagedOrInvalid raw state always yield (DamagedOrInvalid, -1).
//  2. A non-nil raw state is authoritative and passed through together with
//     the raw version.
//  3. With upgrade support the version is positioned against the supported
//     range: 0 is New, below minimum is TooOld, inside the range is
//     ReadyOld, exactly the maximum is ReadyNew, above it is TooNew.
//  4. Without upgrade support 0 is Unavailable (nothing can create the
//     database) and anything else is ReadyUnknown (usable, but the version
//     cannot be related to any range).
func DeriveState(detected bool, rawState *models.DbState, rawVersion, minVersion, maxVersion int, supportsUpgrade bool) (models.DbState, int) {
	if !detected || rawVersion < 0 || (rawState != nil && *rawState == models.StateDamagedOrInvalid) {
		return models.StateDamagedOrInvalid, -1
	}

	if rawState != nil {
		return *rawState, rawVersion
	}

	if supportsUpgrade {
		switch {
		case rawVersion == models.VersionNotCreated:
			return models.StateNew, rawVersion
		case rawVersion < minVersion:
			return models.StateTooOld, rawVersion
		case rawVersion >= minVersion && rawVersion < maxVersion:
			return models.StateReadyOld, rawVersion
		case rawVersion == maxVersion:
			return models.StateReadyNew, rawVersion
		case rawVersion > maxVersion:
			return models.StateTooNew, rawVersion
		default:
			return models.StateReadyUnknown, rawVersion
		}
	}

	if rawVersion == models.VersionNotCreated {
		return models.StateUnavailable, rawVersion
	}
	return models.StateReadyUnknown, rawVersion
}
