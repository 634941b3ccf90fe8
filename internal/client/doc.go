// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the HTTP client for the warden admin API.
//
// It maps API error statuses back to sentinel errors so callers can react to
// wrong-state and unsupported-operation conditions without parsing bodies.
package client
