// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-db-warden/internal/config"
	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) AdminClient {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}

	c, err := NewHTTPAdminClient(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return c
}

// ── Status ──────────────────────────────────────────────────────────────────

func TestStatus_Success(t *testing.T) {
	want := models.StatusResponse{AppVersion: "1.0.0", State: "ReadyOld", Version: 2}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/status", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Batches ─────────────────────────────────────────────────────────────────

func TestBatches_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/batches", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.BatchListResponse{
			Batches: []string{"cleanup", "upgrade_1_to_2"},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Batches(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"cleanup", "upgrade_1_to_2"}, got)
}

func TestBatch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "batch not found"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Batch(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "batch not found")
}

// ── Upgrade ─────────────────────────────────────────────────────────────────

func TestUpgrade_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upgrade", r.URL.Path)

		var req models.UpgradeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 3, req.TargetVersion)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StatusResponse{State: "ReadyNew", Version: 3})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Upgrade(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "ReadyNew", got.State)
	assert.Equal(t, 3, got.Version)
}

func TestUpgrade_WrongState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "upgrade in state DamagedOrInvalid"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Upgrade(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongState)
}

// ── Cleanup ─────────────────────────────────────────────────────────────────

func TestCleanup_NotSupported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "cleanup: operation not supported by this manager"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Cleanup(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSupported)
}

// ── Backup ──────────────────────────────────────────────────────────────────

func TestBackup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/backup", r.URL.Path)

		var req models.BackupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "/backups/warden.bak", req.Target)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StatusResponse{State: "ReadyUnknown", Version: 2})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Backup(context.Background(), "/backups/warden.bak")

	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
}

// ── Base URL normalisation ──────────────────────────────────────────────────

func TestNewHTTPAdminClient_AddressWithoutScheme(t *testing.T) {
	_, err := NewHTTPAdminClient(config.ClientAdapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	assert.NoError(t, err)
}

func TestNewHTTPAdminClient_EmptyAddress(t *testing.T) {
	_, err := NewHTTPAdminClient(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}
