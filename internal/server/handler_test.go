package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/internal/mock"
	"github.com/MKhiriev/go-db-warden/locator"
	"github.com/MKhiriev/go-db-warden/manager"
	"github.com/MKhiriev/go-db-warden/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helper ----

func newTestManager(t *testing.T, loc locator.Locator, version int) *manager.Manager {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mock.NewMockConnectionProvider(ctrl)
	detector := mock.NewMockDetector(ctrl)
	detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(true, nil, version).AnyTimes()

	m := manager.New(provider, detector, loc, zerolog.Nop())
	m.Initialize(context.Background())
	return m
}

func newTestRouter(t *testing.T, m *manager.Manager, upgrader manager.Upgrader) http.Handler {
	t.Helper()
	h := NewHandler(m, upgrader, locator.DefaultSeparator, "test-version", logger.Nop())
	return h.Init()
}

// ---- GET /api/status ----

func TestGetStatus(t *testing.T) {
	m := newTestManager(t, locator.NewMemory(), 3)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var status models.StatusResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&status))
	assert.Equal(t, "test-version", status.AppVersion)
	assert.Equal(t, "ReadyUnknown", status.State)
	assert.Equal(t, 3, status.Version)
	assert.Equal(t, "ReadyUnknown", status.InitialState)
	assert.Equal(t, 3, status.InitialVersion)
}

// ---- GET /api/batches ----

func TestListBatches(t *testing.T) {
	loc := locator.NewMemory().
		AddScript("upgrade_1_to_2", "ALTER TABLE notes ADD body TEXT").
		AddScript("cleanup", "DROP TABLE notes")
	m := newTestManager(t, loc, 1)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/batches", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var list models.BatchListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&list))
	assert.Equal(t, []string{"cleanup", "upgrade_1_to_2"}, list.Batches)
}

// ---- GET /api/batches/{name} ----

func TestGetBatch(t *testing.T) {
	loc := locator.NewMemory().
		AddScript("setup", "CREATE TABLE notes (id INT)\nGO\nCREATE INDEX notes_id ON notes (id)")
	m := newTestManager(t, loc, 1)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/batches/setup", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.BatchResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "setup", resp.Name)
	require.Len(t, resp.Commands, 2)
	assert.True(t, resp.Commands[0].IsScript)
	assert.Equal(t, "CREATE TABLE notes (id INT)", resp.Commands[0].Script)
	assert.Equal(t, "DontCare", resp.Commands[0].TransactionRequirement)
	assert.Equal(t, "NonQuery", resp.Commands[0].ExecutionType)
}

func TestGetBatch_NotFound(t *testing.T) {
	m := newTestManager(t, locator.NewMemory(), 1)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/batches/missing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Error)
}

// ---- POST /api/upgrade ----

func TestUpgrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockConnectionProvider(ctrl)
	detector := mock.NewMockDetector(ctrl)
	upgrader := mock.NewMockUpgrader(ctrl)

	upgrader.EXPECT().MinVersion(gomock.Any()).Return(1).AnyTimes()
	upgrader.EXPECT().MaxVersion(gomock.Any()).Return(2).AnyTimes()
	gomock.InOrder(
		detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(true, nil, 1),
		upgrader.EXPECT().Upgrade(gomock.Any(), gomock.Any(), 1).Return(true),
		detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(true, nil, 2),
	)

	m := manager.New(provider, detector, locator.NewMemory(), zerolog.Nop()).WithUpgrader(upgrader)
	m.Initialize(context.Background())
	router := newTestRouter(t, m, upgrader)

	// empty body upgrades to the newest supported version
	req := httptest.NewRequest(http.MethodPost, "/api/upgrade", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var status models.StatusResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&status))
	assert.Equal(t, 2, status.Version)
	assert.Equal(t, "ReadyNew", status.State)
}

func TestUpgrade_NotSupported(t *testing.T) {
	m := newTestManager(t, locator.NewMemory(), 1)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/upgrade", strings.NewReader(`{"target_version": 2}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

func TestUpgrade_InvalidJSON(t *testing.T) {
	m := newTestManager(t, locator.NewMemory(), 1)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/upgrade", strings.NewReader(`{broken`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- POST /api/cleanup ----

func TestCleanup_NotSupported(t *testing.T) {
	m := newTestManager(t, locator.NewMemory(), 1)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cleanup", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

// ---- POST /api/backup ----

func TestBackup_TargetRequired(t *testing.T) {
	m := newTestManager(t, locator.NewMemory(), 1)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/backup", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBackup_NotSupported(t *testing.T) {
	m := newTestManager(t, locator.NewMemory(), 1)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/backup", strings.NewReader(`{"target": "/tmp/out.bak"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

// ---- X-Trace-ID is always present in the response ----

func TestTraceIDHeader_AlwaysSet(t *testing.T) {
	m := newTestManager(t, locator.NewMemory(), 1)
	router := newTestRouter(t, m, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestTraceIDHeader_EchoedFromRequest(t *testing.T) {
	m := newTestManager(t, locator.NewMemory(), 1)
	router := newTestRouter(t, m, nil)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
