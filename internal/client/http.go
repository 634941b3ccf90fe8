package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-db-warden/internal/config"
	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/models"
	"github.com/go-resty/resty/v2"
)

type httpAdminClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPAdminClient constructs an HTTP/REST implementation of [AdminClient].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPAdminClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (AdminClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpAdminClient{client: cli, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Status implements [AdminClient]. It GETs /api/status and decodes the
// status payload.
func (h *httpAdminClient) Status(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/status")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return status, nil
}

// Batches implements [AdminClient]. It GETs /api/batches and returns the
// batch name list.
func (h *httpAdminClient) Batches(ctx context.Context) ([]string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/batches")
	if err != nil {
		return nil, fmt.Errorf("batches request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.BatchListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode batches response: %w", err)
	}

	return list.Batches, nil
}

// Batch implements [AdminClient]. It GETs /api/batches/{name} and decodes
// the batch description. Returns [ErrNotFound] (wrapped) when the batch does
// not exist.
func (h *httpAdminClient) Batch(ctx context.Context, name string) (models.BatchResponse, error) {
	var batch models.BatchResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&batch).
		Get("/api/batches/" + url.PathEscape(name))
	if err != nil {
		return models.BatchResponse{}, fmt.Errorf("batch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchResponse{}, err
	}

	return batch, nil
}

// Upgrade implements [AdminClient]. It POSTs the target version to
// /api/upgrade and returns the status after the upgrade. Returns
// [ErrWrongState] (wrapped) when the database is not in an upgradeable state.
func (h *httpAdminClient) Upgrade(ctx context.Context, targetVersion int) (models.StatusResponse, error) {
	return h.postOperation(ctx, "/api/upgrade", models.UpgradeRequest{TargetVersion: targetVersion})
}

// Cleanup implements [AdminClient]. It POSTs to /api/cleanup and returns the
// status after the cleanup.
func (h *httpAdminClient) Cleanup(ctx context.Context) (models.StatusResponse, error) {
	return h.postOperation(ctx, "/api/cleanup", nil)
}

// Backup implements [AdminClient]. It POSTs the backup target to /api/backup
// and returns the status after the backup.
func (h *httpAdminClient) Backup(ctx context.Context, target string) (models.StatusResponse, error) {
	return h.postOperation(ctx, "/api/backup", models.BackupRequest{Target: target})
}

// Restore implements [AdminClient]. It POSTs the backup source to
// /api/restore and returns the status after the restore.
func (h *httpAdminClient) Restore(ctx context.Context, source string) (models.StatusResponse, error) {
	return h.postOperation(ctx, "/api/restore", models.RestoreRequest{Source: source})
}

func (h *httpAdminClient) postOperation(ctx context.Context, path string, body any) (models.StatusResponse, error) {
	var status models.StatusResponse

	req := h.client.R().
		SetContext(ctx).
		SetResult(&status)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return status, nil
}
