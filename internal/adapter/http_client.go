package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chart-board/internal/config"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/utils"
	"github.com/MKhiriev/go-chart-board/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs a [ServerAdapter] over the backend's REST
// API. Missing address and timeout fall back to localhost defaults.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) ServerAdapter {
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := utils.NewHTTPClient().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli, logger: log}
}

func (h *httpServerAdapter) GetConfig(ctx context.Context) (models.ConfigDocument, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/api/config")
	if err != nil {
		return models.ConfigDocument{}, fmt.Errorf("get config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigDocument{}, err
	}

	var doc models.ConfigDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.ConfigDocument{}, fmt.Errorf("get config decode: %w", err)
	}

	return doc, nil
}

func (h *httpServerAdapter) PutConfig(ctx context.Context, doc models.ConfigDocument) (models.ConfigDocument, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Put("/api/config")
	if err != nil {
		return models.ConfigDocument{}, fmt.Errorf("put config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigDocument{}, err
	}

	var saved models.ConfigDocument
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.ConfigDocument{}, fmt.Errorf("put config decode: %w", err)
	}

	return saved, nil
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}
