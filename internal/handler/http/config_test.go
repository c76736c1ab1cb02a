// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-chart-board/internal/app"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/mock"
	"github.com/MKhiriev/go-chart-board/internal/service"
	"github.com/MKhiriev/go-chart-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*httptest.Server, *mock.MockDocumentService, *mock.MockAppInfoService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	documents := mock.NewMockDocumentService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	handler := NewHandler(&service.Services{
		DocumentService: documents,
		AppInfoService:  appInfo,
	}, logger.Nop())

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv, documents, appInfo
}

func doRequest(t *testing.T, method, url string, body []byte) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(raw)
}

func TestHandler_GetConfig(t *testing.T) {
	srv, documents, _ := newTestServer(t)

	stored := models.ConfigDocument{
		Theme:   models.ThemeLight,
		Symbols: []models.Symbol{{Coin: "BTC", Ticker: "BYBIT:BTCUSDT"}},
	}
	documents.EXPECT().GetDocument(gomock.Any()).Return(stored, nil)

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/api/config", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var doc models.ConfigDocument
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	assert.Equal(t, stored, doc)
}

func TestHandler_GetConfig_ServiceFailure(t *testing.T) {
	srv, documents, _ := newTestServer(t)

	documents.EXPECT().GetDocument(gomock.Any()).Return(models.ConfigDocument{}, errors.New("load document: boom"))

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/api/config", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, app.MsgErrorLoadingConfig)
}

func TestHandler_UpdateConfig(t *testing.T) {
	srv, documents, _ := newTestServer(t)

	sent := models.ConfigDocument{
		Theme:  models.ThemeDark,
		Charts: []models.ChartInterval{{Interval: "60"}},
	}
	documents.EXPECT().
		ReplaceDocument(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, doc models.ConfigDocument) (models.ConfigDocument, error) {
			assert.Equal(t, sent.Charts, doc.Charts)
			return doc, nil
		})

	payload, err := json.Marshal(sent)
	require.NoError(t, err)

	resp, body := doRequest(t, http.MethodPut, srv.URL+"/api/config", payload)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var saved models.ConfigDocument
	require.NoError(t, json.Unmarshal([]byte(body), &saved))
	assert.Equal(t, sent.Charts, saved.Charts)
}

func TestHandler_UpdateConfig_MalformedBody(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, body := doRequest(t, http.MethodPut, srv.URL+"/api/config", []byte(`{broken`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, app.MsgInvalidDataProvided)
}

func TestHandler_UpdateConfig_DuplicateTicker(t *testing.T) {
	srv, documents, _ := newTestServer(t)

	documents.EXPECT().
		ReplaceDocument(gomock.Any(), gomock.Any()).
		Return(models.ConfigDocument{}, service.ErrDuplicateSymbol)

	resp, body := doRequest(t, http.MethodPut, srv.URL+"/api/config", []byte(`{}`))

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, app.MsgDuplicateTicker)
}

func TestHandler_UpdateConfig_InvalidDocument(t *testing.T) {
	srv, documents, _ := newTestServer(t)

	documents.EXPECT().
		ReplaceDocument(gomock.Any(), gomock.Any()).
		Return(models.ConfigDocument{}, service.ErrInvalidDocument)

	resp, _ := doRequest(t, http.MethodPut, srv.URL+"/api/config", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Health(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/api/health", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestHandler_GetServerVersion(t *testing.T) {
	srv, _, appInfo := newTestServer(t)

	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/api/version/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "v1.2.3", body)
}

func TestHandler_UnknownMethodGets404(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, _ := doRequest(t, http.MethodDelete, srv.URL+"/api/config", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_CORSPreflight(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/config", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPut)
}
