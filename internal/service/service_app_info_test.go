// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-chart-board/internal/config"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", svc.GetAppVersion(testContext()))
}

func TestNewAppInfoService_MissingVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
