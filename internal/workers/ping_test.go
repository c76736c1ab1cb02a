// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/mock"
	"go.uber.org/mock/gomock"
)

func TestPingWorker_ProbesUntilStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)

	// initial probe plus at least one tick
	server.EXPECT().Ping(gomock.Any()).Return(nil).MinTimes(2)

	w := NewPingWorker(server, 10*time.Millisecond, logger.Nop())
	w.Run()

	time.Sleep(60 * time.Millisecond)
	w.Stop()
	time.Sleep(20 * time.Millisecond)
}

func TestPingWorker_UnreachableBackendKeepsLooping(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)

	server.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")).MinTimes(2)

	w := NewPingWorker(server, 10*time.Millisecond, logger.Nop())
	w.Run()

	time.Sleep(60 * time.Millisecond)
	w.Stop()
	time.Sleep(20 * time.Millisecond)
}

func TestPingWorker_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()

	w := NewPingWorker(server, 10*time.Millisecond, logger.Nop())
	w.Run()

	w.Stop()
	w.Stop()
	time.Sleep(20 * time.Millisecond)
}
