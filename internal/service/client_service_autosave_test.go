// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAutosaveJob_DebouncesBurst(t *testing.T) {
	job := NewAutosaveJob(20 * time.Millisecond)
	defer job.Stop()

	var fired atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		job.Schedule(func() {
			fired.Add(1)
			last.Store(n)
		})
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(1), fired.Load(), "a burst of edits must collapse to one save")
	assert.Equal(t, int32(5), last.Load(), "only the last scheduled save fires")
}

func TestAutosaveJob_FiresAgainAfterQuietPeriod(t *testing.T) {
	job := NewAutosaveJob(10 * time.Millisecond)
	defer job.Stop()

	var fired atomic.Int32

	job.Schedule(func() { fired.Add(1) })
	time.Sleep(50 * time.Millisecond)
	job.Schedule(func() { fired.Add(1) })
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(2), fired.Load())
}

func TestAutosaveJob_StopCancelsWithoutFlushing(t *testing.T) {
	job := NewAutosaveJob(20 * time.Millisecond)

	var fired atomic.Int32
	job.Schedule(func() { fired.Add(1) })
	job.Stop()

	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(0), fired.Load(), "stop must discard the pending save")
}

func TestAutosaveJob_CancelDropsPendingWithoutFlushing(t *testing.T) {
	job := NewAutosaveJob(20 * time.Millisecond)
	defer job.Stop()

	var fired atomic.Int32
	job.Schedule(func() { fired.Add(1) })
	job.Cancel()

	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(0), fired.Load(), "cancel must discard the pending save")
}

func TestAutosaveJob_UsableAfterCancel(t *testing.T) {
	job := NewAutosaveJob(10 * time.Millisecond)
	defer job.Stop()

	job.Schedule(func() {})
	job.Cancel()

	var fired atomic.Int32
	job.Schedule(func() { fired.Add(1) })

	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), fired.Load(), "a save scheduled after cancel must still fire")
}

func TestAutosaveJob_ScheduleAfterStopIsIgnored(t *testing.T) {
	job := NewAutosaveJob(10 * time.Millisecond)
	job.Stop()

	var fired atomic.Int32
	job.Schedule(func() { fired.Add(1) })

	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, int32(0), fired.Load())
}
