// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareIntervals(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "numeric less", a: "1", b: "3", want: -1},
		{name: "numeric greater", a: "240", b: "60", want: 1},
		{name: "numeric equal", a: "15", b: "15", want: 0},
		{name: "numeric before day", a: "240", b: "D", want: -1},
		{name: "day before week", a: "D", b: "W", want: -1},
		{name: "week before month", a: "W", b: "M", want: -1},
		{name: "month after numeric", a: "M", b: "1", want: 1},
		{name: "unknown sorts last", a: "A", b: "M", want: 1},
		{name: "two digit vs three digit numerics", a: "30", b: "120", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareIntervals(tt.a, tt.b))
		})
	}
}

func TestSortIntervals(t *testing.T) {
	intervals := []ChartInterval{
		{Interval: "D"},
		{Interval: "15"},
		{Interval: "M"},
		{Interval: "60"},
		{Interval: "W"},
		{Interval: "240"},
	}

	SortIntervals(intervals)

	got := make([]string, 0, len(intervals))
	for _, c := range intervals {
		got = append(got, c.Interval)
	}
	assert.Equal(t, []string{"15", "60", "240", "D", "W", "M"}, got)
}

func TestCompleteIntervals_FullEnumeration(t *testing.T) {
	complete := CompleteIntervals(nil)

	require.Len(t, complete, len(AllIntervals))
	for i, c := range complete {
		assert.Equal(t, AllIntervals[i], c.Interval)
		// labels absent from storage come back explicitly hidden
		require.NotNil(t, c.Visible)
		assert.False(t, *c.Visible)
	}
}

func TestCompleteIntervals_KeepsStoredVisibility(t *testing.T) {
	shown := true
	hidden := false
	stored := []ChartInterval{
		{Interval: "60", Visible: &shown},
		{Interval: "D"},
		{Interval: "M", Visible: &hidden},
	}

	complete := CompleteIntervals(stored)

	byLabel := make(map[string]ChartInterval, len(complete))
	for _, c := range complete {
		byLabel[c.Interval] = c
	}

	assert.True(t, byLabel["60"].IsVisible())
	assert.True(t, byLabel["D"].IsVisible(), "nil Visible means shown")
	assert.False(t, byLabel["M"].IsVisible())
	assert.False(t, byLabel["1"].IsVisible(), "absent label is hidden")
}

func TestCompleteIntervals_ChronologicalOrderRegardlessOfStorage(t *testing.T) {
	stored := []ChartInterval{
		{Interval: "M"},
		{Interval: "1"},
		{Interval: "W"},
	}

	complete := CompleteIntervals(stored)

	got := make([]string, 0, len(complete))
	for _, c := range complete {
		got = append(got, c.Interval)
	}
	assert.Equal(t, AllIntervals, got)
}

func TestCompleteIntervals_FirstDuplicateWins(t *testing.T) {
	hidden := false
	stored := []ChartInterval{
		{Interval: "60", Visible: &hidden},
		{Interval: "60"},
	}

	complete := CompleteIntervals(stored)

	for _, c := range complete {
		if c.Interval == "60" {
			assert.False(t, c.IsVisible())
		}
	}
}

func TestVisibleIntervals(t *testing.T) {
	hidden := false
	intervals := []ChartInterval{
		{Interval: "15"},
		{Interval: "60", Visible: &hidden},
		{Interval: "D"},
	}

	visible := VisibleIntervals(intervals)

	require.Len(t, visible, 2)
	assert.Equal(t, "15", visible[0].Interval)
	assert.Equal(t, "D", visible[1].Interval)
}

func TestKnownInterval(t *testing.T) {
	for _, label := range AllIntervals {
		assert.True(t, KnownInterval(label), label)
	}
	assert.False(t, KnownInterval("42"))
	assert.False(t, KnownInterval(""))
	assert.False(t, KnownInterval("d"))
}
