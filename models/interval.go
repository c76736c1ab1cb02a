// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strconv"
)

// ChartInterval is one chart granularity to render for every visible symbol.
type ChartInterval struct {
	// Interval is the granularity label: a minute count ("1".."240") or one
	// of the letter codes "D", "W", "M".
	Interval string `json:"interval"`

	// Visible controls whether a chart is rendered for this granularity.
	// A nil value means visible.
	Visible *bool `json:"visible,omitempty"`
}

// IsVisible reports whether a chart should be rendered for this interval.
func (c ChartInterval) IsVisible() bool {
	return c.Visible == nil || *c.Visible
}

// AllIntervals is the fixed enumeration of supported interval labels, in
// chronological order.
var AllIntervals = []string{"1", "3", "5", "15", "30", "60", "120", "180", "240", "D", "W", "M"}

// KnownInterval reports whether label is one of the supported interval codes.
func KnownInterval(label string) bool {
	for _, v := range AllIntervals {
		if v == label {
			return true
		}
	}
	return false
}

// intervalMinutes maps an interval label to its duration in minutes.
// Unknown labels sort after everything else.
func intervalMinutes(label string) int {
	switch label {
	case "D":
		return 24 * 60
	case "W":
		return 7 * 24 * 60
	case "M":
		return 30 * 24 * 60
	}
	if n, err := strconv.Atoi(label); err == nil {
		return n
	}
	return 1 << 30
}

// CompareIntervals orders two interval labels by chronological granularity:
// numeric labels compare as minutes, and "D" < "W" < "M" sort after every
// numeric label. The return value follows the cmp convention (-1, 0, +1).
func CompareIntervals(a, b string) int {
	am, bm := intervalMinutes(a), intervalMinutes(b)
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	default:
		return 0
	}
}

// SortIntervals sorts entries in place from smallest to largest granularity.
func SortIntervals(intervals []ChartInterval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		return CompareIntervals(intervals[i].Interval, intervals[j].Interval) < 0
	})
}

// CompleteIntervals generates one entry per supported interval label, in
// chronological order, regardless of storage order. Entries present in stored
// keep their visibility; labels absent from storage get an explicit
// visible:false entry. Used by the configuration-editing surface so the user
// always sees the full enumeration smallest-to-largest.
func CompleteIntervals(stored []ChartInterval) []ChartInterval {
	byLabel := make(map[string]ChartInterval, len(stored))
	for _, c := range stored {
		if _, ok := byLabel[c.Interval]; !ok {
			byLabel[c.Interval] = c
		}
	}

	complete := make([]ChartInterval, 0, len(AllIntervals))
	for _, label := range AllIntervals {
		if c, ok := byLabel[label]; ok {
			complete = append(complete, c)
			continue
		}
		visible := false
		complete = append(complete, ChartInterval{Interval: label, Visible: &visible})
	}

	return complete
}

// VisibleIntervals returns the render-ready subset of intervals, preserving order.
func VisibleIntervals(intervals []ChartInterval) []ChartInterval {
	visible := make([]ChartInterval, 0, len(intervals))
	for _, c := range intervals {
		if c.IsVisible() {
			visible = append(visible, c)
		}
	}
	return visible
}
