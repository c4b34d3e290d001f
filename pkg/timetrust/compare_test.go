// Zaparoo TimeTrust
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo TimeTrust.
//
// Zaparoo TimeTrust is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo TimeTrust is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo TimeTrust.  If not, see <http://www.gnu.org/licenses/>.

package timetrust

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		device    time.Time
		reference time.Time
		threshold time.Duration
		wantDiff  time.Duration
		wantSync  bool
	}{
		{
			name:      "identical times are synchronized",
			device:    base,
			reference: base,
			threshold: 30 * time.Second,
			wantDiff:  0,
			wantSync:  true,
		},
		{
			name:      "difference within threshold",
			device:    base.Add(10 * time.Second),
			reference: base,
			threshold: 30 * time.Second,
			wantDiff:  10 * time.Second,
			wantSync:  true,
		},
		{
			name:      "difference exactly at threshold is synchronized",
			device:    base.Add(30 * time.Second),
			reference: base,
			threshold: 30 * time.Second,
			wantDiff:  30 * time.Second,
			wantSync:  true,
		},
		{
			name:      "difference one unit past threshold is not synchronized",
			device:    base.Add(30*time.Second + time.Millisecond),
			reference: base,
			threshold: 30 * time.Second,
			wantDiff:  30*time.Second + time.Millisecond,
			wantSync:  false,
		},
		{
			name:      "device behind reference uses absolute difference",
			device:    base.Add(-45 * time.Second),
			reference: base,
			threshold: 30 * time.Second,
			wantDiff:  45 * time.Second,
			wantSync:  false,
		},
		{
			name:      "zero threshold only accepts equal times",
			device:    base.Add(time.Millisecond),
			reference: base,
			threshold: 0,
			wantDiff:  time.Millisecond,
			wantSync:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Compare(tt.device, tt.reference, tt.threshold)
			assert.Equal(t, tt.wantDiff, got.Difference)
			assert.Equal(t, tt.wantSync, got.Synchronized)
			assert.Equal(t, tt.threshold, got.Threshold)
			assert.Equal(t, tt.device, got.DeviceTime)
			assert.Equal(t, tt.reference.UTC(), got.ReferenceTime)
		})
	}
}

func TestCompareNormalizesTimezones(t *testing.T) {
	t.Parallel()

	// The same instant expressed in a non-UTC zone must compare equal to
	// its UTC form, regardless of the zone offset.
	zone := time.FixedZone("UTC+5", 5*60*60)
	instant := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	local := instant.In(zone)

	got := Compare(local, instant, 0)
	assert.Equal(t, time.Duration(0), got.Difference)
	assert.True(t, got.Synchronized)
	assert.Equal(t, instant, got.ReferenceTime)
}

func TestCompareSymmetry(t *testing.T) {
	t.Parallel()

	a := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	b := a.Add(42 * time.Second)
	threshold := 30 * time.Second

	forward := Compare(a, b, threshold)
	backward := Compare(b, a, threshold)

	assert.Equal(t, forward.Difference, backward.Difference)
	assert.Equal(t, forward.Synchronized, backward.Synchronized)
}
