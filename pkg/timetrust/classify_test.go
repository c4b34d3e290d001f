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

func TestClassify(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 14, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name            string
		previous        time.Time
		current         time.Time
		wantType        DateTimeChangeType
		wantDateChanged bool
		wantTimeChanged bool
	}{
		{
			name:     "identical readings",
			previous: base,
			current:  base,
			wantType: ChangeNone,
		},
		{
			name:            "same day different wall time",
			previous:        base,
			current:         base.Add(-time.Hour),
			wantType:        ChangeTimeOnly,
			wantTimeChanged: true,
		},
		{
			name:            "previous day same wall time",
			previous:        base,
			current:         base.AddDate(0, 0, -1),
			wantType:        ChangeDateOnly,
			wantDateChanged: true,
		},
		{
			name:            "different day and wall time",
			previous:        base,
			current:         base.AddDate(0, 0, 3).Add(2 * time.Hour),
			wantType:        ChangeDateAndTime,
			wantDateChanged: true,
			wantTimeChanged: true,
		},
		{
			name:            "month change only",
			previous:        base,
			current:         base.AddDate(0, 1, 0),
			wantType:        ChangeDateOnly,
			wantDateChanged: true,
		},
		{
			name:            "second-level wall time change",
			previous:        base,
			current:         base.Add(time.Second),
			wantType:        ChangeTimeOnly,
			wantTimeChanged: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(
				Observation{ReadAt: tt.previous, Method: DetectionNetwork},
				Observation{ReadAt: tt.current, Method: DetectionNetwork},
			)

			assert.Equal(t, tt.wantType, got.ChangeType)
			assert.Equal(t, tt.wantDateChanged, got.DateChanged)
			assert.Equal(t, tt.wantTimeChanged, got.TimeChanged)
		})
	}
}

func TestClassifyCarriesCurrentObservation(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	got := Classify(
		Observation{ReadAt: base, Method: DetectionNetwork, AutoTimeEnabled: false},
		Observation{ReadAt: base.Add(time.Minute), Method: DetectionOffline, AutoTimeEnabled: true},
	)

	assert.Equal(t, string(DetectionOffline), got.DetectionMethod)
	assert.True(t, got.AutoDateTimeEnabled)
}
