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

import "time"

// DetectionMethod tags how a clock observation was obtained.
type DetectionMethod string

const (
	// DetectionNetwork means the observation was corroborated against a
	// network reference.
	DetectionNetwork DetectionMethod = "network"
	// DetectionOffline means the observation came from the device alone.
	DetectionOffline DetectionMethod = "offline"
)

// Observation is a single local clock reading paired with how it was
// obtained and the auto-time setting state at read time.
type Observation struct {
	// ReadAt is the local clock value at observation time.
	ReadAt time.Time
	// Method tags how the observation was obtained.
	Method DetectionMethod
	// AutoTimeEnabled is the auto-time setting state at read time.
	AutoTimeEnabled bool
}

// Classify compares two clock observations and reports whether the date
// component, the time-of-day component, or both changed between them.
// The components are compared independently: a clock set back an hour on
// the same day is a time-only change, a clock moved to yesterday at the
// same wall time is a date-only change.
//
// The result carries the current observation's detection method and
// auto-time state. Classify is pure and never fails.
func Classify(previous, current Observation) DateTimeChangeResult {
	prev := previous.ReadAt
	cur := current.ReadAt

	py, pm, pd := prev.Date()
	cy, cm, cd := cur.Date()
	dateChanged := py != cy || pm != cm || pd != cd

	ph, pmin, ps := prev.Clock()
	ch, cmin, cs := cur.Clock()
	timeChanged := ph != ch || pmin != cmin || ps != cs

	return NewDateTimeChangeResult(
		dateChanged, timeChanged,
		current.AutoTimeEnabled,
		string(current.Method),
	)
}
