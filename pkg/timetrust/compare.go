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

// Compare measures the absolute offset between a device clock reading and
// a reference reading and judges it against a threshold. Both times are
// normalized to UTC before comparison so local timezone offsets can never
// corrupt the difference.
//
// Compare is pure: no I/O, no error conditions, symmetric in its two time
// arguments. The threshold boundary is inclusive.
func Compare(device, reference time.Time, threshold time.Duration) TimeSyncResult {
	diff := device.UTC().Sub(reference.UTC())
	if diff < 0 {
		diff = -diff
	}

	return TimeSyncResult{
		DeviceTime:    device,
		ReferenceTime: reference.UTC(),
		Difference:    diff,
		Threshold:     threshold,
		Synchronized:  diff <= threshold,
	}
}
