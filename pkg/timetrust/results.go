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
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AutoDateTimeStatus reports whether a device is believed to rely on
// automatic clock synchronization.
type AutoDateTimeStatus string

const (
	// AutoDateTimeOn means no manual override was detected.
	AutoDateTimeOn AutoDateTimeStatus = "on"
	// AutoDateTimeOff means a manual override is suspected or the
	// auto-time setting is confirmed disabled.
	AutoDateTimeOff AutoDateTimeStatus = "off"
)

// DateTimeChangeType classifies what part of the device clock was changed.
type DateTimeChangeType string

const (
	ChangeNone        DateTimeChangeType = "none"
	ChangeDateOnly    DateTimeChangeType = "date_only"
	ChangeTimeOnly    DateTimeChangeType = "time_only"
	ChangeDateAndTime DateTimeChangeType = "date_and_time"
)

// ParseDateTimeChangeType decodes a free-form change type identifier.
// Unrecognized values decode to ChangeNone. This is deliberately lenient:
// change type strings cross process boundaries from untrusted callers and
// must never crash the classifier.
func ParseDateTimeChangeType(s string) DateTimeChangeType {
	switch DateTimeChangeType(s) {
	case ChangeDateOnly, ChangeTimeOnly, ChangeDateAndTime, ChangeNone:
		return DateTimeChangeType(s)
	default:
		return ChangeNone
	}
}

// changeTypeFor derives the change type from the two component flags.
func changeTypeFor(dateChanged, timeChanged bool) DateTimeChangeType {
	switch {
	case dateChanged && timeChanged:
		return ChangeDateAndTime
	case dateChanged:
		return ChangeDateOnly
	case timeChanged:
		return ChangeTimeOnly
	default:
		return ChangeNone
	}
}

// TimeSyncResult is the outcome of a single device-vs-reference clock
// comparison. Values are immutable once constructed.
type TimeSyncResult struct {
	// DeviceTime is the local device clock reading used for the comparison.
	DeviceTime time.Time
	// ReferenceTime is the trusted reference reading, always UTC.
	ReferenceTime time.Time
	// ReferenceSource identifies where the reference came from, usually an
	// NTP server address.
	ReferenceSource string
	// Difference is the absolute device/reference offset. Never negative.
	Difference time.Duration
	// Threshold is the tolerance the comparison was made against.
	Threshold time.Duration
	// Synchronized is true when Difference <= Threshold. The boundary is
	// inclusive: a difference exactly equal to the threshold still counts
	// as synchronized.
	Synchronized bool
}

// DateTimeChangeResult describes a detected change to the device clock.
//
// Invariant: ChangeType is always consistent with the two component flags.
// ChangeDateAndTime iff both are set, ChangeNone iff neither is.
// Constructors enforce this; build results through them rather than with
// struct literals.
type DateTimeChangeResult struct {
	ChangeType          DateTimeChangeType `mapstructure:"change_type"`
	DetectionMethod     string             `mapstructure:"detection_method"`
	AutoDateTimeEnabled bool               `mapstructure:"auto_date_time_enabled"`
	DateChanged         bool               `mapstructure:"date_changed"`
	TimeChanged         bool               `mapstructure:"time_changed"`
}

// NewDateTimeChangeResult builds a change result from its component flags,
// deriving ChangeType so the consistency invariant holds.
func NewDateTimeChangeResult(
	dateChanged, timeChanged, autoEnabled bool,
	method string,
) DateTimeChangeResult {
	return DateTimeChangeResult{
		ChangeType:          changeTypeFor(dateChanged, timeChanged),
		DetectionMethod:     method,
		AutoDateTimeEnabled: autoEnabled,
		DateChanged:         dateChanged,
		TimeChanged:         timeChanged,
	}
}

// DateTimeChangeResultFromMap decodes a change result from an untyped map,
// such as one received over an IPC or serialization boundary. Decoding is
// lenient: unknown change types, missing keys and mistyped values all
// degrade to zero values instead of failing, and ChangeType is normalized
// so the consistency invariant holds on the returned value. This is the
// one place in the package where bad input is absorbed rather than
// surfaced; inbound cross-boundary data is untrusted and must never crash
// the caller.
func DateTimeChangeResultFromMap(m map[string]any) DateTimeChangeResult {
	var raw struct {
		ChangeType          string `mapstructure:"change_type"`
		DetectionMethod     string `mapstructure:"detection_method"`
		AutoDateTimeEnabled bool   `mapstructure:"auto_date_time_enabled"`
		DateChanged         bool   `mapstructure:"date_changed"`
		TimeChanged         bool   `mapstructure:"time_changed"`
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true,
	})
	if err == nil {
		if decodeErr := decoder.Decode(m); decodeErr != nil {
			log.Debug().Err(decodeErr).Msg("lenient change result decode, using partial values")
		}
	}

	dateChanged := raw.DateChanged
	timeChanged := raw.TimeChanged

	// An explicit recognized change type wins over absent flags, so a map
	// carrying only change_type still round-trips. Garbage decodes to
	// ChangeNone via the lenient parse.
	if !dateChanged && !timeChanged {
		switch ParseDateTimeChangeType(raw.ChangeType) {
		case ChangeDateOnly:
			dateChanged = true
		case ChangeTimeOnly:
			timeChanged = true
		case ChangeDateAndTime:
			dateChanged = true
			timeChanged = true
		case ChangeNone:
		}
	}

	return NewDateTimeChangeResult(
		dateChanged, timeChanged,
		raw.AutoDateTimeEnabled,
		raw.DetectionMethod,
	)
}

// ComprehensiveTimeAnalysis combines the auto-time setting status with an
// NTP sync comparison captured in the same run.
type ComprehensiveTimeAnalysis struct {
	// CapturedAt is when the analysis was assembled, UTC.
	CapturedAt time.Time
	// Status is the auto-time setting verdict.
	Status AutoDateTimeStatus
	// Sync is the device/reference comparison outcome.
	Sync TimeSyncResult
	// ID uniquely identifies this analysis run, for log correlation.
	ID uuid.UUID
}

// AutoDateTimeEnabled reports whether the auto-time setting verdict was on.
func (a ComprehensiveTimeAnalysis) AutoDateTimeEnabled() bool {
	return a.Status == AutoDateTimeOn
}

// TimeSynchronized reports whether the sync comparison was within threshold.
func (a ComprehensiveTimeAnalysis) TimeSynchronized() bool {
	return a.Sync.Synchronized
}

// HasTimeIssues is true when either the auto-time setting is off or the
// clock disagrees with the reference beyond the threshold.
func (a ComprehensiveTimeAnalysis) HasTimeIssues() bool {
	return !a.AutoDateTimeEnabled() || !a.TimeSynchronized()
}
