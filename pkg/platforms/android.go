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

package platforms

import (
	"context"
	"strings"

	"github.com/ZaparooProject/go-timetrust/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

// AndroidProbe reads the global auto_time setting through the Android
// settings shell command. The setting is an integer: 1 means automatic
// time is enabled, any other value means it is disabled. A missing
// setting or a failed read also resolves to disabled; this probe never
// propagates an error, matching the platform's own semantics where the
// key simply defaults to off.
type AndroidProbe struct {
	exec command.Executor
}

// NewAndroidProbe creates a probe backed by the Android settings command.
func NewAndroidProbe(exec command.Executor) *AndroidProbe {
	return &AndroidProbe{exec: exec}
}

// ID returns the Android platform ID.
func (*AndroidProbe) ID() string {
	return PlatformIDAndroid
}

// Supported always reports true: every Android build exposes the
// auto_time key, even if only to report it unset.
func (*AndroidProbe) Supported() bool {
	return true
}

// AutoTimeEnabled reads Settings.Global.AUTO_TIME.
func (p *AndroidProbe) AutoTimeEnabled(ctx context.Context) (bool, error) {
	out, err := p.exec.Output(ctx, "settings", "get", "global", "auto_time")
	if err != nil {
		log.Debug().Err(err).Msg("auto_time setting read failed, treating as disabled")
		return false, nil
	}
	return strings.TrimSpace(string(out)) == "1", nil
}
