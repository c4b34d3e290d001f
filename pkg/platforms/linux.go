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
	"fmt"
	"strings"

	"github.com/ZaparooProject/go-timetrust/pkg/helpers/command"
)

// TimedatectlProbe reads systemd-timedated's NTP synchronization flag via
// timedatectl. Unlike the Android probe, read failures propagate: on Linux
// an unreadable setting usually means timedatectl is missing entirely, and
// the engine should fall back to the NTP strategy rather than trust a
// guessed answer.
type TimedatectlProbe struct {
	exec command.Executor
}

// NewTimedatectlProbe creates a probe backed by timedatectl.
func NewTimedatectlProbe(exec command.Executor) *TimedatectlProbe {
	return &TimedatectlProbe{exec: exec}
}

// ID returns the Linux platform ID.
func (*TimedatectlProbe) ID() string {
	return PlatformIDLinux
}

// Supported reports true; non-systemd hosts surface the failure from
// AutoTimeEnabled instead, which triggers the same fallback.
func (*TimedatectlProbe) Supported() bool {
	return true
}

// AutoTimeEnabled reads the NTP property from timedatectl.
func (p *TimedatectlProbe) AutoTimeEnabled(ctx context.Context) (bool, error) {
	out, err := p.exec.Output(ctx, "timedatectl", "show", "--property=NTP", "--value")
	if err != nil {
		return false, fmt.Errorf("%w: timedatectl: %w", ErrProbeFailed, err)
	}

	switch strings.TrimSpace(string(out)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: unexpected timedatectl output %q",
			ErrProbeFailed, strings.TrimSpace(string(out)))
	}
}
