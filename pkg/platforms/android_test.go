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

package platforms_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ZaparooProject/go-timetrust/pkg/platforms"
	"github.com/ZaparooProject/go-timetrust/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAndroidProbe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		output  string
		execErr error
		want    bool
	}{
		{name: "setting 1 means enabled", output: "1\n", want: true},
		{name: "setting 0 means disabled", output: "0\n", want: false},
		{name: "null setting means disabled", output: "null\n", want: false},
		{name: "empty output means disabled", output: "", want: false},
		{
			name:    "read failure resolves to disabled, not an error",
			execErr: errors.New("settings: not found"),
			want:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exec := mocks.NewMockCommandExecutor()
			if tt.execErr != nil {
				exec.SetupOutputError(tt.execErr, "settings", "get", "global", "auto_time")
			} else {
				exec.SetupOutput(tt.output, "settings", "get", "global", "auto_time")
			}

			probe := platforms.NewAndroidProbe(exec)
			require.True(t, probe.Supported())
			assert.Equal(t, platforms.PlatformIDAndroid, probe.ID())

			enabled, err := probe.AutoTimeEnabled(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, enabled)
			exec.AssertExpectations(t)
		})
	}
}
