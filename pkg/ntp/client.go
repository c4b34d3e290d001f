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

// Package ntp fetches trusted reference time from NTP servers. It is the
// only network-touching layer of the library: one round trip per call, no
// caching, no retries. Retry policy belongs to callers.
package ntp

import (
	"context"
	"fmt"
	"time"

	ntplib "github.com/beevik/ntp"
)

// NetworkError wraps any failure to obtain a reference time from a server:
// timeout, DNS failure, unreachable host or a malformed response.
type NetworkError struct {
	Err    error
	Server string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("ntp fetch from %s failed: %v", e.Server, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client fetches the current UTC time from a remote time server.
type Client interface {
	// FetchTime returns the current UTC time according to server, or a
	// *NetworkError if the server could not be queried within timeout.
	FetchTime(ctx context.Context, server string, timeout time.Duration) (time.Time, error)
}

// PoolClient queries public NTP pool servers over UDP.
type PoolClient struct{}

// NewPoolClient creates a Client backed by a real NTP query.
func NewPoolClient() *PoolClient {
	return &PoolClient{}
}

type queryResult struct {
	err  error
	time time.Time
}

// FetchTime performs a single NTP round trip. The underlying query library
// has no context support, so the query runs in a goroutine and the call
// returns early if ctx is canceled first; the goroutine itself still exits
// within timeout.
func (*PoolClient) FetchTime(
	ctx context.Context,
	server string,
	timeout time.Duration,
) (time.Time, error) {
	resultCh := make(chan queryResult, 1)

	go func() {
		resp, err := ntplib.QueryWithOptions(server, ntplib.QueryOptions{
			Timeout: timeout,
		})
		if err != nil {
			resultCh <- queryResult{err: err}
			return
		}
		if err := resp.Validate(); err != nil {
			resultCh <- queryResult{err: fmt.Errorf("invalid ntp response: %w", err)}
			return
		}
		// The response's clock offset applied to local now is the best
		// estimate of true current time, accounting for network delay.
		resultCh <- queryResult{time: time.Now().Add(resp.ClockOffset).UTC()}
	}()

	select {
	case <-ctx.Done():
		return time.Time{}, &NetworkError{Server: server, Err: ctx.Err()}
	case res := <-resultCh:
		if res.err != nil {
			return time.Time{}, &NetworkError{Server: server, Err: res.err}
		}
		return res.time, nil
	}
}
