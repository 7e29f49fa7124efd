// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import (
	"fmt"
	"testing"
	"time"
)

func TestUnitIsNotTransientElseWait(t *testing.T) {
	var testCases = []struct {
		name                   string
		errMessage             string
		shouldNotFindTransient bool
	}{
		{
			name:                   "err403",
			errMessage:             "403 forbidden",
			shouldNotFindTransient: true,
		},
		{
			name:                   "err404",
			errMessage:             "404 storage: object doesn't exist",
			shouldNotFindTransient: true,
		},
		{
			name:                   "err500",
			errMessage:             "500 Internal Server Error",
			shouldNotFindTransient: false,
		},
		{
			name:                   "err502",
			errMessage:             "502 Bad Gateway",
			shouldNotFindTransient: false,
		},
		{
			name:                   "err503",
			errMessage:             "503 Service Unavailable",
			shouldNotFindTransient: false,
		},
		{
			name:                   "err504",
			errMessage:             "504 Gateway Timeout",
			shouldNotFindTransient: false,
		},
		{
			name:                   "err511",
			errMessage:             "511 Network Authentication Required",
			shouldNotFindTransient: false,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := fmt.Errorf(tc.errMessage)
			result := IsNotTransientElseWait(err, 0)
			if tc.shouldNotFindTransient != result {
				t.Errorf("errMessage '%s' got isNotTransient %v want %v", tc.errMessage, result, tc.shouldNotFindTransient)
			}
		})
	}
}

func TestUnitRunWithRetries(t *testing.T) {
	var testCases = []struct {
		name          string
		errMessages   []string
		retriesNumber int
		wantErr       bool
		wantCalls     int
	}{
		{
			name:          "SucceedsFirstTry",
			errMessages:   []string{""},
			retriesNumber: 3,
			wantErr:       false,
			wantCalls:     1,
		},
		{
			name:          "TransientThenSuccess",
			errMessages:   []string{"503 Service Unavailable", ""},
			retriesNumber: 3,
			wantErr:       false,
			wantCalls:     2,
		},
		{
			name:          "NonTransientStopsImmediately",
			errMessages:   []string{"403 forbidden", ""},
			retriesNumber: 3,
			wantErr:       true,
			wantCalls:     1,
		},
		{
			name:          "TooManyTransient",
			errMessages:   []string{"503", "503", "503"},
			retriesNumber: 2,
			wantErr:       true,
			wantCalls:     3,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			step := func() error {
				msg := tc.errMessages[len(tc.errMessages)-1]
				if calls < len(tc.errMessages) {
					msg = tc.errMessages[calls]
				}
				calls++
				if msg == "" {
					return nil
				}
				return fmt.Errorf(msg)
			}
			err := RunWithRetries(tc.name, tc.retriesNumber, 0, step)
			if (err != nil) != tc.wantErr {
				t.Errorf("got err %v wantErr %v", err, tc.wantErr)
			}
			if calls != tc.wantCalls {
				t.Errorf("got %d step calls want %d", calls, tc.wantCalls)
			}
		})
	}
}

func TestUnitRunWithRetriesWaitIsNotRescaled(t *testing.T) {
	wait := 50 * time.Millisecond
	calls := 0
	step := func() error {
		calls++
		return fmt.Errorf("503 Service Unavailable")
	}
	start := time.Now()
	err := RunWithRetries("waitIsNotRescaled", 1, wait, step)
	elapsed := time.Since(start)
	if err == nil {
		t.Errorf("want a too many transient errors error, got nil")
	}
	if calls != 2 {
		t.Errorf("got %d step calls want 2", calls)
	}
	// two transient errors, so two waits, and no rescaling of the wait duration
	if elapsed < 2*wait {
		t.Errorf("elapsed %v is shorter than the two expected waits of %v", elapsed, wait)
	}
	if elapsed > time.Second {
		t.Errorf("elapsed %v, the wait duration got rescaled", elapsed)
	}
}
