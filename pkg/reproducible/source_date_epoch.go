// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reproducible honors the SOURCE_DATE_EPOCH convention so that
// release artifacts built from the same tree are byte-identical.
package reproducible

import (
	"os"
	"strconv"
	"sync"
	"time"
)

var (
	nowOnce sync.Once
	now     time.Time
)

// Now returns the time to stamp on build artifacts: SOURCE_DATE_EPOCH
// when set, the wall clock otherwise.  The value is fixed at first use.
func Now() time.Time {
	nowOnce.Do(func() {
		secs, err := strconv.ParseInt(os.Getenv("SOURCE_DATE_EPOCH"), 10, 64)
		if err == nil {
			now = time.Unix(secs, 0)
		} else {
			now = time.Now()
		}
	})
	return now
}
