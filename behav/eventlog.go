// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behav

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TaskStart scans a subject event log for the start-of-task marker and
// returns its timestamp. Legacy recordings were split across two files with
// the clock restarting, so trial-table onsets from the second file must be
// rebased against this marker; recordings with self-consistent onsets do
// not need it. Log lines are whitespace separated: timestamp first, event
// text after. Lines that do not start with a number are skipped.
func TaskStart(r io.Reader, marker string) (float32, error) {
	if marker == "" {
		return 0, fmt.Errorf("behav: empty start-of-task marker")
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		flds := strings.Fields(sc.Text())
		if len(flds) < 2 {
			continue
		}
		tm, err := strconv.ParseFloat(flds[0], 32)
		if err != nil {
			continue
		}
		if strings.Contains(strings.Join(flds[1:], " "), marker) {
			return float32(tm), nil
		}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("behav: marker %q not found in event log", marker)
}

// TaskStartFile is TaskStart over a log file on disk.
func TaskStartFile(fname, marker string) (float32, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	return TaskStart(fp, marker)
}
