// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regressor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emer/etable/v2/etable"
)

// Emitter writes regressor matrices as EV text files into one subject's
// output directory. File identity is (design, run, condition); writing the
// same key twice, or over a file left by an earlier invocation, is an error
// unless Overwrite is set.
type Emitter struct {

	// subject output directory, created on first write
	Dir string

	// allow clobbering existing files; off = fail-fast on any collision
	Overwrite bool

	written map[string]bool
}

// NewEmitter returns an Emitter over dir.
func NewEmitter(dir string, overwrite bool) *Emitter {
	return &Emitter{Dir: dir, Overwrite: overwrite, written: make(map[string]bool)}
}

// FileName is the deterministic EV file name for a (design, run, condition)
// key, matching the names the FEAT templates expect,
// e.g. GLM1_run03_image2_WMplus.txt.
func FileName(design string, run int, cnd string) string {
	return fmt.Sprintf("%s_run%02d_%s.txt", design, run, cnd)
}

// Write serializes one regressor matrix under the (design, run, condition)
// key: tab-separated onset, duration, flag per row, no header, all values
// fixed 2-decimal.
func (em *Emitter) Write(design string, run int, cnd string, dt *etable.Table) error {
	fnm := FileName(design, run, cnd)
	if em.written[fnm] {
		return fmt.Errorf("regressor: duplicate EV key %s", fnm)
	}
	path := filepath.Join(em.Dir, fnm)
	if !em.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("regressor: EV file %s already exists (set Overwrite to allow)", path)
		}
	}
	if err := os.MkdirAll(em.Dir, 0755); err != nil {
		return err
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	for ri := 0; ri < dt.Rows; ri++ {
		fmt.Fprintf(bw, "%.2f\t%.2f\t%.2f\n",
			dt.CellFloat(Onset, ri), dt.CellFloat(Duration, ri), dt.CellFloat(Flag, ri))
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	em.written[fnm] = true
	return nil
}

// Written reports whether the given key has been emitted by this Emitter.
func (em *Emitter) Written(design string, run int, cnd string) bool {
	return em.written[FileName(design, run, cnd)]
}
