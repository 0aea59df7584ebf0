// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package behav reads a subject's raw behavioral trial table into Trial
// records. Every field is bound by column name through a Columns config;
// there is no positional column access.
package behav

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/trial"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
)

// Columns binds each trial field to a named column of the behavioral table.
type Columns struct {

	// memory-array image id columns, in presentation order
	Images []string

	// 0-based cue location into the memory array, or an undefined cell
	CueLoc string

	// cue type: nonzero / "retro" = retro cue, zero / "post" = post cue
	CueType string

	// ground truth: nonzero = test array changed
	Change string

	// response key code, or an undefined cell for no response
	Resp string

	// response latency in seconds
	RT string

	// absolute memory-array onset
	MemOnset string

	// absolute test-array onset
	TestOnset string
}

// Defaults sets the canonical column names used by the task scripts.
func (cl *Columns) Defaults() {
	if len(cl.Images) == 0 {
		for i := 1; i <= 8; i++ {
			cl.Images = append(cl.Images, fmt.Sprintf("image%d", i))
		}
	}
	if cl.CueLoc == "" {
		cl.CueLoc = "cueloc"
	}
	if cl.CueType == "" {
		cl.CueType = "cuetype"
	}
	if cl.Change == "" {
		cl.Change = "change"
	}
	if cl.Resp == "" {
		cl.Resp = "resp"
	}
	if cl.RT == "" {
		cl.RT = "rt"
	}
	if cl.MemOnset == "" {
		cl.MemOnset = "memonset"
	}
	if cl.TestOnset == "" {
		cl.TestOnset = "testonset"
	}
}

// all returns every bound column name.
func (cl *Columns) all() []string {
	nms := append([]string{}, cl.Images...)
	return append(nms, cl.CueLoc, cl.CueType, cl.Change, cl.Resp, cl.RT, cl.MemOnset, cl.TestOnset)
}

// Check verifies that every bound column exists in the table, before any
// row is parsed -- a malformed table must never be partially processed.
func (cl *Columns) Check(dt *etable.Table) error {
	var missing []string
	for _, nm := range cl.all() {
		if _, err := dt.ColByNameTry(nm); err != nil {
			missing = append(missing, nm)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("behav: table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Read reads a behavioral table from delimited text with a header row
// naming the columns. All cells are kept as strings: undefined-value
// sentinels like "none" must survive verbatim for Trials to recognize, so
// typed parsing is done per field there, not at load time.
func Read(r io.Reader, delim rune) (*etable.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) < 2 {
		return nil, fmt.Errorf("behav: table has %d lines, need a header and at least one trial", len(rec))
	}
	sch := etable.Schema{}
	for _, hd := range rec[0] {
		sch = append(sch, etable.Column{Name: strings.TrimSpace(hd), Type: etensor.STRING, CellShape: nil, DimNames: nil})
	}
	dt := &etable.Table{}
	dt.SetFromSchema(sch, len(rec)-1)
	for ri, row := range rec[1:] {
		if len(row) != len(sch) {
			return nil, fmt.Errorf("behav: row %d has %d cells, header has %d", ri, len(row), len(sch))
		}
		for ci, cell := range row {
			dt.SetCellString(sch[ci].Name, ri, cell)
		}
	}
	return dt, nil
}

// Open is Read over a file on disk.
func Open(fname string, delim rune) (*etable.Table, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	dt, err := Read(fp, delim)
	if err != nil {
		return nil, fmt.Errorf("behav: reading %s: %w", fname, err)
	}
	return dt, nil
}

// undef reports whether a raw cell is an undefined-value marker.
func undef(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "nan", "na":
		return true
	}
	return false
}

func cellFloat(dt *etable.Table, col string, row int) (float32, bool, error) {
	s := dt.CellString(col, row)
	if undef(s) {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, false, fmt.Errorf("behav: row %d col %s: %w", row, col, err)
	}
	return float32(v), true, nil
}

func cellInt(dt *etable.Table, col string, row int) (int, bool, error) {
	v, def, err := cellFloat(dt, col, row)
	return int(v), def, err
}

// cellBool parses cue-type / change cells: numeric nonzero is true, and the
// strings "retro" / "change" are accepted as true with "post" / "same" false.
func cellBool(dt *etable.Table, col string, row int) (bool, error) {
	s := strings.ToLower(strings.TrimSpace(dt.CellString(col, row)))
	switch s {
	case "retro", "change", "true":
		return true, nil
	case "post", "same", "nochange", "false":
		return false, nil
	}
	v, def, err := cellFloat(dt, col, row)
	if err != nil {
		return false, err
	}
	if !def {
		return false, fmt.Errorf("behav: row %d col %s: undefined", row, col)
	}
	return v != 0, nil
}

// Trials parses every row of the table into a Trial record with the raw
// fields set; derived fields are left for trial.Classify. The first error
// aborts the whole subject.
func Trials(dt *etable.Table, cl *Columns) ([]trial.Trial, error) {
	if err := cl.Check(dt); err != nil {
		return nil, err
	}
	trs := make([]trial.Trial, dt.Rows)
	for ri := 0; ri < dt.Rows; ri++ {
		tr := &trs[ri]
		tr.Idx = ri
		for _, inm := range cl.Images {
			im, def, err := cellInt(dt, inm, ri)
			if err != nil {
				return nil, err
			}
			if def {
				tr.Images = append(tr.Images, im)
			}
		}
		loc, def, err := cellInt(dt, cl.CueLoc, ri)
		if err != nil {
			return nil, err
		}
		tr.CueLoc = loc
		if !def {
			tr.CueLoc = trial.NoImage
		}
		if tr.Retro, err = cellBool(dt, cl.CueType, ri); err != nil {
			return nil, err
		}
		if tr.Change, err = cellBool(dt, cl.Change, ri); err != nil {
			return nil, err
		}
		key, def, err := cellInt(dt, cl.Resp, ri)
		if err != nil {
			return nil, err
		}
		tr.Resp = key
		if !def {
			tr.Resp = trial.NoKey
		}
		if tr.RT, _, err = cellFloat(dt, cl.RT, ri); err != nil {
			return nil, err
		}
		if tr.MemOnset, def, err = cellFloat(dt, cl.MemOnset, ri); err != nil {
			return nil, fmt.Errorf("behav: row %d: bad memory onset: %v", ri, err)
		} else if !def {
			return nil, fmt.Errorf("behav: row %d: memory onset undefined", ri)
		}
		if tr.TestOnset, def, err = cellFloat(dt, cl.TestOnset, ri); err != nil {
			return nil, fmt.Errorf("behav: row %d: bad test onset: %v", ri, err)
		} else if !def {
			return nil, fmt.Errorf("behav: row %d: test onset undefined", ri)
		}
	}
	return trs, nil
}
