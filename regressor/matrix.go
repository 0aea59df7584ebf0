// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regressor builds per-condition [onset, duration, flag] matrices
// for one run and serializes them as FSL FEAT 3-column EV text files.
package regressor

import (
	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/block"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
)

// column names of a regressor matrix table
const (
	Onset    = "Onset"
	Duration = "Duration"
	Flag     = "Flag"
)

// MatrixSchema is the fixed 3-column shape every regressor table has.
var MatrixSchema = etable.Schema{
	{Name: Onset, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	{Name: Duration, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	{Name: Flag, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
}

// Matrix builds the regressor table for one condition of one run: one row
// per trial in the run, Flag = 1 for trials whose index is in idxs and 0
// otherwise. Onset and duration always carry the run's normalized values
// for that trial, flagged or not -- downstream GLM tooling requires the
// dense one-row-per-trial form, never a sparse one. Only the flag column
// varies with the index set.
func Matrix(bk *block.Block, ev block.Event, idxs []int) *etable.Table {
	onsets, durs := bk.Onsets(ev)
	dt := &etable.Table{}
	dt.SetFromSchema(MatrixSchema, len(onsets))
	for ri := range onsets {
		dt.SetCellFloat(Onset, ri, float64(onsets[ri]))
		dt.SetCellFloat(Duration, ri, float64(durs[ri]))
	}
	for _, ti := range idxs {
		dt.SetCellFloat(Flag, ti, 1)
	}
	return dt
}
