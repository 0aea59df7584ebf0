// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"os"
	"path/filepath"

	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/trial"
	"github.com/emer/etable/v2/agg"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/split"
)

// TrialLog tabulates the classified trials, one row each, for the summary
// aggregation and for eyeballing a subject's behavior.
func (ss *Session) TrialLog() *etable.Table {
	dt := &etable.Table{}
	sch := etable.Schema{
		{Name: "Run", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Trial", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Retro", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Responded", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "NoResp", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Correct", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "RT", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	nt := 0
	for _, bk := range ss.Blocks {
		nt += len(bk.Trials)
	}
	dt.SetFromSchema(sch, nt)
	row := 0
	for _, bk := range ss.Blocks {
		for ti := range bk.Trials {
			tr := &bk.Trials[ti]
			dt.SetCellFloat("Run", row, float64(bk.Num))
			dt.SetCellFloat("Trial", row, float64(ti))
			dt.SetCellFloat("Retro", row, b2f(tr.Retro))
			dt.SetCellFloat("Responded", row, b2f(tr.HasResp))
			dt.SetCellFloat("NoResp", row, b2f(!tr.HasResp))
			dt.SetCellFloat("Correct", row, b2f(tr.Acc == trial.Correct))
			dt.SetCellFloat("RT", row, float64(bk.TestDur[ti]))
			row++
		}
	}
	return dt
}

// RunLog aggregates the trial log per run: proportion correct and
// responded, no-response count, mean RT.
func (ss *Session) RunLog(trl *etable.Table) *etable.Table {
	ix := etable.NewIdxView(trl)
	spl := split.GroupBy(ix, []string{"Run"})
	split.Agg(spl, "Correct", agg.AggMean)
	split.Agg(spl, "Responded", agg.AggMean)
	split.Agg(spl, "NoResp", agg.AggSum)
	split.Agg(spl, "RT", agg.AggMean)
	return spl.AggsToTable(etable.ColNameOnly)
}

// WriteSummary saves the trial and run summary tables as tab-separated
// files next to the EV files.
func (ss *Session) WriteSummary() error {
	trl := ss.TrialLog()
	run := ss.RunLog(trl)
	if err := os.MkdirAll(ss.Config.Out, 0755); err != nil {
		return err
	}
	for _, sv := range []struct {
		dt  *etable.Table
		fnm string
	}{
		{trl, ss.Config.Subject + "_trials.tsv"},
		{run, ss.Config.Subject + "_runs.tsv"},
	} {
		fp, err := os.Create(filepath.Join(ss.Config.Out, sv.fnm))
		if err != nil {
			return err
		}
		if err := sv.dt.WriteCSV(fp, etable.Tab, etable.Headers); err != nil {
			fp.Close()
			return err
		}
		if err := fp.Close(); err != nil {
			return err
		}
	}
	return nil
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
