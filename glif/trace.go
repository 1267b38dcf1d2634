// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

import (
	"fmt"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// glif.Trace records named neuron variables into an etable.Table, one
// row per recorded cycle, for plotting or saving.  Connect first, then
// call Record after each cycle of interest.
type Trace struct {
	Vars  []string      `desc:"names of the variables being recorded, in column order -- registry aliases are accepted and kept as given"`
	Table *etable.Table `view:"no-inline" desc:"the recorded data: Time, Cycle, and one column per variable"`

	idxs []int // resolved variable indexes, parallel to Vars
}

// Connect sets the variables to record and builds the table with one
// float64 column per variable, after Time and Cycle columns.  Unknown
// variable names are rejected.  With no arguments it records all the
// neuron variables.  Any previously recorded rows are dropped.
func (tr *Trace) Connect(vars ...string) error {
	if len(vars) == 0 {
		vars = append([]string(nil), NeuronVars...)
	}
	idxs := make([]int, len(vars))
	seen := map[string]bool{}
	for vi, vn := range vars {
		idx, err := NeuronVarIdxByName(vn)
		if err != nil {
			return err
		}
		if seen[vn] {
			return fmt.Errorf("glif.Trace: variable name: %v repeated", vn)
		}
		seen[vn] = true
		idxs[vi] = idx
	}
	tr.Vars = vars
	tr.idxs = idxs

	sch := etable.Schema{
		{"Time", etensor.FLOAT64, nil, nil},
		{"Cycle", etensor.INT64, nil, nil},
	}
	for _, vn := range vars {
		sch = append(sch, etable.Column{vn, etensor.FLOAT64, nil, nil})
	}
	tr.Table = &etable.Table{}
	tr.Table.SetFromSchema(sch, 0)
	tr.Table.SetMetaData("name", "GlifTrace")
	tr.Table.SetMetaData("read-only", "true")
	return nil
}

// Record appends one row with the current time and the connected
// variable values.  Connect must have been called first.
func (tr *Trace) Record(nrn *Neuron, tm *Time) {
	if tr.Table == nil {
		panic("glif.Trace: Record called before Connect")
	}
	row := tr.Table.Rows
	tr.Table.SetNumRows(row + 1)
	tr.Table.SetCellFloat("Time", row, float64(tm.Time))
	tr.Table.SetCellFloat("Cycle", row, float64(tm.Cycle))
	for ci, vn := range tr.Vars {
		tr.Table.SetCellFloat(vn, row, float64(nrn.VarByIndex(tr.idxs[ci])))
	}
}

// Reset drops the recorded rows, keeping the connected variables.
func (tr *Trace) Reset() {
	if tr.Table != nil {
		tr.Table.SetNumRows(0)
	}
}
