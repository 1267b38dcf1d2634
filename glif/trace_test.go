// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

import (
	"math"
	"testing"
)

func TestTraceConnect(t *testing.T) {
	tr := &Trace{}
	if err := tr.Connect("Vm", "V_m", "Spike"); err != nil {
		t.Fatalf("Connect failed: %v\n", err)
	}
	if tr.Table.NumCols() != 5 {
		t.Errorf("columns: %v != 5\n", tr.Table.NumCols())
	}
	for _, cn := range []string{"Time", "Cycle", "Vm", "V_m", "Spike"} {
		if tr.Table.ColByName(cn) == nil {
			t.Errorf("missing column: %v\n", cn)
		}
	}
	if err := tr.Connect("Act"); err == nil {
		t.Errorf("expected error for unknown variable\n")
	}
	if err := tr.Connect("Vm", "Vm"); err == nil {
		t.Errorf("expected error for repeated variable\n")
	}
	if err := tr.Connect(); err != nil || len(tr.Vars) != len(NeuronVars) {
		t.Errorf("no-arg Connect should record all variables: %v, %v\n", tr.Vars, err)
	}
}

func TestTraceRecord(t *testing.T) {
	ac := newLifTestParams(LinearForwardEuler)
	nrn := Neuron{}
	ac.InitActs(&nrn)
	tm := NewTime()
	tm.TimePerCyc = ac.Dt.Sec

	tr := &Trace{}
	if err := tr.Connect("Vm", "Spike"); err != nil {
		t.Fatalf("Connect failed: %v\n", err)
	}
	for cyc := 0; cyc < 9; cyc++ {
		ac.CycleNeuron(&nrn, Inputs{Current: 1000}, nil)
		tm.CycleInc()
		tr.Record(&nrn, tm)
	}
	if tr.Table.Rows != 9 {
		t.Fatalf("rows: %v != 9\n", tr.Table.Rows)
	}
	if sv := tr.Table.CellFloat("Spike", 2); sv != 1 {
		t.Errorf("Spike at row 2: %v != 1\n", sv)
	}
	if vm := tr.Table.CellFloat("Vm", 2); math.Abs(vm - -60) > 1.0e-4 {
		t.Errorf("Vm at row 2: %v != -60\n", vm)
	}
	if cv := tr.Table.CellFloat("Cycle", 0); cv != 1 {
		t.Errorf("Cycle at row 0: %v != 1\n", cv)
	}
	if tv := tr.Table.CellFloat("Time", 8); math.Abs(tv-0.009) > 1.0e-6 {
		t.Errorf("Time at row 8: %v != 0.009\n", tv)
	}

	tr.Reset()
	if tr.Table.Rows != 0 {
		t.Errorf("rows after Reset: %v != 0\n", tr.Table.Rows)
	}
}
