// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

import "testing"

func TestNeuronVars(t *testing.T) {
	nrn := Neuron{}
	nrn.Vm = -70
	nrn.Thr = -50
	nrn.ThrSpike = 0.5
	nrn.ThrVolt = 0.25
	nrn.ASCSum = -12
	nrn.I = 100
	nrn.Spike = 1
	nrn.SpikeT = 0.4
	nrn.Noise = 2
	nrn.ISI = 3
	nrn.ISIAvg = 3.5

	for vi, vn := range NeuronVars {
		byIdx := nrn.VarByIndex(vi)
		byNm, err := nrn.VarByName(vn)
		if err != nil {
			t.Errorf("var %v: VarByName error: %v\n", vn, err)
		}
		if byIdx != byNm {
			t.Errorf("var %v: VarByIndex %v != VarByName %v\n", vn, byIdx, byNm)
		}
	}
	vm, _ := nrn.VarByName("Vm")
	if vm != -70 {
		t.Errorf("Vm by name: %v != -70\n", vm)
	}
	isiav, _ := nrn.VarByName("ISIAvg")
	if isiav != 3.5 {
		t.Errorf("ISIAvg by name: %v != 3.5\n", isiav)
	}
}

func TestNeuronVarAliases(t *testing.T) {
	nrn := Neuron{}
	nrn.Vm = -55.5
	nrn.Thr = -49
	nrn.ASCSum = -7

	tests := []struct {
		alias, vn string
	}{
		{"V_m", "Vm"},
		{"threshold", "Thr"},
		{"AScurrents_sum", "ASCSum"},
	}
	for _, ts := range tests {
		av, err := nrn.VarByName(ts.alias)
		if err != nil {
			t.Errorf("alias %v: error: %v\n", ts.alias, err)
		}
		cv, _ := nrn.VarByName(ts.vn)
		if av != cv {
			t.Errorf("alias %v: %v != %v value %v\n", ts.alias, av, ts.vn, cv)
		}
	}
	if _, err := nrn.VarByName("Act"); err == nil {
		t.Errorf("expected error for unknown variable\n")
	}
}
