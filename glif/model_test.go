// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

import "testing"

func TestModelTypeFmName(t *testing.T) {
	tests := []struct {
		nm string
		mt ModelTypes
	}{
		{"lif", Lif}, {"glif_lif", Lif}, {"1", Lif},
		{"lif_r", LifR}, {"glif_lif_r", LifR}, {"2", LifR},
		{"lif_asc", LifAsc}, {"glif_lif_asc", LifAsc}, {"3", LifAsc},
		{"lif_r_asc", LifRAsc}, {"glif_lif_r_asc", LifRAsc}, {"4", LifRAsc},
		{"lif_r_asc_a", LifRAscA}, {"glif_lif_r_asc_a", LifRAscA}, {"5", LifRAscA},
	}
	for _, ts := range tests {
		mt, err := ModelTypeFmName(ts.nm)
		if err != nil {
			t.Errorf("name %v: unexpected error: %v\n", ts.nm, err)
		}
		if mt != ts.mt {
			t.Errorf("name %v: %v != %v\n", ts.nm, mt, ts.mt)
		}
	}
	for _, nm := range []string{"", "LIF", "lif_r_asc_a_x", "glif", "6", "0", "lif_rasc"} {
		if _, err := ModelTypeFmName(nm); err == nil {
			t.Errorf("name %v: expected error\n", nm)
		}
	}
}

func TestModelNames(t *testing.T) {
	for mt := Lif; mt < ModelTypesN; mt++ {
		rt, err := ModelTypeFmName(mt.ModelName())
		if err != nil || rt != mt {
			t.Errorf("ModelName round trip failed for %v: %v, %v\n", mt, rt, err)
		}
		if mt.Level() != int(mt)+1 {
			t.Errorf("Level for %v: %v != %v\n", mt, mt.Level(), int(mt)+1)
		}
	}
}

func TestModelFeatures(t *testing.T) {
	tests := []struct {
		mt                 ModelTypes
		reset, asc, voltth bool
	}{
		{Lif, false, false, false},
		{LifR, true, false, false},
		{LifAsc, false, true, false},
		{LifRAsc, true, true, false},
		{LifRAscA, true, true, true},
	}
	for _, ts := range tests {
		if ts.mt.HasResetRules() != ts.reset {
			t.Errorf("%v: HasResetRules: %v != %v\n", ts.mt, ts.mt.HasResetRules(), ts.reset)
		}
		if ts.mt.HasASC() != ts.asc {
			t.Errorf("%v: HasASC: %v != %v\n", ts.mt, ts.mt.HasASC(), ts.asc)
		}
		if ts.mt.HasVoltThr() != ts.voltth {
			t.Errorf("%v: HasVoltThr: %v != %v\n", ts.mt, ts.mt.HasVoltThr(), ts.voltth)
		}
	}
}

func TestVmDynamicsFmName(t *testing.T) {
	vd, err := VmDynamicsFmName("linear_forward_euler")
	if err != nil || vd != LinearForwardEuler {
		t.Errorf("linear_forward_euler: %v, %v\n", vd, err)
	}
	vd, err = VmDynamicsFmName("linear_exact")
	if err != nil || vd != LinearExact {
		t.Errorf("linear_exact: %v, %v\n", vd, err)
	}
	for _, nm := range []string{"", "exact", "euler", "Linear_Exact"} {
		if _, err := VmDynamicsFmName(nm); err == nil {
			t.Errorf("name %v: expected error\n", nm)
		}
	}
	if LinearForwardEuler.DynName() != "linear_forward_euler" || LinearExact.DynName() != "linear_exact" {
		t.Errorf("DynName mismatch: %v, %v\n", LinearForwardEuler.DynName(), LinearExact.DynName())
	}
}
