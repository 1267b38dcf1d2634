// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thresh

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the tolerance for comparing to hand-computed values
const difTol = float32(1.0e-4)

func TestSpikeDecay(t *testing.T) {
	sp := SpikeParams{}
	sp.Defaults()
	sp.CalcDecay(1)

	// ths * exp(-0.009 * n)
	cor := []float32{1.982081, 1.964322, 1.946723, 1.929281}
	ths := float32(2)
	for n := 0; n < len(cor); n++ {
		ths = sp.DecayCyc(ths)
		if math32.Abs(ths-cor[n]) > difTol {
			t.Errorf("cycle %v: spike component %v != %v\n", n, ths, cor[n])
		}
	}
}

func TestVoltExact(t *testing.T) {
	vp := VoltParams{}
	vp.Defaults()
	vp.CalcDecay(1)

	// from zero, held 20 mV above rest: inf*(1 - exp(-0.09)) with inf = 0.005*20/0.09
	thv := vp.ThVFmVmExact(0, 20)
	if math32.Abs(thv-0.0956320) > difTol {
		t.Errorf("exact volt component %v != 0.0956320\n", thv)
	}

	// at the asymptote the component must not move
	inf := vp.AVolt * 20 / vp.BVolt
	thv = vp.ThVFmVmExact(inf, 20)
	if math32.Abs(thv-inf) > difTol {
		t.Errorf("exact volt component moved off asymptote: %v != %v\n", thv, inf)
	}
}

func TestVoltEulerConverges(t *testing.T) {
	vp := VoltParams{}
	vp.Defaults()
	vp.CalcDecay(1)

	exact := vp.ThVFmVmExact(0, 20)

	// many small Euler steps over the same 1 msec approach the closed form
	dt := float32(0.001)
	thv := float32(0)
	for n := 0; n < 1000; n++ {
		thv = vp.ThVFmVmEuler(thv, 20, dt)
	}
	if math32.Abs(thv-exact) > 1.0e-3 {
		t.Errorf("euler volt component %v did not converge to exact %v\n", thv, exact)
	}

	// a single coarse Euler step overshoots the closed form
	one := vp.ThVFmVmEuler(0, 20, 1)
	if math32.Abs(one-0.1) > difTol {
		t.Errorf("single euler step %v != 0.1\n", one)
	}
}

func TestThrFmParts(t *testing.T) {
	tp := Params{}
	tp.Defaults()
	tp.CalcDecay(1)

	thr := tp.ThrFmParts(0, 0)
	if math32.Abs(thr-tp.Inf) > difTol {
		t.Errorf("threshold with zero components %v != Inf %v\n", thr, tp.Inf)
	}
	thr = tp.ThrFmParts(1.5, 0.25)
	if math32.Abs(thr-(tp.Inf+1.75)) > difTol {
		t.Errorf("threshold %v != Inf + 1.75\n", thr)
	}
}
