// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asc

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the tolerance for comparing to hand-computed values
const difTol = float32(1.0e-4)

func TestDecayCurs(t *testing.T) {
	ap := Params{}
	ap.Init = []float32{10, 5}
	ap.K = []float32{0.1, 0.05}
	ap.Amps = []float32{10, 5}
	ap.R = []float32{1, 1}
	if err := ap.Validate(); err != nil {
		t.Fatal(err)
	}
	ap.CalcDecay(1)

	curs := make([]float32, ap.NChans())
	sum := ap.InitCurs(curs)
	if math32.Abs(sum-15) > difTol {
		t.Errorf("InitCurs sum: %v != 15\n", sum)
	}

	// curs[i] = Init[i] * exp(-K[i] * n) after n cycles
	corsum := []float32{13.804521, 12.711495, 11.711722, 10.796854}
	for n := 0; n < len(corsum); n++ {
		sum = ap.DecayCurs(curs)
		if math32.Abs(sum-corsum[n]) > difTol {
			t.Errorf("cycle %v: sum of currents %v != %v\n", n, sum, corsum[n])
		}
		if sum >= 15 || sum <= 0 {
			t.Errorf("cycle %v: sum of currents %v out of decay range\n", n, sum)
		}
	}
}

func TestSpikeCurs(t *testing.T) {
	ap := Params{}
	ap.Init = []float32{0, 0}
	ap.K = []float32{0.1, 0.05}
	ap.Amps = []float32{10, 5}
	ap.R = []float32{0.5, 1}
	ap.CalcDecay(1)

	curs := []float32{4, 2}
	sum := ap.SpikeCurs(curs)
	// 4*0.5 + 10 = 12, 2*1 + 5 = 7
	if math32.Abs(curs[0]-12) > difTol || math32.Abs(curs[1]-7) > difTol {
		t.Errorf("SpikeCurs: %v != [12 7]\n", curs)
	}
	if math32.Abs(sum-19) > difTol {
		t.Errorf("SpikeCurs sum: %v != 19\n", sum)
	}
}

func TestValidate(t *testing.T) {
	ap := Params{}
	ap.Defaults()
	if err := ap.Validate(); err != nil {
		t.Errorf("defaults should validate: %v\n", err)
	}

	ap.K = []float32{0.003}
	if err := ap.Validate(); err == nil {
		t.Errorf("mismatched vector lengths should not validate\n")
	}

	ap.Defaults()
	ap.K[1] = 0
	if err := ap.Validate(); err == nil {
		t.Errorf("zero decay rate should not validate\n")
	}

	ap.Defaults()
	ap.Amps[0] = math32.NaN()
	if err := ap.Validate(); err == nil {
		t.Errorf("NaN amplitude should not validate\n")
	}

	ap.Off()
	if err := ap.Validate(); err != nil {
		t.Errorf("no channels should validate: %v\n", err)
	}
	if ap.NChans() != 0 {
		t.Errorf("NChans after Off: %v != 0\n", ap.NChans())
	}
}

func TestClone(t *testing.T) {
	ap := Params{}
	ap.Defaults()
	cp := ap.Clone()
	cp.K[0] = 99
	cp.Amps[1] = 99
	if ap.K[0] == 99 || ap.Amps[1] == 99 {
		t.Errorf("Clone shares vectors with original\n")
	}
}
