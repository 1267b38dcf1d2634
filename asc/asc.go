// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package asc implements the after-spike currents (ASC) of the generalized
leaky integrate-and-fire (GLIF) neuron models 3-5 (Teeter et al, 2018).

Each spike activates a set of intrinsic current channels that then decay
exponentially, injecting their summed current back into the membrane
equation on every cycle.  Each channel i carries amplitude Amps[i] added
at a spike, on top of fraction R[i] of whatever current was still active,
and decays at rate K[i] (in 1/msec):

	ASC[i] *= exp(-K[i] * dt)                 (between spikes)
	ASC[i] = R[i] * ASC[i] + Amps[i]          (at a spike)

The number of channels is set by the (equal) lengths of the parameter
vectors, fixed at calibration time.  Two channels, one fast and one slow,
fit most recorded cells.
*/
package asc

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Params are the after-spike current channel parameters.  All four vectors
// must have the same length, which determines the number of channels.
// Empty vectors (no channels) are valid and used by models 1-2.
type Params struct {
	Init []float32 `desc:"initial current per channel at state initialization, in pA (asc_init)"`
	K    []float32 `desc:"exponential decay rate per channel, in 1/msec (k) -- must be > 0"`
	Amps []float32 `desc:"current added to each channel by a spike, in pA (asc_amps)"`
	R    []float32 `desc:"fraction of the existing current carried through a spike, per channel (r)"`

	Dk []float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"per-cycle decay factor exp(-K*dt) per channel -- computed by CalcDecay"`
}

// Defaults sets a typical two-channel fit, with a fast and a slow
// hyperpolarizing current, from the Allen cell-type database.
func (ap *Params) Defaults() {
	ap.Init = []float32{0, 0}
	ap.K = []float32{0.003, 0.1}
	ap.Amps = []float32{-9.18, -198.94}
	ap.R = []float32{1, 1}
	ap.Dk = nil
}

// Off removes all channels, for the model variants without after-spike currents.
func (ap *Params) Off() {
	ap.Init = nil
	ap.K = nil
	ap.Amps = nil
	ap.R = nil
	ap.Dk = nil
}

// NChans returns the number of after-spike current channels.
func (ap *Params) NChans() int {
	return len(ap.K)
}

// Clone returns a copy of the parameters with fully independent vectors.
func (ap *Params) Clone() Params {
	cp := Params{}
	cp.Init = append([]float32(nil), ap.Init...)
	cp.K = append([]float32(nil), ap.K...)
	cp.Amps = append([]float32(nil), ap.Amps...)
	cp.R = append([]float32(nil), ap.R...)
	cp.Dk = append([]float32(nil), ap.Dk...)
	return cp
}

// Validate returns an error if the vectors differ in length or hold
// non-finite or non-positive-decay values.
func (ap *Params) Validate() error {
	n := len(ap.Init)
	if len(ap.K) != n || len(ap.Amps) != n || len(ap.R) != n {
		return fmt.Errorf("asc.Params: Init, K, Amps, R must have equal lengths, got: %d, %d, %d, %d", len(ap.Init), len(ap.K), len(ap.Amps), len(ap.R))
	}
	for i := 0; i < n; i++ {
		if !finite(ap.Init[i]) || !finite(ap.K[i]) || !finite(ap.Amps[i]) || !finite(ap.R[i]) {
			return fmt.Errorf("asc.Params: non-finite value in channel %d", i)
		}
		if ap.K[i] <= 0 {
			return fmt.Errorf("asc.Params: K[%d] = %v: decay rates must be > 0", i, ap.K[i])
		}
	}
	return nil
}

// CalcDecay computes the per-cycle decay factors for the given cycle
// duration in msec.  Must be called again whenever K or the cycle
// duration changes.
func (ap *Params) CalcDecay(dtms float32) {
	n := ap.NChans()
	if len(ap.Dk) != n {
		ap.Dk = make([]float32, n)
	}
	for i := 0; i < n; i++ {
		ap.Dk[i] = math32.Exp(-ap.K[i] * dtms)
	}
}

// InitCurs sets the channel currents to their initial values and returns
// the resulting sum.  curs must have length NChans.
func (ap *Params) InitCurs(curs []float32) float32 {
	sum := float32(0)
	for i := range curs {
		curs[i] = ap.Init[i]
		sum += curs[i]
	}
	return sum
}

// DecayCurs applies one cycle of exponential decay to the channel
// currents, in place, and returns the resulting sum.  CalcDecay must
// have been called for the current cycle duration.
func (ap *Params) DecayCurs(curs []float32) float32 {
	sum := float32(0)
	for i := range curs {
		curs[i] *= ap.Dk[i]
		sum += curs[i]
	}
	return sum
}

// SpikeCurs updates the channel currents for a spike: each is scaled by
// its carry-over fraction R and then incremented by Amps.  Returns the
// resulting sum.
func (ap *Params) SpikeCurs(curs []float32) float32 {
	sum := float32(0)
	for i := range curs {
		curs[i] = curs[i]*ap.R[i] + ap.Amps[i]
		sum += curs[i]
	}
	return sum
}

// Sum returns the summed current over channels.
func Sum(curs []float32) float32 {
	sum := float32(0)
	for i := range curs {
		sum += curs[i]
	}
	return sum
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
