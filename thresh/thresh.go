// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package thresh implements the dynamic firing threshold of the generalized
leaky integrate-and-fire (GLIF) neuron models (Teeter et al, 2018).

The threshold at any moment is the sum of a fixed asymptotic level Inf
(th_inf) and up to two dynamic components.  The spike-triggered component
jumps by a fixed amount at each spike and decays exponentially back to
zero (models 2, 4, 5).  The voltage-dependent component tracks the
membrane potential above rest through a first-order ODE (model 5 only):

	dThV/dt = AVolt * (Vm - EL) - BVolt * ThV

Both components decay to zero in a quiescent neuron, so the threshold
relaxes back to Inf.
*/
package thresh

import "github.com/chewxy/math32"

// SpikeParams are the spike-triggered threshold component parameters.
type SpikeParams struct {
	Add   float32 `def:"0.37" desc:"amount added to the component by each spike, in mV (a_spike)"`
	Decay float32 `def:"0.009" min:"0" desc:"exponential decay rate of the component, in 1/msec (b_spike)"`

	Dk float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"per-cycle decay factor exp(-Decay*dt) -- computed by CalcDecay"`
}

func (sp *SpikeParams) Defaults() {
	sp.Add = 0.37
	sp.Decay = 0.009
}

// CalcDecay computes the per-cycle decay factor for the given cycle
// duration in msec.
func (sp *SpikeParams) CalcDecay(dtms float32) {
	sp.Dk = math32.Exp(-sp.Decay * dtms)
}

// DecayCyc returns the component value after one cycle of exponential
// decay.  CalcDecay must have been called for the current cycle duration.
func (sp *SpikeParams) DecayCyc(ths float32) float32 {
	return ths * sp.Dk
}

// VoltParams are the voltage-dependent threshold component parameters
// (model 5 only).
type VoltParams struct {
	AVolt float32 `def:"0.005" min:"0" desc:"coupling of the threshold to membrane potential above rest, in 1/msec (a_voltage)"`
	BVolt float32 `def:"0.09" desc:"decay rate of the component, in 1/msec (b_voltage) -- must be > 0 when the component is active"`

	Dk float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"per-cycle decay factor exp(-BVolt*dt) -- computed by CalcDecay"`
}

func (vp *VoltParams) Defaults() {
	vp.AVolt = 0.005
	vp.BVolt = 0.09
}

// CalcDecay computes the per-cycle decay factor for the given cycle
// duration in msec.
func (vp *VoltParams) CalcDecay(dtms float32) {
	vp.Dk = math32.Exp(-vp.BVolt * dtms)
}

// ThVFmVmEuler returns the component after one explicit forward-Euler
// step of its ODE, for membrane potential vrel relative to rest.
func (vp *VoltParams) ThVFmVmEuler(thv, vrel, dtms float32) float32 {
	return thv + dtms*(vp.AVolt*vrel-vp.BVolt*thv)
}

// ThVFmVmExact returns the component after one cycle of the closed-form
// solution of its ODE, holding the membrane potential vrel (relative to
// rest) constant over the cycle.  CalcDecay must have been called for
// the current cycle duration, and BVolt must be > 0.
func (vp *VoltParams) ThVFmVmExact(thv, vrel float32) float32 {
	inf := vp.AVolt * vrel / vp.BVolt
	return inf + (thv-inf)*vp.Dk
}

// Params are the full dynamic firing threshold parameters: the fixed
// asymptotic level plus the spike-triggered and voltage-dependent
// components.
type Params struct {
	Inf   float32     `def:"-51.68" desc:"asymptotic threshold level, in mV (th_inf) -- the level the dynamic threshold relaxes back to"`
	Spike SpikeParams `view:"inline" desc:"spike-triggered component (models 2, 4, 5)"`
	Volt  VoltParams  `view:"inline" desc:"voltage-dependent component (model 5)"`
}

func (tp *Params) Defaults() {
	tp.Inf = -51.68
	tp.Spike.Defaults()
	tp.Volt.Defaults()
}

// CalcDecay computes the per-cycle decay factors of both components for
// the given cycle duration in msec.
func (tp *Params) CalcDecay(dtms float32) {
	tp.Spike.CalcDecay(dtms)
	tp.Volt.CalcDecay(dtms)
}

// ThrFmParts returns the full threshold for the given component values.
func (tp *Params) ThrFmParts(ths, thv float32) float32 {
	return tp.Inf + ths + thv
}
