// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

import (
	"github.com/chewxy/math32"
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/minmax"
	"github.com/emer/glif/asc"
	"github.com/emer/glif/thresh"
	"github.com/goki/ki/ints"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  act.go contains the activation params and functions for glif

// Inputs holds the external drive delivered to one neuron for one cycle,
// already accumulated by whatever delivery mechanism feeds the neuron.
type Inputs struct {
	Spikes  float32 `desc:"summed weighted spike input arriving this cycle, in pA"`
	Current float32 `desc:"injected current for this cycle, in pA"`
}

// Total returns the total external input current.
func (in Inputs) Total() float32 {
	return in.Spikes + in.Current
}

// SpikeFunc is called when a neuron emits a spike, with the fraction of
// the cycle that had elapsed at the threshold crossing, for delivery to
// downstream targets.  It runs before the post-spike resets, so the
// neuron still holds the state at the spike.
type SpikeFunc func(nrn *Neuron, offset float32)

// glif.ActParams contains all the GLIF activation computation params and
// functions, at the neuron level.  This is included in glif.Pool to drive
// the computation.  Update must be called after any parameter changes to
// recompute the derived values and bind the update function for the
// selected model.
type ActParams struct {
	Model    ModelTypes     `desc:"which of the five GLIF model variants to run -- use SetModel to also re-default the model-dependent parameter groups"`
	Dynamics VmDynamics     `desc:"integration method for the membrane potential and the voltage-dependent threshold component"`
	Mem      MemParams      `view:"inline" desc:"passive membrane constants and refractory duration"`
	Reset    ResetParams    `view:"inline" desc:"post-spike membrane potential reset rules"`
	Thr      thresh.Params  `view:"inline" desc:"dynamic firing threshold parameters"`
	ASC      asc.Params     `view:"no-inline" desc:"after-spike current channel parameters (models 3-5)"`
	Dt       DtParams       `view:"inline" desc:"cycle duration constants"`
	Noise    ActNoiseParams `view:"inline" desc:"how, where, and how much noise to add"`
	VmRange  minmax.F32     `view:"inline" desc:"allowed range for Vm -- guards against forward-Euler instability at large stepsizes, and is wide enough to never bind in normal operation"`
	ISITau   float32        `def:"16" min:"1" desc:"time constant in cycles for integrating the average inter-spike interval"`

	TRefCyc int32   `inactive:"+" view:"-" json:"-" xml:"-" desc:"refractory duration in whole cycles = round(Mem.TRef / Dt.Sec), at least 1 for any positive Mem.TRef -- the cycle of the spike counts as the first"`
	VmDt    float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"forward-Euler integration factor = Dt.DtMSec / Mem.CM"`
	VmDk    float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"exact-method per-cycle membrane decay factor = exp(-Dt.DtMSec * Mem.G / Mem.CM)"`
	ISIDt   float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"rate = 1 / ISITau"`

	cycFun func(ac *ActParams, nrn *Neuron, in Inputs, fn SpikeFunc)
}

func (ac *ActParams) Defaults() {
	ac.Model = LifRAscA
	ac.Dynamics = LinearExact
	ac.Mem.Defaults()
	ac.Reset.Defaults()
	ac.Thr.Defaults()
	ac.ASC.Defaults()
	ac.Dt.Defaults()
	ac.Noise.Defaults()
	ac.VmRange.Min = -200
	ac.VmRange.Max = 100
	ac.ISITau = 16
	ac.Update()
}

// SetModel sets the model variant and re-defaults the parameter groups
// specific to it, so that every model level runs out of the box: the
// variants without after-spike currents get no channels, those with them
// get the standard two-channel fit.
func (ac *ActParams) SetModel(mt ModelTypes) {
	ac.Model = mt
	if mt.HasASC() {
		ac.ASC.Defaults()
	} else {
		ac.ASC.Off()
	}
	ac.Update()
}

// Update must be called after any changes to parameters: recomputes the
// derived values for the current cycle duration and binds the update
// function for the selected model.  Idempotent.
func (ac *ActParams) Update() {
	ac.Mem.Update()
	ac.Dt.Update()
	ac.Noise.Update()
	ac.Thr.CalcDecay(ac.Dt.DtMSec)
	ac.ASC.CalcDecay(ac.Dt.DtMSec)
	if ac.Mem.TRef > 0 {
		ac.TRefCyc = int32(ints.MaxInt(int(mat32.Round(ac.Mem.TRef/ac.Dt.Sec)), 1))
	} else {
		ac.TRefCyc = 0
	}
	ac.VmDt = ac.Dt.DtMSec / ac.Mem.CM
	ac.VmDk = math32.Exp(-ac.Dt.DtMSec * ac.Mem.G / ac.Mem.CM)
	ac.ISIDt = 1 / ac.ISITau
	switch ac.Model {
	case Lif:
		ac.cycFun = (*ActParams).cycleLif
	case LifR:
		ac.cycFun = (*ActParams).cycleLifR
	case LifAsc:
		ac.cycFun = (*ActParams).cycleLifAsc
	case LifRAsc:
		ac.cycFun = (*ActParams).cycleLifRAsc
	case LifRAscA:
		ac.cycFun = (*ActParams).cycleLifRAscA
	default:
		ac.cycFun = nil
	}
}

///////////////////////////////////////////////////////////////////////
//  Init

// InitActs initializes the neuron state to the resting configuration for
// the current parameters: Vm at rest, threshold at its asymptote, and
// after-spike currents at their initial values.  Allocates the per-channel
// current state if the channel count changed.
func (ac *ActParams) InitActs(nrn *Neuron) {
	nrn.Vm = ac.Mem.EL
	nrn.ThrSpike = 0
	nrn.ThrVolt = 0
	nrn.Thr = ac.Thr.ThrFmParts(0, 0)
	if len(nrn.ASC) != ac.ASC.NChans() {
		nrn.ASC = make([]float32, ac.ASC.NChans())
	}
	nrn.ASCSum = ac.ASC.InitCurs(nrn.ASC)
	nrn.I = 0
	nrn.Spike = 0
	nrn.SpikeT = -1
	nrn.Noise = 0
	nrn.ISI = -1
	nrn.ISIAvg = -1
	nrn.RefCyc = 0
}

///////////////////////////////////////////////////////////////////////
//  Cycle

// CycleNeuron runs one cycle of updating on the neuron from the given
// inputs.  If the neuron spikes this cycle, the optional spike function
// is called with the sub-cycle offset of the threshold crossing.
// Update must have been called before the first cycle.
func (ac *ActParams) CycleNeuron(nrn *Neuron, in Inputs, fn SpikeFunc) {
	if ac.cycFun == nil {
		panic("glif.ActParams: CycleNeuron called before Update -- no model update function bound")
	}
	ac.cycFun(ac, nrn, in, fn)
}

// InputFmRaw computes the total input current for this cycle from the
// given inputs, generating and adding noise if enabled, and records the
// result in nrn.I.
func (ac *ActParams) InputFmRaw(nrn *Neuron, in Inputs) float32 {
	if ac.Noise.Type != NoNoise && ac.Noise.Dist != erand.Mean {
		nrn.Noise = float32(ac.Noise.Gen(-1))
	}
	i := in.Total()
	if ac.Noise.Type == INoise {
		i += nrn.Noise
	}
	nrn.I = i
	return i
}

// InetFmVm computes the net membrane current from the membrane potential,
// input current, and after-spike current sum.
func (ac *ActParams) InetFmVm(vm, i, ascSum float32) float32 {
	return -ac.Mem.G*(vm-ac.Mem.EL) + i + ascSum
}

// VmFmI integrates the membrane potential one cycle for the given total
// input current and after-spike current sum, using the selected dynamics.
// The result is clipped into VmRange, which only binds under forward-Euler
// instability.
func (ac *ActParams) VmFmI(nrn *Neuron, i, ascSum float32) {
	var nwVm float32
	if ac.Dynamics == LinearExact {
		vinf := ac.Mem.EL + (i+ascSum)/ac.Mem.G
		nwVm = vinf + (nrn.Vm-vinf)*ac.VmDk
	} else {
		nwVm = nrn.Vm + ac.VmDt*ac.InetFmVm(nrn.Vm, i, ascSum)
	}
	if ac.Noise.Type == VmNoise {
		nwVm += nrn.Noise
	}
	nrn.Vm = ac.VmRange.ClipVal(nwVm)
}

// ThrVoltFmVm updates the voltage-dependent threshold component one cycle
// for the given membrane potential (its pre-integration value), using the
// selected dynamics.
func (ac *ActParams) ThrVoltFmVm(nrn *Neuron, vm float32) {
	vrel := vm - ac.Mem.EL
	if ac.Dynamics == LinearExact {
		nrn.ThrVolt = ac.Thr.Volt.ThVFmVmExact(nrn.ThrVolt, vrel)
	} else {
		nrn.ThrVolt = ac.Thr.Volt.ThVFmVmEuler(nrn.ThrVolt, vrel, ac.Dt.DtMSec)
	}
}

// SpikeTFmVm returns the fraction of the cycle elapsed at the threshold
// crossing, linearly interpolated between the previous and current
// membrane potentials.  Returns 1 (end of cycle) if the potential did not
// rise during the cycle.
func SpikeTFmVm(vmPrev, vmNew, thr float32) float32 {
	if vmNew <= vmPrev {
		return 1
	}
	st := (thr - vmPrev) / (vmNew - vmPrev)
	if st < 0 {
		return 0
	}
	if st > 1 {
		return 1
	}
	return st
}

// ISIFmSpike updates the inter-spike-interval bookkeeping from the
// just-computed Spike value.
func (ac *ActParams) ISIFmSpike(nrn *Neuron) {
	if nrn.Spike > 0 {
		if nrn.ISIAvg == -1 {
			nrn.ISIAvg = -2
		} else if nrn.ISI > 0 { // must have spiked to update
			ac.AvgFmISI(&nrn.ISIAvg, nrn.ISI+1)
		}
		nrn.ISI = 0
	} else if nrn.ISI >= 0 {
		nrn.ISI++
	}
}

// AvgFmISI updates the average inter-spike interval from the current one.
func (ac *ActParams) AvgFmISI(avg *float32, isi float32) {
	if *avg <= 0 {
		*avg = isi
	} else if isi < 0.8*(*avg) {
		*avg = isi // if significantly less than we take that
	} else {
		*avg += ac.ISIDt * (isi - *avg) // integrate on slower time scale
	}
}

///////////////////////////////////////////////////////////////////////
//  Model variant cycle functions

// cycleLif is one cycle of model 1, the basic leaky integrate-and-fire
// neuron: fixed threshold, fixed reset potential.
func (ac *ActParams) cycleLif(nrn *Neuron, in Inputs, fn SpikeFunc) {
	i := ac.InputFmRaw(nrn, in)
	nrn.Spike = 0
	nrn.SpikeT = -1
	if nrn.RefCyc > 0 {
		nrn.RefCyc--
		ac.ISIFmSpike(nrn)
		return
	}
	vmPrev := nrn.Vm
	ac.VmFmI(nrn, i, 0)
	nrn.Thr = ac.Thr.ThrFmParts(0, 0)
	if nrn.Vm >= nrn.Thr {
		nrn.Spike = 1
		nrn.SpikeT = SpikeTFmVm(vmPrev, nrn.Vm, nrn.Thr)
		if fn != nil {
			fn(nrn, nrn.SpikeT)
		}
		nrn.Vm = ac.Reset.VReset
		if ac.TRefCyc > 0 {
			nrn.RefCyc = ac.TRefCyc - 1 // spike cycle counts as the first refractory cycle
		}
	}
	ac.ISIFmSpike(nrn)
}

// cycleLifR is one cycle of model 2: biologically defined reset rules,
// with a spike-triggered threshold component and an affine voltage reset.
func (ac *ActParams) cycleLifR(nrn *Neuron, in Inputs, fn SpikeFunc) {
	i := ac.InputFmRaw(nrn, in)
	nrn.Spike = 0
	nrn.SpikeT = -1
	if nrn.RefCyc > 0 {
		nrn.RefCyc--
		nrn.ThrSpike = ac.Thr.Spike.DecayCyc(nrn.ThrSpike)
		nrn.Thr = ac.Thr.ThrFmParts(nrn.ThrSpike, 0)
		ac.ISIFmSpike(nrn)
		return
	}
	vmPrev := nrn.Vm
	ac.VmFmI(nrn, i, 0)
	nrn.ThrSpike = ac.Thr.Spike.DecayCyc(nrn.ThrSpike)
	nrn.Thr = ac.Thr.ThrFmParts(nrn.ThrSpike, 0)
	if nrn.Vm >= nrn.Thr {
		nrn.Spike = 1
		nrn.SpikeT = SpikeTFmVm(vmPrev, nrn.Vm, nrn.Thr)
		if fn != nil {
			fn(nrn, nrn.SpikeT)
		}
		nrn.Vm = ac.Reset.A*nrn.Vm + ac.Reset.B
		nrn.ThrSpike += ac.Thr.Spike.Add
		nrn.Thr = ac.Thr.ThrFmParts(nrn.ThrSpike, 0)
		if ac.TRefCyc > 0 {
			nrn.RefCyc = ac.TRefCyc - 1
		}
	}
	ac.ISIFmSpike(nrn)
}

// cycleLifAsc is one cycle of model 3: the basic neuron plus after-spike
// currents.  The membrane integration sees the previous cycle's current
// sum, which then decays.
func (ac *ActParams) cycleLifAsc(nrn *Neuron, in Inputs, fn SpikeFunc) {
	i := ac.InputFmRaw(nrn, in)
	nrn.Spike = 0
	nrn.SpikeT = -1
	if nrn.RefCyc > 0 {
		nrn.RefCyc--
		nrn.ASCSum = ac.ASC.DecayCurs(nrn.ASC)
		ac.ISIFmSpike(nrn)
		return
	}
	vmPrev := nrn.Vm
	ac.VmFmI(nrn, i, nrn.ASCSum)
	nrn.Thr = ac.Thr.ThrFmParts(0, 0)
	nrn.ASCSum = ac.ASC.DecayCurs(nrn.ASC)
	if nrn.Vm >= nrn.Thr {
		nrn.Spike = 1
		nrn.SpikeT = SpikeTFmVm(vmPrev, nrn.Vm, nrn.Thr)
		if fn != nil {
			fn(nrn, nrn.SpikeT)
		}
		nrn.Vm = ac.Reset.VReset
		nrn.ASCSum = ac.ASC.SpikeCurs(nrn.ASC)
		if ac.TRefCyc > 0 {
			nrn.RefCyc = ac.TRefCyc - 1
		}
	}
	ac.ISIFmSpike(nrn)
}

// cycleLifRAsc is one cycle of model 4: reset rules and after-spike
// currents together.
func (ac *ActParams) cycleLifRAsc(nrn *Neuron, in Inputs, fn SpikeFunc) {
	i := ac.InputFmRaw(nrn, in)
	nrn.Spike = 0
	nrn.SpikeT = -1
	if nrn.RefCyc > 0 {
		nrn.RefCyc--
		nrn.ThrSpike = ac.Thr.Spike.DecayCyc(nrn.ThrSpike)
		nrn.Thr = ac.Thr.ThrFmParts(nrn.ThrSpike, 0)
		nrn.ASCSum = ac.ASC.DecayCurs(nrn.ASC)
		ac.ISIFmSpike(nrn)
		return
	}
	vmPrev := nrn.Vm
	ac.VmFmI(nrn, i, nrn.ASCSum)
	nrn.ThrSpike = ac.Thr.Spike.DecayCyc(nrn.ThrSpike)
	nrn.Thr = ac.Thr.ThrFmParts(nrn.ThrSpike, 0)
	nrn.ASCSum = ac.ASC.DecayCurs(nrn.ASC)
	if nrn.Vm >= nrn.Thr {
		nrn.Spike = 1
		nrn.SpikeT = SpikeTFmVm(vmPrev, nrn.Vm, nrn.Thr)
		if fn != nil {
			fn(nrn, nrn.SpikeT)
		}
		nrn.Vm = ac.Reset.A*nrn.Vm + ac.Reset.B
		nrn.ThrSpike += ac.Thr.Spike.Add
		nrn.Thr = ac.Thr.ThrFmParts(nrn.ThrSpike, 0)
		nrn.ASCSum = ac.ASC.SpikeCurs(nrn.ASC)
		if ac.TRefCyc > 0 {
			nrn.RefCyc = ac.TRefCyc - 1
		}
	}
	ac.ISIFmSpike(nrn)
}

// cycleLifRAscA is one cycle of model 5, the full model: reset rules,
// after-spike currents, and the voltage-dependent threshold component.
// The voltage component evolves against the pre-integration membrane
// potential, and against the held potential during the refractory period.
func (ac *ActParams) cycleLifRAscA(nrn *Neuron, in Inputs, fn SpikeFunc) {
	i := ac.InputFmRaw(nrn, in)
	nrn.Spike = 0
	nrn.SpikeT = -1
	if nrn.RefCyc > 0 {
		nrn.RefCyc--
		nrn.ThrSpike = ac.Thr.Spike.DecayCyc(nrn.ThrSpike)
		ac.ThrVoltFmVm(nrn, nrn.Vm)
		nrn.Thr = ac.Thr.ThrFmParts(nrn.ThrSpike, nrn.ThrVolt)
		nrn.ASCSum = ac.ASC.DecayCurs(nrn.ASC)
		ac.ISIFmSpike(nrn)
		return
	}
	vmPrev := nrn.Vm
	ac.VmFmI(nrn, i, nrn.ASCSum)
	nrn.ThrSpike = ac.Thr.Spike.DecayCyc(nrn.ThrSpike)
	ac.ThrVoltFmVm(nrn, vmPrev)
	nrn.Thr = ac.Thr.ThrFmParts(nrn.ThrSpike, nrn.ThrVolt)
	nrn.ASCSum = ac.ASC.DecayCurs(nrn.ASC)
	if nrn.Vm >= nrn.Thr {
		nrn.Spike = 1
		nrn.SpikeT = SpikeTFmVm(vmPrev, nrn.Vm, nrn.Thr)
		if fn != nil {
			fn(nrn, nrn.SpikeT)
		}
		nrn.Vm = ac.Reset.A*nrn.Vm + ac.Reset.B
		nrn.ThrSpike += ac.Thr.Spike.Add
		nrn.Thr = ac.Thr.ThrFmParts(nrn.ThrSpike, nrn.ThrVolt)
		nrn.ASCSum = ac.ASC.SpikeCurs(nrn.ASC)
		if ac.TRefCyc > 0 {
			nrn.RefCyc = ac.TRefCyc - 1
		}
	}
	ac.ISIFmSpike(nrn)
}

//////////////////////////////////////////////////////////////////////////////////////
//  MemParams

// MemParams are the passive membrane constants and the refractory
// duration.  Units follow the original fits: conductance in nS,
// capacitance in pF, potentials in mV, currents in pA, time in msec,
// except TRef which is in seconds, matching Time.TimePerCyc.
type MemParams struct {
	G    float32 `def:"9.43" min:"0" desc:"membrane leak conductance, in nS"`
	EL   float32 `def:"-78.85" desc:"resting membrane potential, in mV (E_L)"`
	CM   float32 `def:"58.72" min:"0" desc:"membrane capacitance, in pF (C_m)"`
	TRef float32 `def:"0.00375" min:"0" desc:"duration of the post-spike refractory period, in seconds (t_ref)"`

	Tau float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"membrane time constant = CM / G, in msec"`
}

func (mm *MemParams) Update() {
	mm.Tau = mm.CM / mm.G
}

func (mm *MemParams) Defaults() {
	mm.G = 9.43
	mm.EL = -78.85
	mm.CM = 58.72
	mm.TRef = 0.00375
	mm.Update()
}

//////////////////////////////////////////////////////////////////////////////////////
//  ResetParams

// ResetParams specify what happens to the membrane potential at a spike.
// Models 1 and 3 reset to the fixed VReset level; models 2, 4 and 5 apply
// the affine rule Vm = A*Vm + B to the potential at the spike.
type ResetParams struct {
	VReset float32 `def:"-78.85" desc:"fixed post-spike membrane potential, in mV (V_reset) -- models 1 and 3"`
	A      float32 `def:"0.2" desc:"fraction of the spiking membrane potential entering the affine reset rule (voltage_reset_a) -- models 2, 4, 5"`
	B      float32 `def:"-48" desc:"additive term of the affine reset rule, in mV (voltage_reset_b) -- models 2, 4, 5"`
}

func (rp *ResetParams) Update() {
}

func (rp *ResetParams) Defaults() {
	rp.VReset = -78.85
	rp.A = 0.2
	rp.B = -48
}

//////////////////////////////////////////////////////////////////////////////////////
//  DtParams

// DtParams are the time step constants: one cycle of updating advances
// the simulation by DtMSec milliseconds.
type DtParams struct {
	DtMSec float32 `def:"1" min:"0" desc:"duration of one cycle, in milliseconds"`

	Sec float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"duration of one cycle in seconds = DtMSec / 1000 -- matches Time.TimePerCyc"`
}

func (dp *DtParams) Update() {
	dp.Sec = dp.DtMSec / 1000
}

func (dp *DtParams) Defaults() {
	dp.DtMSec = 1
	dp.Update()
}

//////////////////////////////////////////////////////////////////////////////////////
//  Noise

// ActNoiseType are different types / locations of random noise for the
// GLIF update
type ActNoiseType int

//go:generate stringer -type=ActNoiseType

var KiT_ActNoiseType = kit.Enums.AddEnum(ActNoiseTypeN, kit.NotBitFlag, nil)

func (ev ActNoiseType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ActNoiseType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The activation noise types
const (
	// NoNoise means no noise added
	NoNoise ActNoiseType = iota

	// INoise means noise is added to the total input current, in pA
	INoise

	// VmNoise means noise is added to the membrane potential after
	// integration, in mV
	VmNoise

	ActNoiseTypeN
)

// ActNoiseParams contains parameters for neuron-level noise
type ActNoiseParams struct {
	erand.RndParams
	Type ActNoiseType `desc:"where to add the noise"`
}

func (an *ActNoiseParams) Update() {
}

func (an *ActNoiseParams) Defaults() {
	an.Type = NoNoise
}
