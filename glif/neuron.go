// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

import (
	"fmt"
	"unsafe"
)

// glif.Neuron holds all of the state variables for one GLIF neuron.
// The float32 variables are accessible by name or index through the
// NeuronVars registry for recording and analysis -- they must remain
// at the start of the struct, in the same order as the NeuronVars list.
type Neuron struct {
	Vm       float32 `desc:"membrane potential, in mV"`
	Thr      float32 `desc:"current dynamic firing threshold, in mV -- the asymptotic level plus the dynamic components"`
	ThrSpike float32 `desc:"spike-triggered threshold component, in mV -- jumps at each spike and decays back to zero (models 2, 4, 5)"`
	ThrVolt  float32 `desc:"voltage-dependent threshold component, in mV -- tracks the membrane potential above rest (model 5)"`
	ASCSum   float32 `desc:"sum of the after-spike currents, in pA -- enters the membrane equation along with the input current (models 3-5)"`
	I        float32 `desc:"total input current applied on the last cycle, in pA, including any current noise"`
	Spike    float32 `desc:"whether the neuron spiked on the last cycle (0 or 1)"`
	SpikeT   float32 `desc:"fraction of the cycle elapsed at the threshold crossing (0..1), linearly interpolated between the bracketing potentials -- -1 if no spike"`
	Noise    float32 `desc:"noise value generated on the last cycle, if noise is enabled"`
	ISI      float32 `desc:"current inter-spike interval, in cycles -- counts up since the last spike, -1 = before first spike"`
	ISIAvg   float32 `desc:"average inter-spike interval -- starts at -1, goes to -2 after the first spike, and is then updated at each subsequent spike"`

	RefCyc int32     `desc:"refractory cycles remaining -- 0 = the neuron is integrating normally"`
	ASC    []float32 `desc:"per-channel after-spike currents, in pA -- length fixed by the asc parameter vectors"`
}

var NeuronVars = []string{"Vm", "Thr", "ThrSpike", "ThrVolt", "ASCSum", "I", "Spike", "SpikeT", "Noise", "ISI", "ISIAvg"}

var NeuronVarsMap map[string]int

// NeuronVarAliases are alternative names accepted for the recordable
// variables, matching the names used in configuration dictionaries.
var NeuronVarAliases = map[string]string{
	"V_m":            "Vm",
	"threshold":      "Thr",
	"AScurrents_sum": "ASCSum",
}

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

// NeuronVarIdxByName returns the index of the variable in the NeuronVars
// list, or an error if the name is not valid.  Aliases from
// NeuronVarAliases are accepted.
func NeuronVarIdxByName(varNm string) (int, error) {
	if cnm, ok := NeuronVarAliases[varNm]; ok {
		varNm = cnm
	}
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float32 {
	fv := (*float32)(unsafe.Pointer(uintptr(unsafe.Pointer(nrn)) + uintptr(4*idx)))
	return *fv
}

// VarByName returns variable by name, or error if not a valid name.
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return 0, err
	}
	return nrn.VarByIndex(i), nil
}
