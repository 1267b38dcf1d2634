// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

import (
	"fmt"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/chewxy/math32"
)

// glif.Pool is a pool of neurons sharing one set of activation
// parameters, cycled together against per-neuron inputs.  There is no
// connectivity: input delivery is the caller's responsibility, and the
// neurons do not interact.
type Pool struct {
	Nm      string    `desc:"name of the pool"`
	Act     ActParams `view:"add-fields" desc:"activation parameters shared by all neurons in the pool"`
	Neurons []Neuron  `desc:"slice of neuron state values, updated in place each cycle"`
	Time    Time      `view:"inline" desc:"simulation time, advanced once per Cycle -- TimePerCyc follows Act.Dt"`
}

// NewPool returns a new pool of n neurons with default parameters,
// built and initialized.
func NewPool(name string, n int) *Pool {
	pl := &Pool{Nm: name}
	pl.Defaults()
	pl.Build(n)
	pl.Init()
	return pl
}

// Defaults sets default parameter values
func (pl *Pool) Defaults() {
	pl.Act.Defaults()
	pl.Time.Defaults()
	pl.Time.TimePerCyc = pl.Act.Dt.Sec
}

// Build allocates the neuron state for n neurons.  Init must be called
// before cycling.
func (pl *Pool) Build(n int) {
	pl.Neurons = make([]Neuron, n)
}

// Init initializes all neuron state for the current parameters and
// resets the simulation clock.
func (pl *Pool) Init() {
	pl.Act.Update()
	for ni := range pl.Neurons {
		pl.Act.InitActs(&pl.Neurons[ni])
	}
	pl.Time.Reset()
	pl.Time.TimePerCyc = pl.Act.Dt.Sec
}

// Cycle runs one cycle of updating on every neuron, from the parallel
// slice of per-neuron inputs, then advances the clock.  The optional
// spike function is called for each neuron that spikes.  The number of
// inputs must match the number of neurons.
func (pl *Pool) Cycle(ins []Inputs, fn SpikeFunc) {
	if len(ins) != len(pl.Neurons) {
		panic(fmt.Sprintf("glif.Pool: %v inputs for %v neurons", len(ins), len(pl.Neurons)))
	}
	pl.Time.TimePerCyc = pl.Act.Dt.Sec
	for ni := range pl.Neurons {
		pl.Act.CycleNeuron(&pl.Neurons[ni], ins[ni], fn)
	}
	pl.Time.CycleInc()
}

// UnitVals fills in values of the given variable name on each neuron in
// the pool, into the given float32 slice (only resized if not big
// enough).  Returns error on invalid variable name, with the slice
// filled with NaN.
func (pl *Pool) UnitVals(vals *[]float32, varNm string) error {
	nn := len(pl.Neurons)
	if *vals == nil || cap(*vals) < nn {
		*vals = make([]float32, nn)
	} else {
		*vals = (*vals)[0:nn]
	}
	vidx, err := NeuronVarIdxByName(varNm)
	if err != nil {
		nan := math32.NaN()
		for ni := range pl.Neurons {
			(*vals)[ni] = nan
		}
		return err
	}
	for ni := range pl.Neurons {
		(*vals)[ni] = pl.Neurons[ni].VarByIndex(vidx)
	}
	return nil
}

// SizeReport returns a string reporting the size of the neuron state
// memory in the pool.
func (pl *Pool) SizeReport() string {
	nchn := pl.Act.ASC.NChans()
	perNrn := int(unsafe.Sizeof(Neuron{})) + nchn*4
	mem := len(pl.Neurons) * perNrn
	return fmt.Sprintf("%v: %v neurons, %v ASC channels, %v", pl.Nm, len(pl.Neurons), nchn,
		(datasize.ByteSize)(mem).HumanReadable())
}
