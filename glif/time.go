// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

// glif.Time contains the timing state for running a simulation: one
// Cycle of updating advances Time by TimePerCyc seconds.
type Time struct {
	Time       float32 `desc:"accumulated amount of time the simulation has been running, in simulation-time (not real world time), in seconds"`
	Cycle      int     `desc:"cycle counter: number of iterations of state updating since the last Reset"`
	TimePerCyc float32 `def:"0.001" desc:"amount of time to increment per cycle, in seconds -- kept equal to ActParams.Dt.Sec by Pool"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerCyc = 0.001
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
	if tm.TimePerCyc == 0 {
		tm.Defaults()
	}
}

// CycleInc increments at the cycle level
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.Time += tm.TimePerCyc
}
