// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

import (
	"fmt"

	"github.com/goki/ki/kit"
)

//go:generate stringer -type=ModelTypes
//go:generate stringer -type=VmDynamics

// ModelTypes are the five GLIF model variants from Teeter et al (2018).
// Each variant is a strict superset of the mechanisms of the one before
// it, so the full model 5 contains all of them.
type ModelTypes int

const (
	// Lif is model 1, the basic leaky integrate-and-fire neuron:
	// fixed threshold and fixed reset potential.
	Lif ModelTypes = iota

	// LifR is model 2, adding biologically defined reset rules to Lif:
	// a spike-triggered threshold component and an affine voltage reset.
	LifR

	// LifAsc is model 3, adding after-spike currents to Lif.
	LifAsc

	// LifRAsc is model 4, combining the model 2 reset rules with the
	// after-spike currents.
	LifRAsc

	// LifRAscA is model 5, the full model: reset rules, after-spike
	// currents, and a voltage-dependent threshold component.
	LifRAscA

	ModelTypesN
)

var KiT_ModelTypes = kit.Enums.AddEnum(ModelTypesN, kit.NotBitFlag, nil)

func (ev ModelTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ModelTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// Level returns the conventional 1-based model number (1 = Lif through
// 5 = LifRAscA).
func (mt ModelTypes) Level() int {
	return int(mt) + 1
}

// HasResetRules is true for the models with biologically defined reset
// rules: an affine voltage reset and a spike-triggered threshold
// component (models 2, 4, 5).
func (mt ModelTypes) HasResetRules() bool {
	return mt == LifR || mt == LifRAsc || mt == LifRAscA
}

// HasASC is true for the models with after-spike currents (models 3, 4, 5).
func (mt ModelTypes) HasASC() bool {
	return mt == LifAsc || mt == LifRAsc || mt == LifRAscA
}

// HasVoltThr is true for the model with the voltage-dependent threshold
// component (model 5 only).
func (mt ModelTypes) HasVoltThr() bool {
	return mt == LifRAscA
}

// ModelName returns the canonical lowercase model name used in
// configuration dictionaries: "lif", "lif_r", "lif_asc", "lif_r_asc",
// "lif_r_asc_a".
func (mt ModelTypes) ModelName() string {
	switch mt {
	case Lif:
		return "lif"
	case LifR:
		return "lif_r"
	case LifAsc:
		return "lif_asc"
	case LifRAsc:
		return "lif_r_asc"
	case LifRAscA:
		return "lif_r_asc_a"
	}
	return "lif"
}

// ModelTypeFmName parses a configuration model name into the
// corresponding type.  Each model is selected by its canonical name,
// the glif_-prefixed form of it, or its model number, e.g. "lif_r",
// "glif_lif_r" and "2" all select LifR.  Matching is exact.
func ModelTypeFmName(nm string) (ModelTypes, error) {
	switch nm {
	case "lif", "glif_lif", "1":
		return Lif, nil
	case "lif_r", "glif_lif_r", "2":
		return LifR, nil
	case "lif_asc", "glif_lif_asc", "3":
		return LifAsc, nil
	case "lif_r_asc", "glif_lif_r_asc", "4":
		return LifRAsc, nil
	case "lif_r_asc_a", "glif_lif_r_asc_a", "5":
		return LifRAscA, nil
	}
	return Lif, fmt.Errorf("glif.ModelTypeFmName: model name: %v not valid", nm)
}

// VmDynamics selects the method used to integrate the membrane potential
// over one cycle.
type VmDynamics int

const (
	// LinearForwardEuler is the explicit first-order forward-Euler update
	// of the membrane equation.  Its error depends on the stepsize.
	LinearForwardEuler VmDynamics = iota

	// LinearExact integrates the linear membrane equation with its
	// closed-form solution over the cycle, holding the input constant.
	// Exact for any stepsize, and the preferred method.
	LinearExact

	VmDynamicsN
)

var KiT_VmDynamics = kit.Enums.AddEnum(VmDynamicsN, kit.NotBitFlag, nil)

func (ev VmDynamics) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *VmDynamics) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// DynName returns the configuration-dictionary name of the method:
// "linear_forward_euler" or "linear_exact".
func (vd VmDynamics) DynName() string {
	if vd == LinearExact {
		return "linear_exact"
	}
	return "linear_forward_euler"
}

// VmDynamicsFmName parses a configuration method name.  Matching is
// exact.
func VmDynamicsFmName(nm string) (VmDynamics, error) {
	switch nm {
	case "linear_forward_euler":
		return LinearForwardEuler, nil
	case "linear_exact":
		return LinearExact, nil
	}
	return LinearForwardEuler, fmt.Errorf("glif.VmDynamicsFmName: method name: %v not valid", nm)
}
