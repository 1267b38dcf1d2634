// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glif

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/emer/glif/asc"
)

///////////////////////////////////////////////////////////////////////
//  status.go implements the configuration-dictionary interface, using
//  the conventional parameter names from the published GLIF fits

// GetStatus returns the configuration dictionary for the given params
// and neuron: every parameter under its conventional name, the current
// state ("V_m", "ASCurrents", "threshold", "I", "t_ref_remaining"), and
// the "recordables" list.  Values are float64 scalars, []float64
// vectors, and strings.  nrn can be nil for a parameters-only view.
func GetStatus(ac *ActParams, nrn *Neuron) map[string]interface{} {
	d := map[string]interface{}{
		"glif_model":        float64(ac.Model.Level()),
		"V_dynamics_method": ac.Dynamics.DynName(),
		"G":                 float64(ac.Mem.G),
		"E_L":               float64(ac.Mem.EL),
		"C_m":               float64(ac.Mem.CM),
		"t_ref":             float64(ac.Mem.TRef),
		"V_reset":           float64(ac.Reset.VReset),
		"voltage_reset_a":   float64(ac.Reset.A),
		"voltage_reset_b":   float64(ac.Reset.B),
		"th_inf":            float64(ac.Thr.Inf),
		"a_spike":           float64(ac.Thr.Spike.Add),
		"b_spike":           float64(ac.Thr.Spike.Decay),
		"a_voltage":         float64(ac.Thr.Volt.AVolt),
		"b_voltage":         float64(ac.Thr.Volt.BVolt),
		"asc_init":          floats64(ac.ASC.Init),
		"k":                 floats64(ac.ASC.K),
		"asc_amps":          floats64(ac.ASC.Amps),
		"r":                 floats64(ac.ASC.R),
		"t_ref_total":       float64(ac.TRefCyc),
		"recordables":       append([]string(nil), NeuronVars...),
	}
	if nrn != nil {
		d["V_m"] = float64(nrn.Vm)
		d["threshold"] = float64(nrn.Thr)
		d["I"] = float64(nrn.I)
		d["ASCurrents"] = floats64(nrn.ASC)
		d["t_ref_remaining"] = float64(nrn.RefCyc)
	}
	return d
}

// SetStatus applies a configuration dictionary to the given params and
// neuron.  The whole update is transactional: on any unknown key, wrong
// value type, or failed validation it returns an error and neither the
// params nor the neuron are modified.  On success it commits everything
// and calls Update, so the new derived values are in effect for the
// next cycle.
//
// The "glif_model" key (name, alias, or number) re-defaults the
// after-spike current group for the new model, as SetModel does, and is
// applied before all other keys, so channel vectors given in the same
// dictionary override the defaults.  If a model change alters the
// channel count and "ASCurrents" is not given, the per-channel state is
// re-initialized from the new parameters.
//
// nrn can be nil for a parameters-only update; state keys then fail.
func SetStatus(ac *ActParams, nrn *Neuron, d map[string]interface{}) error {
	tmp := *ac
	tmp.ASC = ac.ASC.Clone()

	if v, ok := d["glif_model"]; ok {
		mt, err := statusModel(v)
		if err != nil {
			return err
		}
		tmp.Model = mt
		if mt.HasASC() {
			tmp.ASC.Defaults()
		} else {
			tmp.ASC.Off()
		}
	}

	var n Neuron
	if nrn != nil {
		n = *nrn
		n.ASC = append([]float32(nil), nrn.ASC...)
	}

	prs := map[string]*float32{
		"G":               &tmp.Mem.G,
		"E_L":             &tmp.Mem.EL,
		"C_m":             &tmp.Mem.CM,
		"t_ref":           &tmp.Mem.TRef,
		"V_reset":         &tmp.Reset.VReset,
		"voltage_reset_a": &tmp.Reset.A,
		"voltage_reset_b": &tmp.Reset.B,
		"th_inf":          &tmp.Thr.Inf,
		"a_spike":         &tmp.Thr.Spike.Add,
		"b_spike":         &tmp.Thr.Spike.Decay,
		"a_voltage":       &tmp.Thr.Volt.AVolt,
		"b_voltage":       &tmp.Thr.Volt.BVolt,
	}
	vecs := map[string]*[]float32{
		"asc_init": &tmp.ASC.Init,
		"k":        &tmp.ASC.K,
		"asc_amps": &tmp.ASC.Amps,
		"r":        &tmp.ASC.R,
	}

	ascSet := false
	for k, v := range d {
		if fp, ok := prs[k]; ok {
			f, err := statusFloat(k, v)
			if err != nil {
				return err
			}
			*fp = f
			continue
		}
		if vp, ok := vecs[k]; ok {
			fs, err := statusFloats(k, v)
			if err != nil {
				return err
			}
			*vp = fs
			continue
		}
		switch k {
		case "glif_model": // applied above
		case "V_dynamics_method":
			nm, ok := v.(string)
			if !ok {
				return fmt.Errorf("glif.SetStatus: key: %v requires a string value, got %T", k, v)
			}
			vd, err := VmDynamicsFmName(nm)
			if err != nil {
				return err
			}
			tmp.Dynamics = vd
		case "V_m", "threshold", "I":
			if nrn == nil {
				return fmt.Errorf("glif.SetStatus: key: %v requires neuron state", k)
			}
			f, err := statusFloat(k, v)
			if err != nil {
				return err
			}
			switch k {
			case "V_m":
				n.Vm = f
			case "threshold":
				n.Thr = f
			case "I":
				n.I = f
			}
		case "ASCurrents":
			if nrn == nil {
				return fmt.Errorf("glif.SetStatus: key: %v requires neuron state", k)
			}
			fs, err := statusFloats(k, v)
			if err != nil {
				return err
			}
			n.ASC = fs
			ascSet = true
		case "recordables", "t_ref_remaining", "t_ref_total":
			return fmt.Errorf("glif.SetStatus: key: %v is read-only", k)
		default:
			return fmt.Errorf("glif.SetStatus: key: %v not valid", k)
		}
	}

	if err := tmp.Validate(); err != nil {
		return err
	}
	if nrn != nil {
		for _, sv := range []struct {
			nm string
			v  float32
		}{{"V_m", n.Vm}, {"threshold", n.Thr}, {"I", n.I}} {
			if math32.IsNaN(sv.v) || math32.IsInf(sv.v, 0) {
				return fmt.Errorf("glif.SetStatus: %v value: %v not finite", sv.nm, sv.v)
			}
		}
		if ascSet {
			if len(n.ASC) != tmp.ASC.NChans() {
				return fmt.Errorf("glif.SetStatus: ASCurrents length: %v must match the %v configured channels", len(n.ASC), tmp.ASC.NChans())
			}
			for ci, c := range n.ASC {
				if math32.IsNaN(c) || math32.IsInf(c, 0) {
					return fmt.Errorf("glif.SetStatus: ASCurrents[%v] value: %v not finite", ci, c)
				}
			}
			n.ASCSum = asc.Sum(n.ASC)
		} else if len(n.ASC) != tmp.ASC.NChans() {
			n.ASC = make([]float32, tmp.ASC.NChans())
			n.ASCSum = tmp.ASC.InitCurs(n.ASC)
		}
	}

	*ac = tmp
	if nrn != nil {
		*nrn = n
	}
	ac.Update()
	return nil
}

// Validate checks the parameters for consistency, returning the first
// problem found.  SetStatus validates before committing, so a committed
// configuration is always valid; direct field writes can call this
// before Update.
func (ac *ActParams) Validate() error {
	for _, pv := range []struct {
		nm string
		v  float32
	}{
		{"G", ac.Mem.G}, {"E_L", ac.Mem.EL}, {"C_m", ac.Mem.CM}, {"t_ref", ac.Mem.TRef},
		{"V_reset", ac.Reset.VReset}, {"voltage_reset_a", ac.Reset.A}, {"voltage_reset_b", ac.Reset.B},
		{"th_inf", ac.Thr.Inf}, {"a_spike", ac.Thr.Spike.Add}, {"b_spike", ac.Thr.Spike.Decay},
		{"a_voltage", ac.Thr.Volt.AVolt}, {"b_voltage", ac.Thr.Volt.BVolt},
		{"dt", ac.Dt.DtMSec},
	} {
		if math32.IsNaN(pv.v) || math32.IsInf(pv.v, 0) {
			return fmt.Errorf("glif.ActParams: %v value: %v not finite", pv.nm, pv.v)
		}
	}
	if ac.Mem.G <= 0 {
		return fmt.Errorf("glif.ActParams: G must be positive, is: %v", ac.Mem.G)
	}
	if ac.Mem.CM <= 0 {
		return fmt.Errorf("glif.ActParams: C_m must be positive, is: %v", ac.Mem.CM)
	}
	if ac.Mem.TRef < 0 {
		return fmt.Errorf("glif.ActParams: t_ref must be >= 0, is: %v", ac.Mem.TRef)
	}
	if ac.Dt.DtMSec <= 0 {
		return fmt.Errorf("glif.ActParams: cycle duration must be positive, is: %v", ac.Dt.DtMSec)
	}
	if ac.Thr.Spike.Decay < 0 {
		return fmt.Errorf("glif.ActParams: b_spike must be >= 0, is: %v", ac.Thr.Spike.Decay)
	}
	if ac.Model.HasVoltThr() && ac.Thr.Volt.BVolt <= 0 {
		return fmt.Errorf("glif.ActParams: b_voltage must be positive for %v, is: %v", ac.Model, ac.Thr.Volt.BVolt)
	}
	if err := ac.ASC.Validate(); err != nil {
		return err
	}
	if ac.Model.HasASC() && ac.ASC.NChans() == 0 {
		return fmt.Errorf("glif.ActParams: model %v requires at least one after-spike current channel", ac.Model)
	}
	if !ac.Model.HasASC() && ac.ASC.NChans() > 0 {
		return fmt.Errorf("glif.ActParams: model %v does not use after-spike currents, but %v channels are configured", ac.Model, ac.ASC.NChans())
	}
	return nil
}

func statusFloat(k string, v interface{}) (float32, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("glif.SetStatus: key: %v requires a float64 value, got %T", k, v)
	}
	return float32(f), nil
}

func statusFloats(k string, v interface{}) ([]float32, error) {
	switch fv := v.(type) {
	case []float64:
		fs := make([]float32, len(fv))
		for i := range fv {
			fs[i] = float32(fv[i])
		}
		return fs, nil
	case []interface{}: // as decoded from JSON
		fs := make([]float32, len(fv))
		for i := range fv {
			f, ok := fv[i].(float64)
			if !ok {
				return nil, fmt.Errorf("glif.SetStatus: key: %v element %v is not a float64, got %T", k, i, fv[i])
			}
			fs[i] = float32(f)
		}
		return fs, nil
	}
	return nil, fmt.Errorf("glif.SetStatus: key: %v requires a []float64 value, got %T", k, v)
}

func statusModel(v interface{}) (ModelTypes, error) {
	switch mv := v.(type) {
	case string:
		return ModelTypeFmName(mv)
	case float64:
		if mv != float64(int(mv)) {
			return Lif, fmt.Errorf("glif.SetStatus: glif_model number: %v is not an integer", mv)
		}
		return ModelTypeFmName(strconv.Itoa(int(mv)))
	case int:
		return ModelTypeFmName(strconv.Itoa(mv))
	}
	return Lif, fmt.Errorf("glif.SetStatus: glif_model requires a model name or number, got %T", v)
}

func floats64(fs []float32) []float64 {
	vs := make([]float64, len(fs))
	for i := range fs {
		vs[i] = float64(fs[i])
	}
	return vs
}
