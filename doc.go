// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package glif is the overall repository for the generalized leaky
integrate-and-fire (GLIF) family of spiking neuron models implemented
in the Go language (golang), following Teeter et al. (2018), as used
in the Allen Institute cell-type database.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* glif: the core implementation of the five GLIF model variants, from the
basic leaky integrator (model 1) up to the full model with biologically
defined reset rules, after-spike currents, and an adapting threshold
(model 5), along with the neuron state, parameter configuration, and
recording infrastructure.

* asc: the after-spike current channels that are activated by each spike
and decay exponentially, providing the slow adaptation currents of
models 3-5.

* thresh: the dynamic firing threshold components: the spike-triggered
component that jumps with each spike, and the voltage-dependent component
that tracks the membrane potential (model 5).

* examples: these compile into runnable programs. examples/glifrun runs a
single neuron of any model variant under current injection and saves the
resulting traces, while examples/glifplot provides an interactive GUI for
exploring the model dynamics.
*/
package glif
