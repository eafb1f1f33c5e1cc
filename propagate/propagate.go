// Package propagate is the glue between a vehicle's state, a configured
// set of equations of motion, and the integrator: it packs an element
// set into the flat vector integrator.Derivative operates on, wraps
// EquationsOfMotion.Derivative as that Derivative, converts between
// elapsed integrator seconds and the JulianDate epochs the rest of the
// core uses, and records every accepted step into a History. It plays
// the role the source's Mission.Propagate/Stop/GetState trio played,
// minus the mission-level waypoint and thrust-control scripting, which
// belongs above this layer, not in it.
package propagate

import (
	"github.com/astrolib/smd/eom"
	"github.com/astrolib/smd/elements"
	"github.com/astrolib/smd/integrator"
	"github.com/astrolib/smd/state"
	"github.com/astrolib/smd/units"
)

// Run propagates v's current state by duration d (negative runs
// backward) under eqs, driving integrator.Run with a Derivative adapter
// built from eqs.Derivative and eqs.CheckCrash. Every accepted step is
// recorded into the returned History, keyed by epoch; v is left holding
// the terminal state. opts.Crash and opts.Record are both owned by this
// adapter -- any Crash the caller sets is ignored, and any Record the
// caller sets is still called, after the history write.
func Run(v state.Vehicle, eqs eom.EquationsOfMotion, d units.Duration, opts integrator.Options) (*state.History, integrator.Result) {
	start := v.State()
	sys := start.System
	epoch0 := start.Epoch

	el, err := elements.As(start.Elements, eqs.Kind, sys.Central.Mu)
	if err != nil {
		panic(err)
	}

	hist := state.NewHistory()
	hist.Put(state.New(epoch0, el, sys))

	toElements := func(y []float64) (elements.Elements, error) {
		var v6 [6]float64
		copy(v6[:], y)
		return elements.FromVector6(eqs.Kind, v6)
	}

	userRecord := opts.Record
	opts.Record = func(t float64, y []float64) {
		e, err := toElements(y)
		if err != nil {
			return
		}
		hist.Put(state.New(epoch0.Add(units.Duration(t)), e, sys))
		if userRecord != nil {
			userRecord(t, y)
		}
	}
	opts.Crash = func(t float64, y []float64) bool {
		e, err := toElements(y)
		if err != nil {
			return true
		}
		return eqs.CheckCrash(e)
	}

	f := func(t float64, y []float64) []float64 {
		e, err := toElements(y)
		if err != nil {
			panic(err)
		}
		deriv := eqs.Derivative(epoch0.Add(units.Duration(t)), e)
		return deriv[:]
	}

	y0 := el.Vector6()
	res := integrator.Run(0, d.Seconds(), y0[:], f, opts)

	if final, err := toElements(res.Y); err == nil {
		finalState := state.New(epoch0.Add(units.Duration(res.T)), final, sys)
		hist.Put(finalState)
		v.SetState(finalState)
	}

	return hist, res
}
