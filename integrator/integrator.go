package integrator

import "math"

// Derivative evaluates dy/dt at (t, y). The equations-of-motion layer
// supplies this; the integrator itself is agnostic of what y represents.
type Derivative func(t float64, y []float64) []float64

// CrashCheck reports whether the current state should terminate
// propagation immediately (e.g. the vehicle has crashed).
type CrashCheck func(t float64, y []float64) bool

// Event is a value-returning predicate over (t, y) whose sign change
// between two accepted steps brackets an event of interest. Terminal
// events stop propagation as soon as the bracket is found; non-terminal
// events are only reported.
type Event struct {
	Name     string
	Value    func(t float64, y []float64) float64
	Terminal bool
}

// EventHit records a detected sign change, bracketed between TLo and THi.
type EventHit struct {
	Name     string
	TLo, THi float64
}

// Options configures a single Run.
type Options struct {
	Tableau *Tableau

	// AbsTol, RelTol are the error-norm tolerances. Both default to 1e-13.
	AbsTol, RelTol float64

	// FixedStep, if nonzero, disables the PI controller: every step is
	// taken at exactly this size (sign taken from the propagation
	// direction), and the embedded error is folded back into the
	// accepted state as a free accuracy improvement rather than used to
	// accept/reject.
	FixedStep float64

	// InitialStep is used as Δt for the very first trial when nonzero;
	// otherwise a step of 60 seconds (in the propagation direction) seeds
	// the first trial.
	InitialStep float64

	Crash  CrashCheck
	Events []Event

	// Record, if non-nil, is called with (t, y) after every accepted step
	// (including the initial and final points).
	Record func(t float64, y []float64)
}

const (
	piEpsilon        = 0.8
	maxInnerRejects  = 1000
	maxOuterSteps    = 100000000
	shrinkFloor      = 0.2
	growCeilingError = 2e-4
	growFactor       = 5.0
)

// Result is the outcome of a Run.
type Result struct {
	T       float64
	Y       []float64
	Events  []EventHit
	Crashed bool
	Stopped string // empty, or a diagnostic describing why propagation halted early
}

// Run integrates y0 from t0 to t1 using opts.Tableau (defaulting to RKF45
// if unset), applying the PI step controller unless opts.FixedStep is set,
// and returns the terminal (t, y) plus any event hits and early-stop
// diagnostics.
func Run(t0, t1 float64, y0 []float64, f Derivative, opts Options) Result {
	tab := opts.Tableau
	if tab == nil {
		tab = RKF45
	}
	atol, rtol := opts.AbsTol, opts.RelTol
	if atol == 0 {
		atol = 1e-13
	}
	if rtol == 0 {
		rtol = 1e-13
	}

	dir := 1.0
	if t1 < t0 {
		dir = -1.0
	}

	y := append([]float64(nil), y0...)
	t := t0

	dt := opts.InitialStep
	if opts.FixedStep != 0 {
		dt = opts.FixedStep
	}
	if dt == 0 {
		dt = 60
	}
	dt = math.Abs(dt) * dir

	if opts.Record != nil {
		opts.Record(t, y)
	}

	var (
		havePrev     bool
		dtPrev, ePrev float64
		fsalF0       []float64
		result       Result
		prevEventVals []float64
	)

	if len(opts.Events) > 0 {
		prevEventVals = make([]float64, len(opts.Events))
		for i, e := range opts.Events {
			prevEventVals[i] = e.Value(t, y)
		}
	}

	for outer := 0; outer < maxOuterSteps; outer++ {
		if reachedEnd(t, t1, dir) {
			result.T, result.Y = t, y
			return result
		}
		// Clip the final step so t lands exactly on t1.
		if (dir > 0 && t+dt > t1) || (dir < 0 && t+dt < t1) {
			dt = t1 - t
		}

		if opts.Crash != nil && opts.Crash(t, y) {
			result.T, result.Y = t, y
			result.Crashed = true
			result.Stopped = "crash"
			return result
		}
		if hasNonFinite(y) {
			result.T, result.Y = t, y
			result.Stopped = "non-finite state"
			return result
		}

		var (
			yNew    []float64
			errNorm float64
			stageF  [][]float64
		)

		if opts.FixedStep != 0 {
			yNew, stageF = fixedStep(tab, t, y, dt, f, fsalF0)
			for i := 0; i < tab.Stages; i++ {
				for c := range yNew {
					yNew[c] += tab.DB[i] * dt * stageF[i][c]
				}
			}
			tPrev := t
			result.T, result.Y = t+dt, yNew
			t, y = t+dt, yNew
			if tab.FSAL {
				last := stageF[tab.Stages-1]
				fsalF0 = last
			}
			if opts.Record != nil {
				opts.Record(t, y)
			}
			if fired := checkEvents(opts.Events, prevEventVals, tPrev, t, y); len(fired) > 0 {
				result.Events = append(result.Events, fired...)
				for _, hit := range fired {
					for _, e := range opts.Events {
						if e.Name == hit.Name && e.Terminal {
							result.Stopped = "event: " + e.Name
							return result
						}
					}
				}
			}
			continue
		}

		accepted := false
		for reject := 0; reject < maxInnerRejects; reject++ {
			yNew, stageF = fixedStep(tab, t, y, dt, f, fsalF0)
			errNorm = errorNorm(tab, stageF, dt, y, yNew, atol, rtol)

			if tPlusDtEqualsT(t, dt) {
				result.T, result.Y = t, y
				result.Stopped = "step-size underflow"
				return result
			}

			if errNorm <= 1 {
				accepted = true
				break
			}
			dt = shrinkStep(dt, errNorm)
		}
		if !accepted {
			result.T, result.Y = t, y
			result.Stopped = "exceeded maximum step rejections"
			return result
		}

		nextDt := piControl(dt, dtPrev, errNorm, ePrev, havePrev)
		dtPrev, ePrev, havePrev = dt, errNorm, true
		if tab.FSAL {
			// The tableau's last stage evaluates f at the accepted
			// solution already, so it is exactly the next step's f0
			// (k_{s-1}/dt, per the spec, since stageF holds f not k).
			fsalF0 = stageF[tab.Stages-1]
		}

		tPrev := t
		t, y = t+dt, yNew
		dt = nextDt

		if opts.Record != nil {
			opts.Record(t, y)
		}
		if len(opts.Events) > 0 {
			fired := checkEvents(opts.Events, prevEventVals, tPrev, t, y)
			if len(fired) > 0 {
				result.Events = append(result.Events, fired...)
				for _, hit := range fired {
					for _, e := range opts.Events {
						if e.Name == hit.Name && e.Terminal {
							result.Stopped = "event: " + e.Name
							result.T, result.Y = t, y
							return result
						}
					}
				}
			}
		}
	}
	result.T, result.Y = t, y
	result.Stopped = "exceeded maximum outer iterations"
	return result
}

func reachedEnd(t, t1, dir float64) bool {
	if dir > 0 {
		return t >= t1
	}
	return t <= t1
}

func tPlusDtEqualsT(t, dt float64) bool { return t+dt == t }

// fixedStep evaluates one trial step of the tableau (no accept/reject
// logic), returning the higher-order solution and every stage derivative
// (so callers can extract the FSAL carry-over).
func fixedStep(tab *Tableau, t float64, y []float64, dt float64, f Derivative, fsalF0 []float64) ([]float64, [][]float64) {
	n := len(y)
	stageF := make([][]float64, tab.Stages)
	k := make([][]float64, tab.Stages)

	for i := 0; i < tab.Stages; i++ {
		if i == 0 && tab.FSAL && fsalF0 != nil {
			stageF[0] = fsalF0
			k[0] = scale(fsalF0, dt)
			continue
		}
		yi := append([]float64(nil), y...)
		for j := 0; j < i; j++ {
			aij := tab.A[i][j]
			if aij == 0 {
				continue
			}
			for c := 0; c < n; c++ {
				yi[c] += aij * k[j][c]
			}
		}
		fi := f(t+tab.C[i]*dt, yi)
		stageF[i] = fi
		k[i] = scale(fi, dt)
	}

	yNew := append([]float64(nil), y...)
	for i := 0; i < tab.Stages; i++ {
		bi := tab.B[i]
		if bi == 0 {
			continue
		}
		for c := 0; c < n; c++ {
			yNew[c] += bi * k[i][c]
		}
	}
	return yNew, stageF
}

func errorNorm(tab *Tableau, stageF [][]float64, dt float64, y, yNew []float64, atol, rtol float64) float64 {
	n := len(y)
	e := make([]float64, n)
	for i := 0; i < tab.Stages; i++ {
		dbi := tab.DB[i]
		if dbi == 0 {
			continue
		}
		fi := stageF[i]
		for c := 0; c < n; c++ {
			e[c] += dbi * dt * fi[c]
		}
	}

	maxNorm := 0.0
	for c := 0; c < n; c++ {
		if math.Abs(yNew[c]-y[c]) > 1e6 || math.IsNaN(yNew[c]) || math.IsInf(yNew[c], 0) {
			return 2
		}
		scale := atol + rtol*math.Abs(yNew[c])
		norm := math.Abs(e[c]) / scale
		if norm > maxNorm {
			maxNorm = norm
		}
	}
	return maxNorm
}

func piControl(dt, dtPrev, e, ePrev float64, havePrev bool) float64 {
	var factor float64
	if !havePrev || ePrev == 0 {
		factor = math.Pow(piEpsilon/e, 1.0/5)
	} else {
		factor = math.Abs(dt/dtPrev) * math.Pow(piEpsilon/e, 1.0/12.5) * math.Pow(ePrev/e, 3.0/50)
	}
	if factor < shrinkFloor {
		factor = shrinkFloor
	}
	if e < growCeilingError {
		factor = growFactor
	}
	return dt * factor
}

func shrinkStep(dt, e float64) float64 {
	factor := math.Pow(piEpsilon/e, 1.0/5)
	if factor < shrinkFloor {
		factor = shrinkFloor
	}
	if factor > 1 {
		factor = 1
	}
	return dt * factor
}

func checkEvents(events []Event, prev []float64, tPrev, t float64, y []float64) []EventHit {
	lo, hi := math.Min(tPrev, t), math.Max(tPrev, t)
	var hits []EventHit
	for i, e := range events {
		v := e.Value(t, y)
		if (prev[i] < 0 && v >= 0) || (prev[i] > 0 && v <= 0) {
			hits = append(hits, EventHit{Name: e.Name, TLo: lo, THi: hi})
		}
		prev[i] = v
	}
	return hits
}

func hasNonFinite(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

func scale(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = v * s
	}
	return out
}
