package state

import (
	"sort"

	"github.com/astrolib/smd/elements"
	"github.com/astrolib/smd/units"
)

// History is a chronologically ordered State sequence keyed by Julian
// date. Insertion order need not match chronological order; Put keeps the
// backing slice sorted by date so First/Last/Closest stay O(log n) and
// O(1). If two writes land on the same Julian instant, the later write
// wins, matching the source's map-with-unique-keys semantics.
type History struct {
	dates  []units.JulianDate
	states map[units.JulianDate]State
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{states: make(map[units.JulianDate]State)}
}

// Put records s at its own epoch, overwriting any existing entry at that
// exact Julian date.
func (h *History) Put(s State) {
	if _, exists := h.states[s.Epoch]; exists {
		h.states[s.Epoch] = s
		return
	}
	h.states[s.Epoch] = s
	idx := sort.Search(len(h.dates), func(i int) bool { return h.dates[i] >= s.Epoch })
	h.dates = append(h.dates, 0)
	copy(h.dates[idx+1:], h.dates[idx:])
	h.dates[idx] = s.Epoch
}

// Len returns the number of distinct epochs stored.
func (h *History) Len() int { return len(h.dates) }

// First returns the earliest recorded state.
func (h *History) First() (State, bool) {
	if len(h.dates) == 0 {
		return State{}, false
	}
	return h.states[h.dates[0]], true
}

// Last returns the latest recorded state.
func (h *History) Last() (State, bool) {
	if len(h.dates) == 0 {
		return State{}, false
	}
	return h.states[h.dates[len(h.dates)-1]], true
}

// At returns the exact state at jd, if present.
func (h *History) At(jd units.JulianDate) (State, bool) {
	s, ok := h.states[jd]
	return s, ok
}

// Closest returns the state at the target date, linearly interpolating
// between the two bracketing samples using each element kind's own
// Interpolate rule (so Keplerian angle-wrap handling applies). If target
// is outside the recorded range, the nearest endpoint is returned exactly.
func (h *History) Closest(target units.JulianDate) (State, bool) {
	n := len(h.dates)
	if n == 0 {
		return State{}, false
	}
	if target <= h.dates[0] {
		return h.states[h.dates[0]], true
	}
	if target >= h.dates[n-1] {
		return h.states[h.dates[n-1]], true
	}
	idx := sort.Search(n, func(i int) bool { return h.dates[i] >= target })
	hi := h.dates[idx]
	if hi == target {
		return h.states[hi], true
	}
	lo := h.dates[idx-1]
	loState, hiState := h.states[lo], h.states[hi]

	frac := float64(target.Sub(lo)) / float64(hi.Sub(lo))
	interp, err := elements.Interpolate(loState.Elements, hiState.Elements, frac)
	if err != nil {
		return loState, true
	}
	return State{Epoch: target, Elements: interp, System: loState.System}, true
}
