package elements

import (
	"math"

	"github.com/astrolib/smd/internal/applog"
)

var singularityLog = applog.New("elements")

// Singularity tolerances applied when converting Cartesian to Keplerian.
// Matching the source, these snap near-degenerate geometry to an exact
// canonical value rather than propagating noisy near-singular angles.
const (
	eccentricitySingularity = 1e-10
	inclinationSingularity  = 1e-10
	angleWrapSingularity    = 1e-10
)

// PreserveInclinationPiBug controls which inclination the "near-singular"
// snap-to-zero policy targets.
//
// The source snaps inclination to zero when it is within
// inclinationSingularity of PI, not of 0 (see DESIGN.md and spec Design
// Notes -- this is flagged there as a likely bug: it folds a retrograde
// equatorial orbit, i == pi, into the same canonical zero as a prograde
// equatorial orbit, i == 0, which are not the same orbit). Because the
// correct behavior was never confirmed, this library preserves the
// source's behavior by default and logs a warning whenever the snap fires,
// rather than silently "fixing" semantics nothing has validated.
//
// Set to false to snap only inclinations near 0 instead.
var PreserveInclinationPiBug = true

func snapInclination(i float64) float64 {
	if PreserveInclinationPiBug {
		if math.Abs(i-math.Pi) < inclinationSingularity {
			singularityLog.Log("level", "warn", "msg", "inclination snapped to 0 (preserved source singularity policy, see DESIGN.md)",
				"inclination_rad", i, "tolerance", inclinationSingularity)
			return 0
		}
		return i
	}
	if math.Abs(i) < inclinationSingularity {
		return 0
	}
	return i
}
