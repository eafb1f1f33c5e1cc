package bodies

import "github.com/astrolib/smd/internal/config"

// System couples a central body with the ephemeris source used to place it
// (and any perturbing third bodies) in the solar system at a given epoch.
// It is the runtime equivalent of what a frame.Tag is at compile time: code
// elsewhere takes a System as an ordinary value because the central body is
// chosen at runtime, not fixed by the type system (see the design notes in
// the frame package).
type System struct {
	Central    Body
	Ephemeris  Ephemeris
	ThirdBodies []Body
}

// NewSystem builds a System around a central body. The ephemeris backend
// is selected by internal/config: by default (or when config.Config.
// UseAnalyticalEph is false) it's VSOP87 via HeliocentricEphemeris, rooted
// at dir if given or config.Config.VSOP87Dir otherwise; when
// UseAnalyticalEph is set (e.g. no VSOP87 data directory is available),
// AnalyticalEarthEphemeris is used instead, which only supports Earth as
// the body being placed.
func NewSystem(central Body, dir string, thirdBodies ...Body) System {
	cfg := config.Load()
	if dir == "" {
		dir = cfg.VSOP87Dir
	}
	var eph Ephemeris
	if cfg.UseAnalyticalEph {
		eph = AnalyticalEarthEphemeris{}
	} else {
		eph = &HeliocentricEphemeris{Dir: dir}
	}
	return System{
		Central:     central,
		Ephemeris:   eph,
		ThirdBodies: thirdBodies,
	}
}
