package bodies

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/astrolib/smd/internal/config"
)

func TestNewSystemDefaultsToHeliocentricEphemeris(t *testing.T) {
	config.Reset()
	t.Setenv("SMD_CONFIG", "")
	sys := NewSystem(Earth, "/tmp/vsop87")
	if _, ok := sys.Ephemeris.(*HeliocentricEphemeris); !ok {
		t.Errorf("expected *HeliocentricEphemeris by default, got %T", sys.Ephemeris)
	}
}

func TestNewSystemUsesAnalyticalEphemerisWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	confToml := "[ephemeris]\nanalytical_fallback = true\n"
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), []byte(confToml), 0644); err != nil {
		t.Fatal(err)
	}
	config.Reset()
	t.Setenv("SMD_CONFIG", dir)
	defer config.Reset()

	sys := NewSystem(Earth, "")
	if _, ok := sys.Ephemeris.(AnalyticalEarthEphemeris); !ok {
		t.Errorf("expected AnalyticalEarthEphemeris when config sets analytical_fallback, got %T", sys.Ephemeris)
	}
}
