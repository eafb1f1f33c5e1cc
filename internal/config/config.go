// Package config loads the library's runtime configuration: where the
// VSOP87 ephemeris series live on disk, which integrator defaults to use
// absent an explicit override, and the logging sink. It mirrors the
// source's viper-based conf.toml loader, but -- since this library has no
// SPICE/Horizons subprocess bridge to configure -- is scoped to ephemeris
// and integrator defaults only.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	VSOP87Dir        string // directory containing soniakeys/meeus VSOP87 series files
	UseAnalyticalEph bool   // force the linear-mean-element Earth fallback instead of VSOP87
	DefaultIntegrator string // configured tableau name; integrator.Run does not read it and falls back to RKF45 itself
	LogLevel         string
}

var (
	mu     sync.Mutex
	loaded bool
	cached Config
)

// Load reads conf.toml from the directory named by the SMD_CONFIG
// environment variable, caching the result. Unset fields default to a
// VSOP87-free, RKF45-default configuration so that the library works
// without any configuration file present.
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if loaded {
		return cached
	}
	cached = Config{DefaultIntegrator: "rkf45", LogLevel: "info"}
	loaded = true

	confPath := os.Getenv("SMD_CONFIG")
	if confPath == "" {
		return cached
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %s/conf.toml not found, using defaults: %s\n", confPath, err)
		return cached
	}

	if dir := viper.GetString("ephemeris.vsop87_dir"); dir != "" {
		cached.VSOP87Dir = dir
	}
	cached.UseAnalyticalEph = viper.GetBool("ephemeris.analytical_fallback")
	if name := viper.GetString("integrator.default"); name != "" {
		cached.DefaultIntegrator = name
	}
	if level := viper.GetString("log.level"); level != "" {
		cached.LogLevel = level
	}
	return cached
}

// Reset clears the cached configuration. Intended for tests that set
// SMD_CONFIG and want Load to re-read it.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	loaded = false
}
