// Package applog centralizes the go-kit logfmt logger construction used
// throughout the library, following the pattern the source used for its
// per-spacecraft logger (SCLogInit): a logfmt logger over a synchronized
// stdout writer, with a component name attached via With.
package applog

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

var base = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))

// New returns a logger tagged with component=name.
func New(component string) kitlog.Logger {
	return kitlog.With(base, "component", component)
}
