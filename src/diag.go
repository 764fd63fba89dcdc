package latlong

import (
	"github.com/charmbracelet/log"
)

// Conversions never fail outright on questionable input; they clamp or
// carry on and describe the problem as human readable text.  That text
// goes through a single injected sink so the package itself stays free
// of I/O and applications can route the complaints wherever their
// other diagnostics go.

// Reporter receives advisory diagnostics.  Report must not fail the
// caller; it is fire and forget.
type Reporter interface {
	Report(format string, a ...any)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(format string, a ...any)

func (f ReporterFunc) Report(format string, a ...any) {
	f(format, a...)
}

// Discard drops all diagnostics.
var Discard Reporter = ReporterFunc(func(string, ...any) {})

// Default sink logs at warning level so library users get sensible
// output with zero setup.
var reporter Reporter = ReporterFunc(log.Warnf)

// SetReporter replaces the diagnostic sink and returns the previous
// one.  Passing nil restores the default (charmbracelet/log warnings).
// Swap it during startup or test setup; conversions running
// concurrently with a swap may use either sink.
func SetReporter(r Reporter) Reporter {
	var previous = reporter

	if r == nil {
		r = ReporterFunc(log.Warnf)
	}
	reporter = r

	return previous
}

func report(format string, a ...any) {
	reporter.Report(format, a...)
}
