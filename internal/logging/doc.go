// Package logging constructs the slog loggers used across tabstop.
//
// Two output formats are supported: a compact console format for
// interactive use and JSON for machine consumption. Components tag their
// log lines through NewComponentLogger and fall back to a no-op logger
// when none is provided.
package logging
