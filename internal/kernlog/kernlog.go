// Package kernlog is the kernel's diagnostic sink: a thin, verbosity-
// gated wrapper over the standard logger, matching the teacher's
// cmd/mipsvm/main.go printIfVerbose/log.Printf/log.Fatal pattern. It
// doubles as the "write_console" diagnostic sink of spec §6/§7: IPC
// subsystems report advisory, human-readable diagnostics here, but the
// machine-readable contract always remains the return value.
package kernlog

import (
	"log"
	"os"
)

// Logger gates Printf-style diagnostics behind a verbosity flag.
type Logger struct {
	verbose bool
	std     *log.Logger
}

// New returns a Logger writing to stderr, verbose per the given flag.
func New(verbose bool) *Logger {
	return &Logger{
		verbose: verbose,
		std:     log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Printf logs a diagnostic only when verbose is enabled.
func (l *Logger) Printf(format string, v ...interface{}) {
	if l.verbose {
		l.std.Printf(format, v...)
	}
}

// Always logs a diagnostic unconditionally — used for conditions an
// operator needs to see regardless of -v, such as a deadlock detection
// firing (spec §7).
func (l *Logger) Always(format string, v ...interface{}) {
	l.std.Printf(format, v...)
}

// Fatal logs and exits, matching log.Fatal call sites in the teacher's
// cmd/mipsvm and cmd/lc3 drivers.
func (l *Logger) Fatal(v ...interface{}) {
	l.std.Fatal(v...)
}
