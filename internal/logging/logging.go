// Package logging provides leveled, colored console output for the CLI.
//
// Info and warning messages need --verbose, debug messages need --debug.
// Errors are always shown. Quiet suppresses everything but errors.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes prefixed messages according to its verbosity.
type Logger struct {
	Verbose bool
	Debug   bool
	Quiet   bool

	// Out receives regular output, os.Stdout when nil.
	Out io.Writer
	// Err receives warnings and errors, os.Stderr when nil.
	Err io.Writer
}

func (l Logger) out() io.Writer {
	if l.Out == nil {
		return os.Stdout
	}

	return l.Out
}

func (l Logger) err() io.Writer {
	if l.Err == nil {
		return os.Stderr
	}

	return l.Err
}

// OutWriter returns the writer for regular output.
func (l Logger) OutWriter() io.Writer {
	return l.out()
}

// ErrWriter returns the writer for diagnostics.
func (l Logger) ErrWriter() io.Writer {
	return l.err()
}

// Printf writes an unprefixed line to the regular output unless quiet.
func (l Logger) Printf(msg string, args ...any) {
	if l.Quiet {
		return
	}

	fmt.Fprintf(l.out(), msg+"\n", args...)
}

// Infof writes an informational line when verbose or debug.
func (l Logger) Infof(msg string, args ...any) {
	if l.Quiet || !(l.Verbose || l.Debug) {
		return
	}

	fmt.Fprintf(l.out(), color.GreenString("[info] ")+msg+"\n", args...)
}

// Debugf writes a debug line when debug.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Quiet || !l.Debug {
		return
	}

	fmt.Fprintf(l.out(), color.CyanString("[debug] ")+msg+"\n", args...)
}

// Warnf writes a warning unless quiet.
func (l Logger) Warnf(msg string, args ...any) {
	if l.Quiet {
		return
	}

	fmt.Fprintf(l.err(), color.YellowString("[warn] ")+msg+"\n", args...)
}

// Errorf always writes an error line.
func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(l.err(), color.RedString("[error] ")+msg+"\n", args...)
}
