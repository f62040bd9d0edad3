// Package presenter provides consistent CLI output for user-facing
// messages: success, error, warning, and informational lines with color
// support and quiet-mode suppression.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Presenter writes user-facing CLI messages.
type Presenter struct {
	output      io.Writer
	errorOutput io.Writer
	quiet       bool
}

var defaultPresenter = New()

// New creates a Presenter writing to stdout/stderr with color detection
// based on the environment.
func New() *Presenter {
	configureColor()
	return &Presenter{
		output:      os.Stdout,
		errorOutput: os.Stderr,
	}
}

// NewWithWriters creates a Presenter with explicit writers, mainly for tests.
func NewWithWriters(output, errorOutput io.Writer) *Presenter {
	return &Presenter{output: output, errorOutput: errorOutput}
}

func configureColor() {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
		return
	}
	switch os.Getenv("SKILLKIT_COLOR") {
	case "always", "force":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// SetQuiet suppresses non-error output when set.
func (p *Presenter) SetQuiet(quiet bool) { p.quiet = quiet }

// Error writes an error with optional context to the error stream. Errors
// are never suppressed by quiet mode.
func (p *Presenter) Error(err error, context string) {
	if context != "" {
		fmt.Fprintf(p.errorOutput, "%s %s: %v\n", color.RedString("Error:"), context, err)
		return
	}
	fmt.Fprintf(p.errorOutput, "%s %v\n", color.RedString("Error:"), err)
}

// Success writes a confirmation message.
func (p *Presenter) Success(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s %s\n", color.GreenString("✓"), message)
}

// Warning writes a non-fatal notice.
func (p *Presenter) Warning(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s %s\n", color.YellowString("Warning:"), message)
}

// Info writes a plain informational message.
func (p *Presenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.output, message)
}

// Package-level helpers using the default presenter.

func Error(err error, context string) { defaultPresenter.Error(err, context) }
func Success(message string)          { defaultPresenter.Success(message) }
func Warning(message string)          { defaultPresenter.Warning(message) }
func Info(message string)             { defaultPresenter.Info(message) }
func SetQuiet(quiet bool)             { defaultPresenter.SetQuiet(quiet) }
