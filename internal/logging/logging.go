// Package logging provides the shell's package-level logger.
//
// Engine packages are pure and log-free; logging belongs to the CLI and the
// interactive shell.
package logging

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger.
var L = clog.New(os.Stderr)

// SetLevel adjusts the logger from a configuration string. Unknown values
// fall back to info.
func SetLevel(level string) {
	switch level {
	case "debug":
		L.SetLevel(clog.DebugLevel)
	case "warn":
		L.SetLevel(clog.WarnLevel)
	case "error":
		L.SetLevel(clog.ErrorLevel)
	default:
		L.SetLevel(clog.InfoLevel)
	}
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}
