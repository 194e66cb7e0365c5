//go:build debug

package polyshell

import (
	"log"
	"os"
)

// logger is the debug logger instance, only compiled in with the "debug" build tag.
var logger = log.New(os.Stderr, "[polyshell DEBUG] ", log.LstdFlags)

// logDebugf logs a debug message when the package is built with -tags debug.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
