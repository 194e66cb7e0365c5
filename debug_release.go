//go:build !debug

package polyshell

// logDebugf is a no-op outside of debug builds; see debug.go.
func logDebugf(format string, v ...interface{}) {}
