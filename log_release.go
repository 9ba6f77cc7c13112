//go:build !debug

package polytri

// logDebugf is a no-op outside debug builds.
func logDebugf(format string, v ...interface{}) {}
