//go:build !debug

package decompose

func logDebugf(format string, v ...interface{}) {}
