//go:build !debug

package triangulate

func logDebugf(format string, v ...interface{}) {}
