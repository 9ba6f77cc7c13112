//go:build debug

package polytri

import (
	"log"
	"os"
)

// Debug logger instance.
var logger = log.New(os.Stderr, "[polytri DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages when the debug build tag is set.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
