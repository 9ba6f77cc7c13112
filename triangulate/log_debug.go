//go:build debug

package triangulate

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[polytri/triangulate DEBUG] ", log.LstdFlags)

func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
