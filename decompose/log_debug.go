//go:build debug

package decompose

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[polytri/decompose DEBUG] ", log.LstdFlags)

func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
