package xgbext

import (
	"fmt"
	"log"
	"os"
)

// PrintLog controls whether xgbext emits diagnostics. By default, it is
// enabled.
var PrintLog = true

// xgblog is a wrapper around a *log.Logger so we can control whether it
// should output anything.
type xgblog struct {
	*log.Logger
}

func newLogger() xgblog {
	return xgblog{log.New(os.Stderr, "XGBEXT: ", log.Lshortfile)}
}

func (lg xgblog) Printf(format string, v ...interface{}) {
	if PrintLog {
		lg.Logger.Output(2, fmt.Sprintf(format, v...))
	}
}
