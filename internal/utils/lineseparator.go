package utils

import (
	"runtime"
	"sync/atomic"
)

var lineSeparator atomic.Value

func init() {
	lineSeparator.Store(SystemLineSeparator())
}

// SystemLineSeparator returns the platform's native line terminator
func SystemLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// LineSeparator returns the process-wide line terminator used for generated files
func LineSeparator() string {
	return lineSeparator.Load().(string)
}

// SetLineSeparator replaces the process-wide line terminator
func SetLineSeparator(sep string) {
	lineSeparator.Store(sep)
}
