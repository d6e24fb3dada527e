package modbump

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "modbump",
})

// SetLogger replaces the logger used by the package. Passing nil silences it.
// It is not safe to call concurrently with Run or DryRun.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Logger returns the logger currently used by the package.
func Logger() *log.Logger {
	return logger
}
