package cmd

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger writes diagnostics to stderr; stdout is reserved for progress and
// command output.
var logger = newLogger()

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "clocktransfer",
		Level:  log.InfoLevel,
	})
}
