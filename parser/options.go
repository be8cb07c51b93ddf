package parser

import (
	"errors"

	"github.com/charmbracelet/log"
)

func NewOptions() Options {
	return Options{
		LogPrefix: "bpmn-parser",
	}
}

type Options struct {
	DisableConsoleLog bool        // Disables the logging of warnings.
	Logger            *log.Logger // Logger, used to log warnings. If nil, a logger, writing to stderr, is used.
	LogPrefix         string      // Prefix of the logged warnings.
}

func (o Options) Validate() error {
	if !o.DisableConsoleLog && o.Logger == nil && o.LogPrefix == "" {
		return errors.New("log prefix must not be empty, when console log is enabled")
	}
	return nil
}
