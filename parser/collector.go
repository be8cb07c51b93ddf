package parser

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gclaussn/go-bpmn-parser/model"
)

// NewCollector creates a collector, which logs each warning, unless the console log is disabled.
func NewCollector(options Options) *Collector {
	logger := options.Logger
	if logger == nil && !options.DisableConsoleLog {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: options.LogPrefix,
			Level:  log.WarnLevel,
		})
	}

	return &Collector{
		disableConsoleLog: options.DisableConsoleLog,
		logger:            logger,
	}
}

// Collector collects the warnings of a parsing.
// A collector is safe for concurrent use.
type Collector struct {
	mutex    sync.Mutex
	warnings []model.Warning

	disableConsoleLog bool
	logger            *log.Logger
}

// Warning appends a warning and logs it.
func (c *Collector) Warning(warning model.Warning) {
	c.mutex.Lock()
	c.warnings = append(c.warnings, warning)
	c.mutex.Unlock()

	if !c.disableConsoleLog {
		c.logger.Warn(warning.String(), "type", warning.Type.String())
	}
}

// Warnings returns the collected warnings in the order they were reported.
func (c *Collector) Warnings() []model.Warning {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	warnings := make([]model.Warning, len(c.warnings))
	copy(warnings, c.warnings)
	return warnings
}

// Reset removes all collected warnings.
func (c *Collector) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.warnings = nil
}
