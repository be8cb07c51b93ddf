package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gclaussn/go-bpmn-parser/model"
	"github.com/gclaussn/go-bpmn-parser/parser"
)

// parse parses a BPMN file. In case of format auto, a file with extension .json is parsed as BPMN JSON.
func (c *Cli) parse(bpmnFileName string) (*model.BpmnModel, []model.Warning, error) {
	data, err := os.ReadFile(bpmnFileName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read BPMN file %s: %v", bpmnFileName, err)
	}

	format := c.options.Format
	if format == "auto" {
		if strings.EqualFold(filepath.Ext(bpmnFileName), ".json") {
			format = "json"
		} else {
			format = "xml"
		}
	}

	c.logger.Debug("parsing BPMN file", "file", bpmnFileName, "format", format)

	customizer := func(o *parser.Options) {
		o.DisableConsoleLog = c.options.DisableConsoleLog
		o.Logger = c.logger
	}

	var (
		bpmnModel *model.BpmnModel
		warnings  []model.Warning
	)
	if format == "json" {
		bpmnModel, warnings, err = parser.ParseJSON(data, customizer)
	} else {
		bpmnModel, warnings, err = parser.ParseXML(bytes.NewReader(data), customizer)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse BPMN file %s: %v", bpmnFileName, err)
	}

	c.logger.Debug("parsed BPMN file", "shapes", len(bpmnModel.Pools)+len(bpmnModel.Lanes)+len(bpmnModel.FlowNodes), "edges", len(bpmnModel.Edges), "warnings", len(warnings))
	return bpmnModel, warnings, nil
}
