package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gclaussn/go-bpmn-parser/model"
)

func mustParseXML(t *testing.T, fileName string) (*model.BpmnModel, []model.Warning) {
	bpmnFile, err := os.Open(filepath.Join("../test/bpmn", fileName))
	if err != nil {
		t.Fatalf("failed to open BPMN file: %v", err)
	}

	defer bpmnFile.Close()

	bpmnModel, warnings, err := ParseXML(bpmnFile, disableConsoleLog)
	if err != nil {
		t.Fatalf("failed to parse BPMN XML: %v", err)
	}

	return bpmnModel, warnings
}

func mustParseJSON(t *testing.T, fileName string) (*model.BpmnModel, []model.Warning) {
	data, err := os.ReadFile(filepath.Join("../test/json", fileName))
	if err != nil {
		t.Fatalf("failed to read BPMN JSON file: %v", err)
	}

	bpmnModel, warnings, err := ParseJSON(data, disableConsoleLog)
	if err != nil {
		t.Fatalf("failed to parse BPMN JSON: %v", err)
	}

	return bpmnModel, warnings
}

func disableConsoleLog(o *Options) {
	o.DisableConsoleLog = true
}

func warningTypes(warnings []model.Warning) []model.WarningType {
	warningTypes := make([]model.WarningType, len(warnings))
	for i := range warnings {
		warningTypes[i] = warnings[i].Type
	}
	return warningTypes
}
