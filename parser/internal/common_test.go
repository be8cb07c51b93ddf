package internal

import (
	"testing"

	"github.com/gclaussn/go-bpmn-parser/model"
	json "github.com/json-iterator/go"
)

type testReporter struct {
	warnings []model.Warning
}

func (r *testReporter) Warning(warning model.Warning) {
	r.warnings = append(r.warnings, warning)
}

func mustDecode(t *testing.T, data string) TDefinitions {
	var bpmnJsonModel BpmnJsonModel
	if err := json.Unmarshal([]byte(data), &bpmnJsonModel); err != nil {
		t.Fatalf("failed to decode BPMN JSON: %v", err)
	}

	definitions, ok := DefinitionsOf(bpmnJsonModel)
	if !ok {
		t.Fatal("no definitions found")
	}

	return definitions
}

// mustConvertDefinitions converts the semantic part of a BPMN JSON document, without merging the diagram.
func mustConvertDefinitions(t *testing.T, data string) (*ConvertedElements, []model.Warning) {
	reporter := &testReporter{}

	c := newConverter(NewConvertedElements(), reporter)
	c.convertDefinitions(mustDecode(t, data))

	return c.elements, reporter.warnings
}

func mustConvert(t *testing.T, data string) (*model.BpmnModel, []model.Warning) {
	reporter := &testReporter{}
	return Convert(mustDecode(t, data), reporter), reporter.warnings
}

func mustFindFlowNode(t *testing.T, elements *ConvertedElements, id string) *model.Element {
	flowNode, ok := elements.FindFlowNode(id)
	if !ok {
		t.Fatalf("flow node %s not found", id)
	}
	return flowNode
}

func mustFindSequenceFlow(t *testing.T, elements *ConvertedElements, id string) *model.Flow {
	sequenceFlow, ok := elements.FindSequenceFlow(id)
	if !ok {
		t.Fatalf("sequence flow %s not found", id)
	}
	return sequenceFlow
}
