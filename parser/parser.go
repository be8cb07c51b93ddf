/*
Package parser converts BPMN documents into a [model.BpmnModel].

A document is either provided as BPMN 2.0 XML or as BPMN JSON - the XML, converted into a JSON tree.
Besides the model, a parsing results in a list of warnings. A warning describes a recoverable anomaly, which
leads to a BPMN element or flow being left out. Only documents, that cannot be read at all, result in an error.
*/
package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/gclaussn/go-bpmn-parser/model"
	"github.com/gclaussn/go-bpmn-parser/parser/internal"
	json "github.com/json-iterator/go"
)

// ParseJSON parses a BPMN JSON document.
func ParseJSON(data []byte, customizers ...func(*Options)) (*model.BpmnModel, []model.Warning, error) {
	options := NewOptions()
	for _, customizer := range customizers {
		customizer(&options)
	}

	if err := options.Validate(); err != nil {
		return nil, nil, err
	}

	var bpmnJsonModel internal.BpmnJsonModel
	if err := json.Unmarshal(data, &bpmnJsonModel); err != nil {
		return nil, nil, fmt.Errorf("failed to decode BPMN JSON: %v", err)
	}

	definitions, ok := internal.DefinitionsOf(bpmnJsonModel)
	if !ok {
		return nil, nil, errors.New("no definitions found")
	}

	collector := NewCollector(options)

	bpmnModel := internal.Convert(definitions, collector)

	return bpmnModel, collector.Warnings(), nil
}

// ParseXML parses a BPMN 2.0 XML document.
func ParseXML(r io.Reader, customizers ...func(*Options)) (*model.BpmnModel, []model.Warning, error) {
	bpmnJson, err := readXML(r)
	if err != nil {
		return nil, nil, err
	}

	data, err := json.Marshal(bpmnJson)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode BPMN JSON: %v", err)
	}

	return ParseJSON(data, customizers...)
}
