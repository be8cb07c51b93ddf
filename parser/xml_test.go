package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadXML(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	t.Run("invalid XML", func(t *testing.T) {
		_, err := readXML(strings.NewReader("<definitions><process></definitions>"))
		assert.ErrorContains(err, "failed to read XML")
	})

	t.Run("empty XML", func(t *testing.T) {
		_, err := readXML(strings.NewReader(""))
		assert.EqualError(err, "XML is empty")
	})

	t.Run("no definitions", func(t *testing.T) {
		_, err := readXML(strings.NewReader(`<process id="process" />`))
		assert.EqualError(err, "no definitions found")
	})

	t.Run("properties", func(t *testing.T) {
		bpmnJson, err := readXML(strings.NewReader(`
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" id="definitions">
  <bpmn:process id="process">
    <bpmn:startEvent id="startEvent">
      <bpmn:outgoing>f1</bpmn:outgoing>
      <bpmn:outgoing>f2</bpmn:outgoing>
      <bpmn:timerEventDefinition>
        <bpmn:timeCycle xsi:type="bpmn:tFormalExpression">0 * * * *</bpmn:timeCycle>
      </bpmn:timerEventDefinition>
    </bpmn:startEvent>
    <bpmn:endEvent id="endEvent">
      <bpmn:terminateEventDefinition />
    </bpmn:endEvent>
  </bpmn:process>
</bpmn:definitions>`))
		require.NoError(err)

		assert.Equal(map[string]any{
			"definitions": map[string]any{
				"id": "definitions",
				"process": map[string]any{
					"id": "process",
					"startEvent": map[string]any{
						"id":       "startEvent",
						"outgoing": []any{"f1", "f2"},
						"timerEventDefinition": map[string]any{
							"timeCycle": map[string]any{
								"type":  "bpmn:tFormalExpression",
								"#text": "0 * * * *",
							},
						},
					},
					"endEvent": map[string]any{
						"id":                       "endEvent",
						"terminateEventDefinition": "",
					},
				},
			},
		}, bpmnJson)
	})
}
