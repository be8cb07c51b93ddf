package internal

import (
	"testing"

	"github.com/gclaussn/go-bpmn-parser/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEmptyDefinitions(t *testing.T) {
	bpmnModel, warnings := mustConvert(t, `{"definitions": ""}`)

	assert.Equal(t, &model.BpmnModel{}, bpmnModel)
	assert.Empty(t, warnings)
}

func TestConvertSequenceFlows(t *testing.T) {
	assert := assert.New(t)

	elements, warnings := mustConvertDefinitions(t, `{"definitions": {"process": {
		"id": "process",
		"inclusiveGateway": {"id": "G", "default": "F1"},
		"parallelGateway": {"id": "P", "default": "F3"},
		"startEvent": {"id": "S"},
		"task": [{"id": "A"}, {"id": "B"}],
		"sequenceFlow": [
			{"id": "F1", "sourceRef": "G", "targetRef": "A", "conditionExpression": "${a}"},
			{"id": "F2", "sourceRef": "G", "targetRef": "B", "conditionExpression": {"#text": "${b}"}},
			{"id": "F3", "sourceRef": "P", "targetRef": "A"},
			{"id": "F4", "sourceRef": "S", "targetRef": "G", "conditionExpression": "${s}"},
			{"id": "F5", "sourceRef": "A", "targetRef": "B", "conditionExpression": ""},
			{"id": "F6", "sourceRef": "unknown", "targetRef": "B", "conditionExpression": "${u}"}
		]
	}}}`)

	assert.Empty(warnings)

	expectedKinds := map[string]model.SequenceFlowKind{
		"F1": model.SequenceFlowDefault,
		"F2": model.SequenceFlowConditionalFromGateway,
		"F3": model.SequenceFlowNormal,
		"F4": model.SequenceFlowNormal,
		"F5": model.SequenceFlowNormal,
		"F6": model.SequenceFlowNormal,
	}
	for id, expectedKind := range expectedKinds {
		assert.Equal(expectedKind, mustFindSequenceFlow(t, elements, id).SequenceFlowKind, id)
	}

	g := mustFindFlowNode(t, elements, "G")
	assert.Equal([]string{"F4"}, g.IncomingIds)
	assert.Equal([]string{"F1", "F2"}, g.OutgoingIds)

	b := mustFindFlowNode(t, elements, "B")
	assert.Equal([]string{"F2", "F5", "F6"}, b.IncomingIds)
	assert.Empty(b.OutgoingIds)
}

func TestConvertEvents(t *testing.T) {
	assert := assert.New(t)

	elements, warnings := mustConvertDefinitions(t, `{"definitions": {
		"signalEventDefinition": {"id": "signal"},
		"process": {
			"id": "process",
			"startEvent": [
				{"id": "nonInterruptingStart", "isInterrupting": "false", "messageEventDefinition": ""},
				{"id": "escalationStart", "escalationEventDefinition": ""},
				{"id": "refStart", "eventDefinitionRef": "signal"},
				{"id": "unknownRefStart", "eventDefinitionRef": "unknown"}
			],
			"intermediateCatchEvent": [
				{"id": "noneCatch"},
				{"id": "timerCatch", "timerEventDefinition": {"timeCycle": "R3/PT10M"}},
				{"id": "cronCatch", "timerEventDefinition": {"timeCycle": {"#text": "*/5 * * * *"}}}
			],
			"endEvent": [
				{"id": "twoEnd", "messageEventDefinition": ["", ""]},
				{"id": "inlineRefEnd", "messageEventDefinition": "", "eventDefinitionRef": "signal"}
			],
			"subProcess": {
				"id": "eventSubProcess",
				"triggeredByEvent": true,
				"startEvent": {"id": "eventSubProcessStart", "escalationEventDefinition": ""}
			}
		}
	}}`)

	assert.Empty(warnings)

	nonInterruptingStart := mustFindFlowNode(t, elements, "nonInterruptingStart")
	assert.Equal(model.Event{DefinitionKind: model.EventDefinitionMessage}, nonInterruptingStart.Model)

	refStart := mustFindFlowNode(t, elements, "refStart")
	assert.Equal(model.Event{DefinitionKind: model.EventDefinitionSignal, IsInterrupting: true}, refStart.Model)

	// an unresolved reference results in a none event
	unknownRefStart := mustFindFlowNode(t, elements, "unknownRefStart")
	assert.Equal(model.EventDefinitionNone, unknownRefStart.EventDefinitionKind())

	timerCatch := mustFindFlowNode(t, elements, "timerCatch")
	assert.Equal(&model.Timer{Cycle: "R3/PT10M"}, timerCatch.Model.(model.Event).Timer)

	cronCatch := mustFindFlowNode(t, elements, "cronCatch")
	assert.Equal(&model.Timer{Cycle: "*/5 * * * *", CycleCron: true}, cronCatch.Model.(model.Event).Timer)

	eventSubProcessStart := mustFindFlowNode(t, elements, "eventSubProcessStart")
	assert.Equal("eventSubProcess", eventSubProcessStart.ParentId)
	assert.Equal(model.EventDefinitionEscalation, eventSubProcessStart.EventDefinitionKind())

	for _, id := range []string{"escalationStart", "noneCatch", "twoEnd", "inlineRefEnd"} {
		_, ok := elements.FindFlowNode(id)
		assert.False(ok, id)
	}
}

func TestConvertBoundaryEvents(t *testing.T) {
	assert := assert.New(t)

	elements, warnings := mustConvertDefinitions(t, `{"definitions": {"process": {
		"id": "process",
		"serviceTask": {"id": "T"},
		"boundaryEvent": [
			{"id": "B1", "attachedToRef": "T", "cancelActivity": "false", "timerEventDefinition": {"timeDuration": "PT1M"}},
			{"id": "B2", "attachedToRef": "unknown", "errorEventDefinition": ""},
			{"id": "B3", "attachedToRef": "T"}
		]
	}}}`)

	assert.Equal([]model.Warning{
		model.NewWarning(model.WarningBoundaryEventNotAttachedToActivity, "B2", "unknown", ""),
	}, warnings)

	b1 := mustFindFlowNode(t, elements, "B1")
	assert.Equal("T", b1.ParentId)
	assert.Equal(model.Event{
		DefinitionKind: model.EventDefinitionTimer,
		AttachedTo:     "T",
		Timer:          &model.Timer{Duration: "PT1M"},
	}, b1.Model)

	_, ok := elements.FindFlowNode("B3")
	assert.False(ok)
}

func TestConvertLinkEvents(t *testing.T) {
	assert := assert.New(t)

	elements, warnings := mustConvertDefinitions(t, `{"definitions": {"process": {
		"id": "process",
		"intermediateThrowEvent": [
			{"id": "S1", "linkEventDefinition": {"id": "l1", "target": "l3"}},
			{"id": "S2", "linkEventDefinition": {"id": "l2", "target": "l3"}}
		],
		"intermediateCatchEvent": {"id": "C", "linkEventDefinition": {"id": "l3", "source": ["l2", "l1", "unknown"]}}
	}}}`)

	assert.Empty(warnings)

	c := mustFindFlowNode(t, elements, "C")
	assert.Equal([]string{"S2", "S1"}, c.Model.(model.Event).SourceIds)

	for _, id := range []string{"S1", "S2"} {
		assert.Equal("C", mustFindFlowNode(t, elements, id).Model.(model.Event).TargetId, id)
	}
}

func TestConvertActivities(t *testing.T) {
	assert := assert.New(t)

	elements, warnings := mustConvertDefinitions(t, `{"definitions": {
		"globalScriptTask": {"id": "globalScriptTask"},
		"process": [
			{
				"id": "process",
				"task": [
					{"id": "loopAndMultiInstance", "standardLoopCharacteristics": "", "multiInstanceLoopCharacteristics": ""},
					{"id": "instantiate", "instantiate": true}
				],
				"receiveTask": {"id": "receiveTask", "instantiate": "false"},
				"callActivity": [
					{"id": "callGlobalScriptTask", "calledElement": "globalScriptTask"},
					{"id": "callNothing"},
					{"id": "callProcess", "calledElement": "calledProcess", "isForCompensation": "true"}
				],
				"adHocSubProcess": {
					"id": "adHocSubProcess",
					"multiInstanceLoopCharacteristics": {"isSequential": "true"},
					"task": {"id": "adHocTask"}
				}
			},
			{
				"id": "calledProcess",
				"lane": {"id": "calledLane", "flowNodeRef": "calledTask"},
				"task": {"id": "calledTask"}
			}
		]
	}}`)

	assert.Empty(warnings)

	assert.Equal(model.Activity{Markers: []model.MarkerKind{model.MarkerLoop}}, mustFindFlowNode(t, elements, "loopAndMultiInstance").Model)
	assert.Equal(model.Activity{}, mustFindFlowNode(t, elements, "instantiate").Model)
	assert.Equal(model.Activity{}, mustFindFlowNode(t, elements, "receiveTask").Model)

	assert.Equal(model.CallActivity{
		Kind:           model.CallActivityCallingGlobalTask,
		CalledElement:  "globalScriptTask",
		GlobalTaskType: model.ElementGlobalScriptTask,
	}, mustFindFlowNode(t, elements, "callGlobalScriptTask").Model)
	assert.Equal(model.CallActivity{Kind: model.CallActivityCallingProcess}, mustFindFlowNode(t, elements, "callNothing").Model)
	assert.Equal(model.CallActivity{
		Kind:          model.CallActivityCallingProcess,
		CalledElement: "calledProcess",
		Markers:       []model.MarkerKind{model.MarkerCompensation},
	}, mustFindFlowNode(t, elements, "callProcess").Model)

	assert.Equal(model.SubProcess{
		Kind:    model.SubProcessAdHoc,
		Markers: []model.MarkerKind{model.MarkerMultiInstanceSequential, model.MarkerAdHoc},
	}, mustFindFlowNode(t, elements, "adHocSubProcess").Model)
	assert.Equal("adHocSubProcess", mustFindFlowNode(t, elements, "adHocTask").ParentId)

	// the lane of the called process gets the call activity as parent, while the task stays in the lane
	calledLane, ok := elements.FindLane("calledLane")
	assert.True(ok)
	assert.Equal("callProcess", calledLane.ParentId)
	assert.Equal("calledLane", mustFindFlowNode(t, elements, "calledTask").ParentId)

	assert.Empty(mustFindFlowNode(t, elements, "callNothing").ParentId)
}

func TestConvertCollaboration(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	elements, warnings := mustConvertDefinitions(t, `{"definitions": {
		"category": {"id": "category", "categoryValue": [{"id": "cv1", "value": "One"}, {"id": "cv2", "value": "Two"}]},
		"collaboration": {
			"id": "collaboration",
			"participant": [
				{"id": "named", "name": "Named", "processRef": "process1"},
				{"id": "unnamed", "processRef": "process2"}
			],
			"messageFlow": {"id": "m", "sourceRef": "unnamed", "targetRef": "task1"},
			"group": [{"id": "g1", "categoryValueRef": "cv1"}, {"id": "g2", "categoryValueRef": "cv3"}],
			"textAnnotation": {"id": "note", "text": {"#text": "Note"}},
			"association": {"id": "a", "sourceRef": "note", "targetRef": "g1", "associationDirection": "Both"}
		},
		"process": [
			{"id": "process1", "name": "Process 1", "task": {"id": "task1"}},
			{"id": "process2", "name": "Process 2", "laneSet": {"lane": [{"id": "lane1"}, {"id": "lane2", "flowNodeRef": ["task2", "unknown"]}]}, "task": {"id": "task2"}}
		]
	}}`)

	assert.Equal([]model.Warning{
		model.NewWarning(model.WarningGroupUnknownCategoryValue, "g2", "cv3"),
		model.NewWarning(model.WarningLaneUnknownFlowNodeRef, "lane2", "unknown"),
	}, warnings)

	named, ok := elements.FindPoolById("named")
	require.True(ok)
	assert.Equal("Named", named.Name)

	unnamed, ok := elements.FindPoolById("unnamed")
	require.True(ok)
	assert.Equal("Process 2", unnamed.Name)
	assert.Equal([]string{"m"}, unnamed.OutgoingIds)

	task1 := mustFindFlowNode(t, elements, "task1")
	assert.Equal("named", task1.ParentId)
	assert.Equal([]string{"m"}, task1.IncomingIds)

	lane2, ok := elements.FindLane("lane2")
	require.True(ok)
	assert.Equal("unnamed", lane2.ParentId)
	assert.Equal("lane2", mustFindFlowNode(t, elements, "task2").ParentId)

	g1 := mustFindFlowNode(t, elements, "g1")
	assert.Equal("One", g1.Name)
	assert.Empty(g1.ParentId)
	assert.Equal([]string{"a"}, g1.IncomingIds)

	assert.Equal("Note", mustFindFlowNode(t, elements, "note").Name)

	association, ok := elements.FindAssociationFlow("a")
	require.True(ok)
	assert.Equal(model.AssociationDirectionBoth, association.AssociationDirection)
}

func TestConvertDiagram(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	bpmnModel, warnings := mustConvert(t, `{"definitions": {
		"globalTask": {"id": "globalTask"},
		"process": {
			"id": "process",
			"callActivity": [
				{"id": "callGlobalTask", "calledElement": "globalTask"},
				{"id": "callProcess", "calledElement": "other"}
			],
			"subProcess": {"id": "expandedSubProcess"},
			"sequenceFlow": {"id": "f", "sourceRef": "callGlobalTask", "targetRef": "callProcess"}
		},
		"BPMNDiagram": [
			{
				"BPMNPlane": {
					"BPMNShape": [
						{"id": "callGlobalTask_di", "bpmnElement": "callGlobalTask", "Bounds": {"x": "1", "y": "2", "width": "3", "height": "4"}},
						{"id": "callProcess_di", "bpmnElement": "callProcess", "isExpanded": "false", "BPMNLabel": ""},
						{"id": "expandedSubProcess_di", "bpmnElement": "expandedSubProcess", "isExpanded": true}
					],
					"BPMNEdge": {
						"id": "f_di",
						"bpmnElement": "f",
						"waypoint": [{"x": 1, "y": 2}, "", {"x": "3", "y": "4"}],
						"BPMNLabel": {"Bounds": {"x": 5, "y": 6, "width": 7, "height": 8}}
					}
				}
			},
			{
				"BPMNPlane": {
					"BPMNShape": {"id": "ignored_di", "bpmnElement": "unknown"}
				}
			}
		]
	}}`)

	assert.Empty(warnings)

	require.Len(bpmnModel.FlowNodes, 3)
	require.Len(bpmnModel.Edges, 1)

	callGlobalTask := bpmnModel.ShapeById("callGlobalTask_di")
	require.NotNil(callGlobalTask)
	assert.Equal(model.Bounds{X: 1, Y: 2, Width: 3, Height: 4}, callGlobalTask.Bounds)
	assert.Empty(callGlobalTask.Element.Markers())

	callProcess := bpmnModel.ShapeById("callProcess_di")
	require.NotNil(callProcess)
	assert.Equal(model.Bounds{}, callProcess.Bounds)
	assert.Nil(callProcess.Label)
	assert.Equal([]model.MarkerKind{model.MarkerExpand}, callProcess.Element.Markers())

	expandedSubProcess := bpmnModel.ShapeById("expandedSubProcess_di")
	require.NotNil(expandedSubProcess)
	assert.Empty(expandedSubProcess.Element.Markers())

	edge := bpmnModel.Edges[0]
	assert.Equal([]model.Waypoint{{X: 1, Y: 2}, {X: 3, Y: 4}}, edge.Waypoints)
	assert.Equal(&model.Label{Bounds: &model.Bounds{X: 5, Y: 6, Width: 7, Height: 8}}, edge.Label)
	assert.Equal(model.MessageVisibleNone, edge.MessageVisibleKind)

	t.Run("duplicate shape and edge", func(t *testing.T) {
		bpmnModel, warnings := mustConvert(t, `{"definitions": {
			"process": {
				"id": "process",
				"task": [{"id": "taskA"}, {"id": "taskB"}],
				"sequenceFlow": {"id": "f", "sourceRef": "taskA", "targetRef": "taskB"}
			},
			"BPMNDiagram": {
				"BPMNPlane": {
					"BPMNShape": [
						{"id": "taskA_di", "bpmnElement": "taskA"},
						{"id": "taskA_di2", "bpmnElement": "taskA"},
						{"id": "taskB_di", "bpmnElement": "taskB"}
					],
					"BPMNEdge": [
						{"id": "f_di", "bpmnElement": "f", "waypoint": [{"x": 1, "y": 2}, {"x": 3, "y": 4}]},
						{"id": "f_di2", "bpmnElement": "f"}
					]
				}
			}
		}}`)

		assert.Equal([]model.Warning{
			model.NewWarning(model.WarningEdgeDuplicateBpmnElement, "f_di2", "f", "f_di"),
			model.NewWarning(model.WarningShapeDuplicateBpmnElement, "taskA_di2", "taskA", "taskA_di"),
		}, warnings)

		require.Len(bpmnModel.FlowNodes, 2)
		require.Len(bpmnModel.Edges, 1)

		assert.NotNil(bpmnModel.ShapeById("taskA_di"))
		assert.Nil(bpmnModel.ShapeById("taskA_di2"))
		assert.NotNil(bpmnModel.EdgeById("f_di"))
		assert.Nil(bpmnModel.EdgeById("f_di2"))
	})
}
