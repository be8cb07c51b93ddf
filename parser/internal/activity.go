package internal

import (
	"github.com/gclaussn/go-bpmn-parser/model"
)

func (c *converter) convertTasks(tasks oneOrMany[TActivity], elementType model.ElementType, processId string, parentId string) {
	for _, task := range ensureArray(tasks, false) {
		c.collectDefaultSequenceFlow(elementType, task.Default)

		c.registerFlowNode(&model.Element{
			Id:       string(task.Id),
			Name:     string(task.Name),
			Type:     elementType,
			ParentId: parentId,

			Model: model.Activity{
				Markers:     buildMarkers(task),
				Instantiate: elementType == model.ElementReceiveTask && isTrue(task.Instantiate, false),
			},
		}, processId)
	}
}

// convertCallActivities converts call activities, which either call a global task or a process.
// A called element, which is no registered global task, is considered to be a process.
func (c *converter) convertCallActivities(callActivities oneOrMany[TCallActivity], processId string, parentId string) {
	for _, callActivity := range ensureArray(callActivities, false) {
		c.collectDefaultSequenceFlow(model.ElementCallActivity, callActivity.Default)

		calledElement := string(callActivity.CalledElement)

		callActivityModel := model.CallActivity{
			CalledElement: calledElement,
			Markers:       buildMarkers(callActivity.TActivity),
		}

		if globalTaskType, ok := c.elements.FindGlobalTask(calledElement); ok {
			callActivityModel.Kind = model.CallActivityCallingGlobalTask
			callActivityModel.GlobalTaskType = globalTaskType
		} else {
			callActivityModel.Kind = model.CallActivityCallingProcess
		}

		element := &model.Element{
			Id:       string(callActivity.Id),
			Name:     string(callActivity.Name),
			Type:     model.ElementCallActivity,
			ParentId: parentId,

			Model: callActivityModel,
		}

		c.registerFlowNode(element, processId)

		if callActivityModel.Kind == model.CallActivityCallingProcess && calledElement != "" {
			c.callActivitiesCallingProcess = append(c.callActivitiesCallingProcess, element)
		}
	}
}

// convertSubProcesses converts sub processes and their content, which gets the sub process as parent.
// An embedded sub process, triggered by an event, is an event sub process.
func (c *converter) convertSubProcesses(subProcesses oneOrMany[TSubProcess], kind model.SubProcessKind, processId string, parentId string) {
	for _, subProcess := range ensureArray(subProcesses, false) {
		c.collectDefaultSequenceFlow(model.ElementSubProcess, subProcess.Default)

		subProcessKind := kind
		if subProcessKind == model.SubProcessEmbedded && bool(subProcess.TriggeredByEvent) {
			subProcessKind = model.SubProcessEvent
		}

		markers := buildMarkers(subProcess.TActivity)
		if subProcessKind == model.SubProcessAdHoc {
			markers = append(markers, model.MarkerAdHoc)
		}

		element := &model.Element{
			Id:       string(subProcess.Id),
			Name:     string(subProcess.Name),
			Type:     model.ElementSubProcess,
			ParentId: parentId,

			Model: model.SubProcess{Kind: subProcessKind, Markers: markers},
		}

		c.registerFlowNode(element, processId)

		c.convertFlowElements(subProcess.TFlowElements, processId, element.Id, subProcessKind == model.SubProcessEvent)
	}
}

// buildMarkers determines the markers of an activity.
// Standard loop characteristics take precedence over multi instance loop characteristics.
func buildMarkers(activity TActivity) []model.MarkerKind {
	var markers []model.MarkerKind

	if len(ensureArray(activity.StandardLoopCharacteristics, true)) != 0 {
		markers = append(markers, model.MarkerLoop)
	} else if multiInstance, ok := first(activity.MultiInstanceLoopCharacteristics, true); ok {
		if multiInstance.IsSequential {
			markers = append(markers, model.MarkerMultiInstanceSequential)
		} else {
			markers = append(markers, model.MarkerMultiInstanceParallel)
		}
	}

	if activity.IsForCompensation {
		markers = append(markers, model.MarkerCompensation)
	}

	return markers
}
