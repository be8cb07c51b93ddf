package internal

import (
	"github.com/gclaussn/go-bpmn-parser/model"
)

// Reporter receives the warnings, detected while converting a BPMN JSON document.
type Reporter interface {
	Warning(model.Warning)
}

// Convert converts the definitions of a BPMN JSON document into a [model.BpmnModel].
//
// The semantic part is converted first: categories, collaborations, event definitions, global tasks and processes.
// Afterwards the diagram is merged with the converted elements and flows.
func Convert(definitions TDefinitions, reporter Reporter) *model.BpmnModel {
	c := newConverter(NewConvertedElements(), reporter)
	c.convertDefinitions(definitions)
	return c.convertDiagram(definitions.BPMNDiagram)
}

func (c *converter) convertDefinitions(definitions TDefinitions) {
	c.convertCategories(definitions.Category)
	c.convertCollaborations(definitions.Collaboration)
	c.convertEventDefinitions(definitions.TEventDefinitions)
	c.convertGlobalTasks(definitions)
	c.convertProcesses(definitions.Process)
}

func newConverter(elements *ConvertedElements, reporter Reporter) *converter {
	return &converter{
		elements: elements,
		reporter: reporter,

		defaultSequenceFlowIds: make(map[string]bool),
		elementsWithoutParent:  make(map[string][]*model.Element),
	}
}

// converter holds the state of a single conversion.
//
// Processes are converted in two passes:
//  1. flow nodes, including the content of sub processes
//  2. everything, that references flow nodes: boundary events, lanes, sequence flows, incoming/outgoing flows and links
type converter struct {
	elements *ConvertedElements
	reporter Reporter

	// pass 1 results
	boundaryEvents               []*model.Element
	callActivitiesCallingProcess []*model.Element
	defaultSequenceFlowIds       map[string]bool
	elementsWithoutParent        map[string][]*model.Element // process ID -> elements
	laneSets                     []pendingLanes
	sequenceFlows                []oneOrMany[TSequenceFlow]
}

type pendingLanes struct {
	lanes     oneOrMany[TLane]
	processId string
	parentId  string
}

func (c *converter) warn(warningType model.WarningType, args ...string) {
	c.reporter.Warning(model.NewWarning(warningType, args...))
}

func (c *converter) convertProcesses(processes oneOrMany[TProcess]) {
	for _, process := range ensureArray(processes, false) {
		c.convertProcess(process)
	}

	c.attachBoundaryEvents()
	c.convertLaneSets()
	c.assignParentOfCalledProcessElements()
	c.convertSequenceFlows()
	c.assignIncomingAndOutgoingIds()
	c.assignLinkEventReferences()
}

func (c *converter) convertProcess(process TProcess) {
	processId := string(process.Id)

	var parentId string
	if pool, ok := c.elements.FindPoolByProcessRef(processId); ok {
		if pool.Name == "" {
			pool.Name = string(process.Name)
		}
		parentId = pool.Id
	}

	c.convertFlowElements(process.TFlowElements, processId, parentId, false)
}

// convertFlowElements converts the content of a process or sub process.
// eventSubProcess is true, when the content belongs to an event sub process.
func (c *converter) convertFlowElements(fe TFlowElements, processId string, parentId string, eventSubProcess bool) {
	// activities
	c.convertTasks(fe.Task, model.ElementTask, processId, parentId)
	c.convertTasks(fe.BusinessRuleTask, model.ElementBusinessRuleTask, processId, parentId)
	c.convertTasks(fe.ManualTask, model.ElementManualTask, processId, parentId)
	c.convertTasks(fe.ReceiveTask, model.ElementReceiveTask, processId, parentId)
	c.convertTasks(fe.ScriptTask, model.ElementScriptTask, processId, parentId)
	c.convertTasks(fe.SendTask, model.ElementSendTask, processId, parentId)
	c.convertTasks(fe.ServiceTask, model.ElementServiceTask, processId, parentId)
	c.convertTasks(fe.UserTask, model.ElementUserTask, processId, parentId)

	c.convertCallActivities(fe.CallActivity, processId, parentId)
	c.convertSubProcesses(fe.SubProcess, model.SubProcessEmbedded, processId, parentId)
	c.convertSubProcesses(fe.AdHocSubProcess, model.SubProcessAdHoc, processId, parentId)
	c.convertSubProcesses(fe.Transaction, model.SubProcessTransaction, processId, parentId)

	// gateways
	c.convertGateways(fe.ComplexGateway, model.ElementComplexGateway, processId, parentId)
	c.convertEventBasedGateways(fe.EventBasedGateway, processId, parentId)
	c.convertGateways(fe.ExclusiveGateway, model.ElementExclusiveGateway, processId, parentId)
	c.convertGateways(fe.InclusiveGateway, model.ElementInclusiveGateway, processId, parentId)
	c.convertGateways(fe.ParallelGateway, model.ElementParallelGateway, processId, parentId)

	// events
	c.convertEvents(fe.StartEvent, model.ElementStartEvent, processId, parentId, eventSubProcess)
	c.convertEvents(fe.EndEvent, model.ElementEndEvent, processId, parentId, false)
	c.convertEvents(fe.IntermediateCatchEvent, model.ElementIntermediateCatchEvent, processId, parentId, false)
	c.convertEvents(fe.IntermediateThrowEvent, model.ElementIntermediateThrowEvent, processId, parentId, false)
	c.convertEvents(fe.BoundaryEvent, model.ElementBoundaryEvent, processId, parentId, false)

	// artifacts
	c.convertGroups(fe.Group, processId, parentId)
	c.convertTextAnnotations(fe.TextAnnotation, processId, parentId)
	c.convertAssociations(fe.Association)

	// deferred to pass 2
	c.laneSets = append(c.laneSets, pendingLanes{lanes: fe.Lane, processId: processId, parentId: parentId})
	for _, laneSet := range ensureArray(fe.LaneSet, false) {
		c.laneSets = append(c.laneSets, pendingLanes{lanes: laneSet.Lane, processId: processId, parentId: parentId})
	}
	c.sequenceFlows = append(c.sequenceFlows, fe.SequenceFlow)
}

// registerFlowNode registers a converted flow node and remembers it, if it has no parent.
func (c *converter) registerFlowNode(element *model.Element, processId string) {
	c.elements.RegisterFlowNode(element)
	if element.ParentId == "" && processId != "" {
		c.elementsWithoutParent[processId] = append(c.elementsWithoutParent[processId], element)
	}
}

// collectDefaultSequenceFlow collects the default sequence flow of an activity or gateway.
// A default on an element, which cannot have one, is ignored.
func (c *converter) collectDefaultSequenceFlow(elementType model.ElementType, defaultId text) {
	if defaultId != "" && elementType.IsWithDefaultSequenceFlow() {
		c.defaultSequenceFlowIds[string(defaultId)] = true
	}
}

// assignParentOfCalledProcessElements assigns a call activity as parent of the elements of the called process.
// Only elements of a process without pool are affected.
func (c *converter) assignParentOfCalledProcessElements() {
	for _, callActivity := range c.callActivitiesCallingProcess {
		calledElement := callActivity.Model.(model.CallActivity).CalledElement
		for _, element := range c.elementsWithoutParent[calledElement] {
			if element.ParentId == "" && element != callActivity {
				element.ParentId = callActivity.Id
			}
		}
	}
}
