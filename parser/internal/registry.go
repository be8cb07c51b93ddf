package internal

import (
	"github.com/gclaussn/go-bpmn-parser/model"
	"github.com/tidwall/btree"
)

// eventDefinition is a converted event definition.
type eventDefinition struct {
	id   string
	kind model.EventDefinitionKind

	source []string // link
	target string   // link

	timer *model.Timer
}

type linkEvent struct {
	definition eventDefinition
	event      *model.Element
}

// ConvertedElements is the registry of the elements and flows, converted during a parsing.
// It is used to resolve references between them. A registration overwrites an existing entry with the same ID.
type ConvertedElements struct {
	poolsById         btree.Map[string, *model.Element]
	poolsByProcessRef btree.Map[string, *model.Element]
	flowNodes         btree.Map[string, *model.Element]
	lanes             btree.Map[string, *model.Element]

	sequenceFlows    btree.Map[string, *model.Flow]
	messageFlows     btree.Map[string, *model.Flow]
	associationFlows btree.Map[string, *model.Flow]

	eventDefinitions btree.Map[string, eventDefinition]
	linkEvents       btree.Map[string, linkEvent]
	globalTasks      btree.Map[string, model.ElementType]
	categoryValues   btree.Map[string, string]
}

func NewConvertedElements() *ConvertedElements {
	return &ConvertedElements{}
}

func (r *ConvertedElements) RegisterPool(pool *model.Element, processRef string) {
	r.poolsById.Set(pool.Id, pool)
	if processRef != "" {
		r.poolsByProcessRef.Set(processRef, pool)
	}
}

func (r *ConvertedElements) FindPoolById(id string) (*model.Element, bool) {
	return r.poolsById.Get(id)
}

func (r *ConvertedElements) FindPoolByProcessRef(processRef string) (*model.Element, bool) {
	return r.poolsByProcessRef.Get(processRef)
}

func (r *ConvertedElements) RegisterFlowNode(flowNode *model.Element) {
	r.flowNodes.Set(flowNode.Id, flowNode)
}

func (r *ConvertedElements) FindFlowNode(id string) (*model.Element, bool) {
	return r.flowNodes.Get(id)
}

func (r *ConvertedElements) RegisterLane(lane *model.Element) {
	r.lanes.Set(lane.Id, lane)
}

func (r *ConvertedElements) FindLane(id string) (*model.Element, bool) {
	return r.lanes.Get(id)
}

// FindElement finds a flow node, lane or pool - in this order.
func (r *ConvertedElements) FindElement(id string) (*model.Element, bool) {
	if flowNode, ok := r.flowNodes.Get(id); ok {
		return flowNode, true
	}
	if lane, ok := r.lanes.Get(id); ok {
		return lane, true
	}
	return r.poolsById.Get(id)
}

func (r *ConvertedElements) RegisterSequenceFlow(flow *model.Flow) {
	r.sequenceFlows.Set(flow.Id, flow)
}

func (r *ConvertedElements) FindSequenceFlow(id string) (*model.Flow, bool) {
	return r.sequenceFlows.Get(id)
}

func (r *ConvertedElements) RegisterMessageFlow(flow *model.Flow) {
	r.messageFlows.Set(flow.Id, flow)
}

func (r *ConvertedElements) FindMessageFlow(id string) (*model.Flow, bool) {
	return r.messageFlows.Get(id)
}

func (r *ConvertedElements) RegisterAssociationFlow(flow *model.Flow) {
	r.associationFlows.Set(flow.Id, flow)
}

func (r *ConvertedElements) FindAssociationFlow(id string) (*model.Flow, bool) {
	return r.associationFlows.Get(id)
}

// FindFlow finds a sequence flow, message flow or association - in this order.
func (r *ConvertedElements) FindFlow(id string) (*model.Flow, bool) {
	if flow, ok := r.sequenceFlows.Get(id); ok {
		return flow, true
	}
	if flow, ok := r.messageFlows.Get(id); ok {
		return flow, true
	}
	return r.associationFlows.Get(id)
}

func (r *ConvertedElements) RegisterEventDefinition(definition eventDefinition) {
	r.eventDefinitions.Set(definition.id, definition)
}

func (r *ConvertedElements) FindEventDefinition(id string) (eventDefinition, bool) {
	return r.eventDefinitions.Get(id)
}

// RegisterLinkEvent registers a link event together with its link event definition.
func (r *ConvertedElements) RegisterLinkEvent(definition eventDefinition, event *model.Element) {
	r.linkEvents.Set(event.Id, linkEvent{definition: definition, event: event})
}

// FindLinkEventByDefinition finds the link event of the given type, whose link event definition has the given ID.
func (r *ConvertedElements) FindLinkEventByDefinition(definitionId string, elementType model.ElementType) (*model.Element, bool) {
	if definitionId == "" {
		return nil, false
	}

	var event *model.Element
	r.linkEvents.Scan(func(_ string, linkEvent linkEvent) bool {
		if linkEvent.definition.id == definitionId && linkEvent.event.Type == elementType {
			event = linkEvent.event
			return false
		}
		return true
	})
	return event, event != nil
}

func (r *ConvertedElements) RegisterGlobalTask(id string, elementType model.ElementType) {
	r.globalTasks.Set(id, elementType)
}

func (r *ConvertedElements) FindGlobalTask(id string) (model.ElementType, bool) {
	return r.globalTasks.Get(id)
}

func (r *ConvertedElements) RegisterCategoryValue(id string, value string) {
	r.categoryValues.Set(id, value)
}

func (r *ConvertedElements) FindCategoryValue(id string) (string, bool) {
	return r.categoryValues.Get(id)
}

// scanning, ordered by ID

func (r *ConvertedElements) scanElements(iter func(*model.Element)) {
	for _, elements := range []*btree.Map[string, *model.Element]{&r.poolsById, &r.lanes, &r.flowNodes} {
		elements.Scan(func(_ string, element *model.Element) bool {
			iter(element)
			return true
		})
	}
}

func (r *ConvertedElements) scanFlows(iter func(*model.Flow)) {
	for _, flows := range []*btree.Map[string, *model.Flow]{&r.sequenceFlows, &r.messageFlows, &r.associationFlows} {
		flows.Scan(func(_ string, flow *model.Flow) bool {
			iter(flow)
			return true
		})
	}
}

func (r *ConvertedElements) scanLinkEvents(iter func(eventDefinition, *model.Element)) {
	r.linkEvents.Scan(func(_ string, linkEvent linkEvent) bool {
		iter(linkEvent.definition, linkEvent.event)
		return true
	})
}
