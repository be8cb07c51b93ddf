package model

import "slices"

// Element is the semantic part of a BPMN pool, lane or flow node.
type Element struct {
	Id   string
	Name string
	Type ElementType

	// ParentId is the ID of the containing pool, lane, sub process or, in case of a boundary event, activity.
	// An element of a process, which is not referenced by a pool, has no parent.
	ParentId string

	// IDs of the flows, having the element as target or source.
	// Both are derived from the converted flows.
	IncomingIds []string
	OutgoingIds []string

	Model any
}

// EventDefinitionKind returns the event definition kind of an event, or 0 if the element is no event.
func (e *Element) EventDefinitionKind() EventDefinitionKind {
	if event, ok := e.Model.(Event); ok {
		return event.DefinitionKind
	}
	return 0
}

// Markers returns the markers of an activity, or nil if the element is no activity.
func (e *Element) Markers() []MarkerKind {
	switch model := e.Model.(type) {
	case Activity:
		return model.Markers
	case CallActivity:
		return model.Markers
	case SubProcess:
		return model.Markers
	default:
		return nil
	}
}

// AddMarker adds a marker to an activity, if not already present.
func (e *Element) AddMarker(marker MarkerKind) {
	if slices.Contains(e.Markers(), marker) {
		return
	}

	switch model := e.Model.(type) {
	case Activity:
		model.Markers = append(model.Markers, marker)
		e.Model = model
	case CallActivity:
		model.Markers = append(model.Markers, marker)
		e.Model = model
	case SubProcess:
		model.Markers = append(model.Markers, marker)
		e.Model = model
	}
}

// AddIncoming adds the ID of a flow that targets the element, if not already present.
func (e *Element) AddIncoming(flowId string) {
	if !slices.Contains(e.IncomingIds, flowId) {
		e.IncomingIds = append(e.IncomingIds, flowId)
	}
}

// AddOutgoing adds the ID of a flow that leaves the element, if not already present.
func (e *Element) AddOutgoing(flowId string) {
	if !slices.Contains(e.OutgoingIds, flowId) {
		e.OutgoingIds = append(e.OutgoingIds, flowId)
	}
}

// Flow is the semantic part of a sequence flow, message flow or association.
// Source and target are referenced by ID only - they are resolved via a model lookup.
type Flow struct {
	Id          string
	Name        string
	Kind        FlowKind
	SourceRefId string
	TargetRefId string

	SequenceFlowKind     SequenceFlowKind     // Set for sequence flows only.
	AssociationDirection AssociationDirection // Set for associations only.
}

// element specific models

type Activity struct {
	Markers     []MarkerKind
	Instantiate bool // Only true for a receive task, that instantiates a process.
}

type CallActivity struct {
	Kind           CallActivityKind
	CalledElement  string
	GlobalTaskType ElementType // Type of the called global task, 0 when a process is called.
	Markers        []MarkerKind
}

type Event struct {
	DefinitionKind EventDefinitionKind
	IsInterrupting bool   // Relevant for start and boundary events.
	AttachedTo     string // ID of the activity, a boundary event is attached to.

	// link events only
	SourceIds []string // IDs of the throw events, linked to a catch event.
	TargetId  string   // ID of the catch event, linked by a throw event.

	Timer *Timer // Set for timer events only.
}

type EventBasedGateway struct {
	Instantiate bool
	Kind        EventBasedGatewayKind
}

type Pool struct {
	ProcessRef string // ID of the process, the pool represents - empty for a black box pool.
}

type SubProcess struct {
	Kind    SubProcessKind
	Markers []MarkerKind
}

// Timer holds the expressions of a timer event definition.
type Timer struct {
	Date      string `json:",omitempty"`
	Duration  string `json:",omitempty"`
	Cycle     string `json:",omitempty"`
	CycleCron bool   // Determines if the cycle is a cron expression, instead of an ISO 8601 repeating interval.
}
