package model

import "fmt"

// WarningType describes the recoverable anomalies, detected while parsing a BPMN document.
// A BPMN element or flow, affected by such an anomaly, is left out of the resulting model.
//
// Missing DI is reported from both sides: a shape or edge without a converted BPMN element results in
// [WarningShapeUnknownBpmnElement] or [WarningEdgeUnknownBpmnElement], while a converted element or flow without
// a shape or edge results in [WarningElementWithoutShape] or [WarningFlowWithoutEdge].
// A second shape or edge for the same BPMN element is skipped and results in [WarningShapeDuplicateBpmnElement] or
// [WarningEdgeDuplicateBpmnElement].
type WarningType int

const (
	WarningBoundaryEventNotAttachedToActivity WarningType = iota + 1
	WarningEdgeDuplicateBpmnElement
	WarningEdgeUnknownBpmnElement
	WarningElementWithoutShape
	WarningFlowWithoutEdge
	WarningGroupUnknownCategoryValue
	WarningLabelStyleUnknownFont
	WarningLaneUnknownFlowNodeRef
	WarningShapeDuplicateBpmnElement
	WarningShapeUnknownBpmnElement
)

func MapWarningType(s string) WarningType {
	switch s {
	case "BOUNDARY_EVENT_NOT_ATTACHED_TO_ACTIVITY":
		return WarningBoundaryEventNotAttachedToActivity
	case "EDGE_DUPLICATE_BPMN_ELEMENT":
		return WarningEdgeDuplicateBpmnElement
	case "EDGE_UNKNOWN_BPMN_ELEMENT":
		return WarningEdgeUnknownBpmnElement
	case "ELEMENT_WITHOUT_SHAPE":
		return WarningElementWithoutShape
	case "FLOW_WITHOUT_EDGE":
		return WarningFlowWithoutEdge
	case "GROUP_UNKNOWN_CATEGORY_VALUE":
		return WarningGroupUnknownCategoryValue
	case "LABEL_STYLE_UNKNOWN_FONT":
		return WarningLabelStyleUnknownFont
	case "LANE_UNKNOWN_FLOW_NODE_REF":
		return WarningLaneUnknownFlowNodeRef
	case "SHAPE_DUPLICATE_BPMN_ELEMENT":
		return WarningShapeDuplicateBpmnElement
	case "SHAPE_UNKNOWN_BPMN_ELEMENT":
		return WarningShapeUnknownBpmnElement
	default:
		return 0
	}
}

func (v WarningType) MarshalJSON() ([]byte, error) {
	return marshalString(v.String())
}

func (v WarningType) String() string {
	switch v {
	case WarningBoundaryEventNotAttachedToActivity:
		return "BOUNDARY_EVENT_NOT_ATTACHED_TO_ACTIVITY"
	case WarningEdgeDuplicateBpmnElement:
		return "EDGE_DUPLICATE_BPMN_ELEMENT"
	case WarningEdgeUnknownBpmnElement:
		return "EDGE_UNKNOWN_BPMN_ELEMENT"
	case WarningElementWithoutShape:
		return "ELEMENT_WITHOUT_SHAPE"
	case WarningFlowWithoutEdge:
		return "FLOW_WITHOUT_EDGE"
	case WarningGroupUnknownCategoryValue:
		return "GROUP_UNKNOWN_CATEGORY_VALUE"
	case WarningLabelStyleUnknownFont:
		return "LABEL_STYLE_UNKNOWN_FONT"
	case WarningLaneUnknownFlowNodeRef:
		return "LANE_UNKNOWN_FLOW_NODE_REF"
	case WarningShapeDuplicateBpmnElement:
		return "SHAPE_DUPLICATE_BPMN_ELEMENT"
	case WarningShapeUnknownBpmnElement:
		return "SHAPE_UNKNOWN_BPMN_ELEMENT"
	default:
		return ""
	}
}

// Template returns the message template of the warning type, which has a %s verb per warning argument.
func (v WarningType) Template() string {
	switch v {
	case WarningBoundaryEventNotAttachedToActivity:
		return "boundary event %s must be attached to an activity, and not to %s of type %s"
	case WarningEdgeDuplicateBpmnElement:
		return "edge %s: BPMN flow %s already has edge %s"
	case WarningEdgeUnknownBpmnElement:
		return "edge %s: unable to find BPMN element with ID %s"
	case WarningElementWithoutShape:
		return "BPMN element %s of type %s has no shape"
	case WarningFlowWithoutEdge:
		return "BPMN flow %s has no edge"
	case WarningGroupUnknownCategoryValue:
		return "group %s: unable to find category value ref %s"
	case WarningLabelStyleUnknownFont:
		return "shape or edge %s: unable to assign font from label style %s"
	case WarningLaneUnknownFlowNodeRef:
		return "lane %s: unable to assign lane as parent of flow node %s, which is not found"
	case WarningShapeDuplicateBpmnElement:
		return "shape %s: BPMN element %s already has shape %s"
	case WarningShapeUnknownBpmnElement:
		return "shape %s: unable to find BPMN element with ID %s"
	default:
		return "unknown warning"
	}
}

// Warning is a recoverable parsing anomaly, consisting of a type and positional arguments.
// Warnings are collected and never returned as an error.
type Warning struct {
	Type WarningType
	Args []string
}

func NewWarning(warningType WarningType, args ...string) Warning {
	return Warning{Type: warningType, Args: args}
}

func (w Warning) String() string {
	args := make([]any, len(w.Args))
	for i := range w.Args {
		args[i] = w.Args[i]
	}
	return fmt.Sprintf(w.Type.Template(), args...)
}
