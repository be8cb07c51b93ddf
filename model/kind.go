package model

import "fmt"

// EventDefinitionKind describes the trigger or result of an event.
type EventDefinitionKind int

const (
	EventDefinitionNone EventDefinitionKind = iota + 1
	EventDefinitionCancel
	EventDefinitionCompensation
	EventDefinitionConditional
	EventDefinitionError
	EventDefinitionEscalation
	EventDefinitionLink
	EventDefinitionMessage
	EventDefinitionSignal
	EventDefinitionTerminate
	EventDefinitionTimer
)

func MapEventDefinitionKind(s string) EventDefinitionKind {
	switch s {
	case "NONE":
		return EventDefinitionNone
	case "CANCEL":
		return EventDefinitionCancel
	case "COMPENSATION":
		return EventDefinitionCompensation
	case "CONDITIONAL":
		return EventDefinitionConditional
	case "ERROR":
		return EventDefinitionError
	case "ESCALATION":
		return EventDefinitionEscalation
	case "LINK":
		return EventDefinitionLink
	case "MESSAGE":
		return EventDefinitionMessage
	case "SIGNAL":
		return EventDefinitionSignal
	case "TERMINATE":
		return EventDefinitionTerminate
	case "TIMER":
		return EventDefinitionTimer
	default:
		return 0
	}
}

func (v EventDefinitionKind) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v EventDefinitionKind) String() string {
	switch v {
	case EventDefinitionNone:
		return "NONE"
	case EventDefinitionCancel:
		return "CANCEL"
	case EventDefinitionCompensation:
		return "COMPENSATION"
	case EventDefinitionConditional:
		return "CONDITIONAL"
	case EventDefinitionError:
		return "ERROR"
	case EventDefinitionEscalation:
		return "ESCALATION"
	case EventDefinitionLink:
		return "LINK"
	case EventDefinitionMessage:
		return "MESSAGE"
	case EventDefinitionSignal:
		return "SIGNAL"
	case EventDefinitionTerminate:
		return "TERMINATE"
	case EventDefinitionTimer:
		return "TIMER"
	default:
		return ""
	}
}

func (v *EventDefinitionKind) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapEventDefinitionKind(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid event definition kind data %s", s)
	}
	return nil
}

// MarkerKind describes a marker, displayed on an activity.
type MarkerKind int

const (
	MarkerAdHoc MarkerKind = iota + 1
	MarkerCompensation
	MarkerExpand
	MarkerLoop
	MarkerMultiInstanceParallel
	MarkerMultiInstanceSequential
)

func (v MarkerKind) MarshalJSON() ([]byte, error) {
	return marshalString(v.String())
}

func (v MarkerKind) String() string {
	switch v {
	case MarkerAdHoc:
		return "ADHOC"
	case MarkerCompensation:
		return "COMPENSATION"
	case MarkerExpand:
		return "EXPAND"
	case MarkerLoop:
		return "LOOP"
	case MarkerMultiInstanceParallel:
		return "MULTI_INSTANCE_PARALLEL"
	case MarkerMultiInstanceSequential:
		return "MULTI_INSTANCE_SEQUENTIAL"
	default:
		return ""
	}
}

// FlowKind describes the different BPMN flow types.
type FlowKind int

const (
	FlowAssociation FlowKind = iota + 1
	FlowMessage
	FlowSequence
)

func (v FlowKind) MarshalJSON() ([]byte, error) {
	return marshalString(v.String())
}

func (v FlowKind) String() string {
	switch v {
	case FlowAssociation:
		return "ASSOCIATION"
	case FlowMessage:
		return "MESSAGE_FLOW"
	case FlowSequence:
		return "SEQUENCE_FLOW"
	default:
		return ""
	}
}

// SequenceFlowKind describes how a sequence flow is taken.
//
//   - [SequenceFlowDefault]: flow, referenced as default by its source activity or gateway
//   - [SequenceFlowConditionalFromActivity]: flow with a condition, leaving an activity
//   - [SequenceFlowConditionalFromGateway]: flow with a condition, leaving a gateway
//   - [SequenceFlowNormal]: any other flow
type SequenceFlowKind int

const (
	SequenceFlowConditionalFromActivity SequenceFlowKind = iota + 1
	SequenceFlowConditionalFromGateway
	SequenceFlowDefault
	SequenceFlowNormal
)

func (v SequenceFlowKind) MarshalJSON() ([]byte, error) {
	return marshalString(v.String())
}

func (v SequenceFlowKind) String() string {
	switch v {
	case SequenceFlowConditionalFromActivity:
		return "CONDITIONAL_FROM_ACTIVITY"
	case SequenceFlowConditionalFromGateway:
		return "CONDITIONAL_FROM_GATEWAY"
	case SequenceFlowDefault:
		return "DEFAULT"
	case SequenceFlowNormal:
		return "NORMAL"
	default:
		return ""
	}
}

// AssociationDirection describes the arrowheads of an association.
type AssociationDirection int

const (
	AssociationDirectionBoth AssociationDirection = iota + 1
	AssociationDirectionNone
	AssociationDirectionOne
)

// MapAssociationDirection maps the XSD enumeration values None, One and Both.
// Any other value is mapped to [AssociationDirectionNone].
func MapAssociationDirection(s string) AssociationDirection {
	switch s {
	case "Both":
		return AssociationDirectionBoth
	case "One":
		return AssociationDirectionOne
	default:
		return AssociationDirectionNone
	}
}

func (v AssociationDirection) MarshalJSON() ([]byte, error) {
	return marshalString(v.String())
}

func (v AssociationDirection) String() string {
	switch v {
	case AssociationDirectionBoth:
		return "BOTH"
	case AssociationDirectionNone:
		return "NONE"
	case AssociationDirectionOne:
		return "ONE"
	default:
		return ""
	}
}

type SubProcessKind int

const (
	SubProcessAdHoc SubProcessKind = iota + 1
	SubProcessEmbedded
	SubProcessEvent
	SubProcessTransaction
)

func (v SubProcessKind) MarshalJSON() ([]byte, error) {
	return marshalString(v.String())
}

func (v SubProcessKind) String() string {
	switch v {
	case SubProcessAdHoc:
		return "AD_HOC"
	case SubProcessEmbedded:
		return "EMBEDDED"
	case SubProcessEvent:
		return "EVENT"
	case SubProcessTransaction:
		return "TRANSACTION"
	default:
		return ""
	}
}

// CallActivityKind determines if a call activity calls a process or a global task.
type CallActivityKind int

const (
	CallActivityCallingGlobalTask CallActivityKind = iota + 1
	CallActivityCallingProcess
)

func (v CallActivityKind) MarshalJSON() ([]byte, error) {
	return marshalString(v.String())
}

func (v CallActivityKind) String() string {
	switch v {
	case CallActivityCallingGlobalTask:
		return "CALLING_GLOBAL_TASK"
	case CallActivityCallingProcess:
		return "CALLING_PROCESS"
	default:
		return ""
	}
}

type EventBasedGatewayKind int

const (
	EventBasedGatewayExclusive EventBasedGatewayKind = iota + 1
	EventBasedGatewayParallel
)

// MapEventBasedGatewayKind maps the XSD enumeration values Exclusive and Parallel.
// Any other value is mapped to [EventBasedGatewayExclusive], which is the XSD default.
func MapEventBasedGatewayKind(s string) EventBasedGatewayKind {
	if s == "Parallel" {
		return EventBasedGatewayParallel
	}
	return EventBasedGatewayExclusive
}

func (v EventBasedGatewayKind) MarshalJSON() ([]byte, error) {
	return marshalString(v.String())
}

func (v EventBasedGatewayKind) String() string {
	switch v {
	case EventBasedGatewayExclusive:
		return "EXCLUSIVE"
	case EventBasedGatewayParallel:
		return "PARALLEL"
	default:
		return ""
	}
}

// MessageVisibleKind describes the visibility of the message, sent via a message flow.
type MessageVisibleKind int

const (
	MessageVisibleInitiating MessageVisibleKind = iota + 1
	MessageVisibleNone
	MessageVisibleNonInitiating
)

// MapMessageVisibleKind maps the BPMN DI enumeration values initiating and non_initiating.
// Any other value is mapped to [MessageVisibleNone].
func MapMessageVisibleKind(s string) MessageVisibleKind {
	switch s {
	case "initiating":
		return MessageVisibleInitiating
	case "non_initiating":
		return MessageVisibleNonInitiating
	default:
		return MessageVisibleNone
	}
}

func (v MessageVisibleKind) MarshalJSON() ([]byte, error) {
	return marshalString(v.String())
}

func (v MessageVisibleKind) String() string {
	switch v {
	case MessageVisibleInitiating:
		return "INITIATING"
	case MessageVisibleNone:
		return "NONE"
	case MessageVisibleNonInitiating:
		return "NON_INITIATING"
	default:
		return ""
	}
}

func marshalString(s string) ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}
