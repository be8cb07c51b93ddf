package model

import "fmt"

// ElementType describes the different BPMN element types - containers, activities, gateways and events.
type ElementType int

const (
	ElementBoundaryEvent ElementType = iota + 1
	ElementBusinessRuleTask
	ElementCallActivity
	ElementComplexGateway
	ElementEndEvent
	ElementEventBasedGateway
	ElementExclusiveGateway
	ElementGlobalBusinessRuleTask
	ElementGlobalManualTask
	ElementGlobalScriptTask
	ElementGlobalTask
	ElementGlobalUserTask
	ElementGroup
	ElementInclusiveGateway
	ElementIntermediateCatchEvent
	ElementIntermediateThrowEvent
	ElementLane
	ElementManualTask
	ElementParallelGateway
	ElementPool
	ElementReceiveTask
	ElementScriptTask
	ElementSendTask
	ElementServiceTask
	ElementStartEvent
	ElementSubProcess
	ElementTask
	ElementTextAnnotation
	ElementUserTask
)

func MapElementType(s string) ElementType {
	switch s {
	case "BOUNDARY_EVENT":
		return ElementBoundaryEvent
	case "BUSINESS_RULE_TASK":
		return ElementBusinessRuleTask
	case "CALL_ACTIVITY":
		return ElementCallActivity
	case "COMPLEX_GATEWAY":
		return ElementComplexGateway
	case "END_EVENT":
		return ElementEndEvent
	case "EVENT_BASED_GATEWAY":
		return ElementEventBasedGateway
	case "EXCLUSIVE_GATEWAY":
		return ElementExclusiveGateway
	case "GLOBAL_BUSINESS_RULE_TASK":
		return ElementGlobalBusinessRuleTask
	case "GLOBAL_MANUAL_TASK":
		return ElementGlobalManualTask
	case "GLOBAL_SCRIPT_TASK":
		return ElementGlobalScriptTask
	case "GLOBAL_TASK":
		return ElementGlobalTask
	case "GLOBAL_USER_TASK":
		return ElementGlobalUserTask
	case "GROUP":
		return ElementGroup
	case "INCLUSIVE_GATEWAY":
		return ElementInclusiveGateway
	case "INTERMEDIATE_CATCH_EVENT":
		return ElementIntermediateCatchEvent
	case "INTERMEDIATE_THROW_EVENT":
		return ElementIntermediateThrowEvent
	case "LANE":
		return ElementLane
	case "MANUAL_TASK":
		return ElementManualTask
	case "PARALLEL_GATEWAY":
		return ElementParallelGateway
	case "POOL":
		return ElementPool
	case "RECEIVE_TASK":
		return ElementReceiveTask
	case "SCRIPT_TASK":
		return ElementScriptTask
	case "SEND_TASK":
		return ElementSendTask
	case "SERVICE_TASK":
		return ElementServiceTask
	case "START_EVENT":
		return ElementStartEvent
	case "SUB_PROCESS":
		return ElementSubProcess
	case "TASK":
		return ElementTask
	case "TEXT_ANNOTATION":
		return ElementTextAnnotation
	case "USER_TASK":
		return ElementUserTask
	default:
		return 0
	}
}

// CanHaveNoneEvent determines if an event of this type is valid without any event definition.
func (v ElementType) CanHaveNoneEvent() bool {
	switch v {
	case
		ElementEndEvent,
		ElementIntermediateThrowEvent,
		ElementStartEvent:
		return true
	default:
		return false
	}
}

// IsActivity determines if the type is a task, a sub process or a call activity.
func (v ElementType) IsActivity() bool {
	return v.IsTask() || v == ElementCallActivity || v == ElementSubProcess
}

func (v ElementType) IsEvent() bool {
	switch v {
	case
		ElementBoundaryEvent,
		ElementEndEvent,
		ElementIntermediateCatchEvent,
		ElementIntermediateThrowEvent,
		ElementStartEvent:
		return true
	default:
		return false
	}
}

func (v ElementType) IsGateway() bool {
	switch v {
	case
		ElementComplexGateway,
		ElementEventBasedGateway,
		ElementExclusiveGateway,
		ElementInclusiveGateway,
		ElementParallelGateway:
		return true
	default:
		return false
	}
}

func (v ElementType) IsGlobalTask() bool {
	switch v {
	case
		ElementGlobalBusinessRuleTask,
		ElementGlobalManualTask,
		ElementGlobalScriptTask,
		ElementGlobalTask,
		ElementGlobalUserTask:
		return true
	default:
		return false
	}
}

func (v ElementType) IsTask() bool {
	switch v {
	case
		ElementBusinessRuleTask,
		ElementManualTask,
		ElementReceiveTask,
		ElementScriptTask,
		ElementSendTask,
		ElementServiceTask,
		ElementTask,
		ElementUserTask:
		return true
	default:
		return false
	}
}

// IsWithDefaultSequenceFlow determines if an element of this type can define a default sequence flow.
func (v ElementType) IsWithDefaultSequenceFlow() bool {
	switch v {
	case
		ElementComplexGateway,
		ElementExclusiveGateway,
		ElementInclusiveGateway:
		return true
	default:
		return v.IsActivity()
	}
}

func (v ElementType) MarshalJSON() ([]byte, error) {
	s := v.String()
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", s)), nil
}

func (v ElementType) String() string {
	switch v {
	case ElementBoundaryEvent:
		return "BOUNDARY_EVENT"
	case ElementBusinessRuleTask:
		return "BUSINESS_RULE_TASK"
	case ElementCallActivity:
		return "CALL_ACTIVITY"
	case ElementComplexGateway:
		return "COMPLEX_GATEWAY"
	case ElementEndEvent:
		return "END_EVENT"
	case ElementEventBasedGateway:
		return "EVENT_BASED_GATEWAY"
	case ElementExclusiveGateway:
		return "EXCLUSIVE_GATEWAY"
	case ElementGlobalBusinessRuleTask:
		return "GLOBAL_BUSINESS_RULE_TASK"
	case ElementGlobalManualTask:
		return "GLOBAL_MANUAL_TASK"
	case ElementGlobalScriptTask:
		return "GLOBAL_SCRIPT_TASK"
	case ElementGlobalTask:
		return "GLOBAL_TASK"
	case ElementGlobalUserTask:
		return "GLOBAL_USER_TASK"
	case ElementGroup:
		return "GROUP"
	case ElementInclusiveGateway:
		return "INCLUSIVE_GATEWAY"
	case ElementIntermediateCatchEvent:
		return "INTERMEDIATE_CATCH_EVENT"
	case ElementIntermediateThrowEvent:
		return "INTERMEDIATE_THROW_EVENT"
	case ElementLane:
		return "LANE"
	case ElementManualTask:
		return "MANUAL_TASK"
	case ElementParallelGateway:
		return "PARALLEL_GATEWAY"
	case ElementPool:
		return "POOL"
	case ElementReceiveTask:
		return "RECEIVE_TASK"
	case ElementScriptTask:
		return "SCRIPT_TASK"
	case ElementSendTask:
		return "SEND_TASK"
	case ElementServiceTask:
		return "SERVICE_TASK"
	case ElementStartEvent:
		return "START_EVENT"
	case ElementSubProcess:
		return "SUB_PROCESS"
	case ElementTask:
		return "TASK"
	case ElementTextAnnotation:
		return "TEXT_ANNOTATION"
	case ElementUserTask:
		return "USER_TASK"
	default:
		return ""
	}
}

func (v *ElementType) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 2 {
		s = s[1 : len(s)-1]
		*v = MapElementType(s)
	}
	if *v == 0 {
		return fmt.Errorf("invalid element type data %s", s)
	}
	return nil
}
