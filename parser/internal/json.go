package internal

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/gclaussn/go-bpmn-parser/model"
	json "github.com/json-iterator/go"
)

// BpmnJsonModel is the root of a BPMN JSON document, which results from an XML to JSON conversion.
// Attributes and child elements are properties, namespace prefixes are removed.
type BpmnJsonModel struct {
	Definitions oneOrMany[TDefinitions] `json:"definitions"`
}

// DefinitionsOf returns the definitions of the document, if present.
func DefinitionsOf(m BpmnJsonModel) (TDefinitions, bool) {
	return first(m.Definitions, true)
}

// lenient scalars

// text is a string property, which is also decoded from a number, a boolean or the #text property of an object.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	*t = ""

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*t = text(s)
		}
	case '{':
		var v struct {
			Text text `json:"#text"`
		}
		if err := json.Unmarshal(data, &v); err == nil {
			*t = v.Text
		}
	case '[':
		// not a scalar
	default:
		*t = text(data)
	}
	return nil
}

// boolean is decoded from true or "true". Any other value is false.
type boolean bool

func (b *boolean) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	*b = boolean(s == "true")
	return nil
}

// isTrue returns the value of an optional boolean, or the default value, if absent.
func isTrue(b *boolean, defaultValue bool) bool {
	if b == nil {
		return defaultValue
	}
	return bool(*b)
}

// number is decoded from a JSON number or a numeric string. Any other value is 0.
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		*n = number(f)
	} else {
		*n = 0
	}
	return nil
}

// semantic

type TDefinitions struct {
	Process       oneOrMany[TProcess]       `json:"process"`
	Collaboration oneOrMany[TCollaboration] `json:"collaboration"`
	Category      oneOrMany[TCategory]      `json:"category"`

	GlobalTask             oneOrMany[TGlobalTask] `json:"globalTask"`
	GlobalBusinessRuleTask oneOrMany[TGlobalTask] `json:"globalBusinessRuleTask"`
	GlobalManualTask       oneOrMany[TGlobalTask] `json:"globalManualTask"`
	GlobalScriptTask       oneOrMany[TGlobalTask] `json:"globalScriptTask"`
	GlobalUserTask         oneOrMany[TGlobalTask] `json:"globalUserTask"`

	TEventDefinitions

	BPMNDiagram oneOrMany[BPMNDiagram] `json:"BPMNDiagram"`
}

type TCategory struct {
	Id            text                      `json:"id"`
	CategoryValue oneOrMany[TCategoryValue] `json:"categoryValue"`
}

type TCategoryValue struct {
	Id    text `json:"id"`
	Value text `json:"value"`
}

type TCollaboration struct {
	Id             text                       `json:"id"`
	Participant    oneOrMany[TParticipant]    `json:"participant"`
	MessageFlow    oneOrMany[TMessageFlow]    `json:"messageFlow"`
	Association    oneOrMany[TAssociation]    `json:"association"`
	Group          oneOrMany[TGroup]          `json:"group"`
	TextAnnotation oneOrMany[TTextAnnotation] `json:"textAnnotation"`
}

type TParticipant struct {
	Id         text `json:"id"`
	Name       text `json:"name"`
	ProcessRef text `json:"processRef"`
}

type TMessageFlow struct {
	Id        text `json:"id"`
	Name      text `json:"name"`
	SourceRef text `json:"sourceRef"`
	TargetRef text `json:"targetRef"`
}

type TAssociation struct {
	Id                   text `json:"id"`
	SourceRef            text `json:"sourceRef"`
	TargetRef            text `json:"targetRef"`
	AssociationDirection text `json:"associationDirection"`
}

type TGroup struct {
	Id               text `json:"id"`
	CategoryValueRef text `json:"categoryValueRef"`
}

type TTextAnnotation struct {
	Id   text `json:"id"`
	Text text `json:"text"`
}

type TGlobalTask struct {
	Id   text `json:"id"`
	Name text `json:"name"`
}

// TEventDefinitions holds the event definitions of the definitions or of an event, per kind.
type TEventDefinitions struct {
	CancelEventDefinition      oneOrMany[TEventDefinition] `json:"cancelEventDefinition"`
	CompensateEventDefinition  oneOrMany[TEventDefinition] `json:"compensateEventDefinition"`
	ConditionalEventDefinition oneOrMany[TEventDefinition] `json:"conditionalEventDefinition"`
	ErrorEventDefinition       oneOrMany[TEventDefinition] `json:"errorEventDefinition"`
	EscalationEventDefinition  oneOrMany[TEventDefinition] `json:"escalationEventDefinition"`
	LinkEventDefinition        oneOrMany[TEventDefinition] `json:"linkEventDefinition"`
	MessageEventDefinition     oneOrMany[TEventDefinition] `json:"messageEventDefinition"`
	SignalEventDefinition      oneOrMany[TEventDefinition] `json:"signalEventDefinition"`
	TerminateEventDefinition   oneOrMany[TEventDefinition] `json:"terminateEventDefinition"`
	TimerEventDefinition       oneOrMany[TEventDefinition] `json:"timerEventDefinition"`
}

type kindedEventDefinitions struct {
	kind        model.EventDefinitionKind
	definitions oneOrMany[TEventDefinition]
}

func (d TEventDefinitions) byKind() []kindedEventDefinitions {
	return []kindedEventDefinitions{
		{kind: model.EventDefinitionCancel, definitions: d.CancelEventDefinition},
		{kind: model.EventDefinitionCompensation, definitions: d.CompensateEventDefinition},
		{kind: model.EventDefinitionConditional, definitions: d.ConditionalEventDefinition},
		{kind: model.EventDefinitionError, definitions: d.ErrorEventDefinition},
		{kind: model.EventDefinitionEscalation, definitions: d.EscalationEventDefinition},
		{kind: model.EventDefinitionLink, definitions: d.LinkEventDefinition},
		{kind: model.EventDefinitionMessage, definitions: d.MessageEventDefinition},
		{kind: model.EventDefinitionSignal, definitions: d.SignalEventDefinition},
		{kind: model.EventDefinitionTerminate, definitions: d.TerminateEventDefinition},
		{kind: model.EventDefinitionTimer, definitions: d.TimerEventDefinition},
	}
}

type TEventDefinition struct {
	Id text `json:"id"`

	// link
	Source oneOrMany[text] `json:"source"`
	Target text            `json:"target"`

	// timer
	TimeDate     text `json:"timeDate"`
	TimeDuration text `json:"timeDuration"`
	TimeCycle    text `json:"timeCycle"`
}

type TProcess struct {
	Id   text `json:"id"`
	Name text `json:"name"`

	TFlowElements
}

// TFlowElements holds the content of a process or sub process.
type TFlowElements struct {
	Task             oneOrMany[TActivity] `json:"task"`
	BusinessRuleTask oneOrMany[TActivity] `json:"businessRuleTask"`
	ManualTask       oneOrMany[TActivity] `json:"manualTask"`
	ReceiveTask      oneOrMany[TActivity] `json:"receiveTask"`
	ScriptTask       oneOrMany[TActivity] `json:"scriptTask"`
	SendTask         oneOrMany[TActivity] `json:"sendTask"`
	ServiceTask      oneOrMany[TActivity] `json:"serviceTask"`
	UserTask         oneOrMany[TActivity] `json:"userTask"`

	CallActivity    oneOrMany[TCallActivity] `json:"callActivity"`
	SubProcess      oneOrMany[TSubProcess]   `json:"subProcess"`
	AdHocSubProcess oneOrMany[TSubProcess]   `json:"adHocSubProcess"`
	Transaction     oneOrMany[TSubProcess]   `json:"transaction"`

	ComplexGateway    oneOrMany[TGateway]           `json:"complexGateway"`
	EventBasedGateway oneOrMany[TEventBasedGateway] `json:"eventBasedGateway"`
	ExclusiveGateway  oneOrMany[TGateway]           `json:"exclusiveGateway"`
	InclusiveGateway  oneOrMany[TGateway]           `json:"inclusiveGateway"`
	ParallelGateway   oneOrMany[TGateway]           `json:"parallelGateway"`

	StartEvent             oneOrMany[TEvent] `json:"startEvent"`
	EndEvent               oneOrMany[TEvent] `json:"endEvent"`
	IntermediateCatchEvent oneOrMany[TEvent] `json:"intermediateCatchEvent"`
	IntermediateThrowEvent oneOrMany[TEvent] `json:"intermediateThrowEvent"`
	BoundaryEvent          oneOrMany[TEvent] `json:"boundaryEvent"`

	Group          oneOrMany[TGroup]          `json:"group"`
	TextAnnotation oneOrMany[TTextAnnotation] `json:"textAnnotation"`

	Lane    oneOrMany[TLane]    `json:"lane"`
	LaneSet oneOrMany[TLaneSet] `json:"laneSet"`

	SequenceFlow oneOrMany[TSequenceFlow] `json:"sequenceFlow"`
	Association  oneOrMany[TAssociation]  `json:"association"`
}

type TFlowNode struct {
	Id   text `json:"id"`
	Name text `json:"name"`
}

type TActivity struct {
	TFlowNode

	Default           text     `json:"default"`
	Instantiate       *boolean `json:"instantiate"`
	IsForCompensation boolean  `json:"isForCompensation"`

	StandardLoopCharacteristics      oneOrMany[TLoopCharacteristics]              `json:"standardLoopCharacteristics"`
	MultiInstanceLoopCharacteristics oneOrMany[TMultiInstanceLoopCharacteristics] `json:"multiInstanceLoopCharacteristics"`
}

type TLoopCharacteristics struct {
	TestBefore boolean `json:"testBefore"`
}

type TMultiInstanceLoopCharacteristics struct {
	IsSequential boolean `json:"isSequential"`
}

type TCallActivity struct {
	TActivity

	CalledElement text `json:"calledElement"`
}

type TSubProcess struct {
	TActivity

	TriggeredByEvent boolean `json:"triggeredByEvent"`

	TFlowElements
}

type TGateway struct {
	TFlowNode

	Default text `json:"default"`
}

type TEventBasedGateway struct {
	TFlowNode

	Instantiate      *boolean `json:"instantiate"`
	EventGatewayType text     `json:"eventGatewayType"`
}

type TEvent struct {
	TFlowNode
	TEventDefinitions

	EventDefinitionRef oneOrMany[text] `json:"eventDefinitionRef"`

	IsInterrupting *boolean `json:"isInterrupting"` // start event
	CancelActivity *boolean `json:"cancelActivity"` // boundary event
	AttachedToRef  text     `json:"attachedToRef"`  // boundary event
}

type TLane struct {
	Id           text               `json:"id"`
	Name         text               `json:"name"`
	FlowNodeRef  oneOrMany[text]    `json:"flowNodeRef"`
	ChildLaneSet oneOrMany[TLaneSet] `json:"childLaneSet"`
}

type TLaneSet struct {
	Id   text             `json:"id"`
	Lane oneOrMany[TLane] `json:"lane"`
}

type TSequenceFlow struct {
	Id                  text                   `json:"id"`
	Name                text                   `json:"name"`
	SourceRef           text                   `json:"sourceRef"`
	TargetRef           text                   `json:"targetRef"`
	ConditionExpression oneOrMany[TExpression] `json:"conditionExpression"`
}

// TExpression is decoded from a string or an object, which has a #text property.
type TExpression struct {
	Body text
}

func (e *TExpression) UnmarshalJSON(data []byte) error {
	return e.Body.UnmarshalJSON(data)
}

// diagram interchange

type BPMNDiagram struct {
	Id             text                      `json:"id"`
	Name           text                      `json:"name"`
	BPMNPlane      oneOrMany[BPMNPlane]      `json:"BPMNPlane"`
	BPMNLabelStyle oneOrMany[BPMNLabelStyle] `json:"BPMNLabelStyle"`
}

type BPMNPlane struct {
	Id          text                 `json:"id"`
	BpmnElement text                 `json:"bpmnElement"`
	BPMNShape   oneOrMany[BPMNShape] `json:"BPMNShape"`
	BPMNEdge    oneOrMany[BPMNEdge]  `json:"BPMNEdge"`
}

type BPMNShape struct {
	Id           text                 `json:"id"`
	BpmnElement  text                 `json:"bpmnElement"`
	Bounds       oneOrMany[DcBounds]  `json:"Bounds"`
	BPMNLabel    oneOrMany[BPMNLabel] `json:"BPMNLabel"`
	IsHorizontal *boolean             `json:"isHorizontal"`
	IsExpanded   *boolean             `json:"isExpanded"`
}

type BPMNEdge struct {
	Id                 text                 `json:"id"`
	BpmnElement        text                 `json:"bpmnElement"`
	Waypoint           oneOrMany[DcPoint]   `json:"waypoint"`
	BPMNLabel          oneOrMany[BPMNLabel] `json:"BPMNLabel"`
	MessageVisibleKind text                 `json:"messageVisibleKind"`
}

type BPMNLabel struct {
	Id         text                `json:"id"`
	LabelStyle text                `json:"labelStyle"`
	Bounds     oneOrMany[DcBounds] `json:"Bounds"`
}

type BPMNLabelStyle struct {
	Id   text              `json:"id"`
	Font oneOrMany[DcFont] `json:"Font"`
}

type DcBounds struct {
	X      number `json:"x"`
	Y      number `json:"y"`
	Width  number `json:"width"`
	Height number `json:"height"`
}

type DcFont struct {
	Name            text    `json:"name"`
	Size            number  `json:"size"`
	IsBold          boolean `json:"isBold"`
	IsItalic        boolean `json:"isItalic"`
	IsUnderline     boolean `json:"isUnderline"`
	IsStrikeThrough boolean `json:"isStrikeThrough"`
}

type DcPoint struct {
	X number `json:"x"`
	Y number `json:"y"`
}
