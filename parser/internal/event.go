package internal

import (
	"slices"

	"github.com/gclaussn/go-bpmn-parser/model"
)

// legal event definition kinds per event type
var (
	legalBoundaryEventKinds = []model.EventDefinitionKind{
		model.EventDefinitionCancel,
		model.EventDefinitionCompensation,
		model.EventDefinitionConditional,
		model.EventDefinitionError,
		model.EventDefinitionEscalation,
		model.EventDefinitionMessage,
		model.EventDefinitionSignal,
		model.EventDefinitionTimer,
	}
	legalEndEventKinds = []model.EventDefinitionKind{
		model.EventDefinitionNone,
		model.EventDefinitionCancel,
		model.EventDefinitionCompensation,
		model.EventDefinitionError,
		model.EventDefinitionEscalation,
		model.EventDefinitionMessage,
		model.EventDefinitionSignal,
		model.EventDefinitionTerminate,
	}
	legalIntermediateCatchEventKinds = []model.EventDefinitionKind{
		model.EventDefinitionConditional,
		model.EventDefinitionLink,
		model.EventDefinitionMessage,
		model.EventDefinitionSignal,
		model.EventDefinitionTimer,
	}
	legalIntermediateThrowEventKinds = []model.EventDefinitionKind{
		model.EventDefinitionNone,
		model.EventDefinitionCompensation,
		model.EventDefinitionEscalation,
		model.EventDefinitionLink,
		model.EventDefinitionMessage,
		model.EventDefinitionSignal,
	}
	legalStartEventKinds = []model.EventDefinitionKind{
		model.EventDefinitionNone,
		model.EventDefinitionConditional,
		model.EventDefinitionMessage,
		model.EventDefinitionSignal,
		model.EventDefinitionTimer,
	}
	legalEventSubProcessStartEventKinds = append([]model.EventDefinitionKind{
		model.EventDefinitionCompensation,
		model.EventDefinitionError,
		model.EventDefinitionEscalation,
	}, legalStartEventKinds...)
)

// isLegalEventDefinitionKind determines if an event of the given type can have an event definition of the given kind.
func isLegalEventDefinitionKind(elementType model.ElementType, kind model.EventDefinitionKind, eventSubProcess bool) bool {
	switch elementType {
	case model.ElementBoundaryEvent:
		return slices.Contains(legalBoundaryEventKinds, kind)
	case model.ElementEndEvent:
		return slices.Contains(legalEndEventKinds, kind)
	case model.ElementIntermediateCatchEvent:
		return slices.Contains(legalIntermediateCatchEventKinds, kind)
	case model.ElementIntermediateThrowEvent:
		return slices.Contains(legalIntermediateThrowEventKinds, kind)
	case model.ElementStartEvent:
		if eventSubProcess {
			return slices.Contains(legalEventSubProcessStartEventKinds, kind)
		}
		return slices.Contains(legalStartEventKinds, kind)
	default:
		return false
	}
}

// convertEvents converts events of the given type.
//
// An event is skipped, when it has more than one event definition or an event definition of an illegal kind.
// The same applies to an event without event definition, unless the type allows a none event.
// A skipped event is not reported, since its shape is reported as unknown, when the diagram is converted.
//
// Boundary events are kept back, until all flow nodes are converted.
func (c *converter) convertEvents(events oneOrMany[TEvent], elementType model.ElementType, processId string, parentId string, eventSubProcess bool) {
	for _, event := range ensureArray(events, false) {
		definitions := c.collectEventDefinitions(event)

		var definition eventDefinition
		switch len(definitions) {
		case 0:
			if !elementType.CanHaveNoneEvent() {
				continue
			}
			definition = eventDefinition{kind: model.EventDefinitionNone}
		case 1:
			definition = definitions[0]
		default:
			continue
		}

		if !isLegalEventDefinitionKind(elementType, definition.kind, eventSubProcess) {
			continue
		}

		eventModel := model.Event{
			DefinitionKind: definition.kind,
			Timer:          definition.timer,
		}

		element := &model.Element{
			Id:       string(event.Id),
			Name:     string(event.Name),
			Type:     elementType,
			ParentId: parentId,
		}

		switch elementType {
		case model.ElementBoundaryEvent:
			eventModel.AttachedTo = string(event.AttachedToRef)
			eventModel.IsInterrupting = isTrue(event.CancelActivity, true)

			element.ParentId = eventModel.AttachedTo
			element.Model = eventModel

			c.boundaryEvents = append(c.boundaryEvents, element)
			continue
		case model.ElementStartEvent:
			eventModel.IsInterrupting = isTrue(event.IsInterrupting, true)
		}

		element.Model = eventModel

		c.registerFlowNode(element, processId)

		if definition.kind == model.EventDefinitionLink {
			c.elements.RegisterLinkEvent(definition, element)
		}
	}
}

// collectEventDefinitions collects the event definitions of an event.
// An event definition is either defined inline or referenced by ID.
func (c *converter) collectEventDefinitions(event TEvent) []eventDefinition {
	var definitions []eventDefinition

	for _, kinded := range event.byKind() {
		for _, definition := range ensureArray(kinded.definitions, true) {
			definitions = append(definitions, newEventDefinition(kinded.kind, definition))
		}
	}

	for _, ref := range ensureArray(event.EventDefinitionRef, false) {
		if definition, ok := c.elements.FindEventDefinition(string(ref)); ok {
			definitions = append(definitions, definition)
		}
	}

	return definitions
}

// attachBoundaryEvents registers the boundary events, which are attached to an activity.
// Any other boundary event is reported and skipped.
func (c *converter) attachBoundaryEvents() {
	for _, boundaryEvent := range c.boundaryEvents {
		attachedTo := boundaryEvent.Model.(model.Event).AttachedTo

		host, ok := c.elements.FindFlowNode(attachedTo)
		if !ok || !host.Type.IsActivity() {
			var hostType string
			if ok {
				hostType = host.Type.String()
			}
			c.warn(model.WarningBoundaryEventNotAttachedToActivity, boundaryEvent.Id, attachedTo, hostType)
			continue
		}

		c.elements.RegisterFlowNode(boundaryEvent)
	}
}

// assignLinkEventReferences links catch and throw link events via the IDs of their link event definitions.
// A catch event lists the throw events, whose definition ID is a source of its definition.
// A throw event refers to the catch event, whose definition ID is the target of its definition.
// A reference, which cannot be resolved, is ignored.
func (c *converter) assignLinkEventReferences() {
	c.elements.scanLinkEvents(func(definition eventDefinition, event *model.Element) {
		eventModel := event.Model.(model.Event)

		switch event.Type {
		case model.ElementIntermediateCatchEvent:
			for _, source := range definition.source {
				if sourceEvent, ok := c.elements.FindLinkEventByDefinition(source, model.ElementIntermediateThrowEvent); ok {
					eventModel.SourceIds = append(eventModel.SourceIds, sourceEvent.Id)
				}
			}
		case model.ElementIntermediateThrowEvent:
			if targetEvent, ok := c.elements.FindLinkEventByDefinition(definition.target, model.ElementIntermediateCatchEvent); ok {
				eventModel.TargetId = targetEvent.Id
			}
		}

		event.Model = eventModel
	})
}
