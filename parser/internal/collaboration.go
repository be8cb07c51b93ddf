package internal

import (
	"github.com/gclaussn/go-bpmn-parser/model"
)

func (c *converter) convertCollaborations(collaborations oneOrMany[TCollaboration]) {
	for _, collaboration := range ensureArray(collaborations, false) {
		c.convertParticipants(collaboration.Participant)
		c.convertMessageFlows(collaboration.MessageFlow)
		c.convertAssociations(collaboration.Association)
		c.convertGroups(collaboration.Group, "", "")
		c.convertTextAnnotations(collaboration.TextAnnotation, "", "")
	}
}

// convertParticipants converts participants into pools.
// If a participant has no name, the name of the referenced process is used, when the process is converted.
func (c *converter) convertParticipants(participants oneOrMany[TParticipant]) {
	for _, participant := range ensureArray(participants, false) {
		processRef := string(participant.ProcessRef)

		pool := &model.Element{
			Id:   string(participant.Id),
			Name: string(participant.Name),
			Type: model.ElementPool,

			Model: model.Pool{ProcessRef: processRef},
		}

		c.elements.RegisterPool(pool, processRef)
	}
}

func (c *converter) convertMessageFlows(messageFlows oneOrMany[TMessageFlow]) {
	for _, messageFlow := range ensureArray(messageFlows, false) {
		c.elements.RegisterMessageFlow(&model.Flow{
			Id:          string(messageFlow.Id),
			Name:        string(messageFlow.Name),
			Kind:        model.FlowMessage,
			SourceRefId: string(messageFlow.SourceRef),
			TargetRefId: string(messageFlow.TargetRef),
		})
	}
}

func (c *converter) convertAssociations(associations oneOrMany[TAssociation]) {
	for _, association := range ensureArray(associations, false) {
		c.elements.RegisterAssociationFlow(&model.Flow{
			Id:          string(association.Id),
			Kind:        model.FlowAssociation,
			SourceRefId: string(association.SourceRef),
			TargetRefId: string(association.TargetRef),

			AssociationDirection: model.MapAssociationDirection(string(association.AssociationDirection)),
		})
	}
}

// convertGroups converts groups, named by their category value.
// A group, which references an unknown category value, is reported and skipped.
func (c *converter) convertGroups(groups oneOrMany[TGroup], processId string, parentId string) {
	for _, group := range ensureArray(groups, false) {
		name, ok := c.elements.FindCategoryValue(string(group.CategoryValueRef))
		if !ok {
			c.warn(model.WarningGroupUnknownCategoryValue, string(group.Id), string(group.CategoryValueRef))
			continue
		}

		c.registerFlowNode(&model.Element{
			Id:       string(group.Id),
			Name:     name,
			Type:     model.ElementGroup,
			ParentId: parentId,
		}, processId)
	}
}

func (c *converter) convertTextAnnotations(textAnnotations oneOrMany[TTextAnnotation], processId string, parentId string) {
	for _, textAnnotation := range ensureArray(textAnnotations, false) {
		c.registerFlowNode(&model.Element{
			Id:       string(textAnnotation.Id),
			Name:     string(textAnnotation.Text),
			Type:     model.ElementTextAnnotation,
			ParentId: parentId,
		}, processId)
	}
}
