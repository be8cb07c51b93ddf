package internal

import (
	"github.com/gclaussn/go-bpmn-parser/model"
)

func (c *converter) convertLaneSets() {
	for _, laneSet := range c.laneSets {
		c.convertLanes(laneSet.lanes, laneSet.processId, laneSet.parentId)
	}
}

// convertLanes converts lanes and their child lanes recursively.
// A lane becomes the parent of its referenced flow nodes, except of boundary events, which stay with their activity.
func (c *converter) convertLanes(lanes oneOrMany[TLane], processId string, parentId string) {
	for _, lane := range ensureArray(lanes, false) {
		element := &model.Element{
			Id:       string(lane.Id),
			Name:     string(lane.Name),
			Type:     model.ElementLane,
			ParentId: parentId,
		}

		c.elements.RegisterLane(element)
		if parentId == "" && processId != "" {
			c.elementsWithoutParent[processId] = append(c.elementsWithoutParent[processId], element)
		}

		for _, flowNodeRef := range ensureArray(lane.FlowNodeRef, false) {
			flowNode, ok := c.elements.FindFlowNode(string(flowNodeRef))
			if !ok {
				c.warn(model.WarningLaneUnknownFlowNodeRef, element.Id, string(flowNodeRef))
				continue
			}
			if flowNode.Type != model.ElementBoundaryEvent {
				flowNode.ParentId = element.Id
			}
		}

		for _, childLaneSet := range ensureArray(lane.ChildLaneSet, false) {
			c.convertLanes(childLaneSet.Lane, processId, element.Id)
		}
	}
}
