package internal

import (
	"github.com/gclaussn/go-bpmn-parser/model"
)

// convertDiagram merges the first diagram with the converted elements and flows.
//
// A shape or edge, which references no converted element or flow, is reported and skipped.
// The same applies to a shape or edge, which references an element or flow that has already been merged.
// Afterwards, each converted element or flow without a shape or an edge is reported.
func (c *converter) convertDiagram(diagrams oneOrMany[BPMNDiagram]) *model.BpmnModel {
	bpmnModel := &model.BpmnModel{}

	merged := make(map[string]string) // BPMN element ID -> shape or edge ID

	if diagram, ok := first(diagrams, false); ok {
		fonts := convertFonts(diagram.BPMNLabelStyle)

		for _, plane := range ensureArray(diagram.BPMNPlane, false) {
			c.convertEdges(bpmnModel, plane.BPMNEdge, fonts, merged)
			c.convertShapes(bpmnModel, plane.BPMNShape, fonts, merged)
		}
	}

	c.elements.scanElements(func(element *model.Element) {
		if _, ok := merged[element.Id]; !ok {
			c.warn(model.WarningElementWithoutShape, element.Id, element.Type.String())
		}
	})
	c.elements.scanFlows(func(flow *model.Flow) {
		if _, ok := merged[flow.Id]; !ok {
			c.warn(model.WarningFlowWithoutEdge, flow.Id)
		}
	})

	return bpmnModel
}

func (c *converter) convertShapes(bpmnModel *model.BpmnModel, shapes oneOrMany[BPMNShape], fonts map[string]*model.Font, merged map[string]string) {
	for _, shape := range ensureArray(shapes, false) {
		bpmnElement := string(shape.BpmnElement)

		if shapeId, ok := merged[bpmnElement]; ok {
			c.warn(model.WarningShapeDuplicateBpmnElement, string(shape.Id), bpmnElement, shapeId)
			continue
		}

		if flowNode, ok := c.elements.FindFlowNode(bpmnElement); ok {
			if isCollapsible(flowNode) && !isTrue(shape.IsExpanded, false) {
				flowNode.AddMarker(model.MarkerExpand)
			}
			bpmnModel.FlowNodes = append(bpmnModel.FlowNodes, c.newShape(shape, flowNode, fonts))
		} else if lane, ok := c.elements.FindLane(bpmnElement); ok {
			bpmnModel.Lanes = append(bpmnModel.Lanes, c.newShape(shape, lane, fonts))
		} else if pool, ok := c.elements.FindPoolById(bpmnElement); ok {
			bpmnModel.Pools = append(bpmnModel.Pools, c.newShape(shape, pool, fonts))
		} else {
			c.warn(model.WarningShapeUnknownBpmnElement, string(shape.Id), bpmnElement)
			continue
		}

		merged[bpmnElement] = string(shape.Id)
	}
}

// isCollapsible determines if an element is a sub process or a call activity, that calls a process.
func isCollapsible(element *model.Element) bool {
	switch element.Type {
	case model.ElementSubProcess:
		return true
	case model.ElementCallActivity:
		return element.Model.(model.CallActivity).Kind == model.CallActivityCallingProcess
	default:
		return false
	}
}

func (c *converter) newShape(shape BPMNShape, element *model.Element, fonts map[string]*model.Font) *model.Shape {
	var bounds model.Bounds
	if b, ok := first(shape.Bounds, false); ok {
		bounds = newBounds(b)
	}

	return &model.Shape{
		Id:           string(shape.Id),
		Element:      element,
		Bounds:       bounds,
		Label:        c.convertLabel(shape.BPMNLabel, string(shape.Id), fonts),
		IsHorizontal: isTrue(shape.IsHorizontal, false),
	}
}

func (c *converter) convertEdges(bpmnModel *model.BpmnModel, edges oneOrMany[BPMNEdge], fonts map[string]*model.Font, merged map[string]string) {
	for _, edge := range ensureArray(edges, false) {
		bpmnElement := string(edge.BpmnElement)

		if edgeId, ok := merged[bpmnElement]; ok {
			c.warn(model.WarningEdgeDuplicateBpmnElement, string(edge.Id), bpmnElement, edgeId)
			continue
		}

		flow, ok := c.elements.FindFlow(bpmnElement)
		if !ok {
			c.warn(model.WarningEdgeUnknownBpmnElement, string(edge.Id), bpmnElement)
			continue
		}

		var waypoints []model.Waypoint
		for _, point := range ensureArray(edge.Waypoint, false) {
			waypoints = append(waypoints, model.Waypoint{X: float64(point.X), Y: float64(point.Y)})
		}

		bpmnModel.Edges = append(bpmnModel.Edges, &model.Edge{
			Id:                 string(edge.Id),
			Flow:               flow,
			Waypoints:          waypoints,
			Label:              c.convertLabel(edge.BPMNLabel, string(edge.Id), fonts),
			MessageVisibleKind: model.MapMessageVisibleKind(string(edge.MessageVisibleKind)),
		})

		merged[bpmnElement] = string(edge.Id)
	}
}

// convertLabel converts the label of a shape or an edge.
// A label without font and without bounds is omitted.
func (c *converter) convertLabel(labels oneOrMany[BPMNLabel], id string, fonts map[string]*model.Font) *model.Label {
	label, ok := first(labels, false)
	if !ok {
		return nil
	}

	var font *model.Font
	if labelStyle := string(label.LabelStyle); labelStyle != "" {
		if font = fonts[labelStyle]; font == nil {
			c.warn(model.WarningLabelStyleUnknownFont, id, labelStyle)
		}
	}

	var bounds *model.Bounds
	if b, ok := first(label.Bounds, false); ok {
		labelBounds := newBounds(b)
		bounds = &labelBounds
	}

	if font == nil && bounds == nil {
		return nil
	}
	return &model.Label{Font: font, Bounds: bounds}
}

// convertFonts maps the ID of each label style to its font.
func convertFonts(labelStyles oneOrMany[BPMNLabelStyle]) map[string]*model.Font {
	fonts := make(map[string]*model.Font)
	for _, labelStyle := range ensureArray(labelStyles, false) {
		for _, font := range ensureArray(labelStyle.Font, false) {
			fonts[string(labelStyle.Id)] = &model.Font{
				Name:            string(font.Name),
				Size:            float64(font.Size),
				IsBold:          bool(font.IsBold),
				IsItalic:        bool(font.IsItalic),
				IsUnderline:     bool(font.IsUnderline),
				IsStrikeThrough: bool(font.IsStrikeThrough),
			}
		}
	}
	return fonts
}

func newBounds(b DcBounds) model.Bounds {
	return model.Bounds{
		X:      float64(b.X),
		Y:      float64(b.Y),
		Width:  float64(b.Width),
		Height: float64(b.Height),
	}
}
