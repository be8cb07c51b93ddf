package model

// BpmnModel is the result of a BPMN parsing.
// Each shape and edge pairs a semantic element or flow with its diagram interchange (DI) information.
type BpmnModel struct {
	Pools     []*Shape
	Lanes     []*Shape
	FlowNodes []*Shape
	Edges     []*Edge
}

// EdgeById returns the edge with the given ID, or nil, if no such edge exists.
func (m *BpmnModel) EdgeById(id string) *Edge {
	for _, edge := range m.Edges {
		if edge.Id == id {
			return edge
		}
	}
	return nil
}

// EdgeByFlowId returns the edge of the flow with the given ID, or nil, if no such edge exists.
func (m *BpmnModel) EdgeByFlowId(flowId string) *Edge {
	for _, edge := range m.Edges {
		if edge.Flow.Id == flowId {
			return edge
		}
	}
	return nil
}

// ElementById returns the pool, lane or flow node element with the given ID, or nil, if no such element exists.
func (m *BpmnModel) ElementById(id string) *Element {
	for _, shapes := range [][]*Shape{m.Pools, m.Lanes, m.FlowNodes} {
		for _, shape := range shapes {
			if shape.Element.Id == id {
				return shape.Element
			}
		}
	}
	return nil
}

// FlowNodesByType returns the shapes of all flow nodes of the given type.
func (m *BpmnModel) FlowNodesByType(elementType ElementType) []*Shape {
	var shapes []*Shape
	for _, shape := range m.FlowNodes {
		if shape.Element.Type == elementType {
			shapes = append(shapes, shape)
		}
	}
	return shapes
}

// ShapeById returns the pool, lane or flow node shape with the given ID, or nil, if no such shape exists.
func (m *BpmnModel) ShapeById(id string) *Shape {
	for _, shapes := range [][]*Shape{m.Pools, m.Lanes, m.FlowNodes} {
		for _, shape := range shapes {
			if shape.Id == id {
				return shape
			}
		}
	}
	return nil
}

type Shape struct {
	Id           string
	Element      *Element
	Bounds       Bounds
	Label        *Label `json:",omitempty"`
	IsHorizontal bool
}

type Edge struct {
	Id                 string
	Flow               *Flow
	Waypoints          []Waypoint
	Label              *Label `json:",omitempty"`
	MessageVisibleKind MessageVisibleKind
}

type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

type Waypoint struct {
	X float64
	Y float64
}

// Label is the DI information of an element's or flow's name.
// Font and bounds are optional, but at least one of them is set.
type Label struct {
	Font   *Font   `json:",omitempty"`
	Bounds *Bounds `json:",omitempty"`
}

type Font struct {
	Name            string
	Size            float64
	IsBold          bool
	IsItalic        bool
	IsUnderline     bool
	IsStrikeThrough bool
}
