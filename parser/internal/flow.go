package internal

import (
	"github.com/gclaussn/go-bpmn-parser/model"
)

func (c *converter) convertSequenceFlows() {
	for _, sequenceFlows := range c.sequenceFlows {
		for _, sequenceFlow := range ensureArray(sequenceFlows, false) {
			c.elements.RegisterSequenceFlow(&model.Flow{
				Id:          string(sequenceFlow.Id),
				Name:        string(sequenceFlow.Name),
				Kind:        model.FlowSequence,
				SourceRefId: string(sequenceFlow.SourceRef),
				TargetRefId: string(sequenceFlow.TargetRef),

				SequenceFlowKind: c.sequenceFlowKind(sequenceFlow),
			})
		}
	}
}

// sequenceFlowKind determines the kind of a sequence flow.
// A default takes precedence over a condition. A condition is only considered, when the source can have a default sequence flow.
func (c *converter) sequenceFlowKind(sequenceFlow TSequenceFlow) model.SequenceFlowKind {
	if c.defaultSequenceFlowIds[string(sequenceFlow.Id)] {
		return model.SequenceFlowDefault
	}

	source, ok := c.elements.FindFlowNode(string(sequenceFlow.SourceRef))
	if !ok || !source.Type.IsWithDefaultSequenceFlow() {
		return model.SequenceFlowNormal
	}

	if len(ensureArray(sequenceFlow.ConditionExpression, false)) == 0 {
		return model.SequenceFlowNormal
	}

	if source.Type.IsActivity() {
		return model.SequenceFlowConditionalFromActivity
	}
	return model.SequenceFlowConditionalFromGateway
}

// assignIncomingAndOutgoingIds derives the incoming and outgoing flows of pools, lanes and flow nodes.
func (c *converter) assignIncomingAndOutgoingIds() {
	c.elements.scanFlows(func(flow *model.Flow) {
		if source, ok := c.elements.FindElement(flow.SourceRefId); ok {
			source.AddOutgoing(flow.Id)
		}
		if target, ok := c.elements.FindElement(flow.TargetRefId); ok {
			target.AddIncoming(flow.Id)
		}
	})
}
