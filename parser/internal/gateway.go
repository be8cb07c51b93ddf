package internal

import (
	"github.com/gclaussn/go-bpmn-parser/model"
)

func (c *converter) convertGateways(gateways oneOrMany[TGateway], elementType model.ElementType, processId string, parentId string) {
	for _, gateway := range ensureArray(gateways, false) {
		c.collectDefaultSequenceFlow(elementType, gateway.Default)

		c.registerFlowNode(&model.Element{
			Id:       string(gateway.Id),
			Name:     string(gateway.Name),
			Type:     elementType,
			ParentId: parentId,
		}, processId)
	}
}

func (c *converter) convertEventBasedGateways(gateways oneOrMany[TEventBasedGateway], processId string, parentId string) {
	for _, gateway := range ensureArray(gateways, false) {
		c.registerFlowNode(&model.Element{
			Id:       string(gateway.Id),
			Name:     string(gateway.Name),
			Type:     model.ElementEventBasedGateway,
			ParentId: parentId,

			Model: model.EventBasedGateway{
				Instantiate: isTrue(gateway.Instantiate, false),
				Kind:        model.MapEventBasedGatewayKind(string(gateway.EventGatewayType)),
			},
		}, processId)
	}
}
