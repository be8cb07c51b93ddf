package cli

import (
	"strings"

	"github.com/gclaussn/go-bpmn-parser/model"
	"github.com/spf13/cobra"
)

func newModelCmd(cli *Cli) *cobra.Command {
	var (
		bpmnFileName string
		typeV        elementTypeValue
	)

	c := cobra.Command{
		Use:   "model",
		Short: "Parse a BPMN file and show the resulting model",
		RunE: func(c *cobra.Command, _ []string) error {
			bpmnModel, _, err := cli.parse(bpmnFileName)
			if err != nil {
				return err
			}

			elementType := model.ElementType(typeV)
			if elementType != 0 {
				bpmnModel = &model.BpmnModel{FlowNodes: bpmnModel.FlowNodesByType(elementType)}
			}

			t := newTable([]string{"ID", "BPMN ELEMENT ID", "TYPE", "NAME", "PARENT ID", "INCOMING", "OUTGOING"})
			for _, shapes := range [][]*model.Shape{bpmnModel.Pools, bpmnModel.Lanes, bpmnModel.FlowNodes} {
				for _, shape := range shapes {
					t.addRow([]string{
						shape.Id,
						shape.Element.Id,
						shape.Element.Type.String(),
						shape.Element.Name,
						shape.Element.ParentId,
						strings.Join(shape.Element.IncomingIds, ","),
						strings.Join(shape.Element.OutgoingIds, ","),
					})
				}
			}
			for _, edge := range bpmnModel.Edges {
				t.addRow([]string{
					edge.Id,
					edge.Flow.Id,
					edge.Flow.Kind.String(),
					edge.Flow.Name,
					"",
					edge.Flow.SourceRefId,
					edge.Flow.TargetRefId,
				})
			}

			return write(c.OutOrStdout(), cli.options.Output, bpmnModel, t)
		},
	}

	c.Flags().StringVar(&bpmnFileName, "bpmn-file", "", "Path to a BPMN XML or JSON file")
	c.Flags().Var(&typeV, "type", "Show only flow nodes of the given element type")

	c.MarkFlagRequired("bpmn-file")

	return &c
}
