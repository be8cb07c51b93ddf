package cli

import (
	"github.com/gclaussn/go-bpmn-parser/model"
	"github.com/spf13/cobra"
)

func newWarningsCmd(cli *Cli) *cobra.Command {
	var (
		bpmnFileName string
		typeV        warningTypeValue
	)

	c := cobra.Command{
		Use:   "warnings",
		Short: "Parse a BPMN file and show the warnings",
		RunE: func(c *cobra.Command, _ []string) error {
			_, warnings, err := cli.parse(bpmnFileName)
			if err != nil {
				return err
			}

			warningType := model.WarningType(typeV)

			type warningResult struct {
				Type    model.WarningType
				Args    []string
				Message string
			}

			results := make([]warningResult, 0, len(warnings))

			t := newTable([]string{"TYPE", "MESSAGE"})
			for _, warning := range warnings {
				if warningType != 0 && warning.Type != warningType {
					continue
				}

				results = append(results, warningResult{
					Type:    warning.Type,
					Args:    warning.Args,
					Message: warning.String(),
				})

				t.addRow([]string{warning.Type.String(), warning.String()})
			}

			return write(c.OutOrStdout(), cli.options.Output, results, t)
		},
	}

	c.Flags().StringVar(&bpmnFileName, "bpmn-file", "", "Path to a BPMN XML or JSON file")
	c.Flags().Var(&typeV, "type", "Show only warnings of the given type")

	c.MarkFlagRequired("bpmn-file")

	return &c
}
