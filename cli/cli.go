package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	envLookupAllowed = "envLookupAllowed" // flag level annotation that allows an environment variable lookup
	envPrefix        = "GO_BPMN_PARSER_"
	program          = "go-bpmn-parser"
)

func New(version string) *Cli {
	cli := Cli{version: version}

	cli.rootCmd = newRootCmd(&cli)

	return &cli
}

type Cli struct {
	version string

	rootCmd *cobra.Command

	logger  *log.Logger
	options options
}

// options are set via flags, environment variables or a TOML config file - in this order of precedence.
// A TOML key is the name of the flag it sets.
type options struct {
	DisableConsoleLog bool
	Format            string `validate:"oneof=auto json xml"`
	Output            string `validate:"oneof=json text yaml"`
	Verbose           bool
}

func (c *Cli) Execute() int {
	if err := c.rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func (c *Cli) help(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

func newRootCmd(cli *Cli) *cobra.Command {
	var configFileName string

	c := cobra.Command{
		Use:   program,
		Short: "A parser for BPMN 2.0 XML and BPMN JSON documents",
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			c.SilenceUsage = true

			if configFileName == "" {
				configFileName = os.Getenv(envPrefix + "CONFIG")
			}

			var config map[string]any
			if configFileName != "" {
				if _, err := toml.DecodeFile(configFileName, &config); err != nil {
					return fmt.Errorf("failed to decode config file %s: %v", configFileName, err)
				}
			}

			var setErr error
			c.Flags().VisitAll(func(f *pflag.Flag) {
				if f.Changed {
					return
				}
				if _, ok := f.Annotations[envLookupAllowed]; !ok {
					return
				}

				// e.g. disable-console-log -> GO_BPMN_PARSER_DISABLE_CONSOLE_LOG
				key := envPrefix + strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_")

				if value, ok := os.LookupEnv(key); ok {
					f.Value.Set(value)
				} else if value, ok := config[f.Name]; ok {
					if err := f.Value.Set(fmt.Sprint(value)); err != nil && setErr == nil {
						setErr = fmt.Errorf("config file %s: invalid value for %s: %v", configFileName, f.Name, err)
					}
				}
			})
			if setErr != nil {
				return setErr
			}

			if err := validator.New().Struct(cli.options); err != nil {
				return fmt.Errorf("invalid options: %v", err)
			}

			level := log.InfoLevel
			if cli.options.Verbose {
				level = log.DebugLevel
			}

			cli.logger = log.NewWithOptions(c.ErrOrStderr(), log.Options{
				Level:           level,
				Prefix:          program,
				ReportTimestamp: true,
				TimeFormat:      time.TimeOnly,
			})
			return nil
		},
		RunE: cli.help,
	}

	c.PersistentFlags().StringVar(&configFileName, "config", "", "Path to a TOML config file")
	c.PersistentFlags().BoolVar(&cli.options.DisableConsoleLog, "disable-console-log", false, "Disable the logging of parsing warnings")
	c.PersistentFlags().StringVar(&cli.options.Format, "format", "auto", "Format of the BPMN file: auto, json or xml")
	c.PersistentFlags().StringVar(&cli.options.Output, "output", "text", "Output format: json, text or yaml")
	c.PersistentFlags().BoolVar(&cli.options.Verbose, "verbose", false, "Enable debug logging")

	c.PersistentFlags().SetAnnotation("disable-console-log", envLookupAllowed, nil)
	c.PersistentFlags().SetAnnotation("format", envLookupAllowed, nil)
	c.PersistentFlags().SetAnnotation("output", envLookupAllowed, nil)
	c.PersistentFlags().SetAnnotation("verbose", envLookupAllowed, nil)

	c.AddCommand(newModelCmd(cli))
	c.AddCommand(newWarningsCmd(cli))
	c.AddCommand(newVersionCmd(cli))

	return &c
}

func newVersionCmd(cli *Cli) *cobra.Command {
	c := cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), cli.version)
		},
	}

	return &c
}
