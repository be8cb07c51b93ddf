/*
go-bpmn-parser is a CLI for parsing BPMN 2.0 XML and BPMN JSON documents.

Usage:

	go-bpmn-parser [flags]
	go-bpmn-parser [command]

Available Commands:

	completion  Generate the autocompletion script for the specified shell
	help        Help about any command
	model       Parse a BPMN file and show the resulting model
	version     Show version
	warnings    Parse a BPMN file and show the warnings

Flags:

	    --config string         Path to a TOML config file
	    --disable-console-log   Disable the logging of parsing warnings
	    --format string         Format of the BPMN file: auto, json or xml (default "auto")
	-h, --help                  help for go-bpmn-parser
	    --output string         Output format: json, text or yaml (default "text")
	    --verbose               Enable debug logging

Use "go-bpmn-parser [command] --help" for more information about a command.
*/
package main

import (
	"os"

	"github.com/gclaussn/go-bpmn-parser/cli"
)

var (
	version = "unknown-version"
)

func main() {
	cli := cli.New(version)
	os.Exit(cli.Execute())
}
