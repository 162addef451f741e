package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jviz-dev/jviz/internal/config"
	"github.com/jviz-dev/jviz/internal/jsonval"
	"github.com/jviz-dev/jviz/internal/logging"
	"github.com/jviz-dev/jviz/internal/textio"
	"github.com/jviz-dev/jviz/internal/ui"
)

// CLI defines the command-line interface.
var CLI struct {
	File string `help:"JSON file to load into the first window. If not specified with --print, reads from stdin." arg:"" optional:"" type:"path"`

	Print    bool   `help:"Print the formatted JSON to stdout instead of starting the TUI." short:"p"`
	Compact  bool   `help:"With --print, emit compact output instead of pretty." short:"c"`
	NoExpand bool   `help:"Disable recursive expansion of nested JSON strings."`
	Config   string `help:"Path to the YAML config file." type:"path"`
	LogFile  string `help:"Write debug logs to this file (the TUI owns stdout)." type:"path"`
	LogLevel string `help:"Log level: debug, info, warn, error." default:"info"`
	Version  bool   `help:"Show version information." short:"v"`
}

const version = "2.0.2"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jviz"),
		kong.Description("A terminal JSON formatter and tree viewer"),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jviz version %s\n", version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jviz: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if CLI.NoExpand {
		off := false
		cfg.ExpandNested = &off
	}

	logFile := cfg.Logging.File
	if CLI.LogFile != "" {
		logFile = CLI.LogFile
	}
	logLevel := cfg.Logging.Level
	if CLI.LogLevel != "" {
		logLevel = CLI.LogLevel
	}
	if err := logging.Setup(logFile, logLevel); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	if CLI.Print {
		return printFormatted(cfg)
	}

	var initial string
	if CLI.File != "" {
		initial, err = textio.ReadFile(CLI.File)
		if err != nil {
			return err
		}
	}
	return ui.NewManager(cfg).Run(initial)
}

// printFormatted is the batch mode: parse, expand, serialize to stdout.
// Parse failures exit non-zero with the offending position.
func printFormatted(cfg *config.Config) error {
	text, err := readInput()
	if err != nil {
		return err
	}

	v, err := jsonval.Parse(text)
	if err != nil {
		var perr *jsonval.ParseError
		if errors.As(err, &perr) {
			return fmt.Errorf("%d:%d: %s", perr.Line, perr.Column, perr.Message)
		}
		return err
	}
	if cfg.ShouldExpand() {
		v = jsonval.Expand(v)
	}

	mode := jsonval.ModePretty
	if CLI.Compact {
		mode = jsonval.ModeCompact
	}
	fmt.Println(jsonval.Serialize(v, mode))
	return nil
}

func readInput() (string, error) {
	if CLI.File != "" {
		return textio.ReadFile(CLI.File)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
