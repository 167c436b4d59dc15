package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"monkey/internal"
)

const appName = "monkey"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [/path/to/source.mk]\n\nWithout a source file the REPL is started.\n\n", appName)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to the YAML config file (default ~/.monkey.yml)")
	mode := fs.String("mode", "", "what to print: eval, tokens or ast")
	logLevel := fs.String("log-level", "", "log level: trace, debug, info, warn, error")
	noColor := fs.Bool("no-color", false, "disable coloured output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	path, explicit := *configPath, true
	if path == "" {
		path, explicit = defaultConfigPath(), false
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *noColor {
		cfg.Color = false
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, err := internal.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 2
	}

	printer := newStdPrinter(cfg.Color && isTerminal(os.Stdout))
	in := internal.NewInterpreter(printer, logger)
	runner := runnerFor(in, cfg.Mode)

	if fs.NArg() == 0 {
		return repl(cfg, runner, printer, logger)
	}

	absPath, err := filepath.Abs(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	source, err := os.ReadFile(absPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, absPath, err)
		return 1
	}
	logger.WithField("path", absPath).Debug("run")

	if !runner(string(source)) {
		return 1
	}
	return 0
}

func runnerFor(in *internal.Interpreter, mode string) func(string) bool {
	switch mode {
	case modeTokens:
		return in.PrintTokens
	case modeAST:
		return in.PrintTree
	}
	return in.Run
}
