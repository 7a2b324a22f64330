// Package main provides the CLI entrypoint for parse-define-xml.
//
// parse-define-xml reads one or more Define-XML files and prints the mapped
// documents:
//   - as indented JSON (-format json), a single document or an object keyed by path
//   - as a Go value dump (-format dump)
//
// Settings come from an optional YAML file (-config) and are overridden by flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

const usage = `usage: parse-define-xml [flags] FILE...

Flags:
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, paths, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		fmt.Fprintln(stderr, "parse-define-xml:", err)
		return 2
	}

	version, err := cfg.validate()
	if err != nil {
		fmt.Fprintln(stderr, "parse-define-xml:", err)
		return 2
	}

	log, err := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "parse-define-xml:", err)
		return 2
	}
	defer log.Sync()

	a := &app{cfg: cfg, version: version, log: log, out: stdout}
	if err := a.run(ctx, paths); err != nil {
		log.Error("Failed to parse Define-XML", zap.Error(err))
		return 1
	}

	return 0
}

// parseArgs reads the config file, if any, and applies the flags that were
// set on the command line on top of it.
func parseArgs(args []string, stderr io.Writer) (*Config, []string, error) {
	defaults := defaultConfig()

	fs := flag.NewFlagSet("parse-define-xml", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "YAML config file")
		version    = fs.String("version", defaults.Version, "Define-XML version: 2.0 or 2.1")
		arm        = fs.Bool("arm", defaults.ARM, "map Analysis Results Metadata")
		format     = fs.String("format", defaults.Format, "output format: json or dump")
		jobs       = fs.Int("jobs", defaults.Jobs, "number of files parsed concurrently")
		logLevel   = fs.String("log-level", defaults.LogLevel, "log level: debug, info, warn or error")
		logFormat  = fs.String("log-format", defaults.LogFormat, "log format: console or json")
	)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			return nil, nil, err
		}

		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "version":
			cfg.Version = *version
		case "arm":
			cfg.ARM = *arm
		case "format":
			cfg.Format = *format
		case "jobs":
			cfg.Jobs = *jobs
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})

	if fs.NArg() == 0 {
		fs.Usage()
		return nil, nil, errors.New("no input files")
	}

	return cfg, fs.Args(), nil
}
