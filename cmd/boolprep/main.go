// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command boolprep reads a serialized Boolean graph, runs it through the
// preprocessor, and writes the result back out, optionally alongside a
// Graphviz rendering and a per-phase statistics table (SPEC_FULL.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/rakhimov/boolgraph"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "boolprep",
		Usage: "normalize and simplify a Boolean graph",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file"},
			&cli.StringFlag{Name: "input", Required: true, Usage: "path to a CBOR-encoded graph"},
			&cli.StringFlag{Name: "output", Usage: "path to write the processed CBOR graph"},
			&cli.StringFlag{Name: "dot", Usage: "path to write a Graphviz rendering of the result"},
			&cli.BoolFlag{Name: "stats", Usage: "print a per-phase statistics table to stderr"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "boolprep:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	fcfg, err := loadFileConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := zerolog.ParseLevel(fcfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log_level %q: %w", fcfg.LogLevel, err)
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	data, err := os.ReadFile(c.String("input"))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	g, err := boolgraph.UnmarshalGraph(data)
	if err != nil {
		return fmt.Errorf("decoding graph: %w", err)
	}

	opts := []boolgraph.Option{
		boolgraph.WithLogger(logger),
		boolgraph.WithMaxDepth(fcfg.MaxDepth),
		boolgraph.WithStats(c.Bool("stats") || fcfg.CollectStats),
	}
	if fcfg.NonCommonCoalescence {
		opts = append(opts, boolgraph.WithNonCommonCoalescence())
	}

	p := boolgraph.NewPreprocessor(g, opts...)
	result := p.Process()

	if c.Bool("stats") || fcfg.CollectStats {
		if err := boolgraph.WriteStats(os.Stderr, p.Stats()); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	if dotPath := c.String("dot"); dotPath != "" {
		f, err := os.Create(dotPath)
		if err != nil {
			return fmt.Errorf("creating dot output: %w", err)
		}
		defer f.Close()
		if err := boolgraph.WriteDot(f, result); err != nil {
			return fmt.Errorf("writing dot output: %w", err)
		}
	}

	out, err := result.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	outputPath := c.String("output")
	if outputPath == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outputPath, out, 0o644)
}
