// typewriter-preview plays the portfolio's hero typewriter in the
// terminal, using the same engine and content as the web server.
//
// Words come from the command line when given, otherwise from the
// portfolio's roles (built-in or --content YAML).
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/typewriter"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, contentPath, err := parseFlags(args)
	if err == pflag.ErrHelp {
		return nil
	}
	if err != nil {
		return err
	}

	if len(cfg.Words) == 0 {
		content, err := portfolio.Load(contentPath)
		if err != nil {
			return err
		}
		cfg.Words = content.Roles
	}

	var program *tea.Program
	engine := typewriter.New(cfg, typewriter.WithObserver(func(s typewriter.Snapshot) {
		program.Send(snapshotMsg(s))
	}))
	defer engine.Stop()

	program = tea.NewProgram(newModel(engine, len(cfg.Words)))
	_, err = program.Run()
	return err
}

// parseFlags builds the engine config from flags and positional words.
func parseFlags(args []string) (typewriter.Config, string, error) {
	cfg := typewriter.DefaultConfig()
	var noLoop bool
	var contentPath string

	flagSet := pflag.NewFlagSet("typewriter-preview", pflag.ContinueOnError)
	flagSet.DurationVar(&cfg.TypeSpeed, "type", typewriter.DefaultTypeSpeed, "delay between typed characters")
	flagSet.DurationVar(&cfg.DeleteSpeed, "delete", typewriter.DefaultDeleteSpeed, "delay between deleted characters")
	flagSet.DurationVar(&cfg.DelaySpeed, "delay", typewriter.DefaultDelaySpeed, "pause on a fully typed word")
	flagSet.BoolVar(&noLoop, "no-loop", false, "stop on the last word instead of cycling")
	flagSet.StringVar(&contentPath, "content", "", "portfolio YAML file to read roles from (default: built-in content)")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: typewriter-preview [flags] [word...]\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return cfg, "", err
	}
	cfg.Loop = !noLoop
	cfg.Words = flagSet.Args()
	return cfg, contentPath, nil
}
