package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/BadrinathKonidala/Poker-AI-Bot/internal/config"
	"github.com/BadrinathKonidala/Poker-AI-Bot/internal/display"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"poker-outs.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	Plain    bool   `help:"Disable colour and suit symbols"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a five-card hand"`
	Outs     OutsCmd          `cmd:"" help:"Probability the board completes a royal flush or quads"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-outs"),
		kong.Description("Poker hand classification and board outs"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	a, err := newApp(cli.Globals, quartz.NewReal())
	ctx.FatalIfErrorf(err)

	err = ctx.Run(a)
	ctx.FatalIfErrorf(err)
}

// app carries what commands need once flags and config are resolved
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *display.Printer
	clock   quartz.Clock
}

func newApp(g Globals, clock quartz.Clock) (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.Plain {
		cfg.Display.Plain = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: setupLogger(os.Stderr, cfg.LogLevel()),
		printer: display.NewPrinter(os.Stdout, display.Options{
			Precision: cfg.Display.Precision,
			Plain:     cfg.Display.Plain,
		}),
		clock: clock,
	}, nil
}
