// Command enumecg generates C++ boilerplate for Enhanced Enum types.
//
// Enum descriptions are read from YAML or from typed constant groups in Go
// packages:
//
//	enumecg gen status.yaml
//	enumecg gen --documentation doxygen --out include/enums status.yaml
//	enumecg gen --go-package ./status --type Status
//	enumecg check --out include/enums status.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/jasujm/enhanced-enum/cmd/enumecg/internal/command"
	"github.com/jasujm/enhanced-enum/cmd/enumecg/internal/config"
)

type CLI struct {
	Config  string `type:"path" placeholder:"FILE" help:"TOML file with flag defaults (default: .enumecg.toml if present)."`
	Verbose bool   `short:"v" help:"Log debug messages."`

	Version VersionCmd       `cmd:"" help:"Print version information."`
	Gen     command.GenCmd   `cmd:"" help:"Generate C++ enum definitions."`
	Check   command.CheckCmd `cmd:"" help:"Verify that generated headers are up to date."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(env *command.Env) error {
	fmt.Fprintln(env.Stdout, Version())
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &CLI{}
	env := &command.Env{Stdin: os.Stdin, Stdout: os.Stdout}
	kctx := kong.Parse(cli,
		kong.Name("enumecg"),
		kong.Description("Generate C++ boilerplate for Enhanced Enum types."),
		kong.UsageOnError(),
		kong.Bind(env),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	env.Logger = newLogger(cli.Verbose)
	cfg, err := config.Load(cli.Config)
	kctx.FatalIfErrorf(err)
	env.Config = cfg

	if err := kctx.Run(); err != nil {
		env.Logger.Error("enumecg failed", slog.String("command", kctx.Command()), slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
