package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jasujm/enhanced-enum/cmd/enumecg/internal/config"
)

// GenCmd generates enum headers.
type GenCmd struct {
	Options `embed:""`

	Out string `short:"o" type:"path" help:"Write one header per enum into this directory instead of standard output."`
}

func (c *GenCmd) Run(ctx context.Context, env *Env) error {
	batch, err := c.batch(ctx, env)
	if err != nil {
		return err
	}

	out := config.Pick(c.Out, env.Config.Out)
	if out == "" {
		files, err := batch.Generate()
		if err != nil {
			return err
		}
		for i, f := range files {
			if i > 0 {
				fmt.Fprintln(env.Stdout)
			}
			if _, err := env.Stdout.Write(f.Content); err != nil {
				return err
			}
		}
		return nil
	}

	files, err := batch.ToDir(ctx, out)
	if err != nil {
		return err
	}
	for _, f := range files {
		env.Logger.Info("generated", slog.String("dir", out), slog.String("file", f.Path), slog.Int("bytes", len(f.Content)))
	}
	return nil
}
