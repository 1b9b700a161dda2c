package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"github.com/jasujm/enhanced-enum/cmd/enumecg/internal/config"
	"github.com/jasujm/enhanced-enum/sink"
)

// CheckCmd verifies that generated headers are up to date.
type CheckCmd struct {
	Options `embed:""`

	Out string `short:"o" type:"path" help:"Directory holding the generated headers."`
}

// ErrOutOfDate is returned by check when some headers differ from what
// gen would write.
var ErrOutOfDate = errors.New("generated headers are out of date")

func (c *CheckCmd) Run(ctx context.Context, env *Env) error {
	out := config.Pick(c.Out, env.Config.Out)
	if out == "" {
		return fmt.Errorf("no output directory to check; pass --out or set out in %s", config.DefaultFile)
	}
	batch, err := c.batch(ctx, env)
	if err != nil {
		return err
	}

	err = batch.Check(ctx, sink.NewFilesystemSink(out))
	if err == nil {
		env.Logger.Info("headers up to date", slog.String("dir", out))
		return nil
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return err
	}
	stale := 0
	for _, e := range merr.Errors {
		var drift *sink.DriftError
		if !errors.As(e, &drift) {
			return err
		}
		stale++
		if drift.Missing {
			env.Logger.Error("header missing", slog.String("dir", out), slog.String("file", drift.Path))
			continue
		}
		env.Logger.Error("header out of date", slog.String("dir", out), slog.String("file", drift.Path))
		fmt.Fprintf(env.Stdout, "--- %s\n%s\n", drift.Path, drift.Diff)
	}
	return fmt.Errorf("%w (%d stale); run enumecg gen to update", ErrOutOfDate, stale)
}
