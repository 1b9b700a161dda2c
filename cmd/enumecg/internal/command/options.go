// Package command implements the enumecg subcommands.
package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	enhancedenum "github.com/jasujm/enhanced-enum"
	"github.com/jasujm/enhanced-enum/cmd/enumecg/internal/config"
	"github.com/jasujm/enhanced-enum/cxx"
	"github.com/jasujm/enhanced-enum/ir"
	"github.com/jasujm/enhanced-enum/provider"
)

// Env is the environment a command runs in.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
	Config *config.Config
}

// Options are the input and generation flags shared by gen and check.
type Options struct {
	File          string   `arg:"" optional:"" default:"-" help:"YAML file with enum descriptions. - reads standard input."`
	GoPackage     []string `name:"go-package" placeholder:"PATTERN" help:"Read enums from typed constants in Go packages instead of YAML."`
	Type          []string `short:"t" help:"Go enum types to generate (default: all enums in the packages)."`
	Documentation string   `short:"d" help:"Documentation comment style (doxygen)."`
	PrimaryType   string   `name:"primary-type" help:"Generated type that keeps the enum typename (label, enhanced)."`
	ValueType     string   `name:"value-type" help:"C++ value type, instead of deducing it from the values."`
}

// generatorOptions merges the flags with the config file.
func (o *Options) generatorOptions(cfg *config.Config) enhancedenum.Options {
	return enhancedenum.Options{
		GeneratorOptions: enhancedenum.GeneratorOptions{
			Documentation: cxx.DocumentationStyle(config.Pick(o.Documentation, cfg.Documentation)),
		},
		DefinitionOptions: enhancedenum.DefinitionOptions{
			PrimaryType: ir.PrimaryType(config.Pick(o.PrimaryType, cfg.PrimaryType)),
			ValueType:   config.Pick(o.ValueType, cfg.ValueType),
		},
	}
}

// inputs loads the enum descriptions: from Go packages when any are given
// by flag or config, from YAML otherwise.
func (o *Options) inputs(ctx context.Context, env *Env) ([]any, error) {
	packages, types := o.GoPackage, o.Type
	if len(packages) == 0 && len(env.Config.Go.Packages) > 0 {
		packages = env.Config.Go.Packages
		if len(types) == 0 {
			types = env.Config.Go.Types
		}
	}

	if len(packages) > 0 {
		if o.File != "-" && o.File != "" {
			return nil, fmt.Errorf("cannot read %s and Go packages at the same time", o.File)
		}
		env.Logger.Debug("loading Go enums", slog.Any("packages", packages), slog.Any("types", types))
		enums, err := provider.LoadGoEnums(ctx, provider.GoSourceOptions{Packages: packages, Types: types})
		if err != nil {
			return nil, err
		}
		inputs := make([]any, len(enums))
		for i, e := range enums {
			env.Logger.Debug("found enum", slog.String("type", e.Name), slog.String("package", e.PkgPath), slog.Int("members", len(e.Members)))
			inputs[i] = e
		}
		return inputs, nil
	}
	if len(types) > 0 {
		return nil, fmt.Errorf("--type requires --go-package")
	}

	var (
		descs []enhancedenum.Description
		err   error
	)
	if o.File == "-" || o.File == "" {
		env.Logger.Debug("reading YAML from standard input")
		descs, err = provider.DecodeYAML(env.Stdin)
	} else {
		env.Logger.Debug("reading YAML", slog.String("file", o.File))
		descs, err = provider.ReadYAMLFile(o.File)
	}
	if err != nil {
		return nil, err
	}
	inputs := make([]any, len(descs))
	for i, d := range descs {
		inputs[i] = d
	}
	return inputs, nil
}

// batch builds the generation batch for the flags and config.
func (o *Options) batch(ctx context.Context, env *Env) (*enhancedenum.Batch, error) {
	inputs, err := o.inputs(ctx, env)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no enum descriptions found")
	}
	return enhancedenum.FromDescriptions(inputs...).WithOptions(o.generatorOptions(env.Config)), nil
}
