// Package config loads enumecg defaults from a TOML file.
//
//	documentation = "doxygen"
//	primary_type = "enhanced"
//	out = "include/enums"
//
//	[go]
//	packages = ["./status"]
//	types = ["Status"]
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// DefaultFile is read from the working directory when no file is given.
const DefaultFile = ".enumecg.toml"

// Config holds defaults for command line flags. Flags given on the command
// line take precedence.
type Config struct {
	Documentation string `toml:"documentation" validate:"omitempty,oneof=doxygen"`
	PrimaryType   string `toml:"primary_type" validate:"omitempty,oneof=label enhanced"`
	ValueType     string `toml:"value_type" validate:"omitempty,printascii"`
	Out           string `toml:"out"`
	Go            Go     `toml:"go"`
}

// Go selects enums from Go source.
type Go struct {
	Packages []string `toml:"packages" validate:"dive,required"`
	Types    []string `toml:"types" validate:"dive,required"`
}

var validate = validator.New()

// Load reads the config file at path. If path is empty, DefaultFile is
// read when it exists and an empty Config is returned otherwise.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Pick returns flag if it is set, otherwise the configured value.
func Pick(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}
