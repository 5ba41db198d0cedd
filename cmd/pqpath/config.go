package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/pqpath/pq"
)

var dumpConfigCommand = &cli.Command{
	Action:      dumpConfig,
	Name:        "dumpconfig",
	Usage:       "Show configuration values",
	ArgsUsage:   "",
	Description: `The dumpconfig command shows the effective configuration in TOML format.`,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// Config is the full pqpath configuration.
type Config struct {
	Backend   pq.Backend
	Directed  bool
	Input     string `toml:",omitempty"`
	Verbosity string
	NoColor   bool
}

func defaultConfig() Config {
	return Config{
		Backend:   pq.BinaryHeapBackend,
		Verbosity: VerbosityFlag.Value,
	}
}

func loadConfig(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// buildConfig layers defaults, the config file and command line flags, in
// that order of precedence.
func buildConfig(ctx *cli.Context) (*Config, error) {
	cfg := defaultConfig()
	if file := ctx.String(ConfigFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet(BackendFlag.Name) {
		b, err := pq.ParseBackend(ctx.String(BackendFlag.Name))
		if err != nil {
			return nil, err
		}
		cfg.Backend = b
	}
	if ctx.IsSet(DirectedFlag.Name) {
		cfg.Directed = ctx.Bool(DirectedFlag.Name)
	}
	if ctx.IsSet(InputFlag.Name) {
		cfg.Input = ctx.String(InputFlag.Name)
	}
	if ctx.IsSet(VerbosityFlag.Name) {
		cfg.Verbosity = ctx.String(VerbosityFlag.Name)
	}
	if ctx.IsSet(NoColorFlag.Name) {
		cfg.NoColor = ctx.Bool(NoColorFlag.Name)
	}

	if !cfg.Backend.Valid() {
		return nil, fmt.Errorf("%w: %d", pq.ErrUnknownBackend, int(cfg.Backend))
	}
	return &cfg, nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := buildConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(ctx.App.Writer, string(out))
	return err
}
