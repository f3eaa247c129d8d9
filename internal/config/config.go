package config

import (
	"fmt"
	"strconv"
	"strings"

	fixtureerrors "txn-fixture-generator/internal/errors"
	"txn-fixture-generator/internal/validation"
)

const (
	DefaultOutputPath = "fake_transactions.csv"
	DefaultRowCount   = 50
)

type Config struct {
	Generator GeneratorConfig
}

type GeneratorConfig struct {
	OutputPath string `arg:"output_path" validate:"csv_path"`
	RowCount   int    `arg:"row_count" validate:"row_count"`
}

// Load builds the configuration from positional command line arguments
// (program name excluded): [output-path] [row-count]. Missing arguments
// fall back to the defaults.
func Load(args []string) (*Config, error) {
	if len(args) > 2 {
		return nil, fixtureerrors.New(fixtureerrors.ValidationGeneral,
			fixtureerrors.WithMessage("Too many arguments"),
			fixtureerrors.WithDetails(fmt.Sprintf("expected at most 2, got %d", len(args))),
		)
	}

	config := &Config{
		Generator: GeneratorConfig{
			OutputPath: getArg(args, 0, DefaultOutputPath),
			RowCount:   DefaultRowCount,
		},
	}

	if raw := getArg(args, 1, ""); raw != "" {
		rowCount, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fixtureerrors.Wrap(fixtureerrors.ValidationInvalidFormat, err,
				fixtureerrors.WithDetails(fmt.Sprintf("row_count: %q is not an integer", raw)),
			)
		}
		config.Generator.RowCount = rowCount
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against the generator's constraints
func (c *Config) Validate() error {
	return validation.GetValidator().Struct(c.Generator)
}

func getArg(args []string, index int, defaultValue string) string {
	if index < len(args) {
		if value := strings.TrimSpace(args[index]); value != "" {
			return value
		}
	}
	return defaultValue
}
