package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	apperrors "github.com/alexisbeaulieu97/canvasgen/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk over the defaults,
// validates it, and returns the result. Keys absent from the file keep
// their default values.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load returns Default when path is empty and ParseConfig otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseConfig(path)
}

// ParseProps reads a YAML mapping of component properties, e.g.
//
//	text: Enviar
//	items:
//	  - {text: Inicio, link: /}
func ParseProps(path string) (props.Bag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}
	if raw == nil {
		return props.Bag{}, nil
	}

	bag, err := props.Normalize(raw)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, fmt.Errorf("normalize properties: %w", err))
	}
	return bag, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		err = errors.New(typeErr.Errors[0])
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
