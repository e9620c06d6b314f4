package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-ats/internal/schemas"
)

//go:embed config.schema.json
var configSchema string

// LoadError reports a configuration file that could not be read, decoded or validated
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadFile reads a YAML, JSON or TOML configuration file into an ATSConfig.
// The document is checked against the embedded JSON Schema before decoding
// and the decoded struct is validated afterwards.
func LoadFile(path string) (*ATSConfig, error) {
	if path == "" {
		return nil, &LoadError{Path: path, Message: "config path is empty"}
	}

	// Alias keys such as "react.js" contain dots, so nested keys use a different delimiter.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read config file", Cause: err}
	}

	settings := v.AllSettings()
	if err := schemas.ValidateDocument(path, configSchema, settings); err != nil {
		return nil, &LoadError{Path: path, Message: "config does not match schema", Cause: err}
	}

	var cfg ATSConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to build decoder", Cause: err}
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode config", Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid config", Cause: err}
	}
	return &cfg, nil
}

// Validate checks numeric ranges and rule specs.
func (c *ATSConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Density != nil && c.Density.Min != nil && c.Density.Max != nil && *c.Density.Min > *c.Density.Max {
		return fmt.Errorf("density min must not exceed density max")
	}
	var problems []string
	for _, spec := range c.RuleSpecs {
		if _, err := spec.Compile(); err != nil {
			problems = append(problems, fmt.Sprintf("rule %s: %v", spec.ID, err))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
