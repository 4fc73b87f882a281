// Package config loads and validates the settings of the treewalk command.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/siddhu225/interview-prep/pkg/tree"
	"gopkg.in/yaml.v3"
)

const (
	OrderDepth   = string(tree.DepthOrder)
	OrderBreadth = string(tree.BreadthOrder)

	FormatText = "text"
	FormatYAML = "yaml"
)

type Config struct {
	// Order is the traversal order, depth or breadth.
	Order string `yaml:"order" validate:"required,oneof=depth breadth"`
	// Format selects how visited values are printed.
	Format string `yaml:"format" validate:"required,oneof=text yaml"`
	// Check rejects cyclic or shared trees, and self-referencing OpenAPI
	// schemas, before traversing.
	Check bool `yaml:"check"`
	// OpenAPI, when set, walks the schemas of that document instead of the
	// built-in letters tree.
	OpenAPI string `yaml:"openapi" validate:"omitempty,file"`
}

type Option func(*Config)

// WithOrder overrides the traversal order.
func WithOrder(order string) Option {
	return func(c *Config) {
		c.Order = order
	}
}

// WithFormat overrides the output format.
func WithFormat(format string) Option {
	return func(c *Config) {
		c.Format = format
	}
}

// WithCheck toggles the shape check.
func WithCheck(check bool) Option {
	return func(c *Config) {
		c.Check = check
	}
}

// WithOpenAPI sets the OpenAPI document to walk.
func WithOpenAPI(path string) Option {
	return func(c *Config) {
		c.OpenAPI = path
	}
}

func Default() Config {
	return Config{
		Order:  OrderDepth,
		Format: FormatText,
		Check:  true,
	}
}

// Load reads path (if not empty) over the defaults, applies opts and
// validates the result.
func Load(path string, opts ...Option) (Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	for _, opt := range opts {
		opt(&c)
	}

	if err := validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the name used in the config file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validate(c Config) (errs error) {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	for _, fe := range fieldErrs {
		errs = errors.Join(errs, fmt.Errorf("config %s: invalid value %q (%s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag()))
	}
	return errs
}
