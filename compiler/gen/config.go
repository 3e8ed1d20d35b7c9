package gen

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Config controls code generation.
type Config struct {
	// Package is the import path of the generated package.
	Package string `yaml:"package"`

	// Target is the directory generated files are written to.
	Target string `yaml:"target"`

	// Header is an additional comment added at the top of each generated
	// file, after the generated-code marker.
	Header string `yaml:"header"`

	// Watch lists directories the generator CLI watches in watch mode.
	Watch []string `yaml:"watch"`
}

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the output package import path.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// Apply applies options to the config, returning the first error.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfig reads a generator configuration file (syrinxgen.yaml).
func LoadConfig(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", file, err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", file, err)
	}
	return c, c.validate()
}

func (c *Config) validate() error {
	if c.Package == "" {
		return NewConfigError("Package", nil, "package cannot be empty")
	}
	if c.Target == "" {
		return NewConfigError("Target", nil, "target directory cannot be empty")
	}
	return nil
}

// PackageName returns the name of the generated package.
func (c *Config) PackageName() string {
	return path.Base(c.Package)
}
