// Package config loads minic settings from a TOML or YAML file, with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a configuration file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension. Anything that is
// not .yaml or .yml is read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

type Config struct {
	// Extensions selects the files a directory scan or watch picks up.
	Extensions []string `toml:"extensions" yaml:"extensions"`
	// Format is the report format: text, json or yaml.
	Format string `toml:"format" yaml:"format"`
	// MaxSteps overrides the parser step budget when positive.
	MaxSteps int   `toml:"max_steps" yaml:"max_steps"`
	Log      Log   `toml:"log" yaml:"log"`
	Watch    Watch `toml:"watch" yaml:"watch"`

	path string
}

type Log struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

type Watch struct {
	Interval time.Duration `toml:"interval" yaml:"interval"`
}

// Default returns the settings used when no file is found.
func Default() *Config {
	return &Config{
		Extensions: []string{".mc", ".txt"},
		Format:     "text",
		Watch:      Watch{Interval: 500 * time.Millisecond},
	}
}

// Path returns the file the configuration was loaded from, or "" for
// defaults.
func (c *Config) Path() string {
	return c.path
}

// Load reads path over the defaults, so keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("load config: empty path")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	c := Default()
	if err := c.decode(content, DetectFormat(path)); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	c.path = path
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) decode(content []byte, format Format) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, c); err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
	default:
		md, err := toml.Decode(string(content), c)
		if err != nil {
			return fmt.Errorf("toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("toml: unknown key %s", undecoded[0])
		}
	}
	return nil
}

// Filenames are the names Discover looks for, in order.
var Filenames = []string{"minic.toml", "minic.yaml", "minic.yml", ".minic.toml"}

// Discover loads the first configuration file found in dir. It returns
// the defaults when there is none.
func Discover(dir string) (*Config, error) {
	for _, name := range Filenames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return Load(path)
		}
	}
	return Default(), nil
}

// ApplyEnv overrides settings from PREFIX_FORMAT, PREFIX_MAX_STEPS and
// PREFIX_LOG_VERBOSITY.
func (c *Config) ApplyEnv(prefix string) error {
	if v, ok := os.LookupEnv(prefix + "_FORMAT"); ok {
		c.Format = v
	}
	if v, ok := os.LookupEnv(prefix + "_MAX_STEPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s_MAX_STEPS: %w", prefix, err)
		}
		c.MaxSteps = n
	}
	if v, ok := os.LookupEnv(prefix + "_LOG_VERBOSITY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s_LOG_VERBOSITY: %w", prefix, err)
		}
		c.Log.Verbosity = n
	}
	return c.Validate()
}

var formats = map[string]bool{"text": true, "json": true, "yaml": true, "yml": true}

func (c *Config) Validate() error {
	var errs []error
	if !formats[c.Format] {
		errs = append(errs, fmt.Errorf("format %q is not one of text, json, yaml", c.Format))
	}
	if c.MaxSteps < 0 {
		errs = append(errs, fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps))
	}
	if c.Watch.Interval <= 0 {
		errs = append(errs, fmt.Errorf("watch.interval must be positive, got %s", c.Watch.Interval))
	}
	if len(c.Extensions) == 0 {
		errs = append(errs, errors.New("extensions must not be empty"))
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("extension %q must start with a dot", ext))
		}
	}
	return errors.Join(errs...)
}

// Matches reports whether path has one of the configured extensions.
func (c *Config) Matches(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
