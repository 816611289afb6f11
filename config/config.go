// Package config loads the YAML configuration shared by the command line,
// terminal and HTTP front ends.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/abacus/alu"
	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var ErrInvalid = errors.New(f("invalid configuration"))

// ErrField reports every field that failed validation.
type ErrField struct {
	Fields []string
}

func (err *ErrField) Error() string {
	return f("%v: %v", ErrInvalid.Error(), strings.Join(err.Fields, ", "))
}

func (err *ErrField) Unwrap() error {
	return ErrInvalid
}

const (
	APP_NAME    = "abacus"
	CONFIG_FILE = "abacus.yaml"

	DEFAULT_LISTEN = "localhost:8080"
	DEFAULT_CANVAS = 400
)

// Classifier canvas settings.
type Classifier struct {
	Width  int   `yaml:"width" validate:"gt=0,max=1024"`
	Height int   `yaml:"height" validate:"gt=0,max=1024"`
	Seed   int64 `yaml:"seed"` // Zero seeds from the clock.
}

// Server settings for 'serve'.
type Server struct {
	Listen  string   `yaml:"listen" validate:"hostname_port"`
	Origins []string `yaml:"origins" validate:"dive,required"`
}

// Config of the abacus tools.
type Config struct {
	Bits       int        `yaml:"bits" validate:"min=1,max=64"`
	Lang       string     `yaml:"lang,omitempty" validate:"omitempty,bcp47_language_tag"`
	Data       string     `yaml:"data" validate:"required"` // Theme store directory.
	Out        string     `yaml:"out" validate:"required"`  // Export directory.
	Classifier Classifier `yaml:"classifier"`
	Server     Server     `yaml:"server"`
}

// Dir is the per-user configuration directory.
func Dir() (dir string, err error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return
	}

	dir = filepath.Join(base, APP_NAME)
	return
}

// DefaultPath is the configuration file read when none is named.
func DefaultPath() (path string, err error) {
	dir, err := Dir()
	if err != nil {
		return
	}

	path = filepath.Join(dir, CONFIG_FILE)
	return
}

// Default configuration.
func Default() (cfg *Config) {
	data := filepath.Join(".", "."+APP_NAME)
	if dir, err := Dir(); err == nil {
		data = filepath.Join(dir, "data")
	}

	cfg = &Config{
		Bits: alu.DEFAULT_WIDTH,
		Data: data,
		Out:  ".",
		Classifier: Classifier{
			Width:  DEFAULT_CANVAS,
			Height: DEFAULT_CANVAS,
		},
		Server: Server{
			Listen:  DEFAULT_LISTEN,
			Origins: []string{"*"},
		},
	}
	return
}

// Load reads a configuration file over the defaults. A missing file is
// not an error when path is empty.
func Load(path string) (cfg *Config, err error) {
	named := path != ""
	if !named {
		path, err = DefaultPath()
		if err != nil {
			cfg = Default()
			err = nil
			return
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !named && errors.Is(err, os.ErrNotExist) {
			cfg = Default()
			err = nil
			return
		}
		err = fmt.Errorf("%v: %w", f("read config %v", path), err)
		return
	}

	cfg, err = Parse(data)
	if err != nil {
		err = fmt.Errorf("%v: %w", f("config %v", path), err)
		cfg = nil
	}
	return
}

// Parse YAML over the defaults, and validate the result.
func Parse(data []byte) (cfg *Config, err error) {
	cfg = Default()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}
	return
}

// Save writes the configuration as YAML, creating the directory.
func (cfg *Config) Save(path string) (err error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}

	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return
	}

	return os.WriteFile(path, data, 0644)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field.
func (cfg *Config) Validate() (err error) {
	err = validate.Struct(cfg)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}

	err = &ErrField{Fields: fields}
	return
}
