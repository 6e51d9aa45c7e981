package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/parashar08/ig-json-parser/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file read from the working directory.
const DefaultFile = "igjson.yaml"

// Version is the only supported config version.
const Version = 1

type Config struct {
	Version    int         `yaml:"version"`
	Package    Package     `yaml:"package"`
	Stream     string      `yaml:"stream"`
	Jobs       int         `yaml:"jobs"`
	Mapping    string      `yaml:"mapping"`
	Schemas    []Schema    `yaml:"schemas"`
	Migrations []Migration `yaml:"migrations"`
	Packages   []GoPackage `yaml:"packages"`
}

// Package is where the types read from schemas and migrations are generated.
type Package struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

type Schema struct {
	Path string `yaml:"path"`
}

type Migration struct {
	Path string `yaml:"path"`
}

// GoPackage is a package pattern whose annotated types are generated in place.
type GoPackage struct {
	Path string `yaml:"path"`
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(fileData))
	dec.KnownFields(true)

	var config Config
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf(`invalid config file "%s": %w`, configPath, err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Version != Version {
		return fmt.Errorf("unsupported version %d, expected %d", c.Version, Version)
	}

	if c.Package.Path == "" && (len(c.Schemas) > 0 || len(c.Migrations) > 0) {
		return errors.New(`"package.path" is needed to generate types from schemas and migrations`)
	}

	if c.Jobs < 0 {
		return fmt.Errorf(`"jobs" can't be negative, got %d`, c.Jobs)
	}

	if _, err := model.ParseMappingMode(c.Mapping); err != nil {
		return err
	}

	return nil
}

// PackageName returns the Go package name of the output package.
func (c *Config) PackageName() string {
	if c.Package.Name != "" {
		return c.Package.Name
	}

	return path.Base(c.Package.Path)
}

// MappingMode returns the mapping mode of the fields read from migrations.
func (c *Config) MappingMode() model.MappingMode {
	m, _ := model.ParseMappingMode(c.Mapping)
	return m
}
