// Package config loads the service configuration from a yaml file and
// applies environment overrides on top of it. Every value has a default, so
// running without a config file is fine.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "data/config.yaml"

type config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	App      AppConfig      `yaml:"app"`
}

type Service struct {
	config config
}

// New reads the config file pointed to by CONFIG_FILE, falling back to
// data/config.yaml. A missing file is not an error.
func New() (*Service, error) {
	s := &Service{}

	file, ok := os.LookupEnv("CONFIG_FILE")
	if !ok {
		file = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return s, nil
}

func (s *Service) Server() *ServerConfig {
	return &s.config.Server
}

func (s *Service) Database() *DatabaseConfig {
	return &s.config.Database
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}
