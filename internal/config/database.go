package config

import "os"

type DatabaseConfig struct {
	FilePath string `yaml:"path"`
}

// Path returns the sqlite database file path. DB_PATH takes precedence over
// the config file.
func (s *DatabaseConfig) Path() string {
	if path, ok := os.LookupEnv("DB_PATH"); ok {
		return path
	}

	if s.FilePath != "" {
		return s.FilePath
	}

	return "data/buckwheat.db"
}
