package config

import "os"

type ServerConfig struct {
	Addr         string `yaml:"address"`
	AllowOrigins string `yaml:"cors-allow-origins"`
}

// Address returns the listen address, preferring the ADDRESS environment
// variable over the config file.
func (s *ServerConfig) Address() string {
	if addr, ok := os.LookupEnv("ADDRESS"); ok {
		return addr
	}

	if s.Addr != "" {
		return s.Addr
	}

	return ":8080"
}

// CORSAllowOrigins returns the space separated list of origins allowed to
// call the API. CORS_ALLOW_ORIGINS takes precedence over the config file.
// An empty string disables CORS headers.
func (s *ServerConfig) CORSAllowOrigins() string {
	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		return origins
	}

	return s.AllowOrigins
}
