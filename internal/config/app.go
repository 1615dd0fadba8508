package config

import (
	"os"

	"golang.org/x/text/language"
)

type AppConfig struct {
	LocaleTag string `yaml:"locale"`
}

// Locale returns the BCP 47 tag used to parse user entered amounts. LOCALE
// takes precedence over the config file. An unparseable tag falls back to
// English rather than failing startup.
func (s *AppConfig) Locale() language.Tag {
	raw, ok := os.LookupEnv("LOCALE")
	if !ok {
		raw = s.LocaleTag
	}

	if raw == "" {
		return language.English
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return language.English
	}

	return tag
}
