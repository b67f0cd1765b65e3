package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration: collaborator endpoints, builder
// flags and the default repository path.
type Config struct {
	// ParserURL is the endpoint of the syntactic+semantic parser sidecar.
	ParserURL string `yaml:"parser_url"`

	// NerURL is the endpoint of the named-entity recognizer sidecar.
	NerURL string `yaml:"ner_url"`

	// Repository is the default SQLite file for stored OKRs.
	Repository string `yaml:"repository"`

	Implicits bool `yaml:"implicits"`
	ZeroArgs  bool `yaml:"zero_args"`
	Conj      bool `yaml:"conj"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ParserURL: "http://localhost:8081/parse",
		NerURL:    "http://localhost:8082/ner",
	}
}

// Load reads a YAML config file. An empty path falls back to OKR_CONF,
// then to the user config dir; if no file exists the defaults are
// returned.
func Load(path string) (Config, error) {
	cfg, err := load(path)
	if repo := os.Getenv("OKR_REPO_PATH"); repo != "" {
		cfg.Repository = repo
	}
	return cfg, err
}

func load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("OKR_CONF")
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "okr", "conf.yaml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
