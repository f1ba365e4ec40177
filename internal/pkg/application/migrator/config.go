package migrator

import (
	"io"

	yaml "gopkg.in/yaml.v2"

	"github.com/diwise/tag-migrator/pkg/vim"
)

type Config struct {
	ExcludedAttributes []string `yaml:"excludedAttributes"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}

func (cfg *Config) excludes(attributeName string) bool {
	if cfg == nil {
		return false
	}

	for _, name := range cfg.ExcludedAttributes {
		if name == attributeName {
			return true
		}
	}

	return false
}

func (cfg *Config) filterAttributes(attributes []vim.CustomAttribute) []vim.CustomAttribute {
	if cfg == nil || len(cfg.ExcludedAttributes) == 0 {
		return attributes
	}

	filtered := make([]vim.CustomAttribute, 0, len(attributes))
	for _, attribute := range attributes {
		if !cfg.excludes(attribute.Name) {
			filtered = append(filtered, attribute)
		}
	}

	return filtered
}
