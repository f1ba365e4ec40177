package migrator

import (
	"bytes"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/tag-migrator/pkg/vim"
)

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(bytes.NewBufferString(configFile))

	is.NoErr(err)
	is.Equal(cfg.ExcludedAttributes, []string{"Owner", "CostCenter"})
}

func TestLoadEmptyConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(bytes.NewBufferString(""))

	is.NoErr(err)
	is.Equal(len(cfg.ExcludedAttributes), 0)
}

func TestFilterAttributes(t *testing.T) {
	is := is.New(t)

	cfg := &Config{ExcludedAttributes: []string{"Owner"}}

	filtered := cfg.filterAttributes([]vim.CustomAttribute{
		{Name: "Owner"},
		{Name: "Environment"},
	})

	is.Equal(len(filtered), 1)
	is.Equal(filtered[0].Name, "Environment")
}

const configFile string = `
excludedAttributes:
  - Owner
  - CostCenter
`
