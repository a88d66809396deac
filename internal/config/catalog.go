package config

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GenerateFromConfigDir merges every *.hcl file below configDir into the
// catalog, in walk order.
func (c *Catalog) GenerateFromConfigDir(configDir string) error {
	configDir = strings.TrimRight(configDir, "/")

	matches, err := findFilesInPath(configDir)
	if err != nil {
		return err
	}

	for _, m := range matches {
		log.Infof("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return errors.Wrapf(err, "failed to read configuration file %s", m)
		}

		if err := hcl.Unmarshal(contents, c); err != nil {
			return errors.Wrapf(err, "could not parse configuration file %s", m)
		}
	}

	return c.validate()
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Probes))
	for i := range c.Probes {
		p := &c.Probes[i]
		if p.Name == "" {
			return errors.Errorf("probe #%d has no name", i+1)
		}
		if seen[p.Name] {
			return errors.Errorf("probe %q is declared more than once", p.Name)
		}
		if p.URL == "" {
			return errors.Errorf("probe %q has no url", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
