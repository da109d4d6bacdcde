package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const initHeader = `# snipdex configuration.
# Sections are scanned in order; each label becomes a heading in the
# generated index. Remove this file to fall back to the built-in defaults.
`

// Init writes an example configuration file with the built-in defaults so
// users have a complete table to edit.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal example config: %w", err)
	}

	if err := os.WriteFile(configPath, append([]byte(initHeader), data...), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
