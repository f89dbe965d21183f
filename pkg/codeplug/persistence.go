package codeplug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the configuration to a JSON file, following the teacher's
// profiles.Profile.SaveToFile convention (pkg/profiles/profiles.go).
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("codeplug: failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a configuration back from a JSON file written by Save.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codeplug: failed to read config file: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("codeplug: failed to unmarshal config: %w", err)
	}
	return &c, nil
}
