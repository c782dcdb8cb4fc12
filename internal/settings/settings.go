// Package settings loads optional attire configuration from settings.yaml
// in the closet directory.
//
// The file can override the style rule tables (clash adjacency, neutral
// colors, formality ranks, occasion map) and the generation attempt budget,
// so the rules are swappable data rather than code.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"attire/internal/rules"
	"attire/internal/stylist"
)

// Settings holds attire configuration from settings.yaml.
type Settings struct {
	// Rules overrides individual rule tables. Omitted tables keep their
	// built-in defaults.
	Rules rules.Tables `yaml:"rules"`
	// MaxAttempts overrides the generation attempt budget.
	MaxAttempts int `yaml:"max_attempts"`
}

// Load reads a settings file. Returns nil (not an error) if the file does
// not exist.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the settings file.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Tables returns the effective rule tables: defaults with any overridden
// table swapped in. Safe to call on a nil *Settings receiver.
func (s *Settings) Tables() rules.Tables {
	t := rules.DefaultTables()
	if s == nil {
		return t
	}
	if s.Rules.Clash != nil {
		t.Clash = s.Rules.Clash
	}
	if s.Rules.Neutrals != nil {
		t.Neutrals = s.Rules.Neutrals
	}
	if s.Rules.FormalityRanks != nil {
		t.FormalityRanks = s.Rules.FormalityRanks
	}
	if s.Rules.OccasionLevels != nil {
		t.OccasionLevels = s.Rules.OccasionLevels
	}
	return t
}

// Attempts returns the effective generation attempt budget. Safe to call
// on a nil *Settings receiver.
func (s *Settings) Attempts() int {
	if s == nil || s.MaxAttempts < 1 {
		return stylist.DefaultMaxAttempts
	}
	return s.MaxAttempts
}
