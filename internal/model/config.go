package model

import (
	"encoding/json"
	"fmt"
)

// Commands is a script entry: one command or an ordered list of commands.
// In JSON it is either a string or an array of strings.
type Commands []string

func (c *Commands) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*c = Commands{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected a string or an array of strings, got %s", data)
	}
	*c = Commands(many)
	return nil
}

// MarshalJSON writes a single command as a plain string.
func (c Commands) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

// Hooks lists scripts run around worktree lifecycle events.
type Hooks struct {
	OnCreate Commands `json:"onCreate,omitempty"`
	OnRemove Commands `json:"onRemove,omitempty"`
}

// ProjectConfig is the per-repository gityard.json document.
type ProjectConfig struct {
	Scripts         map[string]Commands `json:"scripts"`
	Hooks           Hooks               `json:"hooks,omitempty"`
	DisplayBasePath string              `json:"displayBasePath,omitempty"`
	// Gitforge is the older name of DisplayBasePath.
	Gitforge string `json:"gitforge,omitempty"`
}

// DisplayBase returns the configured display base path, honoring the legacy key.
func (c *ProjectConfig) DisplayBase() string {
	if c == nil {
		return ""
	}
	if c.DisplayBasePath != "" {
		return c.DisplayBasePath
	}
	return c.Gitforge
}

// GlobalConfig represents the user-wide settings loaded from YAML.
type GlobalConfig struct {
	BaseBranch      string `yaml:"base_branch"`
	DisplayBasePath string `yaml:"display_base_path"`
}
