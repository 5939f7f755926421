package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mikanfactory/gityard/internal/model"
)

// FileName is the per-repository configuration document.
const FileName = "gityard.json"

const DefaultBaseBranch = "master"

// LoadProject reads gityard.json from dir.
// A missing file is not an error: it returns (nil, nil).
func LoadProject(dir string) (*model.ProjectConfig, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to load %s: %w", FileName, err)
	}

	var cfg model.ProjectConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, fmt.Errorf("Failed to load %s: %w", FileName, err)
	}

	if cfg.Scripts == nil {
		return nil, fmt.Errorf("Invalid %s: missing or invalid 'scripts' field", FileName)
	}

	return &cfg, nil
}

// Script returns the commands for scriptName, or nil when unknown.
func Script(cfg *model.ProjectConfig, scriptName string) model.Commands {
	if cfg == nil {
		return nil
	}
	cmds, ok := cfg.Scripts[scriptName]
	if !ok || len(cmds) == 0 {
		return nil
	}
	return cmds
}

type initScripts struct {
	Test  string `json:"test"`
	Build string `json:"build"`
	Dev   string `json:"dev"`
	Lint  string `json:"lint"`
}

type initDocument struct {
	Scripts initScripts `json:"scripts"`
}

// Init writes a default gityard.json into dir. It refuses to overwrite.
func Init(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists. Remove it first if you want to reinitialize.", FileName)
	}

	doc := initDocument{
		Scripts: initScripts{
			Test:  "bun test",
			Build: "bun run build",
			Dev:   "bun run dev",
			Lint:  "bun run lint",
		},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", FileName, err)
	}
	return path, nil
}

// DefaultGlobalPath returns ~/.config/gityard/config.yaml.
func DefaultGlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gityard", "config.yaml"), nil
}

// LoadGlobal reads the user-wide YAML config. A missing file yields defaults.
func LoadGlobal(path string) (model.GlobalConfig, error) {
	cfg := model.GlobalConfig{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return model.GlobalConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return model.GlobalConfig{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.BaseBranch == "" {
		cfg.BaseBranch = DefaultBaseBranch
	}

	if strings.HasPrefix(cfg.DisplayBasePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return model.GlobalConfig{}, fmt.Errorf("expanding home directory: %w", err)
		}
		cfg.DisplayBasePath = filepath.Join(home, cfg.DisplayBasePath[2:])
	}

	return cfg, nil
}

// ResolveGlobalPath picks the config path from the flag or the default location.
func ResolveGlobalPath(flagPath string) (string, error) {
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", flagPath)
		}
		return flagPath, nil
	}
	return DefaultGlobalPath()
}
