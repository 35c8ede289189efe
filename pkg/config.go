package pkg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the optional TOML configuration file.
type Config struct {
	ExiftoolPath string         `toml:"exiftool_path"`
	Metadata     MetadataConfig `toml:"metadata"`
}

// MetadataConfig holds default values for the metadata request.
type MetadataConfig struct {
	Keywords    []string `toml:"keywords"`
	Credit      string   `toml:"credit"`
	Description string   `toml:"description"`
	Copyright   string   `toml:"copyright"`
	Location    string   `toml:"location"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/photoimport/config.toml,
// falling back to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "photoimport", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "photoimport", "config.toml")
}

// LoadConfig reads the TOML file at path. A missing file yields an empty
// Config unless required is set. Unknown keys are rejected.
func LoadConfig(path string, required bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parse config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Request returns a new MetadataRequest populated from the config defaults.
// The keyword slice is copied so requests never share backing storage.
func (c Config) Request() MetadataRequest {
	var keywords []string
	if c.Metadata.Keywords != nil {
		keywords = append([]string{}, c.Metadata.Keywords...)
	}
	return MetadataRequest{
		Keywords:    keywords,
		Credit:      c.Metadata.Credit,
		Description: c.Metadata.Description,
		Copyright:   c.Metadata.Copyright,
		Location:    c.Metadata.Location,
	}
}
