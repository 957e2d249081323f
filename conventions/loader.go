package conventions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
)

var (
	// ErrProfileDoesNotExist gets returned when the profile file is missing.
	ErrProfileDoesNotExist = errors.New("conventions profile does not exist")
	// ErrUnknownProfileFormat gets returned when the profile file extension is not supported.
	ErrUnknownProfileFormat = errors.New("unknown conventions profile format")
)

// Load reads a conventions profile from a JSON, TOML or YAML file. Keys that
// are absent from the file keep their default token.
func Load(path string) (*Conventions, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrProfileDoesNotExist, path)
	}

	var parser koanf.Parser
	switch ext := filepath.Ext(path); ext {
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfileFormat, ext)
	}

	config := koanf.New(".")
	if err := config.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("loading conventions profile failed: %w", err)
	}

	conv := Default()
	if err := config.Unmarshal("", conv); err != nil {
		return nil, fmt.Errorf("unmarshaling conventions profile failed: %w", err)
	}

	if err := conv.Validate(); err != nil {
		return nil, err
	}

	return conv, nil
}
