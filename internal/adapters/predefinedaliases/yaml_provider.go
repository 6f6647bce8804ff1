package predefinedaliases

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dalia-sh/dalia/internal/core/domain/alias"
	"github.com/dalia-sh/dalia/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the PredefinedAliasProvider interface by reading
// extra directory aliases from a YAML file next to the main configuration.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing predefined aliases.
func NewYAMLProvider(filePath string) (ports.PredefinedAliasProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetPredefinedAliases reads and parses aliases from the configured YAML
// file. If the file does not exist or is empty, it returns an empty list
// and no error: predefined aliases are strictly optional.
func (p *YAMLProvider) GetPredefinedAliases() ([]alias.Alias, error) {
	predefined := []alias.Alias{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return predefined, nil
		}
		return nil, fmt.Errorf("failed to read predefined aliases file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return predefined, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&predefined); err != nil {
		// A file holding only comments or a bare document marker decodes
		// to EOF; treat that the same as an empty file.
		if errors.Is(err, io.EOF) {
			return predefined, nil
		}
		return nil, fmt.Errorf("failed to unmarshal predefined aliases from %s: %w", p.filePath, err)
	}

	return predefined, nil
}
