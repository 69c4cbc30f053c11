package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/HabitInventory_Go/internal/domain"
	"github.com/osse101/HabitInventory_Go/internal/payload"
	"github.com/osse101/HabitInventory_Go/internal/validation"
)

// File is the on-disk catalog document
type File struct {
	Version     string          `json:"version"`
	Description string          `json:"description,omitempty"`
	Eggs        json.RawMessage `json:"eggs"`
}

// Config is a parsed catalog file with decoded egg definitions
type Config struct {
	Version     string
	Description string
	Eggs        []*domain.EggDefinition
}

// Loader handles loading and validating catalog files
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader that validates against the repository schema
func NewLoader() Loader {
	return NewLoaderWithSchema(SchemaPath)
}

// NewLoaderWithSchema creates a Loader that validates against schemaPath
func NewLoaderWithSchema(schemaPath string) Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      schemaPath,
	}
}

// Load reads a JSON or YAML catalog file, validates it against the schema and
// decodes every egg definition.
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	if isYAML(path) {
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf(ErrMsgConvertYAMLFailed, err)
		}
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	eggs, err := payload.DecodeEggs(file.Eggs)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeEggsFailed, err)
	}

	return &Config{
		Version:     file.Version,
		Description: file.Description,
		Eggs:        eggs,
	}, nil
}

// Validate checks the catalog for errors the schema cannot express
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgCatalogNil)
	}

	if len(config.Eggs) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgNoEggsDefined)
	}

	seen := make(map[string]bool, len(config.Eggs))
	for i, egg := range config.Eggs {
		if egg == nil || egg.Key == "" {
			return fmt.Errorf(ErrFmtEggAtIndexEmpty, domain.ErrInvalidCatalog, i)
		}
		if seen[egg.Key] {
			return fmt.Errorf(ErrFmtDuplicateEggKey, domain.ErrDuplicateEggKey, egg.Key)
		}
		seen[egg.Key] = true

		if egg.Value < 0 {
			return fmt.Errorf(ErrFmtEggNegativeValue, domain.ErrInvalidCatalog, egg.Key)
		}
		if t, ok := egg.OwnedItemType(); !ok || t != domain.ItemTypeEgg {
			return fmt.Errorf(ErrFmtEggUnknownItemType, domain.ErrInvalidCatalog, egg.Key, egg.ItemType)
		}
	}

	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
