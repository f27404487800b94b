package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

//go:embed universities.yaml
var defaultCatalog []byte

type catalogFile struct {
	Universities []models.University `json:"universities" yaml:"universities"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// LoadFile reads a catalog from path. ".json" and ".jsonc" files may carry
// comments and trailing commas; anything else is parsed as YAML.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	format := FormatYAML
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		format = FormatJSON
	}
	return Parse(data, format)
}

func Parse(data []byte, format Format) (*Catalog, error) {
	var file catalogFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	}
	return New(file.Universities)
}
