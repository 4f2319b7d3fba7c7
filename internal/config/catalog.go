package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"prodtable/internal/domain"
)

// catalogFile is the on-disk shape shared by the TOML and YAML formats
type catalogFile struct {
	Products []domain.Product `toml:"products" yaml:"products"`
}

// LoadCatalog reads a catalog file. The format is picked by extension.
// An empty path returns the built-in sample catalog.
func LoadCatalog(path string) (domain.Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	for i, p := range file.Products {
		if p.Name == "" || p.Category == "" {
			return nil, fmt.Errorf("catalog %s: product %d needs a name and a category", path, i)
		}
	}
	return domain.Catalog(file.Products), nil
}

// DefaultCatalog returns the sample products shipped with the program
func DefaultCatalog() domain.Catalog {
	return domain.Catalog{
		{Category: "Fruits", Price: "$2", Stocked: false, Name: "Passionfruit"},
		{Category: "Fruits", Price: "$1", Stocked: true, Name: "Dragonfruit"},
		{Category: "Vegetables", Price: "$4", Stocked: false, Name: "Pumpkin"},
		{Category: "Vegetables", Price: "$2", Stocked: true, Name: "Spinach"},
		{Category: "Fruits", Price: "$1", Stocked: true, Name: "Apple"},
		{Category: "Vegetables", Price: "$1", Stocked: true, Name: "Peas"},
		{Category: "Fruits", Price: "$3", Stocked: true, Name: "Mango"},
		{Category: "Fruits", Price: "$2", Stocked: false, Name: "Pineapple"},
		{Category: "Vegetables", Price: "$3", Stocked: true, Name: "Broccoli"},
		{Category: "Vegetables", Price: "$2", Stocked: true, Name: "Carrot"},
		{Category: "Fruits", Price: "$4", Stocked: true, Name: "Pomegranate"},
		{Category: "Vegetables", Price: "$5", Stocked: false, Name: "Artichoke"},
	}
}
