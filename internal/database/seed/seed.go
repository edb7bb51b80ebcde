// Package seed holds the default plant type catalog.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"garden-planner-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

//go:embed plant_types.yaml
var defaultCatalog []byte

type catalogFile struct {
	PlantTypes []models.PlantType `yaml:"plant_types"`
}

// DefaultPlantTypes returns the built-in catalog
func DefaultPlantTypes() ([]models.PlantType, error) {
	return ParsePlantTypes(defaultCatalog)
}

// LoadPlantTypes reads a catalog from a YAML file
func LoadPlantTypes(path string) ([]models.PlantType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plant type catalog: %w", err)
	}
	return ParsePlantTypes(data)
}

// ParsePlantTypes decodes a catalog and checks that names are present and unique
func ParsePlantTypes(data []byte) ([]models.PlantType, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse plant type catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(file.PlantTypes))
	for i, pt := range file.PlantTypes {
		if pt.Name == "" {
			return nil, fmt.Errorf("plant type %d has no name", i)
		}
		if _, dup := seen[pt.Name]; dup {
			return nil, fmt.Errorf("duplicate plant type %q", pt.Name)
		}
		seen[pt.Name] = struct{}{}
		if pt.PlantingSeasons == nil {
			file.PlantTypes[i].PlantingSeasons = []string{}
		}
		if pt.Companion == nil {
			file.PlantTypes[i].Companion = []string{}
		}
		if pt.Avoid == nil {
			file.PlantTypes[i].Avoid = []string{}
		}
	}
	return file.PlantTypes, nil
}
