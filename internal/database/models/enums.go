package models

// Material defines the construction material of a raised bed
type Material string

const (
	MaterialWood      Material = "wood"
	MaterialStone     Material = "stone"
	MaterialMetal     Material = "metal"
	MaterialComposite Material = "composite"
)

// PlantStatus defines the lifecycle status of a placed plant
type PlantStatus string

const (
	PlantStatusPlanned   PlantStatus = "planned"
	PlantStatusPlanted   PlantStatus = "planted"
	PlantStatusGrowing   PlantStatus = "growing"
	PlantStatusHarvested PlantStatus = "harvested"
)

var materialColors = map[Material]string{
	MaterialWood:      "#8B4513",
	MaterialStone:     "#696969",
	MaterialMetal:     "#708090",
	MaterialComposite: "#654321",
}

// IsValid checks if the Material is valid
func (m Material) IsValid() bool {
	switch m {
	case MaterialWood, MaterialStone, MaterialMetal, MaterialComposite:
		return true
	}
	return false
}

// Color returns the default bed color for the material, or "" for an unknown material.
// Both bed placement and the material defaults endpoint read from here.
func (m Material) Color() string {
	return materialColors[m]
}

// MaterialColors returns a copy of the material to color lookup
func MaterialColors() map[Material]string {
	out := make(map[Material]string, len(materialColors))
	for m, c := range materialColors {
		out[m] = c
	}
	return out
}

// IsValid checks if the PlantStatus is valid
func (s PlantStatus) IsValid() bool {
	switch s {
	case PlantStatusPlanned, PlantStatusPlanted, PlantStatusGrowing, PlantStatusHarvested:
		return true
	}
	return false
}
