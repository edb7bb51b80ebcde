package models

// PlantType is catalog data describing a kind of vegetable. Spacing is in
// centimeters and drives the footprint of placed plants.
type PlantType struct {
	BaseModel
	Name            string   `json:"name" yaml:"name" gorm:"not null;size:100;uniqueIndex:idx_plant_types_name"`
	Category        string   `json:"category" yaml:"category" gorm:"not null;size:50;index:idx_plant_types_category"`
	Spacing         float64  `json:"spacing" yaml:"spacing" gorm:"not null"`
	DaysToMaturity  int      `json:"days_to_maturity" yaml:"days_to_maturity" gorm:"not null"`
	PlantingSeasons []string `json:"planting_seasons" yaml:"planting_seasons" gorm:"type:jsonb;serializer:json"`
	Companion       []string `json:"companion" yaml:"companion" gorm:"type:jsonb;serializer:json"`
	Avoid           []string `json:"avoid" yaml:"avoid" gorm:"type:jsonb;serializer:json"`
	Color           string   `json:"color" yaml:"color" gorm:"size:7;not null"`
}

// TableName returns the table name for PlantType
func (PlantType) TableName() string {
	return "plant_types"
}
