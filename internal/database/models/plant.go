package models

import (
	"time"

	"github.com/google/uuid"
)

// Plant is a placed instance of a plant type. RaisedBedID is nil when the plant
// sits directly in garden soil.
type Plant struct {
	BaseModel
	GardenID     uuid.UUID  `json:"garden_id" gorm:"type:uuid;not null;index:idx_plants_garden"`
	RaisedBedID  *uuid.UUID `json:"raised_bed_id,omitempty" gorm:"type:uuid;index:idx_plants_bed"`
	Name         string     `json:"name" gorm:"not null;size:100"`
	Variety      string     `json:"variety" gorm:"not null;size:100"`
	Rect         `gorm:"embedded"`
	PlantingDate *time.Time  `json:"planting_date,omitempty"`
	HarvestDate  *time.Time  `json:"harvest_date,omitempty"`
	Notes        string      `json:"notes,omitempty" gorm:"type:text"`
	Color        string      `json:"color,omitempty" gorm:"size:7"`
	Status       PlantStatus `json:"status" gorm:"type:varchar(20);not null;default:'planned'"`
}

// TableName returns the table name for Plant
func (Plant) TableName() string {
	return "plants"
}

// InGround reports whether the plant is planted directly in garden soil
func (p *Plant) InGround() bool {
	return p.RaisedBedID == nil
}
