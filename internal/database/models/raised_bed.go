package models

import "github.com/google/uuid"

// RaisedBed is a rectangular sub-region of a garden with its own soil depth and material
type RaisedBed struct {
	BaseModel
	GardenID  uuid.UUID `json:"garden_id" gorm:"type:uuid;not null;index:idx_raised_beds_garden"`
	Name      string    `json:"name" gorm:"not null;size:50"`
	Rect      `gorm:"embedded"`
	BedHeight float64  `json:"bed_height" gorm:"not null"`
	Material  Material `json:"material" gorm:"type:varchar(20);not null"`
	Color     string   `json:"color" gorm:"size:7;not null"`
	SoilType  string   `json:"soil_type,omitempty" gorm:"size:100"`
	Notes     string   `json:"notes,omitempty" gorm:"type:text"`
}

// TableName returns the table name for RaisedBed
func (RaisedBed) TableName() string {
	return "raised_beds"
}
