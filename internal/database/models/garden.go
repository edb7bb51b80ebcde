package models

// Garden is the top-level rectangular planning area, measured in meters.
// Plants and raised beds reference it by GardenID; there is no foreign key so
// that orphaned children can be detected and repaired.
type Garden struct {
	BaseModel
	Name        string  `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Width       float64 `json:"width" gorm:"not null" validate:"required,min=0.5,max=100"`
	Height      float64 `json:"height" gorm:"not null" validate:"required,min=0.5,max=100"`
	Description string  `json:"description,omitempty" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for Garden
func (Garden) TableName() string {
	return "gardens"
}
