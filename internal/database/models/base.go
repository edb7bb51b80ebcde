package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// Rect is an axis-aligned rectangle in garden coordinates (meters, origin top-left).
type Rect struct {
	X      float64 `json:"x" gorm:"not null"`
	Y      float64 `json:"y" gorm:"not null"`
	Width  float64 `json:"width" gorm:"not null"`
	Height float64 `json:"height" gorm:"not null"`
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the centre point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// ContainsPoint reports whether (x, y) lies inside r, edges included.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Encloses reports whether inner lies entirely within r.
func (r Rect) Encloses(inner Rect) bool {
	return inner.X >= r.X && inner.Right() <= r.Right() &&
		inner.Y >= r.Y && inner.Bottom() <= r.Bottom()
}
