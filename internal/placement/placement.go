// Package placement decides whether a proposed raised bed or plant rectangle is a
// legal placement inside a garden, and derives the geometry that gets persisted.
//
// Every function here is pure. Expected violations are reported through Result,
// never through a Go error or a panic.
package placement

import (
	"fmt"
	"math"
	"strings"

	"garden-planner-backend/internal/database/models"
	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// gridDivisions is the number of grid cells per meter; coordinates snap to 0.25 m.
	gridDivisions = 4
	// MinFootprint keeps zero-spacing plant types visible and selectable (5 cm).
	MinFootprint = 0.05
)

// Rejection reasons surfaced to callers.
const (
	ReasonInvalidBedSettings   = "Invalid bed settings"
	ReasonBedOutOfBounds       = "Bed placement is outside garden bounds"
	ReasonInvalidPlacement     = "Invalid placement parameters"
	ReasonPlantOutOfBounds     = "Plant placement is outside garden bounds"
	ReasonPlantDoesNotFitInBed = "Plant does not fit entirely within the bed"
)

// Result is the discriminated outcome of a placement decision
type Result struct {
	OK     bool
	Reason string
	Errors []apperrors.ValidationError
}

func accept() Result {
	return Result{OK: true}
}

func reject(reason string, errs ...apperrors.ValidationError) Result {
	return Result{Reason: reason, Errors: errs}
}

// Err returns the rejection as *apperrors.ValidationErrors, or nil when the placement is legal
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return apperrors.NewValidationErrors(r.Reason, r.Errors...)
}

// Snap rounds a coordinate to the nearest quarter meter
func Snap(v float64) float64 {
	return math.Round(v*gridDivisions) / gridDivisions
}

// Footprint converts a plant type spacing in centimeters into the side length of
// the placed plant square in meters.
func Footprint(spacingCM float64) float64 {
	return math.Max(spacingCM/100, MinFootprint)
}

// FindBedAtPoint returns the first bed whose rectangle contains (x, y), or nil.
// Beds are assumed not to overlap, so at most one should match.
func FindBedAtPoint(beds []models.RaisedBed, x, y float64) *models.RaisedBed {
	for i := range beds {
		if beds[i].Rect.ContainsPoint(x, y) {
			return &beds[i]
		}
	}
	return nil
}

func checkCoordinates(x, y float64) []apperrors.ValidationError {
	var errs []apperrors.ValidationError
	for _, c := range []struct {
		field string
		value float64
	}{{"x", x}, {"y", y}} {
		switch {
		case math.IsNaN(c.value) || math.IsInf(c.value, 0):
			errs = append(errs, apperrors.ValidationError{Field: c.field, Message: "must be a valid number"})
		case c.value < 0:
			errs = append(errs, apperrors.ValidationError{Field: c.field, Message: "must be >= 0"})
		}
	}
	return errs
}

// CheckBounds reports every edge of r that leaves the garden
func CheckBounds(r models.Rect, garden models.Garden) []apperrors.ValidationError {
	var errs []apperrors.ValidationError
	if r.X < 0 {
		errs = append(errs, apperrors.ValidationError{Field: "x", Message: "must be >= 0"})
	}
	if r.Y < 0 {
		errs = append(errs, apperrors.ValidationError{Field: "y", Message: "must be >= 0"})
	}
	if r.Right() > garden.Width {
		errs = append(errs, apperrors.ValidationError{Field: "x", Message: "Item extends beyond garden width"})
	}
	if r.Bottom() > garden.Height {
		errs = append(errs, apperrors.ValidationError{Field: "y", Message: "Item extends beyond garden height"})
	}
	return errs
}

// BedSettings are the user-editable properties of a raised bed about to be placed
type BedSettings struct {
	Name      string          `json:"name" validate:"required,min=1,max=50"`
	Width     float64         `json:"width" validate:"min=0.3,max=10"`
	Height    float64         `json:"height" validate:"min=0.3,max=10"`
	BedHeight float64         `json:"bed_height" validate:"min=0.1,max=1.5"`
	Material  models.Material `json:"material" validate:"required,oneof=wood stone metal composite"`
	SoilType  string          `json:"soil_type,omitempty" validate:"max=100"`
}

// DefaultBedSettings returns the settings the editor starts from
func DefaultBedSettings() BedSettings {
	return BedSettings{
		Name:      "New Bed",
		Width:     1.2,
		Height:    2.4,
		BedHeight: 0.3,
		Material:  models.MaterialWood,
		SoilType:  "garden soil",
	}
}

// BedPlan is the outcome of PlanBed. Rect and Color are only meaningful when OK.
type BedPlan struct {
	Result
	Settings BedSettings
	Rect     models.Rect
	Color    string
}

// PlantPlan is the outcome of PlanPlant. RaisedBedID is nil for plants placed in
// garden soil.
type PlantPlan struct {
	Result
	Rect        models.Rect
	RaisedBedID *uuid.UUID
	Name        string
	Variety     string
	Color       string
}

// Validator runs the placement rules. It needs a validator instance for the
// struct-tag checks on bed settings.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a placement validator
func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

// PlanBed validates a bed placed with its top-left corner at (x, y).
func (p *Validator) PlanBed(garden models.Garden, settings BedSettings, x, y float64) BedPlan {
	settings.Name = strings.TrimSpace(settings.Name)
	plan := BedPlan{Settings: settings}

	if err := validation.Struct(p.validate, ReasonInvalidBedSettings, &settings); err != nil {
		verrs, ok := apperrors.AsValidationErrors(err)
		if !ok {
			verrs = &apperrors.ValidationErrors{Errors: []apperrors.ValidationError{{Message: err.Error()}}}
		}
		plan.Result = reject(ReasonInvalidBedSettings, verrs.Errors...)
		return plan
	}

	if errs := checkCoordinates(x, y); len(errs) > 0 {
		plan.Result = reject(ReasonBedOutOfBounds, errs...)
		return plan
	}

	rect := models.Rect{X: Snap(x), Y: Snap(y), Width: settings.Width, Height: settings.Height}
	if errs := CheckBounds(rect, garden); len(errs) > 0 {
		plan.Result = reject(ReasonBedOutOfBounds, errs...)
		return plan
	}

	plan.Rect = rect
	plan.Color = settings.Material.Color()
	plan.Result = accept()
	return plan
}

// PlanPlant validates a plant of the given type placed with its top-left corner at
// (x, y). The bed is looked up by the footprint centre; once found, the whole
// footprint must fit inside that bed. Other beds are not searched.
func (p *Validator) PlanPlant(garden models.Garden, plantType models.PlantType, beds []models.RaisedBed, x, y float64) PlantPlan {
	plan := PlantPlan{
		Name:    plantType.Name,
		Variety: plantType.Name,
		Color:   plantType.Color,
	}

	if errs := checkCoordinates(x, y); len(errs) > 0 {
		plan.Result = reject(ReasonInvalidPlacement, errs...)
		return plan
	}

	side := Footprint(plantType.Spacing)
	rect := models.Rect{X: Snap(x), Y: Snap(y), Width: side, Height: side}
	if errs := CheckBounds(rect, garden); len(errs) > 0 {
		plan.Result = reject(ReasonPlantOutOfBounds, errs...)
		return plan
	}

	cx, cy := rect.Center()
	if bed := FindBedAtPoint(beds, cx, cy); bed != nil {
		if !bed.Rect.Encloses(rect) {
			plan.Result = reject(ReasonPlantDoesNotFitInBed, apperrors.ValidationError{
				Field:   "raised_bed_id",
				Message: fmt.Sprintf("plant does not fit entirely within bed %q", bed.Name),
			})
			return plan
		}
		id := bed.ID
		plan.RaisedBedID = &id
	}

	plan.Rect = rect
	plan.Result = accept()
	return plan
}

// Drag returns the snapped top-left corner for a plant dragged to (x, y), clamped
// so the plant stays inside the garden. Bed membership is not re-evaluated.
func Drag(garden models.Garden, plant models.Rect, x, y float64) (float64, float64) {
	return snapWithin(x, garden.Width-plant.Width), snapWithin(y, garden.Height-plant.Height)
}

// snapWithin clamps v to [0, limit] and snaps it, stepping back one grid cell when
// rounding up would cross limit.
func snapWithin(v, limit float64) float64 {
	limit = math.Max(0, limit)
	s := Snap(math.Max(0, math.Min(limit, v)))
	if s > limit {
		s = math.Max(0, s-1.0/gridDivisions)
	}
	return s
}
