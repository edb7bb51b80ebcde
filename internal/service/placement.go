package service

import (
	"context"
	"time"

	"garden-planner-backend/internal/database/models"
	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/logger"
	"garden-planner-backend/internal/metrics"
	"garden-planner-backend/internal/optimistic"

	"github.com/google/uuid"
)

// Placement kinds tracked by the overlay
const (
	PlacementKindRaisedBed = "raised_bed"
	PlacementKindPlant     = "plant"
)

// PendingPlacement is what the overlay remembers about a placement in flight
type PendingPlacement struct {
	Kind     string      `json:"kind"`
	GardenID uuid.UUID   `json:"garden_id"`
	Name     string      `json:"name"`
	Rect     models.Rect `json:"rect"`
}

// PlacementOverlay tracks placements by client correlation id
type PlacementOverlay = optimistic.Overlay[PendingPlacement]

// NewPlacementOverlay creates the overlay shared by the bed and plant services
func NewPlacementOverlay(retention time.Duration, m *metrics.Metrics) *PlacementOverlay {
	return optimistic.New[PendingPlacement](retention, optimistic.WithPendingObserver(m.SetPending))
}

// PendingPlacementResponse represents a placement that has not been persisted yet
type PendingPlacementResponse struct {
	CorrelationID string    `json:"correlation_id"`
	Kind          string    `json:"kind"`
	GardenID      uuid.UUID `json:"garden_id"`
	Name          string    `json:"name"`
	X             float64   `json:"x"`
	Y             float64   `json:"y"`
	Width         float64   `json:"width"`
	Height        float64   `json:"height"`
	CreatedAt     time.Time `json:"created_at"`
}

// PlacementStatusResponse represents the state of one optimistic placement
type PlacementStatusResponse struct {
	CorrelationID string           `json:"correlation_id"`
	State         optimistic.State `json:"state"`
	Kind          string           `json:"kind"`
	GardenID      uuid.UUID        `json:"garden_id"`
	RecordID      *uuid.UUID       `json:"record_id,omitempty"`
	Error         string           `json:"error,omitempty"`
	Details       []string         `json:"details,omitempty"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// PlacementService answers placement status queries
type PlacementService struct {
	overlay *PlacementOverlay
}

// NewPlacementService creates a new placement service
func NewPlacementService(overlay *PlacementOverlay) *PlacementService {
	return &PlacementService{overlay: overlay}
}

// GetStatus returns the state of the placement staged under correlationID
func (s *PlacementService) GetStatus(ctx context.Context, correlationID string) (*PlacementStatusResponse, error) {
	if err := optimistic.ValidateCorrelationID(correlationID); err != nil {
		return nil, err
	}
	entry, ok := s.overlay.Get(correlationID)
	if !ok {
		return nil, apperrors.ErrPlacementNotFound
	}

	resp := &PlacementStatusResponse{
		CorrelationID: entry.CorrelationID,
		State:         entry.State,
		Kind:          entry.Value.Kind,
		GardenID:      entry.Value.GardenID,
		Error:         entry.Reason,
		Details:       entry.Details,
		UpdatedAt:     entry.UpdatedAt,
	}
	if entry.State == optimistic.StateConfirmed {
		id := entry.RecordID
		resp.RecordID = &id
	}
	return resp, nil
}

func toPendingResponse(e optimistic.Entry[PendingPlacement]) PendingPlacementResponse {
	return PendingPlacementResponse{
		CorrelationID: e.CorrelationID,
		Kind:          e.Value.Kind,
		GardenID:      e.Value.GardenID,
		Name:          e.Value.Name,
		X:             e.Value.Rect.X,
		Y:             e.Value.Rect.Y,
		Width:         e.Value.Rect.Width,
		Height:        e.Value.Rect.Height,
		CreatedAt:     e.CreatedAt,
	}
}

// tracker wraps the overlay calls made around one placement. A blank
// correlation id disables tracking.
type tracker struct {
	overlay       *PlacementOverlay
	correlationID string
	pending       PendingPlacement
}

func (t *tracker) enabled() bool {
	return t.overlay != nil && t.correlationID != ""
}

func (t *tracker) stage() error {
	if !t.enabled() {
		return nil
	}
	return t.overlay.Stage(t.correlationID, t.pending)
}

func (t *tracker) confirm(ctx context.Context, recordID uuid.UUID) {
	if !t.enabled() {
		return
	}
	if err := t.overlay.Confirm(t.correlationID, recordID, t.pending); err != nil {
		logger.WithContext(ctx).WithField("correlation_id", t.correlationID).Warnf("failed to confirm placement: %v", err)
	}
}

func (t *tracker) fail(ctx context.Context, err error) {
	if !t.enabled() {
		return
	}
	reason := err.Error()
	var details []string
	if verrs, ok := apperrors.AsValidationErrors(err); ok {
		reason = verrs.Reason
		details = verrs.Messages()
	}
	if ferr := t.overlay.Fail(t.correlationID, reason, details); ferr != nil {
		logger.WithContext(ctx).WithField("correlation_id", t.correlationID).Warnf("failed to record placement failure: %v", ferr)
	}
}
