// Package optimistic tracks client-initiated placements that have been accepted
// for processing but not yet persisted. Entries are keyed by a correlation id the
// client generates, so a pending record can be found before its row id exists.
package optimistic

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	apperrors "garden-planner-backend/internal/errors"

	"github.com/google/uuid"
)

// State of an overlay entry
type State string

const (
	StatePending   State = "pending"
	StateConfirmed State = "confirmed"
	StateFailed    State = "failed"
)

// ErrInvalidTransition is returned when an entry is moved out of a terminal state
var ErrInvalidTransition = errors.New("invalid placement state transition")

var correlationIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// ValidateCorrelationID checks that id is usable as an overlay key
func ValidateCorrelationID(id string) error {
	if !correlationIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidCorrelation, id)
	}
	return nil
}

// Entry is a snapshot of one tracked placement
type Entry[T any] struct {
	CorrelationID string
	State         State
	Value         T
	RecordID      uuid.UUID
	Reason        string
	Details       []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Overlay is a mutex guarded set of entries. Confirmed and failed entries are
// dropped once they are older than the retention period.
type Overlay[T any] struct {
	mu        sync.Mutex
	entries   map[string]*Entry[T]
	retention time.Duration
	now       func() time.Time
	onPending func(int)
}

// Option configures an Overlay
type Option func(*options)

type options struct {
	now       func() time.Time
	onPending func(int)
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithPendingObserver registers a callback invoked with the pending count after
// every change.
func WithPendingObserver(fn func(int)) Option {
	return func(o *options) { o.onPending = fn }
}

// New creates an overlay that keeps terminal entries for retention
func New[T any](retention time.Duration, opts ...Option) *Overlay[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Overlay[T]{
		entries:   make(map[string]*Entry[T]),
		retention: retention,
		now:       o.now,
		onPending: o.onPending,
	}
}

// Stage records a new pending entry. A correlation id can only be staged once
// while its previous entry is retained.
func (ov *Overlay[T]) Stage(correlationID string, value T) error {
	if err := ValidateCorrelationID(correlationID); err != nil {
		return err
	}

	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.pruneLocked()

	if _, exists := ov.entries[correlationID]; exists {
		return apperrors.ErrDuplicateCorrelated
	}
	now := ov.now()
	ov.entries[correlationID] = &Entry[T]{
		CorrelationID: correlationID,
		State:         StatePending,
		Value:         value,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	ov.notifyLocked()
	return nil
}

// Confirm moves a pending entry to confirmed with the id of the persisted record
func (ov *Overlay[T]) Confirm(correlationID string, recordID uuid.UUID, value T) error {
	return ov.transition(correlationID, func(e *Entry[T]) {
		e.State = StateConfirmed
		e.RecordID = recordID
		e.Value = value
	})
}

// Fail moves a pending entry to failed, keeping the rejection for the client
func (ov *Overlay[T]) Fail(correlationID, reason string, details []string) error {
	return ov.transition(correlationID, func(e *Entry[T]) {
		e.State = StateFailed
		e.Reason = reason
		e.Details = details
	})
}

func (ov *Overlay[T]) transition(correlationID string, apply func(*Entry[T])) error {
	ov.mu.Lock()
	defer ov.mu.Unlock()

	e, ok := ov.entries[correlationID]
	if !ok {
		return apperrors.ErrPlacementNotFound
	}
	if e.State != StatePending {
		return fmt.Errorf("%w: %s is already %s", ErrInvalidTransition, correlationID, e.State)
	}
	apply(e)
	e.UpdatedAt = ov.now()
	ov.notifyLocked()
	return nil
}

// Get returns a copy of the entry for correlationID
func (ov *Overlay[T]) Get(correlationID string) (Entry[T], bool) {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.pruneLocked()

	e, ok := ov.entries[correlationID]
	if !ok {
		return Entry[T]{}, false
	}
	return *e, true
}

// Pending returns the pending entries whose value satisfies match, oldest first.
// A nil match selects every pending entry.
func (ov *Overlay[T]) Pending(match func(T) bool) []Entry[T] {
	ov.mu.Lock()
	defer ov.mu.Unlock()

	var out []Entry[T]
	for _, e := range ov.entries {
		if e.State != StatePending {
			continue
		}
		if match != nil && !match(e.Value) {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CorrelationID < out[j].CorrelationID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Prune drops terminal entries older than the retention period and reports how
// many were removed.
func (ov *Overlay[T]) Prune() int {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	return ov.pruneLocked()
}

func (ov *Overlay[T]) pruneLocked() int {
	cutoff := ov.now().Add(-ov.retention)
	removed := 0
	for id, e := range ov.entries {
		if e.State != StatePending && e.UpdatedAt.Before(cutoff) {
			delete(ov.entries, id)
			removed++
		}
	}
	return removed
}

func (ov *Overlay[T]) notifyLocked() {
	if ov.onPending == nil {
		return
	}
	n := 0
	for _, e := range ov.entries {
		if e.State == StatePending {
			n++
		}
	}
	ov.onPending(n)
}
