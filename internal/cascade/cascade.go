// Package cascade keeps parent/child references consistent after deletes.
//
// A Registry maps a collection to the rules that fire after a record of that
// collection is deleted. The registry is built once at start-up and handed to the
// services that perform deletes; there is no package-level instance.
package cascade

import (
	"context"
	"fmt"
	"sync"

	"garden-planner-backend/internal/logger"

	"github.com/google/uuid"
)

// Collection names
const (
	CollectionGardens    = "gardens"
	CollectionRaisedBeds = "raised_beds"
	CollectionPlants     = "plants"
)

// Operation is the kind of mutation that triggered a rule
type Operation string

const (
	OperationDelete Operation = "delete"
)

// Change describes one completed mutation of a parent record
type Change struct {
	Collection string
	Operation  Operation
	ID         uuid.UUID
}

// Rule reacts to a change of a parent record by updating its children.
type Rule interface {
	Name() string
	Apply(ctx context.Context, change Change) error
}

// Error reports a rule that stopped part way. Child operations completed before
// the failure are not undone.
type Error struct {
	Rule       string
	Collection string
	ID         uuid.UUID
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cascade %s on %s %s failed: %v", e.Rule, e.Collection, e.ID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Registry holds the rules registered per collection
type Registry struct {
	mu    sync.RWMutex
	rules map[string][]Rule
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string][]Rule)}
}

// Register appends a rule for collection. Rules fire in registration order.
func (r *Registry) Register(collection string, rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[collection] = append(r.rules[collection], rule)
}

// Rules returns the rules registered for collection
func (r *Registry) Rules(collection string) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Rule, len(r.rules[collection]))
	copy(out, r.rules[collection])
	return out
}

// Fire runs every rule registered for change.Collection. The first failing rule
// stops the chain.
func (r *Registry) Fire(ctx context.Context, change Change) error {
	for _, rule := range r.Rules(change.Collection) {
		if err := rule.Apply(ctx, change); err != nil {
			return err
		}
	}
	return nil
}

// Delete performs the primary delete through deleteFn and then fires the rules
// registered for collection. If deleteFn fails no rule runs.
// The primary delete commits before the rules run, so readers can briefly see
// a deleted garden's children, and a failed rule leaves them in place until
// MaintenanceService.CleanupAll repairs them.
func (r *Registry) Delete(ctx context.Context, collection string, id uuid.UUID, deleteFn func(uuid.UUID) error) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"collection": collection,
		"id":         id.String(),
	})

	if err := deleteFn(id); err != nil {
		return err
	}

	change := Change{Collection: collection, Operation: OperationDelete, ID: id}
	if err := r.Fire(ctx, change); err != nil {
		log.Errorf("cascade failed after delete: %v", err)
		return err
	}

	log.Debug("delete completed with cascade")
	return nil
}
