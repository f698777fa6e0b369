// Package repository defines the contracts against the remote content store.
// The store's query capabilities are inconsistent across deployments: some
// expose the opaque external identifier as a filterable field, some only
// support point lookups, and some support neither, which is why the contract
// keeps point lookup, filtered query and paginated scan as separate
// operations instead of one "find".
package repository

import (
	"context"
	"errors"
	"time"

	"fleetdesk/internal/domain/entity"
)

var (
	// ErrRecordNotFound is returned when a record does not exist. It is the
	// only error a resolution strategy may treat as "try the next strategy";
	// transport and backend failures propagate as resolution failures.
	ErrRecordNotFound = errors.New("record not found")

	// ErrQueryNotSupported is returned when the deployment does not expose
	// the queried field as filterable/indexed.
	ErrQueryNotSupported = errors.New("query not supported by this store deployment")
)

// ReminderRepository defines the record-store operations for reminders.
type ReminderRepository interface {
	// FindByInternalID performs a point lookup by the numeric store id.
	FindByInternalID(ctx context.Context, id int64) (*entity.Reminder, error)

	// FindByExternalID performs a point lookup by the opaque stable id.
	// Returns ErrQueryNotSupported when the deployment cannot address
	// records by external id directly.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Reminder, error)

	// QueryByExternalID performs an equality-filtered list query against the
	// external id field. Returns ErrQueryNotSupported when the field is not
	// filterable.
	QueryByExternalID(ctx context.Context, externalID string) (*entity.Reminder, error)

	// QueryByEitherID performs a best-effort disjunctive query matching
	// either identifier kind, used for parent resolution.
	QueryByEitherID(ctx context.Context, ref string) (*entity.Reminder, error)

	// ListPage returns one page of the full collection for the bounded scan
	// fallback. Page numbering starts at 1; an empty slice means the
	// collection is exhausted.
	ListPage(ctx context.Context, page, pageSize int) ([]*entity.Reminder, error)

	// ListByVehicle returns the reminders related to a vehicle reference.
	ListByVehicle(ctx context.Context, vehicleRef string) ([]*entity.Reminder, error)

	// ListDue returns active, uncompleted reminders whose next applicable
	// trigger is at or before the given instant.
	ListDue(ctx context.Context, before time.Time) ([]*entity.Reminder, error)

	// Create persists a new reminder and returns the stored record with its
	// store-assigned identifiers.
	Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error)

	// Update performs a full replace of the record addressed by internal id.
	Update(ctx context.Context, id int64, reminder *entity.Reminder) (*entity.Reminder, error)

	// Delete removes the record addressed by internal id.
	Delete(ctx context.Context, id int64) error
}
