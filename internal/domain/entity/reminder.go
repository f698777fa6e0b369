// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"time"
)

// ScheduleKind distinguishes one-shot reminders from recurring ones.
type ScheduleKind string

const (
	// ScheduleUnique marks a reminder with a single occurrence.
	ScheduleUnique ScheduleKind = "unique"
	// ScheduleRecurring marks a reminder that repeats on a pattern.
	ScheduleRecurring ScheduleKind = "recurring"
)

// RecurrencePattern is the repetition step of a recurring reminder.
type RecurrencePattern string

const (
	RecurDaily    RecurrencePattern = "daily"
	RecurWeekly   RecurrencePattern = "weekly"
	RecurBiweekly RecurrencePattern = "biweekly"
	RecurMonthly  RecurrencePattern = "monthly"
	RecurYearly   RecurrencePattern = "yearly"
)

// Valid reports whether the pattern is one of the supported steps.
func (p RecurrencePattern) Valid() bool {
	switch p {
	case RecurDaily, RecurWeekly, RecurBiweekly, RecurMonthly, RecurYearly:
		return true
	default:
		return false
	}
}

// Reminder is the canonical notification/reminder record held by the remote
// content store. The store assigns both identifiers: InternalID is numeric and
// can be reassigned by certain store operations, ExternalID is opaque and
// stable, so ExternalID is preferred for cross-request references.
type Reminder struct {
	InternalID  int64  `json:"internal_id"`
	ExternalID  string `json:"external_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	ScheduleKind      ScheduleKind      `json:"schedule_kind"`
	ScheduledAt       time.Time         `json:"scheduled_at"`
	RecurrencePattern RecurrencePattern `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate *time.Time        `json:"recurrence_end_date,omitempty"`
	NextTrigger       *time.Time        `json:"next_trigger,omitempty"`

	IsActive    bool `json:"is_active"`
	IsCompleted bool `json:"is_completed"`

	AssignedUsers []UserRef `json:"assigned_users"`

	// ParentReminderID links a generated occurrence back to the recurring
	// reminder that spawned it. A record with this set is never itself the
	// target of a mutation; operations are redirected to the parent. The
	// store keeps this inside the free-form tag blob; the store adapter
	// parses it out into this typed field at the boundary.
	ParentReminderID *int64 `json:"parent_reminder_id,omitempty"`

	// Tags is the remainder of the store's free-form tag blob, preserved
	// opaquely so full-replace updates do not drop it.
	Tags map[string]any `json:"tags,omitempty"`

	Module          string `json:"module,omitempty"`
	RelatedEntityID string `json:"related_entity_id,omitempty"`
	AuthorID        string `json:"author_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOccurrence reports whether the record is a generated occurrence of a
// recurring reminder rather than an independent reminder.
func (r *Reminder) IsOccurrence() bool {
	return r.ParentReminderID != nil
}

// PreferredIdentifier returns the identifier to hand out for cross-request
// references: the opaque ExternalID when the store assigned one, otherwise
// the numeric InternalID.
func (r *Reminder) PreferredIdentifier() string {
	if r.ExternalID != "" {
		return r.ExternalID
	}

	return strconv.FormatInt(r.InternalID, 10)
}

// MatchesIdentifier reports whether ref identifies this record by either
// identifier kind.
func (r *Reminder) MatchesIdentifier(ref string) bool {
	if ref == "" {
		return false
	}
	if r.ExternalID != "" && r.ExternalID == ref {
		return true
	}

	return strconv.FormatInt(r.InternalID, 10) == ref
}

// AssignedUserIDs returns the numeric ids of the assigned users, skipping
// entries that only carry an opaque identifier.
func (r *Reminder) AssignedUserIDs() []int64 {
	ids := make([]int64, 0, len(r.AssignedUsers))
	for _, u := range r.AssignedUsers {
		if u.ID != 0 {
			ids = append(ids, u.ID)
		}
	}

	return ids
}
