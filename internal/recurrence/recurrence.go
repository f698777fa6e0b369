// Package recurrence computes the next applicable trigger for reminders.
//
// The content store maintains a next_trigger field of its own for recurring
// reminders; this package treats that value as authoritative while it is
// still in the future and only steps the recurrence pattern itself when the
// stored value is absent or stale. For unique reminders the trigger is simply
// the scheduled timestamp.
package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"

	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/errors"
)

// ruleFor builds an RFC 5545 rule for the given pattern starting at start and
// optionally bounded by until.
func ruleFor(pattern entity.RecurrencePattern, start time.Time, until *time.Time) (*rrule.RRule, error) {
	opt := rrule.ROption{Dtstart: start, Interval: 1}

	switch pattern {
	case entity.RecurDaily:
		opt.Freq = rrule.DAILY
	case entity.RecurWeekly:
		opt.Freq = rrule.WEEKLY
	case entity.RecurBiweekly:
		opt.Freq = rrule.WEEKLY
		opt.Interval = 2
	case entity.RecurMonthly:
		opt.Freq = rrule.MONTHLY
	case entity.RecurYearly:
		opt.Freq = rrule.YEARLY
	default:
		return nil, errors.Errorf("unknown recurrence pattern: %q", pattern)
	}

	if until != nil {
		opt.Until = *until
	}

	return rrule.NewRRule(opt)
}

// NextAfter returns the first occurrence of the pattern after the given
// instant; with inclusive set, an occurrence falling exactly on the instant
// counts. Selecting the currently-due trigger wants inclusive; stepping past
// a dispatched occurrence must not, or an on-the-instant occurrence would
// never advance. Returns nil when the recurrence is exhausted (bounded by its
// end date) and an error for an unknown pattern.
func NextAfter(pattern entity.RecurrencePattern, start time.Time, until *time.Time, after time.Time, inclusive bool) (*time.Time, error) {
	rule, err := ruleFor(pattern, start, until)
	if err != nil {
		return nil, err
	}

	next := rule.After(after, inclusive)
	if next.IsZero() {
		return nil, nil
	}

	return &next, nil
}

// NextTriggerFor selects the "next due" value propagated to dependent
// consumers such as the vehicle's maintenance date.
//
// For a unique reminder this is the scheduled timestamp. For a recurring
// reminder the store-maintained next trigger wins while it is still at or
// after now; otherwise the pattern is stepped from the first occurrence.
// Returns nil when no applicable trigger remains.
func NextTriggerFor(r *entity.Reminder, now time.Time) *time.Time {
	if r.ScheduleKind != entity.ScheduleRecurring {
		at := r.ScheduledAt

		return &at
	}

	if r.NextTrigger != nil && !r.NextTrigger.Before(now) {
		at := *r.NextTrigger

		return &at
	}

	next, err := NextAfter(r.RecurrencePattern, r.ScheduledAt, r.RecurrenceEndDate, now, true)
	if err != nil {
		return nil
	}

	return next
}
