package store

import (
	"strconv"
	"time"

	"fleetdesk/internal/domain/entity"
)

// tagParentReminderID is the tag blob key marking a record as a generated
// occurrence of a recurring reminder.
const tagParentReminderID = "parentReminderId"

type userModel struct {
	ID          int64  `json:"id,omitempty"`
	ExternalID  string `json:"external_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

func (m *userModel) toEntity() entity.UserRef {
	return entity.UserRef{
		ID:          m.ID,
		ExternalID:  m.ExternalID,
		DisplayName: m.DisplayName,
		Email:       m.Email,
		Avatar:      m.Avatar,
	}
}

func userToModel(u entity.UserRef) userModel {
	return userModel{
		ID:          u.ID,
		ExternalID:  u.ExternalID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Avatar:      u.Avatar,
	}
}

type reminderModel struct {
	ID                int64          `json:"id,omitempty"`
	ExternalID        string         `json:"external_id,omitempty"`
	Title             string         `json:"title"`
	Description       string         `json:"description,omitempty"`
	ScheduleKind      string         `json:"schedule_kind"`
	ScheduledAt       time.Time      `json:"scheduled_at"`
	RecurrencePattern string         `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate *time.Time     `json:"recurrence_end_date,omitempty"`
	NextTrigger       *time.Time     `json:"next_trigger,omitempty"`
	IsActive          bool           `json:"is_active"`
	IsCompleted       bool           `json:"is_completed"`
	AssignedUsers     []userModel    `json:"assigned_users"`
	Tags              map[string]any `json:"tags,omitempty"`
	Module            string         `json:"module,omitempty"`
	RelatedEntityID   string         `json:"related_entity_id,omitempty"`
	AuthorID          string         `json:"author_id,omitempty"`
	CreatedAt         time.Time      `json:"created_at,omitempty"`
	UpdatedAt         time.Time      `json:"updated_at,omitempty"`
}

// toEntity converts the wire record, lifting parentReminderId out of the
// free-form tag blob into the typed field. The rest of the blob is carried
// along untouched so full-replace updates round-trip it.
func (m *reminderModel) toEntity() *entity.Reminder {
	r := &entity.Reminder{
		InternalID:        m.ID,
		ExternalID:        m.ExternalID,
		Title:             m.Title,
		Description:       m.Description,
		ScheduleKind:      entity.ScheduleKind(m.ScheduleKind),
		ScheduledAt:       m.ScheduledAt,
		RecurrencePattern: entity.RecurrencePattern(m.RecurrencePattern),
		RecurrenceEndDate: m.RecurrenceEndDate,
		NextTrigger:       m.NextTrigger,
		IsActive:          m.IsActive,
		IsCompleted:       m.IsCompleted,
		Module:            m.Module,
		RelatedEntityID:   m.RelatedEntityID,
		AuthorID:          m.AuthorID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}

	r.AssignedUsers = make([]entity.UserRef, 0, len(m.AssignedUsers))
	for _, u := range m.AssignedUsers {
		r.AssignedUsers = append(r.AssignedUsers, u.toEntity())
	}

	if len(m.Tags) > 0 {
		tags := make(map[string]any, len(m.Tags))
		for k, v := range m.Tags {
			if k == tagParentReminderID {
				if id, ok := coerceID(v); ok {
					r.ParentReminderID = &id
				}

				continue
			}
			tags[k] = v
		}
		if len(tags) > 0 {
			r.Tags = tags
		}
	}

	return r
}

// reminderToModel converts back to the wire shape, folding the typed parent
// reference back into the tag blob.
func reminderToModel(r *entity.Reminder) *reminderModel {
	m := &reminderModel{
		ID:                r.InternalID,
		ExternalID:        r.ExternalID,
		Title:             r.Title,
		Description:       r.Description,
		ScheduleKind:      string(r.ScheduleKind),
		ScheduledAt:       r.ScheduledAt,
		RecurrencePattern: string(r.RecurrencePattern),
		RecurrenceEndDate: r.RecurrenceEndDate,
		NextTrigger:       r.NextTrigger,
		IsActive:          r.IsActive,
		IsCompleted:       r.IsCompleted,
		Module:            r.Module,
		RelatedEntityID:   r.RelatedEntityID,
		AuthorID:          r.AuthorID,
	}

	m.AssignedUsers = make([]userModel, 0, len(r.AssignedUsers))
	for _, u := range r.AssignedUsers {
		m.AssignedUsers = append(m.AssignedUsers, userToModel(u))
	}

	if r.ParentReminderID != nil || len(r.Tags) > 0 {
		tags := make(map[string]any, len(r.Tags)+1)
		for k, v := range r.Tags {
			tags[k] = v
		}
		if r.ParentReminderID != nil {
			tags[tagParentReminderID] = *r.ParentReminderID
		}
		m.Tags = tags
	}

	return m
}

// coerceID normalizes the untyped tag value to a numeric id. The blob has
// historically carried both numbers and numeric strings.
func coerceID(v any) (int64, bool) {
	switch val := v.(type) {
	case float64:
		return int64(val), true
	case int64:
		return val, true
	case int:
		return int64(val), true
	case string:
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, false
		}

		return id, true
	default:
		return 0, false
	}
}

type vehicleModel struct {
	ID                  int64       `json:"id"`
	ExternalID          string      `json:"external_id,omitempty"`
	Label               string      `json:"label,omitempty"`
	Responsables        []userModel `json:"responsables"`
	AssignedDrivers     []userModel `json:"assigned_drivers"`
	NextMaintenanceDate *time.Time  `json:"next_maintenance_date,omitempty"`
}

func (m *vehicleModel) toEntity() *entity.Vehicle {
	v := &entity.Vehicle{
		InternalID:          m.ID,
		ExternalID:          m.ExternalID,
		Label:               m.Label,
		NextMaintenanceDate: m.NextMaintenanceDate,
	}

	v.ResponsibleUsers = make([]entity.UserRef, 0, len(m.Responsables))
	for _, u := range m.Responsables {
		v.ResponsibleUsers = append(v.ResponsibleUsers, u.toEntity())
	}
	v.AssignedDrivers = make([]entity.UserRef, 0, len(m.AssignedDrivers))
	for _, u := range m.AssignedDrivers {
		v.AssignedDrivers = append(v.AssignedDrivers, u.toEntity())
	}

	return v
}
