package store

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/domain/repository"
)

const remindersPath = "/api/items/reminders"

type reminderStore struct {
	client *Client
}

// NewReminderRepository creates the store-backed reminder repository.
func NewReminderRepository(client *Client) repository.ReminderRepository {
	return &reminderStore{client: client}
}

func (s *reminderStore) FindByInternalID(ctx context.Context, id int64) (*entity.Reminder, error) {
	var m reminderModel
	if err := s.client.get(ctx, remindersPath+"/"+strconv.FormatInt(id, 10), nil, &m); err != nil {
		return nil, err
	}

	return m.toEntity(), nil
}

func (s *reminderStore) FindByExternalID(ctx context.Context, externalID string) (*entity.Reminder, error) {
	var m reminderModel
	err := s.client.get(ctx, remindersPath+"/ext/"+url.PathEscape(externalID), nil, &m)
	if err != nil {
		// Deployments without the external-id route answer with a rejected
		// request rather than a per-record 404.
		if isRejectedQuery(err) {
			return nil, errors.Wrap(repository.ErrQueryNotSupported, "external id point lookup")
		}

		return nil, err
	}

	return m.toEntity(), nil
}

func (s *reminderStore) QueryByExternalID(ctx context.Context, externalID string) (*entity.Reminder, error) {
	query := url.Values{}
	query.Set("external_id", externalID)
	query.Set("limit", "1")

	return s.queryOne(ctx, query, "external id filter")
}

func (s *reminderStore) QueryByEitherID(ctx context.Context, ref string) (*entity.Reminder, error) {
	query := url.Values{}
	query.Set("ref", ref)
	query.Set("limit", "1")

	return s.queryOne(ctx, query, "disjunctive id filter")
}

func (s *reminderStore) queryOne(ctx context.Context, query url.Values, opName string) (*entity.Reminder, error) {
	var ms []reminderModel
	if err := s.client.get(ctx, remindersPath, query, &ms); err != nil {
		if isRejectedQuery(err) {
			return nil, errors.Wrap(repository.ErrQueryNotSupported, opName)
		}

		return nil, err
	}
	if len(ms) == 0 {
		return nil, errors.Wrap(repository.ErrRecordNotFound, opName)
	}

	return ms[0].toEntity(), nil
}

func (s *reminderStore) ListPage(ctx context.Context, page, pageSize int) ([]*entity.Reminder, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(pageSize))

	var ms []reminderModel
	if err := s.client.get(ctx, remindersPath, query, &ms); err != nil {
		return nil, err
	}

	return toEntities(ms), nil
}

func (s *reminderStore) ListByVehicle(ctx context.Context, vehicleRef string) ([]*entity.Reminder, error) {
	query := url.Values{}
	query.Set("module", "fleet")
	query.Set("related_entity_id", vehicleRef)

	var ms []reminderModel
	if err := s.client.get(ctx, remindersPath, query, &ms); err != nil {
		return nil, err
	}

	return toEntities(ms), nil
}

func (s *reminderStore) ListDue(ctx context.Context, before time.Time) ([]*entity.Reminder, error) {
	query := url.Values{}
	query.Set("due_before", before.UTC().Format(time.RFC3339))
	query.Set("is_active", "true")
	query.Set("is_completed", "false")

	var ms []reminderModel
	if err := s.client.get(ctx, remindersPath, query, &ms); err != nil {
		return nil, err
	}

	return toEntities(ms), nil
}

func (s *reminderStore) Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	var m reminderModel
	if err := s.client.post(ctx, remindersPath, reminderToModel(reminder), &m); err != nil {
		return nil, err
	}

	return m.toEntity(), nil
}

func (s *reminderStore) Update(ctx context.Context, id int64, reminder *entity.Reminder) (*entity.Reminder, error) {
	var m reminderModel
	if err := s.client.put(ctx, remindersPath+"/"+strconv.FormatInt(id, 10), reminderToModel(reminder), &m); err != nil {
		return nil, err
	}

	return m.toEntity(), nil
}

func (s *reminderStore) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, remindersPath+"/"+strconv.FormatInt(id, 10))
}

func toEntities(ms []reminderModel) []*entity.Reminder {
	out := make([]*entity.Reminder, 0, len(ms))
	for i := range ms {
		out = append(out, ms[i].toEntity())
	}

	return out
}
