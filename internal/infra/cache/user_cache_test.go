package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetdesk/config"
	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/domain/repository"
	mockrepo "fleetdesk/internal/mocks/repository"
)

func newLocalCache(t *testing.T, inner repository.UserRepository, ttl time.Duration) repository.UserRepository {
	t.Helper()

	cfg := &config.Config{}
	cfg.Directory.CacheTTL = ttl

	return NewCachedUserRepository(inner, nil, cfg, slog.Default())
}

func TestListDirectory_CachesLocally(t *testing.T) {
	directory := []entity.UserRef{
		{ID: 1, ExternalID: "usr_1", DisplayName: "Ana"},
		{ID: 2, ExternalID: "usr_2", DisplayName: "Bo"},
	}

	inner := mockrepo.NewMockUserRepository(t)
	inner.EXPECT().ListDirectory(mock.Anything).Return(directory, nil).Once()

	repo := newLocalCache(t, inner, time.Minute)

	first, err := repo.ListDirectory(context.Background())
	require.NoError(t, err)

	second, err := repo.ListDirectory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, directory, first)
	assert.Equal(t, directory, second)
}

func TestListDirectory_ExpiredEntryRefetches(t *testing.T) {
	inner := mockrepo.NewMockUserRepository(t)
	inner.EXPECT().ListDirectory(mock.Anything).
		Return([]entity.UserRef{{ID: 1, ExternalID: "usr_1"}}, nil).Twice()

	repo := newLocalCache(t, inner, -time.Second)

	_, err := repo.ListDirectory(context.Background())
	require.NoError(t, err)

	_, err = repo.ListDirectory(context.Background())
	require.NoError(t, err)
}

func TestFindByExternalID_ServedFromCache(t *testing.T) {
	inner := mockrepo.NewMockUserRepository(t)
	inner.EXPECT().ListDirectory(mock.Anything).
		Return([]entity.UserRef{{ID: 7, ExternalID: "usr_7", DisplayName: "Gil"}}, nil).Once()

	repo := newLocalCache(t, inner, time.Minute)

	_, err := repo.ListDirectory(context.Background())
	require.NoError(t, err)

	user, err := repo.FindByExternalID(context.Background(), "usr_7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestFindByExternalID_CacheMissFallsThrough(t *testing.T) {
	inner := mockrepo.NewMockUserRepository(t)
	inner.EXPECT().ListDirectory(mock.Anything).
		Return([]entity.UserRef{{ID: 7, ExternalID: "usr_7"}}, nil).Once()
	inner.EXPECT().FindByExternalID(mock.Anything, "usr_new").
		Return(&entity.UserRef{ID: 8, ExternalID: "usr_new"}, nil).Once()

	repo := newLocalCache(t, inner, time.Minute)

	_, err := repo.ListDirectory(context.Background())
	require.NoError(t, err)

	user, err := repo.FindByExternalID(context.Background(), "usr_new")
	require.NoError(t, err)
	assert.Equal(t, int64(8), user.ID)
}
