package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
)

type fakeRefresher struct {
	emails []string
}

func (f *fakeRefresher) RefreshScore(_ context.Context, email string) error {
	f.emails = append(f.emails, email)
	return nil
}

// deleteCall records the exact pair a service handed to its store.
type deleteCall struct {
	id    int64
	email string
}

type fakeSkillStore struct {
	created   []*models.Skill
	deletes   []deleteCall
	deleteErr error
}

func (f *fakeSkillStore) Create(_ context.Context, skill *models.Skill) error {
	skill.ID = int64(len(f.created) + 1)
	f.created = append(f.created, skill)
	return nil
}

func (f *fakeSkillStore) DeleteOwned(_ context.Context, id int64, studentEmail string) error {
	f.deletes = append(f.deletes, deleteCall{id: id, email: studentEmail})
	return f.deleteErr
}

type fakeAchievementStore struct {
	deletes []deleteCall
}

func (f *fakeAchievementStore) Create(_ context.Context, a *models.Achievement) error {
	a.ID = 1
	return nil
}

func (f *fakeAchievementStore) DeleteOwned(_ context.Context, id int64, studentEmail string) error {
	f.deletes = append(f.deletes, deleteCall{id: id, email: studentEmail})
	return nil
}

type fakeCertificationStore struct {
	deletes []deleteCall
}

func (f *fakeCertificationStore) Create(_ context.Context, c *models.Certification) error {
	c.ID = 1
	return nil
}

func (f *fakeCertificationStore) DeleteOwned(_ context.Context, id int64, studentEmail string) error {
	f.deletes = append(f.deletes, deleteCall{id: id, email: studentEmail})
	return nil
}

func TestSkillService_Add(t *testing.T) {
	t.Run("clamps levels and refreshes the owner's score", func(t *testing.T) {
		store := &fakeSkillStore{}
		refresher := &fakeRefresher{}
		svc := NewSkillService(store, refresher, zerolog.Nop())

		skill, err := svc.Add(context.Background(), "arun.student@gmail.com", &dto.AddSkillRequest{
			SkillName:       "  Go  ",
			LevelsCompleted: "14",
		})
		require.NoError(t, err)
		assert.Equal(t, "Go", skill.SkillName)
		assert.Equal(t, 10, skill.LevelsCompleted)
		assert.Equal(t, []string{"arun.student@gmail.com"}, refresher.emails)
	})

	t.Run("blank name never reaches the store", func(t *testing.T) {
		store := &fakeSkillStore{}
		refresher := &fakeRefresher{}
		svc := NewSkillService(store, refresher, zerolog.Nop())

		_, err := svc.Add(context.Background(), "arun.student@gmail.com", &dto.AddSkillRequest{SkillName: "  "})
		assert.EqualError(t, err, MsgSkillNameRequired)
		assert.Empty(t, store.created)
		assert.Empty(t, refresher.emails)
	})
}

// Deletes must reach the store scoped to the caller's own email, never to a
// request-supplied one, and a pair that matches no row still succeeds.
func TestSkillService_Delete_ScopedToOwner(t *testing.T) {
	t.Run("forwards the caller's id and email unchanged", func(t *testing.T) {
		store := &fakeSkillStore{}
		refresher := &fakeRefresher{}
		svc := NewSkillService(store, refresher, zerolog.Nop())

		err := svc.Delete(context.Background(), 42, "arun.student@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, []deleteCall{{id: 42, email: "arun.student@gmail.com"}}, store.deletes)
		assert.Equal(t, []string{"arun.student@gmail.com"}, refresher.emails)
	})

	t.Run("foreign id is a silent no-op", func(t *testing.T) {
		// The store deletes nothing for a mismatched pair and reports no
		// error; the service surfaces success either way.
		store := &fakeSkillStore{}
		svc := NewSkillService(store, &fakeRefresher{}, zerolog.Nop())

		err := svc.Delete(context.Background(), 999, "other.student@gmail.com")
		assert.NoError(t, err)
		assert.Equal(t, []deleteCall{{id: 999, email: "other.student@gmail.com"}}, store.deletes)
	})

	t.Run("store failure skips the refresh", func(t *testing.T) {
		store := &fakeSkillStore{deleteErr: errors.New("connection reset")}
		refresher := &fakeRefresher{}
		svc := NewSkillService(store, refresher, zerolog.Nop())

		err := svc.Delete(context.Background(), 7, "arun.student@gmail.com")
		assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
		assert.Empty(t, refresher.emails)
	})
}

func TestAchievementService_Delete_ScopedToOwner(t *testing.T) {
	store := &fakeAchievementStore{}
	refresher := &fakeRefresher{}
	svc := NewAchievementService(store, refresher, zerolog.Nop())

	err := svc.Delete(context.Background(), 5, "mira.student@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, []deleteCall{{id: 5, email: "mira.student@gmail.com"}}, store.deletes)
	assert.Equal(t, []string{"mira.student@gmail.com"}, refresher.emails)
}

func TestCertificationService_Delete_ScopedToOwner(t *testing.T) {
	store := &fakeCertificationStore{}
	refresher := &fakeRefresher{}
	svc := NewCertificationService(store, refresher, zerolog.Nop())

	err := svc.Delete(context.Background(), 9, "mira.student@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, []deleteCall{{id: 9, email: "mira.student@gmail.com"}}, store.deletes)
	assert.Equal(t, []string{"mira.student@gmail.com"}, refresher.emails)
}
