package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	student *models.Student
	saved   *float64
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	if f.student == nil || f.student.UserEmail != email {
		return nil, apperrors.ErrStudentNotFound
	}
	return f.student, nil
}

func (f *fakeStudentStore) UpdatePlacementScore(_ context.Context, _ string, score float64) error {
	f.saved = &score
	return nil
}

type fakeLevelSummer struct {
	total int
	err   error
}

func (f *fakeLevelSummer) TotalLevels(_ context.Context, _ string) (int, error) {
	return f.total, f.err
}

type fakeCounter struct {
	n int
}

func (f *fakeCounter) CountByStudent(_ context.Context, _ string) (int, error) {
	return f.n, nil
}

func ptr(v float64) *float64 { return &v }

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name    string
		cgpa    *float64
		skills  int
		achs    int
		certs   int
		arrears int
		want    float64
	}{
		{"empty record", nil, 0, 0, 0, 0, 0},
		{"perfect record", ptr(10.0), 100, 4, 5, 0, 100},
		{"component caps hold", ptr(10.0), 500, 40, 50, 0, 100},
		{"cgpa only", ptr(8.0), 0, 0, 0, 0, 40},
		{"one arrear deducts ten", ptr(8.0), 0, 0, 0, 1, 30},
		{"penalty capped at forty", ptr(9.0), 0, 0, 0, 5, 5},
		{"penalty floor is zero", nil, 0, 0, 0, 5, 0},
		{"negative arrears ignored", ptr(8.0), 0, 0, 0, -3, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScore(tt.cgpa, tt.skills, tt.achs, tt.certs, tt.arrears)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeScore_MixedRecord(t *testing.T) {
	// CGPA 8.5 -> 42.5, 10 skill levels -> 3.0, one achievement -> 2.5,
	// no certifications, one arrear -> -10. Total 38.00.
	got := ComputeScore(ptr(8.5), 10, 1, 0, 1)
	assert.Equal(t, 38.0, got)
}

func TestRefreshScore(t *testing.T) {
	students := &fakeStudentStore{
		student: &models.Student{
			UserEmail:   "a.student@gmail.com",
			ArrearCount: 1,
			Semesters:   [models.SemesterCount]*float64{ptr(8.0), ptr(9.0)},
		},
	}
	svc := NewPlacementService(PlacementStores{
		Students:       students,
		Skills:         &fakeLevelSummer{total: 10},
		Achievements:   &fakeCounter{n: 1},
		Certifications: &fakeCounter{n: 0},
	})

	err := svc.RefreshScore(context.Background(), "a.student@gmail.com")
	assert.NoError(t, err)
	if assert.NotNil(t, students.saved) {
		assert.Equal(t, 38.0, *students.saved)
	}

	// Refreshing again with unchanged inputs writes the same value.
	err = svc.RefreshScore(context.Background(), "a.student@gmail.com")
	assert.NoError(t, err)
	assert.Equal(t, 38.0, *students.saved)
}

func TestRefreshScore_MissingStudentIsNoOp(t *testing.T) {
	students := &fakeStudentStore{}
	svc := NewPlacementService(PlacementStores{
		Students:       students,
		Skills:         &fakeLevelSummer{},
		Achievements:   &fakeCounter{},
		Certifications: &fakeCounter{},
	})

	err := svc.RefreshScore(context.Background(), "ghost.student@gmail.com")
	assert.NoError(t, err)
	assert.Nil(t, students.saved)
}

func TestRefreshScore_AggregateFailurePropagates(t *testing.T) {
	students := &fakeStudentStore{
		student: &models.Student{UserEmail: "a.student@gmail.com"},
	}
	svc := NewPlacementService(PlacementStores{
		Students:       students,
		Skills:         &fakeLevelSummer{err: errors.New("connection reset")},
		Achievements:   &fakeCounter{},
		Certifications: &fakeCounter{},
	})

	err := svc.RefreshScore(context.Background(), "a.student@gmail.com")
	assert.Error(t, err)
	assert.Nil(t, students.saved)
}
