package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/dapi/studenttrack/internal/app/models"
	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
)

func TestNormalizeResidence(t *testing.T) {
	t.Run("hosteller keeps warden and room", func(t *testing.T) {
		st, warden, room, err := normalizeResidence("Hosteller", " Ms. Priya ", " B-204 ")
		assert.NoError(t, err)
		assert.Equal(t, models.ScholarHostel, st)
		assert.Equal(t, "Ms. Priya", warden)
		assert.Equal(t, "B-204", room)
	})

	t.Run("hosteller without warden fails", func(t *testing.T) {
		_, _, _, err := normalizeResidence("Hosteller", "", "B-204")
		assert.Error(t, err)
		assert.EqualError(t, err, MsgHostellerRule)
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	})

	t.Run("hosteller without room fails", func(t *testing.T) {
		_, _, _, err := normalizeResidence("Hosteller", "Ms. Priya", "  ")
		assert.EqualError(t, err, MsgHostellerRule)
	})

	t.Run("day scholar forces both empty", func(t *testing.T) {
		st, warden, room, err := normalizeResidence("Day Scholar", "Ms. Priya", "B-204")
		assert.NoError(t, err)
		assert.Equal(t, models.ScholarDay, st)
		assert.Empty(t, warden)
		assert.Empty(t, room)
	})

	t.Run("blank scholar type defaults to day scholar", func(t *testing.T) {
		st, _, _, err := normalizeResidence("", "", "")
		assert.NoError(t, err)
		assert.Equal(t, models.ScholarDay, st)
	})
}

func TestAcademicsFromRequest(t *testing.T) {
	t.Run("parses and coerces fields", func(t *testing.T) {
		s, err := academicsFromRequest("2026-01-05", "42.9", "-2", []string{"8.0", "", "bad", "9.5"})
		assert.NoError(t, err)
		assert.Equal(t, "2026-01-05", s.SemesterStart)
		assert.Equal(t, 42, s.PresentDays)
		assert.Equal(t, 0, s.ArrearCount)

		if assert.NotNil(t, s.Semesters[0]) {
			assert.Equal(t, 8.0, *s.Semesters[0])
		}
		assert.Nil(t, s.Semesters[1])
		assert.Nil(t, s.Semesters[2])
		if assert.NotNil(t, s.Semesters[3]) {
			assert.Equal(t, 9.5, *s.Semesters[3])
		}
		assert.Nil(t, s.Semesters[7])
	})

	t.Run("blank start date is a format error", func(t *testing.T) {
		_, err := academicsFromRequest("  ", "1", "0", nil)
		assert.EqualError(t, err, MsgBadSemesterStart)
	})

	t.Run("malformed start date", func(t *testing.T) {
		_, err := academicsFromRequest("05/01/2026", "1", "0", nil)
		assert.EqualError(t, err, MsgBadSemesterStart)
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	})

	t.Run("extra semester entries beyond eight are dropped", func(t *testing.T) {
		many := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
		s, err := academicsFromRequest("2026-01-05", "0", "0", many)
		assert.NoError(t, err)
		if assert.NotNil(t, s.Semesters[7]) {
			assert.Equal(t, 8.0, *s.Semesters[7])
		}
	})
}

func TestProfileFromRequest(t *testing.T) {
	valid := func() *dto.UpdateProfileRequest {
		return &dto.UpdateProfileRequest{
			Name:         "Aarav Kumar",
			ContactEmail: "Aarav@Gmail.com",
			Phone:        "9876543210",
			ParentPhone:  "9876543211",
			Address:      "12 Lake View Road",
			Department:   "IT",
			MentorName:   "Dr. Rao",
			ScholarType:  "Day Scholar",
		}
	}

	t.Run("valid profile normalizes email", func(t *testing.T) {
		s, err := profileFromRequest(valid())
		assert.NoError(t, err)
		assert.Equal(t, "aarav@gmail.com", s.ContactEmail)
		assert.Equal(t, models.ScholarDay, s.ScholarType)
	})

	t.Run("any blank required field fails", func(t *testing.T) {
		req := valid()
		req.Department = "   "
		_, err := profileFromRequest(req)
		assert.EqualError(t, err, MsgFillAllFields)
	})

	t.Run("hosteller rule applies", func(t *testing.T) {
		req := valid()
		req.ScholarType = "Hosteller"
		_, err := profileFromRequest(req)
		assert.EqualError(t, err, MsgHostellerRule)
	})
}

// The staff form rejects a blank start date as a missing required field; the
// student academics form reports the same input as a date-format error. Both
// errors surface before any store access, so the service needs no backends.
func TestStaffEdit_BlankStartDate(t *testing.T) {
	svc := NewStudentService(nil, nil, nil, nil, nil, zerolog.Nop())

	req := &dto.StaffEditRequest{
		UpdateProfileRequest: dto.UpdateProfileRequest{
			Name:         "Aarav Kumar",
			ContactEmail: "aarav@gmail.com",
			Phone:        "9876543210",
			ParentPhone:  "9876543211",
			Address:      "12 Lake View Road",
			Department:   "IT",
			MentorName:   "Dr. Rao",
			ScholarType:  "Day Scholar",
		},
		SemesterStart: "   ",
	}

	err := svc.StaffEdit(context.Background(), 1, req)
	assert.EqualError(t, err, MsgFillAllFields)
}
