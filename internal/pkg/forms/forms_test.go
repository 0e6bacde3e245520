package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   int
		want  int
	}{
		{"plain integer", "42", 0, 42},
		{"whitespace trimmed", "  42  ", 0, 42},
		{"fraction truncated", "7.9", 0, 7},
		{"negative fraction truncated toward zero", "-3.7", 0, -3},
		{"empty falls back to default", "", 5, 5},
		{"garbage falls back to default", "abc", 5, 5},
		{"zero", "0", 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeInt(tt.input, tt.def))
		})
	}
}

func TestSafeFloat(t *testing.T) {
	got := SafeFloat("8.5")
	if assert.NotNil(t, got) {
		assert.Equal(t, 8.5, *got)
	}

	got = SafeFloat(" 9 ")
	if assert.NotNil(t, got) {
		assert.Equal(t, 9.0, *got)
	}

	assert.Nil(t, SafeFloat(""))
	assert.Nil(t, SafeFloat("not a number"))

	// Zero is a real score, distinct from absent.
	got = SafeFloat("0")
	if assert.NotNil(t, got) {
		assert.Equal(t, 0.0, *got)
	}
}

func TestParseYMD(t *testing.T) {
	d, err := ParseYMD("2026-01-05")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseYMD("05-01-2026")
	assert.Error(t, err)

	_, err = ParseYMD("2026/01/05")
	assert.Error(t, err)

	_, err = ParseYMD("")
	assert.Error(t, err)

	// No lenient day overflow.
	_, err = ParseYMD("2026-02-30")
	assert.Error(t, err)
}

func TestValidEmailForRole(t *testing.T) {
	tests := []struct {
		name  string
		email string
		role  string
		want  bool
	}{
		{"student suffix", "a.student@gmail.com", "student", true},
		{"student suffix uppercase", "A.STUDENT@GMAIL.COM", "student", true},
		{"staff suffix", "b.staff@gmail.com", "staff", true},
		{"student email for staff role", "a.student@gmail.com", "staff", false},
		{"staff email for student role", "b.staff@gmail.com", "student", false},
		{"plain gmail", "someone@gmail.com", "student", false},
		{"unknown role", "a.student@gmail.com", "admin", false},
		{"empty email", "", "student", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmailForRole(tt.email, tt.role))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a.student@gmail.com", NormalizeEmail("  A.Student@Gmail.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
