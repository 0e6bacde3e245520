package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dapi/studenttrack/internal/app/models/dto"
	"github.com/dapi/studenttrack/internal/pkg/apperrors"
)

func handleOnRecorder(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError_ValidationMessageIsVerbatim(t *testing.T) {
	err := apperrors.NewValidationError("Semester Start must be YYYY-MM-DD").WithField("semesterStart")
	w, body := handleOnRecorder(t, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	if assert.NotNil(t, body.Error) {
		assert.Equal(t, "Semester Start must be YYYY-MM-DD", body.Error.Message)
		assert.Equal(t, "semesterStart", body.Error.Field)
	}
}

func TestHandleAPIError_DuplicateKey(t *testing.T) {
	w, body := handleOnRecorder(t, apperrors.NewDuplicateKeyError("Email or Roll already exists"))

	assert.Equal(t, http.StatusConflict, w.Code)
	if assert.NotNil(t, body.Error) {
		assert.Equal(t, "Email or Roll already exists", body.Error.Message)
	}
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"store failure", apperrors.NewStoreError(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := handleOnRecorder(t, tt.err)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandleAPIError_InternalDetailsAreHidden(t *testing.T) {
	_, body := handleOnRecorder(t, apperrors.NewStoreError(errors.New("pq: connection refused")))
	if assert.NotNil(t, body.Error) {
		assert.Equal(t, "Internal server error", body.Error.Message)
	}
}
