package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMapToExpectedStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
		base error
	}{
		{"not found", NotFound("missing"), http.StatusNotFound, ErrNotFound},
		{"bad request", BadRequest("bad"), http.StatusBadRequest, ErrInvalidInput},
		{"unauthorized", Unauthorized("nope"), http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", Forbidden("no"), http.StatusForbidden, ErrForbidden},
		{"conflict maps to 400", Conflict("dup"), http.StatusBadRequest, ErrAlreadyExists},
		{"gone", Gone("expired"), http.StatusGone, ErrExpired},
		{"internal", InternalError(errors.New("boom")), http.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			if tt.base != nil {
				assert.ErrorIs(t, tt.err, tt.base)
			}
		})
	}
}

func TestAppErrorMessages(t *testing.T) {
	e := NewAppError(http.StatusBadRequest, "msg only", nil)
	assert.Equal(t, "msg only", e.Error())

	wrapped := NewAppError(http.StatusBadRequest, "msg", errors.New("inner"))
	assert.Equal(t, "inner", wrapped.Error())
}

func TestValidationCarriesFields(t *testing.T) {
	e := Validation([]FieldError{
		{Field: "email", Message: "must be a valid email"},
		{Field: "password", Message: "must be at least 6 characters"},
	})
	assert.Equal(t, http.StatusBadRequest, e.Code)
	assert.Len(t, e.Fields, 2)
	assert.ErrorIs(t, e, ErrInvalidInput)
}
