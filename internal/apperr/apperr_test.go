package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(New(Validation, "bad")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(New(Conflict, "dup")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(New(Auth, "nope")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(New(Forbidden, "pending")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(New(NotFound, "gone")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(New(Store, "db down")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestHTTPStatusWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(NotFound, "gone"))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestMessageNeverLeaksInternals(t *testing.T) {
	assert.Equal(t, "gone", Message(New(NotFound, "gone")))
	assert.Equal(t, "internal server error", Message(Wrap(Store, "db write failed", errors.New("secret detail"))))
	assert.Equal(t, "internal server error", Message(errors.New("secret detail")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	assert.ErrorIs(t, Wrap(Store, "wrapped", cause), cause)
}
