package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(ErrConversationNotFound))
	assert.Equal(t, CodePermissionDenied, CodeOf(ErrNotParticipant))
	assert.Equal(t, CodeInvalidArgument, CodeOf(ErrEmptyContent))
	assert.Equal(t, CodeUnknown, CodeOf(stderrors.New("plain")))
	assert.Equal(t, CodeUnknown, CodeOf(nil))

	wrapped := fmt.Errorf("handler: %w", ErrSelfConversation)
	assert.Equal(t, CodeInvalidArgument, CodeOf(wrapped))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := ErrSendFailed(cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, CodeInternal, CodeOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCode_HTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeAlreadyExists, http.StatusConflict},
		{CodePermissionDenied, http.StatusForbidden},
		{CodeUnauthenticated, http.StatusUnauthorized},
		{CodeInternal, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.code.HTTPStatus(), string(c.code))
	}
}
