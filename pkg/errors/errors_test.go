package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{"listing_format", errors.ErrListingFormat, "missing separator", "[LISTING_FORMAT] missing separator"},
		{"invalid_input", errors.ErrInvalidInput, "bad --keep", "[INVALID_INPUT] bad --keep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrapf(base, errors.ErrDelete, "cannot remove %s", "/a/b")
	require.NotNil(t, err)
	assert.Equal(t, "[DELETE] cannot remove /a/b: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base))

	assert.Nil(t, errors.Wrap(nil, errors.ErrDelete, "nothing"))
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrReadLink, "boom"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrReadLink, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrDelete, "boom")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrReadLink))
	assert.Equal(t, errors.ErrReadLink, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrListingCommand, "exited").
		WithDetail("command", "nix-store --gc --print-roots").
		WithDetail("status", 1)

	details := errors.GetErrorDetails(fmt.Errorf("wrapped: %w", err))
	assert.Equal(t, "nix-store --gc --print-roots", details["command"])
	assert.Equal(t, 1, details["status"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
