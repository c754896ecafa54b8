package exitcode_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/custodia-network/vesting-actors/actors/runtime/exitcode"
)

func TestWithContext(t *testing.T) {
	codeA := exitcode.FirstActorErrorCode
	codeB := exitcode.FirstActorErrorCode + 1

	baseErr := errors.New("base error")
	codedErr := codeA.Wrapf("coded: %w", baseErr)
	wrappedErr := xerrors.Errorf("wrapper: %w", codedErr)
	shadowedErr := codeB.Wrapf("shadow: %w", codedErr)

	// Test default.
	assert.Equal(t, exitcode.Ok, exitcode.Unwrap(baseErr, exitcode.Ok))
	assert.Equal(t, codeB, exitcode.Unwrap(baseErr, codeB))
	assert.True(t, errors.Is(baseErr, baseErr))

	// Test coded.
	assert.Equal(t, codeA, exitcode.Unwrap(codedErr, exitcode.Ok))
	assert.True(t, errors.Is(wrappedErr, codedErr))
	assert.False(t, errors.Is(codedErr, wrappedErr))
	assert.False(t, errors.Is(wrappedErr, exitcode.Ok))

	// Test wrapped.
	assert.Equal(t, codeA, exitcode.Unwrap(wrappedErr, exitcode.Ok))
	assert.True(t, errors.Is(wrappedErr, codedErr))
	assert.True(t, errors.Is(wrappedErr, wrappedErr))
	assert.False(t, errors.Is(wrappedErr, exitcode.Ok))

	// Test shadowed.
	assert.Equal(t, codeB, exitcode.Unwrap(shadowedErr, exitcode.Ok))
	assert.True(t, errors.Is(shadowedErr, codeB))
	assert.False(t, errors.Is(shadowedErr, codeA))
}

func TestSuccess(t *testing.T) {
	assert.True(t, exitcode.Ok.IsSuccess())
	assert.False(t, exitcode.Ok.IsError())
	assert.True(t, exitcode.SysErrForbidden.IsError())
	assert.False(t, exitcode.SysErrForbidden.IsSuccess())
}
