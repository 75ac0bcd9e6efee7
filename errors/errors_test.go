package errors_test

import (
	"errors"
	"testing"

	uzerrors "github.com/dargueta/uz1/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithMessage__FormatsKindAndMessage(t *testing.T) {
	err := uzerrors.NewWithMessage(uzerrors.BadFilename, "asdfqwerty")
	assert.Equal(t, "malformed filename record: asdfqwerty", err.Error())
	assert.Equal(t, uzerrors.BadFilename, err.Kind())
}

func TestNewFromError__WrapsUnderlyingCause(t *testing.T) {
	cause := errors.New("disk full")
	err := uzerrors.NewFromError(uzerrors.IOError, cause)
	assert.ErrorIs(t, err, cause, "original cause not set as parent")
}

func TestWrap__CombinesMessageAndIsChecks(t *testing.T) {
	primary := uzerrors.New(uzerrors.CorruptBlock)
	cause := errors.New("close failed")

	combined := uzerrors.Wrap(primary, cause)

	require.Error(t, combined)
	assert.ErrorIs(t, combined, primary, "primary error not set as parent")
	assert.ErrorIs(t, combined, cause, "wrapped cause not set as parent")
	assert.Contains(t, combined.Error(), primary.Error())
	assert.Contains(t, combined.Error(), cause.Error())
}

func TestWrap__NilCausesAreSkipped(t *testing.T) {
	primary := uzerrors.New(uzerrors.IOError)
	combined := uzerrors.Wrap(primary, nil, nil)

	require.Error(t, combined)
	assert.ErrorIs(t, combined, primary)
}
