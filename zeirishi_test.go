package zeirishi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := zeirishi.Errorf(zeirishi.ENOTFOUND, "prefecture %q not found", "test")

	assert.Equal(t, zeirishi.ENOTFOUND, zeirishi.ErrorCode(err))
	assert.Equal(t, "prefecture \"test\" not found", zeirishi.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, zeirishi.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zeirishi.EINTERNAL, zeirishi.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, zeirishi.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", zeirishi.ErrorMessage(errors.New("boom")))
}
