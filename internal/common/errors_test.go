package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("PARSE_FAILURE", "broken.pdf", ErrParseFailure)
	assert.True(t, errors.Is(err, ErrParseFailure))
	assert.Contains(t, err.Error(), "PARSE_FAILURE")
	assert.Contains(t, err.Error(), "broken.pdf")
}

func TestWrapError(t *testing.T) {
	base := errors.New("disk full")
	err := WrapError(base, "write export")
	assert.True(t, errors.Is(err, base))
	assert.Contains(t, err.Error(), "write export")
}

func TestGRPCStatusHelpers(t *testing.T) {
	err := NotFoundError("request abc")
	st, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())

	err = InvalidArgumentError("bad input")
	st, _ = status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
