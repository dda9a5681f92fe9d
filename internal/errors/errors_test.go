package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found",
			code:     errors.CodeNotFound,
			message:  "technique not found",
			expected: "NOT_FOUND: technique not found",
		},
		{
			name:     "failed precondition",
			code:     errors.CodeFailedPrecondition,
			message:  "power level not chosen",
			expected: "FAILED_PRECONDITION: power level not chosen",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("record missing").WithMeta("technique_id", "tech_1")
	wrapped := errors.Wrap(base, "failed to load technique")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to load technique", wrapped.Message)
	s.Equal("tech_1", wrapped.Meta["technique_id"])
	s.Equal(base, wrapped.Unwrap())
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	wrapped := errors.Wrapf(fmt.Errorf("connection refused"), "failed to store %s", "tech_1")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to store tech_1", wrapped.Message)
	s.Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("timeout"), errors.CodeUnavailable, "store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.True(errors.IsUnavailable(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	err := errors.Wrap(errors.FailedPrecondition("no level"), "cannot add effect")

	s.True(errors.Is(err, errors.FailedPrecondition("any message")))
	s.False(errors.Is(err, errors.NotFound("any message")))
}

func (s *ErrorsTestSuite) TestHelpers() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("bad level", errors.GetMessage(errors.InvalidArgument("bad level")))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not found", errors.NotFound("missing"), codes.NotFound},
		{"invalid argument", errors.InvalidArgument("bad"), codes.InvalidArgument},
		{"failed precondition", errors.FailedPrecondition("no level"), codes.FailedPrecondition},
		{"plain error", fmt.Errorf("boom"), codes.Internal},
		{"context canceled", context.Canceled, codes.Canceled},
		{"existing status", status.Error(codes.Aborted, "aborted"), codes.Aborted},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.code, st.Code())
		})
	}

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	err := errors.FromGRPCError(status.Error(codes.FailedPrecondition, "choose a power level first"))

	s.True(errors.IsFailedPrecondition(err))
	s.Equal("choose a power level first", errors.GetMessage(err))

	plain := fmt.Errorf("not a status")
	s.Equal(plain, errors.FromGRPCError(plain))
	s.Nil(errors.FromGRPCError(nil))
}
