package google

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		unauthorized bool
		forbidden    bool
		notFound     bool
		rateLimited  bool
	}{
		{"401", &googleapi.Error{Code: http.StatusUnauthorized}, true, false, false, false},
		{"403", &googleapi.Error{Code: http.StatusForbidden}, false, true, false, false},
		{"404", &googleapi.Error{Code: http.StatusNotFound}, false, false, true, false},
		{"429", &googleapi.Error{Code: http.StatusTooManyRequests}, false, false, false, true},
		{"wrapped 403", fmt.Errorf("fetch: %w", &googleapi.Error{Code: http.StatusForbidden}), false, true, false, false},
		{"sentinel", ErrNotFound, false, false, true, false},
		{"plain", errors.New("boom"), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unauthorized, IsUnauthorized(tt.err))
			assert.Equal(t, tt.forbidden, IsForbidden(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.rateLimited, IsRateLimited(tt.err))
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, WrapError(plain))

	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, ErrNotFound},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			gerr := &googleapi.Error{Code: tt.code}
			wrapped := WrapError(gerr)

			assert.ErrorIs(t, wrapped, tt.want)
			var got *googleapi.Error
			assert.ErrorAs(t, wrapped, &got)
		})
	}

	server := &googleapi.Error{Code: http.StatusInternalServerError}
	assert.Equal(t, error(server), WrapError(server))
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"401", WrapError(&googleapi.Error{Code: http.StatusUnauthorized}), "check the API key or service account credentials"},
		{"403", WrapError(&googleapi.Error{Code: http.StatusForbidden}), "share the spreadsheet with the service account or make it viewable by link"},
		{"400 bad range", WrapError(&googleapi.Error{Code: http.StatusBadRequest}), "check the spreadsheet id and sheet range"},
		{"throttled", ErrRateLimited, "request budget exhausted"},
		{"plain", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hint(tt.err))
		})
	}
}
