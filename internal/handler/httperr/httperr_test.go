//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/session"
	"tokengate/internal/domain/token"
	"tokengate/internal/handler/httperr"
	"tokengate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: rule.ErrInvalidMinimum, wantStatus: http.StatusBadRequest, wantMsg: "minimum token amount must be positive"},
		{name: "conflict", err: rule.ErrUsageLimitReached, wantStatus: http.StatusBadRequest, wantMsg: "discount usage limit reached"},
		{name: "not found", err: session.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: "session not found"},
		{name: "unauthorized", err: session.ErrUnverified, wantStatus: http.StatusUnauthorized, wantMsg: "invalid or unverified session"},
		{name: "upstream with cause keeps the public message", err: errs.WithCause(token.ErrRemoteUnavailable, errors.New("dial tcp 10.0.0.1:8545: i/o timeout")), wantStatus: http.StatusServiceUnavailable, wantMsg: "chain endpoint unavailable"},
		{name: "uncategorized is internal", err: errors.New("pq: relation does not exist"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
		{name: "wrapped internal stays internal", err: errs.Wrap(errors.New("boom"), "load rules"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.Classify(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}
