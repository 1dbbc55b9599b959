package apierr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordboard/internal/model"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown target", fmt.Errorf("%w: %q", model.ErrUnknownTarget, "x"), http.StatusNotFound, CodeUnknownTarget},
		{"in flight", model.ErrRequestInFlight, http.StatusConflict, CodeRequestInFlight},
		{"invalid letter", model.ErrInvalidLetter, http.StatusBadRequest, CodeInvalidLetter},
		{"solver", fmt.Errorf("%w: timeout", model.ErrSolverUnavailable), http.StatusBadGateway, CodeSolverUnavailable},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable, CodeServiceUnavailable},
		{"invalid request", NewInvalidRequestError("bad body"), http.StatusBadRequest, CodeInvalidRequest},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError, CodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.status, Status(tt.err))
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}
