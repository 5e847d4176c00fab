package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wellness-wizard/internal/app/services/core/capture"
	"wellness-wizard/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWizardControllerFail(t *testing.T) {
	ctrl := NewWizardController(zap.NewNop(), nil, capture.DefaultConstraints(), time.Second)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "Wrapped deadline becomes a gateway timeout",
			err:        fmt.Errorf("capture frame: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantKind:   string(exceptions.KindBackendUnavailable),
		},
		{
			name:       "Classified error wrapping a deadline keeps its kind",
			err:        exceptions.ErrStartRejected(context.DeadlineExceeded),
			wantStatus: http.StatusBadGateway,
			wantKind:   string(exceptions.KindStartRejected),
		},
		{
			name:       "Plain error is internal",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			ctrl.fail(rr, httptest.NewRequest(http.MethodGet, "/", nil), "Test", tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var body struct {
				Kind string `json:"kind"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body.Kind)
		})
	}
}
