package portal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/app/services/portal/portaltest"
	"wellness-wizard/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) (*portaltest.Server, *portalClient) {
	t.Helper()
	server := portaltest.NewServer()
	t.Cleanup(server.Close)
	client := NewPortalClient(server.URL, 5*time.Second, zap.NewNop()).(*portalClient)
	return server, client
}

func TestPortalClientAssessmentFlow(t *testing.T) {
	ctx := context.Background()
	server, client := newTestClient(t)

	questions, err := client.ListQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, questions, server.QuestionCount())

	assessment, err := client.StartAssessment(ctx, portaltest.DefaultToken, &models.Assessment{PatientID: "101", PractitionerID: "7", ClinicID: "3"})
	require.NoError(t, err)
	assert.NotEmpty(t, assessment.ID)
	assert.Equal(t, "101", server.StartRequests[0].PatientID)
	assert.Equal(t, "3", server.StartRequests[0].ClinicID)

	for _, question := range questions {
		_, err := client.SubmitAnswer(ctx, portaltest.DefaultToken, assessment.ID, models.Answer{
			QuestionID: question.ID,
			OptionText: question.Options[3],
			Score:      question.Scores[3],
		})
		require.NoError(t, err)
	}

	resultSet, err := client.CompleteAssessment(ctx, portaltest.DefaultToken, assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, resultSet.OverallScore)
	assert.Len(t, resultSet.DomainScores, 5)
	assert.Equal(t, "C-105", resultSet.DomainScores["circulation_heart"].TherapyCode)
}

func TestPortalClientErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("401 maps to AuthExpired", func(t *testing.T) {
		_, client := newTestClient(t)
		_, err := client.ListPatients(ctx, "stale-token")
		assert.True(t, errors.Is(err, exceptions.KindAuthExpired))
	})

	t.Run("5xx maps to BackendUnavailable", func(t *testing.T) {
		server, client := newTestClient(t)
		server.Set(func(s *portaltest.Server) { s.StartStatus = http.StatusServiceUnavailable })
		_, err := client.StartAssessment(ctx, portaltest.DefaultToken, &models.Assessment{PatientID: "101"})
		assert.True(t, errors.Is(err, exceptions.KindBackendUnavailable))
	})

	t.Run("4xx maps to ValidationFailed", func(t *testing.T) {
		server, client := newTestClient(t)
		server.Set(func(s *portaltest.Server) { s.CompleteStatus = http.StatusBadRequest })
		_, err := client.CompleteAssessment(ctx, portaltest.DefaultToken, "1")
		assert.True(t, errors.Is(err, exceptions.KindValidationFailed))
	})

	t.Run("Unreachable backend maps to BackendUnavailable", func(t *testing.T) {
		server, client := newTestClient(t)
		server.Close()
		_, err := client.ListQuestions(ctx)
		assert.True(t, errors.Is(err, exceptions.KindBackendUnavailable))
	})

	t.Run("Slow backend maps to BackendUnavailable", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		t.Cleanup(slow.Close)
		client := NewPortalClient(slow.URL, 50*time.Millisecond, zap.NewNop())

		_, err := client.ListQuestions(ctx)
		assert.True(t, errors.Is(err, exceptions.KindBackendUnavailable))
	})
}

func TestPortalClientPatients(t *testing.T) {
	ctx := context.Background()

	for _, bare := range []bool{false, true} {
		server, client := newTestClient(t)
		server.Set(func(s *portaltest.Server) { s.BarePatients = bare })

		patients, err := client.ListPatients(ctx, portaltest.DefaultToken)
		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Equal(t, "101", patients[0].ID)
		assert.Equal(t, "Ada Lovelace", patients[0].DisplayName())
	}
}

func TestPortalClientIridology(t *testing.T) {
	ctx := context.Background()

	t.Run("Analysis sends both images as base64", func(t *testing.T) {
		server, client := newTestClient(t)
		result, err := client.AnalyzeIris(ctx, "501", []byte{0xFF, 0xD8, 0x01}, []byte{0xFF, 0xD8, 0x02})
		require.NoError(t, err)
		assert.Equal(t, "Lymphatic", result.ConstitutionalType)
		assert.Equal(t, []string{"Hydration", "Gentle movement"}, result.Recommendations)

		require.Len(t, server.AnalyzeRequests, 1)
		assert.Equal(t, "/9gB", server.AnalyzeRequests[0].LeftEyeImage)
		assert.False(t, strings.HasPrefix(server.AnalyzeRequests[0].RightEyeImage, "data:"))
	})

	t.Run("success false maps to BackendUnavailable", func(t *testing.T) {
		server, client := newTestClient(t)
		server.Set(func(s *portaltest.Server) { s.AnalyzeFails = true })
		_, err := client.AnalyzeIris(ctx, "501", []byte{1}, []byte{2})
		assert.True(t, errors.Is(err, exceptions.KindBackendUnavailable))
	})

	t.Run("Report and PDF link", func(t *testing.T) {
		server, client := newTestClient(t)
		report, err := client.FindReport(ctx, "501")
		require.NoError(t, err)
		assert.Equal(t, "Ada", report.Patient.FirstName)
		assert.Equal(t, []string{"Stress rings"}, report.Analysis.PrimaryConcerns)

		link, err := client.GenerateReport(ctx, "501")
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/reports/assessment_501.pdf", link.DownloadURL)
	})
}

func TestErrorFromBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "error field", body: `{"success": false, "error": "assessment closed"}`, want: "assessment closed"},
		{name: "detail string", body: `{"detail": "No responses found"}`, want: "No responses found"},
		{name: "detail list", body: `{"detail": [{"loc": ["body", "patient_id"], "msg": "field required"}]}`, want: "field required"},
		{name: "message only", body: `{"message": "try later"}`, want: "try later"},
		{name: "not json", body: `<html>bad gateway</html>`},
		{name: "no reason", body: `{"success": false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errorFromBody([]byte(tt.body))
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
