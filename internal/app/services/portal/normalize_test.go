package portal

import (
	"errors"
	"testing"

	"wellness-wizard/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuestions(t *testing.T) {
	t.Run("Domains variant flattens in presentation order", func(t *testing.T) {
		body := []byte(`{
			"success": true,
			"domains": {
				"immune_digestive": {"domain_name": "Immune & Digestive Wellness", "therapy_code": "C-108",
					"questions": [{"id": 29, "text": "Colds?", "options": ["Often", "Never"], "scores": [0, 100]}]},
				"vitality_energy": {"domain_name": "Vitality & Energy Support", "therapy_code": "C-102",
					"questions": [
						{"id": 1, "text": "Energy?", "options": ["Low", "High"], "scores": [0, 100]},
						{"id": 2, "text": "Fatigue?", "options": ["Daily", "Never"], "scores": [0, 100]}
					]}
			}
		}`)

		questions, err := normalizeQuestions("/q", body)
		require.NoError(t, err)
		require.Len(t, questions, 3)
		assert.Equal(t, []int{1, 2, 29}, []int{questions[0].ID, questions[1].ID, questions[2].ID})
		assert.Equal(t, "vitality_energy", questions[0].Domain)
		assert.Equal(t, "C-102", questions[0].TherapyCode)
		assert.Equal(t, "Immune & Digestive Wellness", questions[2].DomainName)
	})

	t.Run("Questions variant keeps load order", func(t *testing.T) {
		body := []byte(`{"questions": [
			{"id": 9, "domain": "comfort_mobility", "text": "Pain?", "options": ["Severe", "None"], "scores": [0, 100]},
			{"id": 3, "domain": "vitality_energy", "question": "Crashes?", "options": ["Always", "Never"], "scores": [0, 100]}
		]}`)

		questions, err := normalizeQuestions("/q", body)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, 9, questions[0].ID)
		assert.Equal(t, "Crashes?", questions[1].Text, "question field should fill missing text")
	})

	t.Run("Unknown domain keys sort after known domains", func(t *testing.T) {
		body := []byte(`{"domains": {
			"zeta": {"questions": [{"id": 90, "text": "Z?", "options": ["a"], "scores": [1]}]},
			"alpha": {"questions": [{"id": 80, "text": "A?", "options": ["a"], "scores": [1]}]},
			"stress_relaxation": {"questions": [{"id": 22, "text": "Stress?", "options": ["a"], "scores": [1]}]}
		}}`)

		questions, err := normalizeQuestions("/q", body)
		require.NoError(t, err)
		assert.Equal(t, []string{"stress_relaxation", "alpha", "zeta"}, []string{questions[0].Domain, questions[1].Domain, questions[2].Domain})
	})

	t.Run("Mismatched options and scores are rejected", func(t *testing.T) {
		body := []byte(`{"questions": [{"id": 1, "domain": "vitality_energy", "text": "Energy?", "options": ["Low", "High"], "scores": [0]}]}`)
		_, err := normalizeQuestions("/q", body)
		assert.True(t, errors.Is(err, exceptions.KindValidationFailed))
	})

	t.Run("Question without options is rejected", func(t *testing.T) {
		body := []byte(`{"questions": [{"id": 1, "domain": "vitality_energy", "text": "Energy?", "options": [], "scores": []}]}`)
		_, err := normalizeQuestions("/q", body)
		assert.True(t, errors.Is(err, exceptions.KindValidationFailed))
	})

	t.Run("Empty list is rejected", func(t *testing.T) {
		_, err := normalizeQuestions("/q", []byte(`{"questions": []}`))
		assert.True(t, errors.Is(err, exceptions.KindValidationFailed))
	})

	t.Run("Unrecognised shape is a backend error", func(t *testing.T) {
		_, err := normalizeQuestions("/q", []byte(`{"items": []}`))
		assert.True(t, errors.Is(err, exceptions.KindBackendUnavailable))
	})
}

func TestNormalizePatients(t *testing.T) {
	t.Run("Wrapped list", func(t *testing.T) {
		patients, err := normalizePatients("/p", []byte(`{"patients": [{"id": 7, "first_name": "Ada", "last_name": "Lovelace", "patient_number": "CEL-7"}]}`))
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, "7", patients[0].ID)
		assert.Equal(t, "Ada Lovelace", patients[0].DisplayName())
	})

	t.Run("Bare array", func(t *testing.T) {
		patients, err := normalizePatients("/p", []byte(` [{"id": "p-1", "first_name": "Alan", "last_name": "Turing", "patient_number": 12}]`))
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, "p-1", patients[0].ID)
		assert.Equal(t, "12", patients[0].PatientNumber)
	})

	t.Run("Object without patients key", func(t *testing.T) {
		_, err := normalizePatients("/p", []byte(`{"data": []}`))
		assert.True(t, errors.Is(err, exceptions.KindBackendUnavailable))
	})

	t.Run("Empty body", func(t *testing.T) {
		_, err := normalizePatients("/p", nil)
		assert.Error(t, err)
	})
}

func TestNormalizeResultSet(t *testing.T) {
	t.Run("Prefers overall_score", func(t *testing.T) {
		var response completeResponse
		require.NoError(t, jsonUnmarshal(`{"overall_score": 70, "overall_wellness_score": 10, "domain_scores": {}}`, &response))

		resultSet, err := normalizeResultSet("/c", "A1", response)
		require.NoError(t, err)
		assert.Equal(t, 70.0, resultSet.OverallScore)
	})

	t.Run("Falls back to overall_wellness_score", func(t *testing.T) {
		var response completeResponse
		require.NoError(t, jsonUnmarshal(`{"assessment_id": 44, "overall_wellness_score": "62.5",
			"domain_scores": {"vitality_energy": {"domain_name": "Vitality & Energy Support", "score": 62.5, "questions_answered": 7, "total_questions": 7}}}`, &response))

		resultSet, err := normalizeResultSet("/c", "A1", response)
		require.NoError(t, err)
		assert.Equal(t, "44", resultSet.AssessmentID)
		assert.Equal(t, 62.5, resultSet.OverallScore)
		assert.Equal(t, 7, resultSet.DomainScores["vitality_energy"].QuestionsAnswered)
	})

	t.Run("Missing overall score is a schema error", func(t *testing.T) {
		var response completeResponse
		require.NoError(t, jsonUnmarshal(`{"domain_scores": {}}`, &response))
		_, err := normalizeResultSet("/c", "A1", response)
		assert.Error(t, err)
	})
}
