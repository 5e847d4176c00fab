package results

import (
	"testing"

	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBand(t *testing.T) {
	tests := []struct {
		score float64
		band  Band
		color string
	}{
		{score: 100, band: BandHigh, color: "green"},
		{score: 75, band: BandHigh, color: "green"},
		{score: 74.9, band: BandMedium, color: "amber"},
		{score: 74, band: BandMedium, color: "amber"},
		{score: 50, band: BandMedium, color: "amber"},
		{score: 49, band: BandLow, color: "red"},
		{score: 0, band: BandLow, color: "red"},
	}

	for _, tt := range tests {
		band := ScoreBand(tt.score)
		assert.Equal(t, tt.band, band, "score %v", tt.score)
		assert.Equal(t, tt.color, band.Color(), "score %v", tt.score)
	}
}

func TestLookupTables(t *testing.T) {
	assert.Equal(t, "Stress & Relaxation Support", DomainName(constvars.DomainStressRelaxation))
	assert.Equal(t, "C-107", TherapyCode(constvars.DomainStressRelaxation))
	assert.Equal(t, "C-102", TherapyCode(constvars.DomainVitalityEnergy))
	assert.Equal(t, "C-108", TherapyCode(constvars.DomainImmuneDigestive))

	assert.Equal(t, "unknown_domain", DomainName("unknown_domain"))
	assert.Equal(t, "unknown_domain", TherapyCode("unknown_domain"))
}

func TestPresent(t *testing.T) {
	presentation := Present(&models.ResultSet{
		AssessmentID: "501",
		OverallScore: 61.25,
		DomainScores: map[string]models.DomainScore{
			constvars.DomainVitalityEnergy: {Score: 75, QuestionsAnswered: 2, TotalQuestions: 2},
			constvars.DomainStressRelaxation: {
				Score:       47.5,
				DomainName:  "Stress Care",
				TherapyCode: "C-900",
			},
			"sleep_quality": {Score: 50},
		},
	})

	assert.Equal(t, "501", presentation.AssessmentID)
	assert.Equal(t, 61.3, presentation.OverallScore)
	assert.Equal(t, BandMedium, presentation.OverallBand)
	require.Len(t, presentation.Rows, 6)

	vitality := presentation.Rows[0]
	assert.Equal(t, "Vitality & Energy Support", vitality.DisplayName)
	assert.True(t, vitality.Assessed)
	assert.Equal(t, BandHigh, vitality.Band)
	assert.Equal(t, 2, vitality.QuestionsAnswered)

	comfort := presentation.Rows[1]
	assert.Equal(t, constvars.DomainComfortMobility, comfort.Domain)
	assert.False(t, comfort.Assessed)
	assert.Equal(t, Band(""), comfort.Band)
	assert.Equal(t, "C-104", comfort.TherapyCode)

	stress := presentation.Rows[3]
	assert.Equal(t, "Stress Care", stress.DisplayName)
	assert.Equal(t, "C-900", stress.TherapyCode)
	assert.Equal(t, BandLow, stress.Band)

	extra := presentation.Rows[5]
	assert.Equal(t, "sleep_quality", extra.DisplayName)
	assert.Equal(t, "sleep_quality", extra.TherapyCode)
	assert.Equal(t, BandMedium, extra.Band)
}

func TestPresentNil(t *testing.T) {
	presentation := Present(nil)
	assert.Len(t, presentation.Rows, 5)
	assert.Equal(t, BandLow, presentation.OverallBand)
}
