// Package results turns scored assessments into display rows.
package results

import (
	"math"
	"sort"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
)

type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

const (
	highThreshold   = 75
	mediumThreshold = 50
)

var domainNames = map[string]string{
	constvars.DomainVitalityEnergy:   "Vitality & Energy Support",
	constvars.DomainComfortMobility:  "Comfort & Mobility Support",
	constvars.DomainCirculationHeart: "Circulation & Heart Wellness",
	constvars.DomainStressRelaxation: "Stress & Relaxation Support",
	constvars.DomainImmuneDigestive:  "Immune & Digestive Wellness",
}

var therapyCodes = map[string]string{
	constvars.DomainVitalityEnergy:   "C-102",
	constvars.DomainComfortMobility:  "C-104",
	constvars.DomainCirculationHeart: "C-105",
	constvars.DomainStressRelaxation: "C-107",
	constvars.DomainImmuneDigestive:  "C-108",
}

var bandColors = map[Band]string{
	BandHigh:   "green",
	BandMedium: "amber",
	BandLow:    "red",
}

func ScoreBand(score float64) Band {
	switch {
	case score >= highThreshold:
		return BandHigh
	case score >= mediumThreshold:
		return BandMedium
	default:
		return BandLow
	}
}

func (b Band) Color() string {
	return bandColors[b]
}

// DomainName falls back to the raw tag for domains it does not know.
func DomainName(domain string) string {
	if name, ok := domainNames[domain]; ok {
		return name
	}
	return domain
}

// TherapyCode falls back to the raw tag for domains it does not know.
func TherapyCode(domain string) string {
	if code, ok := therapyCodes[domain]; ok {
		return code
	}
	return domain
}

type Row struct {
	Domain            string  `json:"domain"`
	DisplayName       string  `json:"display_name"`
	TherapyCode       string  `json:"therapy_code"`
	Assessed          bool    `json:"assessed"`
	Score             float64 `json:"score"`
	Band              Band    `json:"band,omitempty"`
	Color             string  `json:"color,omitempty"`
	QuestionsAnswered int     `json:"questions_answered"`
	TotalQuestions    int     `json:"total_questions"`
}

type Presentation struct {
	AssessmentID string  `json:"assessment_id"`
	OverallScore float64 `json:"overall_score"`
	OverallBand  Band    `json:"overall_band"`
	OverallColor string  `json:"overall_color"`
	Rows         []Row   `json:"rows"`
}

// Present lists the five wellness domains in order, followed by any extra
// domains the backend scored. Domains without answers are marked not assessed.
func Present(resultSet *models.ResultSet) Presentation {
	if resultSet == nil {
		resultSet = &models.ResultSet{}
	}
	presentation := Presentation{
		AssessmentID: resultSet.AssessmentID,
		OverallScore: roundTenth(resultSet.OverallScore),
		OverallBand:  ScoreBand(resultSet.OverallScore),
	}
	presentation.OverallColor = presentation.OverallBand.Color()

	seen := make(map[string]bool, len(constvars.Domains))
	for _, domain := range constvars.Domains {
		seen[domain] = true
		presentation.Rows = append(presentation.Rows, row(domain, resultSet.DomainScores))
	}

	var extra []string
	for domain := range resultSet.DomainScores {
		if !seen[domain] {
			extra = append(extra, domain)
		}
	}
	sort.Strings(extra)
	for _, domain := range extra {
		presentation.Rows = append(presentation.Rows, row(domain, resultSet.DomainScores))
	}
	return presentation
}

func row(domain string, scores map[string]models.DomainScore) Row {
	r := Row{
		Domain:      domain,
		DisplayName: DomainName(domain),
		TherapyCode: TherapyCode(domain),
	}

	score, ok := scores[domain]
	if !ok {
		return r
	}
	if score.DomainName != "" {
		r.DisplayName = score.DomainName
	}
	if score.TherapyCode != "" {
		r.TherapyCode = score.TherapyCode
	}
	r.Assessed = true
	r.Score = roundTenth(score.Score)
	r.Band = ScoreBand(score.Score)
	r.Color = r.Band.Color()
	r.QuestionsAnswered = score.QuestionsAnswered
	r.TotalQuestions = score.TotalQuestions
	return r
}

func roundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
