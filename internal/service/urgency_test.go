package service

import (
	"testing"

	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/stretchr/testify/assert"
)

var testEscalationKeywords = []string{"trapped", "drowning", "collapsed", "unconscious", "severe", "critical", "immediately", "rescue", "bleeding", "dying", "injured"}

func newTestUrgencyScorer() *UrgencyScorer {
	return NewUrgencyScorer(testEscalationKeywords, 5)
}

func TestScore_NoSignals_ReturnsLow(t *testing.T) {
	scorer := newTestUrgencyScorer()

	level := scorer.Score(models.Entities{}, nil, "")

	assert.Equal(t, models.UrgencyLow, level)
}

func TestScore_BaselineFromClassifierConfidence(t *testing.T) {
	scorer := newTestUrgencyScorer()

	tests := []struct {
		name           string
		classification []models.ClassLabel
		expected       models.UrgencyLevel
	}{
		{"высокая уверенность", []models.ClassLabel{{Label: "fire", Confidence: 0.9}}, models.UrgencyHigh},
		{"средняя уверенность", []models.ClassLabel{{Label: "flood", Confidence: 0.5}}, models.UrgencyMedium},
		{"низкая уверенность", []models.ClassLabel{{Label: "fire", Confidence: 0.2}}, models.UrgencyLow},
		{"граница high", []models.ClassLabel{{Label: "fire", Confidence: 0.75}}, models.UrgencyHigh},
		{"граница medium", []models.ClassLabel{{Label: "fire", Confidence: 0.40}}, models.UrgencyMedium},
		{"метка safe игнорируется", []models.ClassLabel{{Label: "safe", Confidence: 0.99}}, models.UrgencyLow},
		{"без классификации", nil, models.UrgencyLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scorer.Score(models.Entities{}, tt.classification, "report text"))
		})
	}
}

func TestScore_KeywordEscalatesOneStep(t *testing.T) {
	scorer := newTestUrgencyScorer()
	classification := []models.ClassLabel{{Label: "flood", Confidence: 0.5}}

	level := scorer.Score(models.Entities{}, classification, "people trapped on the roof")

	assert.Equal(t, models.UrgencyHigh, level)
}

func TestScore_KeywordInEntitySpanEscalates(t *testing.T) {
	scorer := newTestUrgencyScorer()
	entities := models.Entities{
		models.EntityUrgency: {"severe flooding"},
	}

	level := scorer.Score(entities, []models.ClassLabel{{Label: "flood", Confidence: 0.5}}, "water rising fast")

	assert.Equal(t, models.UrgencyHigh, level)
}

func TestScore_PersonCountEscalatesOneStep(t *testing.T) {
	scorer := newTestUrgencyScorer()
	entities := models.Entities{
		models.EntityPersonCount: {"12"},
	}

	level := scorer.Score(entities, []models.ClassLabel{{Label: "flood", Confidence: 0.5}}, "many stranded")

	assert.Equal(t, models.UrgencyHigh, level)
}

func TestScore_PersonCountBelowThreshold_NoEscalation(t *testing.T) {
	scorer := newTestUrgencyScorer()
	entities := models.Entities{
		models.EntityPersonCount: {"3"},
	}

	level := scorer.Score(entities, []models.ClassLabel{{Label: "flood", Confidence: 0.5}}, "a few stranded")

	assert.Equal(t, models.UrgencyMedium, level)
}

func TestScore_BothSignals_TwoSteps(t *testing.T) {
	scorer := newTestUrgencyScorer()
	entities := models.Entities{
		models.EntityPersonCount: {"20 people"},
	}

	level := scorer.Score(entities, []models.ClassLabel{{Label: "flood", Confidence: 0.5}}, "20 people trapped")

	assert.Equal(t, models.UrgencyCritical, level)
}

func TestScore_EscalationCappedAtCritical(t *testing.T) {
	scorer := newTestUrgencyScorer()
	entities := models.Entities{
		models.EntityPersonCount: {"50"},
	}

	level := scorer.Score(entities, []models.ClassLabel{{Label: "fire", Confidence: 0.95}}, "50 people trapped, severe burns")

	assert.Equal(t, models.UrgencyCritical, level)
}

func TestScore_ResourceRequestWithoutKeywords_StaysLow(t *testing.T) {
	scorer := newTestUrgencyScorer()
	entities := models.Entities{
		models.EntityResourceNeeded: {"generator"},
	}

	// Просьба о ресурсах без слов эскалации и без классификации
	level := scorer.Score(entities, nil, "no electricity for two days, need a generator")

	assert.Equal(t, models.UrgencyLow, level)
}

func TestScore_MonotonicInSignals(t *testing.T) {
	scorer := newTestUrgencyScorer()
	classification := []models.ClassLabel{{Label: "flood", Confidence: 0.5}}
	withCount := models.Entities{models.EntityPersonCount: {"15"}}

	base := scorer.Score(models.Entities{}, classification, "water in the street")
	withSignal := scorer.Score(withCount, classification, "water in the street")

	// Добавление сигнала не может понизить уровень
	assert.GreaterOrEqual(t, withSignal.Rank(), base.Rank())
}
