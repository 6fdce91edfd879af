package hiring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluationAverage(t *testing.T) {
	tests := []struct {
		name string
		eval Evaluation
		want float64
	}{
		{"mixed ratings", Evaluation{Relevance: 5, TechnicalDepth: 4, Clarity: 3, Solutions: 4}, 4.0},
		{"all minimum", Evaluation{Relevance: 1, TechnicalDepth: 1, Clarity: 1, Solutions: 1}, 1.0},
		{"all maximum", Evaluation{Relevance: 5, TechnicalDepth: 5, Clarity: 5, Solutions: 5}, 5.0},
		{"quarter step", Evaluation{Relevance: 4, TechnicalDepth: 4, Clarity: 4, Solutions: 3}, 3.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.eval.Average())
		})
	}
}

func TestSimilarityBadge(t *testing.T) {
	result := SimilarityResult{Score: 0.825, Percentage: 82.5, Level: "Bueno"}
	assert.Equal(t, "82.5% - Bueno", result.Badge())
}

func TestSimilarityTier(t *testing.T) {
	assert.Equal(t, TierDefault, SimilarityResult{Level: "Excelente"}.Tier())
	assert.Equal(t, TierSecondary, SimilarityResult{Level: "Bueno"}.Tier())
	assert.Equal(t, TierOutline, SimilarityResult{Level: "Regular"}.Tier())
	assert.Equal(t, TierOutline, SimilarityResult{Level: "Bajo"}.Tier())
}

func TestScoreTier(t *testing.T) {
	assert.Equal(t, TierDefault, ScoreTier(4.0))
	assert.Equal(t, TierSecondary, ScoreTier(3.5))
	assert.Equal(t, TierOutline, ScoreTier(2.9))
}

func TestSimulated(t *testing.T) {
	assert.False(t, QuestionSet{Status: "success"}.Simulated())
	assert.True(t, QuestionSet{Status: StatusSimulated}.Simulated())
	assert.True(t, QuestionSet{Status: "success", Note: "Ollama no disponible"}.Simulated())

	assert.False(t, AnswerEvaluation{Status: "success"}.Simulated())
	assert.True(t, AnswerEvaluation{Status: StatusSimulated}.Simulated())
}
