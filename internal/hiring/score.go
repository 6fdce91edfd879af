package hiring

import "fmt"

// StatusSimulated is set by the backend when the AI provider was
// unavailable and a canned response was returned instead.
const StatusSimulated = "success_simulated"

// Display tiers shared by similarity and evaluation badges. The tier
// only selects visual emphasis, never behaviour.
const (
	TierDefault   = "default"
	TierSecondary = "secondary"
	TierOutline   = "outline"
)

// Average returns the mean of the four ratings.
func (e Evaluation) Average() float64 {
	return float64(e.Relevance+e.TechnicalDepth+e.Clarity+e.Solutions) / 4
}

// Badge formats the similarity verdict for display, e.g. "82.5% - Bueno".
func (s SimilarityResult) Badge() string {
	return fmt.Sprintf("%.1f%% - %s", s.Percentage, s.Level)
}

// Tier maps the categorical similarity level to a display tier.
func (s SimilarityResult) Tier() string {
	switch s.Level {
	case "Excelente":
		return TierDefault
	case "Bueno":
		return TierSecondary
	default:
		return TierOutline
	}
}

// ScoreTier maps a 1-5 rating (or an average of ratings) to a display tier.
func ScoreTier(score float64) string {
	switch {
	case score >= 4:
		return TierDefault
	case score >= 3:
		return TierSecondary
	default:
		return TierOutline
	}
}

// Simulated reports whether the question set came from the fallback path.
func (q QuestionSet) Simulated() bool {
	return q.Status == StatusSimulated || q.Note != ""
}

// Simulated reports whether the evaluation came from the fallback path.
func (a AnswerEvaluation) Simulated() bool {
	return a.Status == StatusSimulated || a.Note != ""
}
