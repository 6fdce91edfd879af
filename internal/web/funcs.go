package web

import (
	"html/template"

	"talentboard/internal/hiring"
)

var templateFuncs = template.FuncMap{
	// Ranking rows are numbered from 1.
	"addOne": func(i int) int { return i + 1 },
	// scoreTier accepts both the int ratings and their float average.
	"scoreTier": func(v any) string {
		switch n := v.(type) {
		case int:
			return hiring.ScoreTier(float64(n))
		case float64:
			return hiring.ScoreTier(n)
		}
		return hiring.TierOutline
	},
}
