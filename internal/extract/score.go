package extract

import (
	"github.com/inkwell-data/policyscan/internal/model"
)

// Score assigns a confidence in [0,1] as an additive combination of anchor
// proximity, keyword specificity, a table-source bonus, and a validation
// bonus, capped at 1.0. Holding the keyword fixed, confidence is monotonic
// non-increasing in distance-from-anchor.
func Score(c model.Candidate, reg *model.FieldRegistry, cfg Config) model.ScoredCandidate {
	proximity := 1 - float64(c.Distance)/float64(cfg.WindowSize)
	proximity = clamp01(proximity)

	specificity := 0.0
	if longest := reg.LongestKeyword(c.FieldKey); longest > 0 {
		specificity = clamp01(float64(len(c.Anchor.Keyword)) / float64(longest))
	}

	score := proximityWeight*proximity + specificityWeight*specificity
	if c.Source == model.SourceTable {
		score += tableBonus
	}

	outcome := Validate(c, reg, cfg)
	if outcome == model.ValidationPassed {
		score += validationBonus
	}

	if score > 1 {
		score = 1
	}
	return model.ScoredCandidate{Candidate: c, Confidence: score, Validation: outcome}
}

// ScoreAll scores every candidate, preserving input order.
func ScoreAll(candidates []model.Candidate, reg *model.FieldRegistry, cfg Config) []model.ScoredCandidate {
	scored := make([]model.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, Score(c, reg, cfg))
	}
	return scored
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
