// Package inference simulates image style analysis. The scoring stands in
// for a real vision call: every catalog style gets a confidence and the list
// comes back sorted. A real backend can replace the scorer as long as it
// keeps that contract.
package inference

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/entity"
)

const maxConfidence = 95

type StyleScorer struct {
	store *catalog.Store

	// randFloat returns a value in [0,1). Injectable so tests can pin it.
	randFloat func() float64
}

func NewStyleScorer(store *catalog.Store) *StyleScorer {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &StyleScorer{store: store, randFloat: rng.Float64}
}

// NewStyleScorerWithRand builds a scorer over a caller-supplied random
// source.
func NewStyleScorerWithRand(store *catalog.Store, randFloat func() float64) *StyleScorer {
	return &StyleScorer{store: store, randFloat: randFloat}
}

// Score assigns each catalog style a pseudo-random confidence in [30,95] and
// returns the list sorted by descending confidence. The optional color hint
// boosts scores but does not change which styles appear: the set is always
// the full catalog, each style exactly once.
func (s *StyleScorer) Score(colorHint []string) []entity.StyleScore {
	styles := s.store.Styles()
	scores := make([]entity.StyleScore, 0, len(styles))

	for _, style := range styles {
		score := s.randFloat()*40 + 30
		if len(colorHint) > 0 {
			score += s.randFloat() * 30
		}

		confidence := int(math.Round(score))
		if confidence > maxConfidence {
			confidence = maxConfidence
		}

		scores = append(scores, entity.StyleScore{Style: style, Confidence: confidence})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Confidence > scores[j].Confidence
	})
	return scores
}
