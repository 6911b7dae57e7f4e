package service

import (
	"sort"

	"github.com/careerpath-ph/assessment-api/internal/repository"
)

// RankedTarget is one strand or career with its weighted-sum score.
type RankedTarget struct {
	TargetID    uint    `json:"target_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// RankerService scores every target in a weight table against a
// domain-score map and orders the result. Strands and careers share the
// algorithm; only the weight table differs.
type RankerService interface {
	Rank(domainScores map[uint]float64, weights []repository.WeightRow) []RankedTarget
}

type rankerService struct{}

func NewRankerService() RankerService {
	return &rankerService{}
}

// Rank computes score = Σ domainScores[domain_id] × weight per target.
// Domains weighted but absent from the score map contribute 0. Scores are
// rounded to 4 decimals; ordering is score descending, target id ascending
// on ties, so equal-score output is deterministic. An empty weight table
// yields an empty ranking.
func (r *rankerService) Rank(domainScores map[uint]float64, weights []repository.WeightRow) []RankedTarget {
	type accum struct {
		name        string
		description string
		score       float64
	}
	totals := make(map[uint]*accum)
	order := make([]uint, 0)

	for _, w := range weights {
		entry, ok := totals[w.TargetID]
		if !ok {
			entry = &accum{name: w.TargetName, description: w.Description}
			totals[w.TargetID] = entry
			order = append(order, w.TargetID)
		}
		entry.score += domainScores[w.DomainID] * w.Weight
	}

	ranked := make([]RankedTarget, 0, len(order))
	for _, id := range order {
		entry := totals[id]
		ranked = append(ranked, RankedTarget{
			TargetID:    id,
			Name:        entry.name,
			Description: entry.description,
			Score:       round4(entry.score),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].TargetID < ranked[j].TargetID
	})
	return ranked
}
