package service

import (
	"fmt"
	"sort"

	"github.com/careerpath-ph/assessment-api/internal/dto"
	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/repository"
)

// careerSuggestionLimit caps how many careers the read-model keeps. The
// ranker produces the full list; truncation happens here.
const careerSuggestionLimit = 10

// ResultService assembles the combined read-model (MI scores, RIASEC
// scores, strand ranking, career suggestions). Stored domain scores are
// frozen at scoring time; strand and career rankings are recomputed from
// the live weight tables on every read, so editing a weight table reorders
// rankings of old assessments without touching their scores.
type ResultService interface {
	// GetResults reads stored domain scores for a completed assessment.
	// It never re-aggregates from raw responses.
	GetResults(assessmentID uint) (*dto.AssessmentResult, error)
	// BuildFromScores assembles the read-model from aggregator output,
	// used by the pipeline right after commit.
	BuildFromScores(scores []DomainScoreResult) (*dto.AssessmentResult, error)
	// TopStrand names the highest-ranked strand for a normalized
	// domain-score map, or nil when the weight table is empty.
	TopStrand(domainScores map[uint]float64) (*string, error)
}

type resultService struct {
	scoreRepo  repository.DomainScoreRepository
	domainRepo repository.DomainRepository
	weightRepo repository.WeightRepository
	ranker     RankerService
}

func NewResultService(
	scoreRepo repository.DomainScoreRepository,
	domainRepo repository.DomainRepository,
	weightRepo repository.WeightRepository,
	ranker RankerService,
) ResultService {
	return &resultService{
		scoreRepo:  scoreRepo,
		domainRepo: domainRepo,
		weightRepo: weightRepo,
		ranker:     ranker,
	}
}

// scoredDomain carries one domain's score plus the metadata needed to
// partition and label it.
type scoredDomain struct {
	domainID   uint
	name       string
	family     string
	raw        float64
	normalized float64
}

func (s *resultService) GetResults(assessmentID uint) (*dto.AssessmentResult, error) {
	stored, err := s.scoreRepo.FindByAssessment(assessmentID)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, fmt.Errorf("no results for assessment %d: %w", assessmentID, ErrNotFound)
	}

	entries := make([]scoredDomain, 0, len(stored))
	for _, row := range stored {
		entries = append(entries, scoredDomain{
			domainID:   row.DomainID,
			name:       row.Domain.Name,
			family:     row.Domain.Family,
			raw:        row.RawScore,
			normalized: row.NormalizedScore,
		})
	}
	return s.assemble(entries)
}

func (s *resultService) BuildFromScores(scores []DomainScoreResult) (*dto.AssessmentResult, error) {
	domains, err := s.domainRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("loading domains: %w", err)
	}
	byID := make(map[uint]model.Domain, len(domains))
	for _, d := range domains {
		byID[d.ID] = d
	}

	entries := make([]scoredDomain, 0, len(scores))
	for _, sc := range scores {
		d := byID[sc.DomainID]
		entries = append(entries, scoredDomain{
			domainID:   sc.DomainID,
			name:       d.Name,
			family:     d.Family,
			raw:        sc.RawScore,
			normalized: sc.NormalizedScore,
		})
	}
	return s.assemble(entries)
}

func (s *resultService) TopStrand(domainScores map[uint]float64) (*string, error) {
	weights, err := s.weightRepo.StrandWeights()
	if err != nil {
		return nil, err
	}
	ranked := s.ranker.Rank(domainScores, weights)
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0].Name, nil
}

func (s *resultService) assemble(entries []scoredDomain) (*dto.AssessmentResult, error) {
	scoreMap := make(map[uint]float64, len(entries))
	for _, e := range entries {
		scoreMap[e.domainID] = e.normalized
	}

	strandWeights, err := s.weightRepo.StrandWeights()
	if err != nil {
		return nil, fmt.Errorf("loading strand weights: %w", err)
	}
	careerWeights, err := s.weightRepo.CareerWeights()
	if err != nil {
		return nil, fmt.Errorf("loading career weights: %w", err)
	}

	strands := s.ranker.Rank(scoreMap, strandWeights)
	careers := s.ranker.Rank(scoreMap, careerWeights)
	if len(careers) > careerSuggestionLimit {
		careers = careers[:careerSuggestionLimit]
	}

	result := &dto.AssessmentResult{
		MIScores:          partition(entries, model.FamilyMI),
		RIASECScores:      partition(entries, model.FamilyRIASEC),
		StrandRanking:     make([]dto.StrandRankEntry, 0, len(strands)),
		CareerSuggestions: make([]dto.CareerRankEntry, 0, len(careers)),
	}
	for _, st := range strands {
		result.StrandRanking = append(result.StrandRanking, dto.StrandRankEntry{
			StrandID: st.TargetID,
			Strand:   st.Name,
			Score:    st.Score,
		})
	}
	for _, c := range careers {
		result.CareerSuggestions = append(result.CareerSuggestions, dto.CareerRankEntry{
			CareerID:    c.TargetID,
			Career:      c.Name,
			Description: c.Description,
			Score:       c.Score,
		})
	}
	return result, nil
}

// partition selects one family's scores, ordered by normalized score
// descending, domain id ascending on ties.
func partition(entries []scoredDomain, family string) []dto.DomainScoreEntry {
	out := make([]dto.DomainScoreEntry, 0, len(entries))
	for _, e := range entries {
		if e.family != family {
			continue
		}
		out = append(out, dto.DomainScoreEntry{
			DomainID:        e.domainID,
			Domain:          e.name,
			RawScore:        e.raw,
			NormalizedScore: e.normalized,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].NormalizedScore != out[j].NormalizedScore {
			return out[i].NormalizedScore > out[j].NormalizedScore
		}
		return out[i].DomainID < out[j].DomainID
	})
	return out
}
