package service

import (
	"errors"
	"fmt"

	"github.com/careerpath-ph/assessment-api/internal/repository"
	"gorm.io/gorm"
)

// DomainScoreResult is the aggregator's per-domain output.
type DomainScoreResult struct {
	DomainID        uint    `json:"domain_id"`
	RawScore        float64 `json:"raw_score"`
	QuestionCount   int     `json:"question_count"`
	NormalizedScore float64 `json:"normalized_score"`
}

// ScoreAggregatorService reduces an assessment's raw responses into one
// normalized score per answered domain. Pure read, no side effects.
type ScoreAggregatorService interface {
	ComputeDomainScores(assessmentID uint) ([]DomainScoreResult, error)
	// ComputeDomainScoresTx runs the same aggregation through the given
	// transaction handle, for use inside the scoring pipeline. tx may be
	// nil, in which case the base connection is used.
	ComputeDomainScoresTx(tx *gorm.DB, assessmentID uint) ([]DomainScoreResult, error)
}

type scoreAggregatorService struct {
	assessmentRepo repository.AssessmentRepository
	responseRepo   repository.ResponseRepository
	domainRepo     repository.DomainRepository
}

func NewScoreAggregatorService(
	assessmentRepo repository.AssessmentRepository,
	responseRepo repository.ResponseRepository,
	domainRepo repository.DomainRepository,
) ScoreAggregatorService {
	return &scoreAggregatorService{
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
		domainRepo:     domainRepo,
	}
}

func (s *scoreAggregatorService) ComputeDomainScores(assessmentID uint) ([]DomainScoreResult, error) {
	return s.ComputeDomainScoresTx(nil, assessmentID)
}

func (s *scoreAggregatorService) ComputeDomainScoresTx(tx *gorm.DB, assessmentID uint) ([]DomainScoreResult, error) {
	assessment, err := s.assessmentRepo.FindByID(tx, assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assessment %d: %w", assessmentID, ErrNotFound)
		}
		return nil, err
	}

	maxScales, err := s.domainRepo.MaxScaleByID(tx)
	if err != nil {
		return nil, fmt.Errorf("loading domain scales: %w", err)
	}

	aggregates, err := s.responseRepo.AggregateByDomain(tx, assessmentID, assessment.VersionID)
	if err != nil {
		return nil, fmt.Errorf("aggregating responses for assessment %d: %w", assessmentID, err)
	}

	// No responses yet is an empty result, not an error.
	results := make([]DomainScoreResult, 0, len(aggregates))
	for _, agg := range aggregates {
		maxScale, ok := maxScales[agg.DomainID]
		if !ok || maxScale <= 0 {
			maxScale = 5
		}
		denominator := float64(agg.QuestionCount * maxScale)
		results = append(results, DomainScoreResult{
			DomainID:        agg.DomainID,
			RawScore:        agg.RawScore,
			QuestionCount:   agg.QuestionCount,
			NormalizedScore: round4(agg.RawScore / denominator),
		})
	}
	return results, nil
}
