package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/careerpath-ph/assessment-api/internal/dto"
	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ScoringPipelineService turns an in-progress assessment's responses into
// stored domain scores and the completed status, atomically, then assembles
// the ranked read-model from the just-committed scores.
type ScoringPipelineService interface {
	Run(assessmentID uint) (*dto.AssessmentResult, error)
}

type scoringPipelineService struct {
	assessmentRepo repository.AssessmentRepository
	scoreRepo      repository.DomainScoreRepository
	aggregator     ScoreAggregatorService
	resultService  ResultService
	db             *gorm.DB
}

func NewScoringPipelineService(
	assessmentRepo repository.AssessmentRepository,
	scoreRepo repository.DomainScoreRepository,
	aggregator ScoreAggregatorService,
	resultService ResultService,
	db *gorm.DB,
) ScoringPipelineService {
	return &scoringPipelineService{
		assessmentRepo: assessmentRepo,
		scoreRepo:      scoreRepo,
		aggregator:     aggregator,
		resultService:  resultService,
		db:             db,
	}
}

// Run executes the scoring transaction: aggregate responses, replace all
// stored domain scores, mark the assessment completed. Any failure rolls the
// whole transaction back and the assessment stays in_progress with its prior
// scores untouched. Only in_progress assessments may be scored; the status
// check runs under a row lock so a concurrent second submit gets ErrConflict
// instead of double-scoring.
//
// Ranking assembly happens after commit and is read-only; if it fails the
// scores are already durable and the caller can retry via result retrieval.
func (s *scoringPipelineService) Run(assessmentID uint) (*dto.AssessmentResult, error) {
	var scores []DomainScoreResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		assessment, err := s.assessmentRepo.FindByIDForUpdate(tx, assessmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("assessment %d: %w", assessmentID, ErrNotFound)
			}
			return err
		}
		if assessment.Status != model.StatusInProgress {
			return fmt.Errorf("assessment %d is %s: %w", assessmentID, assessment.Status, ErrConflict)
		}

		scores, err = s.aggregator.ComputeDomainScoresTx(tx, assessmentID)
		if err != nil {
			return err
		}

		rows := make([]model.DomainScore, 0, len(scores))
		for _, sc := range scores {
			rows = append(rows, model.DomainScore{
				AssessmentID:    assessmentID,
				DomainID:        sc.DomainID,
				RawScore:        sc.RawScore,
				NormalizedScore: sc.NormalizedScore,
			})
		}
		if err := s.scoreRepo.ReplaceForAssessment(tx, assessmentID, rows); err != nil {
			return fmt.Errorf("storing domain scores: %w", err)
		}

		return s.assessmentRepo.MarkCompleted(tx, assessmentID, time.Now())
	})
	if err != nil {
		log.Error().Err(err).Uint("assessment_id", assessmentID).Msg("Scoring transaction rolled back")
		return nil, err
	}

	log.Info().Uint("assessment_id", assessmentID).Int("domains", len(scores)).Msg("Assessment scored")
	return s.resultService.BuildFromScores(scores)
}
