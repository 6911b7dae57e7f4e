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

// AssessmentService covers the attempt lifecycle around the scoring core:
// starting an attempt, serving its questionnaire, validating and accepting a
// submission, and listing a student's history.
type AssessmentService interface {
	Start(userID uint) (*dto.StartAssessmentResponse, error)
	GetQuestions(assessmentID uint) (*dto.QuestionListResponse, error)
	Submit(assessmentID, userID uint, req dto.SubmitRequest) (*dto.AssessmentResult, error)
	History(userID uint) (*dto.HistoryResponse, error)
	// OwnedAssessment loads an assessment with its user, enforcing that the
	// caller owns it. Admins may read anyone's.
	OwnedAssessment(assessmentID, userID uint, role string) (*model.Assessment, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	versionRepo    repository.VersionRepository
	questionRepo   repository.QuestionRepository
	responseRepo   repository.ResponseRepository
	scoreRepo      repository.DomainScoreRepository
	pipeline       ScoringPipelineService
	resultService  ResultService
	db             *gorm.DB
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	versionRepo repository.VersionRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	scoreRepo repository.DomainScoreRepository,
	pipeline ScoringPipelineService,
	resultService ResultService,
	db *gorm.DB,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		versionRepo:    versionRepo,
		questionRepo:   questionRepo,
		responseRepo:   responseRepo,
		scoreRepo:      scoreRepo,
		pipeline:       pipeline,
		resultService:  resultService,
		db:             db,
	}
}

// Start creates a new in_progress assessment against the current question
// version. The existing-attempt lookup and the insert run in one transaction
// with the lookup row-locked, so two concurrent starts cannot both succeed.
func (s *assessmentService) Start(userID uint) (*dto.StartAssessmentResponse, error) {
	var resp dto.StartAssessmentResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.assessmentRepo.FindInProgressByUserLocked(tx, userID)
		if err == nil {
			return fmt.Errorf("assessment %d already in progress: %w", existing.ID, ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		version, err := s.versionRepo.FindCurrent(tx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("no active assessment version: %w", ErrNotFound)
			}
			return err
		}

		assessment := &model.Assessment{
			UserID:    userID,
			VersionID: version.ID,
			Status:    model.StatusInProgress,
			StartedAt: time.Now(),
		}
		if err := s.assessmentRepo.Create(tx, assessment); err != nil {
			return err
		}

		total, err := s.questionRepo.CountActiveByVersion(tx, version.ID)
		if err != nil {
			return err
		}

		resp = dto.StartAssessmentResponse{
			Message: "Assessment started",
			Assessment: dto.AssessmentSummary{
				ID:             assessment.ID,
				VersionID:      assessment.VersionID,
				Status:         assessment.Status,
				StartedAt:      assessment.StartedAt,
				TotalQuestions: total,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("user_id", userID).Uint("assessment_id", resp.Assessment.ID).Msg("Assessment started")
	return &resp, nil
}

func (s *assessmentService) GetQuestions(assessmentID uint) (*dto.QuestionListResponse, error) {
	assessment, err := s.findAssessment(assessmentID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.FindActiveByVersion(assessment.VersionID)
	if err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.FindByAssessment(assessmentID)
	if err != nil {
		return nil, err
	}
	answered := make(map[uint]int, len(responses))
	for _, r := range responses {
		answered[r.QuestionID] = r.Value
	}

	resp := &dto.QuestionListResponse{
		AssessmentID: assessment.ID,
		Status:       assessment.Status,
		Questions:    make([]dto.QuestionItem, 0, len(questions)),
	}
	for _, q := range questions {
		item := dto.QuestionItem{
			ID:           q.ID,
			Text:         q.Text,
			OrderIndex:   q.OrderIndex,
			DomainName:   q.Domain.Name,
			DomainFamily: q.Domain.Family,
			MaxScale:     q.Domain.MaxScale,
		}
		if value, ok := answered[q.ID]; ok {
			v := value
			item.CurrentAnswer = &v
		}
		resp.Questions = append(resp.Questions, item)
	}
	return resp, nil
}

// Submit validates the full response set, replaces the assessment's stored
// responses, and runs the scoring pipeline. The completeness and bounds
// checks live here, before the pipeline; the pipeline assumes validated
// input. Nothing is written when validation fails.
func (s *assessmentService) Submit(assessmentID, userID uint, req dto.SubmitRequest) (*dto.AssessmentResult, error) {
	assessment, err := s.findAssessment(assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.UserID != userID {
		return nil, fmt.Errorf("assessment %d: %w", assessmentID, ErrNotFound)
	}
	if assessment.Status == model.StatusCompleted {
		return nil, fmt.Errorf("assessment %d already completed: %w", assessmentID, ErrConflict)
	}

	questions, err := s.questionRepo.FindActiveByVersion(assessment.VersionID)
	if err != nil {
		return nil, err
	}
	expected := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		expected[q.ID] = q
	}

	submitted := make(map[uint]int, len(req.Responses))
	for _, r := range req.Responses {
		question, ok := expected[r.QuestionID]
		if !ok {
			return nil, fmt.Errorf("invalid question_id %d: %w", r.QuestionID, ErrValidation)
		}
		if _, dup := submitted[r.QuestionID]; dup {
			return nil, fmt.Errorf("duplicate response for question %d: %w", r.QuestionID, ErrValidation)
		}
		if r.Value < 1 || r.Value > question.Domain.MaxScale {
			return nil, fmt.Errorf("value for question %d must be 1-%d: %w", r.QuestionID, question.Domain.MaxScale, ErrValidation)
		}
		submitted[r.QuestionID] = r.Value
	}
	for id := range expected {
		if _, ok := submitted[id]; !ok {
			return nil, fmt.Errorf("missing response for question %d: %w", id, ErrValidation)
		}
	}

	rows := make([]model.Response, 0, len(req.Responses))
	for _, r := range req.Responses {
		rows = append(rows, model.Response{
			AssessmentID: assessmentID,
			QuestionID:   r.QuestionID,
			Value:        r.Value,
		})
	}
	if err := s.responseRepo.ReplaceForAssessment(assessmentID, rows); err != nil {
		return nil, fmt.Errorf("saving responses: %w", err)
	}

	return s.pipeline.Run(assessmentID)
}

func (s *assessmentService) History(userID uint) (*dto.HistoryResponse, error) {
	assessments, err := s.assessmentRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.HistoryResponse{Assessments: make([]dto.HistoryEntry, 0, len(assessments))}
	for _, a := range assessments {
		entry := dto.HistoryEntry{
			ID:          a.ID,
			Status:      a.Status,
			StartedAt:   a.StartedAt,
			CompletedAt: a.CompletedAt,
			VersionName: a.Version.Name,
		}
		if a.Status == model.StatusCompleted {
			if err := s.fillHistoryTops(&entry, a.ID); err != nil {
				log.Warn().Err(err).Uint("assessment_id", a.ID).Msg("History: could not derive top scores")
			}
		}
		resp.Assessments = append(resp.Assessments, entry)
	}
	return resp, nil
}

func (s *assessmentService) fillHistoryTops(entry *dto.HistoryEntry, assessmentID uint) error {
	scores, err := s.scoreRepo.FindByAssessment(assessmentID)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		return nil
	}

	scoreMap := make(map[uint]float64, len(scores))
	var topMI *model.DomainScore
	for i := range scores {
		sc := &scores[i]
		scoreMap[sc.DomainID] = sc.NormalizedScore
		if sc.Domain.Family != model.FamilyMI {
			continue
		}
		if topMI == nil || sc.NormalizedScore > topMI.NormalizedScore {
			topMI = sc
		}
	}
	if topMI != nil {
		name := topMI.Domain.Name
		entry.TopMI = &name
	}

	topStrand, err := s.resultService.TopStrand(scoreMap)
	if err != nil {
		return err
	}
	entry.TopStrand = topStrand
	return nil
}

func (s *assessmentService) OwnedAssessment(assessmentID, userID uint, role string) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.FindByIDWithUser(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assessment %d: %w", assessmentID, ErrNotFound)
		}
		return nil, err
	}
	if assessment.UserID != userID && role != model.RoleAdmin {
		return nil, fmt.Errorf("assessment %d: %w", assessmentID, ErrNotFound)
	}
	return assessment, nil
}

func (s *assessmentService) findAssessment(assessmentID uint) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.FindByID(nil, assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assessment %d: %w", assessmentID, ErrNotFound)
		}
		return nil, err
	}
	return assessment, nil
}
