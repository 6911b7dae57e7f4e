package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/careerpath-ph/assessment-api/internal/dto"
	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminService backs the administrative surface: user listings, question
// management (deactivate, never delete), reference-data listings, and the
// analytics dashboard.
type AdminService interface {
	ListUsers(role string, page, limit int) (*dto.UserListResponse, error)
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionAdminItem, error)
	UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*dto.QuestionAdminItem, error)
	DeactivateQuestion(id uint) (*dto.QuestionAdminItem, error)
	ListQuestions(filter repository.QuestionFilter) ([]dto.QuestionAdminItem, error)
	ListDomains() ([]model.Domain, error)
	ListVersions() ([]model.AssessmentVersion, error)
	Analytics() (*dto.AnalyticsResponse, error)
}

type adminService struct {
	userRepo       repository.UserRepository
	questionRepo   repository.QuestionRepository
	domainRepo     repository.DomainRepository
	versionRepo    repository.VersionRepository
	assessmentRepo repository.AssessmentRepository
	scoreRepo      repository.DomainScoreRepository
	weightRepo     repository.WeightRepository
	ranker         RankerService
}

func NewAdminService(
	userRepo repository.UserRepository,
	questionRepo repository.QuestionRepository,
	domainRepo repository.DomainRepository,
	versionRepo repository.VersionRepository,
	assessmentRepo repository.AssessmentRepository,
	scoreRepo repository.DomainScoreRepository,
	weightRepo repository.WeightRepository,
	ranker RankerService,
) AdminService {
	return &adminService{
		userRepo:       userRepo,
		questionRepo:   questionRepo,
		domainRepo:     domainRepo,
		versionRepo:    versionRepo,
		assessmentRepo: assessmentRepo,
		scoreRepo:      scoreRepo,
		weightRepo:     weightRepo,
		ranker:         ranker,
	}
}

func (s *adminService) ListUsers(role string, page, limit int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	users, total, err := s.userRepo.FindPage(role, page, limit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		var item dto.UserDTO
		if err := copier.Copy(&item, &u); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return &dto.UserListResponse{Users: out, Total: total, Page: page, Limit: limit}, nil
}

func (s *adminService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionAdminItem, error) {
	question := &model.Question{
		VersionID:  req.VersionID,
		DomainID:   req.DomainID,
		Text:       req.Text,
		OrderIndex: *req.OrderIndex,
		Active:     true,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}
	log.Info().Uint("question_id", question.ID).Msg("Question created")
	return s.adminItem(question.ID)
}

func (s *adminService) UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*dto.QuestionAdminItem, error) {
	question, err := s.findQuestion(id)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.DomainID != nil {
		question.DomainID = *req.DomainID
	}
	if req.OrderIndex != nil {
		question.OrderIndex = *req.OrderIndex
	}
	if req.Active != nil {
		question.Active = *req.Active
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	return s.adminItem(id)
}

// DeactivateQuestion is the admin "delete": the row stays so historical
// responses keep resolving, it just stops appearing in new questionnaires.
func (s *adminService) DeactivateQuestion(id uint) (*dto.QuestionAdminItem, error) {
	question, err := s.findQuestion(id)
	if err != nil {
		return nil, err
	}
	question.Active = false
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	log.Info().Uint("question_id", id).Msg("Question deactivated")
	return s.adminItem(id)
}

func (s *adminService) ListQuestions(filter repository.QuestionFilter) ([]dto.QuestionAdminItem, error) {
	questions, err := s.questionRepo.FindFiltered(filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.QuestionAdminItem, 0, len(questions))
	for _, q := range questions {
		out = append(out, questionAdminItem(&q))
	}
	return out, nil
}

func (s *adminService) ListDomains() ([]model.Domain, error) {
	return s.domainRepo.FindAll()
}

func (s *adminService) ListVersions() ([]model.AssessmentVersion, error) {
	return s.versionRepo.FindAll()
}

func (s *adminService) Analytics() (*dto.AnalyticsResponse, error) {
	totalStudents, err := s.userRepo.CountByRole(model.RoleStudent)
	if err != nil {
		return nil, err
	}
	totalAssessments, err := s.assessmentRepo.Count()
	if err != nil {
		return nil, err
	}
	completed, err := s.assessmentRepo.CountByStatus(model.StatusCompleted)
	if err != nil {
		return nil, err
	}

	participation := 0.0
	if totalStudents > 0 {
		participation = math1(float64(completed) / float64(totalStudents) * 100)
	}

	dominantMI, strandDist, err := s.perAssessmentTops()
	if err != nil {
		return nil, err
	}

	avgMI, err := s.averages(model.FamilyMI)
	if err != nil {
		return nil, err
	}
	avgRIASEC, err := s.averages(model.FamilyRIASEC)
	if err != nil {
		return nil, err
	}

	recent, err := s.recentAssessments(20)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		Summary: dto.AnalyticsSummary{
			TotalStudents:        totalStudents,
			TotalAssessments:     totalAssessments,
			CompletedAssessments: completed,
			ParticipationRate:    participation,
		},
		DominantMI:         dominantMI,
		StrandDistribution: strandDist,
		AvgMIScores:        avgMI,
		AvgRIASECScores:    avgRIASEC,
		RecentAssessments:  recent,
	}, nil
}

// perAssessmentTops walks every completed assessment once, counting the
// dominant MI domain and the top-ranked strand. Weight rows are loaded a
// single time and reused across assessments.
func (s *adminService) perAssessmentTops() ([]dto.NamedCount, []dto.NamedCount, error) {
	ids, err := s.assessmentRepo.FindCompletedIDs()
	if err != nil {
		return nil, nil, err
	}
	strandWeights, err := s.weightRepo.StrandWeights()
	if err != nil {
		return nil, nil, err
	}

	miCounts := make(map[string]int)
	strandCounts := make(map[string]int)

	for _, id := range ids {
		scores, err := s.scoreRepo.FindByAssessment(id)
		if err != nil {
			return nil, nil, err
		}
		if len(scores) == 0 {
			continue
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
			miCounts[topMI.Domain.Name]++
		}

		ranked := s.ranker.Rank(scoreMap, strandWeights)
		if len(ranked) > 0 {
			strandCounts[ranked[0].Name]++
		}
	}

	return sortedCounts(miCounts), sortedCounts(strandCounts), nil
}

func (s *adminService) averages(family string) ([]dto.NamedAverage, error) {
	rows, err := s.scoreRepo.AverageByFamily(family)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedAverage, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.NamedAverage{Name: row.DomainName, AvgScore: round4(row.AvgScore)})
	}
	return out, nil
}

func (s *adminService) recentAssessments(limit int) ([]dto.RecentAssessment, error) {
	assessments, err := s.assessmentRepo.FindRecentWithUser(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecentAssessment, 0, len(assessments))
	for _, a := range assessments {
		item := dto.RecentAssessment{
			ID:        a.ID,
			Status:    a.Status,
			StartedAt: a.StartedAt.Format(time.RFC3339),
			FirstName: a.User.FirstName,
			LastName:  a.User.LastName,
			Email:     a.User.Email,
		}
		if a.CompletedAt != nil {
			completed := a.CompletedAt.Format(time.RFC3339)
			item.CompletedAt = &completed
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *adminService) findQuestion(id uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return question, nil
}

func (s *adminService) adminItem(id uint) (*dto.QuestionAdminItem, error) {
	question, err := s.questionRepo.FindByIDWithDomain(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	item := questionAdminItem(question)
	return &item, nil
}

func questionAdminItem(q *model.Question) dto.QuestionAdminItem {
	return dto.QuestionAdminItem{
		ID:           q.ID,
		VersionID:    q.VersionID,
		DomainID:     q.DomainID,
		DomainName:   q.Domain.Name,
		DomainFamily: q.Domain.Family,
		Text:         q.Text,
		OrderIndex:   q.OrderIndex,
		Active:       q.Active,
	}
}

func sortedCounts(counts map[string]int) []dto.NamedCount {
	out := make([]dto.NamedCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, dto.NamedCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// math1 rounds to 1 decimal place, used only for the participation rate.
func math1(x float64) float64 {
	return math.Round(x*10) / 10
}
