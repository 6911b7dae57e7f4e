package service

import (
	"testing"

	"github.com/careerpath-ph/assessment-api/internal/dto"
	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminService(db *gorm.DB) AdminService {
	return NewAdminService(
		repository.NewUserRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewDomainRepository(db),
		repository.NewVersionRepository(db),
		repository.NewAssessmentRepository(db),
		repository.NewDomainScoreRepository(db),
		repository.NewWeightRepository(db),
		NewRankerService(),
	)
}

func intPtr(v int) *int { return &v }

func TestQuestionLifecycle(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	admin := newAdminService(db)

	created, err := admin.CreateQuestion(dto.CreateQuestionRequest{
		VersionID:  f.version.ID,
		DomainID:   f.domains["Linguistic"].ID,
		Text:       "I enjoy public speaking.",
		OrderIndex: intPtr(50),
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, "Linguistic", created.DomainName)

	newText := "I enjoy debating."
	updated, err := admin.UpdateQuestion(created.ID, dto.UpdateQuestionRequest{Text: &newText})
	require.NoError(t, err)
	assert.Equal(t, newText, updated.Text)
	assert.Equal(t, 50, updated.OrderIndex)

	retired, err := admin.DeactivateQuestion(created.ID)
	require.NoError(t, err)
	assert.False(t, retired.Active)

	// The row survives deactivation.
	var count int64
	require.NoError(t, db.Model(&model.Question{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	active := true
	items, err := admin.ListQuestions(repository.QuestionFilter{VersionID: f.version.ID, Active: &active})
	require.NoError(t, err)
	assert.Len(t, items, len(f.questions))
	for _, item := range items {
		assert.NotEqual(t, created.ID, item.ID)
	}
}

func TestDeactivatedQuestionLeavesQuestionnaire(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)
	admin := newAdminService(db)

	_, err := admin.DeactivateQuestion(f.questions[0].ID)
	require.NoError(t, err)

	a := f.newAssessment(t, db, f.user.ID)
	resp, err := svc.assessment.GetQuestions(a.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, len(f.questions)-1)
}

func TestUpdateUnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	admin := newAdminService(db)

	text := "x"
	_, err := admin.UpdateQuestion(9999, dto.UpdateQuestionRequest{Text: &text})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsersPagination(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db) // creates one student
	admin := newAdminService(db)

	for _, email := range []string{"a@test.local", "b@test.local", "c@test.local"} {
		require.NoError(t, db.Create(&model.User{
			Email: email, PasswordHash: "x", FirstName: "A", LastName: "B", Role: model.RoleStudent,
		}).Error)
	}

	page1, err := admin.ListUsers(model.RoleStudent, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, page1.Total)
	assert.Len(t, page1.Users, 2)

	page2, err := admin.ListUsers(model.RoleStudent, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Users, 2)
	assert.NotEqual(t, page1.Users[0].ID, page2.Users[0].ID)
}

func TestAnalytics(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)
	admin := newAdminService(db)

	f.addStrand(t, db, "STEM", map[string]float64{"Logical-Mathematical": 1.0})
	f.addStrand(t, db, "HUMSS", map[string]float64{"Linguistic": 1.0})

	// One completed STEM-leaning attempt, one still open.
	a := f.newAssessment(t, db, f.user.ID)
	f.answerAll(t, db, a.ID, map[string]int{"Logical-Mathematical": 5, "Linguistic": 2})
	_, err := svc.pipeline.Run(a.ID)
	require.NoError(t, err)
	f.newAssessment(t, db, f.user.ID)

	resp, err := admin.Analytics()
	require.NoError(t, err)

	assert.EqualValues(t, 1, resp.Summary.TotalStudents)
	assert.EqualValues(t, 2, resp.Summary.TotalAssessments)
	assert.EqualValues(t, 1, resp.Summary.CompletedAssessments)
	assert.Equal(t, 100.0, resp.Summary.ParticipationRate)

	require.NotEmpty(t, resp.DominantMI)
	assert.Equal(t, "Logical-Mathematical", resp.DominantMI[0].Name)
	assert.Equal(t, 1, resp.DominantMI[0].Count)

	require.NotEmpty(t, resp.StrandDistribution)
	assert.Equal(t, "STEM", resp.StrandDistribution[0].Name)

	require.Len(t, resp.AvgMIScores, 2)
	for _, avg := range resp.AvgMIScores {
		if avg.Name == "Logical-Mathematical" {
			assert.Equal(t, 1.0, avg.AvgScore)
		}
	}

	require.Len(t, resp.RecentAssessments, 2)
	assert.Equal(t, f.user.Email, resp.RecentAssessments[0].Email)
}

func TestAnalyticsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	admin := newAdminService(db)

	resp, err := admin.Analytics()
	require.NoError(t, err)
	assert.Zero(t, resp.Summary.TotalStudents)
	assert.Zero(t, resp.Summary.ParticipationRate)
	assert.Empty(t, resp.DominantMI)
	assert.Empty(t, resp.RecentAssessments)
}
