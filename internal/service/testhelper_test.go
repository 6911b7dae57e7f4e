package service

import (
	"testing"
	"time"

	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.AssessmentVersion{},
		&model.Domain{},
		&model.Question{},
		&model.Assessment{},
		&model.Response{},
		&model.DomainScore{},
		&model.Strand{},
		&model.StrandWeight{},
		&model.Career{},
		&model.CareerWeight{},
	))
	return db
}

// services bundles every service over one database so tests can exercise
// the real wiring instead of mocks.
type services struct {
	db         *gorm.DB
	aggregator ScoreAggregatorService
	ranker     RankerService
	result     ResultService
	pipeline   ScoringPipelineService
	assessment AssessmentService
}

func newServices(db *gorm.DB) *services {
	versionRepo := repository.NewVersionRepository(db)
	domainRepo := repository.NewDomainRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	scoreRepo := repository.NewDomainScoreRepository(db)
	weightRepo := repository.NewWeightRepository(db)

	ranker := NewRankerService()
	aggregator := NewScoreAggregatorService(assessmentRepo, responseRepo, domainRepo)
	result := NewResultService(scoreRepo, domainRepo, weightRepo, ranker)
	pipeline := NewScoringPipelineService(assessmentRepo, scoreRepo, aggregator, result, db)
	assessment := NewAssessmentService(assessmentRepo, versionRepo, questionRepo, responseRepo, scoreRepo, pipeline, result, db)

	return &services{
		db:         db,
		aggregator: aggregator,
		ranker:     ranker,
		result:     result,
		pipeline:   pipeline,
		assessment: assessment,
	}
}

// fixture is a small but complete scoring universe: two MI domains on the
// 1-5 scale, two RIASEC domains on 1-3, two questions per domain, one
// active version, one student.
type fixture struct {
	user      model.User
	version   model.AssessmentVersion
	domains   map[string]model.Domain
	questions []model.Question
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	f := &fixture{domains: make(map[string]model.Domain)}

	f.version = model.AssessmentVersion{Name: "Test Inventory v1", Active: true}
	require.NoError(t, db.Create(&f.version).Error)

	domainSpecs := []struct {
		name     string
		family   string
		maxScale int
	}{
		{"Logical-Mathematical", model.FamilyMI, 5},
		{"Linguistic", model.FamilyMI, 5},
		{"Investigative", model.FamilyRIASEC, 3},
		{"Realistic", model.FamilyRIASEC, 3},
	}
	order := 1
	for _, spec := range domainSpecs {
		d := model.Domain{Name: spec.name, Family: spec.family, MaxScale: spec.maxScale}
		require.NoError(t, db.Create(&d).Error)
		f.domains[spec.name] = d

		for i := 0; i < 2; i++ {
			q := model.Question{
				VersionID:  f.version.ID,
				DomainID:   d.ID,
				Text:       spec.name + " item",
				OrderIndex: order,
				Active:     true,
			}
			require.NoError(t, db.Create(&q).Error)
			f.questions = append(f.questions, q)
			order++
		}
	}

	f.user = model.User{
		Email:        "student@test.local",
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "Student",
		Role:         model.RoleStudent,
	}
	require.NoError(t, db.Create(&f.user).Error)

	return f
}

func (f *fixture) newAssessment(t *testing.T, db *gorm.DB, userID uint) model.Assessment {
	t.Helper()
	a := model.Assessment{
		UserID:    userID,
		VersionID: f.version.ID,
		Status:    model.StatusInProgress,
		StartedAt: time.Now(),
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

// answerAll writes one response per question, with per-domain values taken
// from the map (falling back to 1).
func (f *fixture) answerAll(t *testing.T, db *gorm.DB, assessmentID uint, valueByDomain map[string]int) {
	t.Helper()
	byID := make(map[uint]string, len(f.domains))
	for name, d := range f.domains {
		byID[d.ID] = name
	}
	for _, q := range f.questions {
		value := valueByDomain[byID[q.DomainID]]
		if value == 0 {
			value = 1
		}
		require.NoError(t, db.Create(&model.Response{
			AssessmentID: assessmentID,
			QuestionID:   q.ID,
			Value:        value,
		}).Error)
	}
}

func (f *fixture) addStrand(t *testing.T, db *gorm.DB, name string, weights map[string]float64) model.Strand {
	t.Helper()
	s := model.Strand{Name: name}
	require.NoError(t, db.Create(&s).Error)
	for domainName, w := range weights {
		require.NoError(t, db.Create(&model.StrandWeight{
			StrandID: s.ID,
			DomainID: f.domains[domainName].ID,
			Weight:   w,
		}).Error)
	}
	return s
}

func (f *fixture) addCareer(t *testing.T, db *gorm.DB, name string, weights map[string]float64) model.Career {
	t.Helper()
	c := model.Career{Name: name, Description: name + " description"}
	require.NoError(t, db.Create(&c).Error)
	for domainName, w := range weights {
		require.NoError(t, db.Create(&model.CareerWeight{
			CareerID: c.ID,
			DomainID: f.domains[domainName].ID,
			Weight:   w,
		}).Error)
	}
	return c
}
