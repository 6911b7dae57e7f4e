package seed

import (
	"math"
	"testing"
	"time"

	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/stretchr/testify/assert"
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

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestReferenceLoadsEverything(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Reference(db))

	assert.EqualValues(t, 15, count(t, db, &model.Domain{}))
	assert.EqualValues(t, 1, count(t, db, &model.AssessmentVersion{}))
	assert.EqualValues(t, 7, count(t, db, &model.Strand{}))
	assert.EqualValues(t, 25, count(t, db, &model.Career{}))
	assert.EqualValues(t, 71, count(t, db, &model.Question{}))
	assert.EqualValues(t, len(strandWeightSeeds), count(t, db, &model.StrandWeight{}))
	assert.EqualValues(t, len(careerWeightSeeds), count(t, db, &model.CareerWeight{}))

	var mi, riasec int64
	require.NoError(t, db.Model(&model.Domain{}).Where("family = ?", model.FamilyMI).Count(&mi).Error)
	require.NoError(t, db.Model(&model.Domain{}).Where("family = ?", model.FamilyRIASEC).Count(&riasec).Error)
	assert.EqualValues(t, 9, mi)
	assert.EqualValues(t, 6, riasec)

	var version model.AssessmentVersion
	require.NoError(t, db.First(&version).Error)
	assert.True(t, version.Active)
}

func TestReferenceIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Reference(db))
	require.NoError(t, Reference(db))

	assert.EqualValues(t, 15, count(t, db, &model.Domain{}))
	assert.EqualValues(t, 7, count(t, db, &model.Strand{}))
	assert.EqualValues(t, 25, count(t, db, &model.Career{}))
	assert.EqualValues(t, 71, count(t, db, &model.Question{}))
	assert.EqualValues(t, len(strandWeightSeeds), count(t, db, &model.StrandWeight{}))
	assert.EqualValues(t, len(careerWeightSeeds), count(t, db, &model.CareerWeight{}))
}

func TestReferenceCorrectsChangedScale(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Reference(db))

	require.NoError(t, db.Model(&model.Domain{}).
		Where("name = ?", "Realistic").
		Update("max_scale", 5).Error)

	require.NoError(t, Reference(db))

	var realistic model.Domain
	require.NoError(t, db.Where("name = ?", "Realistic").First(&realistic).Error)
	assert.Equal(t, 3, realistic.MaxScale)
}

// TestScoringAgainstReferenceData runs one full attempt over the production
// question set: every MI item answered 5, every RIASEC item answered 1.
func TestScoringAgainstReferenceData(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Reference(db))

	user := model.User{
		Email:        "scenario@test.local",
		PasswordHash: "x",
		FirstName:    "Scenario",
		LastName:     "Student",
		Role:         model.RoleStudent,
	}
	require.NoError(t, db.Create(&user).Error)

	var version model.AssessmentVersion
	require.NoError(t, db.Where("active = ?", true).Order("id DESC").First(&version).Error)

	assessment := model.Assessment{
		UserID:    user.ID,
		VersionID: version.ID,
		Status:    model.StatusInProgress,
		StartedAt: time.Now(),
	}
	require.NoError(t, db.Create(&assessment).Error)

	familyByDomainID := make(map[uint]string)
	var domains []model.Domain
	require.NoError(t, db.Find(&domains).Error)
	for _, d := range domains {
		familyByDomainID[d.ID] = d.Family
	}

	var questions []model.Question
	require.NoError(t, db.Where("version_id = ? AND active = ?", version.ID, true).Find(&questions).Error)
	require.Len(t, questions, 71)
	for _, q := range questions {
		value := 5
		if familyByDomainID[q.DomainID] == model.FamilyRIASEC {
			value = 1
		}
		require.NoError(t, db.Create(&model.Response{
			AssessmentID: assessment.ID,
			QuestionID:   q.ID,
			Value:        value,
		}).Error)
	}

	result, err := newPipeline(db).Run(assessment.ID)
	require.NoError(t, err)

	require.Len(t, result.MIScores, 9)
	for _, s := range result.MIScores {
		assert.Equal(t, 1.0, s.NormalizedScore, "MI domain %s", s.Domain)
	}
	require.Len(t, result.RIASECScores, 6)
	for _, s := range result.RIASECScores {
		assert.Equal(t, 0.3333, s.NormalizedScore, "RIASEC domain %s", s.Domain)
	}

	// Expected rankings follow directly from the weight tables: each MI
	// domain contributes its full weight, each RIASEC domain a third.
	familyByName := make(map[string]string, len(domainSeeds))
	for _, d := range domainSeeds {
		familyByName[d.Name] = d.Family
	}
	expected := func(seeds []weightSeed) map[string]float64 {
		totals := make(map[string]float64)
		for _, w := range seeds {
			score := 1.0
			if familyByName[w.Domain] == model.FamilyRIASEC {
				score = 0.3333
			}
			totals[w.Target] += w.Weight * score
		}
		for target, total := range totals {
			totals[target] = math.Round(total*10000) / 10000
		}
		return totals
	}

	expectedStrands := expected(strandWeightSeeds)
	require.Len(t, result.StrandRanking, 7)
	for i, entry := range result.StrandRanking {
		assert.Equal(t, expectedStrands[entry.Strand], entry.Score, "strand %s", entry.Strand)
		if i > 0 {
			assert.GreaterOrEqual(t, result.StrandRanking[i-1].Score, entry.Score)
		}
	}

	expectedCareers := expected(careerWeightSeeds)
	require.Len(t, result.CareerSuggestions, 10)
	for i, entry := range result.CareerSuggestions {
		assert.Equal(t, expectedCareers[entry.Career], entry.Score, "career %s", entry.Career)
		if i > 0 {
			assert.GreaterOrEqual(t, result.CareerSuggestions[i-1].Score, entry.Score)
		}
	}

	var stored model.Assessment
	require.NoError(t, db.First(&stored, assessment.ID).Error)
	assert.Equal(t, model.StatusCompleted, stored.Status)
	assert.EqualValues(t, 15, count(t, db, &model.DomainScore{}))
}

func TestStrandWeightsSumToOne(t *testing.T) {
	totals := make(map[string]float64)
	for _, w := range strandWeightSeeds {
		totals[w.Target] += w.Weight
	}
	require.Len(t, totals, 7)
	for strand, total := range totals {
		assert.InDelta(t, 1.0, total, 1e-9, "strand %s", strand)
	}
}

func TestCareerWeightsSumToOne(t *testing.T) {
	totals := make(map[string]float64)
	for _, w := range careerWeightSeeds {
		totals[w.Target] += w.Weight
	}
	require.Len(t, totals, 25)
	for career, total := range totals {
		assert.InDelta(t, 1.0, total, 1e-9, "career %s", career)
	}
}
