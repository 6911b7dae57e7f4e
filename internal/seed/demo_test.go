package seed

import (
	"math/rand"
	"testing"

	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/repository"
	"github.com/careerpath-ph/assessment-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPipeline(db *gorm.DB) service.ScoringPipelineService {
	assessmentRepo := repository.NewAssessmentRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	domainRepo := repository.NewDomainRepository(db)
	scoreRepo := repository.NewDomainScoreRepository(db)
	weightRepo := repository.NewWeightRepository(db)

	ranker := service.NewRankerService()
	aggregator := service.NewScoreAggregatorService(assessmentRepo, responseRepo, domainRepo)
	result := service.NewResultService(scoreRepo, domainRepo, weightRepo, ranker)
	return service.NewScoringPipelineService(assessmentRepo, scoreRepo, aggregator, result, db)
}

func TestDemoGenerator(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Reference(db))

	gen := NewDemoGenerator(db, newPipeline(db), rand.New(rand.NewSource(42)))
	require.NoError(t, gen.Run())

	assert.EqualValues(t, len(demoProfiles), count(t, db, &model.User{}))

	expectedAssessments := 0
	for _, n := range assessmentCounts {
		expectedAssessments += n
	}
	assert.EqualValues(t, expectedAssessments, count(t, db, &model.Assessment{}))

	// Every generated attempt went through the pipeline.
	var open int64
	require.NoError(t, db.Model(&model.Assessment{}).
		Where("status != ?", model.StatusCompleted).Count(&open).Error)
	assert.Zero(t, open)

	var incomplete int64
	require.NoError(t, db.Model(&model.Assessment{}).
		Where("completed_at IS NULL").Count(&incomplete).Error)
	assert.Zero(t, incomplete)

	// One score per domain per assessment.
	assert.EqualValues(t, expectedAssessments*15, count(t, db, &model.DomainScore{}))

	// Values stay inside each domain's scale.
	var outOfRange int64
	require.NoError(t, db.Table("responses").
		Joins("JOIN questions ON questions.id = responses.question_id").
		Joins("JOIN domains ON domains.id = questions.domain_id").
		Where("responses.value < 1 OR responses.value > domains.max_scale").
		Count(&outOfRange).Error)
	assert.Zero(t, outOfRange)
}

func TestDemoGeneratorSkipsWhenPresent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Reference(db))

	gen := NewDemoGenerator(db, newPipeline(db), rand.New(rand.NewSource(42)))
	require.NoError(t, gen.Run())
	users := count(t, db, &model.User{})
	assessments := count(t, db, &model.Assessment{})

	require.NoError(t, gen.Run())
	assert.Equal(t, users, count(t, db, &model.User{}))
	assert.Equal(t, assessments, count(t, db, &model.Assessment{}))
}
