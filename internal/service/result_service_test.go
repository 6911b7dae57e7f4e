package service

import (
	"fmt"
	"testing"

	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResultsNotFoundWithoutScores(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	a := f.newAssessment(t, db, f.user.ID)
	_, err := svc.result.GetResults(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetResultsRanksWithLiveWeights(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	stem := f.addStrand(t, db, "STEM", map[string]float64{"Logical-Mathematical": 1.0})
	f.addStrand(t, db, "HUMSS", map[string]float64{"Linguistic": 1.0})

	a := f.newAssessment(t, db, f.user.ID)
	f.answerAll(t, db, a.ID, map[string]int{
		"Logical-Mathematical": 5, // 1.0
		"Linguistic":           4, // 0.8
	})
	_, err := svc.pipeline.Run(a.ID)
	require.NoError(t, err)

	before, err := svc.result.GetResults(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "STEM", before.StrandRanking[0].Strand)

	// Cutting STEM's weight reorders the old assessment's ranking without
	// touching its stored scores.
	require.NoError(t, db.Model(&model.StrandWeight{}).
		Where("strand_id = ?", stem.ID).
		Update("weight", 0.1).Error)

	after, err := svc.result.GetResults(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "HUMSS", after.StrandRanking[0].Strand)
	assert.Equal(t, before.MIScores, after.MIScores)
	assert.Equal(t, before.RIASECScores, after.RIASECScores)
}

func TestCareerSuggestionsTruncatedToTen(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	for i := 1; i <= 13; i++ {
		f.addCareer(t, db, fmt.Sprintf("Career %02d", i), map[string]float64{
			"Logical-Mathematical": float64(i) * 0.01,
		})
	}

	a := f.newAssessment(t, db, f.user.ID)
	f.answerAll(t, db, a.ID, map[string]int{"Logical-Mathematical": 5})

	result, err := svc.pipeline.Run(a.ID)
	require.NoError(t, err)
	require.Len(t, result.CareerSuggestions, 10)
	// Highest-weighted career leads; the three weakest fall off the list.
	assert.Equal(t, "Career 13", result.CareerSuggestions[0].Career)
	assert.Equal(t, "Career 04", result.CareerSuggestions[9].Career)
}

func TestTopStrand(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	top, err := svc.result.TopStrand(map[uint]float64{f.domains["Linguistic"].ID: 1.0})
	require.NoError(t, err)
	assert.Nil(t, top) // no weight table yet

	f.addStrand(t, db, "HUMSS", map[string]float64{"Linguistic": 1.0})
	f.addStrand(t, db, "STEM", map[string]float64{"Logical-Mathematical": 1.0})

	top, err = svc.result.TopStrand(map[uint]float64{f.domains["Linguistic"].ID: 1.0})
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, "HUMSS", *top)
}

func TestScorePartitionOrdering(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	a := f.newAssessment(t, db, f.user.ID)
	f.answerAll(t, db, a.ID, map[string]int{
		"Logical-Mathematical": 2,
		"Linguistic":           4,
		"Investigative":        1,
		"Realistic":            3,
	})
	_, err := svc.pipeline.Run(a.ID)
	require.NoError(t, err)

	result, err := svc.result.GetResults(a.ID)
	require.NoError(t, err)

	require.Len(t, result.MIScores, 2)
	assert.Equal(t, "Linguistic", result.MIScores[0].Domain)
	assert.Equal(t, "Logical-Mathematical", result.MIScores[1].Domain)

	require.Len(t, result.RIASECScores, 2)
	assert.Equal(t, "Realistic", result.RIASECScores[0].Domain)
	assert.Equal(t, "Investigative", result.RIASECScores[1].Domain)
}
