package service

import (
	"testing"

	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestComputeDomainScores(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	a := f.newAssessment(t, db, f.user.ID)
	f.answerAll(t, db, a.ID, map[string]int{
		"Logical-Mathematical": 4, // 2 questions × 4 = 8 of 10
		"Linguistic":           2, // 4 of 10
		"Investigative":        3, // 6 of 6
		"Realistic":            1, // 2 of 6
	})

	results, err := svc.aggregator.ComputeDomainScores(a.ID)
	require.NoError(t, err)
	require.Len(t, results, 4)

	byDomain := make(map[uint]DomainScoreResult)
	for _, r := range results {
		byDomain[r.DomainID] = r
	}

	lm := byDomain[f.domains["Logical-Mathematical"].ID]
	assert.Equal(t, 8.0, lm.RawScore)
	assert.Equal(t, 2, lm.QuestionCount)
	assert.Equal(t, 0.8, lm.NormalizedScore)

	lin := byDomain[f.domains["Linguistic"].ID]
	assert.Equal(t, 0.4, lin.NormalizedScore)

	inv := byDomain[f.domains["Investigative"].ID]
	assert.Equal(t, 6.0, inv.RawScore)
	assert.Equal(t, 1.0, inv.NormalizedScore)

	re := byDomain[f.domains["Realistic"].ID]
	// 2 of 6 → round4(1/3)
	assert.Equal(t, 0.3333, re.NormalizedScore)
}

func TestComputeDomainScoresBounds(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	a := f.newAssessment(t, db, f.user.ID)
	f.answerAll(t, db, a.ID, map[string]int{
		"Logical-Mathematical": 5,
		"Linguistic":           5,
		"Investigative":        3,
		"Realistic":            3,
	})

	results, err := svc.aggregator.ComputeDomainScores(a.ID)
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, 1.0, r.NormalizedScore)
	}

	b := f.newAssessment(t, db, f.user.ID)
	f.answerAll(t, db, b.ID, nil) // all 1s

	results, err = svc.aggregator.ComputeDomainScores(b.ID)
	require.NoError(t, err)
	for _, r := range results {
		scale := 0.0
		for _, d := range f.domains {
			if d.ID == r.DomainID {
				scale = float64(d.MaxScale)
			}
		}
		assert.Equal(t, round4(1.0/scale), r.NormalizedScore)
	}
}

func TestComputeDomainScoresInsideOpenTransaction(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	a := f.newAssessment(t, db, f.user.ID)
	f.answerAll(t, db, a.ID, map[string]int{"Logical-Mathematical": 4})

	// The test database holds a single connection, so any aggregator read
	// that escapes the transaction handle would block here instead of
	// returning.
	err := db.Transaction(func(tx *gorm.DB) error {
		results, err := svc.aggregator.ComputeDomainScoresTx(tx, a.ID)
		if err != nil {
			return err
		}
		require.Len(t, results, 4)
		return nil
	})
	require.NoError(t, err)
}

func TestComputeDomainScoresNoResponses(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	a := f.newAssessment(t, db, f.user.ID)

	results, err := svc.aggregator.ComputeDomainScores(a.ID)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestComputeDomainScoresUnknownAssessment(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := newServices(db)

	_, err := svc.aggregator.ComputeDomainScores(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComputeDomainScoresIgnoresOtherVersions(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newServices(db)

	// A question from a retired version must not leak into the aggregate.
	oldVersion := model.AssessmentVersion{Name: "Old", Active: false}
	require.NoError(t, db.Create(&oldVersion).Error)
	oldQ := model.Question{
		VersionID:  oldVersion.ID,
		DomainID:   f.domains["Linguistic"].ID,
		Text:       "retired item",
		OrderIndex: 99,
		Active:     true,
	}
	require.NoError(t, db.Create(&oldQ).Error)

	a := f.newAssessment(t, db, f.user.ID)
	f.answerAll(t, db, a.ID, map[string]int{"Linguistic": 3})
	require.NoError(t, db.Create(&model.Response{
		AssessmentID: a.ID,
		QuestionID:   oldQ.ID,
		Value:        5,
	}).Error)

	results, err := svc.aggregator.ComputeDomainScores(a.ID)
	require.NoError(t, err)

	for _, r := range results {
		if r.DomainID == f.domains["Linguistic"].ID {
			assert.Equal(t, 6.0, r.RawScore)
			assert.Equal(t, 2, r.QuestionCount)
		}
	}
}
