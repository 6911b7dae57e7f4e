package seed

import (
	"errors"
	"fmt"

	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Reference loads the reference data every install needs: domains, the
// current assessment version, strands and careers with their weight tables,
// and the questionnaire. Safe to run on every startup; existing rows are
// left alone, and weight and question tables are only filled when empty.
func Reference(db *gorm.DB) error {
	if err := seedDomains(db); err != nil {
		return fmt.Errorf("seeding domains: %w", err)
	}
	if err := seedVersion(db); err != nil {
		return fmt.Errorf("seeding version: %w", err)
	}
	if err := seedNamed(db, strandSeeds, func(n namedSeed) interface{} {
		return &model.Strand{Name: n.Name, Description: n.Description}
	}); err != nil {
		return fmt.Errorf("seeding strands: %w", err)
	}
	if err := seedNamed(db, careerSeeds, func(n namedSeed) interface{} {
		return &model.Career{Name: n.Name, Description: n.Description}
	}); err != nil {
		return fmt.Errorf("seeding careers: %w", err)
	}
	if err := seedStrandWeights(db); err != nil {
		return fmt.Errorf("seeding strand weights: %w", err)
	}
	if err := seedCareerWeights(db); err != nil {
		return fmt.Errorf("seeding career weights: %w", err)
	}
	if err := seedQuestions(db); err != nil {
		return fmt.Errorf("seeding questions: %w", err)
	}

	log.Info().Msg("Reference data loaded")
	return nil
}

func seedDomains(db *gorm.DB) error {
	for _, d := range domainSeeds {
		var domain model.Domain
		err := db.Where("name = ? AND family = ?", d.Name, d.Family).First(&domain).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			domain = model.Domain{Name: d.Name, Family: d.Family, MaxScale: d.MaxScale, Description: d.Description}
			if err := db.Create(&domain).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		case domain.MaxScale != d.MaxScale:
			// Scale corrections propagate to existing installs.
			if err := db.Model(&domain).Update("max_scale", d.MaxScale).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedVersion(db *gorm.DB) error {
	var version model.AssessmentVersion
	return db.Where(model.AssessmentVersion{Name: currentVersionName}).
		Attrs(model.AssessmentVersion{Active: true}).
		FirstOrCreate(&version).Error
}

func seedNamed(db *gorm.DB, seeds []namedSeed, build func(namedSeed) interface{}) error {
	for _, n := range seeds {
		row := build(n)
		if err := db.Where("name = ?", n.Name).FirstOrCreate(row).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedStrandWeights(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.StrandWeight{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	domains, err := domainIDs(db)
	if err != nil {
		return err
	}
	strands := make(map[string]uint)
	var strandRows []model.Strand
	if err := db.Find(&strandRows).Error; err != nil {
		return err
	}
	for _, s := range strandRows {
		strands[s.Name] = s.ID
	}

	rows := make([]model.StrandWeight, 0, len(strandWeightSeeds))
	for _, w := range strandWeightSeeds {
		rows = append(rows, model.StrandWeight{
			StrandID: strands[w.Target],
			DomainID: domains[w.Domain],
			Weight:   w.Weight,
		})
	}
	return db.Create(&rows).Error
}

func seedCareerWeights(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.CareerWeight{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	domains, err := domainIDs(db)
	if err != nil {
		return err
	}
	careers := make(map[string]uint)
	var careerRows []model.Career
	if err := db.Find(&careerRows).Error; err != nil {
		return err
	}
	for _, c := range careerRows {
		careers[c.Name] = c.ID
	}

	rows := make([]model.CareerWeight, 0, len(careerWeightSeeds))
	for _, w := range careerWeightSeeds {
		rows = append(rows, model.CareerWeight{
			CareerID: careers[w.Target],
			DomainID: domains[w.Domain],
			Weight:   w.Weight,
		})
	}
	return db.Create(&rows).Error
}

func seedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var version model.AssessmentVersion
	if err := db.Where("name = ?", currentVersionName).First(&version).Error; err != nil {
		return err
	}
	domains, err := domainIDs(db)
	if err != nil {
		return err
	}

	all := make([]questionSeed, 0, len(mipqQuestionSeeds)+len(riasecQuestionSeeds))
	all = append(all, mipqQuestionSeeds...)
	all = append(all, riasecQuestionSeeds...)

	rows := make([]model.Question, 0, len(all))
	for _, q := range all {
		rows = append(rows, model.Question{
			VersionID:  version.ID,
			DomainID:   domains[q.Domain],
			Text:       q.Text,
			OrderIndex: q.Order,
			Active:     true,
		})
	}
	return db.Create(&rows).Error
}

func domainIDs(db *gorm.DB) (map[string]uint, error) {
	var rows []model.Domain
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]uint, len(rows))
	for _, d := range rows {
		out[d.Name] = d.ID
	}
	return out, nil
}
