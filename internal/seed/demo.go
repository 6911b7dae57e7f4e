package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// demoPassword is shared by every generated student account.
const demoPassword = "Student123!"

// demoProfile biases a generated student's answers toward certain domains,
// so the demo data produces distinguishable strand and career rankings.
type demoProfile struct {
	FirstName string
	LastName  string
	Email     string
	Gender    string
	Birthdate string
	Bias      map[string]int
}

var demoProfiles = []demoProfile{
	{"Maria", "Santos", "maria.santos@school.edu", "female", "2008-03-15",
		map[string]int{"Logical-Mathematical": 5, "Spatial": 4, "Realistic": 3, "Investigative": 3, "Naturalistic": 3}},
	{"Juan", "Dela Cruz", "juan.delacruz@school.edu", "male", "2008-07-22",
		map[string]int{"Linguistic": 5, "Interpersonal": 4, "Existential": 4, "Social": 3, "Intrapersonal": 4}},
	{"Angela", "Reyes", "angela.reyes@school.edu", "female", "2008-11-03",
		map[string]int{"Logical-Mathematical": 4, "Interpersonal": 4, "Enterprising": 3, "Conventional": 3, "Linguistic": 3}},
	{"Carlos", "Garcia", "carlos.garcia@school.edu", "male", "2009-01-18",
		map[string]int{"Musical": 5, "Spatial": 4, "Artistic": 3, "Existential": 4, "Intrapersonal": 3}},
	{"Sofia", "Mendoza", "sofia.mendoza@school.edu", "female", "2008-05-28",
		map[string]int{"Bodily-Kinesthetic": 5, "Interpersonal": 4, "Realistic": 3, "Social": 3, "Naturalistic": 3}},
	{"Miguel", "Torres", "miguel.torres@school.edu", "male", "2008-09-10",
		map[string]int{"Bodily-Kinesthetic": 4, "Spatial": 4, "Realistic": 3, "Conventional": 3, "Naturalistic": 3}},
	{"Isabella", "Cruz", "isabella.cruz@school.edu", "female", "2009-02-14",
		map[string]int{"Linguistic": 4, "Logical-Mathematical": 3, "Interpersonal": 4, "Investigative": 3, "Social": 3}},
	{"Rafael", "Bautista", "rafael.bautista@school.edu", "male", "2008-12-05",
		map[string]int{"Logical-Mathematical": 5, "Naturalistic": 4, "Investigative": 3, "Realistic": 3, "Intrapersonal": 4}},
	{"Patricia", "Villanueva", "patricia.villanueva@school.edu", "female", "2008-08-20",
		map[string]int{"Interpersonal": 5, "Linguistic": 4, "Existential": 4, "Social": 3, "Artistic": 3}},
	{"Diego", "Ramos", "diego.ramos@school.edu", "male", "2009-04-12",
		map[string]int{"Interpersonal": 4, "Logical-Mathematical": 4, "Linguistic": 3, "Enterprising": 3, "Conventional": 3}},
	{"Camille", "Aquino", "camille.aquino@school.edu", "female", "2008-06-30",
		map[string]int{"Musical": 5, "Spatial": 5, "Existential": 4, "Artistic": 3, "Intrapersonal": 4}},
	{"Andrei", "Navarro", "andrei.navarro@school.edu", "male", "2008-10-08",
		map[string]int{"Naturalistic": 5, "Logical-Mathematical": 3, "Investigative": 3, "Realistic": 3, "Intrapersonal": 3}},
}

// assessmentCounts gives each profile its number of attempts, index-aligned
// with demoProfiles.
var assessmentCounts = []int{2, 1, 3, 2, 1, 2, 1, 3, 2, 1, 2, 1}

// DemoGenerator creates a dozen demo students with completed, scored
// assessments. Answers come from the profiles' bias maps through an injected
// random source, so the same seed always yields the same database. Scoring
// goes through the real pipeline; only completed_at is rewritten afterward
// to stagger the timeline.
type DemoGenerator struct {
	db       *gorm.DB
	pipeline service.ScoringPipelineService
	rng      *rand.Rand
}

func NewDemoGenerator(db *gorm.DB, pipeline service.ScoringPipelineService, rng *rand.Rand) *DemoGenerator {
	return &DemoGenerator{db: db, pipeline: pipeline, rng: rng}
}

func (g *DemoGenerator) Run() error {
	var existing int64
	if err := g.db.Model(&model.User{}).Where("email = ?", demoProfiles[0].Email).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Info().Msg("Demo users already exist, skipping demo generator")
		return nil
	}

	var version model.AssessmentVersion
	if err := g.db.Where("active = ?", true).Order("id DESC").First(&version).Error; err != nil {
		return fmt.Errorf("no active version for demo data: %w", err)
	}

	var questions []model.Question
	err := g.db.Preload("Domain").
		Where("version_id = ? AND active = ?", version.ID, true).
		Order("order_index ASC").
		Find(&questions).Error
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return fmt.Errorf("no questions for version %d, cannot generate demo data", version.ID)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return err
	}

	totalAssessments := 0
	for i, profile := range demoProfiles {
		attempts := 1
		if i < len(assessmentCounts) {
			attempts = assessmentCounts[i]
		}

		user, err := g.createUser(profile, string(hash))
		if err != nil {
			return fmt.Errorf("creating demo user %s: %w", profile.Email, err)
		}

		for a := 0; a < attempts; a++ {
			bias := profile.Bias
			if a > 0 {
				bias = g.varyBias(profile.Bias, a)
			}
			if err := g.runAttempt(user, version.ID, questions, bias, a); err != nil {
				return fmt.Errorf("demo attempt for %s: %w", profile.Email, err)
			}
			totalAssessments++
		}
	}

	log.Info().
		Int("users", len(demoProfiles)).
		Int("assessments", totalAssessments).
		Msg("Demo data generated")
	return nil
}

func (g *DemoGenerator) createUser(profile demoProfile, hash string) (*model.User, error) {
	birthdate, err := time.Parse("2006-01-02", profile.Birthdate)
	if err != nil {
		return nil, err
	}
	gender := profile.Gender
	user := &model.User{
		Email:        profile.Email,
		PasswordHash: hash,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Gender:       &gender,
		Birthdate:    &birthdate,
		Role:         model.RoleStudent,
	}
	if err := g.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (g *DemoGenerator) runAttempt(user *model.User, versionID uint, questions []model.Question, bias map[string]int, attempt int) error {
	// First attempts land about a month back, later ones more recently.
	daysAgo := 30 - attempt*12 - g.randInt(0, 5)
	if daysAgo < 1 {
		daysAgo = 1
	}
	startedAt := time.Now().AddDate(0, 0, -daysAgo)
	startedAt = time.Date(startedAt.Year(), startedAt.Month(), startedAt.Day(),
		g.randInt(8, 17), g.randInt(0, 59), g.randInt(0, 59), 0, startedAt.Location())

	assessment := &model.Assessment{
		UserID:    user.ID,
		VersionID: versionID,
		Status:    model.StatusInProgress,
		StartedAt: startedAt,
	}
	if err := g.db.Create(assessment).Error; err != nil {
		return err
	}

	responses := make([]model.Response, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, model.Response{
			AssessmentID: assessment.ID,
			QuestionID:   q.ID,
			Value:        g.answerFor(bias, q.Domain.Name, q.Domain.MaxScale),
		})
	}
	if err := g.db.Create(&responses).Error; err != nil {
		return err
	}

	if _, err := g.pipeline.Run(assessment.ID); err != nil {
		return err
	}

	completedAt := startedAt.Add(time.Duration(g.randInt(15, 45)) * time.Minute)
	return g.db.Model(&model.Assessment{}).
		Where("id = ?", assessment.ID).
		Update("completed_at", completedAt).Error
}

// answerFor picks a Likert value pulled toward the profile's bias center
// for the question's domain. Unbiased domains lean slightly below the top
// of the scale.
func (g *DemoGenerator) answerFor(bias map[string]int, domainName string, maxScale int) int {
	center, ok := bias[domainName]
	if ok {
		if maxScale == 3 {
			// Bias centers are expressed on the 1-5 scale.
			center = int(float64(center)/5.0*3.0 + 0.5)
			if center < 1 {
				center = 1
			}
			if center > 3 {
				center = 3
			}
		}
	} else {
		center = 3
		if maxScale == 3 {
			center = 2
		}
	}
	return g.biasedValue(1, maxScale, center)
}

// biasedValue blends a triangular draw over [min, max] 40/60 with the
// center, then rounds and clamps.
func (g *DemoGenerator) biasedValue(min, max, center int) int {
	avg := (g.rng.Float64() + g.rng.Float64()) / 2
	raw := float64(min) + avg*float64(max-min)
	blended := raw*0.4 + float64(center)*0.6
	v := int(blended + 0.5)
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

// varyBias shifts each bias center a step so repeat attempts differ a
// little from the first. Keys are walked in sorted order to keep the
// random stream deterministic.
func (g *DemoGenerator) varyBias(bias map[string]int, attempt int) map[string]int {
	names := make([]string, 0, len(bias))
	for name := range bias {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]int, len(bias))
	for _, name := range names {
		shift := g.randInt(-1, 0)
		if attempt == 1 {
			shift = g.randInt(-1, 1)
		}
		c := bias[name] + shift
		if c < 1 {
			c = 1
		}
		if c > 5 {
			c = 5
		}
		out[name] = c
	}
	return out
}

func (g *DemoGenerator) randInt(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}
