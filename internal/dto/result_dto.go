package dto

import "time"

// DomainScoreEntry is one domain's scored result. Normalized scores are
// already rounded to 4 decimal places when they reach the DTO.
type DomainScoreEntry struct {
	DomainID        uint    `json:"domain_id"`
	Domain          string  `json:"domain"`
	RawScore        float64 `json:"raw_score"`
	NormalizedScore float64 `json:"normalized_score"`
}

type StrandRankEntry struct {
	StrandID uint    `json:"strand_id"`
	Strand   string  `json:"strand"`
	Score    float64 `json:"score"`
}

type CareerRankEntry struct {
	CareerID    uint    `json:"career_id"`
	Career      string  `json:"career"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// AssessmentResult is the combined read-model returned both by submission
// and by later result retrieval.
type AssessmentResult struct {
	MIScores          []DomainScoreEntry `json:"mi_scores"`
	RIASECScores      []DomainScoreEntry `json:"riasec_scores"`
	StrandRanking     []StrandRankEntry  `json:"strand_ranking"`
	CareerSuggestions []CareerRankEntry  `json:"career_suggestions"`
}

type SubmitResponse struct {
	Message string           `json:"message"`
	Results AssessmentResult `json:"results"`
}

type StudentInfo struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Gender    *string `json:"gender,omitempty"`
}

type ResultEnvelope struct {
	Assessment struct {
		ID          uint       `json:"id"`
		Status      string     `json:"status"`
		StartedAt   time.Time  `json:"started_at"`
		CompletedAt *time.Time `json:"completed_at,omitempty"`
	} `json:"assessment"`
	Student StudentInfo      `json:"student"`
	Results AssessmentResult `json:"results"`
}
