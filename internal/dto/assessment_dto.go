package dto

import "time"

type StartAssessmentResponse struct {
	Message    string            `json:"message"`
	Assessment AssessmentSummary `json:"assessment"`
}

type AssessmentSummary struct {
	ID             uint      `json:"id"`
	VersionID      uint      `json:"version_id"`
	Status         string    `json:"status"`
	StartedAt      time.Time `json:"started_at"`
	TotalQuestions int64     `json:"total_questions"`
}

// QuestionItem is one questionnaire entry, with the student's saved answer
// when the assessment already has responses.
type QuestionItem struct {
	ID            uint   `json:"id"`
	Text          string `json:"text"`
	OrderIndex    int    `json:"order_index"`
	DomainName    string `json:"domain_name"`
	DomainFamily  string `json:"domain_family"`
	MaxScale      int    `json:"max_scale"`
	CurrentAnswer *int   `json:"current_answer"`
}

type QuestionListResponse struct {
	AssessmentID uint           `json:"assessment_id"`
	Status       string         `json:"status"`
	Questions    []QuestionItem `json:"questions"`
}

type ResponseItem struct {
	QuestionID uint `json:"question_id" binding:"required"`
	Value      int  `json:"value" binding:"required"`
}

type SubmitRequest struct {
	Responses []ResponseItem `json:"responses" binding:"required,dive"`
}

type HistoryEntry struct {
	ID          uint       `json:"id"`
	Status      string     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	VersionName string     `json:"version_name"`
	TopMI       *string    `json:"top_mi"`
	TopStrand   *string    `json:"top_strand"`
}

type HistoryResponse struct {
	Assessments []HistoryEntry `json:"assessments"`
}
