package dto

type CreateQuestionRequest struct {
	VersionID  uint   `json:"version_id" binding:"required"`
	DomainID   uint   `json:"domain_id" binding:"required"`
	Text       string `json:"text" binding:"required"`
	OrderIndex *int   `json:"order_index" binding:"required"`
}

type UpdateQuestionRequest struct {
	Text       *string `json:"text"`
	DomainID   *uint   `json:"domain_id"`
	OrderIndex *int    `json:"order_index"`
	Active     *bool   `json:"active"`
}

type QuestionAdminItem struct {
	ID           uint   `json:"id"`
	VersionID    uint   `json:"version_id"`
	DomainID     uint   `json:"domain_id"`
	DomainName   string `json:"domain_name"`
	DomainFamily string `json:"domain_family"`
	Text         string `json:"text"`
	OrderIndex   int    `json:"order_index"`
	Active       bool   `json:"active"`
}

type UserListResponse struct {
	Users []UserDTO `json:"users"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type NamedAverage struct {
	Name     string  `json:"name"`
	AvgScore float64 `json:"avg_score"`
}

type AnalyticsSummary struct {
	TotalStudents        int64   `json:"total_students"`
	TotalAssessments     int64   `json:"total_assessments"`
	CompletedAssessments int64   `json:"completed_assessments"`
	ParticipationRate    float64 `json:"participation_rate"`
}

type RecentAssessment struct {
	ID          uint    `json:"id"`
	Status      string  `json:"status"`
	StartedAt   string  `json:"started_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
}

type AnalyticsResponse struct {
	Summary            AnalyticsSummary   `json:"summary"`
	DominantMI         []NamedCount       `json:"dominant_mi"`
	StrandDistribution []NamedCount       `json:"strand_distribution"`
	AvgMIScores        []NamedAverage     `json:"avg_mi_scores"`
	AvgRIASECScores    []NamedAverage     `json:"avg_riasec_scores"`
	RecentAssessments  []RecentAssessment `json:"recent_assessments"`
}
