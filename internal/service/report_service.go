package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/careerpath-ph/assessment-api/internal/dto"
	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/repository"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"
)

// ReportService renders a completed assessment's results as a PDF.
type ReportService interface {
	// GeneratePDF returns the report bytes and a suggested filename.
	GeneratePDF(assessmentID uint) ([]byte, string, error)
}

type reportService struct {
	assessmentRepo repository.AssessmentRepository
	resultService  ResultService
}

func NewReportService(assessmentRepo repository.AssessmentRepository, resultService ResultService) ReportService {
	return &reportService{assessmentRepo: assessmentRepo, resultService: resultService}
}

func (s *reportService) GeneratePDF(assessmentID uint) ([]byte, string, error) {
	assessment, err := s.assessmentRepo.FindByIDWithUser(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("assessment %d: %w", assessmentID, ErrNotFound)
		}
		return nil, "", err
	}
	if assessment.Status != model.StatusCompleted {
		return nil, "", fmt.Errorf("assessment %d not completed: %w", assessmentID, ErrValidation)
	}

	results, err := s.resultService.GetResults(assessmentID)
	if err != nil {
		return nil, "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Assessment Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Student Assessment Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, assessment.Version.Name, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s %s", assessment.User.FirstName, assessment.User.LastName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, assessment.User.Email, "", 1, "L", false, 0, "")
	if assessment.CompletedAt != nil {
		pdf.CellFormat(0, 6, "Completed: "+assessment.CompletedAt.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	writeScoreSection(pdf, "Multiple Intelligence Profile", results.MIScores)
	writeScoreSection(pdf, "Interest Profile (RIASEC)", results.RIASECScores)
	writeStrandSection(pdf, results.StrandRanking)
	writeCareerSection(pdf, results.CareerSuggestions)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("rendering report: %w", err)
	}

	filename := fmt.Sprintf("Assessment_Report_%s_%s.pdf", assessment.User.LastName, assessment.User.FirstName)
	return buf.Bytes(), filename, nil
}

func writeScoreSection(pdf *fpdf.Fpdf, title string, scores []dto.DomainScoreEntry) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, s := range scores {
		pdf.CellFormat(90, 6, s.Domain, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%.1f%%", s.NormalizedScore*100), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeStrandSection(pdf *fpdf.Fpdf, strands []dto.StrandRankEntry) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Recommended Academic Strands", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, st := range strands {
		pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s (%.4f)", i+1, st.Strand, st.Score), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeCareerSection(pdf *fpdf.Fpdf, careers []dto.CareerRankEntry) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Top Career Matches", "", 1, "L", false, 0, "")
	for i, c := range careers {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s (%.4f)", i+1, c.Career, c.Score), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, c.Description, "", "L", false)
	}
}
