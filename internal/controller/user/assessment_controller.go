package user

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/careerpath-ph/assessment-api/internal/controller"
	"github.com/careerpath-ph/assessment-api/internal/dto"
	"github.com/careerpath-ph/assessment-api/internal/middleware"
	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/service"
	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
	resultService     service.ResultService
	reportService     service.ReportService
}

func NewAssessmentController(
	assessmentService service.AssessmentService,
	resultService service.ResultService,
	reportService service.ReportService,
) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
		resultService:     resultService,
		reportService:     reportService,
	}
}

// Start godoc
// @Summary Start a new assessment attempt
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.StartAssessmentResponse
// @Failure 409 {object} map[string]string
// @Router /assessments/start [post]
func (ctrl *AssessmentController) Start(c *gin.Context) {
	resp, err := ctrl.assessmentService.Start(middleware.UserID(c))
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Questions godoc
// @Summary Questionnaire for an assessment, with any saved answers
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} map[string]string
// @Router /assessments/{id}/questions [get]
func (ctrl *AssessmentController) Questions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := ctrl.assessmentService.GetQuestions(id)
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Submit godoc
// @Summary Submit all responses and score the assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Param request body dto.SubmitRequest true "Full response set"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /assessments/{id}/submit [post]
func (ctrl *AssessmentController) Submit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := ctrl.assessmentService.Submit(id, middleware.UserID(c), req)
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubmitResponse{
		Message: "Assessment submitted and scored successfully",
		Results: *results,
	})
}

// Result godoc
// @Summary Stored results for a completed assessment
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.ResultEnvelope
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /assessments/{id}/result [get]
func (ctrl *AssessmentController) Result(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	assessment, err := ctrl.assessmentService.OwnedAssessment(id, middleware.UserID(c), c.GetString(middleware.CtxRole))
	if err != nil {
		controller.Error(c, err)
		return
	}
	if assessment.Status != model.StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Assessment not yet completed"})
		return
	}

	results, err := ctrl.resultService.GetResults(id)
	if err != nil {
		controller.Error(c, err)
		return
	}

	var envelope dto.ResultEnvelope
	envelope.Assessment.ID = assessment.ID
	envelope.Assessment.Status = assessment.Status
	envelope.Assessment.StartedAt = assessment.StartedAt
	envelope.Assessment.CompletedAt = assessment.CompletedAt
	envelope.Student = dto.StudentInfo{
		FirstName: assessment.User.FirstName,
		LastName:  assessment.User.LastName,
		Email:     assessment.User.Email,
		Gender:    assessment.User.Gender,
	}
	envelope.Results = *results
	c.JSON(http.StatusOK, envelope)
}

// History godoc
// @Summary The caller's assessment history
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.HistoryResponse
// @Router /assessments/history [get]
func (ctrl *AssessmentController) History(c *gin.Context) {
	resp, err := ctrl.assessmentService.History(middleware.UserID(c))
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report godoc
// @Summary PDF report for a completed assessment
// @Tags assessments
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /assessments/{id}/report [get]
func (ctrl *AssessmentController) Report(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := ctrl.assessmentService.OwnedAssessment(id, middleware.UserID(c), c.GetString(middleware.CtxRole)); err != nil {
		controller.Error(c, err)
		return
	}

	pdfBytes, filename, err := ctrl.reportService.GeneratePDF(id)
	if err != nil {
		controller.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
