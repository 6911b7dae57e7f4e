package admin

import (
	"net/http"
	"strconv"

	"github.com/careerpath-ph/assessment-api/internal/controller"
	"github.com/careerpath-ph/assessment-api/internal/dto"
	"github.com/careerpath-ph/assessment-api/internal/repository"
	"github.com/careerpath-ph/assessment-api/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// ListUsers godoc
// @Summary Paginated user listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role (student or admin)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.UserListResponse
// @Router /admin/users [get]
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	resp, err := ctrl.adminService.ListUsers(c.Query("role"), page, limit)
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Analytics godoc
// @Summary Aggregate analytics for the dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsResponse
// @Router /admin/analytics [get]
func (ctrl *AdminController) Analytics(c *gin.Context) {
	resp, err := ctrl.adminService.Analytics()
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateQuestion godoc
// @Summary Add a question to a version
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuestionRequest true "Question payload"
// @Success 201 {object} dto.QuestionAdminItem
// @Failure 400 {object} map[string]string
// @Router /admin/questions [post]
func (ctrl *AdminController) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ctrl.adminService.CreateQuestion(req)
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateQuestion godoc
// @Summary Update a question's text, domain, order, or active flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body dto.UpdateQuestionRequest true "Fields to change"
// @Success 200 {object} dto.QuestionAdminItem
// @Failure 404 {object} map[string]string
// @Router /admin/questions/{id} [put]
func (ctrl *AdminController) UpdateQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ctrl.adminService.UpdateQuestion(id, req)
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeactivateQuestion godoc
// @Summary Retire a question from new questionnaires
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionAdminItem
// @Failure 404 {object} map[string]string
// @Router /admin/questions/{id} [delete]
func (ctrl *AdminController) DeactivateQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := ctrl.adminService.DeactivateQuestion(id)
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListQuestions godoc
// @Summary Question listing with optional filters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param version_id query int false "Filter by version"
// @Param domain_id query int false "Filter by domain"
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} dto.QuestionAdminItem
// @Router /admin/questions [get]
func (ctrl *AdminController) ListQuestions(c *gin.Context) {
	var filter repository.QuestionFilter
	if v, err := strconv.ParseUint(c.Query("version_id"), 10, 32); err == nil {
		filter.VersionID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("domain_id"), 10, 32); err == nil {
		filter.DomainID = uint(v)
	}
	if v, err := strconv.ParseBool(c.Query("active")); err == nil {
		filter.Active = &v
	}

	items, err := ctrl.adminService.ListQuestions(filter)
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListDomains godoc
// @Summary All scoring domains
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Domain
// @Router /admin/domains [get]
func (ctrl *AdminController) ListDomains(c *gin.Context) {
	domains, err := ctrl.adminService.ListDomains()
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"domains": domains})
}

// ListVersions godoc
// @Summary All assessment versions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AssessmentVersion
// @Router /admin/versions [get]
func (ctrl *AdminController) ListVersions(c *gin.Context) {
	versions, err := ctrl.adminService.ListVersions()
	if err != nil {
		controller.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
