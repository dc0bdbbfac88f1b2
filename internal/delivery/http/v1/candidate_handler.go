package v1

import (
	"net/http"
	"strconv"
	"time"

	"candidate-management-api/internal/delivery/http/response"
	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC      domain.CandidateUsecase
	applicationUC    domain.ApplicationUsecase
	defaultPageLimit int
}

// NewCandidateHandler registers the candidate routes, including the
// nested application routes scoped to a candidate.
func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, applicationUC domain.ApplicationUsecase, defaultPageLimit int) {
	handler := &CandidateHandler{
		candidateUC:      candidateUC,
		applicationUC:    applicationUC,
		defaultPageLimit: defaultPageLimit,
	}

	candidates := r.Group("/candidates")
	{
		candidates.GET("/", handler.ListCandidates)
		candidates.POST("/", handler.CreateCandidate)
		candidates.GET("/:id", handler.GetCandidate)
		candidates.PUT("/:id", handler.UpdateCandidate)
		candidates.GET("/:id/applications", handler.ListCandidateApplications)
		candidates.POST("/:id/applications", handler.CreateCandidateApplication)
	}
}

// CreateCandidateRequest is the request payload for creating a candidate
type CreateCandidateRequest struct {
	FullName string   `json:"full_name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Phone    *string  `json:"phone"`
	Skills   []string `json:"skills" binding:"required"`
}

// UpdateCandidateRequest is a partial payload: omitted fields are left
// untouched
type UpdateCandidateRequest struct {
	FullName *string   `json:"full_name"`
	Email    *string   `json:"email" binding:"omitempty,email"`
	Phone    *string   `json:"phone"`
	Skills   *[]string `json:"skills"`
}

// CreateApplicationRequest is the request payload for creating an
// application under a candidate
type CreateApplicationRequest struct {
	JobTitle  string    `json:"job_title" binding:"required"`
	Status    string    `json:"status" binding:"required,oneof=applied interviewing rejected hired"`
	AppliedAt time.Time `json:"applied_at" binding:"required"`
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  List candidates with offset/limit paging and optional skill-overlap filtering
// @Tags         candidates
// @Produce      json
// @Param        offset  query     int       false  "Rows to skip"
// @Param        limit   query     int       false  "Max rows to return"
// @Param        skills  query     []string  false  "Skills to match (overlap, case-insensitive)"  collectionFormat(multi)
// @Success      200     {object}  response.Response{data=[]domain.Candidate}
// @Failure      401     {object}  response.Response
// @Router       /candidates/ [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.Error(apperror.BadRequest("Invalid offset"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.defaultPageLimit)))
	if err != nil || limit < 0 {
		c.Error(apperror.BadRequest("Invalid limit"))
		return
	}
	skills := c.QueryArray("skills")

	candidates, err := h.candidateUC.List(c.Request.Context(), offset, limit, skills)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates retrieved", candidates)
}

// GetCandidate godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	candidate, err := h.candidateUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}

// CreateCandidate godoc
// @Summary      Create a candidate
// @Description  Create a candidate; name, email and skills are stored lowercased
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      CreateCandidateRequest  true  "Candidate data"
// @Success      201   {object}  response.Response{data=domain.Candidate}
// @Failure      400   {object}  response.Response
// @Router       /candidates/ [post]
// @Security     BearerAuth
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), domain.CandidateInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Skills:   req.Skills,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// UpdateCandidate godoc
// @Summary      Update a candidate
// @Description  Sparse update: only fields present in the payload are changed
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Candidate ID"
// @Param        body  body      UpdateCandidateRequest  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.Candidate}
// @Failure      404   {object}  response.Response
// @Router       /candidates/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Update(c.Request.Context(), c.Param("id"), domain.CandidatePatch{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Skills:   req.Skills,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// ListCandidateApplications godoc
// @Summary      List a candidate's applications
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/applications [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListCandidateApplications(c *gin.Context) {
	applications, err := h.applicationUC.ListByCandidateID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// CreateCandidateApplication godoc
// @Summary      Create an application for a candidate
// @Description  Create an application; fails with 404 when the candidate does not exist
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Candidate ID"
// @Param        body  body      CreateApplicationRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      404   {object}  response.Response
// @Router       /candidates/{id}/applications [post]
// @Security     BearerAuth
func (h *CandidateHandler) CreateCandidateApplication(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.CreateForCandidate(c.Request.Context(), c.Param("id"), domain.ApplicationInput{
		JobTitle:  req.JobTitle,
		Status:    req.Status,
		AppliedAt: req.AppliedAt,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application created", app)
}
