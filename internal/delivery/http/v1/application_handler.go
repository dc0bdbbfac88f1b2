package v1

import (
	"net/http"

	"candidate-management-api/internal/delivery/http/response"
	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers the top-level application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		applications.GET("", handler.ListApplications)
		applications.GET("/:id", handler.GetApplication)
		applications.PATCH("/:id", handler.UpdateApplicationStatus)
	}
}

// UpdateApplicationStatusRequest is a sparse payload restricted to status
type UpdateApplicationStatusRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=applied interviewing rejected hired"`
}

// ListApplications godoc
// @Summary      List all applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.applicationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// GetApplication godoc
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.applicationUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved", app)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  Sparse update restricted to the status field; job_title and applied_at are untouched
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Application ID"
// @Param        body  body      UpdateApplicationStatusRequest  true  "Status payload"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Failure      404   {object}  response.Response
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), c.Param("id"), domain.ApplicationStatusPatch{
		Status: req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application updated", app)
}
