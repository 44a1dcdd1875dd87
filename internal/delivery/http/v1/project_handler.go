package v1

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// ProjectListResponse is the payload of the project list endpoint
type ProjectListResponse struct {
	Success  bool             `json:"success"`
	Projects []domain.Project `json:"projects"`
	Total    int              `json:"total"`
}

// ProjectResponse is the payload of the single project endpoint
type ProjectResponse struct {
	Success bool           `json:"success"`
	Project domain.Project `json:"project"`
}

// NewProjectHandler registers the project catalog routes
func NewProjectHandler(api *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{
		projectUC: projectUC,
	}

	api.GET("/projects", handler.ListProjects)
	api.GET("/projects/:id", handler.GetProject)
}

// ListProjects godoc
// @Summary      List Projects
// @Description  List portfolio projects, optionally filtered by category and featured flag. Sorted by date, newest first.
// @Tags         projects
// @Produce      json
// @Param        category  query     string  false  "Category filter; omit or 'all' for every category"
// @Param        featured  query     string  false  "Set to 'true' to only return featured projects"
// @Success      200       {object}  ProjectListResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectUC.ListProjects(
		c.Request.Context(),
		c.Query("category"),
		c.Query("featured") == "true",
	)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	c.JSON(http.StatusOK, ProjectListResponse{
		Success:  true,
		Projects: projects,
		Total:    len(projects),
	})
}

// GetProject godoc
// @Summary      Get Project
// @Description  Fetch a single project by its id.
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  ProjectResponse
// @Failure      404  {object}  response.Response
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectUC.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.Error(apperror.NotFound("Project not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	c.JSON(http.StatusOK, ProjectResponse{
		Success: true,
		Project: *project,
	})
}
