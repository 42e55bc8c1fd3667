package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enviconnect/enviconnect/internal/handler/http/dto"
	"github.com/enviconnect/enviconnect/internal/infrastructure/metrics"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

// ProjectHandlerInterface defines the methods for the project handler.
type ProjectHandlerInterface interface {
	CreateProject(*gin.Context)
	ListProjects(*gin.Context)
	GetProject(*gin.Context)
	JoinProject(*gin.Context)
	ListProjectsByOwner(*gin.Context)
}

// Ensure ProjectHandler implements ProjectHandlerInterface
var _ ProjectHandlerInterface = (*ProjectHandler)(nil)

type ProjectHandler struct {
	projectUsecase usecasecontract.IProjectUseCase
}

func NewProjectHandler(projectUsecase usecasecontract.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
	}
}

// CreateProject handles the multipart add-project form. Attached
// images are streamed to the usecase in the order they were received.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	input := usecasecontract.CreateProjectInput{
		Theme:    c.PostForm("theme"),
		Name:     c.PostForm("name"),
		Duration: c.PostForm("duration"),
		Location: c.PostForm("location"),
		Brief:    c.PostForm("brief"),
		Details:  c.PostForm("details"),
		Info:     c.PostForm("info"),
		Owner:    c.PostForm("owner"),
	}

	files := form.File["images"]
	opened := make([]interface{ Close() error }, 0, len(files))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Failed to read uploaded image")
			return
		}
		opened = append(opened, f)
		input.Images = append(input.Images, usecasecontract.ImageUpload{
			OriginalName: fh.Filename,
			Reader:       f,
		})
	}

	project, err := h.projectUsecase.CreateProject(c.Request.Context(), input)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.CreateProjectResponse{
		Message: "Project created successfully",
		Project: project,
	})
}

// ListProjects returns all projects, newest first.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectUsecase.ListProjects(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	SuccessHandler(c, http.StatusOK, projects)
}

// GetProject returns a single project by ID.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectUsecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, project)
}

// JoinProject increments the volunteer counter.
func (h *ProjectHandler) JoinProject(c *gin.Context) {
	volunteers, err := h.projectUsecase.JoinProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	metrics.ProjectsJoinedTotal.Inc()
	SuccessHandler(c, http.StatusOK, dto.JoinProjectResponse{
		Message:    "Successfully joined project",
		Volunteers: volunteers,
	})
}

// ListProjectsByOwner returns the projects created by one user.
func (h *ProjectHandler) ListProjectsByOwner(c *gin.Context) {
	projects, err := h.projectUsecase.ListProjectsByOwner(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch user's projects")
		return
	}
	SuccessHandler(c, http.StatusOK, projects)
}
