package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"starfund/internal/delivery/http/middleware"
	"starfund/internal/delivery/http/response"
	"starfund/internal/domain/entity"
	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"

	"github.com/labstack/echo/v4"
)

// ProjectHandler serves the /projects routes.
type ProjectHandler struct {
	projects repository.ProjectRepository
	users    repository.UserDirectory
	logger   *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(projects repository.ProjectRepository, users repository.UserDirectory, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, users: users, logger: logger}
}

// pathID parses the {id} path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid id")
	}

	return id, nil
}

// ListApproved returns the public project list.
func (h *ProjectHandler) ListApproved(c echo.Context) error {
	projects, err := h.projects.ListApproved(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, projects)
}

// ListPending returns the review queue.
func (h *ProjectHandler) ListPending(c echo.Context) error {
	projects, err := h.projects.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, projects)
}

// Get returns one project.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projects.FindByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return response.NotFound(c, domainerrors.ErrProjectNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, project)
}

// ListByFounder returns a founder's projects.
func (h *ProjectHandler) ListByFounder(c echo.Context) error {
	founderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	projects, err := h.projects.ListByFounder(c.Request().Context(), founderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, projects)
}

type createProjectRequest struct {
	Title           string             `json:"title" validate:"required,min=3"`
	Description     string             `json:"description" validate:"required"`
	FullDescription string             `json:"fullDescription" validate:"required"`
	Category        string             `json:"category" validate:"required"`
	TargetAmount    float64            `json:"targetAmount" validate:"gt=0"`
	DaysLeft        int                `json:"daysLeft" validate:"gte=0"`
	Image           string             `json:"image"`
	Tags            []string           `json:"tags" validate:"unique"`
	Milestones      []entity.Milestone `json:"milestones"`
}

// Create submits a new project under the calling founder.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}

	ctx := c.Request().Context()
	founder, err := h.users.FindByID(ctx, middleware.CallerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	created, err := h.projects.Create(ctx, &entity.Project{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Category:        req.Category,
		TargetAmount:    req.TargetAmount,
		DaysLeft:        req.DaysLeft,
		Image:           req.Image,
		Tags:            req.Tags,
		Milestones:      req.Milestones,
		StartupName:     founder.Company,
		FounderID:       founder.ID,
		FounderName:     founder.Name,
		FounderEmail:    founder.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, created)
}

// Update edits the mutable fields of the caller's project.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var update repository.ProjectUpdate
	if err := c.Bind(&update); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}

	ctx := c.Request().Context()
	project, err := h.projects.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return response.NotFound(c, domainerrors.ErrProjectNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}
	if project.FounderID != middleware.CallerID(c) && middleware.CallerRole(c) != entity.RoleAdmin {
		return response.Forbidden(c, domainerrors.ErrForbidden.Message())
	}

	updated, err := h.projects.Update(ctx, id, update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, updated)
}

type reviewRequest struct {
	Feedback string `json:"feedback"`
}

// Approve marks a pending project as approved.
func (h *ProjectHandler) Approve(c echo.Context) error {
	return h.review(c, h.projects.Approve)
}

// Reject marks a pending project as rejected.
func (h *ProjectHandler) Reject(c echo.Context) error {
	return h.review(c, h.projects.Reject)
}

func (h *ProjectHandler) review(c echo.Context, decide func(ctx context.Context, id int64, feedback string) (*entity.Project, error)) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}

	project, err := decide(c.Request().Context(), id, req.Feedback)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return response.NotFound(c, domainerrors.ErrProjectNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, project)
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = h.projects.Delete(c.Request().Context(), id)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return response.NotFound(c, domainerrors.ErrProjectNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Search finds approved projects matching ?q=.
func (h *ProjectHandler) Search(c echo.Context) error {
	projects, err := h.projects.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, projects)
}
