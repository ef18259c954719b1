package remote

import (
	"context"
	"net/url"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
)

// ProjectClient implements repository.ProjectRepository against /projects.
type ProjectClient struct {
	client *Client
}

// NewProjectClient creates the remote project repository.
func NewProjectClient(client *Client) *ProjectClient {
	return &ProjectClient{client: client}
}

var _ repository.ProjectRepository = (*ProjectClient)(nil)

// ListApproved returns the publicly visible projects.
func (c *ProjectClient) ListApproved(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	if err := c.client.get(ctx, "/projects/approved", nil, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// ListPending returns the projects awaiting review.
func (c *ProjectClient) ListPending(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	if err := c.client.get(ctx, "/projects/pending", nil, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// FindByID retrieves a single project.
func (c *ProjectClient) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	var project entity.Project
	if err := c.client.get(ctx, idPath("/projects/%d", id), nil, &project); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, err
	}

	return &project, nil
}

// ListByFounder returns a founder's projects.
func (c *ProjectClient) ListByFounder(ctx context.Context, founderID int64) ([]entity.Project, error) {
	var projects []entity.Project
	if err := c.client.get(ctx, idPath("/projects/founder/%d", founderID), nil, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// Create submits a new project for review.
func (c *ProjectClient) Create(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	var created entity.Project
	if err := c.client.post(ctx, "/projects", project, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// Update edits the mutable fields of a project.
func (c *ProjectClient) Update(ctx context.Context, id int64, update repository.ProjectUpdate) (*entity.Project, error) {
	var updated entity.Project
	if err := c.client.put(ctx, idPath("/projects/%d", id), update, &updated); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, err
	}

	return &updated, nil
}

type reviewRequest struct {
	Feedback string `json:"feedback,omitempty"`
}

// Approve marks a pending project as approved.
func (c *ProjectClient) Approve(ctx context.Context, id int64, feedback string) (*entity.Project, error) {
	var project entity.Project
	if err := c.client.post(ctx, idPath("/projects/%d/approve", id), reviewRequest{Feedback: feedback}, &project); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, err
	}

	return &project, nil
}

// Reject marks a pending project as rejected.
func (c *ProjectClient) Reject(ctx context.Context, id int64, feedback string) (*entity.Project, error) {
	var project entity.Project
	if err := c.client.post(ctx, idPath("/projects/%d/reject", id), reviewRequest{Feedback: feedback}, &project); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, err
	}

	return &project, nil
}

// Delete removes a project.
func (c *ProjectClient) Delete(ctx context.Context, id int64) error {
	if err := c.client.delete(ctx, idPath("/projects/%d", id)); err != nil {
		if IsNotFound(err) {
			return repository.ErrProjectNotFound
		}

		return err
	}

	return nil
}

// Search finds projects of any status matching the query.
func (c *ProjectClient) Search(ctx context.Context, query string) ([]entity.Project, error) {
	var projects []entity.Project
	q := url.Values{"q": []string{query}}
	if err := c.client.get(ctx, "/projects/search", q, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}
