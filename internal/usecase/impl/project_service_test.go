package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"
	"starfund/internal/usecase"
)

// flakyProjectRepo wraps the real store and fails ListApproved on demand,
// standing in for a backend returning HTTP 500.
type flakyProjectRepo struct {
	repository.ProjectRepository
	fail bool
}

func (r *flakyProjectRepo) ListApproved(ctx context.Context) ([]entity.Project, error) {
	if r.fail {
		return nil, errors.New("boom")
	}

	return r.ProjectRepository.ListApproved(ctx)
}

func newProjectService(t *testing.T, repo repository.ProjectRepository) (usecase.ProjectUsecase, testFixtures) {
	t.Helper()
	f := newFixtures(t)
	if repo == nil {
		repo = f.projects
	}
	service := NewProjectService(ProjectServiceParams{
		Repo:    repo,
		Session: f.session,
		Logger:  f.logger,
	})

	return service, f
}

func TestApprovedProjectsPopulatesCache(t *testing.T) {
	service, _ := newProjectService(t, nil)

	projects, err := service.ApprovedProjects(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, projects)
	assert.Equal(t, projects, service.CachedProjects())
	assert.Empty(t, service.LastError())
}

func TestFailedRefreshKeepsPreviousSnapshot(t *testing.T) {
	f := newFixtures(t)
	flaky := &flakyProjectRepo{ProjectRepository: f.projects}
	service := NewProjectService(ProjectServiceParams{
		Repo:    flaky,
		Session: f.session,
		Logger:  f.logger,
	})
	ctx := context.Background()

	projects, err := service.ApprovedProjects(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, projects)

	flaky.fail = true
	_, err = service.ApprovedProjects(ctx)
	require.Error(t, err)
	assert.Equal(t, "boom", service.LastError())
	assert.Equal(t, projects, service.CachedProjects())
}

func TestErrorSlotClearsOnNextSuccess(t *testing.T) {
	f := newFixtures(t)
	flaky := &flakyProjectRepo{ProjectRepository: f.projects, fail: true}
	service := NewProjectService(ProjectServiceParams{
		Repo:    flaky,
		Session: f.session,
		Logger:  f.logger,
	})
	ctx := context.Background()

	_, err := service.ApprovedProjects(ctx)
	require.Error(t, err)
	require.Equal(t, "boom", service.LastError())

	flaky.fail = false
	_, err = service.ApprovedProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, service.LastError())
}

func TestCreateProjectRequiresSession(t *testing.T) {
	service, _ := newProjectService(t, nil)

	_, err := service.CreateProject(context.Background(), usecase.CreateProjectInput{
		Title:           "Dự án",
		Description:     "Mô tả",
		FullDescription: "Mô tả đầy đủ",
		Category:        "Công nghệ",
		TargetAmount:    1000,
	})
	require.Error(t, err)
}

func TestCreateProjectStampsFounderFromSession(t *testing.T) {
	service, f := newProjectService(t, nil)
	require.NoError(t, f.session.Set(&entity.User{
		ID:      4,
		Name:    "Founder",
		Email:   "startup@test.com",
		Company: "Startup ABC",
		Role:    entity.RoleStartup,
		Token:   "tok",
	}))

	created, err := service.CreateProject(context.Background(), usecase.CreateProjectInput{
		Title:           "Dự án mới",
		Description:     "Mô tả",
		FullDescription: "Mô tả đầy đủ",
		Category:        "Công nghệ",
		TargetAmount:    50000,
		DaysLeft:        30,
		Tags:            []string{"công nghệ"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectPending, created.Status)
	assert.Equal(t, int64(4), created.FounderID)
	assert.Equal(t, "Startup ABC", created.StartupName)
}

func TestApproveMissingProjectIsExplicit(t *testing.T) {
	service, _ := newProjectService(t, nil)

	_, err := service.ApproveProject(context.Background(), 99999, "ok")
	require.Error(t, err)
	assert.Equal(t, "Không tìm thấy dự án", errorMessage(err))
}
