package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/applications/domain"
	projects "github.com/volunteer-hub/volunteer-hub-backend/internal/projects/domain"
)

type fakeProjectRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]projects.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{items: make(map[int64]projects.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, p projects.NewProject) (*projects.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	proj := projects.Project{
		ID:          r.nextID,
		Title:       p.Title,
		Description: p.Description,
		Status:      projects.StatusOpen,
		CreatedAt:   time.Now(),
	}
	r.items[proj.ID] = proj
	return &proj, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id int64) (*projects.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, projects.ErrNotFound
	}
	return &p, nil
}

func (r *fakeProjectRepo) List(_ context.Context) ([]projects.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]projects.Project, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProjectRepo) UpdateStatus(_ context.Context, id int64, status string) (*projects.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, projects.ErrNotFound
	}
	p.Status = status
	r.items[id] = p
	return &p, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return projects.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeApplicationRepo struct {
	mu       sync.Mutex
	nextID   int64
	items    map[int64]domain.Application
	projects *fakeProjectRepo
}

func newFakeApplicationRepo(projectRepo *fakeProjectRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{items: make(map[int64]domain.Application), projects: projectRepo}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app domain.NewApplication) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := domain.Application{
		ID:             r.nextID,
		ProjectID:      app.ProjectID,
		VolunteerName:  app.VolunteerName,
		VolunteerEmail: app.VolunteerEmail,
		VolunteerPhone: app.VolunteerPhone,
		Motivation:     app.Motivation,
		Status:         domain.StatusPending,
		AppliedAt:      time.Now(),
	}
	r.items[created.ID] = created
	return &created, nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &app, nil
}

func (r *fakeApplicationRepo) ListWithProjects(_ context.Context) ([]domain.ApplicationWithProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ApplicationWithProject, 0, len(r.items))
	for _, app := range r.items {
		item := domain.ApplicationWithProject{Application: app}
		if p, ok := r.projects.items[app.ProjectID]; ok {
			item.Project = &projects.Summary{ID: p.ID, Title: p.Title, Status: p.Status}
		}
		out = append(out, item)
	}
	return out, nil
}

// transition mirrors the store-level guarded update: only pending rows move.
func (r *fakeApplicationRepo) transition(id int64, status string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if app.Status != domain.StatusPending {
		return nil, domain.ErrInvalidTransition
	}
	app.Status = status
	r.items[id] = app
	return &app, nil
}

func (r *fakeApplicationRepo) Accept(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := r.transition(id, domain.StatusAccepted)
	if err != nil {
		return nil, err
	}
	if _, err := r.projects.UpdateStatus(ctx, app.ProjectID, projects.StatusAccepted); err != nil {
		return nil, err
	}
	return app, nil
}

func (r *fakeApplicationRepo) Reject(_ context.Context, id int64) (*domain.Application, error) {
	return r.transition(id, domain.StatusRejected)
}

func setupService(t *testing.T) (*ApplicationService, *fakeProjectRepo, *fakeApplicationRepo, *projects.Project) {
	t.Helper()
	projectRepo := newFakeProjectRepo()
	appRepo := newFakeApplicationRepo(projectRepo)
	svc := NewApplicationService(appRepo, projectRepo, &noopNotifier{})

	proj, err := projectRepo.Create(context.Background(), projects.NewProject{
		Title:       "Beach Cleanup",
		Description: "Clean the beach",
	})
	require.NoError(t, err)

	return svc, projectRepo, appRepo, proj
}

type noopNotifier struct{}

func (n *noopNotifier) ApplicationReceived(context.Context, *domain.Application) error {
	return nil
}

func validSubmission(projectID int64) domain.NewApplication {
	return domain.NewApplication{
		ProjectID:      projectID,
		VolunteerName:  "Jordan Lee",
		VolunteerEmail: "jordan@example.com",
		Motivation:     "I care about the coast",
	}
}

func TestSubmit_StartsPending(t *testing.T) {
	svc, _, _, proj := setupService(t)

	app, err := svc.Submit(context.Background(), validSubmission(proj.ID))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, app.Status)
	assert.Equal(t, proj.ID, app.ProjectID)
	assert.NotZero(t, app.ID)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	svc, _, appRepo, proj := setupService(t)

	cases := []struct {
		name   string
		mutate func(*domain.NewApplication)
	}{
		{"missing name", func(a *domain.NewApplication) { a.VolunteerName = "  " }},
		{"missing email", func(a *domain.NewApplication) { a.VolunteerEmail = "" }},
		{"malformed email", func(a *domain.NewApplication) { a.VolunteerEmail = "not-an-email" }},
		{"missing motivation", func(a *domain.NewApplication) { a.Motivation = "" }},
		{"zero project id", func(a *domain.NewApplication) { a.ProjectID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission(proj.ID)
			tc.mutate(&sub)

			app, err := svc.Submit(context.Background(), sub)
			assert.Nil(t, app)
			assert.True(t, domain.IsValidationError(err), "expected validation error, got %v", err)
		})
	}

	assert.Empty(t, appRepo.items, "no application may be persisted on validation failure")
}

func TestSubmit_MissingProject(t *testing.T) {
	svc, _, appRepo, _ := setupService(t)

	app, err := svc.Submit(context.Background(), validSubmission(42))
	assert.Nil(t, app)
	assert.True(t, domain.IsValidationError(err))
	assert.Empty(t, appRepo.items)
}

func TestDecide_AcceptUpdatesProject(t *testing.T) {
	svc, projectRepo, _, proj := setupService(t)

	app, err := svc.Submit(context.Background(), validSubmission(proj.ID))
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), app.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, decided.Status)

	got, err := projectRepo.GetByID(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Equal(t, projects.StatusAccepted, got.Status)
}

func TestDecide_RejectLeavesProjectAlone(t *testing.T) {
	svc, projectRepo, _, proj := setupService(t)

	app, err := svc.Submit(context.Background(), validSubmission(proj.ID))
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), app.ID, "rejected")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, decided.Status)

	got, err := projectRepo.GetByID(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Equal(t, projects.StatusOpen, got.Status)
}

func TestDecide_NormalizesStatus(t *testing.T) {
	svc, _, _, proj := setupService(t)

	app, err := svc.Submit(context.Background(), validSubmission(proj.ID))
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), app.ID, "  Accepted ")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, decided.Status)
}

func TestDecide_UnknownTargetStatus(t *testing.T) {
	svc, _, _, proj := setupService(t)

	app, err := svc.Submit(context.Background(), validSubmission(proj.ID))
	require.NoError(t, err)

	for _, status := range []string{"pending", "approved", "done", ""} {
		_, err := svc.Decide(context.Background(), app.ID, status)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "status %q", status)
	}
}

func TestDecide_TerminalIsFinal(t *testing.T) {
	svc, _, _, proj := setupService(t)

	app, err := svc.Submit(context.Background(), validSubmission(proj.ID))
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), app.ID, "rejected")
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), app.ID, "accepted")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.Decide(context.Background(), app.ID, "rejected")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestDecide_NotFound(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.Decide(context.Background(), 99, "accepted")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecide_ConcurrentAcceptSingleWinner(t *testing.T) {
	svc, _, _, proj := setupService(t)

	app, err := svc.Submit(context.Background(), validSubmission(proj.ID))
	require.NoError(t, err)

	const callers = 8
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Decide(context.Background(), app.ID, "accepted")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	wins, losses := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, domain.ErrInvalidTransition)
			losses++
		}
	}
	assert.Equal(t, 1, wins, "exactly one accept must win")
	assert.Equal(t, callers-1, losses)
}

func TestList_IncludesProjectSummary(t *testing.T) {
	svc, _, _, proj := setupService(t)

	_, err := svc.Submit(context.Background(), validSubmission(proj.ID))
	require.NoError(t, err)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Project)
	assert.Equal(t, "Beach Cleanup", items[0].Project.Title)
}
