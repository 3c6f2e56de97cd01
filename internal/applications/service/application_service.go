package service

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/applications/domain"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/notify"
	projects "github.com/volunteer-hub/volunteer-hub-backend/internal/projects/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ApplicationService enforces the application lifecycle: submissions start
// pending, and only an admin decision moves them to a terminal state.
type ApplicationService struct {
	repo     domain.Repository
	projects projects.Repository
	notifier notify.Notifier
}

func NewApplicationService(repo domain.Repository, projectRepo projects.Repository, notifier notify.Notifier) *ApplicationService {
	return &ApplicationService{
		repo:     repo,
		projects: projectRepo,
		notifier: notifier,
	}
}

// Submit validates and persists a public application against an existing
// project. The email confirmation is dispatched in the background; a notify
// failure never fails the submission.
func (s *ApplicationService) Submit(ctx context.Context, app domain.NewApplication) (*domain.Application, error) {
	app.VolunteerName = strings.TrimSpace(app.VolunteerName)
	app.VolunteerEmail = strings.TrimSpace(app.VolunteerEmail)
	app.VolunteerPhone = strings.TrimSpace(app.VolunteerPhone)
	app.Motivation = strings.TrimSpace(app.Motivation)

	if app.VolunteerName == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if !emailPattern.MatchString(app.VolunteerEmail) {
		return nil, domain.NewValidationError("a valid email is required")
	}
	if app.Motivation == "" {
		return nil, domain.NewValidationError("motivation is required")
	}
	if app.ProjectID <= 0 {
		return nil, domain.NewValidationError("a valid project id is required")
	}

	if _, err := s.projects.GetByID(ctx, app.ProjectID); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			return nil, domain.NewValidationError("project does not exist")
		}
		return nil, err
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	go func(app domain.Application) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notifier.ApplicationReceived(ctx, &app); err != nil {
			log.Printf("application %d: notification failed: %v", app.ID, err)
		}
	}(*created)

	return created, nil
}

// Decide applies an admin decision. Only "accepted" and "rejected" are legal
// targets, and only pending applications can transition. Accepting also marks
// the owning project accepted.
func (s *ApplicationService) Decide(ctx context.Context, id int64, status string) (*domain.Application, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case domain.StatusAccepted:
		return s.repo.Accept(ctx, id)
	case domain.StatusRejected:
		return s.repo.Reject(ctx, id)
	default:
		return nil, domain.ErrInvalidTransition
	}
}

// List returns all applications joined with their project summary, oldest
// submission first.
func (s *ApplicationService) List(ctx context.Context) ([]domain.ApplicationWithProject, error) {
	return s.repo.ListWithProjects(ctx)
}

func (s *ApplicationService) Get(ctx context.Context, id int64) (*domain.Application, error) {
	return s.repo.GetByID(ctx, id)
}
