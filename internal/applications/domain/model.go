package domain

import (
	"context"
	"time"

	projects "github.com/volunteer-hub/volunteer-hub-backend/internal/projects/domain"
)

// Application statuses. pending is the only non-terminal state: once an
// application is accepted or rejected it never transitions again.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Application struct {
	ID             int64     `json:"id"`
	ProjectID      int64     `json:"projectId"`
	VolunteerName  string    `json:"volunteerName"`
	VolunteerEmail string    `json:"volunteerEmail"`
	VolunteerPhone string    `json:"volunteerPhone,omitempty"`
	Motivation     string    `json:"motivation"`
	Status         string    `json:"status"`
	AppliedAt      time.Time `json:"appliedAt"`
}

// ApplicationWithProject is the admin listing view: an application joined
// with a summary of the project it targets.
type ApplicationWithProject struct {
	Application
	Project *projects.Summary `json:"project,omitempty"`
}

// NewApplication carries the caller-settable fields for submission.
type NewApplication struct {
	ProjectID      int64
	VolunteerName  string
	VolunteerEmail string
	VolunteerPhone string
	Motivation     string
}

type Repository interface {
	Create(ctx context.Context, app NewApplication) (*Application, error)
	GetByID(ctx context.Context, id int64) (*Application, error)
	ListWithProjects(ctx context.Context) ([]ApplicationWithProject, error)

	// Accept moves a pending application to accepted and, in the same
	// transaction, marks the owning project accepted. Reject moves a pending
	// application to rejected and leaves the project alone. Both return
	// ErrInvalidTransition when the application is already terminal.
	Accept(ctx context.Context, id int64) (*Application, error)
	Reject(ctx context.Context, id int64) (*Application, error)
}
