package domain

import (
	"context"
	"time"
)

// Project statuses. A project flips to accepted when any application against
// it is accepted; partial fulfillment is not tracked.
const (
	StatusOpen     = "open"
	StatusAccepted = "accepted"
)

type Project struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category,omitempty"`
	Status           string    `json:"status"`
	TimeCommitment   string    `json:"timeCommitment,omitempty"`
	Duration         string    `json:"duration,omitempty"`
	Location         string    `json:"location,omitempty"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	VolunteersNeeded int       `json:"volunteersNeeded"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Summary is the trimmed-down view embedded in application listings.
type Summary struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
}

// NewProject carries the caller-settable fields for creation.
type NewProject struct {
	Title            string
	Description      string
	Category         string
	TimeCommitment   string
	Duration         string
	Location         string
	ImageURL         string
	VolunteersNeeded int
}

type Repository interface {
	Create(ctx context.Context, p NewProject) (*Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Project, error)
	Delete(ctx context.Context, id int64) error
}
