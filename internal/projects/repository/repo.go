package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/projects/domain"
)

// Repo provides persistence operations for projects.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectColumns = `id, title, description, category, status, time_commitment, duration, location, image_url, volunteers_needed, created_at`

// Create inserts a new project. New projects always start open.
func (r *Repo) Create(ctx context.Context, p domain.NewProject) (*domain.Project, error) {
	const q = `
insert into projects (title, description, category, status, time_commitment, duration, location, image_url, volunteers_needed)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
returning ` + projectColumns + `;
`
	row := r.db.QueryRow(ctx, q,
		p.Title, p.Description, p.Category, domain.StatusOpen,
		p.TimeCommitment, p.Duration, p.Location, p.ImageURL, p.VolunteersNeeded)

	return scanProject(row)
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where id = $1;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns all projects, oldest first.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
order by created_at asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.Status,
			&p.TimeCommitment, &p.Duration, &p.Location, &p.ImageURL,
			&p.VolunteersNeeded, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Project, error) {
	const q = `
update projects
set status = $2
where id = $1
returning ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a project. Applications referencing it are removed by the
// ON DELETE CASCADE constraint.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `delete from projects where id = $1;`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Status,
		&p.TimeCommitment, &p.Duration, &p.Location, &p.ImageURL,
		&p.VolunteersNeeded, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
