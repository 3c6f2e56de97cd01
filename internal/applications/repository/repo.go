package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/applications/domain"
	projects "github.com/volunteer-hub/volunteer-hub-backend/internal/projects/domain"
)

// Repo provides persistence operations for applications.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const applicationColumns = `id, project_id, volunteer_name, volunteer_email, volunteer_phone, motivation, status, applied_at`

func (r *Repo) Create(ctx context.Context, app domain.NewApplication) (*domain.Application, error) {
	const q = `
insert into applications (project_id, volunteer_name, volunteer_email, volunteer_phone, motivation, status)
values ($1, $2, $3, $4, $5, $6)
returning ` + applicationColumns + `;
`
	row := r.db.QueryRow(ctx, q,
		app.ProjectID, app.VolunteerName, app.VolunteerEmail,
		app.VolunteerPhone, app.Motivation, domain.StatusPending)

	return scanApplication(row)
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	const q = `
select ` + applicationColumns + `
from applications
where id = $1;
`
	app, err := scanApplication(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

// ListWithProjects returns every application joined with a summary of its
// project, ordered by submission time ascending.
func (r *Repo) ListWithProjects(ctx context.Context) ([]domain.ApplicationWithProject, error) {
	const q = `
select a.id, a.project_id, a.volunteer_name, a.volunteer_email, a.volunteer_phone, a.motivation, a.status, a.applied_at,
       p.id, p.title, p.category, p.status, p.location
from applications a
left join projects p on p.id = a.project_id
order by a.applied_at asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ApplicationWithProject, 0, 16)
	for rows.Next() {
		var item domain.ApplicationWithProject
		var (
			projID              *int64
			projTitle, projCat  *string
			projStatus, projLoc *string
		)
		if err := rows.Scan(
			&item.ID, &item.ProjectID, &item.VolunteerName, &item.VolunteerEmail,
			&item.VolunteerPhone, &item.Motivation, &item.Status, &item.AppliedAt,
			&projID, &projTitle, &projCat, &projStatus, &projLoc,
		); err != nil {
			return nil, err
		}
		if projID != nil {
			item.Project = &projects.Summary{
				ID:       *projID,
				Title:    deref(projTitle),
				Category: deref(projCat),
				Status:   deref(projStatus),
				Location: deref(projLoc),
			}
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Accept moves a pending application to accepted and marks the owning
// project accepted in the same transaction. The status guard in the UPDATE
// makes concurrent accepts serialize: exactly one caller wins, the rest get
// ErrInvalidTransition.
func (r *Repo) Accept(ctx context.Context, id int64) (*domain.Application, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin accept tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
update applications
set status = $2
where id = $1 and status = $3
returning ` + applicationColumns + `;
`
	app, err := scanApplication(tx.QueryRow(ctx, q, id, domain.StatusAccepted, domain.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyStatusFailure(ctx, id)
		}
		return nil, err
	}

	const pq = `update projects set status = $2 where id = $1;`
	if _, err := tx.Exec(ctx, pq, app.ProjectID, projects.StatusAccepted); err != nil {
		return nil, fmt.Errorf("update project status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit accept tx: %w", err)
	}
	return app, nil
}

// Reject moves a pending application to rejected. The project is untouched.
func (r *Repo) Reject(ctx context.Context, id int64) (*domain.Application, error) {
	const q = `
update applications
set status = $2
where id = $1 and status = $3
returning ` + applicationColumns + `;
`
	app, err := scanApplication(r.db.QueryRow(ctx, q, id, domain.StatusRejected, domain.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyStatusFailure(ctx, id)
		}
		return nil, err
	}
	return app, nil
}

// classifyStatusFailure distinguishes "no such application" from "already
// terminal" after a guarded update matched nothing.
func (r *Repo) classifyStatusFailure(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrInvalidTransition
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(
		&app.ID, &app.ProjectID, &app.VolunteerName, &app.VolunteerEmail,
		&app.VolunteerPhone, &app.Motivation, &app.Status, &app.AppliedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
