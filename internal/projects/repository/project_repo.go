package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/construware/construct-backend/internal/projects/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectColumns = `id, admin_id, client_name, project_name, client_email, client_phone,
start_date, status, budget, billing, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.AdminID, &p.ClientName, &p.ProjectName, &p.ClientEmail, &p.ClientPhone,
		&p.StartDate, &p.Status, &p.Budget, &p.Billing, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Billing == nil {
		p.Billing = []domain.BillingEntry{}
	}
	return &p, nil
}

func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
insert into projects (id, admin_id, client_name, project_name, client_email, client_phone, start_date, status, billing)
values ($1, $2, $3, $4, $5, $6, $7, $8, '[]'::jsonb)
returning ` + projectColumns + `;
`
	return scanProject(r.db.QueryRow(ctx, q,
		p.ID, p.AdminID, p.ClientName, p.ProjectName, p.ClientEmail, p.ClientPhone,
		p.StartDate, p.Status,
	))
}

func (r *Repo) GetByID(ctx context.Context, adminID, projectID uuid.UUID) (*domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where id = $1 and admin_id = $2;
`
	return scanProject(r.db.QueryRow(ctx, q, projectID, adminID))
}

func (r *Repo) ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where admin_id = $1
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, adminID, projectID uuid.UUID, patch domain.ProjectPatch) (*domain.Project, error) {
	const q = `
update projects
set client_name  = coalesce($3, client_name),
    project_name = coalesce($4, project_name),
    client_email = coalesce($5, client_email),
    client_phone = coalesce($6, client_phone),
    start_date   = coalesce($7, start_date),
    status       = coalesce($8, status),
    updated_at   = now()
where id = $1 and admin_id = $2
returning ` + projectColumns + `;
`
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	return scanProject(r.db.QueryRow(ctx, q, projectID, adminID,
		patch.ClientName, patch.ProjectName, patch.ClientEmail, patch.ClientPhone,
		patch.StartDate, status,
	))
}

func (r *Repo) Delete(ctx context.Context, adminID, projectID uuid.UUID) error {
	const q = `delete from projects where id = $1 and admin_id = $2;`
	ct, err := r.db.Exec(ctx, q, projectID, adminID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// mutate runs fn against the aggregate under a row lock and writes the
// budget and billing documents back in the same transaction. Read, compute,
// and write happen as one unit, so concurrent item updates cannot lose a
// total delta.
func (r *Repo) mutate(ctx context.Context, adminID, projectID uuid.UUID, fn func(p *domain.Project) error) (*domain.Project, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const sel = `
select ` + projectColumns + `
from projects
where id = $1 and admin_id = $2
for update;
`
	p, err := scanProject(tx.QueryRow(ctx, sel, projectID, adminID))
	if err != nil {
		return nil, err
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	const upd = `
update projects
set budget = $3, billing = $4, updated_at = now()
where id = $1 and admin_id = $2
returning updated_at;
`
	if err := tx.QueryRow(ctx, upd, projectID, adminID, p.Budget, p.Billing).Scan(&p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("write aggregate: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}

func (r *Repo) SetBudget(ctx context.Context, adminID, projectID uuid.UUID, patch domain.BudgetPatch) (*domain.Project, error) {
	return r.mutate(ctx, adminID, projectID, func(p *domain.Project) error {
		if p.Budget == nil {
			p.Budget = &domain.Budget{}
		}
		p.Budget.Apply(patch)
		return nil
	})
}

func (r *Repo) AddBudgetItem(ctx context.Context, adminID, projectID uuid.UUID, item domain.BudgetItem) (*domain.Project, error) {
	return r.mutate(ctx, adminID, projectID, func(p *domain.Project) error {
		if p.Budget == nil {
			p.Budget = &domain.Budget{}
		}
		p.Budget.AddItem(item)
		return nil
	})
}

func (r *Repo) UpdateBudgetItem(ctx context.Context, adminID, projectID, itemID uuid.UUID, patch domain.BudgetItemPatch) (*domain.Project, error) {
	return r.mutate(ctx, adminID, projectID, func(p *domain.Project) error {
		if p.Budget == nil {
			return domain.ErrBudgetItemNotFound
		}
		return p.Budget.PatchItem(itemID, patch)
	})
}

func (r *Repo) DeleteBudgetItem(ctx context.Context, adminID, projectID, itemID uuid.UUID) (*domain.Project, error) {
	return r.mutate(ctx, adminID, projectID, func(p *domain.Project) error {
		if p.Budget == nil {
			return nil
		}
		p.Budget.RemoveItem(itemID)
		return nil
	})
}

func (r *Repo) AddBillingEntry(ctx context.Context, adminID, projectID uuid.UUID, entry domain.BillingEntry) (*domain.Project, error) {
	return r.mutate(ctx, adminID, projectID, func(p *domain.Project) error {
		p.Billing = append(p.Billing, entry)
		return nil
	})
}

func (r *Repo) UpdateBillingEntry(ctx context.Context, adminID, projectID, entryID uuid.UUID, patch domain.BillingPatch) (*domain.Project, error) {
	return r.mutate(ctx, adminID, projectID, func(p *domain.Project) error {
		return domain.PatchEntry(p.Billing, entryID, patch)
	})
}

// DeleteBillingEntry pulls the entry if present. A missing entry id is not
// an error: the pull is a no-op and the call reports success.
func (r *Repo) DeleteBillingEntry(ctx context.Context, adminID, projectID, entryID uuid.UUID) (*domain.Project, error) {
	return r.mutate(ctx, adminID, projectID, func(p *domain.Project) error {
		for i := range p.Billing {
			if p.Billing[i].ID == entryID {
				p.Billing = append(p.Billing[:i], p.Billing[i+1:]...)
				break
			}
		}
		return nil
	})
}

// PendingBillingDigest is one row of the worker's stale-pending scan.
type PendingBillingDigest struct {
	ProjectID    uuid.UUID
	ProjectName  string
	PendingCount int
	PendingTotal float64
}

// ListStalePendingBilling reports, per project, pending billing entries
// dated before the cutoff. Entries without a status count as pending.
func (r *Repo) ListStalePendingBilling(ctx context.Context, cutoff time.Time) ([]PendingBillingDigest, error) {
	const q = `
select p.id, p.project_name, count(*), coalesce(sum((e->>'billingAmount')::numeric), 0)
from projects p, jsonb_array_elements(p.billing) e
where coalesce(e->>'status', 'pending') = 'pending'
  and (e->>'date')::timestamptz < $1
group by p.id, p.project_name
order by p.project_name;
`
	rows, err := r.db.Query(ctx, q, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PendingBillingDigest
	for rows.Next() {
		var d PendingBillingDigest
		if err := rows.Scan(&d.ProjectID, &d.ProjectName, &d.PendingCount, &d.PendingTotal); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
