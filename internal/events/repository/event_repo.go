package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/construware/construct-backend/internal/events/domain"
)

// Repo persists project events in the project_events table.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ProjectOwned reports whether the project exists and belongs to the admin.
// Absent and not-owned are indistinguishable on purpose.
func (r *Repo) ProjectOwned(ctx context.Context, adminID, projectID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1 AND admin_id = $2)`

	var owned bool
	if err := r.db.QueryRowContext(ctx, q, projectID, adminID).Scan(&owned); err != nil {
		return false, fmt.Errorf("check project ownership: %w", err)
	}
	return owned, nil
}

func (r *Repo) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	const q = `
		INSERT INTO project_events (id, project_id, admin_id, type, data, status, event_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err = r.db.QueryRowContext(ctx, q,
		e.ID, e.ProjectID, e.AdminID, e.Type, data, e.Status, e.EventDate,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Event, error) {
	const q = `
		SELECT id, project_id, admin_id, type, data, status, event_date, created_at, updated_at
		FROM project_events
		WHERE project_id = $1
		ORDER BY event_date DESC`

	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Event, 0, 8)
	for rows.Next() {
		var e domain.Event
		var data []byte
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.AdminID, &e.Type, &data, &e.Status, &e.EventDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &e.Data); err != nil {
				return nil, fmt.Errorf("unmarshal event data: %w", err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateStatus matches by (event id, admin id) directly; the admin id on
// the event itself is the ownership authority.
func (r *Repo) UpdateStatus(ctx context.Context, adminID, eventID uuid.UUID, status domain.EventStatus) (*domain.Event, error) {
	const q = `
		UPDATE project_events
		SET status = $3, updated_at = now()
		WHERE id = $1 AND admin_id = $2
		RETURNING id, project_id, admin_id, type, data, status, event_date, created_at, updated_at`

	var e domain.Event
	var data []byte
	err := r.db.QueryRowContext(ctx, q, eventID, adminID, status).
		Scan(&e.ID, &e.ProjectID, &e.AdminID, &e.Type, &data, &e.Status, &e.EventDate, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update event status: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &e.Data); err != nil {
			return nil, fmt.Errorf("unmarshal event data: %w", err)
		}
	}
	return &e, nil
}

func (r *Repo) Delete(ctx context.Context, adminID, eventID uuid.UUID) error {
	const q = `DELETE FROM project_events WHERE id = $1 AND admin_id = $2`

	res, err := r.db.ExecContext(ctx, q, eventID, adminID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
