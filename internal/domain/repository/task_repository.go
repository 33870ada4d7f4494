package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/domain/model"
	"github.com/rarango1992/GPAC/internal/domain/query"
)

type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id string) (*model.Task, error)
	Search(ctx context.Context, filter *query.TaskFilter) ([]model.Task, error)
	ListByUser(ctx context.Context, userID string) ([]model.Task, error)
	Update(ctx context.Context, id, userID string, patch query.TaskPatch, updateDate string) error
	Delete(ctx context.Context, id string) (*model.Task, error)
}

type pgTaskRepository struct {
	db *sql.DB
}

func NewPgTaskRepository(db *sql.DB) TaskRepository {
	return &pgTaskRepository{db: db}
}

const taskColumns = `id, user_id, title, description, status, priority, end_date, update_date, notes, tags`

func (r *pgTaskRepository) Create(ctx context.Context, task *model.Task) error {
	q := `INSERT INTO tasks (` + taskColumns + `)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, q,
		task.ID, task.UserID, task.Title, task.Description,
		task.Status, task.Priority, task.EndDate, task.UpdateDate,
		task.Notes, task.Tags,
	)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task := &model.Task{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &task.EndDate, &task.UpdateDate,
		&task.Notes, &task.Tags,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTaskRepository.FindByID: %w", err)
	}
	return task, nil
}

// Search runs the sparse filter predicate; a nil or empty filter returns
// every task. Ordering is the caller's concern.
func (r *pgTaskRepository) Search(ctx context.Context, filter *query.TaskFilter) ([]model.Task, error) {
	pred := query.BuildTaskPredicate(filter)
	q := `SELECT ` + taskColumns + ` FROM tasks` + pred.WhereClause()
	return r.queryTasks(ctx, q, pred.Args()...)
}

func (r *pgTaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	return r.queryTasks(ctx, q, userID)
}

func (r *pgTaskRepository) queryTasks(ctx context.Context, q string, args ...interface{}) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("pgTaskRepository.queryTasks query: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description,
			&t.Status, &t.Priority, &t.EndDate, &t.UpdateDate,
			&t.Notes, &t.Tags,
		); err != nil {
			return nil, fmt.Errorf("pgTaskRepository.queryTasks scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTaskRepository.queryTasks rows.Err: %w", err)
	}
	return tasks, nil
}

// Update applies the patch as a single conditional update keyed on both the
// task id and the owning user. A mismatched owner matches zero records and
// surfaces as not found rather than an error.
func (r *pgTaskRepository) Update(ctx context.Context, id, userID string, patch query.TaskPatch, updateDate string) error {
	changes := patch.Changes(updateDate)

	assignments := make([]string, len(changes))
	args := make([]interface{}, 0, len(changes)+2)
	for i, c := range changes {
		assignments[i] = fmt.Sprintf("%s = $%d", c.Column, i+1)
		args = append(args, c.Value)
	}
	args = append(args, id, userID)

	q := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d`,
		strings.Join(assignments, ", "), len(args)-1, len(args))
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Update RowsAffected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Delete removes the task physically and returns the removed record.
func (r *pgTaskRepository) Delete(ctx context.Context, id string) (*model.Task, error) {
	q := `DELETE FROM tasks WHERE id = $1 RETURNING ` + taskColumns
	task := &model.Task{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &task.EndDate, &task.UpdateDate,
		&task.Notes, &task.Tags,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTaskRepository.Delete: %w", err)
	}
	return task, nil
}
