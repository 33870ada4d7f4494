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

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByName(ctx context.Context, name string) (*model.User, error)
	Search(ctx context.Context, filter *query.UserFilter) ([]model.User, error)
	Update(ctx context.Context, id string, patch query.UserPatch) error
	Delete(ctx context.Context, id string) (*model.User, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	q := `INSERT INTO users (id, name, password, admin_privileges)
	      VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, q, user.ID, user.Name, user.Password, user.AdminPrivileges)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return fmt.Errorf("user with given name already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, "id", id)
}

func (r *pgUserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	return r.findOne(ctx, "name", name)
}

func (r *pgUserRepository) findOne(ctx context.Context, column, value string) (*model.User, error) {
	q := fmt.Sprintf(`SELECT id, name, password, admin_privileges FROM users WHERE %s = $1`, column)
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, q, value).Scan(
		&user.ID, &user.Name, &user.Password, &user.AdminPrivileges,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.findOne(%s): %w", column, err)
	}
	return user, nil
}

// Search runs the sparse filter predicate; a nil or empty filter returns
// every user. Password hashes are not selected.
func (r *pgUserRepository) Search(ctx context.Context, filter *query.UserFilter) ([]model.User, error) {
	pred := query.BuildUserPredicate(filter)
	q := `SELECT id, name, admin_privileges FROM users` + pred.WhereClause()

	rows, err := r.db.QueryContext(ctx, q, pred.Args()...)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.Search query: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.AdminPrivileges); err != nil {
			return nil, fmt.Errorf("pgUserRepository.Search scan: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.Search rows.Err: %w", err)
	}
	return users, nil
}

// Update applies the patch to the matching user; zero rows matched is a
// not-found outcome, distinct from a store failure.
func (r *pgUserRepository) Update(ctx context.Context, id string, patch query.UserPatch) error {
	changes := patch.Changes()
	if len(changes) == 0 {
		// Nothing to set, but the caller still expects existence checking.
		_, err := r.FindByID(ctx, id)
		return err
	}

	assignments := make([]string, len(changes))
	args := make([]interface{}, 0, len(changes)+1)
	for i, c := range changes {
		assignments[i] = fmt.Sprintf("%s = $%d", c.Column, i+1)
		args = append(args, c.Value)
	}
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(assignments, ", "), len(args))
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgUserRepository.Update RowsAffected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Delete removes the user physically and returns the removed record.
func (r *pgUserRepository) Delete(ctx context.Context, id string) (*model.User, error) {
	q := `DELETE FROM users WHERE id = $1 RETURNING id, name, admin_privileges`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&user.ID, &user.Name, &user.AdminPrivileges)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	return user, nil
}
