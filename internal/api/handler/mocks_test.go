package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/domain/model"
	"github.com/rarango1992/GPAC/internal/domain/query"

	"github.com/stretchr/testify/require"
)

// Minimal in-memory repositories backing the handler tests.

type memUserRepo struct {
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*model.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Name == user.Name {
			return common.ErrConflict
		}
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, common.ErrNotFound
}

func (m *memUserRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	for _, u := range m.users {
		if u.Name == name {
			clone := *u
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memUserRepo) Search(ctx context.Context, filter *query.UserFilter) ([]model.User, error) {
	out := []model.User{}
	for _, u := range m.users {
		clone := *u
		clone.Password = ""
		out = append(out, clone)
	}
	return out, nil
}

func (m *memUserRepo) Update(ctx context.Context, id string, patch query.UserPatch) error {
	u, ok := m.users[id]
	if !ok {
		return common.ErrNotFound
	}
	for _, c := range patch.Changes() {
		switch c.Column {
		case "admin_privileges":
			u.AdminPrivileges = c.Value.(bool)
		case "password":
			u.Password = c.Value.(string)
		}
	}
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	delete(m.users, id)
	clone := *u
	clone.Password = ""
	return &clone, nil
}

type memTaskRepo struct {
	tasks map[string]*model.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]*model.Task{}}
}

func (m *memTaskRepo) Create(ctx context.Context, task *model.Task) error {
	clone := *task
	m.tasks[task.ID] = &clone
	return nil
}

func (m *memTaskRepo) FindByID(ctx context.Context, id string) (*model.Task, error) {
	if t, ok := m.tasks[id]; ok {
		clone := *t
		return &clone, nil
	}
	return nil, common.ErrNotFound
}

func (m *memTaskRepo) Search(ctx context.Context, filter *query.TaskFilter) ([]model.Task, error) {
	out := []model.Task{}
	for _, t := range m.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTaskRepo) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	out := []model.Task{}
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memTaskRepo) Update(ctx context.Context, id, userID string, patch query.TaskPatch, updateDate string) error {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return common.ErrNotFound
	}
	for _, c := range patch.Changes(updateDate) {
		switch c.Column {
		case "title":
			t.Title = c.Value.(string)
		case "description":
			t.Description = c.Value.(string)
		case "status":
			t.Status = c.Value.(int)
		case "priority":
			t.Priority = c.Value.(int)
		case "end_date":
			t.EndDate = c.Value.(string)
		case "notes":
			t.Notes = c.Value.(model.NoteList)
		case "tags":
			t.Tags = c.Value.(model.TagList)
		case "update_date":
			t.UpdateDate = c.Value.(string)
		}
	}
	return nil
}

func (m *memTaskRepo) Delete(ctx context.Context, id string) (*model.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	delete(m.tasks, id)
	clone := *t
	return &clone, nil
}

// envelope mirrors common.Envelope with raw data for per-test decoding.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Msg   string          `json:"msg"`
	Code  int             `json:"code"`
	Token string          `json:"token"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
