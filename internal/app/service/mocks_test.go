package service

import (
	"context"

	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/domain/model"
	"github.com/rarango1992/GPAC/internal/domain/query"
)

// In-memory repository fakes. The task fake applies patches by column name
// so the merge semantics are exercised end to end.

type fakeUserRepo struct {
	users map[string]*model.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Name == user.Name {
			return common.ErrConflict
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	for _, u := range f.users {
		if u.Name == name {
			clone := *u
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) Search(ctx context.Context, filter *query.UserFilter) ([]model.User, error) {
	out := []model.User{}
	for _, u := range f.users {
		clone := *u
		clone.Password = ""
		out = append(out, clone)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, patch query.UserPatch) error {
	u, ok := f.users[id]
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

func (f *fakeUserRepo) Delete(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	delete(f.users, id)
	clone := *u
	clone.Password = ""
	return &clone, nil
}

type fakeTaskRepo struct {
	tasks map[string]*model.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*model.Task{}}
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *model.Task) error {
	clone := *task
	f.tasks[task.ID] = &clone
	return nil
}

func (f *fakeTaskRepo) FindByID(ctx context.Context, id string) (*model.Task, error) {
	if t, ok := f.tasks[id]; ok {
		clone := *t
		return &clone, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeTaskRepo) Search(ctx context.Context, filter *query.TaskFilter) ([]model.Task, error) {
	out := []model.Task{}
	for _, t := range f.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTaskRepo) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	out := []model.Task{}
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, id, userID string, patch query.TaskPatch, updateDate string) error {
	t, ok := f.tasks[id]
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

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) (*model.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	delete(f.tasks, id)
	clone := *t
	return &clone, nil
}
