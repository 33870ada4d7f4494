package service

import (
	"context"
	"testing"

	"github.com/rarango1992/GPAC/internal/domain/model"
	"github.com/rarango1992/GPAC/internal/domain/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOwner(t *testing.T, users *fakeUserRepo) string {
	t.Helper()
	id := uuid.NewString()
	require.NoError(t, users.Create(context.Background(), &model.User{
		ID: id, Name: "owner" + id[:4], Password: "hash",
	}))
	return id
}

func TestAddTaskDefaults(t *testing.T) {
	users := newFakeUserRepo()
	tasks := newFakeTaskRepo()
	svc := NewTaskService(tasks, users)
	ctx := context.Background()
	owner := seedOwner(t, users)

	task, err := svc.AddTask(ctx, AddTaskRequest{
		UserID:      owner,
		Title:       "Pay rent",
		Description: "before the 5th",
		EndDate:     "05/10/2025",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInitial, task.Status)
	assert.Equal(t, model.PriorityNormal, task.Priority)
	assert.Equal(t, query.Today(), task.UpdateDate)
	assert.NotEmpty(t, task.ID)

	// Round-trip through the owner listing.
	listed, err := svc.ListTasksByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, task.ID, listed[0].ID)
}

func TestAddTaskUnknownOwner(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeUserRepo())

	_, err := svc.AddTask(context.Background(), AddTaskRequest{
		UserID:      uuid.NewString(),
		Title:       "orphan",
		Description: "no owner",
		EndDate:     "05/10/2025",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateTaskMergesPresentFieldsOnly(t *testing.T) {
	users := newFakeUserRepo()
	tasks := newFakeTaskRepo()
	svc := NewTaskService(tasks, users)
	ctx := context.Background()
	owner := seedOwner(t, users)

	created, err := svc.AddTask(ctx, AddTaskRequest{
		UserID: owner, Title: "Original", Description: "desc", EndDate: "05/10/2025",
	})
	require.NoError(t, err)

	// Only title present; status 0 is falsy and must be ignored.
	updated, err := svc.UpdateTask(ctx, UpdateTaskRequest{
		UserID: owner,
		ID:     created.ID,
		Title:  "Renamed",
		Status: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, model.StatusInitial, updated.Status)
	assert.Equal(t, query.Today(), updated.UpdateDate)
}

func TestUpdateTaskNotesAndTags(t *testing.T) {
	users := newFakeUserRepo()
	tasks := newFakeTaskRepo()
	svc := NewTaskService(tasks, users)
	ctx := context.Background()
	owner := seedOwner(t, users)

	created, err := svc.AddTask(ctx, AddTaskRequest{
		UserID: owner, Title: "T", Description: "d", EndDate: "05/10/2025",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, UpdateTaskRequest{
		UserID: owner,
		ID:     created.ID,
		Notes:  model.NoteList{{Text: "call bank", Date: "02/09/2025"}},
		Tags:   model.TagList{{Text: "errand", Color: "warning"}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Notes, 1)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "call bank", updated.Notes[0].Text)
	assert.Equal(t, "warning", updated.Tags[0].Color)
}

// An update naming a mismatched owner matches zero records and comes back
// as not found, not as an error.
func TestUpdateTaskWrongOwner(t *testing.T) {
	users := newFakeUserRepo()
	tasks := newFakeTaskRepo()
	svc := NewTaskService(tasks, users)
	ctx := context.Background()
	owner := seedOwner(t, users)

	created, err := svc.AddTask(ctx, AddTaskRequest{
		UserID: owner, Title: "T", Description: "d", EndDate: "05/10/2025",
	})
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, UpdateTaskRequest{
		UserID: uuid.NewString(),
		ID:     created.ID,
		Title:  "hijack",
	})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTaskNotFound(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeUserRepo())

	_, err := svc.DeleteTask(context.Background(), DeleteTaskRequest{ID: uuid.NewString()})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSearchTasksSorted(t *testing.T) {
	users := newFakeUserRepo()
	tasks := newFakeTaskRepo()
	svc := NewTaskService(tasks, users)
	ctx := context.Background()

	for i, status := range []int{3, 1, 2} {
		require.NoError(t, tasks.Create(ctx, &model.Task{
			ID:     uuid.NewString(),
			UserID: uuid.NewString(),
			Title:  string(rune('a' + i)),
			Status: status,
		}))
	}

	sorted, err := svc.SearchTasks(ctx, SearchTasksRequest{
		Order: &query.TaskOrder{Status: query.Asc},
	})
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, 1, sorted[0].Status)
	assert.Equal(t, 2, sorted[1].Status)
	assert.Equal(t, 3, sorted[2].Status)
}
