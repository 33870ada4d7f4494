package service

import (
	"context"
	"errors"

	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/domain/model"
	"github.com/rarango1992/GPAC/internal/domain/query"
	"github.com/rarango1992/GPAC/internal/domain/repository"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, userRepo: userRepo}
}

type AddTaskRequest struct {
	UserID      string `json:"userId" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	EndDate     string `json:"endDate" validate:"required,len=10"`
}

type SearchTasksRequest struct {
	Filter *query.TaskFilter `json:"filter"`
	Order  *query.TaskOrder  `json:"order"`
}

type UpdateTaskRequest struct {
	UserID      string         `json:"userId" validate:"required,uuid"`
	ID          string         `json:"id" validate:"required,uuid"`
	Title       string         `json:"title" validate:"omitempty,max=255"`
	Description string         `json:"description"`
	Status      int            `json:"status" validate:"omitempty,min=1,max=3"`
	Priority    int            `json:"priority" validate:"omitempty,min=0,max=2"`
	EndDate     string         `json:"endDate" validate:"omitempty,len=10"`
	Notes       model.NoteList `json:"notes" validate:"omitempty,dive"`
	Tags        model.TagList  `json:"tags" validate:"omitempty,dive"`
}

type DeleteTaskRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// AddTask verifies the owning user exists, then inserts the task with the
// initial status, normal priority and today's update stamp.
func (s *TaskService) AddTask(ctx context.Context, req AddTaskRequest) (*model.Task, error) {
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, common.Errorf("failed to check task owner: %w", err)
	}

	task := &model.Task{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.StatusInitial,
		Priority:    model.PriorityNormal,
		EndDate:     req.EndDate,
		UpdateDate:  query.Today(),
		Notes:       model.NoteList{},
		Tags:        model.TagList{},
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, common.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) SearchTasks(ctx context.Context, req SearchTasksRequest) ([]model.Task, error) {
	tasks, err := s.taskRepo.Search(ctx, req.Filter)
	if err != nil {
		return nil, common.Errorf("failed to search tasks: %w", err)
	}
	query.SortTasks(tasks, req.Order)
	return tasks, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.taskRepo.Search(ctx, nil)
	if err != nil {
		return nil, common.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) ListTasksByUser(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.Errorf("failed to list tasks by user: %w", err)
	}
	return tasks, nil
}

// UpdateTask merges the present fields into a patch, stamps today's date,
// and applies it keyed on (id, owner). The merged record is re-read and
// returned; a mismatched owner surfaces as not found.
func (s *TaskService) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*model.Task, error) {
	patch := query.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
		Tags:        req.Tags,
	}

	if err := s.taskRepo.Update(ctx, req.ID, req.UserID, patch, query.Today()); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, common.Errorf("failed to update task: %w", err)
	}

	task, err := s.taskRepo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, common.Errorf("failed to reload task: %w", err)
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, req DeleteTaskRequest) (*model.Task, error) {
	task, err := s.taskRepo.Delete(ctx, req.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, common.Errorf("failed to delete task: %w", err)
	}
	return task, nil
}
