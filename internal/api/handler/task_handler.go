package handler

import (
	"errors"
	"net/http"

	"github.com/rarango1992/GPAC/internal/app/service"
	"github.com/rarango1992/GPAC/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Post("/AddTask", h.addTask)
	r.Post("/SearchTasks", h.searchTasks)
	r.Get("/GetTasks", h.getTasks)
	r.Get("/GetTasksByUser/{userId}", h.getTasksByUser)
	r.Put("/UpdateTask", h.updateTask)
	r.Delete("/DeleteTask", h.deleteTask)
}

func (h *TaskHandler) addTask(w http.ResponseWriter, r *http.Request) {
	var req service.AddTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.AddTask(r.Context(), req)
	switch {
	case err == nil:
		common.RespondEnvelope(w, http.StatusOK, task, "Task created in DB.", common.CodeOK)
	case errors.Is(err, service.ErrUserNotFound):
		common.RespondEnvelope(w, http.StatusOK, common.EmptyData, "User not found in DB.", common.CodeDomain)
	default:
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
	}
}

func (h *TaskHandler) searchTasks(w http.ResponseWriter, r *http.Request) {
	var req service.SearchTasksRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tasks, err := h.taskService.SearchTasks(r.Context(), req)
	if err != nil {
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
		return
	}
	common.RespondEnvelope(w, http.StatusOK, tasks, "Tasks List.", common.CodeOK)
}

func (h *TaskHandler) getTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
		return
	}
	common.RespondEnvelope(w, http.StatusOK, tasks, "Tasks List.", common.CodeOK)
}

func (h *TaskHandler) getTasksByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if _, err := uuid.Parse(userID); err != nil {
		common.RespondEnvelope(w, http.StatusOK,
			[]FieldDetail{{Field: "userId", Message: "failed validation on 'uuid'"}},
			"API Error.", common.CodeValidation)
		return
	}

	tasks, err := h.taskService.ListTasksByUser(r.Context(), userID)
	if err != nil {
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
		return
	}
	common.RespondEnvelope(w, http.StatusOK, tasks, "Tasks List.", common.CodeOK)
}

func (h *TaskHandler) updateTask(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), req)
	switch {
	case err == nil:
		common.RespondEnvelope(w, http.StatusOK, task, "Task updated in DB.", common.CodeOK)
	case errors.Is(err, service.ErrTaskNotFound):
		common.RespondEnvelope(w, http.StatusOK, common.EmptyData, "Task not found in DB.", common.CodeDomain)
	default:
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
	}
}

func (h *TaskHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	var req service.DeleteTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.DeleteTask(r.Context(), req)
	switch {
	case err == nil:
		common.RespondEnvelope(w, http.StatusOK, task, "Task deleted in DB.", common.CodeOK)
	case errors.Is(err, service.ErrTaskNotFound):
		common.RespondEnvelope(w, http.StatusOK, common.EmptyData, "Task not found in DB.", common.CodeDomain)
	default:
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
	}
}
