package handler

import (
	"errors"
	"net/http"

	"github.com/rarango1992/GPAC/internal/app/service"
	"github.com/rarango1992/GPAC/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterPublicRoutes mounts the unauthenticated surface.
func (h *UserHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/Login", h.login)
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/SearchUsers", h.searchUsers)
	r.Get("/GetUsers", h.getUsers)
}

// RegisterAdminRoutes mounts user administration; the router guards these
// with the admin check.
func (h *UserHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/AddUser", h.addUser)
	r.Put("/UpdateUser", h.updateUser)
	r.Delete("/DeleteUser", h.deleteUser)
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.userService.Login(r.Context(), req)
	switch {
	case err == nil:
		common.RespondWithJSON(w, http.StatusOK, common.Envelope{
			Data:  result.Profile,
			Msg:   "Login Success.",
			Code:  common.CodeOK,
			Token: result.Token,
		})
	case errors.Is(err, service.ErrInvalidUser):
		common.RespondEnvelope(w, http.StatusOK, service.Profile{Login: false}, "Invalid User.", common.CodeDomain)
	case errors.Is(err, service.ErrInvalidPassword):
		common.RespondEnvelope(w, http.StatusOK, service.Profile{Login: false}, "Invalid Password.", common.CodeDomain)
	default:
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
	}
}

func (h *UserHandler) addUser(w http.ResponseWriter, r *http.Request) {
	var req service.AddUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.AddUser(r.Context(), req)
	switch {
	case err == nil:
		common.RespondEnvelope(w, http.StatusOK, user, "User created in DB.", common.CodeOK)
	case errors.Is(err, service.ErrUserExists):
		common.RespondEnvelope(w, http.StatusOK, common.EmptyData, "User already exists in DB.", common.CodeDomain)
	default:
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
	}
}

func (h *UserHandler) searchUsers(w http.ResponseWriter, r *http.Request) {
	var req service.SearchUsersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	users, err := h.userService.SearchUsers(r.Context(), req)
	if err != nil {
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
		return
	}
	common.RespondEnvelope(w, http.StatusOK, users, "User List.", common.CodeOK)
}

func (h *UserHandler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
		return
	}
	common.RespondEnvelope(w, http.StatusOK, users, "User List.", common.CodeOK)
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), req)
	switch {
	case err == nil:
		common.RespondEnvelope(w, http.StatusOK, user, "User updated in DB.", common.CodeOK)
	case errors.Is(err, service.ErrUserNotFound):
		common.RespondEnvelope(w, http.StatusOK, common.EmptyData, "User not found in DB.", common.CodeDomain)
	default:
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
	}
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	var req service.DeleteUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.DeleteUser(r.Context(), req)
	switch {
	case err == nil:
		common.RespondEnvelope(w, http.StatusOK, user, "User deleted in DB.", common.CodeOK)
	case errors.Is(err, service.ErrUserNotFound):
		common.RespondEnvelope(w, http.StatusOK, common.EmptyData, "User not found in DB.", common.CodeDomain)
	default:
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.CodeStoreError)
	}
}
