package handlers

import (
	"net/http"
	"strings"

	"USERTODO_BACK-END/internal/config"
	"USERTODO_BACK-END/internal/dto"
	"USERTODO_BACK-END/internal/models"
	"USERTODO_BACK-END/internal/store"
	"USERTODO_BACK-END/internal/utils"
)

// UsersHandler handles /users endpoints
type UsersHandler struct {
	store  store.UserStore
	errors errorWriter
}

// NewUsersHandler creates a new UsersHandler instance
func NewUsersHandler(s store.UserStore, cfg *config.ServerConfig) *UsersHandler {
	return &UsersHandler{store: s, errors: errorWriter{exposeDetails: cfg.ExposeErrorDetails}}
}

// Create handles POST /users
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param payload body dto.CreateUserRequest true "User payload"
// @Success 201 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /users [post]
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := utils.ValidateStruct(req); err != nil {
		validationError(w, err)
		return
	}

	user, err := h.store.CreateUser(r.Context(), store.NewUser{
		Name:    req.Name,
		Email:   req.Email,
		Age:     req.Age,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		h.errors.storeError(w, r, err, "User not found")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, "User created", toUserResponse(user))
}

// List handles GET /users
// @Summary List users
// @Description Returns every user; order is not guaranteed
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.UserResponse}
// @Failure 500 {object} dto.Response
// @Router /users [get]
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.errors.storeError(w, r, err, "User not found")
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	utils.WriteSuccessResponse(w, http.StatusOK, "Get All Users", items)
}

// Get handles GET /users/{id}
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /users/{id} [get]
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user id", err.Error())
		return
	}

	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		h.errors.storeError(w, r, err, "User not found")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, "Single user", toUserResponse(user))
}

// Update handles PUT /users/{id}
// @Summary Update a user's name and email
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param payload body dto.UpdateUserRequest true "Update payload"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /users/{id} [put]
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user id", err.Error())
		return
	}

	var req dto.UpdateUserRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := utils.ValidateStruct(req); err != nil {
		validationError(w, err)
		return
	}

	user, err := h.store.UpdateUser(r.Context(), id, store.UserUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		h.errors.storeError(w, r, err, "User not found")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, "Updated Successfully", toUserResponse(user))
}

// Delete handles DELETE /users/{id}
// @Summary Delete a user and their todos
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /users/{id} [delete]
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user id", err.Error())
		return
	}

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		h.errors.storeError(w, r, err, "User not found")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, "User deleted", nil)
}

func toUserResponse(u models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: utils.FormatTimestamp(u.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(u.UpdatedAt),
	}
}
