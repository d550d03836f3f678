package user

import (
	"net/http"

	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/user/model"
	"hoteladmin/internal/domains/user/model/dto"
	"hoteladmin/internal/domains/user/service"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/validator"
	"hoteladmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// fail records err on the span and the log before writing it to the client.
func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// Router mounts account management. RBAC restricts it to superadmins.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateUser)
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Get("/{id}", handler.GetUserByID)
		routerGroup.Patch("/{id}", handler.UpdateUser)
		routerGroup.Delete("/{id}", handler.DeleteUser)
	})
}

// CreateUser opens an account on behalf of someone else.
// @Summary Create a new user
// @Description Create an account with the given role. The role defaults to user.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Data[dto.UserResponse] "User created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users [post]
// @Security BearerAuth
func (handler *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	var req dto.CreateUserRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create user")

		return
	}

	scope.AddEvent("User created successfully by user " + shared.Username(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetUsers pages through accounts.
// @Summary Get all users
// @Description Paginated accounts with optional filters.
// @Tags User
// @Produce json
// @Param page query integer false "Page number"
// @Param limit query integer false "Page size"
// @Param sort_by query string false "Sort column (username, level, created_at)"
// @Param sort_dir query string false "ASC or DESC"
// @Param username query string false "Filter by username"
// @Param level query string false "Filter by role"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetUsersResponse] "List of users"
// @Failure 500 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	var params gDto.QueryParams

	params.FromRequest(r, true)
	params.AllowSort(model.FieldUsername, model.FieldLevel, constant.FieldCreatedAt)

	users, err := handler.service.GetAll(ctx, params, dto.FilterFromRequest(r))
	if err != nil {
		handler.fail(w, scope, err, "failed to get users")

		return
	}

	scope.SetAttribute("users.total", users.TotalData)

	response.WithJSON(w, http.StatusOK, users)
}

// @Summary Get a user by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse] "User details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	scope.SetAttribute("user.id", id)

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get user by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateUser changes a user's role or active flag.
// @Summary Update a user by ID
// @Description Change the role or deactivate the account. Callers cannot change their own account.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Data[dto.UserResponse] "User updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	var req dto.UpdateUserRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to update user")

		return
	}

	scope.AddEvent("User updated successfully by user " + shared.Username(ctx))

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteUser removes an account. Callers cannot remove themselves.
// @Summary Delete a user by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		handler.fail(w, scope, err, "failed to delete user")

		return
	}

	scope.AddEvent("User deleted successfully by user " + shared.Username(ctx))

	response.WithMessage(w, http.StatusOK, "User deleted successfully")
}
