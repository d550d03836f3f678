package roomtype

import (
	"net/http"

	"hoteladmin/infras/otel"
	raDto "hoteladmin/internal/domains/rateadjustment/model/dto"
	"hoteladmin/internal/domains/roomtype/model"
	"hoteladmin/internal/domains/roomtype/model/dto"
	"hoteladmin/internal/domains/roomtype/service"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/validator"
	"hoteladmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomType
	otel    otel.Otel
}

func New(service service.RoomType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/{id}", handler.GetRoomTypeByID)
		routerGroup.Get("/{id}/effective-rate", handler.GetEffectiveRate)
		routerGroup.Get("/{id}/history", handler.GetHistory)
		routerGroup.Put("/{id}", handler.UpdateRoomType)
		routerGroup.Patch("/{id}", handler.UpdateRoomType)
		routerGroup.Delete("/{id}", handler.DeleteRoomType)
	})
}

// CreateRoomType handles the creation of a room type under an existing hotel.
// @Summary Create a new room type
// @Description Create a room type. Its effective rate starts at the base rate.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} response.Data[dto.RoomTypeResponse] "Room type created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type created successfully by user " + shared.Username(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRoomTypes lists room types resolved on one day.
// @Summary Get all room types
// @Description Paginated room types with their effective rates, optionally for one hotel.
// @Tags RoomType
// @Produce json
// @Param page query integer false "Page number"
// @Param limit query integer false "Page size"
// @Param sort_by query string false "Sort column (name, base_rate, created_at)"
// @Param sort_dir query string false "ASC or DESC"
// @Param hotel_id query string false "Filter by hotel"
// @Param date query string false "Resolution date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse] "List of room types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	on, err := shared.DateFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.FieldName, model.FieldBaseRate, constant.FieldCreatedAt)

	roomTypes, err := handler.service.GetAll(ctx, queryParams, dto.FilterFromRequest(r), on)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room types retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomTypes)
}

// GetRoomTypeByID retrieves a room type with its adjustment history.
// @Summary Get a room type by ID
// @Description Room type with its effective rate on the given date and every adjustment, newest first.
// @Tags RoomType
// @Produce json
// @Param id path string true "Room Type ID"
// @Param date query string false "Resolution date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.RoomTypeResponse] "Room type details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeByID")
	defer scope.End()

	on, err := shared.DateFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	roomType, err := handler.service.Get(ctx, id, on)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomType)
}

// GetEffectiveRate resolves the rate of a room type on one day.
// @Summary Get the effective rate of a room type
// @Description Base rate, effective rate and the adjustment in force on the given date.
// @Tags RoomType
// @Produce json
// @Param id path string true "Room Type ID"
// @Param date query string false "Resolution date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.EffectiveRateResponse] "Effective rate"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id}/effective-rate [get]
// @Security BearerAuth
func (handler *Handler) GetEffectiveRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEffectiveRate")
	defer scope.End()

	on, err := shared.DateFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	rate, err := handler.service.EffectiveRate(ctx, id, on)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve effective rate")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Effective rate resolved")

	response.WithJSON(w, http.StatusOK, rate)
}

// GetHistory lists every adjustment of a room type.
// @Summary Get the adjustment history of a room type
// @Description Adjustments ordered by creation time, newest first.
// @Tags RoomType
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Data[[]raDto.RateAdjustmentResponse] "Adjustment history"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var history []raDto.RateAdjustmentResponse

	history, err := handler.service.History(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get adjustment history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, history)
}

// UpdateRoomType partially updates a room type.
// @Summary Update a room type by ID
// @Description Update the name or base rate. A new base rate shifts every effective rate.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Update Room Type Request"
// @Success 200 {object} response.Data[dto.RoomTypeResponse] "Room type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [patch]
// @Router /v1/room-types/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type updated successfully by user " + shared.Username(ctx))

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteRoomType deletes a room type with its adjustments.
// @Summary Delete a room type by ID
// @Description Delete a room type. Its rate adjustments are removed in the same transaction.
// @Tags RoomType
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Message "Room type deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type deleted successfully by user " + shared.Username(ctx))

	response.WithMessage(w, http.StatusOK, "Room type deleted successfully")
}
