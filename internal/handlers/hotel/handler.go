package hotel

import (
	"net/http"

	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/hotel/model"
	"hoteladmin/internal/domains/hotel/model/dto"
	"hoteladmin/internal/domains/hotel/service"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/validator"
	"hoteladmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{id}", handler.GetHotelByID)
		routerGroup.Put("/{id}", handler.UpdateHotel)
		routerGroup.Patch("/{id}", handler.UpdateHotel)
		routerGroup.Delete("/{id}", handler.DeleteHotel)
		routerGroup.Post("/{id}/rate-sheets", handler.PublishRateSheet)
		routerGroup.Delete("/{id}/rate-sheets", handler.WithdrawRateSheet)
	})
}

// CreateHotel handles the creation of a new hotel.
// @Summary Create a new hotel
// @Description Create a hotel. Status defaults to active.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} response.Data[dto.HotelResponse] "Hotel created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel created successfully by user " + shared.Username(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetHotels lists hotels with their room types resolved on one day.
// @Summary Get all hotels
// @Description Paginated hotels, each with its room types and their effective rates.
// @Tags Hotel
// @Produce json
// @Param page query integer false "Page number"
// @Param limit query integer false "Page size"
// @Param sort_by query string false "Sort column (name, location, status, created_at)"
// @Param sort_dir query string false "ASC or DESC"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param status query string false "Filter by status"
// @Param date query string false "Resolution date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.GetHotelsResponse] "List of hotels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
// @Security BearerAuth
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	on, err := shared.DateFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.FieldName, model.FieldLocation, model.FieldStatus, constant.FieldCreatedAt)

	hotels, err := handler.service.GetAll(ctx, queryParams, dto.FilterFromRequest(r), on)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelByID retrieves a hotel by its ID.
// @Summary Get a hotel by ID
// @Description Hotel with nested room types, each resolved on the given date.
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Param date query string false "Resolution date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.HotelResponse] "Hotel details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	on, err := shared.DateFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	hotel, err := handler.service.Get(ctx, id, on)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotel)
}

// UpdateHotel partially updates a hotel.
// @Summary Update a hotel by ID
// @Description Update any of name, location and status. Omitted fields keep their value.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} response.Data[dto.HotelResponse] "Hotel updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [patch]
// @Router /v1/hotels/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateHotelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel updated successfully by user " + shared.Username(ctx))

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteHotel deletes a hotel with its room types and their adjustments.
// @Summary Delete a hotel by ID
// @Description Delete a hotel. Its room types and rate adjustments are removed in the same transaction.
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Message "Hotel deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel deleted successfully by user " + shared.Username(ctx))

	response.WithMessage(w, http.StatusOK, "Hotel deleted successfully")
}

// PublishRateSheet uploads the hotel's rate sheet for one day.
// @Summary Publish a rate sheet
// @Description Resolve every room type of the hotel on the given date and upload the document to object storage.
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Param date query string false "Resolution date (YYYY-MM-DD), defaults to today"
// @Success 201 {object} response.Data[dto.PublishRateSheetResponse] "Rate sheet published"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rate-sheets [post]
// @Security BearerAuth
func (handler *Handler) PublishRateSheet(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublishRateSheet")
	defer scope.End()

	on, err := shared.DateFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.PublishRateSheet(ctx, id, on)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to publish rate sheet")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate sheet published to " + res.URL)

	response.WithJSON(w, http.StatusCreated, res)
}

// WithdrawRateSheet deletes a published rate sheet.
// @Summary Withdraw a rate sheet
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.WithdrawRateSheetRequest true "Published sheet URL"
// @Success 200 {object} response.Message "Rate sheet withdrawn"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rate-sheets [delete]
// @Security BearerAuth
func (handler *Handler) WithdrawRateSheet(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WithdrawRateSheet")
	defer scope.End()

	var req dto.WithdrawRateSheetRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.WithdrawRateSheet(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to withdraw rate sheet")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Rate sheet withdrawn")
}
