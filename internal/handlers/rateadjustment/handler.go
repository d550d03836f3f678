package rateadjustment

import (
	"net/http"

	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/rateadjustment/model/dto"
	"hoteladmin/internal/domains/rateadjustment/service"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/validator"
	"hoteladmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RateAdjustment
	otel    otel.Otel
}

func New(service service.RateAdjustment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rate-adjustments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRateAdjustment)
	})
}

// CreateRateAdjustment appends an adjustment to a room type's timeline.
// @Summary Add a rate adjustment
// @Description Append an adjustment. It is in force from its effective date until a later-dated adjustment exists.
// @Tags RateAdjustment
// @Accept json
// @Produce json
// @Param request body dto.CreateRateAdjustmentRequest true "Create Rate Adjustment Request"
// @Success 201 {object} response.Data[dto.RateAdjustmentResponse] "Rate adjustment created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rate-adjustments [post]
// @Security BearerAuth
func (handler *Handler) CreateRateAdjustment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRateAdjustment")
	defer scope.End()

	req := dto.CreateRateAdjustmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rate adjustment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate adjustment created successfully by user " + shared.Username(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}
