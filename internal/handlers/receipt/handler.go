package receipt

import (
	"net/http"
	"staybook/infras/otel"
	"staybook/internal/domains/receipt/service"
	"staybook/shared"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/logger"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Receipt
	otel    otel.Otel
}

func New(service service.Receipt, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/receipts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReceipts)
		routerGroup.Get("/{"+constant.RequestParamID+"}", handler.GetReceipt)
	})
}

// GetReceipts lists the booking receipts kept for the calling device.
// @Summary List booking receipts
// @Tags Receipt
// @Produce json
// @Param X-Device-ID header string true "Anonymous device identifier"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReceiptsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/receipts [get]
func (handler *Handler) GetReceipts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceipts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	receipts, err := handler.service.List(ctx, shared.DeviceID(ctx), queryParams)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get receipts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, receipts)
}

// GetReceipt returns one receipt of the calling device.
// @Summary Get a booking receipt
// @Tags Receipt
// @Produce json
// @Param X-Device-ID header string true "Anonymous device identifier"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.ReceiptResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/receipts/{id} [get]
func (handler *Handler) GetReceipt(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceipt")
	defer scope.End()

	receipt, err := handler.service.Get(ctx, shared.DeviceID(ctx), chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get receipt")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, receipt)
}
