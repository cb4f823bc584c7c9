package get

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/response"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/queue"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

type orderGetter interface {
	OrderByUUID(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	Queue(ctx context.Context, shopID string, filter queue.Filter) (queue.View, error)
}

type Handler struct {
	log logger.Logger

	orderGetter orderGetter
}

func NewHandler(log logger.Logger, orderGetter orderGetter) *Handler {
	return &Handler{
		log:         log,
		orderGetter: orderGetter,
	}
}

func (h *Handler) Queue(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.get.Queue"

	request := QueueRequest{
		ShopID: chi.URLParam(r, "shopID"),
		Filter: r.URL.Query().Get("filter"),
	}

	filter, err := request.validate()
	if err != nil {
		h.log.Warn(op, logger.String("failed to validate request", err.Error()))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.orderGetter.Queue(r.Context(), request.ShopID, filter)
	if err != nil {
		h.log.Error(op, logger.String("failed to build queue", err.Error()))
		response.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	if err = response.JSON(w, http.StatusOK, view); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}

func (h *Handler) OrderByUUID(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.get.OrderByUUID"

	request := OrderByUUIDRequest{OrderUUID: chi.URLParam(r, "orderID")}
	if err := request.validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderGetter.OrderByUUID(r.Context(), request.toServiceRepresentation())
	if err != nil {
		if errors.Is(err, internalErrors.ErrOrderNotFound) {
			response.Error(w, http.StatusNotFound, err.Error())
			return
		}

		h.log.Error(op, logger.String("failed to get order", err.Error()))
		response.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	if err = response.JSON(w, http.StatusOK, order); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
