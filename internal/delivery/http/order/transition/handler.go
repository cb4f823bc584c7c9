package transition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/response"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	transitionService "github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/transition"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

type orderTransitioner interface {
	Transition(ctx context.Context, orderUUID uuid.UUID, to models.OrderStatus) (*models.Order, error)
	MarkItemDelivered(ctx context.Context, orderUUID uuid.UUID, index int) (*models.Order, error)
}

type ConflictResponse struct {
	Error string        `json:"error"`
	Order *models.Order `json:"order,omitempty"`
}

type Handler struct {
	log logger.Logger

	orderTransitioner orderTransitioner
}

func NewHandler(log logger.Logger, orderTransitioner orderTransitioner) *Handler {
	return &Handler{
		log:               log,
		orderTransitioner: orderTransitioner,
	}
}

func (h *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.transition.Transition"

	var request TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Warn(op, logger.String("failed to decode request", err.Error()))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	request.OrderUUID = chi.URLParam(r, "orderID")

	if err := request.validate(); err != nil {
		h.log.Warn(op, logger.String("failed to validate request", err.Error()))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	orderUUID, to := request.toServiceRepresentation()

	order, err := h.orderTransitioner.Transition(r.Context(), orderUUID, to)
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	if err = response.JSON(w, http.StatusOK, order); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}

func (h *Handler) MarkItemDelivered(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.transition.MarkItemDelivered"

	request := ItemDeliveredRequest{
		OrderUUID: chi.URLParam(r, "orderID"),
		Index:     chi.URLParam(r, "index"),
	}

	orderUUID, index, err := request.validate()
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderTransitioner.MarkItemDelivered(r.Context(), orderUUID, index)
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	if err = response.JSON(w, http.StatusOK, order); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var conflict *transitionService.ConflictError

	switch {
	case errors.As(err, &conflict):
		_ = response.JSON(w, http.StatusConflict, ConflictResponse{Error: err.Error(), Order: conflict.Current})
	case errors.Is(err, internalErrors.ErrInvalidTransition),
		errors.Is(err, internalErrors.ErrItemDeliveryNotAllowed):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, internalErrors.ErrOrderNotFound),
		errors.Is(err, internalErrors.ErrItemNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error(op, logger.Err(err))
		response.Error(w, http.StatusBadGateway, err.Error())
	}
}
