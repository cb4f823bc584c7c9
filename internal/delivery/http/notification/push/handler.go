package push

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/response"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/ingestion"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

type pushDeliverer interface {
	DeliverPush(ctx context.Context, msg ingestion.RemoteMessage)
}

// Handler is the push provider's delivery webhook.
type Handler struct {
	log logger.Logger

	pushDeliverer pushDeliverer
}

func NewHandler(log logger.Logger, pushDeliverer pushDeliverer) *Handler {
	return &Handler{
		log:           log,
		pushDeliverer: pushDeliverer,
	}
}

func (h *Handler) Deliver(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notification.push.Deliver"

	var request PushRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Warn(op, logger.String("failed to decode request", err.Error()))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := request.validate(); err != nil {
		h.log.Warn(op, logger.String("failed to validate request", err.Error()))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	// Duplicates and malformed payloads are dropped downstream; the provider only
	// needs to know the message was taken.
	h.pushDeliverer.DeliverPush(r.Context(), request.toServiceRepresentation())

	w.WriteHeader(http.StatusAccepted)
}
