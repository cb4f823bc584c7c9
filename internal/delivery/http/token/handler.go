package token

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/response"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

type tokenRegistrar interface {
	Register(ctx context.Context, userID, token string) error
	Unregister(ctx context.Context, userID, token string) error
}

type Handler struct {
	log logger.Logger

	tokenRegistrar tokenRegistrar
}

func NewHandler(log logger.Logger, tokenRegistrar tokenRegistrar) *Handler {
	return &Handler{
		log:            log,
		tokenRegistrar: tokenRegistrar,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.token.Register"

	h.handle(w, r, op, h.tokenRegistrar.Register)
}

func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.token.Unregister"

	h.handle(w, r, op, h.tokenRegistrar.Unregister)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	record func(ctx context.Context, userID, token string) error,
) {
	var request TokenRequest
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

	if err := record(r.Context(), request.UserID, request.Token); err != nil {
		h.log.Error(op, logger.Err(err), logger.String("user_id", request.UserID))
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
