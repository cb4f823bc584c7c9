package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/response"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/popup"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type notificationFeed interface {
	List() []models.InAppNotification
	UnreadCount() int
	MarkRead(id uuid.UUID) error
	ClearAll()
}

type popupSubscriber interface {
	Subscribe() (<-chan popup.Popup, func())
}

type FeedResponse struct {
	Items  []models.InAppNotification `json:"items"`
	Unread int                        `json:"unread"`
}

type Handler struct {
	log logger.Logger

	feed   notificationFeed
	popups popupSubscriber
}

func NewHandler(log logger.Logger, feed notificationFeed, popups popupSubscriber) *Handler {
	return &Handler{
		log:    log,
		feed:   feed,
		popups: popups,
	}
}

func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	const op = "delivery.http.notification.feed.List"

	resp := FeedResponse{
		Items:  h.feed.List(),
		Unread: h.feed.UnreadCount(),
	}

	if err := response.JSON(w, http.StatusOK, resp); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}

func (h *Handler) ClearAll(w http.ResponseWriter, _ *http.Request) {
	h.feed.ClearAll()

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notification.feed.MarkRead"

	id, err := uuid.Parse(chi.URLParam(r, "notificationID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err = h.feed.MarkRead(id); err != nil {
		if errors.Is(err, internalErrors.ErrNotificationNotFound) {
			response.Error(w, http.StatusNotFound, err.Error())
			return
		}

		h.log.Error(op, logger.Err(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Popups streams full-screen popups as server-sent events for as long as the client
// stays connected.
func (h *Handler) Popups(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notification.feed.Popups"

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.Error(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ch, cancel := h.popups.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case p, ok := <-ch:
			if !ok {
				return
			}

			data, err := json.Marshal(p)
			if err != nil {
				h.log.Error(op, logger.String("failed to encode popup", err.Error()))
				continue
			}

			if _, err = fmt.Fprintf(w, "event: popup\ndata: %s\n\n", data); err != nil {
				h.log.Warn(op, logger.Err(err))
				return
			}
			flusher.Flush()
		}
	}
}
