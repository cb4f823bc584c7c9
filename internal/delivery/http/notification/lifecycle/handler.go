package lifecycle

import (
	"net/http"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/ingestion"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type sessionAttacher interface {
	Attach(state *ingestion.AppState)
	Detach()
}

// Handler flips delivery between the foreground and background paths when the UI
// comes and goes. The session state is kept across backgrounding so the feed is
// still there when the user returns.
type Handler struct {
	log logger.Logger

	session         *ingestion.AppState
	sessionAttacher sessionAttacher
}

func NewHandler(log logger.Logger, session *ingestion.AppState, sessionAttacher sessionAttacher) *Handler {
	return &Handler{
		log:             log,
		session:         session,
		sessionAttacher: sessionAttacher,
	}
}

func (h *Handler) Foreground(w http.ResponseWriter, r *http.Request) {
	h.sessionAttacher.Attach(h.session)
	h.log.InfoContext(r.Context(), "delivery.http.notification.lifecycle.Foreground: ui attached")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Background(w http.ResponseWriter, r *http.Request) {
	h.sessionAttacher.Detach()
	h.log.InfoContext(r.Context(), "delivery.http.notification.lifecycle.Background: ui detached")

	w.WriteHeader(http.StatusNoContent)
}
