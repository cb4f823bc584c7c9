package order_notifier_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	feedHandler "github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/notification/feed"
	lifecycleHandler "github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/notification/lifecycle"
	pushHandler "github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/notification/push"
	orderGetHandler "github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/order/get"
	orderTransitionHandler "github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/order/transition"
	tokenHandler "github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http/token"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/ingestion"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/queue"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type OrderGetter interface {
	OrderByUUID(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	Queue(ctx context.Context, shopID string, filter queue.Filter) (queue.View, error)
}

type OrderTransitioner interface {
	Transition(ctx context.Context, orderUUID uuid.UUID, to models.OrderStatus) (*models.Order, error)
	MarkItemDelivered(ctx context.Context, orderUUID uuid.UUID, index int) (*models.Order, error)
}

type Dispatcher interface {
	DeliverPush(ctx context.Context, msg ingestion.RemoteMessage)
	Attach(state *ingestion.AppState)
	Detach()
}

type TokenRegistrar interface {
	Register(ctx context.Context, userID, token string) error
	Unregister(ctx context.Context, userID, token string) error
}

type Services struct {
	OrderGetter       OrderGetter
	OrderTransitioner OrderTransitioner
	Dispatcher        Dispatcher
	TokenRegistrar    TokenRegistrar
}

type Handler struct {
	log logger.Logger

	services Services
	session  *ingestion.AppState
	gatherer prometheus.Gatherer
}

func NewHandler(log logger.Logger, services Services, session *ingestion.AppState, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		log:      log,
		services: services,
		session:  session,
		gatherer: gatherer,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	orderGet := orderGetHandler.NewHandler(h.log, h.services.OrderGetter)
	orderTransition := orderTransitionHandler.NewHandler(h.log, h.services.OrderTransitioner)
	push := pushHandler.NewHandler(h.log, h.services.Dispatcher)
	lifecycle := lifecycleHandler.NewHandler(h.log, h.session, h.services.Dispatcher)
	feed := feedHandler.NewHandler(h.log, h.session.Feed, h.session.Popups)
	token := tokenHandler.NewHandler(h.log, h.services.TokenRegistrar)

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID, middleware.Recoverer)

	mux.Route("/orders/{orderID}", func(r chi.Router) {
		r.Get("/", orderGet.OrderByUUID)
		r.Post("/transition", orderTransition.Transition)
		r.Post("/items/{index}/delivered", orderTransition.MarkItemDelivered)
	})

	mux.Get("/shops/{shopID}/queue", orderGet.Queue)

	mux.Post("/push", push.Deliver)

	mux.Route("/lifecycle", func(r chi.Router) {
		r.Post("/foreground", lifecycle.Foreground)
		r.Post("/background", lifecycle.Background)
	})

	mux.Route("/feed", func(r chi.Router) {
		r.Get("/", feed.List)
		r.Delete("/", feed.ClearAll)
		r.Post("/{notificationID}/read", feed.MarkRead)
	})
	mux.Get("/popups", feed.Popups)

	mux.Route("/tokens", func(r chi.Router) {
		r.Post("/", token.Register)
		r.Delete("/", token.Unregister)
	})

	mux.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	return mux
}
