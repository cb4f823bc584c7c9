package feed

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	feedstore "github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/feed"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/popup"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/feed", h.List)
	r.Delete("/feed", h.ClearAll)
	r.Post("/feed/{notificationID}/read", h.MarkRead)
	r.Get("/popups", h.Popups)

	return r
}

func TestFeed(t *testing.T) {
	f := feedstore.New()
	router := newRouter(NewHandler(logger.NewDiscard(), f, popup.NewBus()))

	first := models.InAppNotification{ID: uuid.New(), MessageID: "m-1", Title: "Order placed", Type: models.KindOrder}
	second := models.InAppNotification{ID: uuid.New(), MessageID: "m-2", Title: "Order ready", Type: models.KindOrder}
	require.True(t, f.Append(first))
	require.True(t, f.Append(second))

	list := func() FeedResponse {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feed", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp FeedResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		return resp
	}

	resp := list()
	require.Len(t, resp.Items, 2)
	require.Equal(t, second.ID, resp.Items[0].ID)
	require.Equal(t, 2, resp.Unread)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/feed/"+first.ID.String()+"/read", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, 1, list().Unread)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/feed/"+uuid.NewString()+"/read", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/feed/nope/read", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/feed", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	resp = list()
	require.Empty(t, resp.Items)
	require.Zero(t, resp.Unread)
}

func TestPopupsStream(t *testing.T) {
	bus := popup.NewBus()
	server := httptest.NewServer(newRouter(NewHandler(logger.NewDiscard(), feedstore.New(), bus)))
	defer server.Close()

	resp, err := http.Get(server.URL + "/popups")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool {
		return bus.Subscribers() == 1
	}, time.Second, 10*time.Millisecond)

	require.True(t, bus.Publish(popup.Popup{EventKey: "o-1:ready", OrderID: "o-1", Status: models.OrderStatusReady}))

	reader := bufio.NewReader(resp.Body)

	var data string
	for data == "" {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)

		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimSpace(strings.TrimPrefix(line, "data: "))
		}
	}

	var got popup.Popup
	require.NoError(t, json.Unmarshal([]byte(data), &got))
	require.Equal(t, "o-1", got.OrderID)
	require.Equal(t, models.OrderStatusReady, got.Status)
}
