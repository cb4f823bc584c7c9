package lifecycle

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/ingestion"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

func TestForegroundBackground(t *testing.T) {
	log := logger.NewDiscard()
	dispatcher := ingestion.NewDispatcher(log, nil)
	session := ingestion.NewAppState()

	handler := NewHandler(log, session, dispatcher)

	w := httptest.NewRecorder()
	handler.Foreground(w, httptest.NewRequest(http.MethodPost, "/lifecycle/foreground", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Same(t, session, dispatcher.State())

	w = httptest.NewRecorder()
	handler.Background(w, httptest.NewRequest(http.MethodPost, "/lifecycle/background", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Nil(t, dispatcher.State())

	// Returning to foreground brings back the same feed.
	handler.Foreground(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/lifecycle/foreground", nil))
	require.Same(t, session.Feed, dispatcher.State().Feed)
}
