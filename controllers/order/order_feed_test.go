package ordercontroller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/kanak8148/SHOPING---APP/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOrderFeedBroadcast(t *testing.T) {
	r := gin.New()
	r.GET("/ws", OrderFeed)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// the handler registers the subscriber after the upgrade completes
	require.Eventually(t, func() bool {
		feedMu.Lock()
		defer feedMu.Unlock()
		return len(feedClients) == 1
	}, time.Second, 10*time.Millisecond)

	order := models.Order{ID: 7, BuyerID: 3, PaymentRef: "ch_777", TotalAmount: 42}
	BroadcastNewOrder(order)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got models.Order
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, order.ID, got.ID)
	require.Equal(t, order.PaymentRef, got.PaymentRef)
}
