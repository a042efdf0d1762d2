package assistant

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"labbooking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWSServer(t *testing.T) (*httptest.Server, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	equipment := new(MockEquipmentDirectory)
	stats := new(MockStatsSource)
	equipment.On("List", mock.Anything, "").Return(registry(), nil)
	stats.On("Stats", mock.Anything).Return(demoStats(), nil)

	j := jwt.New("test-secret", time.Hour)

	r := gin.New()
	NewWSHandler(newTestAssistant(equipment, stats, nil), j, zap.NewNop()).RegisterRoutes(r.Group("/api/v1"))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, j
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/assistant/ws"
}

func TestWSHandler_ChatExchange(t *testing.T) {
	srv, j := newWSServer(t)

	token, err := j.GenerateToken(1, "student@dnu.edu.vn", "student")
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv)+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(AskRequest{Message: "How do I make a booking?", Language: "en"}))

	var reply Reply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "assistant", reply.Role)
	assert.Equal(t, "booking_help", reply.Rule)
	assert.Contains(t, reply.Content, "How to book:")

	// Second turn over the same connection.
	require.NoError(t, conn.WriteJSON(AskRequest{Message: "Cho tôi xem thống kê", Language: "vi"}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "statistics", reply.Rule)
}

func TestWSHandler_RejectsMissingToken(t *testing.T) {
	srv, _ := newWSServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	assert.Error(t, err)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWSHandler_RejectsInvalidToken(t *testing.T) {
	srv, _ := newWSServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv)+"?token=not-a-jwt", nil)
	assert.Error(t, err)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
