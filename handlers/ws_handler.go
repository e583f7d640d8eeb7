package handlers

import (
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	hub    *services.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *services.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

// QuestionFeed upgrades GET /ws/questions and subscribes the connection
// to question_created and question_deleted events.
func (h *WSHandler) QuestionFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Info("websocket upgrade failed", zap.Error(err))
		return
	}
	h.hub.RegisterClient(conn)
}
