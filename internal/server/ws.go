package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"zappy-server/internal/engine"
	"zappy-server/pkg/logger"
	"zappy-server/pkg/utils"
)

// Настройки WebSocket
const (
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSClient - тот же построчный протокол поверх WebSocket: каждое
// текстовое сообщение несет одну или несколько строк
type WSClient struct {
	Game      *engine.GameService
	Conn      *websocket.Conn
	SessionID string
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := &WSClient{
		Game:      s.Engine,
		Conn:      conn,
		SessionID: utils.GenerateID(),
	}

	updates := s.Engine.Hub.Register(client.SessionID)
	s.Engine.JoinChan <- client.SessionID

	go client.writePump(updates)
	go client.readPump()
}

// readPump читает команды от клиента
func (c *WSClient) readPump() {
	defer func() {
		c.Game.LeaveChan <- c.SessionID
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close websocket after readPump")
		}
	}()

	c.Conn.SetReadLimit(maxLineSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Debug("WS read error")
			}
			return
		}

		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}
			c.Game.CommandChan <- engine.Command{SessionID: c.SessionID, Line: line}
		}
	}
}

// writePump отправляет строки клиенту + Ping
func (c *WSClient) writePump(updates chan string) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close websocket after writePump")
		}
	}()

	for {
		select {
		case line, ok := <-updates:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, []byte(line+"\n")); err != nil {
				logger.Log.WithError(err).Debug("write message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
