package server

import (
	"bufio"
	"net"
	"strings"
	"time"

	"zappy-server/internal/engine"
	"zappy-server/pkg/logger"
	"zappy-server/pkg/utils"
)

const (
	writeWait = 10 * time.Second
	// Предел длины одной протокольной строки. Переполнение - разрыв
	// соединения, ресинхронизация посреди строки невозможна.
	maxLineSize = 64 * 1024
)

// Client - посредник между TCP-сокетом и GameService.
// Протокол построчный: readPump передает строки движку через канал,
// writePump дописывает "\n" к строкам из личного канала в хабе.
type Client struct {
	Game      *engine.GameService
	Conn      net.Conn
	SessionID string
}

func NewClient(game *engine.GameService, conn net.Conn) *Client {
	return &Client{
		Game:      game,
		Conn:      conn,
		SessionID: utils.GenerateID(),
	}
}

// Serve регистрирует сессию и запускает пампы.
// Возвращается после закрытия соединения.
func (c *Client) Serve() {
	updates := c.Game.Hub.Register(c.SessionID)
	c.Game.JoinChan <- c.SessionID

	go c.writePump(updates)
	c.readPump()
}

// readPump читает строки из сокета до разрыва или переполнения буфера
func (c *Client) readPump() {
	defer func() {
		c.Game.LeaveChan <- c.SessionID
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close after readPump")
		}
	}()

	scanner := bufio.NewScanner(c.Conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	for scanner.Scan() {
		// Терпим клиентов с CRLF
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		c.Game.CommandChan <- engine.Command{SessionID: c.SessionID, Line: line}
	}

	if err := scanner.Err(); err != nil {
		logger.Log.WithFields(map[string]interface{}{
			"session": c.SessionID,
			"error":   err,
		}).Warn("Чтение из сокета прервано")
	}
}

// writePump пишет строки в сокет. Закрытие канала (движок разорвал
// сессию или клиент отключился) завершает памп и закрывает сокет,
// что в свою очередь останавливает readPump.
func (c *Client) writePump(updates chan string) {
	defer func() {
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close after writePump")
		}
	}()

	for line := range updates {
		if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return
		}
		if _, err := c.Conn.Write([]byte(line + "\n")); err != nil {
			return
		}
	}
}
